package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResourceNotFound = errors.New("resource not found")

type Resource struct {
	ID       uuid.UUID
	Title    string
	Provider string
	URL      string
	Type     string
	Rating   *float64
	Duration *string
	SkillIDs []uuid.UUID
}

type ResourceRepository interface {
	ListAll(ctx context.Context) ([]Resource, error)
	FindByID(ctx context.Context, id uuid.UUID) (Resource, error)
	FindBySkillIDs(ctx context.Context, skillIDs []uuid.UUID) ([]Resource, error)
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) ListAll(ctx context.Context) ([]Resource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, provider, url, resource_type, rating, duration, skill_ids
		 FROM resources
		 ORDER BY title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResources(rows)
}

func (r *PostgresResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (Resource, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, provider, url, resource_type, rating, duration, skill_ids
		 FROM resources
		 WHERE id = $1`,
		id,
	)

	var res Resource
	if err := row.Scan(&res.ID, &res.Title, &res.Provider, &res.URL, &res.Type, &res.Rating, &res.Duration, &res.SkillIDs); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Resource{}, ErrResourceNotFound
		}
		return Resource{}, err
	}
	return res, nil
}

// FindBySkillIDs matches resources tagged with any of the given skills.
func (r *PostgresResourceRepository) FindBySkillIDs(ctx context.Context, skillIDs []uuid.UUID) ([]Resource, error) {
	if len(skillIDs) == 0 {
		return []Resource{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, provider, url, resource_type, rating, duration, skill_ids
		 FROM resources
		 WHERE skill_ids && $1
		 ORDER BY title ASC`,
		skillIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResources(rows)
}

func scanResources(rows database.Rows) ([]Resource, error) {
	out := make([]Resource, 0)
	for rows.Next() {
		var res Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Provider, &res.URL, &res.Type, &res.Rating, &res.Duration, &res.SkillIDs); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
