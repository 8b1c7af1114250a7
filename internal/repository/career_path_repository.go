package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCareerPathNotFound = errors.New("career path not found")

type CareerPath struct {
	ID             uuid.UUID
	Title          string
	Description    string
	RequiredSkills []uuid.UUID
}

type CareerPathRepository interface {
	ListAll(ctx context.Context) ([]CareerPath, error)
	FindByID(ctx context.Context, id uuid.UUID) (CareerPath, error)
}

type PostgresCareerPathRepository struct {
	db database.DB
}

func NewPostgresCareerPathRepository(db database.DB) *PostgresCareerPathRepository {
	return &PostgresCareerPathRepository{db: db}
}

func (r *PostgresCareerPathRepository) ListAll(ctx context.Context) ([]CareerPath, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, required_skills FROM career_paths ORDER BY title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerPath, 0)
	for rows.Next() {
		var cp CareerPath
		if err := rows.Scan(&cp.ID, &cp.Title, &cp.Description, &cp.RequiredSkills); err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerPathRepository) FindByID(ctx context.Context, id uuid.UUID) (CareerPath, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, required_skills FROM career_paths WHERE id = $1`,
		id,
	)

	var cp CareerPath
	if err := row.Scan(&cp.ID, &cp.Title, &cp.Description, &cp.RequiredSkills); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return CareerPath{}, ErrCareerPathNotFound
		}
		return CareerPath{}, err
	}
	return cp, nil
}
