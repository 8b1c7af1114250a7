package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRoadmapStepNotFound = errors.New("roadmap step not found")

type RoadmapStep struct {
	ID             uuid.UUID
	CareerPathID   uuid.UUID
	Title          string
	Description    string
	Position       int
	RequiredSkills []uuid.UUID
}

type RoadmapStepRepository interface {
	FindByCareerPathID(ctx context.Context, careerPathID uuid.UUID) ([]RoadmapStep, error)
	FindByID(ctx context.Context, id uuid.UUID) (RoadmapStep, error)
}

type PostgresRoadmapStepRepository struct {
	db database.DB
}

func NewPostgresRoadmapStepRepository(db database.DB) *PostgresRoadmapStepRepository {
	return &PostgresRoadmapStepRepository{db: db}
}

// FindByCareerPathID returns the steps of a path ordered by their declared
// position, ascending.
func (r *PostgresRoadmapStepRepository) FindByCareerPathID(ctx context.Context, careerPathID uuid.UUID) ([]RoadmapStep, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, career_path_id, title, description, position, required_skills
		 FROM roadmap_steps
		 WHERE career_path_id = $1
		 ORDER BY position ASC`,
		careerPathID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoadmapStep, 0)
	for rows.Next() {
		var st RoadmapStep
		if err := rows.Scan(&st.ID, &st.CareerPathID, &st.Title, &st.Description, &st.Position, &st.RequiredSkills); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoadmapStepRepository) FindByID(ctx context.Context, id uuid.UUID) (RoadmapStep, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, career_path_id, title, description, position, required_skills
		 FROM roadmap_steps
		 WHERE id = $1`,
		id,
	)

	var st RoadmapStep
	if err := row.Scan(&st.ID, &st.CareerPathID, &st.Title, &st.Description, &st.Position, &st.RequiredSkills); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return RoadmapStep{}, ErrRoadmapStepNotFound
		}
		return RoadmapStep{}, err
	}
	return st, nil
}
