package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserProgressNotFound = errors.New("user progress not found")

type UserProgress struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RoadmapStepID uuid.UUID
	Progress      int
	Completed     bool
	CompletedDate *time.Time
}

type UserProgressRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserProgress, error)
	Upsert(ctx context.Context, userID uuid.UUID, stepID uuid.UUID, progress int, completed bool) (UserProgress, error)
	Update(ctx context.Context, id uuid.UUID, progress int, completed bool) (UserProgress, error)
}

type PostgresUserProgressRepository struct {
	db database.DB
}

func NewPostgresUserProgressRepository(db database.DB) *PostgresUserProgressRepository {
	return &PostgresUserProgressRepository{db: db}
}

func (r *PostgresUserProgressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserProgress, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, roadmap_step_id, progress, completed, completed_date
		 FROM user_progress
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserProgress, 0)
	for rows.Next() {
		var p UserProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.RoadmapStepID, &p.Progress, &p.Completed, &p.CompletedDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert records progress per (userID, stepID); completed_date is stamped
// when completed flips to true and cleared when it flips back.
func (r *PostgresUserProgressRepository) Upsert(ctx context.Context, userID uuid.UUID, stepID uuid.UUID, progress int, completed bool) (UserProgress, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_progress (id, user_id, roadmap_step_id, progress, completed, completed_date)
		 VALUES ($1, $2, $3, $4, $5, CASE WHEN $5 THEN now() END)
		 ON CONFLICT (user_id, roadmap_step_id)
		 DO UPDATE SET
			progress = EXCLUDED.progress,
			completed = EXCLUDED.completed,
			completed_date = CASE
				WHEN EXCLUDED.completed AND NOT user_progress.completed THEN now()
				WHEN NOT EXCLUDED.completed THEN NULL
				ELSE user_progress.completed_date
			END
		 RETURNING id, user_id, roadmap_step_id, progress, completed, completed_date`,
		uuid.New(), userID, stepID, progress, completed,
	)

	var p UserProgress
	if err := row.Scan(&p.ID, &p.UserID, &p.RoadmapStepID, &p.Progress, &p.Completed, &p.CompletedDate); err != nil {
		return UserProgress{}, err
	}
	return p, nil
}

func (r *PostgresUserProgressRepository) Update(ctx context.Context, id uuid.UUID, progress int, completed bool) (UserProgress, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE user_progress
		 SET progress = $1,
			completed = $2,
			completed_date = CASE
				WHEN $2 AND NOT completed THEN now()
				WHEN NOT $2 THEN NULL
				ELSE completed_date
			END
		 WHERE id = $3
		 RETURNING id, user_id, roadmap_step_id, progress, completed, completed_date`,
		progress, completed, id,
	)

	var p UserProgress
	if err := row.Scan(&p.ID, &p.UserID, &p.RoadmapStepID, &p.Progress, &p.Completed, &p.CompletedDate); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return UserProgress{}, ErrUserProgressNotFound
		}
		return UserProgress{}, err
	}
	return p, nil
}
