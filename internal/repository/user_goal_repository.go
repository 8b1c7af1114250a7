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

var ErrUserGoalNotFound = errors.New("user goal not found")

type UserGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CareerPathID uuid.UUID
	IsActive     bool
	UpdatedAt    time.Time
}

type UserGoalRepository interface {
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (UserGoal, error)
	Upsert(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) (UserGoal, error)
}

type PostgresUserGoalRepository struct {
	db database.DB
}

func NewPostgresUserGoalRepository(db database.DB) *PostgresUserGoalRepository {
	return &PostgresUserGoalRepository{db: db}
}

func (r *PostgresUserGoalRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (UserGoal, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, career_path_id, is_active, updated_at
		 FROM user_goals
		 WHERE user_id = $1 AND is_active`,
		userID,
	)

	var g UserGoal
	if err := row.Scan(&g.ID, &g.UserID, &g.CareerPathID, &g.IsActive, &g.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return UserGoal{}, ErrUserGoalNotFound
		}
		return UserGoal{}, err
	}
	return g, nil
}

// Upsert keeps at most one goal row per user: a repeated call replaces the
// career path on the existing row instead of inserting a second one.
func (r *PostgresUserGoalRepository) Upsert(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) (UserGoal, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_goals (id, user_id, career_path_id, is_active)
		 VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT (user_id)
		 DO UPDATE SET career_path_id = EXCLUDED.career_path_id, is_active = TRUE, updated_at = now()
		 RETURNING id, user_id, career_path_id, is_active, updated_at`,
		uuid.New(), userID, careerPathID,
	)

	var g UserGoal
	if err := row.Scan(&g.ID, &g.UserID, &g.CareerPathID, &g.IsActive, &g.UpdatedAt); err != nil {
		return UserGoal{}, err
	}
	return g, nil
}
