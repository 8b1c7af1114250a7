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

var ErrTaskNotFound = errors.New("task not found")

const (
	TaskStatusNotStarted = "not_started"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Title             string
	Description       string
	DueDate           time.Time
	Priority          string
	Status            string
	Completed         bool
	RelatedResourceID *uuid.UUID
	RelatedStepID     *uuid.UUID
	CreatedAt         time.Time
}

type TaskRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Task, error)
	FindByID(ctx context.Context, id uuid.UUID) (Task, error)
	Create(ctx context.Context, t Task) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresTaskRepository struct {
	db database.DB
}

func NewPostgresTaskRepository(db database.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

const taskColumns = `id, user_id, title, description, due_date, priority, status, completed, related_resource_id, related_step_id, created_at`

func (r *PostgresTaskRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY due_date ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`,
		id,
	)

	var t Task
	if err := scanTask(row, &t); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, err
	}
	return t, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t Task) (Task, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, title, description, due_date, priority, status, completed, related_resource_id, related_step_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+taskColumns,
		t.ID, t.UserID, t.Title, t.Description, t.DueDate, t.Priority, t.Status, t.Completed, t.RelatedResourceID, t.RelatedStepID,
	)

	var created Task
	if err := scanTask(row, &created); err != nil {
		return Task{}, err
	}
	return created, nil
}

func (r *PostgresTaskRepository) Update(ctx context.Context, t Task) (Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, due_date = $3, priority = $4, status = $5, completed = $6,
			related_resource_id = $7, related_step_id = $8
		 WHERE id = $9
		 RETURNING `+taskColumns,
		t.Title, t.Description, t.DueDate, t.Priority, t.Status, t.Completed, t.RelatedResourceID, t.RelatedStepID, t.ID,
	)

	var updated Task
	if err := scanTask(row, &updated); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, err
	}
	return updated, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func scanTask(row database.Row, t *Task) error {
	return row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Status,
		&t.Completed, &t.RelatedResourceID, &t.RelatedStepID, &t.CreatedAt,
	)
}
