package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"career-compass/internal/repository"
	"career-compass/internal/ws"

	"github.com/google/uuid"
)

type TaskResourceItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Provider string    `json:"provider"`
	URL      string    `json:"url"`
	Type     string    `json:"type"`
	Rating   *float64  `json:"rating,omitempty"`
	Duration *string   `json:"duration,omitempty"`
}

type TaskStepItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Position int       `json:"position"`
}

type TaskItem struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     time.Time         `json:"due_date"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	Completed   bool              `json:"completed"`
	DaysLeft    int               `json:"days_left"`
	Resource    *TaskResourceItem `json:"resource,omitempty"`
	Step        *TaskStepItem     `json:"step,omitempty"`
}

type CreateTaskInput struct {
	Title             string
	Description       string
	DueDate           time.Time
	Priority          string
	RelatedResourceID *uuid.UUID
	RelatedStepID     *uuid.UUID
}

// TaskPatch carries a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title             *string
	Description       *string
	DueDate           *time.Time
	Priority          *string
	Status            *string
	Completed         *bool
	RelatedResourceID *uuid.UUID
	RelatedStepID     *uuid.UUID
}

type TaskUsecase interface {
	ListTasks(ctx context.Context, userID uuid.UUID) ([]TaskItem, error)
	CreateTask(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (TaskItem, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch TaskPatch) (TaskItem, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type Task struct {
	tasks     repository.TaskRepository
	resources repository.ResourceRepository
	steps     repository.RoadmapStepRepository

	// now is overridable in tests; nil means time.Now.
	now func() time.Time
}

func NewTaskUsecase(
	tasks repository.TaskRepository,
	resources repository.ResourceRepository,
	steps repository.RoadmapStepRepository,
) *Task {
	return &Task{tasks: tasks, resources: resources, steps: steps}
}

// ListTasks returns the user's tasks enriched with their linked resource and
// roadmap step where those still exist; a dangling link yields an omitted
// field, never an error. DaysLeft is computed at read time: negative means
// overdue, zero means due today.
func (u *Task) ListTasks(ctx context.Context, userID uuid.UUID) ([]TaskItem, error) {
	tasks, err := u.tasks.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]TaskItem, 0, len(tasks))
	for _, t := range tasks {
		item, err := u.deriveTask(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (u *Task) CreateTask(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (TaskItem, error) {
	if strings.TrimSpace(in.Title) == "" || in.DueDate.IsZero() {
		return TaskItem{}, ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = repository.TaskPriorityMedium
	}
	if !isValidPriority(priority) {
		return TaskItem{}, ErrInvalidInput
	}

	created, err := u.tasks.Create(ctx, repository.Task{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             in.Title,
		Description:       in.Description,
		DueDate:           in.DueDate,
		Priority:          priority,
		Status:            repository.TaskStatusNotStarted,
		Completed:         false,
		RelatedResourceID: in.RelatedResourceID,
		RelatedStepID:     in.RelatedStepID,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return TaskItem{}, ErrInvalidInput
		}
		return TaskItem{}, ErrInternal
	}

	return u.deriveTask(ctx, created)
}

// UpdateTask applies a partial update while keeping completed and status
// consistent: completed=true forces status to completed, and clearing the
// flag moves a completed task back to in_progress. Setting status directly
// syncs the flag the same way.
func (u *Task) UpdateTask(ctx context.Context, id uuid.UUID, patch TaskPatch) (TaskItem, error) {
	if id == uuid.Nil {
		return TaskItem{}, ErrInvalidInput
	}

	t, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskItem{}, ErrTaskNotFound
		}
		return TaskItem{}, ErrInternal
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return TaskItem{}, ErrInvalidInput
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			return TaskItem{}, ErrInvalidInput
		}
		t.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		if !isValidPriority(*patch.Priority) {
			return TaskItem{}, ErrInvalidInput
		}
		t.Priority = *patch.Priority
	}
	if patch.RelatedResourceID != nil {
		t.RelatedResourceID = patch.RelatedResourceID
	}
	if patch.RelatedStepID != nil {
		t.RelatedStepID = patch.RelatedStepID
	}

	if patch.Status != nil {
		if !isValidStatus(*patch.Status) {
			return TaskItem{}, ErrInvalidInput
		}
		t.Status = *patch.Status
		t.Completed = *patch.Status == repository.TaskStatusCompleted
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
		if t.Completed {
			t.Status = repository.TaskStatusCompleted
		} else if t.Status == repository.TaskStatusCompleted {
			t.Status = repository.TaskStatusInProgress
		}
	}

	updated, err := u.tasks.Update(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskItem{}, ErrTaskNotFound
		}
		if isForeignKeyViolation(err) {
			return TaskItem{}, ErrInvalidInput
		}
		return TaskItem{}, ErrInternal
	}

	ws.NotifyTaskUpdated(updated.UserID, updated.ID, updated.Status)
	return u.deriveTask(ctx, updated)
}

func (u *Task) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Task) deriveTask(ctx context.Context, t repository.Task) (TaskItem, error) {
	item := TaskItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
		Completed:   t.Completed,
		DaysLeft:    daysLeft(t.DueDate, u.timeNow()),
	}

	if t.RelatedResourceID != nil {
		res, err := u.resources.FindByID(ctx, *t.RelatedResourceID)
		switch {
		case err == nil:
			item.Resource = &TaskResourceItem{
				ID:       res.ID,
				Title:    res.Title,
				Provider: res.Provider,
				URL:      res.URL,
				Type:     res.Type,
				Rating:   res.Rating,
				Duration: res.Duration,
			}
		case errors.Is(err, repository.ErrResourceNotFound):
			// dangling link, leave the field out
		default:
			return TaskItem{}, ErrInternal
		}
	}

	if t.RelatedStepID != nil {
		st, err := u.steps.FindByID(ctx, *t.RelatedStepID)
		switch {
		case err == nil:
			item.Step = &TaskStepItem{ID: st.ID, Title: st.Title, Position: st.Position}
		case errors.Is(err, repository.ErrRoadmapStepNotFound):
			// dangling link, leave the field out
		default:
			return TaskItem{}, ErrInternal
		}
	}

	return item, nil
}

func (u *Task) timeNow() time.Time {
	if u.now != nil {
		return u.now()
	}
	return time.Now()
}

func daysLeft(due time.Time, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

func isValidPriority(v string) bool {
	switch v {
	case repository.TaskPriorityLow, repository.TaskPriorityMedium, repository.TaskPriorityHigh:
		return true
	}
	return false
}

func isValidStatus(v string) bool {
	switch v {
	case repository.TaskStatusNotStarted, repository.TaskStatusInProgress, repository.TaskStatusCompleted:
		return true
	}
	return false
}
