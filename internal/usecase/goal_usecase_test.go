package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func TestGoal_SetGoal_UnknownCareerPath(t *testing.T) {
	goals := &mockGoalRepo{}
	uc := NewGoalUsecase(goals, &mockPathRepo{})

	_, err := uc.SetGoal(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrCareerPathNotFound) {
		t.Fatalf("expected ErrCareerPathNotFound, got %v", err)
	}
	if goals.upsertCalls != 0 {
		t.Fatalf("expected no upsert for unknown path, got %d", goals.upsertCalls)
	}
}

func TestGoal_SetGoal_ReplacesExistingGoal(t *testing.T) {
	path := repository.CareerPath{ID: uuid.New(), Title: "Frontend Developer"}
	goals := &mockGoalRepo{}
	uc := NewGoalUsecase(goals, &mockPathRepo{byID: map[uuid.UUID]repository.CareerPath{path.ID: path}})

	userID := uuid.New()
	item, err := uc.SetGoal(context.Background(), userID, path.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.UserID != userID || item.CareerPath.ID != path.ID {
		t.Fatalf("unexpected goal: %+v", item)
	}
	if goals.upsertCalls != 1 {
		t.Fatalf("expected one upsert, got %d", goals.upsertCalls)
	}
}

func TestGoal_GetGoal_NoActiveGoal(t *testing.T) {
	uc := NewGoalUsecase(&mockGoalRepo{findErr: repository.ErrUserGoalNotFound}, &mockPathRepo{})

	_, err := uc.GetGoal(context.Background(), uuid.New())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestGoal_GetGoal_JoinsCareerPath(t *testing.T) {
	path := repository.CareerPath{ID: uuid.New(), Title: "Data Analyst"}
	userID := uuid.New()
	uc := NewGoalUsecase(
		&mockGoalRepo{goal: repository.UserGoal{ID: uuid.New(), UserID: userID, CareerPathID: path.ID, IsActive: true}},
		&mockPathRepo{byID: map[uuid.UUID]repository.CareerPath{path.ID: path}},
	)

	item, err := uc.GetGoal(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.CareerPath.Title != "Data Analyst" || !item.IsActive {
		t.Fatalf("unexpected goal: %+v", item)
	}
}
