package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type GoalItem struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	IsActive   bool           `json:"is_active"`
	UpdatedAt  time.Time      `json:"updated_at"`
	CareerPath CareerPathItem `json:"career_path"`
}

type GoalUsecase interface {
	GetGoal(ctx context.Context, userID uuid.UUID) (GoalItem, error)
	SetGoal(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) (GoalItem, error)
}

type Goal struct {
	goals repository.UserGoalRepository
	paths repository.CareerPathRepository
}

func NewGoalUsecase(goals repository.UserGoalRepository, paths repository.CareerPathRepository) *Goal {
	return &Goal{goals: goals, paths: paths}
}

func (u *Goal) GetGoal(ctx context.Context, userID uuid.UUID) (GoalItem, error) {
	goal, err := u.goals.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserGoalNotFound) {
			return GoalItem{}, ErrGoalNotFound
		}
		return GoalItem{}, ErrInternal
	}

	path, err := u.paths.FindByID(ctx, goal.CareerPathID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerPathNotFound) {
			return GoalItem{}, ErrCareerPathNotFound
		}
		return GoalItem{}, ErrInternal
	}

	return goalItem(goal, path), nil
}

func (u *Goal) SetGoal(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) (GoalItem, error) {
	if careerPathID == uuid.Nil {
		return GoalItem{}, ErrInvalidInput
	}

	path, err := u.paths.FindByID(ctx, careerPathID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerPathNotFound) {
			return GoalItem{}, ErrCareerPathNotFound
		}
		return GoalItem{}, ErrInternal
	}

	goal, err := u.goals.Upsert(ctx, userID, careerPathID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return GoalItem{}, ErrCareerPathNotFound
		}
		return GoalItem{}, ErrInternal
	}

	return goalItem(goal, path), nil
}

func goalItem(g repository.UserGoal, p repository.CareerPath) GoalItem {
	return GoalItem{
		ID:         g.ID,
		UserID:     g.UserID,
		IsActive:   g.IsActive,
		UpdatedAt:  g.UpdatedAt,
		CareerPath: careerPathItem(p),
	}
}
