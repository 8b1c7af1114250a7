package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"career-compass/internal/repository"
	"career-compass/internal/ws"

	"github.com/google/uuid"
)

// Proficiency ratings at or above this level count as an acquired skill.
const acquiredProficiencyThreshold = 3

// Placeholder heuristics pending real per-resource completion tracking:
// each completed step is credited with four course resources and one project.
const (
	coursesPerCompletedStep    = 4
	projectsPerCompletedStep   = 1
	placeholderWeeksConsistent = 5
)

type ProgressStats struct {
	AcquiredSkills    int `json:"acquired_skills"`
	CompletedCourses  int `json:"completed_courses"`
	CompletedProjects int `json:"completed_projects"`
	WeeksConsistent   int `json:"weeks_consistent"`
}

type StepProgressItem struct {
	StepID        uuid.UUID  `json:"step_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Position      int        `json:"position"`
	Progress      int        `json:"progress"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

type ProgressReport struct {
	OverallProgress int                `json:"overall_progress"`
	Stats           ProgressStats      `json:"stats"`
	ProgressDetails []StepProgressItem `json:"progress_details"`
}

type ProgressItem struct {
	ID            uuid.UUID  `json:"id"`
	RoadmapStepID uuid.UUID  `json:"roadmap_step_id"`
	Progress      int        `json:"progress"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

type RecordProgressInput struct {
	RoadmapStepID uuid.UUID
	Progress      int
	Completed     bool
}

type ProgressUsecase interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (ProgressReport, error)
	RecordProgress(ctx context.Context, userID uuid.UUID, in RecordProgressInput) (ProgressItem, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int, completed bool) (ProgressItem, error)
}

type Progress struct {
	goals      repository.UserGoalRepository
	steps      repository.RoadmapStepRepository
	progress   repository.UserProgressRepository
	userSkills repository.UserSkillRepository
}

func NewProgressUsecase(
	goals repository.UserGoalRepository,
	steps repository.RoadmapStepRepository,
	progress repository.UserProgressRepository,
	userSkills repository.UserSkillRepository,
) *Progress {
	return &Progress{goals: goals, steps: steps, progress: progress, userSkills: userSkills}
}

// GetProgress aggregates a user's per-step progress over the roadmap of their
// active goal. The overall percentage averages across every roadmap step, so
// steps not yet begun count as zero and pull the average down.
func (u *Progress) GetProgress(ctx context.Context, userID uuid.UUID) (ProgressReport, error) {
	goal, err := u.goals.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserGoalNotFound) {
			return ProgressReport{}, ErrGoalNotFound
		}
		return ProgressReport{}, ErrInternal
	}

	steps, err := u.steps.FindByCareerPathID(ctx, goal.CareerPathID)
	if err != nil {
		return ProgressReport{}, ErrInternal
	}

	rows, err := u.progress.FindByUserID(ctx, userID)
	if err != nil {
		return ProgressReport{}, ErrInternal
	}

	byStep := make(map[uuid.UUID]repository.UserProgress, len(rows))
	for _, p := range rows {
		byStep[p.RoadmapStepID] = p
	}

	totalProgress := 0
	completedSteps := 0
	details := make([]StepProgressItem, 0, len(steps))
	for _, st := range steps {
		item := StepProgressItem{
			StepID:      st.ID,
			Title:       st.Title,
			Description: st.Description,
			Position:    st.Position,
		}
		if p, ok := byStep[st.ID]; ok {
			item.Progress = p.Progress
			item.Completed = p.Completed
			item.CompletedDate = p.CompletedDate
		}
		totalProgress += item.Progress
		if item.Completed {
			completedSteps++
		}
		details = append(details, item)
	}

	overall := 0
	if len(steps) > 0 {
		overall = int(math.Round(float64(totalProgress) / float64(len(steps))))
	}

	acquired, err := u.userSkills.CountAcquired(ctx, userID, acquiredProficiencyThreshold)
	if err != nil {
		return ProgressReport{}, ErrInternal
	}

	return ProgressReport{
		OverallProgress: overall,
		Stats: ProgressStats{
			AcquiredSkills:    acquired,
			CompletedCourses:  completedSteps * coursesPerCompletedStep,
			CompletedProjects: completedSteps * projectsPerCompletedStep,
			WeeksConsistent:   placeholderWeeksConsistent,
		},
		ProgressDetails: details,
	}, nil
}

func (u *Progress) RecordProgress(ctx context.Context, userID uuid.UUID, in RecordProgressInput) (ProgressItem, error) {
	if in.RoadmapStepID == uuid.Nil {
		return ProgressItem{}, ErrInvalidInput
	}
	if !isValidProgress(in.Progress) {
		return ProgressItem{}, ErrInvalidProgressValue
	}

	p, err := u.progress.Upsert(ctx, userID, in.RoadmapStepID, in.Progress, in.Completed)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ProgressItem{}, ErrProgressNotFound
		}
		return ProgressItem{}, ErrInternal
	}

	ws.NotifyProgressUpdated(userID, p.RoadmapStepID, p.Progress, p.Completed)
	return progressItem(p), nil
}

func (u *Progress) UpdateProgress(ctx context.Context, id uuid.UUID, progress int, completed bool) (ProgressItem, error) {
	if id == uuid.Nil {
		return ProgressItem{}, ErrInvalidInput
	}
	if !isValidProgress(progress) {
		return ProgressItem{}, ErrInvalidProgressValue
	}

	p, err := u.progress.Update(ctx, id, progress, completed)
	if err != nil {
		if errors.Is(err, repository.ErrUserProgressNotFound) {
			return ProgressItem{}, ErrProgressNotFound
		}
		return ProgressItem{}, ErrInternal
	}

	ws.NotifyProgressUpdated(p.UserID, p.RoadmapStepID, p.Progress, p.Completed)
	return progressItem(p), nil
}

func isValidProgress(v int) bool {
	return v >= 0 && v <= 100
}

func progressItem(p repository.UserProgress) ProgressItem {
	return ProgressItem{
		ID:            p.ID,
		RoadmapStepID: p.RoadmapStepID,
		Progress:      p.Progress,
		Completed:     p.Completed,
		CompletedDate: p.CompletedDate,
	}
}
