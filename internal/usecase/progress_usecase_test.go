package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type mockGoalRepo struct {
	goal        repository.UserGoal
	findErr     error
	upsertErr   error
	upsertCalls int
}

func (m *mockGoalRepo) FindActiveByUserID(context.Context, uuid.UUID) (repository.UserGoal, error) {
	if m.findErr != nil {
		return repository.UserGoal{}, m.findErr
	}
	return m.goal, nil
}

func (m *mockGoalRepo) Upsert(_ context.Context, userID uuid.UUID, careerPathID uuid.UUID) (repository.UserGoal, error) {
	m.upsertCalls++
	if m.upsertErr != nil {
		return repository.UserGoal{}, m.upsertErr
	}
	return repository.UserGoal{ID: uuid.New(), UserID: userID, CareerPathID: careerPathID}, nil
}

type mockStepRepo struct {
	steps []repository.RoadmapStep
	byID  map[uuid.UUID]repository.RoadmapStep
	err   error
}

func (m *mockStepRepo) FindByCareerPathID(context.Context, uuid.UUID) ([]repository.RoadmapStep, error) {
	return m.steps, m.err
}

func (m *mockStepRepo) FindByID(_ context.Context, id uuid.UUID) (repository.RoadmapStep, error) {
	if st, ok := m.byID[id]; ok {
		return st, nil
	}
	return repository.RoadmapStep{}, repository.ErrRoadmapStepNotFound
}

type mockProgressRepo struct {
	rows      []repository.UserProgress
	upserted  []repository.UserProgress
	updateErr error
	upsertErr error
}

func (m *mockProgressRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserProgress, error) {
	return m.rows, nil
}

func (m *mockProgressRepo) Upsert(_ context.Context, userID uuid.UUID, stepID uuid.UUID, progress int, completed bool) (repository.UserProgress, error) {
	if m.upsertErr != nil {
		return repository.UserProgress{}, m.upsertErr
	}
	p := repository.UserProgress{ID: uuid.New(), UserID: userID, RoadmapStepID: stepID, Progress: progress, Completed: completed}
	m.upserted = append(m.upserted, p)
	return p, nil
}

func (m *mockProgressRepo) Update(_ context.Context, id uuid.UUID, progress int, completed bool) (repository.UserProgress, error) {
	if m.updateErr != nil {
		return repository.UserProgress{}, m.updateErr
	}
	return repository.UserProgress{ID: id, UserID: uuid.New(), RoadmapStepID: uuid.New(), Progress: progress, Completed: completed}, nil
}

type mockUserSkillRepo struct {
	skills    []repository.UserSkill
	acquired  int
	upserts   map[uuid.UUID]int
	upsertErr error
}

func (m *mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return m.skills, nil
}

func (m *mockUserSkillRepo) Upsert(_ context.Context, userID uuid.UUID, skillID uuid.UUID, proficiencyLevel int) (repository.UserSkill, error) {
	if m.upsertErr != nil {
		return repository.UserSkill{}, m.upsertErr
	}
	if m.upserts == nil {
		m.upserts = make(map[uuid.UUID]int)
	}
	m.upserts[skillID]++
	return repository.UserSkill{ID: uuid.New(), UserID: userID, SkillID: skillID, ProficiencyLevel: proficiencyLevel}, nil
}

func (m *mockUserSkillRepo) UpdateProficiency(_ context.Context, id uuid.UUID, proficiencyLevel int) (repository.UserSkill, error) {
	return repository.UserSkill{ID: id, ProficiencyLevel: proficiencyLevel}, nil
}

func (m *mockUserSkillRepo) CountAcquired(context.Context, uuid.UUID, int) (int, error) {
	return m.acquired, nil
}

func progressSteps(n int) []repository.RoadmapStep {
	steps := make([]repository.RoadmapStep, 0, n)
	for i := 0; i < n; i++ {
		steps = append(steps, repository.RoadmapStep{ID: uuid.New(), Title: "step", Position: i + 1})
	}
	return steps
}

func TestProgress_GetProgress_AveragesOverAllSteps(t *testing.T) {
	steps := progressSteps(4)
	userID := uuid.New()

	// Two steps touched (100 and 50), two never started. The average runs
	// over all four, so overall is round(150/4) = 38.
	uc := NewProgressUsecase(
		&mockGoalRepo{goal: repository.UserGoal{UserID: userID, CareerPathID: uuid.New()}},
		&mockStepRepo{steps: steps},
		&mockProgressRepo{rows: []repository.UserProgress{
			{ID: uuid.New(), UserID: userID, RoadmapStepID: steps[0].ID, Progress: 100, Completed: true},
			{ID: uuid.New(), UserID: userID, RoadmapStepID: steps[1].ID, Progress: 50},
		}},
		&mockUserSkillRepo{acquired: 2},
	)

	report, err := uc.GetProgress(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.OverallProgress != 38 {
		t.Fatalf("expected overall 38, got %d", report.OverallProgress)
	}
	if len(report.ProgressDetails) != 4 {
		t.Fatalf("expected 4 detail rows, got %d", len(report.ProgressDetails))
	}
	if report.ProgressDetails[2].Progress != 0 || report.ProgressDetails[2].Completed {
		t.Fatalf("expected untouched step to read as zero progress")
	}
	if report.Stats.AcquiredSkills != 2 {
		t.Fatalf("expected 2 acquired skills, got %d", report.Stats.AcquiredSkills)
	}
	if report.Stats.CompletedCourses != 4 || report.Stats.CompletedProjects != 1 {
		t.Fatalf("unexpected stats: %+v", report.Stats)
	}
}

func TestProgress_GetProgress_NoSteps(t *testing.T) {
	uc := NewProgressUsecase(
		&mockGoalRepo{goal: repository.UserGoal{UserID: uuid.New(), CareerPathID: uuid.New()}},
		&mockStepRepo{},
		&mockProgressRepo{},
		&mockUserSkillRepo{},
	)

	report, err := uc.GetProgress(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.OverallProgress != 0 {
		t.Fatalf("expected overall 0 with no steps, got %d", report.OverallProgress)
	}
	if len(report.ProgressDetails) != 0 {
		t.Fatalf("expected no detail rows, got %d", len(report.ProgressDetails))
	}
}

func TestProgress_GetProgress_NoActiveGoal(t *testing.T) {
	uc := NewProgressUsecase(
		&mockGoalRepo{findErr: repository.ErrUserGoalNotFound},
		&mockStepRepo{},
		&mockProgressRepo{},
		&mockUserSkillRepo{},
	)

	_, err := uc.GetProgress(context.Background(), uuid.New())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestProgress_RecordProgress_RejectsOutOfRange(t *testing.T) {
	repo := &mockProgressRepo{}
	uc := NewProgressUsecase(&mockGoalRepo{}, &mockStepRepo{}, repo, &mockUserSkillRepo{})

	for _, v := range []int{-1, 101} {
		_, err := uc.RecordProgress(context.Background(), uuid.New(), RecordProgressInput{RoadmapStepID: uuid.New(), Progress: v})
		if !errors.Is(err, ErrInvalidProgressValue) {
			t.Fatalf("progress %d: expected ErrInvalidProgressValue, got %v", v, err)
		}
	}
	if len(repo.upserted) != 0 {
		t.Fatalf("expected no upserts, got %d", len(repo.upserted))
	}
}

func TestProgress_UpdateProgress_NotFound(t *testing.T) {
	uc := NewProgressUsecase(
		&mockGoalRepo{},
		&mockStepRepo{},
		&mockProgressRepo{updateErr: repository.ErrUserProgressNotFound},
		&mockUserSkillRepo{},
	)

	_, err := uc.UpdateProgress(context.Background(), uuid.New(), 40, false)
	if !errors.Is(err, ErrProgressNotFound) {
		t.Fatalf("expected ErrProgressNotFound, got %v", err)
	}
}
