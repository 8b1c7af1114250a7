package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type mockTaskRepo struct {
	byID    map[uuid.UUID]repository.Task
	list    []repository.Task
	updated *repository.Task
	created *repository.Task
}

func (m *mockTaskRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.Task, error) {
	return m.list, nil
}

func (m *mockTaskRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Task, error) {
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return repository.Task{}, repository.ErrTaskNotFound
}

func (m *mockTaskRepo) Create(_ context.Context, t repository.Task) (repository.Task, error) {
	m.created = &t
	return t, nil
}

func (m *mockTaskRepo) Update(_ context.Context, t repository.Task) (repository.Task, error) {
	if _, ok := m.byID[t.ID]; !ok {
		return repository.Task{}, repository.ErrTaskNotFound
	}
	m.updated = &t
	return t, nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockResourceRepo struct {
	byID map[uuid.UUID]repository.Resource
	all  []repository.Resource
}

func (m *mockResourceRepo) ListAll(context.Context) ([]repository.Resource, error) {
	return m.all, nil
}

func (m *mockResourceRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Resource, error) {
	if r, ok := m.byID[id]; ok {
		return r, nil
	}
	return repository.Resource{}, repository.ErrResourceNotFound
}

func (m *mockResourceRepo) FindBySkillIDs(context.Context, []uuid.UUID) ([]repository.Resource, error) {
	return m.all, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
}

func TestTask_ListTasks_DaysLeft(t *testing.T) {
	userID := uuid.New()
	due := func(days int) time.Time { return fixedNow().AddDate(0, 0, days) }

	repo := &mockTaskRepo{list: []repository.Task{
		{ID: uuid.New(), UserID: userID, Title: "ahead", DueDate: due(3), Priority: repository.TaskPriorityMedium, Status: repository.TaskStatusNotStarted},
		{ID: uuid.New(), UserID: userID, Title: "today", DueDate: due(0), Priority: repository.TaskPriorityMedium, Status: repository.TaskStatusNotStarted},
		{ID: uuid.New(), UserID: userID, Title: "overdue", DueDate: due(-2), Priority: repository.TaskPriorityMedium, Status: repository.TaskStatusNotStarted},
	}}
	uc := NewTaskUsecase(repo, &mockResourceRepo{}, &mockStepRepo{})
	uc.now = fixedNow

	items, err := uc.ListTasks(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(items))
	}
	for i, want := range []int{3, 0, -2} {
		if items[i].DaysLeft != want {
			t.Fatalf("task %q: expected daysLeft %d, got %d", items[i].Title, want, items[i].DaysLeft)
		}
	}
}

func TestTask_ListTasks_DanglingLinksOmitted(t *testing.T) {
	userID := uuid.New()
	missingRes := uuid.New()
	missingStep := uuid.New()

	repo := &mockTaskRepo{list: []repository.Task{{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             "orphaned",
		DueDate:           fixedNow(),
		Priority:          repository.TaskPriorityLow,
		Status:            repository.TaskStatusNotStarted,
		RelatedResourceID: &missingRes,
		RelatedStepID:     &missingStep,
	}}}
	uc := NewTaskUsecase(repo, &mockResourceRepo{}, &mockStepRepo{})
	uc.now = fixedNow

	items, err := uc.ListTasks(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items[0].Resource != nil || items[0].Step != nil {
		t.Fatalf("expected dangling links to be omitted, got %+v", items[0])
	}
}

func TestTask_ListTasks_EnrichesLinks(t *testing.T) {
	userID := uuid.New()
	res := repository.Resource{ID: uuid.New(), Title: "SQL Course", Provider: "Coursera", URL: "https://example.com", Type: "course"}
	step := repository.RoadmapStep{ID: uuid.New(), Title: "Learn SQL", Position: 2}

	repo := &mockTaskRepo{list: []repository.Task{{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             "linked",
		DueDate:           fixedNow(),
		Priority:          repository.TaskPriorityHigh,
		Status:            repository.TaskStatusInProgress,
		RelatedResourceID: &res.ID,
		RelatedStepID:     &step.ID,
	}}}
	uc := NewTaskUsecase(
		repo,
		&mockResourceRepo{byID: map[uuid.UUID]repository.Resource{res.ID: res}},
		&mockStepRepo{byID: map[uuid.UUID]repository.RoadmapStep{step.ID: step}},
	)
	uc.now = fixedNow

	items, err := uc.ListTasks(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items[0].Resource == nil || items[0].Resource.Title != "SQL Course" {
		t.Fatalf("expected resource enrichment, got %+v", items[0].Resource)
	}
	if items[0].Step == nil || items[0].Step.Position != 2 {
		t.Fatalf("expected step enrichment, got %+v", items[0].Step)
	}
}

func TestTask_UpdateTask_CompletedSyncsStatus(t *testing.T) {
	taskID := uuid.New()
	repo := &mockTaskRepo{byID: map[uuid.UUID]repository.Task{taskID: {
		ID:       taskID,
		UserID:   uuid.New(),
		Title:    "t",
		DueDate:  fixedNow(),
		Priority: repository.TaskPriorityMedium,
		Status:   repository.TaskStatusInProgress,
	}}}
	uc := NewTaskUsecase(repo, &mockResourceRepo{}, &mockStepRepo{})
	uc.now = fixedNow

	completed := true
	item, err := uc.UpdateTask(context.Background(), taskID, TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Status != repository.TaskStatusCompleted || !item.Completed {
		t.Fatalf("expected completed task with completed status, got %+v", item)
	}
}

func TestTask_UpdateTask_UncompleteMovesToInProgress(t *testing.T) {
	taskID := uuid.New()
	repo := &mockTaskRepo{byID: map[uuid.UUID]repository.Task{taskID: {
		ID:        taskID,
		UserID:    uuid.New(),
		Title:     "t",
		DueDate:   fixedNow(),
		Priority:  repository.TaskPriorityMedium,
		Status:    repository.TaskStatusCompleted,
		Completed: true,
	}}}
	uc := NewTaskUsecase(repo, &mockResourceRepo{}, &mockStepRepo{})
	uc.now = fixedNow

	completed := false
	item, err := uc.UpdateTask(context.Background(), taskID, TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Status != repository.TaskStatusInProgress || item.Completed {
		t.Fatalf("expected in_progress after uncompleting, got %+v", item)
	}
}

func TestTask_UpdateTask_StatusSyncsCompleted(t *testing.T) {
	taskID := uuid.New()
	repo := &mockTaskRepo{byID: map[uuid.UUID]repository.Task{taskID: {
		ID:       taskID,
		UserID:   uuid.New(),
		Title:    "t",
		DueDate:  fixedNow(),
		Priority: repository.TaskPriorityMedium,
		Status:   repository.TaskStatusNotStarted,
	}}}
	uc := NewTaskUsecase(repo, &mockResourceRepo{}, &mockStepRepo{})
	uc.now = fixedNow

	status := repository.TaskStatusCompleted
	item, err := uc.UpdateTask(context.Background(), taskID, TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !item.Completed {
		t.Fatalf("expected completed flag set by status, got %+v", item)
	}
}

func TestTask_UpdateTask_NotFound(t *testing.T) {
	uc := NewTaskUsecase(&mockTaskRepo{}, &mockResourceRepo{}, &mockStepRepo{})

	title := "x"
	_, err := uc.UpdateTask(context.Background(), uuid.New(), TaskPatch{Title: &title})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTask_CreateTask_DefaultsAndValidation(t *testing.T) {
	repo := &mockTaskRepo{}
	uc := NewTaskUsecase(repo, &mockResourceRepo{}, &mockStepRepo{})
	uc.now = fixedNow

	_, err := uc.CreateTask(context.Background(), uuid.New(), CreateTaskInput{Title: "  ", DueDate: fixedNow()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}

	item, err := uc.CreateTask(context.Background(), uuid.New(), CreateTaskInput{Title: "practice joins", DueDate: fixedNow().AddDate(0, 0, 7)})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Priority != repository.TaskPriorityMedium {
		t.Fatalf("expected default priority medium, got %q", item.Priority)
	}
	if item.Status != repository.TaskStatusNotStarted || item.Completed {
		t.Fatalf("expected fresh task to be not started, got %+v", item)
	}
	if repo.created == nil {
		t.Fatalf("expected task to reach the repository")
	}
}

func TestTask_DeleteTask_NotFound(t *testing.T) {
	uc := NewTaskUsecase(&mockTaskRepo{}, &mockResourceRepo{}, &mockStepRepo{})

	if err := uc.DeleteTask(context.Background(), uuid.New()); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
