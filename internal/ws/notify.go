package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type ProgressUpdatedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	StepID    string `json:"step_id"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	Timestamp string `json:"timestamp"`
}

type AssessmentProcessedEvent struct {
	Type        string `json:"type"`
	UserID      string `json:"user_id"`
	SkillsRated int    `json:"skills_rated"`
	Timestamp   string `json:"timestamp"`
}

type TaskUpdatedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyProgressUpdated(userID uuid.UUID, stepID uuid.UUID, progress int, completed bool) {
	notify(userID, ProgressUpdatedEvent{
		Type:      "progress_updated",
		UserID:    userID.String(),
		StepID:    stepID.String(),
		Progress:  progress,
		Completed: completed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func NotifyAssessmentProcessed(userID uuid.UUID, skillsRated int) {
	notify(userID, AssessmentProcessedEvent{
		Type:        "assessment_processed",
		UserID:      userID.String(),
		SkillsRated: skillsRated,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func NotifyTaskUpdated(userID uuid.UUID, taskID uuid.UUID, status string) {
	notify(userID, TaskUpdatedEvent{
		Type:      "task_updated",
		UserID:    userID.String(),
		TaskID:    taskID.String(),
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func notify(userID uuid.UUID, event any) {
	h := defaultHub.Load()
	if h == nil || userID == uuid.Nil {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.Broadcast(userID.String(), b)
}
