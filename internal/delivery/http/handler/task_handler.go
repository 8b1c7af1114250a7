package handler

import (
	"time"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TaskHandler struct {
	uc usecase.TaskUsecase
}

type createTaskRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	DueDate           time.Time  `json:"due_date"`
	Priority          string     `json:"priority"`
	RelatedResourceID *uuid.UUID `json:"related_resource_id,omitempty"`
	RelatedStepID     *uuid.UUID `json:"related_step_id,omitempty"`
}

type updateTaskRequest struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Priority          *string    `json:"priority,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Completed         *bool      `json:"completed,omitempty"`
	RelatedResourceID *uuid.UUID `json:"related_resource_id,omitempty"`
	RelatedStepID     *uuid.UUID `json:"related_step_id,omitempty"`
}

func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:userId/tasks", h.List)
	r.Post("/users/:userId/tasks", h.Create)
	r.Patch("/tasks/:id", h.Update)
	r.Delete("/tasks/:id", h.Delete)
}

func (h *TaskHandler) List(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	items, err := h.uc.ListTasks(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *TaskHandler) Create(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	var req createTaskRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.CreateTask(c.Context(), userID, usecase.CreateTaskInput{
		Title:             req.Title,
		Description:       req.Description,
		DueDate:           req.DueDate,
		Priority:          req.Priority,
		RelatedResourceID: req.RelatedResourceID,
		RelatedStepID:     req.RelatedStepID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, created)
}

func (h *TaskHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}

	var req updateTaskRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	updated, err := h.uc.UpdateTask(c.Context(), id, usecase.TaskPatch{
		Title:             req.Title,
		Description:       req.Description,
		DueDate:           req.DueDate,
		Priority:          req.Priority,
		Status:            req.Status,
		Completed:         req.Completed,
		RelatedResourceID: req.RelatedResourceID,
		RelatedStepID:     req.RelatedStepID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *TaskHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}

	if err := h.uc.DeleteTask(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
