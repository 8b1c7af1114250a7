package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	uc usecase.ProgressUsecase
}

type recordProgressRequest struct {
	RoadmapStepID uuid.UUID `json:"roadmap_step_id"`
	Progress      int       `json:"progress"`
	Completed     bool      `json:"completed"`
}

type updateProgressRequest struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

func NewProgressHandler(uc usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:userId/progress", h.Get)
	r.Post("/users/:userId/progress", h.Record)
	r.Patch("/user-progress/:id", h.Update)
}

func (h *ProgressHandler) Get(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	report, err := h.uc.GetProgress(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *ProgressHandler) Record(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	var req recordProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	item, err := h.uc.RecordProgress(c.Context(), userID, usecase.RecordProgressInput{
		RoadmapStepID: req.RoadmapStepID,
		Progress:      req.Progress,
		Completed:     req.Completed,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, item)
}

func (h *ProgressHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}

	var req updateProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	item, err := h.uc.UpdateProgress(c.Context(), id, req.Progress, req.Completed)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}
