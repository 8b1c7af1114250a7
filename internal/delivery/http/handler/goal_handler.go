package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GoalHandler struct {
	uc usecase.GoalUsecase
}

type setGoalRequest struct {
	CareerPathID uuid.UUID `json:"career_path_id"`
}

func NewGoalHandler(uc usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:userId/goal", h.Get)
	r.Post("/users/:userId/goal", h.Set)
}

func (h *GoalHandler) Get(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	goal, err := h.uc.GetGoal(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, goal)
}

func (h *GoalHandler) Set(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	var req setGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	goal, err := h.uc.SetGoal(c.Context(), userID, req.CareerPathID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, goal)
}
