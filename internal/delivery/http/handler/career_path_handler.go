package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CareerPathHandler struct {
	uc usecase.RoadmapUsecase
}

func NewCareerPathHandler(uc usecase.RoadmapUsecase) *CareerPathHandler {
	return &CareerPathHandler{uc: uc}
}

func (h *CareerPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/career-paths", h.List)
	r.Get("/career-paths/:id", h.Get)
	r.Get("/career-paths/:id/roadmap", h.Roadmap)
}

func (h *CareerPathHandler) List(c fiber.Ctx) error {
	paths, err := h.uc.ListCareerPaths(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, paths)
}

func (h *CareerPathHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}

	path, err := h.uc.GetCareerPath(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, path)
}

func (h *CareerPathHandler) Roadmap(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}

	roadmap, err := h.uc.ResolveRoadmap(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, roadmap)
}
