package handler

import (
	"strings"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	uc usecase.ResourceUsecase
}

func NewResourceHandler(uc usecase.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

func (h *ResourceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/resources", h.List)
	r.Get("/resources/by-skills", h.ListBySkills)
	r.Get("/resources/:id", h.Get)
}

func (h *ResourceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListResources(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResourceHandler) ListBySkills(c fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("skillIds"))
	if raw == "" {
		return badRequest(nil)
	}

	parts := strings.Split(raw, ",")
	skillIDs := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return badRequest(err)
		}
		skillIDs = append(skillIDs, id)
	}

	items, err := h.uc.ListResourcesBySkills(c.Context(), skillIDs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResourceHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(err)
	}

	item, err := h.uc.GetResource(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}
