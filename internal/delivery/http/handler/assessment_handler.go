package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type skillAssessmentRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel int       `json:"proficiency_level"`
}

type assessmentRequest struct {
	SkillsAssessment []skillAssessmentRequest `json:"skills_assessment"`
	CareerGoal       *uuid.UUID               `json:"career_goal,omitempty"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/users/:userId/assessment", h.Submit)
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(err)
	}

	var req assessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	in := usecase.AssessmentInput{
		Skills:     make([]usecase.SkillAssessment, 0, len(req.SkillsAssessment)),
		CareerGoal: req.CareerGoal,
	}
	for _, sa := range req.SkillsAssessment {
		in.Skills = append(in.Skills, usecase.SkillAssessment{
			SkillID:          sa.SkillID,
			ProficiencyLevel: sa.ProficiencyLevel,
		})
	}

	if err := h.uc.ProcessAssessment(c.Context(), userID, in); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Assessment completed successfully", nil)
}
