package usecase

import (
	"context"

	"career-compass/internal/repository"
	"career-compass/internal/ws"

	"github.com/google/uuid"
)

type SkillAssessment struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
}

type AssessmentInput struct {
	Skills     []SkillAssessment
	CareerGoal *uuid.UUID
}

type AssessmentUsecase interface {
	ProcessAssessment(ctx context.Context, userID uuid.UUID, in AssessmentInput) error
}

type Assessment struct {
	userSkills repository.UserSkillRepository
	goals      repository.UserGoalRepository
}

func NewAssessmentUsecase(userSkills repository.UserSkillRepository, goals repository.UserGoalRepository) *Assessment {
	return &Assessment{userSkills: userSkills, goals: goals}
}

// ProcessAssessment validates the whole batch before touching the store, so a
// single out-of-range rating aborts the submission with nothing applied. Each
// rating is then an atomic upsert keyed on (userID, skillID); repeating the
// same submission leaves exactly one row per skill.
func (u *Assessment) ProcessAssessment(ctx context.Context, userID uuid.UUID, in AssessmentInput) error {
	if userID == uuid.Nil {
		return ErrInvalidInput
	}
	if len(in.Skills) == 0 && in.CareerGoal == nil {
		return ErrInvalidInput
	}
	for _, sa := range in.Skills {
		if sa.SkillID == uuid.Nil {
			return ErrInvalidInput
		}
		if !isValidProficiency(sa.ProficiencyLevel) {
			return ErrInvalidProficiencyLevel
		}
	}
	if in.CareerGoal != nil && *in.CareerGoal == uuid.Nil {
		return ErrInvalidInput
	}

	for _, sa := range in.Skills {
		if _, err := u.userSkills.Upsert(ctx, userID, sa.SkillID, sa.ProficiencyLevel); err != nil {
			if isForeignKeyViolation(err) {
				return ErrSkillNotFound
			}
			return ErrInternal
		}
	}

	if in.CareerGoal != nil {
		if _, err := u.goals.Upsert(ctx, userID, *in.CareerGoal); err != nil {
			if isForeignKeyViolation(err) {
				return ErrCareerPathNotFound
			}
			return ErrInternal
		}
	}

	ws.NotifyAssessmentProcessed(userID, len(in.Skills))
	return nil
}

func isValidProficiency(v int) bool {
	return v >= 1 && v <= 5
}
