package usecase

import (
	"context"
	"errors"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type UserSkillItem struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	SkillDescription string    `json:"skill_description"`
	ProficiencyLevel int       `json:"proficiency_level"`
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, proficiencyLevel int) (UserSkillItem, error)
	UpdateUserSkill(ctx context.Context, id uuid.UUID, proficiencyLevel int) (UserSkillItem, error)
}

type UserSkill struct {
	repo repository.UserSkillRepository
}

func NewUserSkillUsecase(repo repository.UserSkillRepository) *UserSkill {
	return &UserSkill{repo: repo}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, userSkillItem(it))
	}
	return out, nil
}

// AddUserSkill is an upsert: rating a skill the user already rated replaces
// the proficiency instead of creating a duplicate row.
func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, proficiencyLevel int) (UserSkillItem, error) {
	if skillID == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}
	if !isValidProficiency(proficiencyLevel) {
		return UserSkillItem{}, ErrInvalidProficiencyLevel
	}

	created, err := u.repo.Upsert(ctx, userID, skillID, proficiencyLevel)
	if err != nil {
		if isForeignKeyViolation(err) {
			return UserSkillItem{}, ErrSkillNotFound
		}
		return UserSkillItem{}, ErrInternal
	}
	return userSkillItem(created), nil
}

func (u *UserSkill) UpdateUserSkill(ctx context.Context, id uuid.UUID, proficiencyLevel int) (UserSkillItem, error) {
	if id == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}
	if !isValidProficiency(proficiencyLevel) {
		return UserSkillItem{}, ErrInvalidProficiencyLevel
	}

	updated, err := u.repo.UpdateProficiency(ctx, id, proficiencyLevel)
	if err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return UserSkillItem{}, ErrUserSkillNotFound
		}
		return UserSkillItem{}, ErrInternal
	}
	return userSkillItem(updated), nil
}

func userSkillItem(us repository.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.SkillName,
		SkillDescription: us.SkillDescription,
		ProficiencyLevel: us.ProficiencyLevel,
	}
}
