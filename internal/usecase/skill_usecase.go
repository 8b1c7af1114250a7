package usecase

import (
	"context"

	"career-compass/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
}

type SkillCatalog struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *SkillCatalog {
	return &SkillCatalog{repo: repo}
}

func (u *SkillCatalog) ListSkills(ctx context.Context) ([]SkillItem, error) {
	skills, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]SkillItem, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillItem{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return out, nil
}
