package usecase

import (
	"context"
	"errors"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type ResourceItem struct {
	ID       uuid.UUID   `json:"id"`
	Title    string      `json:"title"`
	Provider string      `json:"provider"`
	URL      string      `json:"url"`
	Type     string      `json:"type"`
	Rating   *float64    `json:"rating,omitempty"`
	Duration *string     `json:"duration,omitempty"`
	SkillIDs []uuid.UUID `json:"skill_ids"`
}

type ResourceUsecase interface {
	ListResources(ctx context.Context) ([]ResourceItem, error)
	GetResource(ctx context.Context, id uuid.UUID) (ResourceItem, error)
	ListResourcesBySkills(ctx context.Context, skillIDs []uuid.UUID) ([]ResourceItem, error)
}

type ResourceCatalog struct {
	repo repository.ResourceRepository
}

func NewResourceUsecase(repo repository.ResourceRepository) *ResourceCatalog {
	return &ResourceCatalog{repo: repo}
}

func (u *ResourceCatalog) ListResources(ctx context.Context) ([]ResourceItem, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return resourceItems(items), nil
}

func (u *ResourceCatalog) GetResource(ctx context.Context, id uuid.UUID) (ResourceItem, error) {
	if id == uuid.Nil {
		return ResourceItem{}, ErrInvalidInput
	}
	res, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return ResourceItem{}, ErrResourceNotFound
		}
		return ResourceItem{}, ErrInternal
	}
	return resourceItem(res), nil
}

func (u *ResourceCatalog) ListResourcesBySkills(ctx context.Context, skillIDs []uuid.UUID) ([]ResourceItem, error) {
	if len(skillIDs) == 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.FindBySkillIDs(ctx, skillIDs)
	if err != nil {
		return nil, ErrInternal
	}
	return resourceItems(items), nil
}

func resourceItems(in []repository.Resource) []ResourceItem {
	out := make([]ResourceItem, 0, len(in))
	for _, r := range in {
		out = append(out, resourceItem(r))
	}
	return out
}

func resourceItem(r repository.Resource) ResourceItem {
	return ResourceItem{
		ID:       r.ID,
		Title:    r.Title,
		Provider: r.Provider,
		URL:      r.URL,
		Type:     r.Type,
		Rating:   r.Rating,
		Duration: r.Duration,
		SkillIDs: r.SkillIDs,
	}
}
