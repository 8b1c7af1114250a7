package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

// RoadmapCache is a read-through cache for resolved roadmaps. A nil cache
// disables caching entirely.
type RoadmapCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type CareerPathItem struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	RequiredSkills []uuid.UUID `json:"required_skills"`
}

type SkillItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type RoadmapStepItem struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Position    int         `json:"position"`
	Skills      []SkillItem `json:"skills"`
}

type ResolvedRoadmap struct {
	CareerPath CareerPathItem    `json:"career_path"`
	Steps      []RoadmapStepItem `json:"steps"`
}

type RoadmapUsecase interface {
	ListCareerPaths(ctx context.Context) ([]CareerPathItem, error)
	GetCareerPath(ctx context.Context, id uuid.UUID) (CareerPathItem, error)
	ResolveRoadmap(ctx context.Context, careerPathID uuid.UUID) (ResolvedRoadmap, error)
}

type Roadmap struct {
	paths    repository.CareerPathRepository
	steps    repository.RoadmapStepRepository
	skills   repository.SkillRepository
	cache    RoadmapCache
	cacheTTL time.Duration
}

func NewRoadmapUsecase(
	paths repository.CareerPathRepository,
	steps repository.RoadmapStepRepository,
	skills repository.SkillRepository,
	cache RoadmapCache,
	cacheTTL time.Duration,
) *Roadmap {
	return &Roadmap{paths: paths, steps: steps, skills: skills, cache: cache, cacheTTL: cacheTTL}
}

func (u *Roadmap) ListCareerPaths(ctx context.Context) ([]CareerPathItem, error) {
	paths, err := u.paths.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]CareerPathItem, 0, len(paths))
	for _, p := range paths {
		out = append(out, careerPathItem(p))
	}
	return out, nil
}

func (u *Roadmap) GetCareerPath(ctx context.Context, id uuid.UUID) (CareerPathItem, error) {
	p, err := u.paths.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCareerPathNotFound) {
			return CareerPathItem{}, ErrCareerPathNotFound
		}
		return CareerPathItem{}, ErrInternal
	}
	return careerPathItem(p), nil
}

// ResolveRoadmap joins a career path with its ordered steps and the skill
// details each step requires. A step's skill id with no matching skill row is
// dropped from the joined result rather than failing the whole resolution.
func (u *Roadmap) ResolveRoadmap(ctx context.Context, careerPathID uuid.UUID) (ResolvedRoadmap, error) {
	if u.cache != nil {
		var cached ResolvedRoadmap
		if ok, err := u.cache.GetJSON(ctx, roadmapCacheKey(careerPathID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	path, err := u.paths.FindByID(ctx, careerPathID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerPathNotFound) {
			return ResolvedRoadmap{}, ErrCareerPathNotFound
		}
		return ResolvedRoadmap{}, ErrInternal
	}

	steps, err := u.steps.FindByCareerPathID(ctx, careerPathID)
	if err != nil {
		return ResolvedRoadmap{}, ErrInternal
	}

	skillIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, st := range steps {
		for _, id := range st.RequiredSkills {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			skillIDs = append(skillIDs, id)
		}
	}

	skillsByID, err := u.skills.FindByIDs(ctx, skillIDs)
	if err != nil {
		return ResolvedRoadmap{}, ErrInternal
	}

	resolved := ResolvedRoadmap{
		CareerPath: careerPathItem(path),
		Steps:      make([]RoadmapStepItem, 0, len(steps)),
	}
	for _, st := range steps {
		item := RoadmapStepItem{
			ID:          st.ID,
			Title:       st.Title,
			Description: st.Description,
			Position:    st.Position,
			Skills:      make([]SkillItem, 0, len(st.RequiredSkills)),
		}
		for _, id := range st.RequiredSkills {
			s, ok := skillsByID[id]
			if !ok {
				continue
			}
			item.Skills = append(item.Skills, SkillItem{ID: s.ID, Name: s.Name, Description: s.Description})
		}
		resolved.Steps = append(resolved.Steps, item)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, roadmapCacheKey(careerPathID), resolved, u.cacheTTL)
	}

	return resolved, nil
}

func roadmapCacheKey(careerPathID uuid.UUID) string {
	return "roadmap:" + careerPathID.String()
}

func careerPathItem(p repository.CareerPath) CareerPathItem {
	return CareerPathItem{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		RequiredSkills: p.RequiredSkills,
	}
}
