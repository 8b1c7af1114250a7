package v1

import (
	"time"

	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	DB    database.DB
	Cache *cache.Redis
}

func Register(r fiber.Router, deps Deps) {
	if r == nil || deps.DB == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	skillRepo := repository.NewPostgresSkillRepository(deps.DB)
	pathRepo := repository.NewPostgresCareerPathRepository(deps.DB)
	stepRepo := repository.NewPostgresRoadmapStepRepository(deps.DB)
	userSkillRepo := repository.NewPostgresUserSkillRepository(deps.DB)
	goalRepo := repository.NewPostgresUserGoalRepository(deps.DB)
	progressRepo := repository.NewPostgresUserProgressRepository(deps.DB)
	resourceRepo := repository.NewPostgresResourceRepository(deps.DB)
	taskRepo := repository.NewPostgresTaskRepository(deps.DB)

	var roadmapCache usecase.RoadmapCache
	cacheTTL := time.Duration(0)
	if deps.Cache != nil {
		roadmapCache = deps.Cache
		cacheTTL = deps.Cache.DefaultTTL()
	}

	userUC := usecase.NewUserUsecase(userRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo)
	roadmapUC := usecase.NewRoadmapUsecase(pathRepo, stepRepo, skillRepo, roadmapCache, cacheTTL)
	goalUC := usecase.NewGoalUsecase(goalRepo, pathRepo)
	progressUC := usecase.NewProgressUsecase(goalRepo, stepRepo, progressRepo, userSkillRepo)
	assessmentUC := usecase.NewAssessmentUsecase(userSkillRepo, goalRepo)
	resourceUC := usecase.NewResourceUsecase(resourceRepo)
	taskUC := usecase.NewTaskUsecase(taskRepo, resourceRepo, stepRepo)

	handler.NewUserHandler(userUC).RegisterRoutes(r)
	handler.NewSkillHandler(skillUC).RegisterRoutes(r)
	handler.NewUserSkillHandler(userSkillUC).RegisterRoutes(r)
	handler.NewCareerPathHandler(roadmapUC).RegisterRoutes(r)
	handler.NewGoalHandler(goalUC).RegisterRoutes(r)
	handler.NewProgressHandler(progressUC).RegisterRoutes(r)
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(r)
	handler.NewResourceHandler(resourceUC).RegisterRoutes(r)
	handler.NewTaskHandler(taskUC).RegisterRoutes(r)
}
