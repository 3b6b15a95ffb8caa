// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/motivation"
	"github.com/habit-tracker/backend/internal/application/usecase/notification"
	"github.com/habit-tracker/backend/internal/application/usecase/progress"
	"github.com/habit-tracker/backend/internal/application/usecase/reminder"
	"github.com/habit-tracker/backend/internal/application/usecase/streak"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	progressRepo := persistence.NewProgressRepository(db)
	streakRepo := persistence.NewStreakRepository(db)
	reminderRepo := persistence.NewReminderRepository(db)
	profileRepo := persistence.NewProfileRepository(db)

	// Create adapters/services
	clock := adapters.NewZoneClock(cfg.Time.Zone)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	motivationService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	dashboardCache := cache.NewDashboardCache(redisClient, cfg.Redis.DashboardTTL)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, clock)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, dashboardCache)

	// Create progress use cases
	recomputeGoalUseCase := progress.NewRecomputeGoalUseCase(goalRepo, progressRepo)
	recordProgressUseCase := progress.NewRecordProgressUseCase(goalRepo, progressRepo, recomputeGoalUseCase, dashboardCache, clock)

	// Create streak, deadline and dashboard use cases
	advanceStreakUseCase := streak.NewAdvanceStreakUseCase(streakRepo, clock)
	checkDeadlinesUseCase := notification.NewCheckDeadlinesUseCase(goalRepo, clock)
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(goalRepo, dashboardCache, clock)

	// Create reminder and motivation use cases
	generateRemindersUseCase := reminder.NewGenerateRemindersUseCase(goalRepo, reminderRepo, clock)
	getMotivationUseCase := motivation.NewGetMotivationUseCase(profileRepo, goalRepo, streakRepo, motivationService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		deleteGoalUseCase,
	)
	progressController := controller.NewProgressController(recordProgressUseCase)
	streakController := controller.NewStreakController(advanceStreakUseCase)
	notificationController := controller.NewNotificationController(checkDeadlinesUseCase)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	reminderController := controller.NewReminderController(generateRemindersUseCase)
	motivationController := controller.NewMotivationController(getMotivationUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var motivationRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		motivationRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		motivationRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		goalController,
		progressController,
		streakController,
		notificationController,
		dashboardController,
		reminderController,
		motivationController,
		motivationRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
