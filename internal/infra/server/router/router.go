// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	goalController         *controller.GoalController
	progressController     *controller.ProgressController
	streakController       *controller.StreakController
	notificationController *controller.NotificationController
	dashboardController    *controller.DashboardController
	reminderController     *controller.ReminderController
	motivationController   *controller.MotivationController
	motivationRateLimiter  *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	progressController *controller.ProgressController,
	streakController *controller.StreakController,
	notificationController *controller.NotificationController,
	dashboardController *controller.DashboardController,
	reminderController *controller.ReminderController,
	motivationController *controller.MotivationController,
	motivationRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		goalController:         goalController,
		progressController:     progressController,
		streakController:       streakController,
		notificationController: notificationController,
		dashboardController:    dashboardController,
		reminderController:     reminderController,
		motivationController:   motivationController,
		motivationRateLimiter:  motivationRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Goal CRUD routes (only setup if goal controller is available)
		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.POST("", r.goalController.Create)
				goals.GET("", r.goalController.List)
				goals.GET("/:id", r.goalController.Get)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Progress, deadline and dashboard routes
		if r.progressController != nil {
			v1.POST("/goals/progress", r.progressController.Record)
		}
		if r.notificationController != nil {
			v1.POST("/goals/deadlines", r.notificationController.CheckDeadlines)
		}
		if r.dashboardController != nil {
			v1.POST("/goals/dashboard", r.dashboardController.Get)
		}

		// Streak routes
		if r.streakController != nil {
			v1.POST("/streaks/update", r.streakController.Update)
		}

		// Reminder sweep route
		if r.reminderController != nil {
			v1.POST("/reminders/run", r.reminderController.Run)
		}

		// Motivation route (requires authentication, AI calls are rate limited)
		if r.motivationController != nil && r.authMiddleware != nil && r.motivationRateLimiter != nil {
			motivation := v1.Group("/motivation")
			motivation.Use(r.authMiddleware.Authenticate())
			{
				motivation.POST("", r.motivationRateLimiter.Middleware(), r.motivationController.Get)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
