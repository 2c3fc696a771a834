// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bizsuite/backend/internal/integration/entrypoint/controller"
	"github.com/bizsuite/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	statementController   *controller.StatementController
	manualEntryController *controller.ManualEntryController
	statementRateLimiter  *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	statementController *controller.StatementController,
	manualEntryController *controller.ManualEntryController,
	statementRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		statementController:   statementController,
		manualEntryController: manualEntryController,
		statementRateLimiter:  statementRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")

	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	// Statement computation routes. The summary route must be registered
	// before the :type wildcard resolves "summary" as a statement type.
	if r.statementController != nil {
		statements := v1.Group("/statements")
		if r.statementRateLimiter != nil {
			statements.Use(r.statementRateLimiter.Middleware())
		}
		{
			statements.GET("/summary", r.statementController.Summary)
			statements.GET("/:type", r.statementController.Compute)
		}

		v1.GET("/categories", r.statementController.Categories)
	}

	// Manual statement-entry routes
	if r.manualEntryController != nil {
		entries := v1.Group("/manual-entries")
		{
			entries.GET("", r.manualEntryController.List)
			entries.POST("", r.manualEntryController.Create)
			entries.PUT("/:id", r.manualEntryController.Update)
			entries.DELETE("/:id", r.manualEntryController.Delete)
		}
	}
}
