// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	recordController     *controller.RecordController
	categoryController   *controller.CategoryController
	statisticsController *controller.StatisticsController
	securityController   *controller.SecurityController
	settingsController   *controller.SettingsController
	exportController     *controller.ExportController
	lockMiddleware       *middleware.LockMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	categoryController *controller.CategoryController,
	statisticsController *controller.StatisticsController,
	securityController *controller.SecurityController,
	settingsController *controller.SettingsController,
	exportController *controller.ExportController,
	lockMiddleware *middleware.LockMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		recordController:     recordController,
		categoryController:   categoryController,
		statisticsController: statisticsController,
		securityController:   securityController,
		settingsController:   settingsController,
		exportController:     exportController,
		lockMiddleware:       lockMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Security endpoints stay
// reachable while the gate is locked; everything else sits behind the lock
// middleware.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		security := v1.Group("/security")
		{
			security.GET("/status", r.securityController.Status)
			security.POST("/unlock/pin", r.securityController.UnlockPIN)
			security.POST("/unlock/biometric", r.securityController.UnlockBiometric)
			security.POST("/lifecycle", r.securityController.Lifecycle)
			security.PUT("/lock", r.securityController.ConfigureLock)
		}

		guarded := v1.Group("")
		guarded.Use(r.lockMiddleware.Guard())
		{
			records := guarded.Group("/records")
			{
				records.GET("", r.recordController.List)
				records.POST("", r.recordController.Create)
				records.PATCH("/:id", r.recordController.Update)
				records.DELETE("/:id", r.recordController.Delete)
			}

			categories := guarded.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/display", r.categoryController.ResolveDisplay)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}

			guarded.GET("/statistics", r.statisticsController.Get)

			settings := guarded.Group("/settings")
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("", r.settingsController.Update)
			}

			export := guarded.Group("/export")
			{
				export.GET("/csv", r.exportController.CSV)
				export.GET("/pdf", r.exportController.PDF)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
