// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/coinbag/backend/internal/integration/entrypoint/controller"
	"github.com/coinbag/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	accountController  *controller.AccountController
	categoryController *controller.CategoryController
	cashFlowController *controller.CashFlowController
	payCycleController *controller.PayCycleController
	plannerController  *controller.PlannerController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	cashFlowController *controller.CashFlowController,
	payCycleController *controller.PayCycleController,
	plannerController *controller.PlannerController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		accountController:  accountController,
		categoryController: categoryController,
		cashFlowController: cashFlowController,
		payCycleController: payCycleController,
		plannerController:  plannerController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Cash flow routes (require authentication)
		if r.cashFlowController != nil && r.authMiddleware != nil {
			cashFlows := v1.Group("/cash-flows")
			cashFlows.Use(r.authMiddleware.Authenticate())
			{
				cashFlows.GET("", r.cashFlowController.List)
				cashFlows.POST("", r.cashFlowController.Create)
				cashFlows.PATCH("/:id", r.cashFlowController.Update)
				cashFlows.DELETE("/:id", r.cashFlowController.Delete)
			}
		}

		// Pay cycle routes (require authentication)
		if r.payCycleController != nil && r.authMiddleware != nil {
			payCycle := v1.Group("/pay-cycle")
			payCycle.Use(r.authMiddleware.Authenticate())
			{
				payCycle.GET("", r.payCycleController.Get)
				payCycle.PUT("", r.payCycleController.Upsert)
			}
		}

		// Planner routes (require authentication)
		if r.plannerController != nil && r.authMiddleware != nil {
			planner := v1.Group("/planner")
			planner.Use(r.authMiddleware.Authenticate())
			{
				planner.GET("/plan", r.plannerController.GetPlan)
				planner.POST("/digest", r.plannerController.SendDigest)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
