// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/coinbag/backend/config"
	"github.com/coinbag/backend/internal/application/usecase/account"
	"github.com/coinbag/backend/internal/application/usecase/auth"
	"github.com/coinbag/backend/internal/application/usecase/cashflow"
	"github.com/coinbag/backend/internal/application/usecase/category"
	"github.com/coinbag/backend/internal/application/usecase/digest"
	"github.com/coinbag/backend/internal/application/usecase/paycycle"
	"github.com/coinbag/backend/internal/application/usecase/planner"
	"github.com/coinbag/backend/internal/infra/server/router"
	"github.com/coinbag/backend/internal/integration/adapters"
	"github.com/coinbag/backend/internal/integration/cache"
	"github.com/coinbag/backend/internal/integration/email"
	"github.com/coinbag/backend/internal/integration/entrypoint/controller"
	"github.com/coinbag/backend/internal/integration/entrypoint/middleware"
	"github.com/coinbag/backend/internal/integration/persistence"
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
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	cashFlowRepo := persistence.NewCashFlowRepository(db)
	payCycleRepo := persistence.NewPayCycleRepository(db)
	digestLogRepo := persistence.NewDigestLogRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	planCache := cache.NewRedisPlanCache(redisClient, cfg.Cache.PlanTTL)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, planCache)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo, planCache)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, cashFlowRepo, payCycleRepo, planCache)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, planCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, planCache)

	// Create cash flow use cases
	listCashFlowsUseCase := cashflow.NewListCashFlowsUseCase(cashFlowRepo)
	createCashFlowUseCase := cashflow.NewCreateCashFlowUseCase(cashFlowRepo, accountRepo, categoryRepo, planCache)
	updateCashFlowUseCase := cashflow.NewUpdateCashFlowUseCase(cashFlowRepo, accountRepo, categoryRepo, planCache)
	deleteCashFlowUseCase := cashflow.NewDeleteCashFlowUseCase(cashFlowRepo, planCache)

	// Create pay cycle use cases
	getPayCycleUseCase := paycycle.NewGetPayCycleUseCase(payCycleRepo)
	upsertPayCycleUseCase := paycycle.NewUpsertPayCycleUseCase(payCycleRepo, accountRepo, planCache)

	// Create planner use cases
	getPlanUseCase := planner.NewGetPlanUseCase(accountRepo, cashFlowRepo, categoryRepo, payCycleRepo)
	cachedGetPlanUseCase := planner.NewCachedGetPlanUseCase(getPlanUseCase, planCache)
	sendDigestUseCase := digest.NewSendPlanDigestUseCase(cachedGetPlanUseCase, userRepo, emailSender, digestLogRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	cashFlowController := controller.NewCashFlowController(
		listCashFlowsUseCase,
		createCashFlowUseCase,
		updateCashFlowUseCase,
		deleteCashFlowUseCase,
	)

	payCycleController := controller.NewPayCycleController(
		getPayCycleUseCase,
		upsertPayCycleUseCase,
	)

	plannerController := controller.NewPlannerController(
		cachedGetPlanUseCase,
		sendDigestUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		cashFlowController,
		payCycleController,
		plannerController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
