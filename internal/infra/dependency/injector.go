// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/export"
	"github.com/expense-tracker/backend/internal/application/usecase/record"
	"github.com/expense-tracker/backend/internal/application/usecase/security"
	"github.com/expense-tracker/backend/internal/application/usecase/settings"
	"github.com/expense-tracker/backend/internal/application/usecase/statistics"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Gate   *security.Gate
	Router *router.Router
}

// NewInjector creates and wires all application dependencies.
// The security gate starts from the persisted lock settings, so a restart
// while app lock is enabled comes up locked.
func NewInjector(ctx context.Context, cfg *config.Config, database *db.Database) (*Injector, error) {
	gormDB := database.DB()

	// Repositories
	recordRepository := persistence.NewRecordRepository(gormDB)
	categoryRepository := persistence.NewCategoryRepository(gormDB)
	settingsStore := persistence.NewSettingsStore(gormDB)
	secretStore := persistence.NewSecretStore(gormDB)

	// Services
	passcodeService := adapters.NewPasscodeService()
	tokenService := adapters.NewTokenService(cfg.Session.Secret, cfg.Session.Expiry)
	biometricService := adapters.NewBiometricService(cfg.Security.BiometricAvailable)

	defaults := entity.Settings{
		CurrencySymbol: cfg.Defaults.CurrencySymbol,
	}

	storedSettings, err := settingsStore.Load(ctx, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	gate := security.NewGate(storedSettings.Lock, secretStore, passcodeService, biometricService, tokenService)

	// Use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepository)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepository)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepository)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepository)

	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepository)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepository)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepository)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepository)
	resolveDisplayUseCase := category.NewResolveDisplayUseCase(categoryRepository)

	getStatisticsUseCase := statistics.NewGetStatisticsUseCase(recordRepository)

	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsStore, defaults)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsStore, defaults)

	configureLockUseCase := security.NewConfigureLockUseCase(settingsStore, secretStore, passcodeService, gate, defaults)

	exportCSVUseCase := export.NewExportCSVUseCase(recordRepository)
	exportPDFUseCase := export.NewExportPDFUseCase(recordRepository)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	recordController := controller.NewRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		resolveDisplayUseCase,
	)
	statisticsController := controller.NewStatisticsController(getStatisticsUseCase)
	securityController := controller.NewSecurityController(gate, configureLockUseCase)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	exportController := controller.NewExportController(exportCSVUseCase, exportPDFUseCase, getSettingsUseCase)

	// Middleware
	lockMiddleware := middleware.NewLockMiddleware(gate)

	// Router
	appRouter := router.NewRouter(
		healthController,
		recordController,
		categoryController,
		statisticsController,
		securityController,
		settingsController,
		exportController,
		lockMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     gormDB,
		Gate:   gate,
		Router: appRouter,
	}, nil
}
