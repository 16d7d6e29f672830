// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	router "github.com/DanielA2212/ServerSideProject/internal/api"
	"github.com/DanielA2212/ServerSideProject/internal/api/handler"
	"github.com/DanielA2212/ServerSideProject/internal/config"
	"github.com/DanielA2212/ServerSideProject/internal/repository"
	"github.com/DanielA2212/ServerSideProject/internal/repository/postgres"
	"github.com/DanielA2212/ServerSideProject/internal/repository/sqlite"
	"github.com/DanielA2212/ServerSideProject/internal/service"
	"github.com/DanielA2212/ServerSideProject/internal/util"
	"github.com/DanielA2212/ServerSideProject/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository repository.UserRepository
	CostRepository repository.CostRepository

	// Services
	CostService service.CostService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// Monetary sums serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// 3. Connect to the store and run migrations
	switch cfg.DataBackend {
	case "sqlite":
		app.DB, err = db.NewSQLiteDB(cfg.SQLitePath)
	default:
		app.DB, err = db.NewPostgresDB(cfg.DB)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.RunMigrations(app.DB.DB, cfg.DataBackend); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database connection established.", "backend", cfg.DataBackend)

	// 4. Initialize Repositories
	switch cfg.DataBackend {
	case "sqlite":
		app.UserRepository = sqlite.NewUserRepository(app.DB)
		app.CostRepository = sqlite.NewCostRepository(app.DB)
	default:
		app.UserRepository = postgres.NewUserRepository(app.DB)
		app.CostRepository = postgres.NewCostRepository(app.DB)
	}
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.CostService = service.NewCostService(
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.CostRepository,
		service.Policy{
			AllowNonPositiveSum: cfg.AllowNonPositiveSum,
			EnforceYearRange:    cfg.EnforceYearRange,
		},
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	costHandler := handler.NewCostHandler(app.CostService, app.Logger)
	app.HTTPHandler = router.NewRouter(costHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
