// Package main implements the entry point for the shop API server, which
// provides JWT-based authentication and the catalog CRUD endpoints.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/modshop/shop-api/internal/config"
	"github.com/modshop/shop-api/internal/platform/logger"
	"github.com/modshop/shop-api/internal/platform/postgres"
	"github.com/modshop/shop-api/internal/service"
	"github.com/modshop/shop-api/internal/service/auth"
	"github.com/modshop/shop-api/internal/store"
)

// application bundles the dependencies the router and server need.
type application struct {
	config          *config.Config
	logger          *slog.Logger
	db              *sql.DB
	jwtService      auth.JWTService
	authService     *auth.Service
	userService     service.UserService
	categoryService service.CategoryService
	productService  service.ProductService
}

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations (up|down|status) and exit")
	flag.Parse()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if *migrateCmd != "" {
		if err := runMigrations(app.db, *migrateCmd); err != nil {
			app.logger.Error("migration failed", "command", *migrateCmd, "error", err)
			app.cleanup()
			log.Fatalf("Migration failed: %v", err)
		}
		app.logger.Info("migrations completed", "command", *migrateCmd)
		return
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, and wires the service graph with explicit constructor-passed
// dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	var (
		userStore     store.UserStore     = postgres.NewUserStore(db)
		categoryStore store.CategoryStore = postgres.NewCategoryStore(db)
		productStore  store.ProductStore  = postgres.NewProductStore(db)
	)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	authService, err := auth.NewService(userStore, jwtService, hasher, store.NewTxRunner(db), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          appLogger,
		db:              db,
		jwtService:      jwtService,
		authService:     authService,
		userService:     service.NewUserService(userStore, appLogger),
		categoryService: service.NewCategoryService(categoryStore, appLogger),
		productService:  service.NewProductService(productStore, categoryStore, appLogger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
