package container

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"template-backend/internal/config"
	"template-backend/internal/infrastructure/database"
	"template-backend/pkg/jwt"

	// Example domain imports
	"template-backend/internal/domains/example"
	exampleHandler "template-backend/internal/domains/example/handler"
	exampleRepo "template-backend/internal/domains/example/repository"
	exampleService "template-backend/internal/domains/example/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds ALL application dependencies.
// It is the root of the dependency graph: infrastructure first, then
// repositories, services and handlers layered on top.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, one instance for the app lifetime.
	// Exactly one of DB / SQLiteDB is non-nil, selected by
	// Config.Storage.Backend.

	Config     *config.Config
	DB         *database.PostgresDB // postgres backend
	SQLiteDB   *sql.DB              // sqlite backend
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	ExampleRepo example.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	ExampleService example.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	ExampleHandler *exampleHandler.ExampleHandler

	// New domains slot in here when a copy of this template grows
	// beyond the example resource.
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer creates and initializes the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (storage, JWT) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s, Storage: %s)",
		cfg.App.Environment, cfg.Storage.Backend)

	// ========================================
	// STEP 2: INITIALIZE STORAGE
	// ========================================
	if err := c.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// ========================================
	// STEP 3: INITIALIZE JWT MANAGER
	// ========================================
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	if err := c.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initStorage connects the configured persistence backend.
func (c *Container) initStorage() error {
	switch c.Config.Storage.Backend {
	case "postgres":
		log.Println("🗄️  Connecting to PostgreSQL...")

		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := db.HealthCheck(context.Background()); err != nil {
			db.Close()
			return fmt.Errorf("database health check failed: %w", err)
		}

		c.DB = db
		log.Println("✅ PostgreSQL connected")

	case "sqlite":
		log.Printf("🗄️  Opening SQLite database (%s)...", c.Config.SQLite.Path)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := database.OpenSQLite(ctx, c.Config.SQLite.Path)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}

		// SQLite has no migration tooling around it, the schema is
		// applied on startup
		if err := exampleRepo.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to ensure sqlite schema: %w", err)
		}

		c.SQLiteDB = db
		log.Println("✅ SQLite ready")

	default:
		return fmt.Errorf("unknown storage backend: %s", c.Config.Storage.Backend)
	}

	return nil
}

// initRepositories wires the data access layer for the active backend.
func (c *Container) initRepositories() error {
	switch {
	case c.DB != nil:
		c.ExampleRepo = exampleRepo.NewPostgresRepository(c.DB.Pool)
	case c.SQLiteDB != nil:
		c.ExampleRepo = exampleRepo.NewSQLiteRepository(c.SQLiteDB)
	default:
		return fmt.Errorf("no storage backend initialized")
	}

	return nil
}

// initServices wires business logic onto the repositories.
func (c *Container) initServices() error {
	c.ExampleService = exampleService.NewExampleService(c.ExampleRepo)

	return nil
}

// initHandlers wires the HTTP layer onto the services.
func (c *Container) initHandlers() error {
	c.ExampleHandler = exampleHandler.NewExampleHandler(
		c.ExampleService,
		c.Config.API.PageSize,
	)

	return nil
}

// ========================================
// HELPER METHODS
// ========================================

// StorageHealth pings the active backend. The health endpoint calls
// this on every probe.
func (c *Container) StorageHealth(ctx context.Context) error {
	switch {
	case c.DB != nil:
		return c.DB.HealthCheck(ctx)
	case c.SQLiteDB != nil:
		return c.SQLiteDB.PingContext(ctx)
	default:
		return fmt.Errorf("no storage backend initialized")
	}
}

// Cleanup releases resources on shutdown.
// Called during the server's graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			log.Printf("⚠️  Failed to close SQLite: %v", err)
		} else {
			log.Println("✅ SQLite database closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
