package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/adapter/handler/http"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/adapter/logger"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/adapter/postgres"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/adapter/prometheus"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/adapter/redis"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/config"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to connect to database:%w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("Failed to ping database:%w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("Failed to run migrations:%w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	recordRepo := postgres.NewRecordRepository(db)

	// Services
	accountService := services.NewAccountService(userRepo, loggerAdapter, validate)
	vehicleService := services.NewVehicleService(vehicleRepo, loggerAdapter, validate, cacheAdapter)
	recordService := services.NewRecordService(recordRepo, vehicleRepo, loggerAdapter, validate, cacheAdapter)
	summaryService := services.NewSummaryService(vehicleRepo, loggerAdapter, cacheAdapter)

	// HTTP Handlers
	accountHandler := http.NewAccountHandler(accountService, loggerAdapter, metrics)
	vehicleHandler := http.NewVehicleHandler(vehicleService, loggerAdapter, metrics)
	recordHandler := http.NewRecordHandler(recordService, loggerAdapter, metrics)
	summaryHandler := http.NewSummaryHandler(summaryService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		accountHandler,
		vehicleHandler,
		recordHandler,
		summaryHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Runs the HTTP server without blocking the caller.
func (a *App) Run() {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	go func() {
		if err := a.HTTPRouter.Serve(listenAddr); err != nil {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
