package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"gearguard/internal/ai"
	"gearguard/internal/repositories"
	"gearguard/internal/repositories/memory"
	"gearguard/internal/routes"
	"gearguard/migrations"
	"gearguard/pkg/apperrors"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
	appmw "gearguard/pkg/middleware"
	"gearguard/pkg/monitoring"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
	"gearguard/pkg/websocket"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))
	e.Use(appmw.RequestLogger(logger))

	metrics := monitoring.NewMetrics()
	e.Use(metrics.Middleware())

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("registering custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	store, cleanup := buildStore(ctx, cfg, logger)
	defer cleanup()

	cache := buildCache(ctx, cfg, logger)
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	assistant := buildAssistant(cfg, logger)

	hub := websocket.NewHub(logger)
	go hub.Run()

	routes.InitRouter(e, routes.Deps{
		Store:     store,
		Cache:     cache,
		JWT:       jwtSvc,
		Assistant: assistant,
		Hub:       hub,
		Metrics:   metrics,
		Logger:    logger,
		Config:    cfg,
	})

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

// buildStore selects the backing store. The memory driver serves the seeded
// demo dataset; postgres applies the goose migrations on start.
func buildStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repositories.Store, func()) {
	if cfg.Store.Driver == config.StoreMemory {
		logger.Info("using in-memory store with seeded dataset")
		return memory.NewStore(memory.Seed(time.Now())), func() {}
	}

	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("connecting to postgres", zap.Error(err))
	}
	if err := postgresql.RunMigrations(pool, migrations.FS, logger); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}
	logger.Info("connected to postgres")
	return repositories.NewPostgresStore(pool), pool.Close
}

func buildCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) repositories.CacheRepositoryInterface {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, using in-process cache")
		return repositories.NewMemoryCacheRepository()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Fatal("connecting to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	return repositories.NewRedisCacheRepository(client)
}

func buildAssistant(cfg *config.Config, logger *zap.Logger) *ai.Assistant {
	var model llms.Model
	if cfg.AI.Enabled {
		m, err := ai.NewOpenAIModel(cfg.AI.Model)
		if err != nil {
			logger.Warn("AI model unavailable, falling back to deterministic rules", zap.Error(err))
		} else {
			model = m
		}
	}
	return ai.NewAssistant(model, logger)
}
