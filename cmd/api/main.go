// Nutrition Tracker API
//
// REST API for daily nutrient intake tracking, gap analysis and food
// recommendations.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/api"
	"github.com/blaisecz/nutrition-tracker/internal/api/handler"
	"github.com/blaisecz/nutrition-tracker/internal/api/middleware"
	"github.com/blaisecz/nutrition-tracker/internal/catalog"
	"github.com/blaisecz/nutrition-tracker/internal/config"
	"github.com/blaisecz/nutrition-tracker/internal/langfuse"
	"github.com/blaisecz/nutrition-tracker/internal/llm"
	"github.com/blaisecz/nutrition-tracker/internal/logger"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/blaisecz/nutrition-tracker/internal/seed"
	"github.com/blaisecz/nutrition-tracker/internal/service"
	"github.com/blaisecz/nutrition-tracker/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	coachPromptName  = "nutrition-coach"
	coachPromptLabel = "production"
	shutdownTimeout  = 15 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New("error", "console").Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration completed")

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	aggregates, closeStore, err := newAggregateStore(ctx, cfg, db, log)
	if err != nil {
		log.Fatal("failed to initialize aggregate store", zap.Error(err))
	}
	defer closeStore()

	if cfg.Seed {
		log.Info("seeding database", zap.String("catalog_dir", cfg.CatalogDir))
		if err := seed.Run(ctx, foodRepo, profileRepo, aggregates, cfg.CatalogDir, log.Named("seed")); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	foods := catalog.NewStoreCatalog(foodRepo)
	if n, err := foodRepo.Count(ctx); err == nil && n == 0 {
		log.Warn("food catalog is empty, every meal will use fallback nutrients; run with SEED=true")
	}

	// Langfuse traces and ratings (no-op without credentials)
	tracing := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      log,
	})

	// The coach stays a nil interface when no key is configured
	var coach llm.Coach
	if cfg.CoachEnabled() {
		prompt := langfuse.LoadPrompt(ctx, langfuse.PromptSource{
			BaseURL:      cfg.LangfuseBaseURL,
			PublicKey:    cfg.LangfusePublicKey,
			SecretKey:    cfg.LangfuseSecretKey,
			Name:         coachPromptName,
			Label:        coachPromptLabel,
			FallbackPath: cfg.CoachPromptFile,
			Default:      llm.DefaultSystemPrompt,
		}, log)
		coach = llm.NewOpenAICoach(cfg.OpenAIAPIKey, cfg.OpenAICoachModel, prompt)
	} else {
		log.Warn("OpenAI API key not configured, coach endpoint will be unavailable")
	}

	// Initialize services
	profileService := service.NewProfileService(profileRepo, aggregates, historyRepo, feedbackRepo, log)
	intakeService := service.NewIntakeService(aggregates, profileRepo, foods, nil, log)
	analysisService := service.NewAnalysisService(profileRepo, aggregates, nil)
	recommendationService := service.NewRecommendationService(profileRepo, aggregates, foods, historyRepo, feedbackRepo,
		service.RecommendationConfig{RecentMealSpan: cfg.RecentMealSpan}, log)
	coachService := service.NewCoachService(profileRepo, aggregates, coach, tracing, nil, log)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService, log)
	intakeHandler := handler.NewIntakeHandler(intakeService, log)
	analysisHandler := handler.NewAnalysisHandler(analysisService, recommendationService, coachService, log)
	foodHandler := handler.NewFoodHandler(foods, log)

	// Setup router
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router := api.NewRouter(profileHandler, intakeHandler, analysisHandler, foodHandler, limiter, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("store_backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := tracing.Flush(shutdownCtx); err != nil {
		log.Warn("langfuse flush incomplete", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer shutdown failed", zap.Error(err))
	}
}

// newAggregateStore builds the configured daily aggregate store and a
// function releasing its resources.
func newAggregateStore(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) (repository.AggregateStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		client, err := config.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewRedisAggregateStore(client, repository.RedisStoreOptions{
			MaxRetries: cfg.RedisRetries,
			TTL:        cfg.RedisTTL,
		})
		return store, func() { _ = client.Close() }, nil
	case config.StoreMemory:
		log.Warn("using in-memory aggregate store, intake is lost on restart")
		return repository.NewMemoryAggregateStore(), func() {}, nil
	default:
		return repository.NewGormAggregateStore(db), func() {}, nil
	}
}
