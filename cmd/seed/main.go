// Command seed loads the food catalog files, demo profiles and a demo
// intake day per profile.
package main

import (
	"context"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/config"
	"github.com/blaisecz/nutrition-tracker/internal/logger"
	"github.com/blaisecz/nutrition-tracker/internal/repository"
	"github.com/blaisecz/nutrition-tracker/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error", "console").Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat).Named("seed")
	defer log.Sync()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	foods := repository.NewFoodRepository(db)
	profiles := repository.NewProfileRepository(db)

	var days seed.DayWriter
	switch cfg.StoreBackend {
	case config.StoreRedis:
		client, err := config.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer client.Close()
		days = repository.NewRedisAggregateStore(client, repository.RedisStoreOptions{
			MaxRetries: cfg.RedisRetries,
			TTL:        cfg.RedisTTL,
		})
	case config.StoreMemory:
		log.Warn("in-memory aggregate store does not outlive the seeder, skipping demo intake")
	default:
		days = repository.NewGormAggregateStore(db)
	}

	if err := seed.Run(ctx, foods, profiles, days, cfg.CatalogDir, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
}
