package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/intelliquiz/quiz-service/internal/config"
	"github.com/intelliquiz/quiz-service/internal/repositories/kv"
	"github.com/intelliquiz/quiz-service/internal/services"
	"github.com/intelliquiz/quiz-service/internal/store"
	"github.com/intelliquiz/quiz-service/internal/utils"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

// The binary bootstraps the persisted state: it loads configuration, opens
// the configured store backend, runs the one-time seed and prints a summary
// of the collections. The UI layer consumes the services in-process.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	repo := kv.NewKVRepository(kv.RepositoryConfig{Store: st})

	v := validator.New()

	serviceManager := services.NewServiceManager(st, repo, slogLogger, v)

	ctx := context.Background()
	if err := serviceManager.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	quizzes, err := serviceManager.Quizzes().List(ctx)
	if err != nil {
		log.Fatalf("Failed to list quizzes: %v", err)
	}
	tests, err := serviceManager.Schedule().List(ctx)
	if err != nil {
		log.Fatalf("Failed to list mock tests: %v", err)
	}

	logger.Info("Store ready",
		"environment", cfg.Environment,
		"quizzes", len(quizzes),
		"mock_tests", len(tests))

	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}
	if err := repo.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}
}

// openStore selects the backend: Redis when REDIS_URL is set, local JSON
// files otherwise.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(redis.NewClient(opts), cfg.StorePrefix), nil
	}
	return store.NewFileStore(cfg.DataDir, cfg.StorePrefix)
}
