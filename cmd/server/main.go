package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yrwanda/practicelog/internal/bootstrap"
	"github.com/yrwanda/practicelog/internal/config"
	"github.com/yrwanda/practicelog/internal/model"
	"github.com/yrwanda/practicelog/internal/server"
	"github.com/yrwanda/practicelog/pkg/database"
	"github.com/yrwanda/practicelog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)
	sugar := zapLogger.Sugar()

	if cfg.UsingFallbackSecret {
		sugar.Warn("JWT_SECRET is not set; using the built-in insecure fallback secret. " +
			"Every token signed with it is forgeable. Do not run like this in production.")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalw("failed to connect database", "error", err)
	}
	if err := migrate(db); err != nil {
		sugar.Fatalw("migration failed", "error", err)
	}
	sugar.Info("database connection established")

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemoUser(db, sugar); err != nil {
			sugar.Fatalw("failed to seed demo user", "error", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		sugar.Info("redis rate limiting enabled")
	}

	srv := server.New(cfg, db, redisClient, sugar)

	sugar.Infow("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := srv.Run(); err != nil {
		sugar.Fatalw("server exited with error", "error", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.PracticeAction{},
		&model.PracticeRecord{},
	)
}
