package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "blogapi/internal/adapters/database"
	"blogapi/internal/adapters/httpapi"
	redisadapter "blogapi/internal/adapters/redis"
	"blogapi/internal/config"
	postapp "blogapi/internal/core/post/service"
	postPort "blogapi/internal/ports/post"
	"blogapi/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	bootLogger, err := config.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	config.LoadEnv(bootLogger) // بارگذاری تنظیمات از .env
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		bootLogger.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync() // flush buffer

	// اتصال به دیتابیس؛ هر خطایی در این مرحله کشنده است
	db, err := config.OpenDB(cfg.DB, logger)
	if err != nil {
		logger.Fatal("Error connecting to the database", zap.Error(err))
	}
	defer config.CloseDB(db, logger)

	if err := dbadapter.EnsureSchema(db); err != nil {
		logger.Fatal("Error ensuring schema", zap.Error(err))
	}
	logger.Info("Database initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// اتصال به Redis (اختیاری)
	redisClient, err := config.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer closeRedis(redisClient, logger)
	}

	postRepo := dbadapter.NewPostRepositoryDatabase(db) // آداپتر خروجی
	var feed postPort.FeedIndex = postapp.NopFeedIndex{}
	if redisClient != nil {
		feed = redisadapter.NewFeedRepositoryRedis(redisClient) // آداپتر خروجی
		logger.Info("Feed index enabled", zap.String("redis", cfg.Redis.Addr))

		// اجرای worker در پس‌زمینه
		go workers.NewFeedWorker(postRepo, feed, cfg.FeedSyncInterval, logger).Run(ctx)
	}
	postSvc := postapp.NewPostService(postRepo, feed, logger) // یوزکیس/سرویس

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Error getting raw DB", zap.Error(err))
	}
	r := httpapi.SetupRoutes(postSvc, sqlDB, logger, registry) // تزریق یوزکیس به آداپتر ورودی

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}

func closeRedis(client *redis.Client, logger *zap.Logger) {
	if err := client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}
}
