package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"payment-analytics-service/internal/cache"
	"payment-analytics-service/internal/config"
	"payment-analytics-service/internal/controller"
	"payment-analytics-service/internal/db"
	httpserver "payment-analytics-service/internal/http"
	"payment-analytics-service/internal/repository"
	"payment-analytics-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.AppMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewConnection(ctx, cfg)
	if err != nil {
		logger.Fatal("connect clickhouse", zap.Error(err))
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	var insightsCache cache.InsightsCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		insightsCache = cache.NewRedisInsightsCache(redisClient, cfg.CacheTTL)
		logger.Info("insights cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	repo := repository.NewPaymentRepository(conn)
	analyticsService := service.NewAnalyticsService(repo, insightsCache, logger, cfg.AssumedOrderValue)
	analyticsController := controller.NewAnalyticsController(analyticsService, logger)

	server := httpserver.NewServer(cfg, logger, analyticsController)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.HTTPPort))
		if err := server.Listen(cfg.HTTPPort); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := server.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(appMode string) (*zap.Logger, error) {
	if appMode == "prod" || appMode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
