package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/cache"
	"github.com/Silver0524/MatPredict/internal/config"
	"github.com/Silver0524/MatPredict/internal/handlers"
	"github.com/Silver0524/MatPredict/internal/logic"
	"github.com/Silver0524/MatPredict/internal/ml"
	"github.com/Silver0524/MatPredict/internal/store"
	"github.com/Silver0524/MatPredict/internal/worker"

	_ "github.com/Silver0524/MatPredict/docs"
)

// @title MatPredict API
// @version 1.0
// @description Wrestling match outcome prediction service.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)
	defer logger.Sync()
	sugar := logger.Sugar()
	sugar.Infow("Starting MatPredict API", "env", cfg.Env, "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Postgres
	pgPool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to create Postgres pool", "error", err)
	}
	defer pgPool.Close()
	if err := pgPool.Ping(ctx); err != nil {
		sugar.Fatalw("Failed to connect to Postgres", "error", err)
	}
	sugar.Info("Connected to Postgres")

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid Redis URL", "error", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		sugar.Fatalw("Failed to connect to Redis", "error", err)
	}
	sugar.Info("Connected to Redis")

	// Model
	predictor, err := ml.NewPredictor(cfg.ModelPath, logger)
	if err != nil {
		sugar.Fatalw("Failed to load model artifact", "error", err, "path", cfg.ModelPath)
	}
	sugar.Infow("Model loaded", "schemaVersion", predictor.SchemaVersion())

	// Services
	st := store.New(pgPool)
	featureCache := cache.NewFeatureCache(redisClient, cfg.CacheTTL, logger)
	featureService := logic.NewFeatureService(st, logger)
	predictionService := logic.NewPredictionService(st, featureService, featureCache, predictor, logger)

	// Ingest worker pool
	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Writer:        st,
		Invalidator:   featureCache,
		Logger:        logger,
	})
	pool.Start(ctx)

	h := handlers.New(handlers.Config{
		WorkerPool: pool,
		Postgres:   pgPool,
		Redis:      redisClient,
		Logger:     logger,
		Catalog:    st,
		Features:   featureService,
		Prediction: predictionService,
		Snapshots:  featureCache,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("HTTP server failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	sugar.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("HTTP server shutdown failed", "error", err)
	}

	// Drain queued match records before releasing connections.
	pool.Stop()
	cancel()

	sugar.Info("Shutdown complete")
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
