package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/arthik444/procheck/internal/common/config"
	"github.com/arthik444/procheck/internal/common/database"
	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/common/observability"
	"github.com/arthik444/procheck/internal/intelligence/conceptgraph"
	"github.com/arthik444/procheck/internal/intelligence/pipeline"
	"github.com/arthik444/procheck/internal/search"
	"github.com/arthik444/procheck/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting intelligence service...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("procheck-intelligence")
	defer obs.Shutdown()

	// --- Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 10, 2*time.Second, zapLog, "Elasticsearch initialization")
	if err != nil {
		zapLog.Fatal("Elasticsearch unavailable", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected", zap.String("url", cfg.Database.Elasticsearch.GetURL()))

	// --- Redis response cache (optional) ---
	var cache *pipeline.Cache
	if cfg.Pipeline.CacheEnabled {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = redisClient.Ping(ctx)
			cancel()
		}
		if err != nil {
			zapLog.Warn("Redis unavailable, running without response cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cache = pipeline.NewCache(redisClient,
				time.Duration(cfg.Pipeline.CacheTTL)*time.Second, log)
			zapLog.Info("Response cache enabled",
				zap.String("address", cfg.Database.Redis.Address),
				zap.Int("ttlSeconds", cfg.Pipeline.CacheTTL))
		}
	}

	// --- Wire the pipeline ---
	graph := conceptgraph.New(log)
	searchService := search.NewService(esClient.Client, cfg.Search, log)
	pipelineService := pipeline.NewService(graph, searchService, cache, obs, log)

	srv := server.New(cfg.Server, pipelineService, log)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		zapLog.Fatal("HTTP server failed", zap.Error(err))
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Shutdown incomplete", zap.Error(err))
	} else {
		zapLog.Info("Shutdown complete")
	}
}
