package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/metar-reader/internal/adapter/aviationweather"
	httpadapter "github.com/couchcryptid/metar-reader/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/metar-reader/internal/adapter/kafka"
	"github.com/couchcryptid/metar-reader/internal/config"
	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/observability"
	"github.com/couchcryptid/metar-reader/internal/pipeline"
	"github.com/couchcryptid/metar-reader/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var fetcher domain.Fetcher = aviationweather.NewClient(cfg.AviationWeatherURL, cfg.FetchTimeout, cfg.FetchRetries, metrics, logger)
	if cfg.CacheSize > 0 {
		cached, err := aviationweather.NewCachedFetcher(fetcher, cfg.CacheSize, cfg.CacheTTL, clockwork.NewRealClock(), metrics)
		if err != nil {
			logger.Error("failed to create report cache", "error", err)
			os.Exit(1)
		}
		fetcher = cached
		logger.Info("report cache enabled", "cache_size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	} else {
		logger.Info("report cache disabled")
	}

	svc := service.New(fetcher, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The decode relay is optional; without it readiness comes from the service.
	var ready httpadapter.ReadinessChecker = svc
	var reader *kafkaadapter.Reader
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(metrics, logger)
		p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("relay error", "error", err)
			}
		}()
		logger.Info("kafka relay enabled", "source", cfg.KafkaSourceTopic, "sink", cfg.KafkaSinkTopic)
	} else {
		logger.Info("kafka relay disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, ready, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
