package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/echub/compliance-hub-backend/internal/api/rest"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/cache"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/config"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/repository"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/telemetry"
	"github.com/echub/compliance-hub-backend/internal/service/leadcapture"
	"github.com/echub/compliance-hub-backend/internal/service/reportengine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if _, err := telemetry.SetupLogger(cfg.LogLevel); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}

	zapLogger, err := newZapLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := telemetry.InitializeOpenTelemetry(ctx, &telemetry.Config{
		ServiceName:    "echub-backend",
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
		SamplingRate:   cfg.Telemetry.SamplingRate,
		ExportTimeout:  30 * time.Second,
		BatchTimeout:   5 * time.Second,
	})
	if err != nil {
		zapLogger.Fatal("failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			zapLogger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	pool, err := repository.NewPool(ctx, &cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	cacheMgr, err := cache.NewCacheManager(&cfg.Redis, cfg.Reports.CacheTTL, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer cacheMgr.Close()

	reportRepo := repository.NewReportRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)

	engine := reportengine.NewService(zapLogger)
	leadSvc := leadcapture.NewService(leadRepo, zapLogger)

	go runRetentionSweeper(ctx, reportRepo, cfg.Reports.RetentionDays, zapLogger)

	handlers := rest.NewHandlers(engine, reportRepo, leadSvc, leadRepo, cacheMgr.Reports)
	server := rest.NewServer(cfg, handlers, rest.ServerOptions{
		RateLimiter: cacheMgr.RateLimiter,
		Sessions:    cacheMgr.SessionStore,
		Readiness: map[string]rest.HealthChecker{
			"database": pool.Ping,
			"redis":    cacheMgr.HealthCheck,
		},
	})

	if err := server.Start(ctx); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}
	zapLogger.Info("shutdown complete")
}

func newZapLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "development" {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

// runRetentionSweeper deletes anonymous report snapshots past the
// retention window. Runs once at startup, then daily.
func runRetentionSweeper(ctx context.Context, repo *repository.ReportRepository, retentionDays int, logger *zap.Logger) {
	if retentionDays <= 0 {
		return
	}

	sweep := func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		deleted, err := repo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Warn("report retention sweep failed", zap.Error(err))
			return
		}
		if deleted > 0 {
			logger.Info("expired reports deleted",
				zap.Int64("count", deleted),
				zap.Time("cutoff", cutoff))
		}
	}

	sweep()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
