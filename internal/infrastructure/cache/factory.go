package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/echub/compliance-hub-backend/internal/infrastructure/config"
)

// CacheManager provides access to all cache-related services
type CacheManager struct {
	Cache        Cache
	RateLimiter  RateLimiter
	SessionStore SessionStore
	Reports      *ReportCache
	client       *redis.Client
	logger       *zap.Logger
}

// NewCacheManager creates a new cache manager with all cache services
func NewCacheManager(cfg *config.RedisConfig, reportTTL time.Duration, logger *zap.Logger) (*CacheManager, error) {
	client, err := NewRedisClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	c := NewRedisCache(client, logger)

	return &CacheManager{
		Cache:        c,
		RateLimiter:  NewRedisRateLimiter(client, logger),
		SessionStore: NewRedisSessionStore(client, logger),
		Reports:      NewReportCache(c, reportTTL, logger),
		client:       client,
		logger:       logger,
	}, nil
}

// Close closes all cache connections
func (cm *CacheManager) Close() error {
	if err := cm.client.Close(); err != nil {
		return fmt.Errorf("redis client close failed: %w", err)
	}
	cm.logger.Info("cache manager closed")
	return nil
}

// HealthCheck verifies that the cache backend is operational
func (cm *CacheManager) HealthCheck(ctx context.Context) error {
	if err := cm.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
