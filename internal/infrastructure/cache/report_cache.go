package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
)

// ReportCache is a read-through cache for generated report snapshots. The
// public report page hits the same token many times right after generation
// (page load, PDF download, shares), so keeping the snapshot hot avoids
// repeated database reads. A miss is never an error.
type ReportCache struct {
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewReportCache creates a report snapshot cache with the given TTL.
func NewReportCache(cache Cache, ttl time.Duration, logger *zap.Logger) *ReportCache {
	if ttl <= 0 {
		ttl = ReportCacheTTL
	}
	return &ReportCache{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func reportKey(id string) string {
	return ReportPrefix + id
}

// Get returns the cached snapshot for a report id, or false on miss.
func (c *ReportCache) Get(ctx context.Context, id string) (report.ReportData, bool) {
	var data report.ReportData
	if err := c.cache.GetJSON(ctx, reportKey(id), &data); err != nil {
		if _, miss := err.(ErrCacheKeyNotFound); !miss {
			c.logger.Warn("report cache read failed",
				zap.String("report_id", id),
				zap.Error(err))
		}
		return report.ReportData{}, false
	}
	return data, true
}

// Put stores a snapshot. Failures are logged and swallowed; the database
// remains the source of truth.
func (c *ReportCache) Put(ctx context.Context, data report.ReportData) {
	if err := c.cache.SetJSON(ctx, reportKey(data.ID), data, c.ttl); err != nil {
		c.logger.Warn("report cache write failed",
			zap.String("report_id", data.ID),
			zap.Error(err))
	}
}

// Invalidate drops a cached snapshot, used when a report is deleted.
func (c *ReportCache) Invalidate(ctx context.Context, id string) {
	if err := c.cache.Delete(ctx, reportKey(id)); err != nil {
		c.logger.Warn("report cache invalidation failed",
			zap.String("report_id", id),
			zap.Error(err))
	}
}
