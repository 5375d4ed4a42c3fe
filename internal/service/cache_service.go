package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"voting-be/internal/domain"
	"voting-be/pkg/redis"
)

// CacheService provides cache-aside reads for the vote summary and the
// option list. Cache failures are never fatal: every path falls back to
// the database and logs the cache problem.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
	}
}

// GetSummary retrieves the vote summary with a cache-aside pattern
func (c *CacheService) GetSummary(ctx context.Context, dbFallback func(ctx context.Context) (*domain.VoteSummary, error)) (*domain.VoteSummary, error) {
	cached, err := c.redis.Get(ctx, redis.KeySummary)
	if err == nil && cached != "" {
		var summary domain.VoteSummary
		if unmarshalErr := json.Unmarshal([]byte(cached), &summary); unmarshalErr == nil {
			c.logger.Debug("Summary cache hit")
			return &summary, nil
		}
		c.logger.Warn("Summary cache corrupted, falling back to database")
	} else if err != nil && err != redis.Nil {
		c.logger.Warn("Summary cache error, falling back to database", zap.Error(err))
	}

	summary, err := dbFallback(ctx)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(summary); marshalErr == nil {
		if setErr := c.redis.Set(ctx, redis.KeySummary, data, redis.TTLSummary); setErr != nil {
			c.logger.Warn("Failed to cache summary", zap.Error(setErr))
		}
	}

	return summary, nil
}

// GetOptions retrieves the option list with a cache-aside pattern
func (c *CacheService) GetOptions(ctx context.Context, dbFallback func(ctx context.Context) ([]string, error)) ([]string, error) {
	cached, err := c.redis.Get(ctx, redis.KeyOptions)
	if err == nil && cached != "" {
		var options []string
		if unmarshalErr := json.Unmarshal([]byte(cached), &options); unmarshalErr == nil {
			c.logger.Debug("Options cache hit")
			return options, nil
		}
		c.logger.Warn("Options cache corrupted, falling back to database")
	} else if err != nil && err != redis.Nil {
		c.logger.Warn("Options cache error, falling back to database", zap.Error(err))
	}

	options, err := dbFallback(ctx)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(options); marshalErr == nil {
		if setErr := c.redis.Set(ctx, redis.KeyOptions, data, redis.TTLOptions); setErr != nil {
			c.logger.Warn("Failed to cache options", zap.Error(setErr))
		}
	}

	return options, nil
}

// Invalidate drops the cached summary and options after a vote changes
// the tally. On delete failure stale entries still expire via TTL.
func (c *CacheService) Invalidate(ctx context.Context) {
	if err := c.redis.Delete(ctx, redis.KeySummary, redis.KeyOptions); err != nil {
		c.logger.Warn("Failed to invalidate vote caches", zap.Error(err))
	}
}
