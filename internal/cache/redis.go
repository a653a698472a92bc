// Package cache keeps the most recently computed feature snapshots in Redis.
// The prediction path always computes live; these snapshots only back the
// compare fallback and cheap feature reads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/models"
)

// RedisClient is the subset of redis.Client the feature cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type FeatureCache struct {
	client RedisClient
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewFeatureCache(client RedisClient, ttl time.Duration, logger *zap.Logger) *FeatureCache {
	return &FeatureCache{client: client, ttl: ttl, logger: logger.Sugar()}
}

func featureKey(wrestlerID int64, seasonID, weightClassID *int64) string {
	var season, wc int64
	if seasonID != nil {
		season = *seasonID
	}
	if weightClassID != nil {
		wc = *weightClassID
	}
	return fmt.Sprintf("features:%d:%d:%d", wrestlerID, season, wc)
}

// GetFeatures returns the cached snapshot, or (nil, nil) on a miss.
func (c *FeatureCache) GetFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
	raw, err := c.client.Get(ctx, featureKey(wrestlerID, seasonID, weightClassID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var f models.WrestlerFeatures
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &f, nil
}

func (c *FeatureCache) SetFeatures(ctx context.Context, f *models.WrestlerFeatures, weightClassID *int64) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	key := featureKey(f.WrestlerID, f.SeasonID, weightClassID)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// InvalidateWrestler drops every cached snapshot for a wrestler. Called when
// new match results are ingested for them.
func (c *FeatureCache) InvalidateWrestler(ctx context.Context, wrestlerID int64) error {
	pattern := fmt.Sprintf("features:%d:*", wrestlerID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	c.logger.Debugw("Invalidated feature snapshots", "wrestlerID", wrestlerID, "keys", len(keys))
	return nil
}
