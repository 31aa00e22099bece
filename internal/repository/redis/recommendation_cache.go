package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"myTimberMarket/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogVersionKey = "reco:catalog_version"

// RecommendationCache stores computed recommendation lists. Every entry is
// namespaced by a catalog version; bumping the version on a catalog write
// orphans all older entries, which then expire by TTL.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{
		client: client,
	}
}

// Version returns the current catalog version. Callers read it before
// loading products and pass it to Get and Set, so a list computed from a
// catalog that has since changed is stored under the old version.
func (r *RecommendationCache) Version(ctx context.Context) (int64, error) {
	v, err := r.client.Get(ctx, catalogVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read catalog version: %w", err)
	}

	return v, nil
}

func (r *RecommendationCache) Get(ctx context.Context, version int64, key string) ([]domain.SimilarProduct, bool, error) {
	val, err := r.client.Get(ctx, entryKey(version, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var recs []domain.SimilarProduct
	if err := json.Unmarshal(val, &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return recs, true, nil
}

func (r *RecommendationCache) Set(ctx context.Context, version int64, key string, recs []domain.SimilarProduct, ttl time.Duration) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, entryKey(version, key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}

// Invalidate bumps the catalog version.
func (r *RecommendationCache) Invalidate(ctx context.Context) error {
	if err := r.client.Incr(ctx, catalogVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump catalog version: %w", err)
	}

	return nil
}

func entryKey(version int64, key string) string {
	return fmt.Sprintf("reco:v%d:%s", version, key)
}
