package redis

import (
	"context"
	"testing"
	"time"

	"myTimberMarket/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RecommendationCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRecommendationCache(client), mr
}

func sampleRecs() []domain.SimilarProduct {
	return []domain.SimilarProduct{
		{
			Product:         domain.Product{ID: 7, Name: "Teak plank", Category: "timber", Price: 1000, Unit: "pieces"},
			SimilarityScore: 0.85,
			MatchReasons:    &domain.MatchReasons{PriceMatch: true, UnitMatch: true},
		},
	}
}

func TestRecommendationCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	version, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	_, ok, err := cache.Get(ctx, version, "similar:7:k4")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, version, "similar:7:k4", sampleRecs(), time.Minute))

	got, ok, err := cache.Get(ctx, version, "similar:7:k4")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].ID)
	assert.Equal(t, 0.85, got[0].SimilarityScore)
	require.NotNil(t, got[0].MatchReasons)
	assert.True(t, got[0].MatchReasons.PriceMatch)
}

func TestRecommendationCache_InvalidateOrphansEntries(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, "trending:k4", sampleRecs(), time.Minute))
	require.NoError(t, cache.Invalidate(ctx))

	version, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, ok, err := cache.Get(ctx, version, "trending:k4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecommendationCache_SetUnderOldVersionIsNeverServed(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	seen, err := cache.Version(ctx)
	require.NoError(t, err)

	// a product write lands between the lookup and the store
	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Set(ctx, seen, "similar:7:k4", sampleRecs(), time.Minute))

	current, err := cache.Version(ctx)
	require.NoError(t, err)
	require.NotEqual(t, seen, current)

	_, ok, err := cache.Get(ctx, current, "similar:7:k4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecommendationCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, "cart:1,2:k4", sampleRecs(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 0, "cart:1,2:k4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecommendationCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set("reco:v0:similar:1:k4", "not json"))

	_, _, err := cache.Get(context.Background(), 0, "similar:1:k4")
	assert.Error(t, err)
}

func TestRecommendationCache_BadVersion(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set("reco:catalog_version", "abc"))

	_, err := cache.Version(context.Background())
	assert.Error(t, err)
}
