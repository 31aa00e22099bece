package recommendation

import (
	"context"
	"myTimberMarket/domain"
	"myTimberMarket/pkg/logger"
	"myTimberMarket/pkg/metrics"
)

// cacheSlot remembers where a freshly computed list may be stored. The
// version is the one seen before any product was loaded.
type cacheSlot struct {
	mode     string
	key      string
	version  int64
	storable bool
}

// cached looks key up in the result cache. Cache failures are logged and
// reported as a miss.
func (s *Service) cached(ctx context.Context, mode, key string) ([]domain.SimilarProduct, cacheSlot, bool) {
	slot := cacheSlot{mode: mode, key: key}
	if s.cache == nil {
		return nil, slot, false
	}

	version, err := s.cache.Version(ctx)
	if err != nil {
		s.cacheFailed(ctx, slot, "catalog version read failed", err)
		return nil, slot, false
	}
	slot.version = version
	slot.storable = true

	recs, ok, err := s.cache.Get(ctx, version, key)
	if err != nil {
		s.cacheFailed(ctx, slot, "recommendation cache read failed", err)
		return nil, slot, false
	}
	if !ok {
		metrics.RecommendCache.WithLabelValues(mode, "miss").Inc()
		return nil, slot, false
	}

	metrics.RecommendCache.WithLabelValues(mode, "hit").Inc()
	if recs == nil {
		recs = []domain.SimilarProduct{}
	}
	return recs, slot, true
}

func (s *Service) store(ctx context.Context, slot cacheSlot, recs []domain.SimilarProduct) {
	if s.cache == nil || !slot.storable || s.cfg.CacheTTL <= 0 {
		return
	}

	if err := s.cache.Set(ctx, slot.version, slot.key, recs, s.cfg.CacheTTL); err != nil {
		logger.Warn("recommendation cache write failed",
			"trace_id", TraceIDFromContext(ctx),
			"mode", slot.mode,
			"key", slot.key,
			"error", err,
		)
	}
}

func (s *Service) cacheFailed(ctx context.Context, slot cacheSlot, msg string, err error) {
	metrics.RecommendCache.WithLabelValues(slot.mode, "error").Inc()
	logger.Warn(msg,
		"trace_id", TraceIDFromContext(ctx),
		"key", slot.key,
		"error", err,
	)
}
