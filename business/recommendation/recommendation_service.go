package recommendation

import (
	"context"
	"fmt"
	"myTimberMarket/business/similarity"
	"myTimberMarket/domain"
	"myTimberMarket/pkg/logger"
	"myTimberMarket/pkg/metrics"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	ModeSimilar  = "similar"
	ModeCart     = "cart"
	ModeTrending = "trending"
)

// ProductRepository is the catalog view the recommender needs.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
	FindCandidates(ctx context.Context, category string, excludeID uint64) ([]domain.Product, error)
	FindCandidatesInCategories(ctx context.Context, categories []string, excludeIDs []uint64) ([]domain.Product, error)
	FindAvailable(ctx context.Context) ([]domain.Product, error)
}

// ResultCache stores finished recommendation lists under a catalog version.
// It is optional.
type ResultCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64, key string) ([]domain.SimilarProduct, bool, error)
	Set(ctx context.Context, version int64, key string, recs []domain.SimilarProduct, ttl time.Duration) error
}

type Config struct {
	DefaultK int
	MaxK     int
	CacheTTL time.Duration
}

type Service struct {
	productRepo ProductRepository
	cache       ResultCache
	cfg         Config
}

func NewService(productRepo ProductRepository, cache ResultCache, cfg Config) *Service {
	if cfg.DefaultK <= 0 {
		cfg.DefaultK = similarity.DefaultK
	}
	if cfg.MaxK < cfg.DefaultK {
		cfg.MaxK = cfg.DefaultK
	}

	return &Service{
		productRepo: productRepo,
		cache:       cache,
		cfg:         cfg,
	}
}

// SimilarProducts returns the k products closest to productID within its
// category, each annotated with its score and match reasons.
func (s *Service) SimilarProducts(ctx context.Context, productID uint64, k int) ([]domain.SimilarProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if productID == 0 {
		return nil, domain.ErrInvalidProductID
	}

	defer observe(ModeSimilar, time.Now())

	k = s.resolveK(k)
	key := fmt.Sprintf("%s:%d:k%d", ModeSimilar, productID, k)

	recs, slot, ok := s.cached(ctx, ModeSimilar, key)
	if ok {
		return recs, nil
	}

	ref, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	pool, err := s.productRepo.FindCandidates(ctx, ref.Category, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	metrics.CandidatePoolSize.WithLabelValues(ModeSimilar).Observe(float64(len(pool)))

	results := similarity.TopK(toItem(ref), toItems(pool), k)
	recs = toSimilarProducts(results, indexByID(pool))

	logger.Debug("recommend_similar",
		"trace_id", TraceIDFromContext(ctx),
		"product_id", productID,
		"category", ref.Category,
		"k", k,
		"candidate_count", len(pool),
		"result_count", len(recs),
	)

	s.store(ctx, slot, recs)

	return recs, nil
}

// CartRecommendations ranks products by their average similarity to every
// product in the cart. Unknown cart ids are ignored.
func (s *Service) CartRecommendations(ctx context.Context, productIDs []uint64, k int) ([]domain.SimilarProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ids := normalizeIDs(productIDs)
	if len(ids) == 0 {
		return []domain.SimilarProduct{}, nil
	}

	defer observe(ModeCart, time.Now())

	k = s.resolveK(k)
	key := fmt.Sprintf("%s:%s:k%d", ModeCart, joinIDs(ids), k)

	recs, slot, ok := s.cached(ctx, ModeCart, key)
	if ok {
		return recs, nil
	}

	refs, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}
	if len(refs) == 0 {
		return []domain.SimilarProduct{}, nil
	}

	categories := distinctCategories(refs)

	pool, err := s.productRepo.FindCandidatesInCategories(ctx, categories, ids)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	metrics.CandidatePoolSize.WithLabelValues(ModeCart).Observe(float64(len(pool)))

	results := similarity.CartTopK(toItems(refs), toItems(pool), k)
	recs = toSimilarProducts(results, indexByID(pool))

	logger.Debug("recommend_cart",
		"trace_id", TraceIDFromContext(ctx),
		"cart_size", len(refs),
		"categories", categories,
		"k", k,
		"candidate_count", len(pool),
		"result_count", len(recs),
	)

	s.store(ctx, slot, recs)

	return recs, nil
}

// TrendingProducts is the non-personalised fallback listing.
func (s *Service) TrendingProducts(ctx context.Context, k int) ([]domain.SimilarProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	defer observe(ModeTrending, time.Now())

	k = s.resolveK(k)
	key := fmt.Sprintf("%s:k%d", ModeTrending, k)

	recs, slot, ok := s.cached(ctx, ModeTrending, key)
	if ok {
		return recs, nil
	}

	products, err := s.productRepo.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	metrics.CandidatePoolSize.WithLabelValues(ModeTrending).Observe(float64(len(products)))

	results := similarity.Trending(toItems(products), k)
	recs = toSimilarProducts(results, indexByID(products))

	logger.Debug("recommend_trending",
		"trace_id", TraceIDFromContext(ctx),
		"k", k,
		"candidate_count", len(products),
		"result_count", len(recs),
	)

	s.store(ctx, slot, recs)

	return recs, nil
}

// resolveK applies the configured default for missing k and clamps large k.
func (s *Service) resolveK(k int) int {
	if k <= 0 {
		return s.cfg.DefaultK
	}
	if k > s.cfg.MaxK {
		return s.cfg.MaxK
	}
	return k
}

func observe(mode string, start time.Time) {
	metrics.RecommendRequests.WithLabelValues(mode).Inc()
	metrics.RecommendLatency.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// normalizeIDs drops zero ids and duplicates, then sorts so that the same
// cart always maps to the same cache key.
func normalizeIDs(ids []uint64) []uint64 {
	out := make([]uint64, 0, len(ids))
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func joinIDs(ids []uint64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(id, 10))
	}
	return strings.Join(parts, ",")
}

func distinctCategories(products []domain.Product) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
