package recommendation

import (
	"myTimberMarket/business/similarity"
	"myTimberMarket/domain"
)

func toItem(p domain.Product) similarity.Item {
	return similarity.Item{
		ID:          p.ID,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Price:       p.Price,
		Size:        p.Size,
		Unit:        p.Unit,
		Featured:    p.IsFeatured,
		CreatedAt:   p.CreatedAt,
	}
}

func toItems(products []domain.Product) []similarity.Item {
	items := make([]similarity.Item, 0, len(products))
	for _, p := range products {
		items = append(items, toItem(p))
	}
	return items
}

func indexByID(products []domain.Product) map[uint64]domain.Product {
	idx := make(map[uint64]domain.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// toSimilarProducts joins ranked engine results back onto the full product
// records they were built from.
func toSimilarProducts(results []similarity.Result, products map[uint64]domain.Product) []domain.SimilarProduct {
	out := make([]domain.SimilarProduct, 0, len(results))
	for _, r := range results {
		p, ok := products[r.Item.ID]
		if !ok {
			continue
		}

		rec := domain.SimilarProduct{
			Product:         p,
			SimilarityScore: r.Score,
		}
		if r.Reasons != nil {
			rec.MatchReasons = &domain.MatchReasons{
				PriceMatch:       r.Reasons.PriceMatch,
				SubcategoryMatch: r.Reasons.SubcategoryMatch,
				SizeMatch:        r.Reasons.SizeMatch,
				UnitMatch:        r.Reasons.UnitMatch,
			}
		}
		out = append(out, rec)
	}
	return out
}
