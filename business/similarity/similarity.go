// Package similarity scores catalog items against each other with a fixed,
// hand-weighted feature blend and ranks the nearest neighbours.
//
// Every function here is pure: inputs are never mutated and no state is kept
// between calls, so the engine can be shared freely across request goroutines.
package similarity

import (
	"math"
	"time"
)

// Feature weights. They sum to 1.0 so a perfect match scores exactly 1.
const (
	WeightPrice       = 0.40
	WeightSubcategory = 0.30
	WeightSize        = 0.15
	WeightUnit        = 0.15

	// priceMatchRatio is the band, relative to the reference price, inside
	// which a candidate is flagged as a price match.
	priceMatchRatio = 0.20

	DefaultK = 4
)

// Item is the fixed-shape view of a catalog entry the engine works on.
// Only Price, Subcategory, Size and Unit feed the score; Featured and
// CreatedAt are read by the trending comparator.
type Item struct {
	ID          uint64
	Category    string
	Subcategory string
	Price       float64
	Size        string
	Unit        string
	Featured    bool
	CreatedAt   time.Time
}

// MatchReasons records which individual features matched.
type MatchReasons struct {
	PriceMatch       bool
	SubcategoryMatch bool
	SizeMatch        bool
	UnitMatch        bool
}

// Score returns the weighted similarity of cand to ref in [0, 1] for
// non-negative prices.
func Score(ref, cand Item) float64 {
	score := 0.0

	score += priceSimilarity(ref.Price, cand.Price) * WeightPrice

	if subcategoryMatch(ref, cand) {
		score += WeightSubcategory
	}
	if sizeMatch(ref, cand) {
		score += WeightSize
	}
	if unitMatch(ref, cand) {
		score += WeightUnit
	}

	return score
}

// Reasons computes the diagnostic match flags for cand against ref.
//
// The price flag is relative to the reference price alone, unlike the score
// which divides by the larger of the two prices.
func Reasons(ref, cand Item) MatchReasons {
	return MatchReasons{
		PriceMatch:       math.Abs(cand.Price-ref.Price) < ref.Price*priceMatchRatio,
		SubcategoryMatch: subcategoryMatch(ref, cand),
		SizeMatch:        sizeMatch(ref, cand),
		UnitMatch:        unitMatch(ref, cand),
	}
}

// priceSimilarity is 1 for equal prices and falls towards 0 as the gap
// approaches the larger price. A pair of zero prices contributes nothing.
func priceSimilarity(a, b float64) float64 {
	maxPrice := math.Max(a, b)
	if maxPrice <= 0 {
		return 0
	}
	return 1 - math.Abs(a-b)/maxPrice
}

func subcategoryMatch(ref, cand Item) bool {
	return ref.Subcategory != "" && cand.Subcategory != "" && ref.Subcategory == cand.Subcategory
}

// sizes are compared verbatim: "6x2 ft" and "6 x 2 ft" differ.
func sizeMatch(ref, cand Item) bool {
	return ref.Size != "" && cand.Size != "" && ref.Size == cand.Size
}

func unitMatch(ref, cand Item) bool {
	return ref.Unit == cand.Unit
}
