package similarity

import "sort"

// Trending orders items for the non-personalised fallback listing: featured
// first, then newest, then most expensive. No similarity is computed, so
// every result has a zero score.
func Trending(items []Item, k int) []Result {
	if len(items) == 0 {
		return []Result{}
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Price > b.Price
	})

	results := make([]Result, 0, len(sorted))
	for _, it := range sorted {
		results = append(results, Result{Item: it})
	}

	return truncate(results, k)
}
