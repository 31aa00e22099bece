package similarity

import "sort"

// Result is one ranked candidate. Reasons is nil when the ranking mode does
// not compute match flags.
type Result struct {
	Item    Item
	Score   float64
	Reasons *MatchReasons
}

// TopK scores every candidate against ref and returns the k best, highest
// score first. Candidates with equal scores keep their input order.
// A non-positive k falls back to DefaultK.
func TopK(ref Item, candidates []Item, k int) []Result {
	if len(candidates) == 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(candidates))
	for _, cand := range candidates {
		reasons := Reasons(ref, cand)
		results = append(results, Result{
			Item:    cand,
			Score:   Score(ref, cand),
			Reasons: &reasons,
		})
	}

	return rank(results, k)
}

// rank sorts results by descending score and truncates to k.
func rank(results []Result, k int) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return truncate(results, k)
}

func truncate(results []Result, k int) []Result {
	if k <= 0 {
		k = DefaultK
	}
	if len(results) > k {
		results = results[:k]
	}
	return results
}
