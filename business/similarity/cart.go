package similarity

// CartTopK ranks candidates by their mean similarity across all references,
// typically the contents of a shopping cart. Every reference counts equally.
// Match reasons are not computed in this mode.
func CartTopK(refs []Item, candidates []Item, k int) []Result {
	if len(refs) == 0 || len(candidates) == 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(candidates))
	for _, cand := range candidates {
		results = append(results, Result{
			Item:  cand,
			Score: AverageScore(refs, cand),
		})
	}

	return rank(results, k)
}

// AverageScore is the arithmetic mean of Score(ref, cand) over refs.
// It returns 0 for an empty refs slice.
func AverageScore(refs []Item, cand Item) float64 {
	if len(refs) == 0 {
		return 0
	}

	total := 0.0
	for _, ref := range refs {
		total += Score(ref, cand)
	}
	return total / float64(len(refs))
}
