package domain

// MatchReasons flags which features made a candidate relevant. They are
// diagnostic and independent of the numeric score.
type MatchReasons struct {
	PriceMatch       bool `json:"priceMatch"`
	SubcategoryMatch bool `json:"subcategoryMatch"`
	SizeMatch        bool `json:"sizeMatch"`
	UnitMatch        bool `json:"unitMatch"`
}

// SimilarProduct is a recommended product flattened with its score.
// MatchReasons is nil for cart and trending recommendations.
type SimilarProduct struct {
	Product
	SimilarityScore float64       `json:"similarityScore"`
	MatchReasons    *MatchReasons `json:"matchReasons,omitempty"`
}
