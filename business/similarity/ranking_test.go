package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopK_EmptyPool(t *testing.T) {
	got := TopK(plank(1, 100), nil, 4)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopK_OrderingAndReasons(t *testing.T) {
	ref := plank(1, 1000)
	candidates := []Item{
		{ID: 2, Price: 2000, Subcategory: "beams", Size: "8x3 ft", Unit: "pieces"}, // 0.35
		plank(3, 1000), // 1.0
		{ID: 4, Price: 1000, Subcategory: "planks", Unit: "cubic ft"}, // 0.70
	}

	got := TopK(ref, candidates, 10)
	require.Len(t, got, 3)

	assert.Equal(t, []uint64{3, 4, 2}, resultIDs(got))
	for i := 0; i+1 < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Score, got[i+1].Score)
	}

	require.NotNil(t, got[0].Reasons)
	assert.Equal(t, MatchReasons{PriceMatch: true, SubcategoryMatch: true, SizeMatch: true, UnitMatch: true}, *got[0].Reasons)
	require.NotNil(t, got[2].Reasons)
	assert.Equal(t, MatchReasons{UnitMatch: true}, *got[2].Reasons)
}

func TestTopK_Truncation(t *testing.T) {
	ref := plank(1, 100)
	candidates := make([]Item, 0, 7)
	for i := 0; i < 7; i++ {
		candidates = append(candidates, plank(uint64(i+2), float64(100+i*10)))
	}

	tests := []struct {
		name string
		k    int
		want int
	}{
		{name: "k smaller than pool", k: 3, want: 3},
		{name: "k larger than pool", k: 20, want: 7},
		{name: "k equal to pool", k: 7, want: 7},
		{name: "zero k uses default", k: 0, want: DefaultK},
		{name: "negative k uses default", k: -1, want: DefaultK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, TopK(ref, candidates, tt.k), tt.want)
		})
	}
}

func TestTopK_StableTies(t *testing.T) {
	ref := plank(1, 100)
	// identical candidates tie on every feature
	candidates := []Item{plank(10, 100), plank(11, 100), plank(12, 100), plank(13, 100)}

	got := TopK(ref, candidates, 3)
	assert.Equal(t, []uint64{10, 11, 12}, resultIDs(got))
}

func TestRank_StableTruncation(t *testing.T) {
	in := []Result{
		{Item: Item{ID: 1}, Score: 0.3},
		{Item: Item{ID: 2}, Score: 0.7},
		{Item: Item{ID: 3}, Score: 0.1},
		{Item: Item{ID: 4}, Score: 0.9},
		{Item: Item{ID: 5}, Score: 0.7},
	}

	got := rank(in, 3)
	assert.Equal(t, []uint64{4, 2, 5}, resultIDs(got))

	got = rank([]Result{
		{Item: Item{ID: 1}, Score: 0.9},
		{Item: Item{ID: 2}, Score: 0.7},
		{Item: Item{ID: 3}, Score: 0.7},
		{Item: Item{ID: 4}, Score: 0.3},
		{Item: Item{ID: 5}, Score: 0.1},
	}, 2)
	assert.Equal(t, []uint64{1, 2}, resultIDs(got))
}

func TestTopK_DoesNotMutateCandidates(t *testing.T) {
	ref := plank(1, 100)
	candidates := []Item{plank(2, 500), plank(3, 100), plank(4, 300)}
	before := append([]Item(nil), candidates...)

	_ = TopK(ref, candidates, 2)

	assert.Equal(t, before, candidates)
}

func resultIDs(rs []Result) []uint64 {
	ids := make([]uint64, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.Item.ID)
	}
	return ids
}
