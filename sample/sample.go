package sample

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/typetools/glyphsift/filter"
	"github.com/typetools/glyphsift/vocab"
)

// Draw picks one entry from col with probability proportional to an
// interpolated weight. randomness blends the real occurrence counts toward a
// uniform distribution:
//
//	w_i = (1 - randomness) * count_i + randomness * maxCount
//
// randomness 0 draws by raw frequency, 1 draws uniformly, values between mix
// the two. Each call consumes exactly one value from rng, so draw sequences
// stay reproducible under a fixed seed regardless of collection size.
//
// A nil rng falls back to the deterministic default stream (seed==0 policy).
//
// Errors: ErrEmptyCollection, ErrRandomness.
//
// Complexity: O(n) to build the cumulative weights, O(log n) for the draw.
func Draw(col filter.Collection, rng *rand.Rand, randomness float64) (vocab.Entry, error) {
	if len(col) == 0 {
		return vocab.Entry{}, ErrEmptyCollection
	}
	if randomness < 0 || randomness > 1 {
		return vocab.Entry{}, fmt.Errorf("%w: got %v", ErrRandomness, randomness)
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	maxCount := 0
	for _, e := range col {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	cum := make([]float64, len(col))
	total := 0.0
	for i, e := range col {
		total += (1-randomness)*float64(e.Count) + randomness*float64(maxCount)
		cum[i] = total
	}
	if total <= 0 {
		// Degenerate weights (all-zero counts at randomness 0): uniform draw.
		return col[rng.Intn(len(col))], nil
	}

	x := rng.Float64() * total
	i := sort.Search(len(cum), func(j int) bool { return cum[j] > x })
	if i == len(cum) {
		i = len(cum) - 1
	}

	return col[i], nil
}

// Nth returns the entry at rank idx (0 = most frequent). Collections are
// already ordered by descending count, so this is a bounds-checked index.
//
// Errors: ErrEmptyCollection, ErrIndexRange.
func Nth(col filter.Collection, idx int) (vocab.Entry, error) {
	if len(col) == 0 {
		return vocab.Entry{}, ErrEmptyCollection
	}
	if idx < 0 || idx >= len(col) {
		return vocab.Entry{}, fmt.Errorf("%w: index %d, collection size %d", ErrIndexRange, idx, len(col))
	}

	return col[idx], nil
}

// TopK returns the k most frequent entries (the whole collection when
// k exceeds its length, never less than one entry).
//
// Errors: ErrEmptyCollection.
func TopK(col filter.Collection, k int) (filter.Collection, error) {
	if len(col) == 0 {
		return nil, ErrEmptyCollection
	}
	if k < 1 {
		k = 1
	}
	if k > len(col) {
		k = len(col)
	}

	return col[:k], nil
}
