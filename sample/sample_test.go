package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typetools/glyphsift/filter"
	"github.com/typetools/glyphsift/sample"
	"github.com/typetools/glyphsift/vocab"
)

func pair() filter.Collection {
	return filter.Collection{
		{Word: "a", Count: 3},
		{Word: "b", Count: 1},
	}
}

// TestDraw_Validation verifies the input checks.
func TestDraw_Validation(t *testing.T) {
	rng := sample.RNGFromSeed(1)

	_, err := sample.Draw(nil, rng, 0)
	assert.ErrorIs(t, err, sample.ErrEmptyCollection)

	_, err = sample.Draw(pair(), rng, -0.01)
	assert.ErrorIs(t, err, sample.ErrRandomness)

	_, err = sample.Draw(pair(), rng, 1.01)
	assert.ErrorIs(t, err, sample.ErrRandomness)
}

// TestDraw_FrequencyWeighted verifies that randomness=0 converges to the
// count proportions: {a:3, b:1} should come out near 75/25.
func TestDraw_FrequencyWeighted(t *testing.T) {
	rng := sample.RNGFromSeed(7)
	col := pair()

	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		e, err := sample.Draw(col, rng, 0)
		require.NoError(t, err)
		if e.Word == "a" {
			hits++
		}
	}

	ratio := float64(hits) / draws
	assert.InDelta(t, 0.75, ratio, 0.02, "randomness=0 must track raw counts")
}

// TestDraw_Uniform verifies that randomness=1 flattens the distribution to
// 50/50 regardless of counts.
func TestDraw_Uniform(t *testing.T) {
	rng := sample.RNGFromSeed(7)
	col := pair()

	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		e, err := sample.Draw(col, rng, 1)
		require.NoError(t, err)
		if e.Word == "a" {
			hits++
		}
	}

	ratio := float64(hits) / draws
	assert.InDelta(t, 0.50, ratio, 0.02, "randomness=1 must be uniform")
}

// TestDraw_Interpolated verifies an intermediate randomness lands between
// the frequency-weighted and uniform proportions. At randomness=0.5 the
// interpolated weights for {a:3, b:1} are {3, 2}, i.e. a 60% share for a.
func TestDraw_Interpolated(t *testing.T) {
	rng := sample.RNGFromSeed(7)
	col := pair()

	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		e, err := sample.Draw(col, rng, 0.5)
		require.NoError(t, err)
		if e.Word == "a" {
			hits++
		}
	}

	ratio := float64(hits) / draws
	assert.InDelta(t, 0.60, ratio, 0.02)
}

// TestDraw_Deterministic verifies identical seeds produce identical draw
// sequences.
func TestDraw_Deterministic(t *testing.T) {
	col := filter.Collection{
		{Word: "w1", Count: 10},
		{Word: "w2", Count: 5},
		{Word: "w3", Count: 1},
	}

	var a, b []string
	rngA := sample.RNGFromSeed(99)
	rngB := sample.RNGFromSeed(99)
	for i := 0; i < 50; i++ {
		ea, err := sample.Draw(col, rngA, 0.25)
		require.NoError(t, err)
		eb, err := sample.Draw(col, rngB, 0.25)
		require.NoError(t, err)
		a = append(a, ea.Word)
		b = append(b, eb.Word)
	}

	assert.Equal(t, a, b)
}

// TestNth_PositionalLookup verifies rank access and the range error.
func TestNth_PositionalLookup(t *testing.T) {
	col := filter.Collection{
		{Word: "first", Count: 9},
		{Word: "second", Count: 4},
	}

	e, err := sample.Nth(col, 0)
	require.NoError(t, err)
	assert.Equal(t, "first", e.Word)

	e, err = sample.Nth(col, 1)
	require.NoError(t, err)
	assert.Equal(t, "second", e.Word)

	_, err = sample.Nth(col, 2)
	assert.ErrorIs(t, err, sample.ErrIndexRange)
	_, err = sample.Nth(col, -1)
	assert.ErrorIs(t, err, sample.ErrIndexRange)
	_, err = sample.Nth(nil, 0)
	assert.ErrorIs(t, err, sample.ErrEmptyCollection)
}

// TestTopK_Truncation verifies the k-most-frequent view.
func TestTopK_Truncation(t *testing.T) {
	col := filter.Collection{
		{Word: "a", Count: 5},
		{Word: "b", Count: 3},
		{Word: "c", Count: 1},
	}

	top, err := sample.TopK(col, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, top.Words())

	top, err = sample.TopK(col, 10)
	require.NoError(t, err)
	assert.Len(t, top, 3, "k past the end keeps everything")

	top, err = sample.TopK(col, 0)
	require.NoError(t, err)
	assert.Len(t, top, 1, "k below one clamps to a single entry")

	_, err = sample.TopK(nil, 3)
	assert.ErrorIs(t, err, sample.ErrEmptyCollection)
}

// TestDraw_UniformCorpus verifies the degenerate all-equal-count case stays
// well distributed at randomness 0.
func TestDraw_UniformCorpus(t *testing.T) {
	v, err := vocab.New("en", true, []vocab.Entry{
		{Word: "x"}, {Word: "y"}, {Word: "z"},
	})
	require.NoError(t, err)
	col := filter.Collection(v.Entries())

	rng := sample.RNGFromSeed(3)
	seen := make(map[string]int)
	for i := 0; i < 9000; i++ {
		e, err := sample.Draw(col, rng, 0)
		require.NoError(t, err)
		seen[e.Word]++
	}

	for _, w := range []string{"x", "y", "z"} {
		assert.InDeltaf(t, 3000, seen[w], 300, "word %q should appear about a third of the time", w)
	}
}

// TestDeriveRNG_IndependentStreams verifies derived streams differ from the
// parent and from each other.
func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := sample.RNGFromSeed(5)
	r1 := sample.DeriveRNG(base, 1)
	r2 := sample.DeriveRNG(base, 2)

	a := make([]int64, 8)
	b := make([]int64, 8)
	for i := range a {
		a[i] = r1.Int63()
		b[i] = r2.Int63()
	}
	assert.NotEqual(t, a, b, "distinct streams must diverge")
}
