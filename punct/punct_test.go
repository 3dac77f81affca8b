package punct_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typetools/glyphsift/glyphs"
	"github.com/typetools/glyphsift/punct"
	"github.com/typetools/glyphsift/sample"
)

// fullStop is a minimal deterministic profile: always end with a period,
// never insert or wrap inside.
func fullStop() *punct.Profile {
	return &punct.Profile{
		Insert:       []punct.Insert{{Text: " ", Weight: 1}},
		WrapSentence: []punct.Wrap{{Prefix: "", Suffix: ".", Weight: 1}},
		WrapInner:    []punct.Wrap{{Prefix: "", Suffix: "", Weight: 1}},
	}
}

// TestCompose_EmptyAndNil verifies the degenerate inputs.
func TestCompose_EmptyAndNil(t *testing.T) {
	rng := sample.RNGFromSeed(1)

	s, err := punct.Compose(fullStop(), rng, nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s, "no words, no sentence")

	s, err = punct.Compose(nil, rng, []string{"one", "two"}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "one two", s, "nil profile degrades to space-join")
}

// TestCompose_RandomnessRange verifies the randomness bounds check.
func TestCompose_RandomnessRange(t *testing.T) {
	rng := sample.RNGFromSeed(1)

	_, err := punct.Compose(fullStop(), rng, []string{"a"}, nil, 1.5)
	assert.ErrorIs(t, err, punct.ErrRandomness)

	_, err = punct.Compose(fullStop(), rng, []string{"a"}, nil, -0.1)
	assert.ErrorIs(t, err, punct.ErrRandomness)
}

// TestCompose_TwoWordsSentenceWrapOnly verifies that short sentences only
// get the sentence wrap, never inner punctuation.
func TestCompose_TwoWordsSentenceWrapOnly(t *testing.T) {
	rng := sample.RNGFromSeed(1)

	s, err := punct.Compose(fullStop(), rng, []string{"hello", "there"}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello there.", s)
}

// TestCompose_NoPunctGlyphsIsSpaceJoin verifies the core availability rule:
// a glyph set without punctuation yields exactly the space-joined words.
func TestCompose_NoPunctGlyphsIsSpaceJoin(t *testing.T) {
	p, ok := punct.Default("en")
	require.True(t, ok)

	g := glyphs.New("abcdefghijklmnopqrstuvwxyz")
	words := []string{"three", "little", "words", "here"}

	for seed := int64(1); seed <= 20; seed++ {
		s, err := punct.Compose(p, sample.RNGFromSeed(seed), words, g, 0.5)
		require.NoError(t, err)
		assert.Equal(t, "three little words here", s, "no punctuation glyphs must mean plain joining")
	}
}

// TestCompose_RespectsGlyphAvailability verifies that drawn punctuation only
// ever uses available characters.
func TestCompose_RespectsGlyphAvailability(t *testing.T) {
	p, ok := punct.Default("en")
	require.True(t, ok)

	g := glyphs.New("abcdefghijklmnopqrstuvwxyz.")
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	for seed := int64(1); seed <= 50; seed++ {
		s, err := punct.Compose(p, sample.RNGFromSeed(seed), words, g, 1)
		require.NoError(t, err)
		for _, r := range s {
			if r == ' ' {
				continue
			}
			assert.Truef(t, g.Has(r), "seed %d produced unavailable rune %q in %q", seed, r, s)
		}
	}
}

// TestCompose_Deterministic verifies seed reproducibility.
func TestCompose_Deterministic(t *testing.T) {
	p, ok := punct.Default("en")
	require.True(t, ok)
	words := []string{"one", "two", "three", "four", "five", "six"}

	a, err := punct.Compose(p, sample.RNGFromSeed(42), words, nil, 0.3)
	require.NoError(t, err)
	b, err := punct.Compose(p, sample.RNGFromSeed(42), words, nil, 0.3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestCompose_KeepsAllWords verifies punctuation never drops or reorders
// words, whatever the profile draws.
func TestCompose_KeepsAllWords(t *testing.T) {
	p, ok := punct.Default("es")
	require.True(t, ok)
	words := []string{"uno", "dos", "tres", "cuatro", "cinco"}

	for seed := int64(1); seed <= 30; seed++ {
		s, err := punct.Compose(p, sample.RNGFromSeed(seed), words, nil, 0.5)
		require.NoError(t, err)

		pos := 0
		for _, w := range words {
			idx := strings.Index(s[pos:], w)
			require.GreaterOrEqualf(t, idx, 0, "seed %d: word %q missing or out of order in %q", seed, w, s)
			pos += idx + len(w)
		}
	}
}

// TestDefault_KnownLanguages verifies the built-in profile registry.
func TestDefault_KnownLanguages(t *testing.T) {
	langs := punct.Languages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "ar")

	for _, lang := range langs {
		p, ok := punct.Default(lang)
		require.True(t, ok)
		assert.NoErrorf(t, p.Validate(), "built-in profile %q must validate", lang)
	}

	_, ok := punct.Default("tlh")
	assert.False(t, ok, "unknown language has no built-in profile")
}

// TestLoad_YAMLProfile verifies YAML profile parsing and validation.
func TestLoad_YAMLProfile(t *testing.T) {
	src := `
insert:
  - {text: " ", weight: 0.8}
  - {text: ", ", weight: 0.2}
wrap_sentence:
  - {prefix: "", suffix: ".", weight: 1}
wrap_inner:
  - {prefix: "", suffix: "", weight: 1}
`
	p, err := punct.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, p.Insert, 2)
	assert.Equal(t, ", ", p.Insert[1].Text)

	_, err = punct.Load(strings.NewReader(`insert: [{text: " ", weight: -1}]`))
	assert.ErrorIs(t, err, punct.ErrBadProfile)
}
