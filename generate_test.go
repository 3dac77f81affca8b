package glyphsift_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typetools/glyphsift"
	"github.com/typetools/glyphsift/filter"
	"github.com/typetools/glyphsift/vocab"
)

func demoGenerator(t *testing.T, opts ...glyphsift.Option) *glyphsift.Generator {
	t.Helper()
	v := newTestVocab(t,
		vocab.Entry{Word: "time", Count: 90},
		vocab.Entry{Word: "world", Count: 70},
		vocab.Entry{Word: "people", Count: 60},
		vocab.Entry{Word: "water", Count: 40},
		vocab.Entry{Word: "sound", Count: 30},
		vocab.Entry{Word: "light", Count: 20},
		vocab.Entry{Word: "plant", Count: 10},
	)
	opts = append([]glyphsift.Option{glyphsift.WithVocab("en", v)}, opts...)

	return glyphsift.New(opts...)
}

// TestWord_SeedDeterminism verifies the reproducibility contract: the same
// seed gives the same word, and carrying RNG state forward without a reseed
// generally moves on.
func TestWord_SeedDeterminism(t *testing.T) {
	g := demoGenerator(t)

	opts := &glyphsift.WordOptions{Seed: 123, Randomness: 0.5}
	a, err := g.Word(opts)
	require.NoError(t, err)
	b, err := g.Word(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical seeds must reproduce the draw")

	// Without reseeding, ten draws almost surely differ somewhere from ten
	// reseeded draws of the same word.
	var carried []string
	for i := 0; i < 10; i++ {
		w, err := g.Word(&glyphsift.WordOptions{Randomness: 0.5})
		require.NoError(t, err)
		carried = append(carried, w)
	}
	assert.NotEqual(t, []string{a, a, a, a, a, a, a, a, a, a}, carried,
		"state must carry over between unseeded calls")
}

// TestWords_SeedDeterminism verifies whole-sequence reproducibility.
func TestWords_SeedDeterminism(t *testing.T) {
	g := demoGenerator(t)
	opts := glyphsift.DefaultWordsOptions()
	opts.Seed = 777
	opts.Word.Randomness = 0.4

	a, err := g.Words(opts)
	require.NoError(t, err)
	b, err := g.Words(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, len(a), glyphsift.DefaultMinWords)
	assert.LessOrEqual(t, len(a), glyphsift.DefaultMaxWords)
}

// TestWords_FixedCountAndCapFirst verifies N and the automatic first-word
// capitalization under CaseAny.
func TestWords_FixedCountAndCapFirst(t *testing.T) {
	g := demoGenerator(t)
	opts := glyphsift.DefaultWordsOptions()
	opts.N = 6
	opts.Seed = 5

	ws, err := g.Words(opts)
	require.NoError(t, err)
	require.Len(t, ws, 6)

	first := []rune(ws[0])[0]
	assert.True(t, unicode.IsUpper(first), "unconstrained glyphs default to a capitalized first word")
	for _, w := range ws[1:] {
		assert.Truef(t, w == strings.ToLower(w), "tail word %q should stay lowercase", w)
	}
}

// TestWords_CapFirstAutoRespectsGlyphs verifies that a lowercase-only glyph
// set suppresses the automatic capitalization instead of failing.
func TestWords_CapFirstAutoRespectsGlyphs(t *testing.T) {
	g := demoGenerator(t, glyphsift.WithGlyphs("timeworldpeuasn"))
	opts := glyphsift.DefaultWordsOptions()
	opts.N = 4
	opts.Seed = 9

	ws, err := g.Words(opts)
	require.NoError(t, err)
	for _, w := range ws {
		assert.Equal(t, strings.ToLower(w), w, "no uppercase glyph, no capitals")
	}
}

// TestWords_NoImmediateRepeatRedraw verifies the single-redraw policy keeps
// output reasonable on a tiny vocabulary without guaranteeing uniqueness.
func TestWords_NoImmediateRepeatRedraw(t *testing.T) {
	v := newTestVocab(t,
		vocab.Entry{Word: "alpha", Count: 1},
		vocab.Entry{Word: "beta", Count: 1},
	)
	g := glyphsift.New(glyphsift.WithVocab("en", v), glyphsift.WithSeed(11))

	opts := glyphsift.DefaultWordsOptions()
	opts.N = 40
	opts.CapFirst = glyphsift.CapFirstNever
	opts.Word.Randomness = 1

	ws, err := g.Words(opts)
	require.NoError(t, err)

	repeats := 0
	for i := 1; i < len(ws); i++ {
		if ws[i] == ws[i-1] {
			repeats++
		}
	}
	assert.Less(t, repeats, len(ws)/2, "redraw should suppress most immediate repeats")
}

// TestWords_NumberProb verifies numeral interleaving at probability one and
// the options range check.
func TestWords_NumberProb(t *testing.T) {
	g := demoGenerator(t)
	opts := glyphsift.DefaultWordsOptions()
	opts.N = 8
	opts.NumberProb = 1
	opts.Seed = 21

	ws, err := g.Words(opts)
	require.NoError(t, err)
	require.Len(t, ws, 8)
	for _, w := range ws {
		for _, r := range w {
			assert.Truef(t, r >= '0' && r <= '9', "token %q should be all digits", w)
		}
		assert.GreaterOrEqual(t, len(w), glyphsift.DefaultNumberMinLength)
		assert.LessOrEqual(t, len(w), glyphsift.DefaultNumberMaxLength)
	}

	opts.NumberProb = 1.5
	_, err = g.Words(opts)
	assert.ErrorIs(t, err, glyphsift.ErrOptions)
}

// TestNumber_GlyphRestriction verifies digits come only from the glyph set
// and that a digitless set degrades gently.
func TestNumber_GlyphRestriction(t *testing.T) {
	g := demoGenerator(t, glyphsift.WithGlyphs("abc37"))

	opts := glyphsift.DefaultNumberOptions()
	opts.Seed = 2
	for i := 0; i < 20; i++ {
		num, err := g.Number(opts)
		require.NoError(t, err)
		for _, r := range num {
			assert.Contains(t, []rune{'3', '7'}, r)
		}
		opts.Seed = 0
	}

	gentle := demoGenerator(t, glyphsift.WithGlyphs("abc"))
	num, err := gentle.Number(nil)
	require.NoError(t, err)
	assert.Equal(t, "", num, "no digits available degrades to empty output")

	strict := demoGenerator(t, glyphsift.WithGlyphs("abc"), glyphsift.WithRaiseErrors())
	_, err = strict.Number(nil)
	assert.ErrorIs(t, err, filter.ErrNoMatch)
}

// TestNumber_ExactLength verifies the exact-length override.
func TestNumber_ExactLength(t *testing.T) {
	g := demoGenerator(t)

	for i := 0; i < 10; i++ {
		num, err := g.Number(&glyphsift.NumberOptions{Length: 5})
		require.NoError(t, err)
		assert.Len(t, num, 5)
	}

	_, err := g.Number(&glyphsift.NumberOptions{MinLength: 4, MaxLength: 2})
	assert.ErrorIs(t, err, glyphsift.ErrOptions)
}

// TestTopWord_RankAccess verifies deterministic positional lookup.
func TestTopWord_RankAccess(t *testing.T) {
	g := demoGenerator(t)

	w, err := g.TopWord(&glyphsift.TopWordOptions{Case: filter.CaseAnyOriginal})
	require.NoError(t, err)
	assert.Equal(t, "time", w)

	w, err = g.TopWord(&glyphsift.TopWordOptions{Case: filter.CaseAnyOriginal, Index: 2})
	require.NoError(t, err)
	assert.Equal(t, "people", w)

	w, err = g.TopWord(&glyphsift.TopWordOptions{Case: filter.CaseAnyOriginal, Index: 50})
	require.NoError(t, err)
	assert.Equal(t, "", w, "out-of-range rank degrades gently")
}

// TestTopWords_SkipsMissingRanks verifies the run shortens past the end of
// the collection instead of failing.
func TestTopWords_SkipsMissingRanks(t *testing.T) {
	g := demoGenerator(t)

	opts := glyphsift.DefaultTopWordsOptions()
	opts.N = 10
	opts.TopWord.Case = filter.CaseAnyOriginal

	ws, err := g.TopWords(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "world", "people", "water", "sound", "light", "plant"}, ws)
}

// TestSentence_NoPunct verifies punctuation-free sentences are exactly the
// space-joined word list.
func TestSentence_NoPunct(t *testing.T) {
	g := demoGenerator(t)

	opts := glyphsift.DefaultSentenceOptions()
	opts.Seed = 31
	opts.NoPunct = true
	opts.Words.N = 5

	s, err := g.Sentence(opts)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(s), 5)
	assert.NotContains(t, s, ".", "no punctuation requested")
}

// TestSentence_Punctuated verifies the built-in English profile is applied
// when the vocabulary carries none of its own.
func TestSentence_Punctuated(t *testing.T) {
	g := demoGenerator(t)

	opts := glyphsift.DefaultSentenceOptions()
	opts.Seed = 31
	opts.Words.N = 6

	s, err := g.Sentence(opts)
	require.NoError(t, err)
	assert.NotEmpty(t, s)

	runes := []rune(s)
	assert.Contains(t, []rune(".!?…"), runes[len(runes)-1], "English sentences end with terminal punctuation")
}

// TestText_Structure verifies paragraph and sentence counts flow through
// the document assembly.
func TestText_Structure(t *testing.T) {
	g := demoGenerator(t)

	opts := glyphsift.DefaultTextOptions()
	opts.Seed = 41
	opts.Paragraphs.N = 2
	opts.Paragraphs.Paragraph.Sentences.N = 3
	opts.Paragraphs.Paragraph.Sentences.Sentence.Words.N = 4

	text, err := g.Text(opts)
	require.NoError(t, err)

	paras := strings.Split(text, "\n\n")
	assert.Len(t, paras, 2)
	for _, p := range paras {
		assert.NotEmpty(t, p)
	}

	// Reproducibility across the whole document pipeline.
	again, err := g.Text(opts)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

// TestText_GlyphConstrainedEndToEnd verifies the headline property: every
// non-space rune of a constrained document is an available glyph.
func TestText_GlyphConstrainedEndToEnd(t *testing.T) {
	g := glyphsift.New(
		glyphsift.WithVocab("en", glyphsift.DefaultVocab()),
		glyphsift.WithGlyphs("HAMBUGERFONTSIVhambugerfontsiv.,"),
		glyphsift.WithSeed(8),
	)

	text, err := g.Text(nil)
	require.NoError(t, err)
	require.NotEmpty(t, text)

	for _, r := range text {
		if r == ' ' || r == '\n' {
			continue
		}
		assert.Truef(t, strings.ContainsRune("HAMBUGERFONTSIVhambugerfontsiv.,", r),
			"rune %q leaked into constrained output", r)
	}
}
