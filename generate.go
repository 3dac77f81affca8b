package glyphsift

import (
	"fmt"
	"strings"

	"github.com/typetools/glyphsift/filter"
	"github.com/typetools/glyphsift/punct"
	"github.com/typetools/glyphsift/sample"
)

// Number generates a numeral string from the digits available in the glyph
// set. Digit count is Length when set, otherwise uniform in
// [MinLength, MaxLength]. A constrained glyph set with no digits is a
// no-match condition, handled per the propagation policy.
func (g *Generator) Number(opts *NumberOptions) (string, error) {
	if opts == nil {
		opts = DefaultNumberOptions()
	}
	g.reseedIfSet(opts.Seed)

	minLen, maxLen := opts.MinLength, opts.MaxLength
	if opts.Length > 0 {
		minLen, maxLen = opts.Length, opts.Length
	}
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		return "", fmt.Errorf("%w: number min length %d exceeds max length %d", ErrOptions, minLen, maxLen)
	}

	gl := g.glyphsFor(opts.Glyphs)
	numerals := gl.Numerals()
	if len(numerals) == 0 {
		return g.gentle(fmt.Errorf("%w: no numerals in glyphs %q", filter.ErrNoMatch, gl.Key()))
	}

	n := minLen + g.rng.Intn(maxLen-minLen+1)
	digits := make([]rune, n)
	for i := range digits {
		digits[i] = numerals[g.rng.Intn(len(numerals))]
	}

	return string(digits), nil
}

// Word draws one word: filter by case mode, glyphs and structural criteria,
// optionally truncate to the TopK most frequent, then sample with the
// randomness interpolation.
func (g *Generator) Word(opts *WordOptions) (string, error) {
	if opts == nil {
		opts = DefaultWordOptions()
	}
	g.reseedIfSet(opts.Seed)

	v, err := g.GetVocab(opts.Vocab)
	if err != nil {
		return "", err
	}
	gl := g.glyphsFor(opts.Glyphs)

	col, err := g.cache.Filter(v, gl, opts.Case, opts.Criteria, 1)
	if err != nil {
		return g.gentle(err)
	}
	if opts.TopK > 0 {
		if col, err = sample.TopK(col, opts.TopK); err != nil {
			return g.gentle(err)
		}
	}

	e, err := sample.Draw(col, g.rng, opts.Randomness)
	if err != nil {
		return g.gentle(err)
	}

	return e.Word, nil
}

// TopWord returns the word at frequency rank Index (0 = most frequent)
// under the given filters. Deterministic: no sampling is involved.
func (g *Generator) TopWord(opts *TopWordOptions) (string, error) {
	if opts == nil {
		opts = DefaultTopWordOptions()
	}
	g.reseedIfSet(opts.Seed)

	v, err := g.GetVocab(opts.Vocab)
	if err != nil {
		return "", err
	}
	gl := g.glyphsFor(opts.Glyphs)

	col, err := g.cache.Filter(v, gl, opts.Case, opts.Criteria, 1)
	if err != nil {
		return g.gentle(err)
	}

	e, err := sample.Nth(col, opts.Index)
	if err != nil {
		return g.gentle(err)
	}

	return e.Word, nil
}

// TopWords returns N consecutive frequency ranks starting at TopWord.Index.
// Ranks past the end of the filtered collection are skipped in gentle mode,
// so the result may be shorter than N.
func (g *Generator) TopWords(opts *TopWordsOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultTopWordsOptions()
	}
	g.reseedIfSet(opts.Seed)

	n := opts.N
	if n < 1 {
		n = DefaultTopWords
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		wordOpts := opts.TopWord
		wordOpts.Index += i
		wordOpts.Seed = 0

		w, err := g.TopWord(&wordOpts)
		if err != nil {
			return nil, err
		}
		if w != "" {
			out = append(out, w)
		}
	}

	return out, nil
}

// Words draws a word sequence. Each position is a Bernoulli choice between
// a word draw and a numeral draw (weight NumberProb). The first position
// upgrades CaseAny to CaseCap when first-word capitalization applies. A
// draw equal to the immediately preceding word is redrawn exactly once;
// duplicates may still occur. Empty draws from gentle-mode failures are
// dropped, so the sequence may come out shorter than requested.
func (g *Generator) Words(opts *WordsOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultWordsOptions()
	}
	g.reseedIfSet(opts.Seed)

	if opts.NumberProb < 0 || opts.NumberProb > 1 {
		return nil, fmt.Errorf("%w: number probability %v outside [0, 1]", ErrOptions, opts.NumberProb)
	}

	n, err := g.sequenceLength(opts.N, opts.MinWords, opts.MaxWords, DefaultMinWords, DefaultMaxWords)
	if err != nil {
		return nil, err
	}

	gl := g.glyphsFor(opts.Word.Glyphs)
	capFirst := opts.CapFirst == CapFirstAlways ||
		(opts.CapFirst == CapFirstAuto && (!gl.Constrained() || len(gl.Uppercase()) > 0))

	out := make([]string, 0, n)
	last := ""
	for i := 0; i < n; i++ {
		if g.rng.Float64() < opts.NumberProb {
			numOpts := opts.Number
			numOpts.Glyphs = opts.Word.Glyphs
			numOpts.Seed = 0

			w, err := g.Number(&numOpts)
			if err != nil {
				return nil, err
			}
			if w != "" {
				out = append(out, w)
				last = w
			}
			continue
		}

		wordOpts := opts.Word
		wordOpts.Seed = 0
		if i == 0 && capFirst && wordOpts.Case == filter.CaseAny {
			wordOpts.Case = filter.CaseCap
		}

		w, err := g.Word(&wordOpts)
		if err != nil {
			return nil, err
		}
		if w != "" && w == last {
			if w, err = g.Word(&wordOpts); err != nil {
				return nil, err
			}
		}
		if w != "" {
			out = append(out, w)
			last = w
		}
	}

	return out, nil
}

// Sentence draws a word sequence and composes it into a punctuated sentence
// using the vocabulary's punctuation profile, the built-in profile for its
// language, or plain space-joining when neither exists or NoPunct is set.
func (g *Generator) Sentence(opts *SentenceOptions) (string, error) {
	if opts == nil {
		opts = DefaultSentenceOptions()
	}
	g.reseedIfSet(opts.Seed)

	wordsOpts := opts.Words
	wordsOpts.Seed = 0

	words, err := g.Words(&wordsOpts)
	if err != nil {
		return "", err
	}
	if opts.NoPunct {
		return strings.Join(words, " "), nil
	}

	v, err := g.GetVocab(opts.Words.Word.Vocab)
	if err != nil {
		return "", err
	}
	profile := v.Punctuation()
	if profile == nil {
		profile, _ = punct.Default(v.Lang())
	}
	gl := g.glyphsFor(opts.Words.Word.Glyphs)

	return punct.Compose(profile, g.rng, words, gl, opts.PunctRandomness)
}

// Sentences draws a run of sentences. N fixes the count; zero draws it
// uniformly from [MinSentences, MaxSentences].
func (g *Generator) Sentences(opts *SentencesOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultSentencesOptions()
	}
	g.reseedIfSet(opts.Seed)

	n, err := g.sequenceLength(opts.N, opts.MinSentences, opts.MaxSentences, DefaultMinSentences, DefaultMaxSentences)
	if err != nil {
		return nil, err
	}

	sentOpts := opts.Sentence
	sentOpts.Seed = 0

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := g.Sentence(&sentOpts)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Paragraph joins a sentence run with Separator (single space when empty).
func (g *Generator) Paragraph(opts *ParagraphOptions) (string, error) {
	if opts == nil {
		opts = DefaultParagraphOptions()
	}
	g.reseedIfSet(opts.Seed)

	sep := opts.Separator
	if sep == "" {
		sep = " "
	}

	sentsOpts := opts.Sentences
	sentsOpts.Seed = 0

	sents, err := g.Sentences(&sentsOpts)
	if err != nil {
		return "", err
	}

	return strings.Join(sents, sep), nil
}

// Paragraphs draws N paragraphs (DefaultParagraphs when N < 1).
func (g *Generator) Paragraphs(opts *ParagraphsOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultParagraphsOptions()
	}
	g.reseedIfSet(opts.Seed)

	n := opts.N
	if n < 1 {
		n = DefaultParagraphs
	}

	paraOpts := opts.Paragraph
	paraOpts.Seed = 0

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p, err := g.Paragraph(&paraOpts)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Text joins a paragraph run with Separator (blank line when empty).
func (g *Generator) Text(opts *TextOptions) (string, error) {
	if opts == nil {
		opts = DefaultTextOptions()
	}
	g.reseedIfSet(opts.Seed)

	sep := opts.Separator
	if sep == "" {
		sep = "\n\n"
	}

	parasOpts := opts.Paragraphs
	parasOpts.Seed = 0

	paras, err := g.Paragraphs(&parasOpts)
	if err != nil {
		return "", err
	}

	return strings.Join(paras, sep), nil
}

// sequenceLength resolves a fixed-or-random run length. fixed > 0 wins;
// otherwise the length is drawn uniformly from [minN, maxN], with zero
// bounds replaced by the operation defaults.
func (g *Generator) sequenceLength(fixed, minN, maxN, defMin, defMax int) (int, error) {
	if fixed > 0 {
		return fixed, nil
	}
	if minN < 1 {
		minN = defMin
	}
	if maxN < 1 {
		maxN = defMax
	}
	if minN > maxN {
		return 0, fmt.Errorf("%w: min count %d exceeds max count %d", ErrOptions, minN, maxN)
	}

	return minN + g.rng.Intn(maxN-minN+1), nil
}
