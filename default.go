package glyphsift

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/typetools/glyphsift/punct"
	"github.com/typetools/glyphsift/vocab"
)

// Built-in English demo vocabulary, word-frequency TSV.
//
//go:embed data/en.tsv
var enTSV string

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// DefaultVocab builds a fresh copy of the built-in English vocabulary with
// its punctuation profile attached. It panics only if the embedded data is
// corrupt, which would be a build defect rather than a runtime condition.
func DefaultVocab() *vocab.Vocab {
	profile, _ := punct.Default("en")
	v, err := vocab.Parse("en", true, enTSV, vocab.WithPunctuation(profile))
	if err != nil {
		panic(fmt.Sprintf("glyphsift: embedded vocabulary: %v", err))
	}

	return v
}

// Default returns the shared package-level Generator, created on first use
// with the built-in English vocabulary. It is a convenience adapter for
// quick proofs and examples; anything beyond that should construct its own
// Generator with New, both for configurability and because the shared
// instance inherits the single-threaded RNG constraint.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = New()
	})

	return defaultGen
}

// SetGlyphs sets the default glyph set on the shared Generator.
func SetGlyphs(s string) { Default().SetGlyphs(s) }

// Reseed reseeds the shared Generator.
func Reseed(seed int64) { Default().Reseed(seed) }

// Word draws one word from the shared Generator.
func Word(opts *WordOptions) (string, error) { return Default().Word(opts) }

// TopWord looks up a frequency rank on the shared Generator.
func TopWord(opts *TopWordOptions) (string, error) { return Default().TopWord(opts) }

// Number draws a numeral string from the shared Generator.
func Number(opts *NumberOptions) (string, error) { return Default().Number(opts) }

// Words draws a word sequence from the shared Generator.
func Words(opts *WordsOptions) ([]string, error) { return Default().Words(opts) }

// Sentence draws one sentence from the shared Generator.
func Sentence(opts *SentenceOptions) (string, error) { return Default().Sentence(opts) }

// Paragraph draws one paragraph from the shared Generator.
func Paragraph(opts *ParagraphOptions) (string, error) { return Default().Paragraph(opts) }

// Text draws a full text block from the shared Generator.
func Text(opts *TextOptions) (string, error) { return Default().Text(opts) }
