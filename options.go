package glyphsift

import "github.com/typetools/glyphsift/filter"

// Defaults for the generation operations. Values mirror the typical proofing
// workflow: ten to twenty words per sentence, four to seven sentences per
// paragraph, three paragraphs per text block.
const (
	DefaultMinWords     = 10
	DefaultMaxWords     = 20
	DefaultTopWords     = 10
	DefaultMinSentences = 4
	DefaultMaxSentences = 7
	DefaultParagraphs   = 3

	DefaultNumberMinLength = 1
	DefaultNumberMaxLength = 4

	DefaultTopWordMinLength = 2
)

// CapFirstMode controls capitalization of a word sequence's first word.
type CapFirstMode int

const (
	// CapFirstAuto capitalizes the first word unless the glyph set is
	// constrained and contains no uppercase letter.
	CapFirstAuto CapFirstMode = iota

	// CapFirstAlways forces first-word capitalization.
	CapFirstAlways

	// CapFirstNever leaves the first word to the regular case mode.
	CapFirstNever
)

// WordOptions parameterize a single word draw. The zero value asks for any
// word from the default vocabulary under the generator's glyph set.
//
// Seed, here and in every other options struct, reseeds the generator's RNG
// before the operation when non-zero; zero leaves the RNG state to carry
// over from the previous call.
type WordOptions struct {
	Vocab      string          // registered vocabulary name; empty = default
	Glyphs     string          // per-call glyph override; empty = generator default
	Case       filter.Case     // zero value = CaseAny
	Criteria   filter.Criteria // structural constraints
	Randomness float64         // 0 = frequency-weighted, 1 = uniform
	TopK       int             // restrict drawing to the k most frequent; 0 = all
	Seed       int64
}

// DefaultWordOptions returns the baseline single-word options.
func DefaultWordOptions() *WordOptions {
	return &WordOptions{}
}

// TopWordOptions parameterize a positional most-frequent-word lookup.
type TopWordOptions struct {
	Vocab    string
	Glyphs   string
	Case     filter.Case
	Criteria filter.Criteria
	Index    int // 0 = most frequent
	Seed     int64
}

// DefaultTopWordOptions returns the baseline lookup options. Words shorter
// than two letters are excluded so "a" and "I" do not dominate every proof.
func DefaultTopWordOptions() *TopWordOptions {
	return &TopWordOptions{
		Criteria: filter.Criteria{MinLength: DefaultTopWordMinLength},
	}
}

// TopWordsOptions parameterize a run of consecutive top-word lookups.
type TopWordsOptions struct {
	TopWord TopWordOptions
	N       int // number of consecutive ranks, starting at TopWord.Index
	Seed    int64
}

// DefaultTopWordsOptions returns the baseline run options.
func DefaultTopWordsOptions() *TopWordsOptions {
	return &TopWordsOptions{
		TopWord: *DefaultTopWordOptions(),
		N:       DefaultTopWords,
	}
}

// NumberOptions parameterize numeral-string generation. Length bounds count
// digits; Length (exact) overrides MinLength and MaxLength.
type NumberOptions struct {
	Glyphs    string
	MinLength int
	MaxLength int
	Length    int
	Seed      int64
}

// DefaultNumberOptions returns the baseline numeral options (one to four
// digits).
func DefaultNumberOptions() *NumberOptions {
	return &NumberOptions{
		MinLength: DefaultNumberMinLength,
		MaxLength: DefaultNumberMaxLength,
	}
}

// WordsOptions parameterize a word-sequence draw.
//
// N fixes the sequence length; when zero, the length is drawn uniformly from
// [MinWords, MaxWords]. NumberProb is the per-position probability of
// emitting a numeral string instead of a word.
type WordsOptions struct {
	Word       WordOptions
	Number     NumberOptions
	N          int
	MinWords   int
	MaxWords   int
	NumberProb float64
	CapFirst   CapFirstMode
	Seed       int64
}

// DefaultWordsOptions returns the baseline sequence options.
func DefaultWordsOptions() *WordsOptions {
	return &WordsOptions{
		Number:   *DefaultNumberOptions(),
		MinWords: DefaultMinWords,
		MaxWords: DefaultMaxWords,
	}
}

// SentenceOptions parameterize one punctuated sentence.
type SentenceOptions struct {
	Words           WordsOptions
	NoPunct         bool    // skip punctuation, space-join the words
	PunctRandomness float64 // 0 = profile-weighted, 1 = uniform over options
	Seed            int64
}

// DefaultSentenceOptions returns the baseline sentence options.
func DefaultSentenceOptions() *SentenceOptions {
	return &SentenceOptions{Words: *DefaultWordsOptions()}
}

// SentencesOptions parameterize a sentence run. N fixes the count; when
// zero, it is drawn uniformly from [MinSentences, MaxSentences].
type SentencesOptions struct {
	Sentence     SentenceOptions
	N            int
	MinSentences int
	MaxSentences int
	Seed         int64
}

// DefaultSentencesOptions returns the baseline run options.
func DefaultSentencesOptions() *SentencesOptions {
	return &SentencesOptions{
		Sentence:     *DefaultSentenceOptions(),
		MinSentences: DefaultMinSentences,
		MaxSentences: DefaultMaxSentences,
	}
}

// ParagraphOptions parameterize one paragraph: a sentence run joined by
// Separator (a single space when empty).
type ParagraphOptions struct {
	Sentences SentencesOptions
	Separator string
	Seed      int64
}

// DefaultParagraphOptions returns the baseline paragraph options.
func DefaultParagraphOptions() *ParagraphOptions {
	return &ParagraphOptions{
		Sentences: *DefaultSentencesOptions(),
		Separator: " ",
	}
}

// ParagraphsOptions parameterize a paragraph run.
type ParagraphsOptions struct {
	Paragraph ParagraphOptions
	N         int
	Seed      int64
}

// DefaultParagraphsOptions returns the baseline run options.
func DefaultParagraphsOptions() *ParagraphsOptions {
	return &ParagraphsOptions{
		Paragraph: *DefaultParagraphOptions(),
		N:         DefaultParagraphs,
	}
}

// TextOptions parameterize a full text block: paragraphs joined by Separator
// (a blank line when empty).
type TextOptions struct {
	Paragraphs ParagraphsOptions
	Separator  string
	Seed       int64
}

// DefaultTextOptions returns the baseline text options.
func DefaultTextOptions() *TextOptions {
	return &TextOptions{
		Paragraphs: *DefaultParagraphsOptions(),
		Separator:  "\n\n",
	}
}
