package vocab

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/typetools/glyphsift/punct"
)

// Sentinel errors for vocabulary construction.
var (
	// ErrEmpty indicates a vocabulary with no usable entries.
	ErrEmpty = errors.New("vocab: vocabulary is empty")

	// ErrFormat indicates vocabulary data that is neither a TSV of
	// word/count columns nor a newline-delimited word list.
	ErrFormat = errors.New("vocab: malformed vocabulary data")
)

// Entry is one word with its occurrence count in the source corpus.
type Entry struct {
	Word  string
	Count int
}

// Vocab is an immutable word table: entries in descending count order, a
// language code, a bicameral flag and optional punctuation metadata.
type Vocab struct {
	lang        string
	tag         language.Tag
	bicameral   bool
	entries     []Entry
	punctuation *punct.Profile
	meta        map[string]string
	id          string
}

// Option configures a Vocab at construction time.
type Option func(*Vocab)

// WithPunctuation attaches a punctuation profile to the vocabulary.
// It overrides the built-in profile for the vocabulary's language.
func WithPunctuation(p *punct.Profile) Option {
	return func(v *Vocab) { v.punctuation = p }
}

// WithMeta attaches free-form metadata (source corpus, license, notes).
func WithMeta(meta map[string]string) Option {
	return func(v *Vocab) { v.meta = meta }
}

// New builds a Vocab from entries.
//
// Counts below 1 default to 1 (uniform corpus semantics for plain word
// lists). Entries are copied and stable-sorted by descending count, so equal
// counts keep their source order. An empty entry slice is ErrEmpty.
//
// Complexity: O(n log n).
func New(lang string, bicameral bool, entries []Entry, opts ...Option) (*Vocab, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	sorted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Word == "" {
			continue
		}
		if e.Count < 1 {
			e.Count = 1
		}
		sorted = append(sorted, e)
	}
	if len(sorted) == 0 {
		return nil, ErrEmpty
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })

	v := &Vocab{
		lang:      lang,
		tag:       language.Make(lang),
		bicameral: bicameral,
		entries:   sorted,
		id:        uuid.NewString(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Parse builds a Vocab from raw data: either TSV lines of "word<TAB>count"
// or a bare newline-delimited word list (counts default to 1). The format is
// sniffed from the first non-blank line; mixed content is ErrFormat.
//
// Complexity: O(n log n).
func Parse(lang string, bicameral bool, data string, opts ...Option) (*Vocab, error) {
	lines := splitLines(data)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	hasCounts := strings.ContainsRune(lines[0], '\t')
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		word, count, err := parseLine(line, hasCounts)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, i+1, err)
		}
		entries = append(entries, Entry{Word: word, Count: count})
	}

	return New(lang, bicameral, entries, opts...)
}

// Lang returns the vocabulary's language code ("en", "ar", ...).
func (v *Vocab) Lang() string { return v.lang }

// Tag returns the parsed language tag, used for language-aware case mapping.
func (v *Vocab) Tag() language.Tag { return v.tag }

// Bicameral reports whether the vocabulary's script distinguishes upper and
// lower case letterforms.
func (v *Vocab) Bicameral() bool { return v.bicameral }

// Punctuation returns the attached punctuation profile, or nil.
func (v *Vocab) Punctuation() *punct.Profile { return v.punctuation }

// Meta returns the free-form metadata attached at construction, or nil.
func (v *Vocab) Meta() map[string]string { return v.meta }

// ID returns the vocabulary's unique identity, assigned at construction.
// Filtering caches use it as part of their keys.
func (v *Vocab) ID() string { return v.id }

// Len returns the number of entries.
func (v *Vocab) Len() int { return len(v.entries) }

// Entries returns the table in descending count order. The slice is shared
// with the Vocab and must be treated as read-only.
func (v *Vocab) Entries() []Entry { return v.entries }

// splitLines splits data into trimmed, non-blank lines.
func splitLines(data string) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// parseLine extracts one word (and count, when hasCounts) from a line.
func parseLine(line string, hasCounts bool) (string, int, error) {
	if !hasCounts {
		if !isWord(line) {
			return "", 0, fmt.Errorf("expected a bare word, got %q", line)
		}

		return line, 1, nil
	}

	word, countStr, ok := strings.Cut(line, "\t")
	if !ok || !isWord(word) {
		return "", 0, fmt.Errorf("expected \"word<TAB>count\", got %q", line)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil || count < 0 {
		return "", 0, fmt.Errorf("bad count %q", countStr)
	}

	return word, count, nil
}

// isWord reports whether s is non-empty and free of whitespace and tabs.
// Words may carry marks, apostrophes and hyphens, so only letters are
// required somewhere in the token.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	return hasLetter
}
