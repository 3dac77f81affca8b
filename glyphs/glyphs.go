package glyphs

import (
	"sort"
	"strings"
	"unicode"
)

// Set is the character inventory available for rendering.
//
// A nil Set is "unconstrained": every character is considered available.
// New("") returns nil, so an absent glyph string naturally produces an
// unconstrained Set. Sets are treated as read-only after construction.
type Set map[rune]struct{}

// New builds a Set from the runes of s. Duplicate runes collapse.
// An empty string yields a nil (unconstrained) Set.
//
// Complexity: O(len(s)).
func New(s string) Set {
	if s == "" {
		return nil
	}
	set := make(Set, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}

	return set
}

// Constrained reports whether the Set actually restricts the character
// inventory. Only a nil Set permits everything; a non-nil empty Set is a
// valid constraint with nothing available (e.g. the Uppercase projection of
// a lowercase-only font).
func (s Set) Constrained() bool { return s != nil }

// Has reports whether r is available. Unconstrained Sets contain every rune.
//
// Complexity: O(1).
func (s Set) Has(r rune) bool {
	if !s.Constrained() {
		return true
	}
	_, ok := s[r]

	return ok
}

// Spellable reports whether every rune of word is available.
// The empty word is always spellable.
//
// Complexity: O(len(word)).
func (s Set) Spellable(word string) bool {
	if !s.Constrained() {
		return true
	}
	for _, r := range word {
		if _, ok := s[r]; !ok {
			return false
		}
	}

	return true
}

// Uppercase returns the subset of uppercase letters (Unicode category Lu).
// For an unconstrained Set it returns nil, which callers must treat as
// "all uppercase letters available".
//
// Complexity: O(n).
func (s Set) Uppercase() Set { return s.subset(unicode.IsUpper) }

// Lowercase returns the subset of lowercase letters (Unicode category Ll).
// For an unconstrained Set it returns nil ("all lowercase available").
//
// Complexity: O(n).
func (s Set) Lowercase() Set { return s.subset(unicode.IsLower) }

// Punctuation returns the subset of punctuation characters (category P*).
//
// Complexity: O(n).
func (s Set) Punctuation() Set { return s.subset(unicode.IsPunct) }

// Numerals returns the available decimal digits '0'..'9' in ascending order.
// An unconstrained Set yields all ten digits.
//
// Complexity: O(1) (ten membership tests).
func (s Set) Numerals() []rune {
	digits := make([]rune, 0, 10)
	for r := '0'; r <= '9'; r++ {
		if s.Has(r) {
			digits = append(digits, r)
		}
	}

	return digits
}

// Key returns a canonical string form of the Set: its runes in ascending
// order. Two Sets with the same members share the same Key, which makes the
// result usable in memoization cache keys. Unconstrained Sets return "".
//
// Complexity: O(n log n).
func (s Set) Key() string {
	if !s.Constrained() {
		return ""
	}
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	var b strings.Builder
	b.Grow(len(runes))
	for _, r := range runes {
		b.WriteRune(r)
	}

	return b.String()
}

// subset returns the members satisfying pred, or nil when unconstrained.
func (s Set) subset(pred func(rune) bool) Set {
	if !s.Constrained() {
		return nil
	}
	out := make(Set)
	for r := range s {
		if pred(r) {
			out[r] = struct{}{}
		}
	}

	return out
}
