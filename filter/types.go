package filter

import (
	"fmt"

	"github.com/typetools/glyphsift/vocab"
)

// Collection is an ordered word/count list produced by filtering: descending
// original count, never empty on success (emptiness is reported as
// ErrNoMatch instead). Collections are read-only once returned; the cache
// hands the same backing slice to every caller.
type Collection []vocab.Entry

// Words returns just the words, in collection order.
func (c Collection) Words() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Word
	}

	return out
}

// Case selects how letter case is matched and transformed during
// resolution. The zero value is CaseAny.
type Case int

const (
	// CaseAny applies the cascading fallback policy documented in the
	// package comment: unmodified words first, then title-cased, then
	// upper-cased.
	CaseAny Case = iota

	// CaseAnyOriginal accepts words exactly as stored, any case.
	CaseAnyOriginal

	// CaseLower accepts words stored in lowercase, unmodified.
	CaseLower

	// CaseLowerForce lower-cases every word, regardless of stored case.
	CaseLowerForce

	// CaseCap title-cases words stored in lowercase or title case.
	CaseCap

	// CaseCapOriginal accepts words already stored in title case.
	CaseCapOriginal

	// CaseCapForce title-cases every word, regardless of stored case.
	CaseCapForce

	// CaseUpper upper-cases words unless they are mixed-case in the source
	// (camelCase or acronym-prefixed words like DDoS stay untouched).
	CaseUpper

	// CaseUpperOriginal accepts words already stored in all uppercase.
	CaseUpperOriginal

	// CaseUpperForce upper-cases every word, mixed-case included.
	CaseUpperForce
)

// caseNames is the wire/CLI spelling of each mode.
var caseNames = map[Case]string{
	CaseAny:           "any",
	CaseAnyOriginal:   "any_og",
	CaseLower:         "lc",
	CaseLowerForce:    "lc_force",
	CaseCap:           "cap",
	CaseCapOriginal:   "cap_og",
	CaseCapForce:      "cap_force",
	CaseUpper:         "uc",
	CaseUpperOriginal: "uc_og",
	CaseUpperForce:    "uc_force",
}

// String returns the canonical spelling ("any", "cap_og", ...).
func (c Case) String() string {
	if s, ok := caseNames[c]; ok {
		return s
	}

	return fmt.Sprintf("Case(%d)", int(c))
}

// ParseCase converts a canonical spelling back into a Case.
// Unknown spellings are ErrValidation.
func ParseCase(s string) (Case, error) {
	for c, name := range caseNames {
		if name == s {
			return c, nil
		}
	}

	return CaseAny, fmt.Errorf("%w: unknown case mode %q", ErrValidation, s)
}
