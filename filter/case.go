package filter

import (
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/typetools/glyphsift/glyphs"
	"github.com/typetools/glyphsift/vocab"
)

// caseEnv carries the per-call glyph state shared by all matchers.
// uc and lc are the Uppercase/Lowercase projections of g; they are nil when
// g is unconstrained.
type caseEnv struct {
	g  glyphs.Set
	uc glyphs.Set
	lc glyphs.Set
}

func newCaseEnv(g glyphs.Set) caseEnv {
	return caseEnv{g: g, uc: g.Uppercase(), lc: g.Lowercase()}
}

// casers holds the language-aware case mappers for one vocabulary.
// Casers buffer internally, so a fresh set is built per resolution call.
type casers struct {
	upper cases.Caser
	lower cases.Caser
	title cases.Caser
}

func newCasers(tag language.Tag) *casers {
	return &casers{
		upper: cases.Upper(tag),
		lower: cases.Lower(tag),
		title: cases.Title(tag),
	}
}

// caseRule binds one explicit Case to its matcher, transform and required
// glyph classes. This table replaces mode dispatch by string comparison:
// adding a mode means adding a row, not a branch.
type caseRule struct {
	needsUpper bool
	needsLower bool
	match      func(env caseEnv, word string) bool
	transform  func(cs *casers, word string) string // nil = keep word as stored
}

var caseRules = map[Case]caseRule{
	CaseAnyOriginal: {
		match: func(env caseEnv, w string) bool { return env.g.Spellable(w) },
	},
	CaseLower: {
		needsLower: true,
		match:      matchLower,
	},
	CaseLowerForce: {
		needsLower: true,
		match:      matchLowerForce,
		transform:  func(cs *casers, w string) string { return cs.lower.String(w) },
	},
	CaseCap: {
		needsUpper: true,
		needsLower: true,
		match:      matchCap,
		transform:  func(cs *casers, w string) string { return cs.title.String(w) },
	},
	CaseCapOriginal: {
		needsUpper: true,
		needsLower: true,
		match:      matchCapOriginal,
	},
	CaseCapForce: {
		needsUpper: true,
		needsLower: true,
		match:      matchCapForce,
		transform:  func(cs *casers, w string) string { return cs.title.String(w) },
	},
	CaseUpper: {
		needsUpper: true,
		match:      matchUpper,
		transform:  func(cs *casers, w string) string { return cs.upper.String(w) },
	},
	CaseUpperOriginal: {
		needsUpper: true,
		match:      matchUpperOriginal,
	},
	CaseUpperForce: {
		needsUpper: true,
		match:      matchUpperForce,
		transform:  func(cs *casers, w string) string { return cs.upper.String(w) },
	},
}

// Resolve returns the subset of v displayable with g under case mode c,
// ordered by descending count.
//
// Non-bicameral vocabularies ignore the case mode entirely: only glyph
// membership is checked. For CaseAny on a bicameral vocabulary with a
// constrained glyph set, the cascade documented in the package comment runs
// until at least minResults entries are collected (minResults below 1 is
// treated as 1).
//
// Errors: ErrConfiguration when an explicit mode's required glyph class is
// absent; ErrNoMatch when zero words qualify; ErrValidation for a nil
// vocabulary.
//
// Complexity: O(total word runes) per stage.
func Resolve(v *vocab.Vocab, g glyphs.Set, c Case, minResults int) (Collection, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vocabulary", ErrValidation)
	}
	if minResults < 1 {
		minResults = 1
	}

	if !v.Bicameral() {
		return resolveUnicameral(v, g)
	}

	env := newCaseEnv(g)
	cs := newCasers(v.Tag())

	if c == CaseAny {
		if !g.Constrained() {
			// Nothing to work around: every stored word is displayable.
			return Collection(v.Entries()), nil
		}

		return runCascade(minResults, func(stage Case) (Collection, error) {
			return resolveExplicit(v, env, cs, stage)
		})
	}

	return resolveExplicit(v, env, cs, c)
}

// resolveUnicameral keeps the glyph-spellable subset; case modes do not
// apply to scripts without a case distinction.
func resolveUnicameral(v *vocab.Vocab, g glyphs.Set) (Collection, error) {
	var out Collection
	for _, e := range v.Entries() {
		if g.Spellable(e.Word) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: glyphs=%q", ErrNoMatch, g.Key())
	}

	return out, nil
}

// resolveExplicit runs one non-cascading case mode over the vocabulary.
func resolveExplicit(v *vocab.Vocab, env caseEnv, cs *casers, c Case) (Collection, error) {
	rule, ok := caseRules[c]
	if !ok {
		return nil, fmt.Errorf("%w: case mode %s is not explicit", ErrValidation, c)
	}
	if env.g.Constrained() {
		if rule.needsUpper && len(env.uc) == 0 {
			return nil, fmt.Errorf("%w: case=%s requires uppercase glyphs", ErrConfiguration, c)
		}
		if rule.needsLower && len(env.lc) == 0 {
			return nil, fmt.Errorf("%w: case=%s requires lowercase glyphs", ErrConfiguration, c)
		}
	}

	var out Collection
	for _, e := range v.Entries() {
		if !rule.match(env, e.Word) {
			continue
		}
		word := e.Word
		if rule.transform != nil {
			word = rule.transform(cs, word)
		}
		out = append(out, vocab.Entry{Word: word, Count: e.Count})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: case=%s glyphs=%q", ErrNoMatch, c, env.g.Key())
	}

	return out, nil
}

// cascadeStages is the fixed priority order of the CaseAny fallback.
var cascadeStages = [...]Case{CaseAnyOriginal, CaseCap, CaseUpperForce}

// runCascade appends stage results until minResults entries are collected.
// A stage failing with ErrNoMatch or ErrConfiguration contributes nothing
// but does not abort the cascade. Output words are deduplicated (first
// stage wins) and the union is stable-sorted by descending count.
func runCascade(minResults int, stage func(Case) (Collection, error)) (Collection, error) {
	var out Collection
	seen := make(map[string]struct{})

	for i, c := range cascadeStages {
		if i > 0 && len(out) >= minResults {
			break
		}
		col, err := stage(c)
		if err != nil {
			// Out of candidates or impossible glyph class: try the next stage.
			continue
		}
		for _, e := range col {
			if _, dup := seen[e.Word]; dup {
				continue
			}
			seen[e.Word] = struct{}{}
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: case=any exhausted all fallback stages", ErrNoMatch)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out, nil
}

// --- matchers -------------------------------------------------------------

// matchLower: word stored in lowercase. Constrained: every rune must be an
// available lowercase glyph.
func matchLower(env caseEnv, w string) bool {
	for _, r := range w {
		if env.g.Constrained() {
			if !env.lc.Has(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
	}

	return true
}

// matchLowerForce: any word whose lowercase form is spellable with the
// available lowercase glyphs. Unconstrained: everything.
func matchLowerForce(env caseEnv, w string) bool {
	if !env.g.Constrained() {
		return true
	}
	for _, r := range w {
		if !env.lc.Has(unicode.ToLower(r)) {
			return false
		}
	}

	return true
}

// matchCap: words stored lowercase or title-case — first rune's uppercase
// form must be an available uppercase glyph, tail runes must be available
// lowercase glyphs. Unconstrained: any first rune, lowercase tail.
func matchCap(env caseEnv, w string) bool {
	first := true
	for _, r := range w {
		if first {
			first = false
			if env.g.Constrained() && !env.uc.Has(unicode.ToUpper(r)) {
				return false
			}
			continue
		}
		if env.g.Constrained() {
			if !env.lc.Has(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
	}

	return !first // empty words never match
}

// matchCapOriginal: words already stored in title case.
func matchCapOriginal(env caseEnv, w string) bool {
	first := true
	for _, r := range w {
		if first {
			first = false
			if env.g.Constrained() {
				if !env.uc.Has(r) {
					return false
				}
			} else if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if env.g.Constrained() {
			if !env.lc.Has(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
	}

	return !first
}

// matchCapForce: any word whose title-cased form is spellable — uppercase
// glyph for the first rune, lowercase glyphs for the lowered tail.
func matchCapForce(env caseEnv, w string) bool {
	if !env.g.Constrained() {
		return true
	}
	first := true
	for _, r := range w {
		if first {
			first = false
			if !env.uc.Has(unicode.ToUpper(r)) {
				return false
			}
			continue
		}
		if !env.lc.Has(unicode.ToLower(r)) {
			return false
		}
	}

	return !first
}

// matchUpper: upper-casable words — mixed-case source words (camelCase,
// DDoS-style acronym blends) are never forced to uppercase by the bare mode.
func matchUpper(env caseEnv, w string) bool {
	if !notMixedCase(w) {
		return false
	}
	if !env.g.Constrained() {
		return true
	}
	for _, r := range w {
		if !env.uc.Has(unicode.ToUpper(r)) {
			return false
		}
	}

	return true
}

// matchUpperOriginal: words already stored in all uppercase.
func matchUpperOriginal(env caseEnv, w string) bool {
	for _, r := range w {
		if env.g.Constrained() {
			if !env.uc.Has(r) {
				return false
			}
		} else if !unicode.IsUpper(r) {
			return false
		}
	}

	return true
}

// matchUpperForce: any word whose uppercase form is spellable.
func matchUpperForce(env caseEnv, w string) bool {
	if !env.g.Constrained() {
		return true
	}
	for _, r := range w {
		if !env.uc.Has(unicode.ToUpper(r)) {
			return false
		}
	}

	return true
}

// notMixedCase rejects words with a lowercase rune immediately followed by
// an uppercase rune (camelCase) and words with a run of two or more
// uppercase runes followed by a lowercase rune (PCIe, DDoS).
func notMixedCase(w string) bool {
	prevLower := false
	upperRun := 0
	for _, r := range w {
		switch {
		case unicode.IsUpper(r):
			if prevLower {
				return false
			}
			upperRun++
			prevLower = false
		case unicode.IsLower(r):
			if upperRun >= 2 {
				return false
			}
			upperRun = 0
			prevLower = true
		default:
			upperRun = 0
			prevLower = false
		}
	}

	return true
}
