package punct

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/typetools/glyphsift/glyphs"
)

// Compose joins words into a single punctuated sentence.
//
// One option is drawn from each of the profile's three tables, restricted to
// options whose characters are all present in g (a plain space is always
// considered available). Draw weights are interpolated toward uniform by
// randomness. If a table has no glyph-compatible option the category is
// omitted entirely; composition never fails because punctuation glyphs are
// missing.
//
// Placement, for sentences of more than two words:
//
//   - The inner wrap marks a contiguous span words[i..j], with i uniform in
//     [0, n-2] and j uniform in [i, n-2].
//   - The insert separator replaces the plain space at one gap in [1, n-2],
//     chosen uniformly among gaps distinct from i and j. When no such gap
//     exists the insert is skipped.
//
// Two or fewer words reduce to a space-joined string. The sentence wrap is
// applied around the assembled string last.
//
// All draws come from rng; given the same seed, word list, glyph set and
// profile, Compose is fully reproducible.
//
// Errors: ErrRandomness when randomness is outside [0,1].
//
// Complexity: O(options + words).
func Compose(p *Profile, rng *rand.Rand, words []string, g glyphs.Set, randomness float64) (string, error) {
	if randomness < 0 || randomness > 1 {
		return "", fmt.Errorf("%w: got %v", ErrRandomness, randomness)
	}
	if len(words) == 0 {
		return "", nil
	}
	if p == nil {
		return strings.Join(words, " "), nil
	}

	insert, hasInsert := pickInsert(p.Insert, g, rng, randomness)
	wrapSent, _ := pickWrap(p.WrapSentence, g, rng, randomness)
	wrapInner, hasInner := pickWrap(p.WrapInner, g, rng, randomness)

	var sent string
	n := len(words)
	if n > 2 {
		// Work on a copy so the caller's slice stays untouched.
		ws := make([]string, n)
		copy(ws, words)

		i := rng.Intn(n - 1)
		j := i + rng.Intn(n-1-i)
		if hasInner {
			ws[i] = wrapInner.Prefix + ws[i]
			ws[j] = ws[j] + wrapInner.Suffix
		}

		separators := make([]string, n-1)
		for k := range separators {
			separators[k] = " "
		}
		if hasInsert {
			var gaps []int
			for k := 1; k <= n-2; k++ {
				if k != i && k != j {
					gaps = append(gaps, k)
				}
			}
			if len(gaps) > 0 {
				k := gaps[rng.Intn(len(gaps))]
				separators[k-1] = insert.Text
			}
		}

		var b strings.Builder
		for k := 0; k < n-1; k++ {
			b.WriteString(ws[k])
			b.WriteString(separators[k])
		}
		b.WriteString(ws[n-1])
		sent = b.String()
	} else {
		sent = strings.Join(words, " ")
	}

	return wrapSent.Prefix + sent + wrapSent.Suffix, nil
}

// available reports whether every rune of s is present in g. The plain space
// is always allowed: separators carry their own spacing and proofs are not
// strict about the font having a space glyph yet.
func available(s string, g glyphs.Set) bool {
	if !g.Constrained() {
		return true
	}
	for _, r := range s {
		if r != ' ' && !g.Has(r) {
			return false
		}
	}

	return true
}

// pickInsert draws one glyph-compatible separator option, or reports
// ok=false when none is available.
func pickInsert(options []Insert, g glyphs.Set, rng *rand.Rand, randomness float64) (Insert, bool) {
	var (
		candidates []Insert
		weights    []float64
	)
	for _, o := range options {
		if available(o.Text, g) {
			candidates = append(candidates, o)
			weights = append(weights, (1-randomness)*o.Weight+randomness)
		}
	}
	if len(candidates) == 0 {
		return Insert{}, false
	}

	return candidates[weightedIndex(weights, rng)], true
}

// pickWrap draws one glyph-compatible prefix/suffix pair, or reports
// ok=false when none is available (the caller then omits the category).
func pickWrap(options []Wrap, g glyphs.Set, rng *rand.Rand, randomness float64) (Wrap, bool) {
	var (
		candidates []Wrap
		weights    []float64
	)
	for _, o := range options {
		if available(o.Prefix, g) && available(o.Suffix, g) {
			candidates = append(candidates, o)
			weights = append(weights, (1-randomness)*o.Weight+randomness)
		}
	}
	if len(candidates) == 0 {
		return Wrap{}, false
	}

	return candidates[weightedIndex(weights, rng)], true
}

// weightedIndex performs a cumulative-weight inverse-CDF draw over weights.
// A non-positive total degrades to a uniform draw.
func weightedIndex(weights []float64, rng *rand.Rand) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	x := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if x < cum {
			return i
		}
	}

	return len(weights) - 1
}
