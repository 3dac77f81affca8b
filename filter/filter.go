package filter

import (
	"fmt"

	"github.com/typetools/glyphsift/glyphs"
	"github.com/typetools/glyphsift/vocab"
)

// Filter resolves v against the glyph set under case mode c, then applies
// the structural criteria, returning at most the words that survive both.
//
// For CaseAny on a bicameral vocabulary with a constrained glyph set, the
// structural criteria participate in the cascade: each fallback stage is
// resolved and criteria-filtered as a unit, so a later stage can still
// supply words when an earlier stage's survivors are all filtered out.
// Everywhere else resolution and criteria application compose sequentially.
//
// minResults below 1 is treated as 1.
//
// Errors: ErrValidation, ErrConfiguration, ErrNoMatch as documented on
// Resolve and Apply.
func Filter(v *vocab.Vocab, g glyphs.Set, c Case, cr Criteria, minResults int) (Collection, error) {
	if err := cr.Validate(); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil vocabulary", ErrValidation)
	}
	if minResults < 1 {
		minResults = 1
	}

	if c == CaseAny && v.Bicameral() && g.Constrained() {
		env := newCaseEnv(g)
		cs := newCasers(v.Tag())

		return runCascade(minResults, func(stage Case) (Collection, error) {
			col, err := resolveExplicit(v, env, cs, stage)
			if err != nil {
				return nil, err
			}

			return Apply(col, cr)
		})
	}

	col, err := Resolve(v, g, c, minResults)
	if err != nil {
		return nil, err
	}

	return Apply(col, cr)
}
