// Package filter selects the subset of a vocabulary that can be displayed
// with an incomplete glyph set, optionally reshaping letter case to widen
// the match set, and applies structural constraints on top.
//
// What
//
//   - Case: ten case-handling modes. Bare modes (CaseLower, CaseCap,
//     CaseUpper) transform only words whose stored case is compatible;
//     "_og" modes (CaseAnyOriginal, CaseCapOriginal, CaseUpperOriginal)
//     accept words already in that case and never transform; "_force" modes
//     transform any word regardless of its stored case. CaseAny is a
//     cascading policy, not a filter of its own.
//   - Resolve: case resolution against a glyph set, returning a Collection.
//   - Criteria / Apply: length, prefix/suffix, substring, inner-substring and
//     regular-expression constraints.
//   - Filter: Resolve + Apply composed; Cache memoizes it.
//
// The CaseAny cascade
//
//	CaseAny deliberately favors words that need no modification (proper
//	nouns, acronyms) before attempting destructive transforms. Stages, in
//	fixed priority order:
//
//	  1. unmodified words spellable as stored (CaseAnyOriginal);
//	  2. if fewer than minResults so far, append lowercase/title-case words
//	     title-cased (CaseCap — needs both glyph case classes);
//	  3. if still short, append any word upper-cased (CaseUpperForce —
//	     needs the uppercase class).
//
//	Stage results are appended, never replaced; a stage whose glyph-class
//	requirement cannot be met is skipped rather than failing the cascade.
//	Duplicated output words keep their first (earliest-stage) occurrence,
//	and the union is ordered by descending count.
//
// Case transforms are language-aware: they run through golang.org/x/text
// casers built from the vocabulary's language tag, so Turkish dotless-i and
// similar mappings come out right.
//
// Errors
//
//   - ErrNoMatch       — a filter stage produced zero results; recoverable.
//     The wrapped message names the stage and criteria.
//   - ErrConfiguration — the requested mode is structurally impossible with
//     the available glyphs (e.g. CaseCap with no uppercase glyphs).
//   - ErrValidation    — malformed criteria: non-letter substring
//     constraints, MinLength > MaxLength, a regex that does not compile.
//
// Complexity: one pass over the vocabulary per stage, O(total word runes).
package filter
