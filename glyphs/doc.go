// Package glyphs models the character inventory of a typeface in progress.
//
// What
//
//   - Set: the characters a font currently supports. A nil (or empty) Set is
//     "unconstrained" and permits every character.
//   - Spellability checks: can a word be rendered with the available glyphs?
//   - Unicode category views: Uppercase, Lowercase, Numerals, Punctuation.
//
// Why
//
//	Proofing text for an in-progress typeface must only use glyphs the font
//	already has. Every filtering and punctuation decision upstream reduces to
//	membership tests against a Set, so the Set is kept as a plain rune map with
//	O(1) lookups and cheap category projections.
//
// Determinism
//
//	Key returns the set's runes in sorted order, so two Sets built from the
//	same characters (in any order) produce identical cache keys.
//
// Complexity (n = glyph count, w = word length)
//
//   - Has:        O(1)
//   - Spellable:  O(w)
//   - Uppercase / Lowercase / Numerals / Punctuation: O(n)
//   - Key:        O(n log n)
package glyphs
