// Package punct assembles word lists into punctuated sentences under a
// glyph constraint.
//
// What
//
//   - Profile: three weighted option tables describing how a language
//     punctuates — Insert (separators placed between two words, plain space
//     included), WrapSentence (prefix/suffix applied around the whole
//     sentence) and WrapInner (prefix/suffix applied around a span of words,
//     e.g. parentheses or quotes).
//   - Built-in profiles for en, ar, fa and es, with weights derived from
//     observed corpus frequencies.
//   - Load/LoadFile: read a Profile from YAML.
//   - Compose: pick one option per table by weighted random choice and place
//     it in the sentence.
//
// Why
//
//	A typeface in progress usually has only a handful of punctuation glyphs.
//	Compose therefore filters each table down to the options whose characters
//	are all available before drawing; when a whole table is unavailable the
//	category is silently omitted. Composition never fails for lack of
//	punctuation — the worst case is a plain space-joined sentence.
//
// Randomness
//
//	Option weights are interpolated toward uniform by the randomness
//	parameter r: effective weight = (1-r)·w + r·1. At r=0 the profile's
//	probabilities are used as-is; at r=1 every available option is equally
//	likely. All draws come from the caller's *rand.Rand, so a shared seeded
//	generator yields reproducible sentences.
//
// Errors
//
//   - ErrRandomness — randomness outside [0,1].
//   - ErrBadProfile — malformed profile data (negative weight, no tables).
package punct
