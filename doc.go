// Package glyphsift generates proofing text for typefaces under
// construction: prose constrained to the glyphs a font actually has.
//
// Given a vocabulary of words with frequency counts and a set of available
// characters, glyphsift finds the words that can be displayed, reshaping
// letter case where that widens the match set, then assembles them into
// sentences and paragraphs with plausible, glyph-aware punctuation.
//
// What
//
//   - glyphs: the character-availability set and its case/numeral views.
//   - vocab: immutable word/count tables with language metadata, loadable
//     from TSV or plain word lists.
//   - filter: case resolution (ten modes, with a cascading fallback for
//     "any") plus structural constraints, memoized behind an LRU cache.
//   - sample: frequency-weighted drawing with a randomness dial that
//     interpolates toward uniform, and positional top-word access.
//   - punct: weighted punctuation profiles and the sentence composer.
//   - Generator (this package): the orchestrator tying it all together,
//     from single words up to multi-paragraph text blocks.
//
// Determinism
//
// All randomness flows through one explicit RNG stream per Generator.
// The same seed over the same inputs reproduces the same text; without
// reseeding, state carries over between calls. A Generator is not safe for
// concurrent use; give each proofing session its own.
//
// Quick start
//
//	g := glyphsift.New(
//		glyphsift.WithGlyphs("HAMBUGERFONTSIVhambugerfontsiv.,"),
//		glyphsift.WithSeed(7),
//	)
//	text, err := g.Sentence(nil)
//
// The package-level Word, Sentence, Text (and friends) are thin adapters
// over a shared default Generator carrying the built-in English vocabulary.
package glyphsift
