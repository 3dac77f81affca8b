// Package vocab provides the word tables that proofing text is generated
// from: ordered (word, occurrence count) pairs plus the metadata needed for
// case handling and punctuation.
//
// What
//
//   - Entry: one (word, count) pair. Absent or zero counts default to 1, so a
//     plain word list behaves as a uniform corpus.
//   - Vocab: an immutable table of entries ordered by descending count, with
//     a language code, a bicameral flag (does the script distinguish upper
//     and lower case?) and an optional punctuation profile.
//   - New / Parse / LoadFile constructors. Parse accepts either TSV
//     ("word<TAB>count" per line) or a bare newline-delimited word list.
//     LoadFile pairs a data file with a YAML metadata file.
//
// Why
//
//	Everything downstream — case resolution, structural filtering, sampling —
//	operates on a Vocab and relies on two invariants: the table is never
//	empty, and entries are sorted by descending count so that positional
//	"top word" lookups are meaningful. Both are enforced at construction;
//	after that a Vocab is read-only and safe to share across goroutines.
//
// Identity
//
//	Each Vocab gets a UUID at construction. Filtering layers use it to key
//	memoization caches: two loads of the same file are distinct cache
//	universes, which is exactly right because the caller may have edited the
//	file in between.
//
// Errors
//
//   - ErrEmpty  — constructing from no usable entries.
//   - ErrFormat — data that is neither TSV word counts nor a word list.
package vocab
