package glyphsift

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/typetools/glyphsift/filter"
	"github.com/typetools/glyphsift/glyphs"
	"github.com/typetools/glyphsift/sample"
	"github.com/typetools/glyphsift/vocab"
)

// Sentinel errors for generator configuration. Test with errors.Is.
var (
	// ErrVocabNotFound indicates a vocabulary name with no registration.
	ErrVocabNotFound = errors.New("glyphsift: vocabulary not registered")

	// ErrNoDefaultVocab indicates an operation needing a vocabulary on a
	// generator that has none registered.
	ErrNoDefaultVocab = errors.New("glyphsift: no default vocabulary")

	// ErrOptions indicates out-of-range generation options.
	ErrOptions = errors.New("glyphsift: invalid options")
)

// Generator is the proofing-text orchestrator: a glyph set, a registry of
// vocabularies, one RNG stream and a filter memoization cache.
//
// A Generator is deliberately single-threaded: the RNG is mutable shared
// state, and reproducibility depends on a strict draw order. Give each
// concurrent proofing session its own Generator (DeriveRNG in package sample
// produces decorrelated seeds for that).
type Generator struct {
	glyphs       glyphs.Set
	glyphString  string
	vocabs       map[string]*vocab.Vocab
	defaultVocab string
	rng          *rand.Rand
	cache        *filter.Cache
	log          *slog.Logger
	raiseErrors  bool
	noEmbedded   bool
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithGlyphs sets the default glyph set from a string of available
// characters. Empty means unconstrained.
func WithGlyphs(s string) Option {
	return func(g *Generator) {
		g.glyphs = glyphs.New(s)
		g.glyphString = s
	}
}

// WithVocab registers a vocabulary under name. The first registered
// vocabulary becomes the default.
func WithVocab(name string, v *vocab.Vocab) Option {
	return func(g *Generator) {
		g.addVocab(name, v)
	}
}

// WithDefaultVocab selects which registered vocabulary operations use when
// no per-call name is given.
func WithDefaultVocab(name string) Option {
	return func(g *Generator) { g.defaultVocab = name }
}

// WithSeed seeds the generator's RNG. Zero selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = sample.RNGFromSeed(seed) }
}

// WithRaiseErrors makes no-match and index-range conditions propagate as
// errors instead of being logged and substituted with empty output.
func WithRaiseErrors() Option {
	return func(g *Generator) { g.raiseErrors = true }
}

// WithLogger sets the logger used for swallowed errors in gentle mode.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithCacheSize bounds the filter memoization cache (entries, not bytes).
func WithCacheSize(n int) Option {
	return func(g *Generator) { g.cache = filter.NewCache(n) }
}

// WithoutDefaultVocab suppresses the automatic registration of the built-in
// English vocabulary on a Generator constructed with no vocabularies.
func WithoutDefaultVocab() Option {
	return func(g *Generator) { g.noEmbedded = true }
}

// New constructs a Generator. Without options it is unconstrained, unseeded
// (fixed default RNG stream) and carries the built-in English vocabulary;
// registering any vocabulary, or WithoutDefaultVocab, suppresses the
// built-in one.
func New(opts ...Option) *Generator {
	g := &Generator{
		vocabs: make(map[string]*vocab.Vocab),
		rng:    sample.RNGFromSeed(0),
		cache:  filter.NewCache(0),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.vocabs) == 0 && !g.noEmbedded {
		g.addVocab("en", DefaultVocab())
	}

	return g
}

// Reseed resets the RNG stream. Zero selects the fixed default stream.
func (g *Generator) Reseed(seed int64) {
	g.rng = sample.RNGFromSeed(seed)
}

// SetGlyphs replaces the default glyph set. Empty means unconstrained.
func (g *Generator) SetGlyphs(s string) {
	g.glyphs = glyphs.New(s)
	g.glyphString = s
}

// Glyphs returns the default glyph string ("" when unconstrained).
func (g *Generator) Glyphs() string { return g.glyphString }

// AddVocab registers a vocabulary under name, replacing any previous
// registration. The first registered vocabulary becomes the default.
func (g *Generator) AddVocab(name string, v *vocab.Vocab) {
	g.addVocab(name, v)
}

func (g *Generator) addVocab(name string, v *vocab.Vocab) {
	if g.vocabs == nil {
		g.vocabs = make(map[string]*vocab.Vocab)
	}
	g.vocabs[name] = v
	if g.defaultVocab == "" {
		g.defaultVocab = name
	}
}

// SetDefaultVocab selects the vocabulary used when operations name none.
func (g *Generator) SetDefaultVocab(name string) error {
	if _, ok := g.vocabs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrVocabNotFound, name)
	}
	g.defaultVocab = name

	return nil
}

// GetVocab returns the vocabulary registered under name, or the default
// vocabulary when name is empty.
func (g *Generator) GetVocab(name string) (*vocab.Vocab, error) {
	if name == "" {
		name = g.defaultVocab
		if name == "" {
			return nil, ErrNoDefaultVocab
		}
	}
	v, ok := g.vocabs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVocabNotFound, name)
	}

	return v, nil
}

// Vocabs lists the registered vocabulary names, sorted.
func (g *Generator) Vocabs() []string {
	names := make([]string, 0, len(g.vocabs))
	for name := range g.vocabs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// glyphsFor resolves the per-call glyph override against the default set.
func (g *Generator) glyphsFor(override string) glyphs.Set {
	if override != "" {
		return glyphs.New(override)
	}

	return g.glyphs
}

// reseedIfSet applies per-operation seeding: non-zero reseeds, zero carries
// the RNG state over from the previous call.
func (g *Generator) reseedIfSet(seed int64) {
	if seed != 0 {
		g.rng = sample.RNGFromSeed(seed)
	}
}

// gentle implements the propagation policy for recoverable draw failures.
// No-match and index-range conditions are natural "ran out of words" states:
// unless the generator was built WithRaiseErrors, they are logged at warning
// level and replaced with empty output so that sentence assembly degrades to
// shorter text instead of failing the document. Configuration and validation
// errors always propagate.
func (g *Generator) gentle(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if g.raiseErrors {
		return "", err
	}
	if errors.Is(err, filter.ErrNoMatch) ||
		errors.Is(err, sample.ErrIndexRange) ||
		errors.Is(err, sample.ErrEmptyCollection) {
		g.logger().Warn("draw failed, substituting empty output", "err", err)

		return "", nil
	}

	return "", err
}

func (g *Generator) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}

	return slog.Default()
}
