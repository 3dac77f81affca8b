package filter

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/typetools/glyphsift/glyphs"
	"github.com/typetools/glyphsift/vocab"
)

// DefaultCacheSize bounds the memoization cache when the caller passes a
// non-positive size to NewCache.
const DefaultCacheSize = 512

// Cache memoizes Filter results. Generation draws the same filtered
// collection hundreds of times per run (every word of a paragraph re-filters
// with identical parameters), so hits dominate heavily.
//
// Only successful results are cached: failures carry parameter-specific
// wrapped messages and are cheap to recompute. Cached collections share one
// backing slice; callers must treat them as read-only.
//
// Cache is safe for concurrent use.
type Cache struct {
	lru *lru.Cache[string, Collection]
}

// NewCache returns a cache bounded to size entries (DefaultCacheSize when
// size < 1).
func NewCache(size int) *Cache {
	if size < 1 {
		size = DefaultCacheSize
	}
	// lru.New errors only on size < 1, which is excluded above.
	c, _ := lru.New[string, Collection](size)

	return &Cache{lru: c}
}

// Filter is the memoized form of the package-level Filter.
func (ca *Cache) Filter(v *vocab.Vocab, g glyphs.Set, c Case, cr Criteria, minResults int) (Collection, error) {
	if ca == nil || ca.lru == nil || v == nil {
		return Filter(v, g, c, cr, minResults)
	}
	// Validate before the lookup: a malformed Criteria must report
	// ErrValidation whether or not a well-formed sibling is already cached.
	if err := cr.Validate(); err != nil {
		return nil, err
	}
	if minResults < 1 {
		minResults = 1
	}

	key := cacheKey(v, g, c, cr, minResults)
	if col, ok := ca.lru.Get(key); ok {
		return col, nil
	}

	col, err := Filter(v, g, c, cr, minResults)
	if err != nil {
		return nil, err
	}
	ca.lru.Add(key, col)

	return col, nil
}

// Purge drops every cached collection.
func (ca *Cache) Purge() {
	if ca != nil && ca.lru != nil {
		ca.lru.Purge()
	}
}

// Len reports the number of cached collections.
func (ca *Cache) Len() int {
	if ca == nil || ca.lru == nil {
		return 0
	}

	return ca.lru.Len()
}

// cacheKey builds the lookup key from every input that affects the result.
// The vocabulary contributes its identity, not its contents; \x1f separates
// fields that may themselves contain commas.
func cacheKey(v *vocab.Vocab, g glyphs.Set, c Case, cr Criteria, minResults int) string {
	parts := []string{
		v.ID(),
		g.Key(),
		c.String(),
		cr.Key(),
		strconv.Itoa(minResults),
	}

	return strings.Join(parts, "\x1f")
}
