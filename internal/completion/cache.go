package completion

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
)

// cacheKey identifies a computed result by document position, buffer
// revision, and trigger. The revision makes any edit a natural
// invalidation.
type cacheKey struct {
	path     string
	pos      text.ByteOffset
	revision text.RevisionID
	kind     engine.TriggerKind
	char     rune
}

// cacheEntry pairs a result with the session values republished on a hit.
type cacheEntry struct {
	result   *Result
	excluded []rune
}

// Cache reuses computed candidate lists when completion is re-triggered at
// the same position of an unchanged buffer, typically when the user types
// while the popup is open and the host re-invokes.
//
// Entries expire after a TTL and the least recently used entries are
// evicted beyond the size bound. Cache is safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[cacheKey, *cacheEntry]
}

// NewCache creates a cache holding up to size entries for at most ttl.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 64
	}
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Cache{lru: expirable.NewLRU[cacheKey, *cacheEntry](size, nil, ttl)}
}

func (c *Cache) get(doc *document.Document, snap *text.Snapshot, pos text.ByteOffset, trig engine.Trigger) (*cacheEntry, bool) {
	return c.lru.Get(c.key(doc, snap, pos, trig))
}

func (c *Cache) put(doc *document.Document, snap *text.Snapshot, pos text.ByteOffset, trig engine.Trigger, res *Result, excluded []rune) {
	c.lru.Add(c.key(doc, snap, pos, trig), &cacheEntry{result: res, excluded: excluded})
}

func (c *Cache) key(doc *document.Document, snap *text.Snapshot, pos text.ByteOffset, trig engine.Trigger) cacheKey {
	return cacheKey{
		path:     doc.Path(),
		pos:      pos,
		revision: snap.Revision(),
		kind:     trig.Kind,
		char:     trig.Character,
	}
}

// Purge drops all cached results.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
