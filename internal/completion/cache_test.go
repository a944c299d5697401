package completion

import (
	"testing"
	"time"

	"github.com/dshills/asyncomplete/internal/engine"
)

func TestCacheKeyedByPositionAndTrigger(t *testing.T) {
	cache := NewCache(16, time.Minute)
	doc := snippetDoc("abc")
	snap := doc.Snapshot()
	res := &Result{}

	trig := engine.Trigger{Kind: engine.TriggerInsertion, Character: 'c'}
	cache.put(doc, snap, 3, trig, res, nil)

	if entry, ok := cache.get(doc, snap, 3, trig); !ok || entry.result != res {
		t.Fatal("exact key should hit")
	}
	if _, ok := cache.get(doc, snap, 2, trig); ok {
		t.Error("different position should miss")
	}
	if _, ok := cache.get(doc, snap, 3, engine.Trigger{Kind: engine.TriggerInvoke}); ok {
		t.Error("different trigger kind should miss")
	}
	if _, ok := cache.get(doc, snap, 3, engine.Trigger{Kind: engine.TriggerInsertion, Character: 'd'}); ok {
		t.Error("different trigger character should miss")
	}
}

func TestCacheInvalidatedByRevision(t *testing.T) {
	cache := NewCache(16, time.Minute)
	doc := snippetDoc("abc")
	snap := doc.Snapshot()
	trig := engine.Trigger{Kind: engine.TriggerInvoke}

	cache.put(doc, snap, 3, trig, &Result{}, nil)

	if err := doc.Buffer().Insert(3, "d"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if _, ok := cache.get(doc, doc.Snapshot(), 3, trig); ok {
		t.Error("entry for an older revision should miss after an edit")
	}
	// The old snapshot still hits; its revision is part of the key.
	if _, ok := cache.get(doc, snap, 3, trig); !ok {
		t.Error("old-revision entry should remain addressable via its snapshot")
	}
}

func TestCacheCarriesExcludedCharacters(t *testing.T) {
	cache := NewCache(16, time.Minute)
	doc := snippetDoc("a")
	snap := doc.Snapshot()
	trig := engine.Trigger{Kind: engine.TriggerInvoke}

	cache.put(doc, snap, 1, trig, &Result{}, []rune{'{', ';'})

	entry, ok := cache.get(doc, snap, 1, trig)
	if !ok {
		t.Fatal("expected hit")
	}
	if string(entry.excluded) != "{;" {
		t.Errorf("excluded = %q, want %q", string(entry.excluded), "{;")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	cache := NewCache(16, 10*time.Millisecond)
	doc := snippetDoc("a")
	snap := doc.Snapshot()
	trig := engine.Trigger{Kind: engine.TriggerInvoke}

	cache.put(doc, snap, 1, trig, &Result{}, nil)
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.get(doc, snap, 1, trig); ok {
		t.Error("entry should expire after its TTL")
	}
}

func TestCachePurge(t *testing.T) {
	cache := NewCache(16, time.Minute)
	doc := snippetDoc("a")
	snap := doc.Snapshot()

	cache.put(doc, snap, 0, engine.Trigger{Kind: engine.TriggerInvoke}, &Result{}, nil)
	cache.put(doc, snap, 1, engine.Trigger{Kind: engine.TriggerInvoke}, &Result{}, nil)
	if cache.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cache.Len())
	}

	cache.Purge()
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after purge, want 0", cache.Len())
	}
}

func TestCacheDefaults(t *testing.T) {
	// Zero values fall back to usable defaults rather than a degenerate
	// cache.
	cache := NewCache(0, 0)
	doc := snippetDoc("a")
	snap := doc.Snapshot()
	trig := engine.Trigger{Kind: engine.TriggerInvoke}

	cache.put(doc, snap, 0, trig, &Result{}, nil)
	if _, ok := cache.get(doc, snap, 0, trig); !ok {
		t.Error("default-sized cache should accept and serve entries")
	}
}
