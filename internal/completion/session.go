package completion

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
)

// Session is the per-session state bag: a typed context object threading
// derived values from classification through computation to description
// resolution and commit. It replaces a stringly-keyed property bag with one
// field per key.
//
// Write discipline: only the component that computed a value writes it, and
// each value is written once per session phase. Compute fully recomputes
// (never appends to) the excluded commit-character set for each new
// candidate list. Session is safe for concurrent use.
type Session struct {
	id  uuid.UUID
	doc *document.Document

	mu sync.Mutex

	// Originating snapshot of the current candidate list.
	snapshot *text.Snapshot

	// Chosen normalized trigger.
	trigger    engine.Trigger
	hasTrigger bool

	// True when the engine supplied a suggestion-mode item.
	suggestionMode bool

	// Excluded commit characters. Nil means "no exclusions", not
	// "unknown".
	excluded []rune
}

// NewSession creates a session for one completion lifetime on a document.
func NewSession(doc *document.Document) *Session {
	return &Session{id: uuid.New(), doc: doc}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Document returns the document this session runs on.
func (s *Session) Document() *document.Document {
	return s.doc
}

// setComputed publishes the computation-phase values in one step.
func (s *Session) setComputed(snap *text.Snapshot, trig engine.Trigger, suggestion bool, excluded []rune) {
	s.mu.Lock()
	s.snapshot = snap
	s.trigger = trig
	s.hasTrigger = true
	s.suggestionMode = suggestion
	s.excluded = excluded
	s.mu.Unlock()
}

// Snapshot returns the originating snapshot, if computation has published
// one.
func (s *Session) Snapshot() (*text.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.snapshot != nil
}

// Trigger returns the normalized trigger, if computation has published one.
func (s *Session) Trigger() (engine.Trigger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trigger, s.hasTrigger
}

// SuggestionMode returns true when the current candidate list carries a
// suggestion-mode item. Selection logic uses this to pick soft selection.
func (s *Session) SuggestionMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestionMode
}

// ExcludedCommitCharacters returns the session's excluded commit-character
// set for the current candidate list. Nil means no exclusions.
func (s *Session) ExcludedCommitCharacters() []rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.excluded
}
