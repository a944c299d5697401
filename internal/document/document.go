// Package document tracks open documents and routes them to language
// engines.
//
// A Document pairs a buffer with its language identity and a small
// per-buffer property map. The Registry maps language IDs to engines and
// resolves the document/engine pair for completion requests. Resolution
// failure is a normal outcome, not an error: buffers change asynchronously
// and a position may stop resolving between trigger and computation.
package document

import (
	"sync"

	"github.com/dshills/asyncomplete/internal/text"
)

// PropertyKey identifies a per-buffer property.
type PropertyKey string

// PropertyPotentialCommitCharacters holds the []rune of characters that may
// commit a completion in this buffer's language. Overwritten, never
// appended, on each trigger classification.
const PropertyPotentialCommitCharacters PropertyKey = "potential-commit-characters"

// Document is one open editor buffer with its language identity.
//
// Document is safe for concurrent use.
type Document struct {
	mu    sync.RWMutex
	props map[PropertyKey]any

	path       string
	languageID string
	buffer     *text.Buffer
}

// New creates a document over the given buffer.
func New(path, languageID string, buffer *text.Buffer) *Document {
	return &Document{
		path:       path,
		languageID: languageID,
		buffer:     buffer,
		props:      make(map[PropertyKey]any),
	}
}

// Path returns the document's file path.
func (d *Document) Path() string {
	return d.path
}

// LanguageID returns the document's language identifier.
func (d *Document) LanguageID() string {
	return d.languageID
}

// Buffer returns the live buffer.
func (d *Document) Buffer() *text.Buffer {
	return d.buffer
}

// Snapshot returns an immutable view of the buffer's current state.
func (d *Document) Snapshot() *text.Snapshot {
	return d.buffer.Snapshot()
}

// SetProperty sets a per-buffer property, replacing any previous value.
func (d *Document) SetProperty(key PropertyKey, value any) {
	d.mu.Lock()
	d.props[key] = value
	d.mu.Unlock()
}

// Property returns a per-buffer property value.
func (d *Document) Property(key PropertyKey) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.props[key]
	return v, ok
}
