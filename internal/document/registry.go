package document

import (
	"sync"

	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
)

// Registry routes documents to language engines by language ID.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]engine.Engine
	docs    map[string]*Document
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]engine.Engine),
		docs:    make(map[string]*Document),
	}
}

// RegisterEngine registers the engine for a language ID, replacing any
// previous registration.
func (r *Registry) RegisterEngine(languageID string, eng engine.Engine) {
	r.mu.Lock()
	r.engines[languageID] = eng
	r.mu.Unlock()
}

// Open creates and tracks a document for the given path.
func (r *Registry) Open(path, languageID, content string) *Document {
	doc := New(path, languageID, text.NewBufferFromString(content))
	r.mu.Lock()
	r.docs[path] = doc
	r.mu.Unlock()
	return doc
}

// Close stops tracking the document at path.
func (r *Registry) Close(path string) {
	r.mu.Lock()
	delete(r.docs, path)
	r.mu.Unlock()
}

// Lookup returns the tracked document for a path.
func (r *Registry) Lookup(path string) (*Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[path]
	return doc, ok
}

// Resolve returns the engine for a document's language. The false return is
// the normal "completion does not participate here" outcome.
func (r *Registry) Resolve(doc *Document) (engine.Engine, bool) {
	if doc == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	eng, ok := r.engines[doc.LanguageID()]
	return eng, ok
}

// Languages returns the registered language IDs.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.engines))
	for id := range r.engines {
		langs = append(langs, id)
	}
	return langs
}
