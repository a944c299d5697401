package completion

import (
	"github.com/dshills/asyncomplete/internal/document"
)

// Service orchestrates completion sessions over a document registry.
//
// Service is safe for concurrent use.
type Service struct {
	registry *document.Registry
	cache    *Cache
}

// Option configures the service.
type Option func(*Service)

// WithCache enables position-keyed reuse of computed candidate lists.
func WithCache(c *Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// NewService creates a completion service over the given registry.
// Panics if registry is nil.
func NewService(registry *document.Registry, opts ...Option) *Service {
	if registry == nil {
		panic(ErrNoRegistry)
	}

	s := &Service{registry: registry}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
