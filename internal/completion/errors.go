package completion

import "errors"

// Standard errors returned by the completion service.
var (
	// ErrNoSession indicates a nil or document-less session was supplied.
	ErrNoSession = errors.New("completion session required")

	// ErrNoRegistry indicates the service was built without a document
	// registry.
	ErrNoRegistry = errors.New("document registry required")
)
