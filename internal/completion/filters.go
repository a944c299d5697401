package completion

import "github.com/dshills/asyncomplete/internal/engine"

// FiltersFor returns the filters from the engine's catalog that apply to a
// candidate. Matching filters are resolved through the cache, so within one
// candidate-list computation every candidate matched by the same kind
// references the identical Filter instance.
func FiltersFor(cand *engine.CandidateItem, kinds []engine.FilterKind, cache *FilterCache) []*Filter {
	var filters []*Filter
	for _, kind := range kinds {
		if kind.Matches == nil || !kind.Matches(cand) {
			continue
		}
		filters = append(filters, cache.Lookup(kind))
	}
	return filters
}
