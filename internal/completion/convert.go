package completion

import (
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/glyph"
)

// Convert maps one language-domain candidate into a presentation item.
//
// The icon comes from the candidate's first recognized glyph tag. The
// insert text is the candidate's explicit override when present, else its
// display text. Sort and filter text are copied verbatim. Filters are
// resolved through the shared per-list cache so identical filters share one
// instance. Pure apart from cache lookups.
func Convert(cand *engine.CandidateItem, kinds []engine.FilterKind, cache *FilterCache) *PresentationItem {
	insert, ok := cand.InsertionOverride()
	if !ok {
		insert = cand.DisplayText
	}

	item := &PresentationItem{
		DisplayText: cand.DisplayText,
		Icon:        glyph.ForTags(cand.Tags),
		Filters:     FiltersFor(cand, kinds, cache),
		InsertText:  insert,
		SortText:    cand.SortText,
		FilterText:  cand.FilterText,
		candidate:   cand,
	}

	if cand.PlatformRestricted {
		item.AttributeIcons = []glyph.Icon{glyph.IconWarning}
	}

	return item
}
