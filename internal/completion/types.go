package completion

import (
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/glyph"
	"github.com/dshills/asyncomplete/internal/text"
)

// TriggerReason classifies the raw editor event that may start completion.
type TriggerReason uint8

const (
	// ReasonInvoke is an explicit completion request.
	ReasonInvoke TriggerReason = iota

	// ReasonInvokeAndCommitIfUnique is an explicit request that commits
	// immediately when exactly one candidate matches.
	ReasonInvokeAndCommitIfUnique

	// ReasonInsertion is a typed character.
	ReasonInsertion

	// ReasonDeletion is a deleted character.
	ReasonDeletion

	// ReasonOther is any trigger the pipeline does not understand.
	ReasonOther
)

// String returns the reason name.
func (r TriggerReason) String() string {
	switch r {
	case ReasonInvoke:
		return "invoke"
	case ReasonInvokeAndCommitIfUnique:
		return "invoke-and-commit-if-unique"
	case ReasonInsertion:
		return "insertion"
	case ReasonDeletion:
		return "deletion"
	default:
		return "other"
	}
}

// Trigger is the raw editor trigger event, produced once per UI event.
// Character is meaningful for insertion and deletion reasons.
type Trigger struct {
	Reason    TriggerReason
	Character rune
}

// StartData is the result of trigger classification. When Participating is
// false the remaining fields are zero and completion is not offered.
type StartData struct {
	Participating bool

	// ApplicableSpan is the text range completion applies to.
	ApplicableSpan text.Span

	// Trigger is the normalized trigger to pass to Compute.
	Trigger engine.Trigger
}

// SelectionHint tells the editor how to initially select in the completion
// list.
type SelectionHint uint8

const (
	// RegularSelection fully selects the first item.
	RegularSelection SelectionHint = iota

	// SoftSelection highlights without committing on Enter, used when a
	// suggestion-mode item is present.
	SoftSelection
)

// Filter is a togglable completion-list badge ("show only methods").
// Filters are structurally immutable; identical filters within one
// candidate list are the same instance so the editor can group and toggle
// them by identity.
type Filter struct {
	DisplayText string
	AccessKey   rune
	Icon        glyph.Icon
}

// FilterCache shares Filter instances across the candidates of exactly one
// candidate-list computation. It is discarded with the computation and
// never reused across lists.
type FilterCache struct {
	filters map[string]*Filter
}

// NewFilterCache creates an empty cache for one candidate-list computation.
func NewFilterCache() *FilterCache {
	return &FilterCache{filters: make(map[string]*Filter)}
}

// Lookup returns the shared Filter for a filter kind, constructing it on
// first use.
func (c *FilterCache) Lookup(kind engine.FilterKind) *Filter {
	if f, ok := c.filters[kind.DisplayText]; ok {
		return f
	}
	f := &Filter{
		DisplayText: kind.DisplayText,
		AccessKey:   kind.AccessKey,
		Icon:        glyph.ForTag(kind.Tag),
	}
	c.filters[kind.DisplayText] = f
	return f
}

// Len returns the number of distinct filters constructed so far.
func (c *FilterCache) Len() int {
	return len(c.filters)
}

// PresentationItem is the UI-ready form of one candidate. The editor owns
// it after Compute returns.
type PresentationItem struct {
	DisplayText string
	Icon        glyph.Icon
	Filters     []*Filter
	InsertText  string
	SortText    string
	FilterText  string

	// Suffix is reserved for future use and always empty.
	Suffix string

	// AttributeIcons decorate the item, currently only the
	// restricted-platform warning.
	AttributeIcons []glyph.Icon

	// Back-references for description resolution. Nil on items not
	// produced by this package.
	candidate *engine.CandidateItem
	snapshot  *text.Snapshot
}

// Candidate returns the originating language-domain candidate, or nil for
// externally constructed items.
func (p *PresentationItem) Candidate() *engine.CandidateItem {
	return p.candidate
}

// Snapshot returns the snapshot the item was computed against, or nil for
// externally constructed items.
func (p *PresentationItem) Snapshot() *text.Snapshot {
	return p.snapshot
}

// Result is the outcome of one candidate computation.
type Result struct {
	// Items in the engine's returned order, which is the display order.
	Items []*PresentationItem

	// ApplicableSpan is the text range the items apply to, carried
	// through from classification for the host UI.
	ApplicableSpan text.Span

	// Suggestion is the suggestion-mode placeholder, or nil.
	Suggestion *engine.SuggestionItem

	// Selection is SoftSelection when a suggestion-mode item exists.
	Selection SelectionHint
}

// IsEmpty returns true when the result offers nothing.
func (r *Result) IsEmpty() bool {
	return len(r.Items) == 0 && r.Suggestion == nil
}
