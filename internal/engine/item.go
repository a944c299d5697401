package engine

import "github.com/dshills/asyncomplete/internal/glyph"

// PropertyInsertionText is the reserved candidate property key holding an
// explicit insertion-text override. Candidates without it insert their
// display text.
const PropertyInsertionText = "insertionText"

// CommitRuleKind distinguishes rules that add commit characters from rules
// that remove them.
type CommitRuleKind uint8

const (
	// CommitAdd adds characters to the candidate's commit set.
	CommitAdd CommitRuleKind = iota

	// CommitRemove removes characters from the candidate's commit set.
	CommitRemove
)

// CommitRule is one per-candidate commit-character rule.
type CommitRule struct {
	Kind       CommitRuleKind
	Characters []rune
}

// CandidateItem is one completion suggestion as produced by a language
// engine, before any UI mapping. Candidates are read-only to the pipeline.
type CandidateItem struct {
	// DisplayText is the text shown in the completion list.
	DisplayText string

	// SortText orders the item relative to its siblings. Copied verbatim
	// to the presentation item.
	SortText string

	// FilterText is matched against typed text. Copied verbatim to the
	// presentation item.
	FilterText string

	// Tags classify the candidate for icon and filter resolution, in
	// priority order.
	Tags []glyph.Tag

	// CommitRules customize which characters commit this candidate. A nil
	// slice is a valid state and means no custom rules.
	CommitRules []CommitRule

	// PlatformRestricted marks candidates with restricted platform
	// applicability in the current project context.
	PlatformRestricted bool

	// Properties is the candidate's string property bag. The pipeline
	// reads PropertyInsertionText; engines may stash anything else.
	Properties map[string]string
}

// InsertionOverride returns the explicit insertion-text override and
// whether one is present.
func (c *CandidateItem) InsertionOverride() (string, bool) {
	if c.Properties == nil {
		return "", false
	}
	s, ok := c.Properties[PropertyInsertionText]
	return s, ok
}

// SuggestionItem is the soft-selection placeholder an engine may supply
// instead of, or alongside, real candidates.
type SuggestionItem struct {
	DisplayText string
	Description string
}

// CandidateList is the full result of one engine completion request.
type CandidateList struct {
	// Items in the engine's intended display order.
	Items []*CandidateItem

	// Suggestion is the suggestion-mode placeholder, or nil.
	Suggestion *SuggestionItem
}

// FilterKind is one entry of an engine's filter catalog: a togglable badge
// ("show only methods") with a predicate selecting the candidates it
// applies to.
type FilterKind struct {
	// DisplayText names the filter and doubles as its identity within a
	// candidate list.
	DisplayText string

	// AccessKey is the filter's keyboard shortcut character.
	AccessKey rune

	// Tag resolves the filter's own icon.
	Tag glyph.Tag

	// Matches reports whether the filter applies to a candidate.
	Matches func(*CandidateItem) bool
}
