package engine

import (
	"context"

	"github.com/dshills/asyncomplete/internal/richtext"
	"github.com/dshills/asyncomplete/internal/text"
)

// SnippetPolicy controls whether an engine wants the identifier-"?"-Tab
// sequence rewritten into a snippet trigger.
type SnippetPolicy uint8

const (
	// SnippetNone disables the snippet trigger rewrite.
	SnippetNone SnippetPolicy = iota

	// SnippetIdentifierQuestionTab enables the snippet entry after an
	// identifier followed by "?" and Tab.
	SnippetIdentifierQuestionTab
)

// Rules are an engine's static completion rules.
type Rules struct {
	// SnippetTrigger is the engine's snippet rewrite policy.
	SnippetTrigger SnippetPolicy

	// PotentialCommitCharacters are the characters that may commit a
	// selected item in this engine's language. Published as a per-buffer
	// property at classification time.
	PotentialCommitCharacters []rune
}

// Engine is a language-specific completion engine.
//
// Completions and Description are the slow calls; they must observe ctx and
// are always invoked off the caller's synchronous path. The remaining
// methods are cheap and may be called on the UI thread.
type Engine interface {
	// ShouldTrigger reports whether the typed/deleted character at the
	// position should start completion. Not consulted for explicit
	// invocation.
	ShouldTrigger(snap *text.Snapshot, pos text.ByteOffset, trigger Trigger) bool

	// Completions returns the candidate list for the position and trigger.
	// A nil list is a valid "nothing to offer" result, not an error.
	Completions(ctx context.Context, snap *text.Snapshot, pos text.ByteOffset, trigger Trigger) (*CandidateList, error)

	// Description returns the rich description of a candidate as tagged
	// text parts, computed against the given snapshot.
	Description(ctx context.Context, snap *text.Snapshot, item *CandidateItem) ([]richtext.TaggedPart, error)

	// DefaultSpan returns the text range completion applies to at the
	// position, typically the identifier under the caret.
	DefaultSpan(snap *text.Snapshot, pos text.ByteOffset) text.Span

	// Rules returns the engine's static completion rules.
	Rules() Rules

	// FilterKinds returns the engine's filter catalog.
	FilterKinds() []FilterKind
}
