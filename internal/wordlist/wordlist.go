// Package wordlist implements a static word-list completion engine.
//
// The engine completes from a fixed vocabulary by caret-prefix match. It is
// the built-in engine of the demo host and doubles as a minimal reference
// for implementing the engine interface.
package wordlist

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/glyph"
	"github.com/dshills/asyncomplete/internal/richtext"
	"github.com/dshills/asyncomplete/internal/text"
)

// Word is one vocabulary entry.
type Word struct {
	// Text is the word itself; it is displayed and inserted.
	Text string

	// Tag classifies the word for icons and filters.
	Tag glyph.Tag

	// Doc is an optional one-line description.
	Doc string

	// Insert optionally overrides the inserted text, e.g. "func $0 {}".
	Insert string

	// Restricted marks the word as platform-restricted.
	Restricted bool
}

// Engine completes from a fixed word list.
type Engine struct {
	words   []Word
	rules   engine.Rules
	kinds   []engine.FilterKind
	minimum int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCommitCharacters sets the potential commit characters.
func WithCommitCharacters(chars ...rune) Option {
	return func(e *Engine) {
		e.rules.PotentialCommitCharacters = chars
	}
}

// WithSnippetPolicy sets the snippet trigger policy.
func WithSnippetPolicy(p engine.SnippetPolicy) Option {
	return func(e *Engine) {
		e.rules.SnippetTrigger = p
	}
}

// WithMinimumPrefix sets how many typed runes are required before an
// insertion trigger starts completion. Explicit invocation ignores it.
func WithMinimumPrefix(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minimum = n
		}
	}
}

// New creates an engine over the given vocabulary. Words are sorted once;
// the engine is immutable and safe for concurrent use afterwards.
func New(words []Word, opts ...Option) *Engine {
	e := &Engine{
		words: append([]Word(nil), words...),
		rules: engine.Rules{
			SnippetTrigger:            engine.SnippetIdentifierQuestionTab,
			PotentialCommitCharacters: []rune{'(', '.', ';', ' '},
		},
		minimum: 1,
	}
	for _, opt := range opts {
		opt(e)
	}

	sort.Slice(e.words, func(i, j int) bool { return e.words[i].Text < e.words[j].Text })
	e.kinds = buildFilterKinds(e.words)
	return e
}

// ShouldTrigger starts completion when an identifier rune is typed with
// enough identifier prefix behind it. Deletions never trigger.
func (e *Engine) ShouldTrigger(snap *text.Snapshot, pos text.ByteOffset, trigger engine.Trigger) bool {
	if trigger.Kind != engine.TriggerInsertion {
		return false
	}
	if !isWordRune(trigger.Character) {
		return false
	}
	prefix := prefixAt(snap, pos)
	return utf8.RuneCountInString(prefix) >= e.minimum
}

// Completions returns the words matching the identifier prefix at pos.
func (e *Engine) Completions(ctx context.Context, snap *text.Snapshot, pos text.ByteOffset, trigger engine.Trigger) (*engine.CandidateList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := prefixAt(snap, pos)
	if prefix == "" && trigger.Kind != engine.TriggerInvoke {
		return nil, nil
	}

	list := &engine.CandidateList{}
	for _, w := range e.words {
		if !strings.HasPrefix(w.Text, prefix) {
			continue
		}
		list.Items = append(list.Items, candidate(w))
	}
	if len(list.Items) == 0 {
		return nil, nil
	}
	return list, nil
}

// Description renders a word's doc line as tagged parts.
func (e *Engine) Description(ctx context.Context, snap *text.Snapshot, item *engine.CandidateItem) ([]richtext.TaggedPart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, w := range e.words {
		if w.Text != item.DisplayText {
			continue
		}
		parts := []richtext.TaggedPart{
			{Tag: w.Tag.String(), Text: w.Text},
		}
		if w.Doc != "" {
			parts = append(parts,
				richtext.TaggedPart{Tag: "space", Text: " "},
				richtext.TaggedPart{Tag: "comment", Text: w.Doc},
			)
		}
		return parts, nil
	}
	return nil, nil
}

// DefaultSpan covers the identifier run ending at pos.
func (e *Engine) DefaultSpan(snap *text.Snapshot, pos text.ByteOffset) text.Span {
	start := pos
	for start > 0 {
		r, size := snap.RuneBefore(start)
		if !isWordRune(r) {
			break
		}
		start -= text.ByteOffset(size)
	}
	return text.NewSpan(start, pos)
}

// Rules returns the engine's static rules.
func (e *Engine) Rules() engine.Rules {
	return e.rules
}

// FilterKinds returns one filter per tag present in the vocabulary.
func (e *Engine) FilterKinds() []engine.FilterKind {
	return e.kinds
}

func candidate(w Word) *engine.CandidateItem {
	item := &engine.CandidateItem{
		DisplayText:        w.Text,
		FilterText:         w.Text,
		Tags:               []glyph.Tag{w.Tag},
		PlatformRestricted: w.Restricted,
	}
	if w.Insert != "" {
		item.Properties = map[string]string{engine.PropertyInsertionText: w.Insert}
	}
	if w.Tag == glyph.TagKeyword {
		item.CommitRules = []engine.CommitRule{{Kind: engine.CommitAdd, Characters: []rune{'\t'}}}
	}
	return item
}

// buildFilterKinds derives the filter catalog from the tags the vocabulary
// actually uses, in tag order.
func buildFilterKinds(words []Word) []engine.FilterKind {
	seen := make(map[glyph.Tag]bool)
	for _, w := range words {
		if w.Tag != glyph.TagUnknown {
			seen[w.Tag] = true
		}
	}

	tags := make([]glyph.Tag, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	kinds := make([]engine.FilterKind, 0, len(tags))
	for _, tag := range tags {
		tag := tag
		kinds = append(kinds, engine.FilterKind{
			DisplayText: filterName(tag),
			AccessKey:   firstRune(tag.String()),
			Tag:         tag,
			Matches: func(c *engine.CandidateItem) bool {
				for _, t := range c.Tags {
					if t == tag {
						return true
					}
				}
				return false
			},
		})
	}
	return kinds
}

// prefixAt returns the identifier run ending at pos.
func prefixAt(snap *text.Snapshot, pos text.ByteOffset) string {
	start := pos
	for start > 0 {
		r, size := snap.RuneBefore(start)
		if !isWordRune(r) {
			break
		}
		start -= text.ByteOffset(size)
	}
	return snap.TextRange(start, pos)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// filterName turns a tag into a plural filter label, "keyword" to
// "Keywords".
func filterName(tag glyph.Tag) string {
	name := tag.String()
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:] + "s"
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

var _ engine.Engine = (*Engine)(nil)
