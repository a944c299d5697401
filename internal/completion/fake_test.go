package completion

import (
	"context"

	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/glyph"
	"github.com/dshills/asyncomplete/internal/richtext"
	"github.com/dshills/asyncomplete/internal/text"
)

// fakeEngine is a scriptable language engine for tests.
type fakeEngine struct {
	shouldTrigger  bool
	rules          engine.Rules
	kinds          []engine.FilterKind
	list           *engine.CandidateList
	completionsErr error
	descParts      []richtext.TaggedPart
	descErr        error

	// onCompletions runs inside Completions, before it returns.
	onCompletions func()

	completionCalls  int
	descriptionCalls int
}

func (f *fakeEngine) ShouldTrigger(*text.Snapshot, text.ByteOffset, engine.Trigger) bool {
	return f.shouldTrigger
}

func (f *fakeEngine) Completions(ctx context.Context, snap *text.Snapshot, pos text.ByteOffset, trig engine.Trigger) (*engine.CandidateList, error) {
	f.completionCalls++
	if f.onCompletions != nil {
		f.onCompletions()
	}
	if f.completionsErr != nil {
		return nil, f.completionsErr
	}
	return f.list, nil
}

func (f *fakeEngine) Description(ctx context.Context, snap *text.Snapshot, item *engine.CandidateItem) ([]richtext.TaggedPart, error) {
	f.descriptionCalls++
	if f.descErr != nil {
		return nil, f.descErr
	}
	if f.descParts != nil {
		return f.descParts, nil
	}
	return []richtext.TaggedPart{{Tag: "text", Text: item.DisplayText}}, nil
}

func (f *fakeEngine) DefaultSpan(_ *text.Snapshot, pos text.ByteOffset) text.Span {
	return text.NewSpan(pos, pos)
}

func (f *fakeEngine) Rules() engine.Rules {
	return f.rules
}

func (f *fakeEngine) FilterKinds() []engine.FilterKind {
	return f.kinds
}

// tagFilter builds a filter kind matching candidates carrying the tag.
func tagFilter(name string, key rune, tag glyph.Tag) engine.FilterKind {
	return engine.FilterKind{
		DisplayText: name,
		AccessKey:   key,
		Tag:         tag,
		Matches: func(c *engine.CandidateItem) bool {
			for _, t := range c.Tags {
				if t == tag {
					return true
				}
			}
			return false
		},
	}
}

// newTestSetup wires a service, a document in the "mock" language, and its
// trigger-time snapshot.
func newTestSetup(eng engine.Engine, content string, opts ...Option) (*Service, *document.Document, *text.Snapshot) {
	reg := document.NewRegistry()
	reg.RegisterEngine("mock", eng)
	doc := reg.Open("/test/file.mock", "mock", content)
	return NewService(reg, opts...), doc, doc.Snapshot()
}

// docWithLanguage builds an untracked document in an arbitrary language.
func docWithLanguage(path, languageID string) *document.Document {
	return document.New(path, languageID, text.NewBufferFromString(""))
}

func candidates(names ...string) *engine.CandidateList {
	list := &engine.CandidateList{}
	for _, name := range names {
		list.Items = append(list.Items, &engine.CandidateItem{DisplayText: name})
	}
	return list
}
