package wordlist

import (
	"context"
	"testing"

	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/glyph"
	"github.com/dshills/asyncomplete/internal/text"
)

func testVocabulary() []Word {
	return []Word{
		{Text: "func", Tag: glyph.TagKeyword, Doc: "declares a function", Insert: "func "},
		{Text: "fmt", Tag: glyph.TagModule, Doc: "formatted I/O"},
		{Text: "for", Tag: glyph.TagKeyword},
		{Text: "variable", Tag: glyph.TagVariable},
	}
}

func snapAt(content string) *text.Snapshot {
	return text.NewBufferFromString(content).Snapshot()
}

func TestShouldTrigger(t *testing.T) {
	eng := New(testVocabulary(), WithMinimumPrefix(2))

	tests := []struct {
		name    string
		content string
		pos     text.ByteOffset
		trigger engine.Trigger
		want    bool
	}{
		{
			name:    "enough prefix typed",
			content: "fo",
			pos:     2,
			trigger: engine.Trigger{Kind: engine.TriggerInsertion, Character: 'o'},
			want:    true,
		},
		{
			name:    "prefix too short",
			content: "f",
			pos:     1,
			trigger: engine.Trigger{Kind: engine.TriggerInsertion, Character: 'f'},
			want:    false,
		},
		{
			name:    "punctuation does not trigger",
			content: "fo.",
			pos:     3,
			trigger: engine.Trigger{Kind: engine.TriggerInsertion, Character: '.'},
			want:    false,
		},
		{
			name:    "deletion does not trigger",
			content: "fo",
			pos:     2,
			trigger: engine.Trigger{Kind: engine.TriggerDeletion, Character: 'r'},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eng.ShouldTrigger(snapAt(tt.content), tt.pos, tt.trigger); got != tt.want {
				t.Errorf("ShouldTrigger() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletionsPrefixMatch(t *testing.T) {
	eng := New(testVocabulary())
	snap := snapAt("x := f")

	list, err := eng.Completions(context.Background(), snap, 6, engine.Trigger{Kind: engine.TriggerInsertion, Character: 'f'})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if list == nil {
		t.Fatal("expected candidates for prefix \"f\"")
	}

	want := []string{"fmt", "for", "func"}
	if len(list.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(list.Items), len(want))
	}
	for i, name := range want {
		if list.Items[i].DisplayText != name {
			t.Errorf("item %d = %q, want %q", i, list.Items[i].DisplayText, name)
		}
	}
}

func TestCompletionsNoMatchIsNil(t *testing.T) {
	eng := New(testVocabulary())
	snap := snapAt("zzz")

	list, err := eng.Completions(context.Background(), snap, 3, engine.Trigger{Kind: engine.TriggerInsertion, Character: 'z'})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if list != nil {
		t.Errorf("no-match result = %+v, want nil", list)
	}
}

func TestCompletionsInvokeWithoutPrefix(t *testing.T) {
	eng := New(testVocabulary())
	snap := snapAt("")

	list, err := eng.Completions(context.Background(), snap, 0, engine.Trigger{Kind: engine.TriggerInvoke})
	if err != nil {
		t.Fatalf("Completions() error = %v", err)
	}
	if list == nil || len(list.Items) != len(testVocabulary()) {
		t.Error("explicit invocation should offer the whole vocabulary")
	}
}

func TestCompletionsCancelled(t *testing.T) {
	eng := New(testVocabulary())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := eng.Completions(ctx, snapAt("f"), 1, engine.Trigger{Kind: engine.TriggerInvoke}); err == nil {
		t.Error("cancelled context should abort completion")
	}
}

func TestCandidateShape(t *testing.T) {
	eng := New(testVocabulary())
	snap := snapAt("fun")

	list, err := eng.Completions(context.Background(), snap, 3, engine.Trigger{Kind: engine.TriggerInsertion, Character: 'n'})
	if err != nil || list == nil || len(list.Items) != 1 {
		t.Fatalf("Completions() = %v, %v", list, err)
	}

	item := list.Items[0]
	if item.DisplayText != "func" {
		t.Fatalf("item = %q", item.DisplayText)
	}
	if override, ok := item.InsertionOverride(); !ok || override != "func " {
		t.Errorf("insertion override = %q, %v", override, ok)
	}
	if len(item.Tags) != 1 || item.Tags[0] != glyph.TagKeyword {
		t.Errorf("tags = %v", item.Tags)
	}
	if len(item.CommitRules) != 1 || item.CommitRules[0].Kind != engine.CommitAdd {
		t.Errorf("keyword should carry a commit-add rule, got %v", item.CommitRules)
	}
}

func TestDescription(t *testing.T) {
	eng := New(testVocabulary())
	snap := snapAt("fmt")

	parts, err := eng.Description(context.Background(), snap, &engine.CandidateItem{DisplayText: "fmt"})
	if err != nil {
		t.Fatalf("Description() error = %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}
	if parts[0].Tag != "module" || parts[0].Text != "fmt" {
		t.Errorf("head part = %+v", parts[0])
	}
	if parts[2].Text != "formatted I/O" {
		t.Errorf("doc part = %+v", parts[2])
	}
}

func TestDescriptionUnknownWord(t *testing.T) {
	eng := New(testVocabulary())
	parts, err := eng.Description(context.Background(), snapAt(""), &engine.CandidateItem{DisplayText: "nope"})
	if err != nil || parts != nil {
		t.Errorf("Description(unknown) = %v, %v; want nil, nil", parts, err)
	}
}

func TestDefaultSpan(t *testing.T) {
	eng := New(testVocabulary())

	tests := []struct {
		name    string
		content string
		pos     text.ByteOffset
		start   text.ByteOffset
	}{
		{"identifier under caret", "x := fun", 8, 5},
		{"caret after space", "x := ", 5, 5},
		{"buffer start", "fun", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := eng.DefaultSpan(snapAt(tt.content), tt.pos)
			if span.Start != tt.start || span.End != tt.pos {
				t.Errorf("DefaultSpan() = [%d,%d), want [%d,%d)", span.Start, span.End, tt.start, tt.pos)
			}
		})
	}
}

func TestFilterKindsFromVocabulary(t *testing.T) {
	eng := New(testVocabulary())
	kinds := eng.FilterKinds()

	// keyword, variable, module in tag order.
	want := []string{"Keywords", "Variables", "Modules"}
	if len(kinds) != len(want) {
		t.Fatalf("got %d kinds, want %d", len(kinds), len(want))
	}
	for i, name := range want {
		if kinds[i].DisplayText != name {
			t.Errorf("kind %d = %q, want %q", i, kinds[i].DisplayText, name)
		}
	}

	if !kinds[0].Matches(&engine.CandidateItem{Tags: []glyph.Tag{glyph.TagKeyword}}) {
		t.Error("keyword filter should match keyword candidates")
	}
	if kinds[0].Matches(&engine.CandidateItem{Tags: []glyph.Tag{glyph.TagModule}}) {
		t.Error("keyword filter should not match module candidates")
	}
}
