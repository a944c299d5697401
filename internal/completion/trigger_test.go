package completion

import (
	"testing"

	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
)

func TestClassifyExplicitInvoke(t *testing.T) {
	// Explicit invocation proceeds even when the engine's trigger policy
	// says no.
	for _, reason := range []TriggerReason{ReasonInvoke, ReasonInvokeAndCommitIfUnique} {
		eng := &fakeEngine{shouldTrigger: false}
		svc, doc, snap := newTestSetup(eng, "package main")

		start := svc.Classify(doc, Trigger{Reason: reason}, snap, 7)
		if !start.Participating {
			t.Errorf("reason %v: explicit invoke should always participate", reason)
		}
		if start.Trigger.Kind != engine.TriggerInvoke {
			t.Errorf("reason %v: normalized kind = %v, want invoke", reason, start.Trigger.Kind)
		}
	}
}

func TestClassifyInsertionDeclined(t *testing.T) {
	// Insertion trigger, engine declines, snippet policy not matching.
	eng := &fakeEngine{shouldTrigger: false}
	svc, doc, snap := newTestSetup(eng, "abc")

	start := svc.Classify(doc, Trigger{Reason: ReasonInsertion, Character: 'x'}, snap, 3)
	if start.Participating {
		t.Error("declined insertion should not participate")
	}
}

func TestClassifyInsertionAccepted(t *testing.T) {
	eng := &fakeEngine{
		shouldTrigger: true,
		rules:         engine.Rules{PotentialCommitCharacters: []rune{'.', '('}},
	}
	svc, doc, snap := newTestSetup(eng, "abc")

	start := svc.Classify(doc, Trigger{Reason: ReasonInsertion, Character: 'c'}, snap, 3)
	if !start.Participating {
		t.Fatal("accepted insertion should participate")
	}
	if start.Trigger.Kind != engine.TriggerInsertion || start.Trigger.Character != 'c' {
		t.Errorf("normalized trigger = %+v", start.Trigger)
	}

	// Potential commit characters are published per buffer.
	v, ok := doc.Property(document.PropertyPotentialCommitCharacters)
	if !ok {
		t.Fatal("potential commit characters not published")
	}
	if got := v.([]rune); string(got) != ".(" {
		t.Errorf("published commit characters = %q, want %q", string(got), ".(")
	}
}

func TestClassifyCommitCharactersOverwritten(t *testing.T) {
	eng := &fakeEngine{shouldTrigger: true, rules: engine.Rules{PotentialCommitCharacters: []rune{'.'}}}
	svc, doc, snap := newTestSetup(eng, "abc")

	svc.Classify(doc, Trigger{Reason: ReasonInsertion, Character: 'a'}, snap, 1)

	eng.rules.PotentialCommitCharacters = []rune{';'}
	svc.Classify(doc, Trigger{Reason: ReasonInsertion, Character: 'b'}, snap, 2)

	v, _ := doc.Property(document.PropertyPotentialCommitCharacters)
	if got := v.([]rune); string(got) != ";" {
		t.Errorf("property should be overwritten, got %q", string(got))
	}
}

func TestClassifyUnresolvedLanguage(t *testing.T) {
	reg := document.NewRegistry()
	svc := NewService(reg)
	doc := reg.Open("/test/file.txt", "plaintext", "hello")

	start := svc.Classify(doc, Trigger{Reason: ReasonInvoke}, doc.Snapshot(), 0)
	if start.Participating {
		t.Error("unresolvable language should not participate")
	}
}

func TestClassifyUnknownReason(t *testing.T) {
	eng := &fakeEngine{shouldTrigger: true}
	svc, doc, snap := newTestSetup(eng, "abc")

	start := svc.Classify(doc, Trigger{Reason: ReasonOther}, snap, 0)
	if start.Participating {
		t.Error("unconvertible trigger should not participate")
	}
}

func TestClassifySnippetFallback(t *testing.T) {
	// Engine declines the insertion but the snippet rewrite matches: the
	// classification participates and the buffer is edited.
	eng := &fakeEngine{
		shouldTrigger: false,
		rules:         engine.Rules{SnippetTrigger: engine.SnippetIdentifierQuestionTab},
	}
	svc, doc, _ := newTestSetup(eng, "if cond?\t")
	snap := doc.Snapshot()

	start := svc.Classify(doc, Trigger{Reason: ReasonInsertion, Character: '\t'}, snap, snap.Len())
	if !start.Participating {
		t.Fatal("snippet rewrite should participate")
	}
	if got := doc.Buffer().Text(); got != "if cond" {
		t.Errorf("buffer after rewrite = %q, want %q", got, "if cond")
	}
}

func TestNormalizeTrigger(t *testing.T) {
	tests := []struct {
		name string
		raw  Trigger
		want engine.Trigger
		ok   bool
	}{
		{"invoke", Trigger{Reason: ReasonInvoke}, engine.Trigger{Kind: engine.TriggerInvoke}, true},
		{"insertion", Trigger{Reason: ReasonInsertion, Character: '.'}, engine.Trigger{Kind: engine.TriggerInsertion, Character: '.'}, true},
		{"insertion without character", Trigger{Reason: ReasonInsertion}, engine.Trigger{}, false},
		{"deletion", Trigger{Reason: ReasonDeletion, Character: 'x'}, engine.Trigger{Kind: engine.TriggerDeletion, Character: 'x'}, true},
		{"other", Trigger{Reason: ReasonOther}, engine.Trigger{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeTrigger(tt.raw)
			if ok != tt.ok {
				t.Fatalf("normalizeTrigger() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("normalizeTrigger() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
