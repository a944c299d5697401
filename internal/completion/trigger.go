package completion

import (
	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
)

// classifyInput carries the resolved state a trigger predicate examines.
type classifyInput struct {
	eng  engine.Engine
	doc  *document.Document
	raw  Trigger
	norm engine.Trigger
	snap *text.Snapshot
	pos  text.ByteOffset
}

// triggerPredicates is the ordered fallback chain deciding whether a
// classified trigger starts completion. Evaluation stops at the first
// predicate that accepts.
var triggerPredicates = []struct {
	name    string
	accepts func(in classifyInput) bool
}{
	{"explicit-invoke", acceptExplicitInvoke},
	{"engine-policy", acceptEnginePolicy},
	{"snippet-rewrite", acceptSnippetRewrite},
}

// acceptExplicitInvoke accepts explicit invocation unconditionally.
func acceptExplicitInvoke(in classifyInput) bool {
	return in.raw.Reason == ReasonInvoke || in.raw.Reason == ReasonInvokeAndCommitIfUnique
}

// acceptEnginePolicy defers to the engine's trigger policy.
func acceptEnginePolicy(in classifyInput) bool {
	return in.eng.ShouldTrigger(in.snap, in.pos, in.norm)
}

// acceptSnippetRewrite is the sole fallback after the engine declines: the
// identifier-"?"-Tab rewrite. Accepting means completion participates but
// the snippet subsystem takes over item production.
func acceptSnippetRewrite(in classifyInput) bool {
	return TryRewriteAsSnippetTrigger(in.eng, in.doc, in.snap, in.pos)
}

// Classify maps a raw editor trigger into a participation decision and a
// normalized trigger descriptor.
//
// Classify runs synchronously on the editor's UI path and performs no I/O;
// anything slow belongs in Compute. On participation it publishes the
// engine's potential commit characters as a per-buffer property
// (overwriting any previous value) and returns the applicable span computed
// by the engine from the snapshot.
func (s *Service) Classify(doc *document.Document, trig Trigger, snap *text.Snapshot, pos text.ByteOffset) StartData {
	eng, ok := s.registry.Resolve(doc)
	if !ok {
		return StartData{}
	}

	norm, ok := normalizeTrigger(trig)
	if !ok {
		return StartData{}
	}

	in := classifyInput{eng: eng, doc: doc, raw: trig, norm: norm, snap: snap, pos: pos}

	participates := false
	for _, pred := range triggerPredicates {
		if pred.accepts(in) {
			participates = true
			break
		}
	}
	if !participates {
		return StartData{}
	}

	doc.SetProperty(document.PropertyPotentialCommitCharacters, eng.Rules().PotentialCommitCharacters)

	return StartData{
		Participating:  true,
		ApplicableSpan: eng.DefaultSpan(snap, pos),
		Trigger:        norm,
	}
}

// normalizeTrigger converts a raw editor trigger into the engine's
// normalized form. Returns false for triggers the engine has no
// representation for.
func normalizeTrigger(trig Trigger) (engine.Trigger, bool) {
	switch trig.Reason {
	case ReasonInvoke, ReasonInvokeAndCommitIfUnique:
		return engine.Trigger{Kind: engine.TriggerInvoke}, true
	case ReasonInsertion:
		if trig.Character == 0 {
			return engine.Trigger{}, false
		}
		return engine.Trigger{Kind: engine.TriggerInsertion, Character: trig.Character}, true
	case ReasonDeletion:
		return engine.Trigger{Kind: engine.TriggerDeletion, Character: trig.Character}, true
	default:
		return engine.Trigger{}, false
	}
}
