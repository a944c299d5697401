package completion

import (
	"context"

	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
)

// Compute asynchronously computes the candidate list for a session.
//
// It must run off the editor's UI path. The document/engine pair is
// re-resolved from scratch; failure to resolve yields an empty result, not
// an error, because buffers change between trigger and computation. A nil
// candidate list from the engine is treated as empty.
//
// Candidates are converted in the engine's returned order, which becomes
// the display order. Every presentation item carries the originating
// snapshot so later description requests read a consistent text state.
// On success Compute publishes the snapshot, the normalized trigger, the
// suggestion-mode flag, and the recomputed excluded commit-character set
// into the session.
//
// Cancellation is observed before and after the engine call and on every
// iteration of the conversion loop; on cancellation no partial result is
// returned.
func (s *Service) Compute(ctx context.Context, sess *Session, trig engine.Trigger, snap *text.Snapshot, pos text.ByteOffset, span text.Span) (*Result, error) {
	if sess == nil || sess.Document() == nil {
		return nil, ErrNoSession
	}

	doc := sess.Document()
	eng, ok := s.registry.Resolve(doc)
	if !ok {
		return &Result{}, nil
	}

	if s.cache != nil {
		if entry, ok := s.cache.get(doc, snap, pos, trig); ok {
			sess.setComputed(snap, trig, entry.result.Suggestion != nil, entry.excluded)
			return entry.result, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, err := eng.Completions(ctx, snap, pos, trig)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if list == nil {
		sess.setComputed(snap, trig, false, nil)
		return &Result{ApplicableSpan: span}, nil
	}

	kinds := eng.FilterKinds()
	fcache := NewFilterCache()
	items := make([]*PresentationItem, 0, len(list.Items))

	for _, cand := range list.Items {
		// The list can run to thousands of items; stay cancellable.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := Convert(cand, kinds, fcache)
		item.snapshot = snap
		items = append(items, item)
	}

	selection := RegularSelection
	if list.Suggestion != nil {
		selection = SoftSelection
	}

	excluded := ExcludedCommitCharacters(list.Items)
	sess.setComputed(snap, trig, list.Suggestion != nil, excluded)

	res := &Result{
		Items:          items,
		ApplicableSpan: span,
		Suggestion:     list.Suggestion,
		Selection:      selection,
	}

	if s.cache != nil {
		s.cache.put(doc, snap, pos, trig, res, excluded)
	}

	return res, nil
}
