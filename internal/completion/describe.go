package completion

import (
	"context"

	"github.com/dshills/asyncomplete/internal/richtext"
)

// Describe asynchronously resolves the rich description for a previously
// converted item.
//
// The item must carry both its originating candidate and snapshot; items
// constructed outside this package carry neither and yield a nil
// description, which is the normal outcome rather than an error. The
// engine is asked against the stored snapshot, never a fresher one, so the
// description reflects the text state at candidate-computation time.
func (s *Service) Describe(ctx context.Context, sess *Session, item *PresentationItem) (*richtext.Text, error) {
	if sess == nil || sess.Document() == nil {
		return nil, ErrNoSession
	}
	if item == nil {
		return nil, nil
	}

	cand := item.Candidate()
	snap := item.Snapshot()
	if cand == nil || snap == nil {
		return nil, nil
	}

	eng, ok := s.registry.Resolve(sess.Document())
	if !ok {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts, err := eng.Description(ctx, snap, cand)
	if err != nil {
		return nil, err
	}
	if parts == nil {
		return nil, nil
	}

	return richtext.FromTagged(parts), nil
}
