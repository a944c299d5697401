// Package completion orchestrates asynchronous code-completion sessions
// between an editor host and a language engine.
//
// On every keystroke or explicit invocation the package decides whether
// completion participates, computes the candidate list off the caller's
// synchronous path, maps language-domain candidates into UI-presentable
// items, and answers follow-up description requests, all while staying
// responsive to cancellation and safe under concurrent UI interaction.
//
// # Architecture
//
// The package is organized around these components:
//
//   - Service: entry point tying classification, computation, and
//     description resolution together
//   - Classify: synchronous trigger classification with an ordered
//     predicate chain (explicit invoke, engine policy, snippet rewrite)
//   - Compute: asynchronous candidate computation and UI conversion
//   - Describe: asynchronous rich-description resolution
//   - Session: the typed per-session state bag threading derived values
//     (snapshot, trigger, suggestion mode, excluded commit characters)
//     between phases
//
// # Lifetimes
//
// Three lifetimes meet here: the editor's synchronous UI path (Classify and
// the snippet rewrite run there and must not block), a background
// computation (Compute and Describe take a context.Context and observe it
// at every suspension point), and the Session, which outlives both and
// carries derived state from classification through description resolution.
//
// Exactly one text snapshot is captured per trigger and used throughout the
// trigger/items/description chain; later calls never substitute a fresher
// one.
//
// # Quick Start
//
//	reg := document.NewRegistry()
//	reg.RegisterEngine("go", myEngine)
//	svc := completion.NewService(reg)
//
//	doc := reg.Open("/src/main.go", "go", content)
//	snap := doc.Snapshot()
//
//	start := svc.Classify(doc, trigger, snap, caret)
//	if !start.Participating {
//	    return
//	}
//
//	sess := completion.NewSession(doc)
//	res, err := svc.Compute(ctx, sess, start.Trigger, snap, caret, start.ApplicableSpan)
//
// # Thread Safety
//
// Service and Session are safe for concurrent use. Presentation items are
// owned by the editor after Compute returns.
package completion
