package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/asyncomplete/internal/completion"
	"github.com/dshills/asyncomplete/internal/config"
	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
	"github.com/dshills/asyncomplete/internal/wordlist"
)

// resultEvent delivers a finished candidate computation to the UI loop.
type resultEvent struct {
	when time.Time
	sess *completion.Session
	res  *completion.Result
	err  error
}

func (e *resultEvent) When() time.Time { return e.when }

// descriptionEvent delivers a resolved item description to the UI loop.
type descriptionEvent struct {
	when time.Time
	sess *completion.Session
	text string
	err  error
}

func (e *descriptionEvent) When() time.Time { return e.when }

// app is the demo host: one document, one engine, one completion popup.
type app struct {
	screen tcell.Screen
	svc    *completion.Service
	doc    *document.Document

	cfgMu sync.Mutex
	cfg   *config.Config
	cfgW  *config.Watcher

	caret text.ByteOffset

	// Popup state, owned by the UI loop.
	sess     *completion.Session
	result   *completion.Result
	selected int
	descText string
	status   string

	// cancel aborts the in-flight computation, if any.
	cancel context.CancelFunc

	shutdownOnce sync.Once
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	registry := document.NewRegistry()
	registry.RegisterEngine("demo", wordlist.New(demoVocabulary(),
		wordlist.WithSnippetPolicy(snippetPolicy(cfg)),
	))
	doc := registry.Open("/demo/scratch", "demo", "")

	svc := completion.NewService(registry,
		completion.WithCache(completion.NewCache(cfg.Cache.Size, cfg.Cache.TTL)),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{
		screen: screen,
		svc:    svc,
		doc:    doc,
		cfg:    cfg,
	}

	if configPath != "" {
		w, err := config.Watch(configPath, a.onConfigReload)
		if err == nil {
			a.cfgW = w
		}
	}

	return a, nil
}

// onConfigReload swaps the live configuration. Invalid files keep the
// previous configuration.
func (a *app) onConfigReload(cfg *config.Config, err error) {
	if err != nil {
		return
	}
	a.cfgMu.Lock()
	a.cfg = cfg
	a.cfgMu.Unlock()
}

func (a *app) config() *config.Config {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	return a.cfg
}

func snippetPolicy(cfg *config.Config) engine.SnippetPolicy {
	if cfg.Completion.SnippetPolicy == config.SnippetPolicyNone {
		return engine.SnippetNone
	}
	return engine.SnippetIdentifierQuestionTab
}

// Shutdown releases the terminal. Safe to call more than once.
func (a *app) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		if a.cfgW != nil {
			a.cfgW.Close()
		}
		a.screen.Fini()
	})
}

// Run is the UI loop. It owns all popup state; asynchronous work reaches
// it only through posted events.
func (a *app) Run() error {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}

		case *resultEvent:
			a.handleResult(ev)

		case *descriptionEvent:
			a.handleDescription(ev)

		case *tcell.EventResize:
			a.screen.Sync()

		case nil:
			return errors.New("screen closed")
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true

	case tcell.KeyEscape:
		a.dismiss()

	case tcell.KeyUp:
		if a.popupOpen() && a.selected > 0 {
			a.selected--
			a.descText = ""
		}

	case tcell.KeyDown:
		if a.popupOpen() && a.selected < len(a.result.Items)-1 {
			a.selected++
			a.descText = ""
		}

	case tcell.KeyF1:
		a.requestDescription()

	case tcell.KeyEnter:
		if a.popupOpen() {
			// Soft selection: Enter inserts a newline instead of
			// committing.
			if a.result.Selection == completion.SoftSelection {
				a.dismiss()
				a.insertRune('\n')
				break
			}
			a.commitSelected("")
			break
		}
		a.insertRune('\n')

	case tcell.KeyTab:
		if a.popupOpen() {
			a.commitSelected("")
			break
		}
		a.insertRune('\t')

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.deleteBack()

	case tcell.KeyCtrlSpace:
		a.classify(completion.Trigger{Reason: completion.ReasonInvoke})

	case tcell.KeyRune:
		r := ev.Rune()
		if a.popupOpen() && a.isCommitCharacter(r) {
			a.commitSelected(string(r))
			break
		}
		a.insertRune(r)
	}
	return false
}

// insertRune applies the edit and classifies the resulting trigger.
func (a *app) insertRune(r rune) {
	if err := a.doc.Buffer().Insert(a.caret, string(r)); err != nil {
		return
	}
	a.caret += text.ByteOffset(len(string(r)))
	a.classify(completion.Trigger{Reason: completion.ReasonInsertion, Character: r})
}

func (a *app) deleteBack() {
	snap := a.doc.Snapshot()
	r, size := snap.RuneBefore(a.caret)
	if size == 0 {
		return
	}
	if err := a.doc.Buffer().Delete(a.caret-text.ByteOffset(size), a.caret); err != nil {
		return
	}
	a.caret -= text.ByteOffset(size)
	a.classify(completion.Trigger{Reason: completion.ReasonDeletion, Character: r})
}

// classify runs trigger classification and, on participation, kicks off
// the asynchronous computation.
func (a *app) classify(trig completion.Trigger) {
	if !a.config().Completion.Enabled {
		return
	}

	snap := a.doc.Snapshot()
	start := a.svc.Classify(a.doc, trig, snap, a.caret)
	if !start.Participating {
		a.dismiss()
		return
	}

	// The snippet rewrite may have deleted the two-byte "?"+Tab sequence
	// behind the caret; re-snapshot and pull the caret back.
	if rewritten := a.doc.Snapshot(); rewritten.Revision() != snap.Revision() {
		snap = rewritten
		a.caret -= 2
	}

	a.startCompute(start, snap)
}

func (a *app) startCompute(start completion.StartData, snap *text.Snapshot) {
	if a.cancel != nil {
		a.cancel()
	}

	timeout := a.config().Completion.Timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	a.cancel = cancel

	sess := completion.NewSession(a.doc)
	a.sess = sess
	pos := a.caret

	go func() {
		res, err := a.svc.Compute(ctx, sess, start.Trigger, snap, pos, start.ApplicableSpan)
		a.screen.PostEvent(&resultEvent{when: time.Now(), sess: sess, res: res, err: err})
	}()
}

func (a *app) handleResult(ev *resultEvent) {
	// A stale computation for a session we already moved past.
	if ev.sess != a.sess {
		return
	}
	if ev.err != nil {
		if !errors.Is(ev.err, context.Canceled) && !errors.Is(ev.err, context.DeadlineExceeded) {
			a.status = "completion failed: " + ev.err.Error()
		}
		return
	}
	if ev.res.IsEmpty() {
		a.dismiss()
		return
	}

	a.result = ev.res
	a.selected = 0
	a.descText = ""
	a.status = ""
}

// requestDescription resolves the selected item's description off the UI
// loop.
func (a *app) requestDescription() {
	if !a.popupOpen() {
		return
	}

	sess := a.sess
	item := a.result.Items[a.selected]
	timeout := a.config().Completion.Timeout

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		desc, err := a.svc.Describe(ctx, sess, item)
		ev := &descriptionEvent{when: time.Now(), sess: sess, err: err}
		if desc != nil {
			ev.text = desc.Plain()
		}
		a.screen.PostEvent(ev)
	}()
}

func (a *app) handleDescription(ev *descriptionEvent) {
	if ev.sess != a.sess || ev.err != nil {
		return
	}
	a.descText = ev.text
}

// isCommitCharacter reports whether r commits the selection: it must be a
// potential commit character of the engine and not excluded by the current
// candidate list.
func (a *app) isCommitCharacter(r rune) bool {
	v, _ := a.doc.Property(document.PropertyPotentialCommitCharacters)
	potential, _ := v.([]rune)
	found := false
	for _, c := range potential {
		if c == r {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, c := range a.sess.ExcludedCommitCharacters() {
		if c == r {
			return false
		}
	}
	return true
}

// commitSelected replaces the applicable span with the selected item's
// insert text, then appends the committing character if any.
func (a *app) commitSelected(suffix string) {
	item := a.result.Items[a.selected]
	span := a.result.ApplicableSpan

	end := span.End
	if a.caret > end {
		end = a.caret
	}
	replacement := item.InsertText + suffix
	if err := a.doc.Buffer().Replace(span.Start, end, replacement); err != nil {
		return
	}
	a.caret = span.Start + text.ByteOffset(len(replacement))
	a.dismiss()
}

func (a *app) popupOpen() bool {
	return a.result != nil && len(a.result.Items) > 0
}

func (a *app) dismiss() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.sess = nil
	a.result = nil
	a.selected = 0
	a.descText = ""
}
