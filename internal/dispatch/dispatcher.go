// Package dispatch owns the single interpreter that turns effect values
// into real work. Nothing else in the application performs network calls,
// touches the navigation history, writes persistent state, or uses the
// clipboard.
package dispatch

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/logger"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/internal/store"
)

// ScrollToTopMsg asks the view layer for a best-effort viewport reset.
type ScrollToTopMsg struct{}

// CopiedMsg reports that a clipboard write completed.
type CopiedMsg struct{}

// Dispatcher executes effects. It holds every capability the effects need:
// the transport, the persistent store, the navigator, and the log sink.
type Dispatcher struct {
	ctx    context.Context
	sender api.Sender
	store  *store.Store
	nav    *router.Navigator
	logger *logger.Logger
}

// New constructs a Dispatcher. ctx bounds all asynchronous work started by
// Execute.
func New(ctx context.Context, sender api.Sender, st *store.Store, nav *router.Navigator, log *logger.Logger) *Dispatcher {
	return &Dispatcher{ctx: ctx, sender: sender, store: st, nav: nav, logger: log}
}

// Execute interprets eff against the current session. It returns the new
// session and the pending asynchronous work, if any. Model mutation happens
// here and only here; the returned command completes later by feeding a
// message back into the loop.
func (d *Dispatcher) Execute(eff effect.Effect, sess session.Session) (session.Session, tea.Cmd) {
	switch e := eff.(type) {
	case nil, effect.None:
		return sess, nil

	case effect.Batch:
		var cmds []tea.Cmd
		for _, member := range e {
			var cmd tea.Cmd
			sess, cmd = d.Execute(member, sess)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			return sess, nil
		}
		return sess, tea.Batch(cmds...)

	case effect.PushRoute:
		return sess, d.nav.Push(e.Route)

	case effect.ReplaceRoute:
		return sess, d.nav.Replace(e.Route)

	case effect.Back:
		cmd, _ := d.nav.Back()
		return sess, cmd

	case effect.LoadURL:
		return sess, router.LoadURL(e.URL)

	case effect.GetTimeZone:
		done := e.Done
		return sess, func() tea.Msg {
			return done(time.Now().Location())
		}

	case effect.ScrollToTop:
		return sess, func() tea.Msg {
			return ScrollToTopMsg{}
		}

	case effect.ReplaceSession:
		// The bundle is deliberate: login, logout, and settings-save all
		// land on the home screen. Changing that UX means changing the
		// caller, not this interpreter.
		if err := session.Persist(d.store, e.Session); err != nil {
			d.logger.Error().Err(err).Msg("persist session")
		}
		return e.Session, d.nav.Replace(router.Home())

	case effect.Log:
		// Stub for an external diagnostics service: the line lands in the
		// local log only.
		d.logger.Warn().Str("origin", "page").Msg(e.Message)
		return sess, nil

	case effect.CopyToClipboard:
		text := e.Text
		log := d.logger
		return sess, func() tea.Msg {
			if err := clipboard.WriteAll(text); err != nil {
				log.Error().Err(err).Msg("copy to clipboard")
				return nil
			}
			return CopiedMsg{}
		}

	case effect.UpsertUser:
		return sess, send(d, e.Request, e.Done)

	case effect.FetchSettings:
		if sess.IsGuest() {
			// Authentication gate: the request is dropped silently and the
			// user is redirected to sign in.
			return sess, d.nav.Replace(router.Login())
		}
		return sess, send(d, e.Request(sess), e.Done)

	case effect.FetchTags:
		return sess, send(d, e.Request, e.Done)

	case effect.UpsertArticle:
		return sess, send(d, e.Request, e.Done)

	case effect.FetchArticle:
		return sess, send(d, e.Request(sess), e.Done)

	case effect.FavorArticle:
		return sess, send(d, e.Request, e.Done)

	case effect.FetchFeed:
		return sess, send(d, e.Request(sess), e.Done)

	case effect.FetchComments:
		return sess, send(d, e.Request(sess), e.Done)

	case effect.PostComment:
		return sess, send(d, e.Request, e.Done)

	case effect.FetchAuthor:
		return sess, send(d, e.Request(sess), e.Done)

	case effect.ChangeFollow:
		return sess, send(d, e.Request, e.Done)

	case effect.Delete:
		ctx, sender, done := d.ctx, d.sender, e.Done
		return sess, func() tea.Msg {
			_, errs := sender.Send(ctx, e.Request)
			return done(errs)
		}
	}

	d.logger.Error().Msgf("unhandled effect %T", eff)
	return sess, nil
}

// send submits req and routes the typed outcome through done. Failures of
// every kind arrive as api.Errors through the same continuation as success.
func send[T any](d *Dispatcher, req api.Descriptor, done func(T, api.Errors) tea.Msg) tea.Cmd {
	ctx, sender := d.ctx, d.sender
	return func() tea.Msg {
		var zero T
		v, errs := sender.Send(ctx, req)
		if errs != nil {
			return done(zero, errs)
		}
		typed, ok := v.(T)
		if !ok {
			return done(zero, api.Errors{"unexpected response from server: wrong result shape"})
		}
		return done(typed, nil)
	}
}
