// Package tui contains the terminal user interface: one model per screen,
// composed under a root Model that owns the session, the current page
// instance, and the only connection to the effect interpreter.
//
// Pages never perform work. Every page update returns the next page state
// plus an effect value describing what should happen; the root hands the
// effect to the dispatcher and tags the resulting messages with the page
// instance id so late responses from an abandoned screen are discarded.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dmy/realworld-tui/internal/dispatch"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
)

// env carries the cross-page state every screen reads: the viewer's
// session, the resolved time zone, the page size for article listings, and
// the web origin used to build shareable article links. The root model owns
// the single instance and pages hold a pointer to it.
type env struct {
	session  session.Session
	zone     *time.Location
	pageSize int
	webBase  string
	width    int
	height   int
}

// page is one screen of the application.
type page interface {
	update(msg tea.Msg) (page, effect.Effect)
	view() string
	// typing reports whether the page currently captures printable keys in
	// a form field, which suppresses the root's single-letter navigation.
	typing() bool
}

// Model is the root bubbletea model.
type Model struct {
	dispatcher *dispatch.Dispatcher
	nav        *router.Navigator
	env        *env

	pageID uuid.UUID
	page   page

	updates <-chan session.Session
	status  string
	initCmd tea.Cmd
}

// New builds the root model positioned on the navigator's current route.
// updates may be nil when no cross-instance session watching is wanted.
func New(d *dispatch.Dispatcher, nav *router.Navigator, sess session.Session, pageSize int, webBase string, updates <-chan session.Session) Model {
	m := Model{
		dispatcher: d,
		nav:        nav,
		env:        &env{session: sess, pageSize: pageSize, webBase: webBase, width: 80, height: 24},
		updates:    updates,
	}

	m, routeCmd := m.changeRouteTo(nav.Current())
	m, zoneCmd := m.runRoot(effect.GetTimeZone{
		Done: func(loc *time.Location) tea.Msg { return zoneMsg{loc: loc} },
	})
	m.initCmd = tea.Batch(routeCmd, zoneCmd, m.waitForSession())
	return m
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.width = msg.Width
		m.env.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if !m.page.typing() {
			if eff, handled := m.globalKey(msg); handled {
				return m.runRoot(eff)
			}
		}
		return m.forward(msg)

	case router.ChangedMsg:
		return m.changeRouteTo(msg.Route)

	case zoneMsg:
		m.env.zone = msg.loc
		return m, nil

	case sessionChangedMsg:
		// Another instance logged in or out. Adopt the session and rebuild
		// the current screen against it.
		m.env.session = msg.session
		next, cmd := m.changeRouteTo(m.nav.Current())
		return next, tea.Batch(cmd, next.waitForSession())

	case dispatch.ScrollToTopMsg:
		return m.forward(msg)

	case dispatch.CopiedMsg:
		m.status = "link copied to clipboard"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case pageMsg:
		if msg.id != m.pageID {
			// Response for a page the user already left.
			return m, nil
		}
		return m.forward(msg.msg)
	}

	return m, nil
}

// globalKey handles the site-wide navigation shortcuts. The second return
// value reports whether the key was consumed.
func (m Model) globalKey(msg tea.KeyMsg) (effect.Effect, bool) {
	sess := m.env.session
	switch {
	case key.Matches(msg, keys.home):
		return effect.PushRoute{Route: router.Home()}, true
	case key.Matches(msg, keys.back), key.Matches(msg, keys.esc):
		return effect.Back{}, true
	case key.Matches(msg, keys.signIn):
		if sess.IsGuest() {
			return effect.PushRoute{Route: router.Login()}, true
		}
	case key.Matches(msg, keys.register):
		if sess.IsGuest() {
			return effect.PushRoute{Route: router.Register()}, true
		}
	case key.Matches(msg, keys.settings):
		if !sess.IsGuest() {
			return effect.PushRoute{Route: router.Settings()}, true
		}
	case key.Matches(msg, keys.compose):
		if !sess.IsGuest() {
			return effect.PushRoute{Route: router.NewArticle()}, true
		}
	case key.Matches(msg, keys.profile):
		if username, ok := sess.Username(); ok {
			return effect.PushRoute{Route: router.Profile(username)}, true
		}
	}
	return nil, false
}

// forward delivers msg to the current page and executes the effect it
// returns.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var eff effect.Effect
	m.page, eff = m.page.update(msg)
	return m.runPage(eff)
}

// changeRouteTo swaps the current page for the one the route names, minting
// a fresh page instance id. Routes that require a signed-in viewer bounce
// guests to the sign-in screen.
func (m Model) changeRouteTo(route router.Route) (Model, tea.Cmd) {
	if route.Kind == router.KindLogout {
		return m.runRoot(effect.ReplaceSession{Session: session.Guest()})
	}
	if requiresAuth(route) && m.env.session.IsGuest() {
		return m.runRoot(effect.ReplaceRoute{Route: router.Login()})
	}

	m.pageID = uuid.New()
	var eff effect.Effect
	switch route.Kind {
	case router.KindHome:
		m.page, eff = newHomeModel(m.env)
	case router.KindLogin:
		m.page, eff = newLoginModel(m.env)
	case router.KindRegister:
		m.page, eff = newRegisterModel(m.env)
	case router.KindSettings:
		m.page, eff = newSettingsModel(m.env)
	case router.KindNewArticle:
		m.page, eff = newEditorModel(m.env, "")
	case router.KindEditArticle:
		m.page, eff = newEditorModel(m.env, route.Slug)
	case router.KindArticle:
		m.page, eff = newArticleModel(m.env, route.Slug)
	case router.KindProfile:
		m.page, eff = newProfileModel(m.env, route.Username)
	default:
		m.page, eff = newNotFoundModel(), effect.None{}
	}
	return m.runPage(eff)
}

func requiresAuth(route router.Route) bool {
	switch route.Kind {
	case router.KindNewArticle, router.KindEditArticle:
		return true
	}
	return false
}

// runPage executes a page effect, tagging every continuation message with
// the current page instance id.
func (m Model) runPage(eff effect.Effect) (Model, tea.Cmd) {
	id := m.pageID
	lifted := effect.Map(eff, func(inner tea.Msg) tea.Msg {
		return pageMsg{id: id, msg: inner}
	})
	var cmd tea.Cmd
	m.env.session, cmd = m.dispatcher.Execute(lifted, m.env.session)
	return m, cmd
}

// runRoot executes an effect whose continuations belong to the root model
// itself and must not be tagged with a page id.
func (m Model) runRoot(eff effect.Effect) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.env.session, cmd = m.dispatcher.Execute(eff, m.env.session)
	return m, cmd
}

func (m Model) waitForSession() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ch := m.updates
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return sessionChangedMsg{session: s}
	}
}

func (m Model) View() string {
	viewer := "guest  i sign in  r sign up"
	if username, ok := m.env.session.Username(); ok {
		viewer = username + "  n new article  s settings"
	}
	bar := brandStyle.Render("conduit") + "  " + navStyle.Render("g home  backspace back  ctrl+c quit  "+viewer)

	out := bar + "\n\n" + m.page.view()
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status)
	}
	return appStyle.Render(out)
}
