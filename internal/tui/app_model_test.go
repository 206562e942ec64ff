package tui

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/dispatch"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/logger"
	"github.com/dmy/realworld-tui/internal/mock"
	"github.com/dmy/realworld-tui/internal/paginate"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/internal/store"
	"github.com/dmy/realworld-tui/models"
)

func newTestModel(t *testing.T, sender api.Sender, sess session.Session) (Model, *store.Store) {
	t.Helper()

	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	nav := router.NewNavigator(router.Home())
	d := dispatch.New(context.Background(), sender, st, nav, logger.Nop())
	return New(d, nav, sess, 10, "https://realworld.io", nil), st
}

func testViewer(t *testing.T) api.Viewer {
	t.Helper()

	body := []byte(`{"user":{"email":"bob@example.com","token":"abc.def.ghi","username":"bob","bio":"","image":""}}`)
	v, err := api.Login(models.Login{}).Decode(body)
	require.NoError(t, err)
	return v.(api.Viewer)
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	root, ok := m.(Model)
	require.True(t, ok)
	return root
}

func TestUpdate_DropsMessagesForAbandonedPages(t *testing.T) {
	m, _ := newTestModel(t, nil, session.Guest())

	feed := paginate.List[models.Article]{Values: []models.Article{{Slug: "late"}}, Total: 1}
	updated, cmd := m.Update(pageMsg{id: uuid.New(), msg: feedLoadedMsg{feed: feed}})

	root := asModel(t, updated)
	home, ok := root.page.(homeModel)
	require.True(t, ok)
	assert.True(t, home.feed.Loading(), "a stale envelope must not mutate the current page")
	assert.Nil(t, cmd)
}

func TestUpdate_DeliversMessagesForCurrentPage(t *testing.T) {
	m, _ := newTestModel(t, nil, session.Guest())

	feed := paginate.List[models.Article]{Values: []models.Article{{Slug: "fresh"}}, Total: 1}
	updated, _ := m.Update(pageMsg{id: m.pageID, msg: feedLoadedMsg{feed: feed}})

	home, ok := asModel(t, updated).page.(homeModel)
	require.True(t, ok)
	got, loaded := home.feed.Peek()
	require.True(t, loaded)
	assert.Equal(t, "fresh", got.Values[0].Slug)
}

func TestUpdate_LoginSuccessReplacesSessionAndGoesHome(t *testing.T) {
	m, st := newTestModel(t, nil, session.Guest())

	updated, _ := m.Update(router.ChangedMsg{Route: router.Login()})
	root := asModel(t, updated)
	_, ok := root.page.(loginModel)
	require.True(t, ok)

	updated, cmd := root.Update(pageMsg{id: root.pageID, msg: authedMsg{viewer: testViewer(t)}})
	root = asModel(t, updated)

	assert.False(t, root.env.session.IsGuest())
	_, persisted := st.Read(store.KeySession)
	assert.True(t, persisted)

	require.NotNil(t, cmd)
	changed, ok := cmd().(router.ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, router.Home(), changed.Route)
}

func TestUpdate_LogoutRouteClearsSession(t *testing.T) {
	sess := session.FromViewer(testViewer(t))
	m, st := newTestModel(t, nil, sess)
	require.NoError(t, session.Persist(st, sess))

	updated, cmd := m.Update(router.ChangedMsg{Route: router.Logout()})
	root := asModel(t, updated)

	assert.True(t, root.env.session.IsGuest())
	_, persisted := st.Read(store.KeySession)
	assert.False(t, persisted)

	require.NotNil(t, cmd)
	changed, ok := cmd().(router.ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, router.Home(), changed.Route)
}

func TestUpdate_GuestIsBouncedFromEditor(t *testing.T) {
	m, _ := newTestModel(t, nil, session.Guest())

	updated, cmd := m.Update(router.ChangedMsg{Route: router.NewArticle()})
	root := asModel(t, updated)

	_, stillHome := root.page.(homeModel)
	assert.True(t, stillHome, "the editor must not be constructed for a guest")

	require.NotNil(t, cmd)
	changed, ok := cmd().(router.ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, router.Login(), changed.Route)
}

func TestUpdate_SettingsSaveOmitsEmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockSender(ctrl)
	m, _ := newTestModel(t, sender, session.FromViewer(testViewer(t)))

	updated, _ := m.Update(router.ChangedMsg{Route: router.Settings()})
	root := asModel(t, updated)
	_, ok := root.page.(settingsModel)
	require.True(t, ok)

	updated, _ = root.Update(pageMsg{id: root.pageID, msg: settingsLoadedMsg{viewer: testViewer(t)}})
	root = asModel(t, updated)

	var sent api.Descriptor
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, desc api.Descriptor) (any, api.Errors) {
			sent = desc
			return testViewer(t), nil
		})

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyEnter})
	root = asModel(t, updated)
	require.NotNil(t, cmd)
	cmd()

	raw, err := json.Marshal(sent.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password",
		"an untouched password field must be absent from the update payload")
}

func TestUpdate_ErrorsAccumulateByPrependingUntilDismissed(t *testing.T) {
	login, _ := newLoginModel(&env{session: session.Guest(), pageSize: 10})

	var p page = login
	var eff effect.Effect
	p, _ = p.update(authedMsg{errs: api.Errors{"email is invalid"}})

	// A resubmission must not clear what is already displayed.
	p, eff = p.update(tea.KeyMsg{Type: tea.KeyEnter})
	_, resubmitted := eff.(effect.UpsertUser)
	require.True(t, resubmitted)
	p, _ = p.update(authedMsg{errs: api.Errors{"password is too short"}})

	assert.Equal(t,
		api.Errors{"password is too short", "email is invalid"},
		p.(loginModel).errs,
		"new errors must be prepended to the ones already shown")

	p, _ = p.update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, p.(loginModel).errs, "dismissal is the only clearing path")
}

func TestUpdate_CommentFailureKeepsEarlierErrors(t *testing.T) {
	article, _ := newArticleModel(&env{session: session.Guest(), pageSize: 10}, "slug")

	var p page = article
	p, _ = p.update(commentPostedMsg{errs: api.Errors{"body can't be blank"}})
	p, _ = p.update(commentPostedMsg{errs: api.Errors{"comment not allowed"}})

	assert.Equal(t,
		api.Errors{"comment not allowed", "body can't be blank"},
		p.(articleModel).errs)

	// Success must not clear the banner either.
	p, _ = p.update(commentPostedMsg{comment: models.Comment{ID: 1, Body: "hi"}})
	assert.Len(t, p.(articleModel).errs, 2)
}

func TestUpdate_SessionChangeFromAnotherInstanceRebuildsPage(t *testing.T) {
	m, _ := newTestModel(t, nil, session.Guest())
	firstID := m.pageID

	updated, _ := m.Update(sessionChangedMsg{session: session.FromViewer(testViewer(t))})
	root := asModel(t, updated)

	assert.False(t, root.env.session.IsGuest())
	assert.NotEqual(t, firstID, root.pageID, "the current page must be rebuilt against the new session")
}

func TestUpdate_CopiedMessageShowsStatus(t *testing.T) {
	m, _ := newTestModel(t, nil, session.Guest())

	updated, cmd := m.Update(dispatch.CopiedMsg{})
	root := asModel(t, updated)

	assert.NotEmpty(t, root.status)
	assert.NotNil(t, cmd)

	updated, _ = root.Update(clearStatusMsg{})
	assert.Empty(t, asModel(t, updated).status)
}
