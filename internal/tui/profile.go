package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/dispatch"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/paginate"
	"github.com/dmy/realworld-tui/internal/remote"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/models"
)

type profileTab int

const (
	tabAuthored profileTab = iota
	tabFavorited
)

// profileModel shows another user's public profile: their bio and either
// the articles they wrote or the articles they favorited.
type profileModel struct {
	env      *env
	username string
	author   remote.Resource[models.Author]
	tab      profileTab
	feed     remote.Resource[paginate.List[models.Article]]
	page     int
	cursor   int
}

func newProfileModel(e *env, username string) (profileModel, effect.Effect) {
	m := profileModel{
		env:      e,
		username: username,
		author:   remote.Start[models.Author]("profile " + username),
		page:     1,
	}
	m.feed = remote.Start[paginate.List[models.Article]](m.feedLabel())

	eff := effect.Batch{
		effect.FetchAuthor{
			Request: func(s session.Session) api.Descriptor {
				return api.Profile(username, s.Cred())
			},
			Done: func(a models.Author, errs api.Errors) tea.Msg {
				return authorLoadedMsg{author: a, errs: errs}
			},
		},
		m.fetchFeed(),
	}
	return m, eff
}

func (m profileModel) feedLabel() string {
	if m.tab == tabFavorited {
		return "articles favorited by " + m.username
	}
	return "articles by " + m.username
}

func (m profileModel) fetchFeed() effect.Effect {
	filter := api.ArticleFilter{Author: m.username}
	if m.tab == tabFavorited {
		filter = api.ArticleFilter{Favorited: m.username}
	}
	page, size := m.page, m.env.pageSize

	return effect.FetchFeed{
		Request: func(s session.Session) api.Descriptor {
			return api.ListArticles(filter, page, size, s.Cred())
		},
		Done: func(feed paginate.List[models.Article], errs api.Errors) tea.Msg {
			return feedLoadedMsg{feed: feed, errs: errs}
		},
	}
}

func (m profileModel) reload() (profileModel, effect.Effect) {
	m.feed = remote.Start[paginate.List[models.Article]](m.feedLabel())
	m.cursor = 0
	return m, effect.Batch{m.fetchFeed(), effect.ScrollToTop{}}
}

func (m profileModel) update(msg tea.Msg) (page, effect.Effect) {
	switch msg := msg.(type) {
	case authorLoadedMsg:
		if msg.errs != nil {
			m.author = m.author.Fail()
			return m, effect.None{}
		}
		m.author = m.author.Succeed(msg.author)
		return m, effect.None{}

	case feedLoadedMsg:
		if msg.errs != nil {
			m.feed = m.feed.Fail()
			return m, effect.None{}
		}
		m.feed = m.feed.Succeed(msg.feed)
		return m, effect.None{}

	case followDoneMsg:
		if msg.errs != nil {
			return m, effect.Log{Message: strings.Join(msg.errs, "; ")}
		}
		m.author = m.author.Succeed(msg.author)
		return m, effect.None{}

	case favoriteDoneMsg:
		if msg.errs != nil {
			return m, effect.Log{Message: strings.Join(msg.errs, "; ")}
		}
		if feed, ok := m.feed.Peek(); ok {
			updated := paginate.Replace(feed, func(a models.Article) bool {
				return a.Slug == msg.article.Slug
			}, msg.article)
			m.feed = m.feed.Succeed(updated)
		}
		return m, effect.None{}

	case dispatch.ScrollToTopMsg:
		m.cursor = 0
		return m, effect.None{}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, effect.None{}
}

func (m profileModel) handleKey(msg tea.KeyMsg) (page, effect.Effect) {
	feed, loaded := m.feed.Peek()

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if loaded && m.cursor < len(feed.Values)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.enter):
		if loaded && m.cursor < len(feed.Values) {
			return m, effect.PushRoute{Route: router.Article(feed.Values[m.cursor].Slug)}
		}

	case key.Matches(msg, keys.tab):
		if m.tab == tabAuthored {
			m.tab = tabFavorited
		} else {
			m.tab = tabAuthored
		}
		m.page = 1
		return m.reload()

	case key.Matches(msg, keys.follow):
		author, ok := m.author.Peek()
		if !ok {
			break
		}
		cred, signedIn := m.env.session.Credential()
		if !signedIn {
			return m, effect.PushRoute{Route: router.Login()}
		}
		req := api.Follow(m.username, cred)
		if author.Following {
			req = api.Unfollow(m.username, cred)
		}
		return m, effect.ChangeFollow{
			Request: req,
			Done: func(a models.Author, errs api.Errors) tea.Msg {
				return followDoneMsg{author: a, errs: errs}
			},
		}

	case key.Matches(msg, keys.favorite):
		if !loaded || m.cursor >= len(feed.Values) {
			break
		}
		a := feed.Values[m.cursor]
		cred, signedIn := m.env.session.Credential()
		if !signedIn {
			return m, effect.PushRoute{Route: router.Login()}
		}
		req := api.Favorite(a.Slug, cred)
		if a.Favorited {
			req = api.Unfavorite(a.Slug, cred)
		}
		return m, effect.FavorArticle{
			Request: req,
			Done: func(article models.Article, errs api.Errors) tea.Msg {
				return favoriteDoneMsg{article: article, errs: errs}
			},
		}

	case key.Matches(msg, keys.nextPage):
		if loaded && m.page < feed.Total {
			m.page++
			return m.reload()
		}

	case key.Matches(msg, keys.prevPage):
		if m.page > 1 {
			m.page--
			return m.reload()
		}
	}
	return m, effect.None{}
}

func (m profileModel) typing() bool { return false }

func (m profileModel) view() string {
	var b strings.Builder

	switch {
	case m.author.Loading():
		b.WriteString(renderLoading(m.author.Label()) + "\n")
	case m.author.Failed():
		b.WriteString(renderLoadFailure(m.author.Label()) + "\n")
	default:
		author, _ := m.author.Peek()
		b.WriteString(titleStyle.Render(author.Username))
		if author.Following {
			b.WriteString(metaStyle.Render("  following"))
		}
		b.WriteString("\n")
		if author.Bio != "" {
			b.WriteString(metaStyle.Render(author.Bio) + "\n")
		}
	}
	b.WriteString("\n")

	labels := []string{"articles", "favorited"}
	b.WriteString(renderTabs(labels, int(m.tab)) + "\n\n")

	switch {
	case m.feed.Loading():
		b.WriteString(renderLoading(m.feed.Label()) + "\n")
	case m.feed.Failed():
		b.WriteString(renderLoadFailure(m.feed.Label()) + "\n")
	default:
		feed, _ := m.feed.Peek()
		if len(feed.Values) == 0 {
			b.WriteString(metaStyle.Render("no articles are here... yet") + "\n")
		}
		for i, a := range feed.Values {
			b.WriteString(renderPreview(a, m.env.zone, i == m.cursor))
		}
		b.WriteString(renderPagination(m.page, feed.Total))
	}

	b.WriteString("\n" + helpStyle.Render("j/k move  enter read  f favorite  w follow  tab switch  [/] page"))
	return b.String()
}
