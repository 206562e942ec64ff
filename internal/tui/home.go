package tui

import (
	"strconv"
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

type feedTab int

const (
	tabPersonal feedTab = iota
	tabGlobal
	tabTag
)

// homeModel is the landing screen: the feed selector, one page of article
// previews, and the popular tag list.
type homeModel struct {
	env    *env
	tab    feedTab
	tag    string
	feed   remote.Resource[paginate.List[models.Article]]
	tags   remote.Resource[[]string]
	page   int
	cursor int
}

func newHomeModel(e *env) (homeModel, effect.Effect) {
	m := homeModel{
		env:  e,
		tab:  tabGlobal,
		tags: remote.Start[[]string]("popular tags"),
		page: 1,
	}
	if !e.session.IsGuest() {
		m.tab = tabPersonal
	}
	m.feed = remote.Start[paginate.List[models.Article]](m.feedLabel())

	return m, effect.Batch{
		m.fetchFeed(),
		effect.FetchTags{
			Request: api.Tags(),
			Done: func(tags []string, errs api.Errors) tea.Msg {
				return tagsLoadedMsg{tags: tags, errs: errs}
			},
		},
	}
}

func (m homeModel) feedLabel() string {
	switch m.tab {
	case tabPersonal:
		return "your feed"
	case tabTag:
		return "articles tagged " + m.tag
	default:
		return "global feed"
	}
}

// fetchFeed builds the listing request for the current tab and page. The
// request is session-resolved so the credential the interpreter holds at
// execution time is the one that signs it.
func (m homeModel) fetchFeed() effect.Effect {
	tab, tag, page, size := m.tab, m.tag, m.page, m.env.pageSize
	done := func(feed paginate.List[models.Article], errs api.Errors) tea.Msg {
		return feedLoadedMsg{feed: feed, errs: errs}
	}

	return effect.FetchFeed{
		Request: func(s session.Session) api.Descriptor {
			if tab == tabPersonal {
				if cred, ok := s.Credential(); ok {
					return api.Feed(page, size, cred)
				}
				// Signed out since the tab was chosen: fall back to the
				// global feed rather than failing.
				return api.ListArticles(api.ArticleFilter{}, page, size, nil)
			}
			var filter api.ArticleFilter
			if tab == tabTag {
				filter.Tag = tag
			}
			return api.ListArticles(filter, page, size, s.Cred())
		},
		Done: done,
	}
}

func (m homeModel) reload() (homeModel, effect.Effect) {
	m.feed = remote.Start[paginate.List[models.Article]](m.feedLabel())
	m.cursor = 0
	return m, effect.Batch{m.fetchFeed(), effect.ScrollToTop{}}
}

func (m homeModel) update(msg tea.Msg) (page, effect.Effect) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		if msg.errs != nil {
			m.feed = m.feed.Fail()
			return m, effect.None{}
		}
		m.feed = m.feed.Succeed(msg.feed)
		return m, effect.None{}

	case tagsLoadedMsg:
		if msg.errs != nil {
			m.tags = m.tags.Fail()
			return m, effect.None{}
		}
		m.tags = m.tags.Succeed(msg.tags)
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

func (m homeModel) handleKey(msg tea.KeyMsg) (page, effect.Effect) {
	feed, loaded := m.feed.Peek()

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, effect.None{}

	case key.Matches(msg, keys.down):
		if loaded && m.cursor < len(feed.Values)-1 {
			m.cursor++
		}
		return m, effect.None{}

	case key.Matches(msg, keys.enter):
		if loaded && m.cursor < len(feed.Values) {
			return m, effect.PushRoute{Route: router.Article(feed.Values[m.cursor].Slug)}
		}
		return m, effect.None{}

	case key.Matches(msg, keys.tab):
		return m.nextTab()

	case key.Matches(msg, keys.favorite):
		if !loaded || m.cursor >= len(feed.Values) {
			return m, effect.None{}
		}
		return m, m.toggleFavorite(feed.Values[m.cursor])

	case key.Matches(msg, keys.nextPage):
		if loaded && m.page < feed.Total {
			m.page++
			return m.reload()
		}
		return m, effect.None{}

	case key.Matches(msg, keys.prevPage):
		if m.page > 1 {
			m.page--
			return m.reload()
		}
		return m, effect.None{}
	}

	// Digits pick a popular tag.
	if tags, ok := m.tags.Peek(); ok {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(tags) {
			m.tab = tabTag
			m.tag = tags[n-1]
			m.page = 1
			return m.reload()
		}
	}
	return m, effect.None{}
}

func (m homeModel) nextTab() (page, effect.Effect) {
	switch m.tab {
	case tabPersonal:
		m.tab = tabGlobal
	case tabGlobal:
		if m.tag != "" {
			m.tab = tabTag
		} else if !m.env.session.IsGuest() {
			m.tab = tabPersonal
		} else {
			return m, effect.None{}
		}
	case tabTag:
		if !m.env.session.IsGuest() {
			m.tab = tabPersonal
		} else {
			m.tab = tabGlobal
		}
	}
	m.page = 1
	next, eff := m.reload()
	return next, eff
}

func (m homeModel) toggleFavorite(a models.Article) effect.Effect {
	cred, ok := m.env.session.Credential()
	if !ok {
		return effect.PushRoute{Route: router.Login()}
	}

	req := api.Favorite(a.Slug, cred)
	if a.Favorited {
		req = api.Unfavorite(a.Slug, cred)
	}
	return effect.FavorArticle{
		Request: req,
		Done: func(article models.Article, errs api.Errors) tea.Msg {
			return favoriteDoneMsg{article: article, errs: errs}
		},
	}
}

func (m homeModel) typing() bool { return false }

func (m homeModel) view() string {
	var b strings.Builder

	labels := []string{}
	active := 0
	if !m.env.session.IsGuest() {
		labels = append(labels, "your feed")
	}
	labels = append(labels, "global feed")
	if m.tag != "" {
		labels = append(labels, "#"+m.tag)
	}
	switch m.tab {
	case tabPersonal:
		active = 0
	case tabGlobal:
		if m.env.session.IsGuest() {
			active = 0
		} else {
			active = 1
		}
	case tabTag:
		active = len(labels) - 1
	}
	b.WriteString(renderTabs(labels, active) + "\n\n")

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

	b.WriteString("\n")
	if tags, ok := m.tags.Peek(); ok && len(tags) > 0 {
		parts := make([]string, 0, len(tags))
		for i, tag := range tags {
			parts = append(parts, strconv.Itoa(i+1)+":"+tag)
		}
		b.WriteString(tagStyle.Render("popular tags  "+strings.Join(parts, "  ")) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("j/k move  enter read  f favorite  tab feed  [/] page  1-9 tag"))
	return b.String()
}
