package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/remote"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/models"
)

// articleModel shows one article with its comment thread.
type articleModel struct {
	env       *env
	slug      string
	article   remote.Resource[models.Article]
	comments  remote.Resource[[]models.Comment]
	input     textarea.Model
	composing bool
	cursor    int
	errs      api.Errors
}

func newArticleModel(e *env, slug string) (articleModel, effect.Effect) {
	m := articleModel{
		env:      e,
		slug:     slug,
		article:  remote.Start[models.Article]("article " + slug),
		comments: remote.Start[[]models.Comment]("comments"),
	}
	m.input = textarea.New()
	m.input.SetWidth(60)
	m.input.SetHeight(4)
	m.input.Placeholder = "Write a comment..."

	eff := effect.Batch{
		effect.FetchArticle{
			Request: func(s session.Session) api.Descriptor {
				return api.GetArticle(slug, s.Cred())
			},
			Done: func(a models.Article, errs api.Errors) tea.Msg {
				return articleLoadedMsg{article: a, errs: errs}
			},
		},
		effect.FetchComments{
			Request: func(s session.Session) api.Descriptor {
				return api.Comments(slug, s.Cred())
			},
			Done: func(cs []models.Comment, errs api.Errors) tea.Msg {
				return commentsLoadedMsg{comments: cs, errs: errs}
			},
		},
	}
	return m, eff
}

func (m articleModel) link() string {
	return m.env.webBase + "/article/" + m.slug
}

func (m articleModel) mine() bool {
	a, ok := m.article.Peek()
	if !ok {
		return false
	}
	username, ok := m.env.session.Username()
	return ok && a.Author.Username == username
}

func (m articleModel) update(msg tea.Msg) (page, effect.Effect) {
	switch msg := msg.(type) {
	case articleLoadedMsg:
		if msg.errs != nil {
			m.article = m.article.Fail()
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		m.article = m.article.Succeed(msg.article)
		return m, effect.None{}

	case commentsLoadedMsg:
		if msg.errs != nil {
			m.comments = m.comments.Fail()
			return m, effect.None{}
		}
		m.comments = m.comments.Succeed(msg.comments)
		return m, effect.None{}

	case favoriteDoneMsg:
		if msg.errs != nil {
			return m, effect.Log{Message: strings.Join(msg.errs, "; ")}
		}
		m.article = m.article.Succeed(msg.article)
		return m, effect.None{}

	case followDoneMsg:
		if msg.errs != nil {
			return m, effect.Log{Message: strings.Join(msg.errs, "; ")}
		}
		if a, ok := m.article.Peek(); ok {
			a.Author = msg.author
			m.article = m.article.Succeed(a)
		}
		return m, effect.None{}

	case commentPostedMsg:
		if msg.errs != nil {
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		m.composing = false
		m.input.Reset()
		if cs, ok := m.comments.Peek(); ok {
			m.comments = m.comments.Succeed(append([]models.Comment{msg.comment}, cs...))
		}
		return m, effect.None{}

	case commentDeletedMsg:
		if msg.errs != nil {
			return m, effect.Log{Message: strings.Join(msg.errs, "; ")}
		}
		if cs, ok := m.comments.Peek(); ok {
			kept := make([]models.Comment, 0, len(cs))
			for _, c := range cs {
				if c.ID != msg.id {
					kept = append(kept, c)
				}
			}
			m.comments = m.comments.Succeed(kept)
			if m.cursor >= len(kept) && m.cursor > 0 {
				m.cursor--
			}
		}
		return m, effect.None{}

	case articleDeletedMsg:
		if msg.errs != nil {
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		return m, effect.ReplaceRoute{Route: router.Home()}

	case tea.KeyMsg:
		if m.composing {
			return m.composeKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, effect.None{}
}

func (m articleModel) composeKey(msg tea.KeyMsg) (page, effect.Effect) {
	switch {
	case key.Matches(msg, keys.dismiss):
		m.errs = nil
		return m, effect.None{}
	case key.Matches(msg, keys.esc):
		m.composing = false
		m.input.Blur()
		return m, effect.None{}
	case key.Matches(msg, keys.submit):
		body := strings.TrimSpace(m.input.Value())
		cred, ok := m.env.session.Credential()
		if body == "" || !ok {
			return m, effect.None{}
		}
		return m, effect.PostComment{
			Request: api.PostComment(m.slug, body, cred),
			Done: func(c models.Comment, errs api.Errors) tea.Msg {
				return commentPostedMsg{comment: c, errs: errs}
			},
		}
	}
	m.input, _ = m.input.Update(msg)
	return m, effect.None{}
}

func (m articleModel) handleKey(msg tea.KeyMsg) (page, effect.Effect) {
	a, loaded := m.article.Peek()
	comments, _ := m.comments.Peek()

	switch {
	case key.Matches(msg, keys.dismiss):
		m.errs = nil

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(comments)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.favorite):
		if !loaded {
			break
		}
		cred, ok := m.env.session.Credential()
		if !ok {
			return m, effect.PushRoute{Route: router.Login()}
		}
		req := api.Favorite(m.slug, cred)
		if a.Favorited {
			req = api.Unfavorite(m.slug, cred)
		}
		return m, effect.FavorArticle{
			Request: req,
			Done: func(article models.Article, errs api.Errors) tea.Msg {
				return favoriteDoneMsg{article: article, errs: errs}
			},
		}

	case key.Matches(msg, keys.follow):
		if !loaded || m.mine() {
			break
		}
		cred, ok := m.env.session.Credential()
		if !ok {
			return m, effect.PushRoute{Route: router.Login()}
		}
		req := api.Follow(a.Author.Username, cred)
		if a.Author.Following {
			req = api.Unfollow(a.Author.Username, cred)
		}
		return m, effect.ChangeFollow{
			Request: req,
			Done: func(author models.Author, errs api.Errors) tea.Msg {
				return followDoneMsg{author: author, errs: errs}
			},
		}

	case key.Matches(msg, keys.edit):
		if m.mine() {
			return m, effect.PushRoute{Route: router.EditArticle(m.slug)}
		}

	case key.Matches(msg, keys.delete):
		if !m.mine() {
			break
		}
		cred, _ := m.env.session.Credential()
		return m, effect.Delete{
			Request: api.DeleteArticle(m.slug, cred),
			Done: func(errs api.Errors) tea.Msg {
				return articleDeletedMsg{errs: errs}
			},
		}

	case key.Matches(msg, keys.comment):
		if m.env.session.IsGuest() {
			return m, effect.PushRoute{Route: router.Login()}
		}
		m.composing = true
		m.input.Focus()

	case key.Matches(msg, keys.copyLink):
		return m, effect.CopyToClipboard{Text: m.link()}

	case key.Matches(msg, keys.openWeb):
		return m, effect.LoadURL{URL: m.link()}

	case key.Matches(msg, keys.profile):
		if loaded {
			return m, effect.PushRoute{Route: router.Profile(a.Author.Username)}
		}

	case msg.String() == "x":
		if m.cursor >= len(comments) {
			break
		}
		c := comments[m.cursor]
		username, ok := m.env.session.Username()
		if !ok || c.Author.Username != username {
			break
		}
		cred, _ := m.env.session.Credential()
		id := c.ID
		return m, effect.Delete{
			Request: api.DeleteComment(m.slug, id, cred),
			Done: func(errs api.Errors) tea.Msg {
				return commentDeletedMsg{id: id, errs: errs}
			},
		}
	}
	return m, effect.None{}
}

func (m articleModel) typing() bool { return m.composing }

func (m articleModel) view() string {
	var b strings.Builder
	b.WriteString(renderErrors(m.errs))

	switch {
	case m.article.Loading():
		return b.String() + renderLoading(m.article.Label())
	case m.article.Failed():
		return b.String() + renderLoadFailure(m.article.Label())
	}
	a, _ := m.article.Peek()

	heart := "♡"
	if a.Favorited {
		heart = "♥"
	}
	follow := "follow"
	if a.Author.Following {
		follow = "unfollow"
	}

	b.WriteString(titleStyle.Render(a.Title) + "\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s · %s · %s %d",
		a.Author.Username, formatDate(a.CreatedAt, m.env.zone), heart, a.FavoritesCount)) + "\n")
	if len(a.TagList) > 0 {
		b.WriteString(tagStyle.Render(strings.Join(a.TagList, " · ")) + "\n")
	}
	b.WriteString("\n" + a.Body + "\n\n")

	b.WriteString(titleStyle.Render("Comments") + "\n")
	switch {
	case m.comments.Loading():
		b.WriteString(renderLoading(m.comments.Label()) + "\n")
	case m.comments.Failed():
		b.WriteString(renderLoadFailure(m.comments.Label()) + "\n")
	default:
		comments, _ := m.comments.Peek()
		if len(comments) == 0 {
			b.WriteString(metaStyle.Render("no comments yet") + "\n")
		}
		for i, c := range comments {
			marker := "  "
			if i == m.cursor {
				marker = selectedStyle.Render("> ")
			}
			b.WriteString(marker + c.Body + "\n")
			b.WriteString("  " + metaStyle.Render(c.Author.Username+" · "+formatDate(c.CreatedAt, m.env.zone)) + "\n")
		}
	}

	if m.composing {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(helpStyle.Render("ctrl+s post  esc cancel"))
		return b.String()
	}

	help := "f favorite  w " + follow + "  m comment  c copy link  o open in browser"
	if m.mine() {
		help = "e edit  d delete  m comment  c copy link  o open in browser"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}
