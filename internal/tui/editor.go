package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/remote"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/models"
)

const (
	editorTitle = iota
	editorDescription
	editorTags
	editorBody
)

// editorModel is the article form, used both for new articles (empty slug)
// and for editing an existing one.
type editorModel struct {
	env        *env
	slug       string
	title      textinput.Model
	desc       textinput.Model
	tags       textinput.Model
	body       textarea.Model
	focus      int
	original   remote.Resource[models.Article]
	submitting bool
	errs       api.Errors
}

func newEditorModel(e *env, slug string) (editorModel, effect.Effect) {
	m := editorModel{env: e, slug: slug}
	m.title = textinput.New()
	m.title.Width = 60
	m.desc = textinput.New()
	m.desc.Width = 60
	m.tags = textinput.New()
	m.tags.Width = 60
	m.body = textarea.New()
	m.body.SetWidth(60)
	m.body.SetHeight(8)
	m.title.Focus()

	if slug == "" {
		return m, effect.None{}
	}

	m.original = remote.Start[models.Article]("article " + slug)
	eff := effect.FetchArticle{
		Request: func(s session.Session) api.Descriptor {
			return api.GetArticle(slug, s.Cred())
		},
		Done: func(a models.Article, errs api.Errors) tea.Msg {
			return articleLoadedMsg{article: a, errs: errs}
		},
	}
	return m, eff
}

func (m editorModel) editing() bool { return m.slug != "" }

// ready reports whether the form can accept input. A new article is always
// ready; an edit waits for the existing article to load.
func (m editorModel) ready() bool {
	if !m.editing() {
		return true
	}
	_, ok := m.original.Peek()
	return ok
}

func (m editorModel) update(msg tea.Msg) (page, effect.Effect) {
	switch msg := msg.(type) {
	case articleLoadedMsg:
		if msg.errs != nil {
			m.original = m.original.Fail()
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		m.original = m.original.Succeed(msg.article)
		m.title.SetValue(msg.article.Title)
		m.desc.SetValue(msg.article.Description)
		m.tags.SetValue(strings.Join(msg.article.TagList, ", "))
		m.body.SetValue(msg.article.Body)
		return m, effect.None{}

	case articleSavedMsg:
		if msg.errs != nil {
			m.submitting = false
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		return m, effect.PushRoute{Route: router.Article(msg.article.Slug)}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.dismiss):
			m.errs = nil
			return m, effect.None{}
		case key.Matches(msg, keys.esc):
			return m, effect.Back{}
		case key.Matches(msg, keys.submit):
			return m.submit()
		case key.Matches(msg, keys.tab):
			return m.setFocus(m.focus + 1), effect.None{}
		case key.Matches(msg, keys.backtab):
			return m.setFocus(m.focus - 1), effect.None{}
		case key.Matches(msg, keys.enter):
			// Enter submits from the single-line fields and inserts a
			// newline inside the body.
			if m.focus != editorBody {
				return m.submit()
			}
		}
		if !m.ready() || m.submitting {
			return m, effect.None{}
		}
		switch m.focus {
		case editorTitle:
			m.title, _ = m.title.Update(msg)
		case editorDescription:
			m.desc, _ = m.desc.Update(msg)
		case editorTags:
			m.tags, _ = m.tags.Update(msg)
		case editorBody:
			m.body, _ = m.body.Update(msg)
		}
		return m, effect.None{}
	}
	return m, effect.None{}
}

func (m editorModel) setFocus(next int) editorModel {
	if next < 0 {
		next = editorBody
	}
	next %= 4
	m.title.Blur()
	m.desc.Blur()
	m.tags.Blur()
	m.body.Blur()
	m.focus = next
	switch next {
	case editorTitle:
		m.title.Focus()
	case editorDescription:
		m.desc.Focus()
	case editorTags:
		m.tags.Focus()
	case editorBody:
		m.body.Focus()
	}
	return m
}

func (m editorModel) draft() models.ArticleDraft {
	var tags []string
	for _, t := range strings.Split(m.tags.Value(), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return models.ArticleDraft{
		Title:       strings.TrimSpace(m.title.Value()),
		Description: strings.TrimSpace(m.desc.Value()),
		Body:        m.body.Value(),
		TagList:     tags,
	}
}

func (m editorModel) submit() (page, effect.Effect) {
	if !m.ready() || m.submitting {
		return m, effect.None{}
	}
	cred, ok := m.env.session.Credential()
	if !ok {
		return m, effect.ReplaceRoute{Route: router.Login()}
	}
	m.submitting = true

	req := api.CreateArticle(m.draft(), cred)
	if m.editing() {
		req = api.UpdateArticle(m.slug, m.draft(), cred)
	}
	return m, effect.UpsertArticle{
		Request: req,
		Done: func(a models.Article, errs api.Errors) tea.Msg {
			return articleSavedMsg{article: a, errs: errs}
		},
	}
}

func (m editorModel) typing() bool { return true }

func (m editorModel) view() string {
	title := "New article"
	if m.editing() {
		title = "Edit article"
	}
	out := titleStyle.Render(title) + "\n\n"
	out += renderErrors(m.errs)
	if m.editing() && m.original.Loading() {
		return out + renderLoading(m.original.Label())
	}
	out += "Title:       [" + m.title.View() + "]\n"
	out += "Description: [" + m.desc.View() + "]\n"
	out += "Tags:        [" + m.tags.View() + "]\n"
	out += "Body:\n" + m.body.View() + "\n\n"
	if m.submitting {
		out += metaStyle.Render("publishing...") + "\n"
	}
	out += helpStyle.Render("tab next field  ctrl+s publish  esc back")
	return out
}
