package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/models"
)

type loginModel struct {
	env        *env
	inputs     []textinput.Model
	focus      int
	submitting bool
	errs       api.Errors
}

func newLoginModel(e *env) (loginModel, effect.Effect) {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return loginModel{env: e, inputs: inputs}, effect.None{}
}

func (m loginModel) update(msg tea.Msg) (page, effect.Effect) {
	switch msg := msg.(type) {
	case authedMsg:
		if msg.errs != nil {
			m.submitting = false
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		return m, effect.ReplaceSession{Session: session.FromViewer(msg.viewer)}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.dismiss):
			m.errs = nil
			return m, effect.None{}
		case key.Matches(msg, keys.esc):
			return m, effect.Back{}
		case key.Matches(msg, keys.submit):
			return m.submit()
		case key.Matches(msg, keys.switchAuth):
			return m, effect.ReplaceRoute{Route: router.Register()}
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			return m.setFocus(m.focus + 1), effect.None{}
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			return m.setFocus(m.focus - 1), effect.None{}
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
		if m.submitting {
			return m, effect.None{}
		}
		m.inputs[m.focus], _ = m.inputs[m.focus].Update(msg)
		return m, effect.None{}
	}
	return m, effect.None{}
}

func (m loginModel) setFocus(next int) loginModel {
	if next < 0 {
		next = len(m.inputs) - 1
	}
	next %= len(m.inputs)
	m.inputs[m.focus].Blur()
	m.inputs[next].Focus()
	m.focus = next
	return m
}

func (m loginModel) submit() (page, effect.Effect) {
	if m.submitting {
		return m, effect.None{}
	}
	m.submitting = true

	body := models.Login{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	return m, effect.UpsertUser{
		Request: api.Login(body),
		Done: func(v api.Viewer, errs api.Errors) tea.Msg {
			return authedMsg{viewer: v, errs: errs}
		},
	}
}

func (m loginModel) typing() bool { return true }

func (m loginModel) view() string {
	out := titleStyle.Render("Sign in") + "\n"
	out += navStyle.Render("need an account? ctrl+r to sign up") + "\n\n"
	out += renderErrors(m.errs)
	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n\n"
	if m.submitting {
		out += metaStyle.Render("signing in...") + "\n"
	}
	out += helpStyle.Render("tab next field  enter sign in  esc back")
	return out
}
