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

type registerModel struct {
	env        *env
	inputs     []textinput.Model
	focus      int
	submitting bool
	errs       api.Errors
}

func newRegisterModel(e *env) (registerModel, effect.Effect) {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[0].Focus()

	return registerModel{env: e, inputs: inputs}, effect.None{}
}

func (m registerModel) update(msg tea.Msg) (page, effect.Effect) {
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
			return m, effect.ReplaceRoute{Route: router.Login()}
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

func (m registerModel) setFocus(next int) registerModel {
	if next < 0 {
		next = len(m.inputs) - 1
	}
	next %= len(m.inputs)
	m.inputs[m.focus].Blur()
	m.inputs[next].Focus()
	m.focus = next
	return m
}

func (m registerModel) submit() (page, effect.Effect) {
	if m.submitting {
		return m, effect.None{}
	}
	m.submitting = true

	body := models.Registration{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Password: m.inputs[2].Value(),
	}
	return m, effect.UpsertUser{
		Request: api.Register(body),
		Done: func(v api.Viewer, errs api.Errors) tea.Msg {
			return authedMsg{viewer: v, errs: errs}
		},
	}
}

func (m registerModel) typing() bool { return true }

func (m registerModel) view() string {
	out := titleStyle.Render("Sign up") + "\n"
	out += navStyle.Render("have an account? ctrl+r to sign in") + "\n\n"
	out += renderErrors(m.errs)
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Email:    [" + m.inputs[1].View() + "]\n"
	out += "Password: [" + m.inputs[2].View() + "]\n\n"
	if m.submitting {
		out += metaStyle.Render("signing up...") + "\n"
	}
	out += helpStyle.Render("tab next field  enter sign up  esc back")
	return out
}
