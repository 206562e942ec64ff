package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/effect"
	"github.com/dmy/realworld-tui/internal/session"
)

const (
	settingsAvatar = iota
	settingsUsername
	settingsBio
	settingsEmail
	settingsPassword
)

// settingsModel edits the viewer's own account. The form is filled from a
// fresh fetch of the server-side record rather than from the session, so
// edits made elsewhere are visible.
type settingsModel struct {
	env        *env
	inputs     []textinput.Model
	focus      int
	loaded     bool
	submitting bool
	errs       api.Errors
}

func newSettingsModel(e *env) (settingsModel, effect.Effect) {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[settingsPassword].EchoMode = textinput.EchoPassword
	inputs[settingsPassword].EchoCharacter = '*'
	inputs[settingsAvatar].Focus()

	eff := effect.FetchSettings{
		Request: func(s session.Session) api.Descriptor {
			cred, _ := s.Credential()
			return api.FetchUser(cred)
		},
		Done: func(v api.Viewer, errs api.Errors) tea.Msg {
			return settingsLoadedMsg{viewer: v, errs: errs}
		},
	}
	return settingsModel{env: e, inputs: inputs}, eff
}

func (m settingsModel) update(msg tea.Msg) (page, effect.Effect) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.errs != nil {
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		m.loaded = true
		m.inputs[settingsAvatar].SetValue(msg.viewer.User.Image)
		m.inputs[settingsUsername].SetValue(msg.viewer.User.Username)
		m.inputs[settingsBio].SetValue(msg.viewer.User.Bio)
		m.inputs[settingsEmail].SetValue(msg.viewer.User.Email)
		return m, effect.None{}

	case authedMsg:
		if msg.errs != nil {
			m.submitting = false
			m.errs = append(msg.errs, m.errs...)
			return m, effect.None{}
		}
		// The server may have normalized the record; the session is rebuilt
		// from its response.
		return m, effect.ReplaceSession{Session: session.FromViewer(msg.viewer)}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.dismiss):
			m.errs = nil
			return m, effect.None{}
		case key.Matches(msg, keys.esc):
			return m, effect.Back{}
		case key.Matches(msg, keys.logout):
			return m, effect.ReplaceSession{Session: session.Guest()}
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			return m.setFocus(m.focus + 1), effect.None{}
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			return m.setFocus(m.focus - 1), effect.None{}
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.submit):
			return m.submit()
		}
		if !m.loaded || m.submitting {
			return m, effect.None{}
		}
		m.inputs[m.focus], _ = m.inputs[m.focus].Update(msg)
		return m, effect.None{}
	}
	return m, effect.None{}
}

func (m settingsModel) setFocus(next int) settingsModel {
	if next < 0 {
		next = len(m.inputs) - 1
	}
	next %= len(m.inputs)
	m.inputs[m.focus].Blur()
	m.inputs[next].Focus()
	m.focus = next
	return m
}

func (m settingsModel) submit() (page, effect.Effect) {
	if !m.loaded || m.submitting {
		return m, effect.None{}
	}
	cred, ok := m.env.session.Credential()
	if !ok {
		return m, effect.None{}
	}
	m.submitting = true

	// An empty password field means "keep the current password": the field
	// is then omitted from the request entirely.
	update := api.UserUpdate{
		Image:    strings.TrimSpace(m.inputs[settingsAvatar].Value()),
		Username: strings.TrimSpace(m.inputs[settingsUsername].Value()),
		Bio:      m.inputs[settingsBio].Value(),
		Email:    strings.TrimSpace(m.inputs[settingsEmail].Value()),
		Password: m.inputs[settingsPassword].Value(),
	}
	return m, effect.UpsertUser{
		Request: api.UpdateUser(update, cred),
		Done: func(v api.Viewer, errs api.Errors) tea.Msg {
			return authedMsg{viewer: v, errs: errs}
		},
	}
}

func (m settingsModel) typing() bool { return true }

func (m settingsModel) view() string {
	out := titleStyle.Render("Your settings") + "\n\n"
	out += renderErrors(m.errs)
	if !m.loaded && m.errs == nil {
		return out + renderLoading("settings")
	}
	out += "Avatar URL:   [" + m.inputs[settingsAvatar].View() + "]\n"
	out += "Username:     [" + m.inputs[settingsUsername].View() + "]\n"
	out += "Bio:          [" + m.inputs[settingsBio].View() + "]\n"
	out += "Email:        [" + m.inputs[settingsEmail].View() + "]\n"
	out += "New password: [" + m.inputs[settingsPassword].View() + "]\n\n"
	if m.submitting {
		out += metaStyle.Render("saving...") + "\n"
	}
	out += helpStyle.Render("tab next field  enter save  ctrl+l sign out  esc back")
	return out
}
