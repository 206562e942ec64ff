package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/effect"
)

type notFoundModel struct{}

func newNotFoundModel() notFoundModel {
	return notFoundModel{}
}

func (m notFoundModel) update(tea.Msg) (page, effect.Effect) {
	return m, effect.None{}
}

func (m notFoundModel) typing() bool { return false }

func (m notFoundModel) view() string {
	return titleStyle.Render("Page not found") + "\n\n" +
		helpStyle.Render("g home  backspace back")
}
