package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	back       key.Binding
	home       key.Binding
	signIn     key.Binding
	register   key.Binding
	settings   key.Binding
	compose    key.Binding
	profile    key.Binding
	favorite   key.Binding
	follow     key.Binding
	edit       key.Binding
	delete     key.Binding
	comment    key.Binding
	copyLink   key.Binding
	openWeb    key.Binding
	nextPage   key.Binding
	prevPage   key.Binding
	submit     key.Binding
	logout     key.Binding
	switchAuth key.Binding
	dismiss    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	back:       key.NewBinding(key.WithKeys("backspace")),
	home:       key.NewBinding(key.WithKeys("g")),
	signIn:     key.NewBinding(key.WithKeys("i")),
	register:   key.NewBinding(key.WithKeys("r")),
	settings:   key.NewBinding(key.WithKeys("s")),
	compose:    key.NewBinding(key.WithKeys("n")),
	profile:    key.NewBinding(key.WithKeys("u")),
	favorite:   key.NewBinding(key.WithKeys("f")),
	follow:     key.NewBinding(key.WithKeys("w")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	comment:    key.NewBinding(key.WithKeys("m")),
	copyLink:   key.NewBinding(key.WithKeys("c")),
	openWeb:    key.NewBinding(key.WithKeys("o")),
	nextPage:   key.NewBinding(key.WithKeys("]", "right")),
	prevPage:   key.NewBinding(key.WithKeys("[", "left")),
	submit:     key.NewBinding(key.WithKeys("ctrl+s")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	switchAuth: key.NewBinding(key.WithKeys("ctrl+r")),
	dismiss:    key.NewBinding(key.WithKeys("ctrl+x")),
}
