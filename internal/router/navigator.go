package router

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangedMsg announces that the current route was replaced or pushed. The
// top-level controller reacts by rebuilding the page for Route.
type ChangedMsg struct {
	Route Route
}

// Navigator owns the in-app navigation history. Push and Replace do not
// change any page themselves; they emit a ChangedMsg into the message loop
// so that route changes triggered by effects and by key presses flow
// through the same path.
type Navigator struct {
	stack []Route
}

// NewNavigator starts the history at initial.
func NewNavigator(initial Route) *Navigator {
	return &Navigator{stack: []Route{initial}}
}

// Current returns the route on top of the history.
func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Push appends route to the history and announces the change.
func (n *Navigator) Push(route Route) tea.Cmd {
	n.stack = append(n.stack, route)
	return announce(route)
}

// Replace swaps the top of the history for route and announces the change.
// The replaced entry is unreachable afterwards.
func (n *Navigator) Replace(route Route) tea.Cmd {
	n.stack[len(n.stack)-1] = route
	return announce(route)
}

// Back pops the history and announces the uncovered route. It reports false
// when already at the bottom of the stack.
func (n *Navigator) Back() (tea.Cmd, bool) {
	if len(n.stack) < 2 {
		return nil, false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return announce(n.Current()), true
}

func announce(route Route) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{Route: route}
	}
}

// LoadURL hands rawURL to the system browser. This is a full hand-off out
// of app state: nothing about the outcome flows back into the message loop
// and failures are swallowed.
func LoadURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", rawURL)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
		default:
			cmd = exec.Command("xdg-open", rawURL)
		}
		_ = cmd.Start()
		return nil
	}
}
