package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
)

// autoplayCmd wakes the carousel after interval. Bubble Tea cannot revoke a
// scheduled tick, so a superseded one still arrives and is dropped by
// Engine.Fire.
func autoplayCmd(t chrome.Tick, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return AutoplayMsg{Tick: t}
	})
}

// navigateCmd follows a navigation link.
func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
