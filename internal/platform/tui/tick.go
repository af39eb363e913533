// Package tui provides the Bubble Tea integration for tui-2048.
// It handles the terminal UI loop, key mapping, theming, persistence hooks
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a status message stays visible.
const flashDuration = 2 * time.Second

// clearFlashMsg is sent when a status message expires.
// The id guards against clearing a newer message.
type clearFlashMsg struct {
	id int
}

// clearFlashCmd returns a Bubble Tea command that expires the status message with the given id.
func clearFlashCmd(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}
