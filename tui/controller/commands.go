package controller

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionRestoredMsg reports whether a usable session was found at startup
type SessionRestoredMsg struct {
	Valid   bool
	Expired bool
}

// restoreSessionCmd checks the stored session
func (c *Controller) restoreSessionCmd() tea.Cmd {
	store := c.deps.Store
	return func() tea.Msg {
		if store.HasSession() {
			return SessionRestoredMsg{Valid: true}
		}
		return SessionRestoredMsg{Expired: store.HasExpiredSession()}
	}
}
