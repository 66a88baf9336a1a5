package login

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LoginSuccessMsg is sent when a submit attempt was accepted
type LoginSuccessMsg struct {
	ScreenID string
	Attempt  int
}

// LoginErrorMsg is sent when a submit attempt was rejected.
// Message is empty when the server supplied none.
type LoginErrorMsg struct {
	ScreenID string
	Attempt  int
	Message  string
}

// SessionStartedMsg tells the application that the user is now signed in
type SessionStartedMsg struct{}

// SessionStartedCommand creates a command that signals a new session
func SessionStartedCommand() tea.Cmd {
	return func() tea.Msg {
		return SessionStartedMsg{}
	}
}
