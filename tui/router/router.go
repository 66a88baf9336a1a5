package router

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Route is an in-app path
type Route string

const (
	// Restoring - startup check of a stored session
	Restoring Route = "/restoring"

	// Home - profile overview shown to a signed-in user
	Home Route = "/"

	// Login - email/password form
	Login Route = "/login"

	// Registration - account creation form
	Registration Route = "/registration"

	// Forgot - password reset instructions
	Forgot Route = "/forgot"

	// Locations - own, favourite and public photo locations
	Locations Route = "/locations"
)

var known = map[Route]bool{
	Restoring:    true,
	Home:         true,
	Login:        true,
	Registration: true,
	Forgot:       true,
	Locations:    true,
}

// IsValid reports whether r is a route the application can show
func (r Route) IsValid() bool {
	return known[r]
}

// Navigator is what screens use to change route
type Navigator interface {
	NavigateTo(path string) tea.Cmd
}

// Transition represents a route change
type Transition struct {
	From Route
	To   Route
}

// String returns a human-readable representation of the transition
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// Router keeps the current route and the history behind it
type Router struct {
	current Route
	history []Route
}

// New creates a router positioned at initial
func New(initial Route) *Router {
	return &Router{
		current: initial,
		history: []Route{initial},
	}
}

// Current returns the current route
func (r *Router) Current() Route {
	return r.current
}

// NavigateTo switches to path immediately and returns a command announcing the change.
// Unknown paths leave the router untouched and produce an ErrorMsg.
func (r *Router) NavigateTo(path string) tea.Cmd {
	to := Route(path)
	if !to.IsValid() {
		return func() tea.Msg {
			return ErrorMsg{Error: fmt.Errorf("unknown route %q", path)}
		}
	}

	transition := Transition{From: r.current, To: to}
	r.current = to
	r.history = append(r.history, to)

	return func() tea.Msg {
		return NavigatedMsg{Transition: transition}
	}
}

// CanGoBack returns true if there's a previous route to go back to
func (r *Router) CanGoBack() bool {
	return len(r.history) > 1
}

// Back returns to the previous route
func (r *Router) Back() tea.Cmd {
	if !r.CanGoBack() {
		return nil
	}

	r.history = r.history[:len(r.history)-1]
	previous := r.history[len(r.history)-1]

	transition := Transition{From: r.current, To: previous}
	r.current = previous

	return func() tea.Msg {
		return NavigatedMsg{Transition: transition}
	}
}

// Reset drops the history and starts over at path, e.g. after login or logout
func (r *Router) Reset(path Route) tea.Cmd {
	if !path.IsValid() {
		return func() tea.Msg {
			return ErrorMsg{Error: fmt.Errorf("unknown route %q", path)}
		}
	}

	transition := Transition{From: r.current, To: path}
	r.current = path
	r.history = []Route{path}

	return func() tea.Msg {
		return NavigatedMsg{Transition: transition}
	}
}

// History returns a copy of the route history
func (r *Router) History() []Route {
	history := make([]Route, len(r.history))
	copy(history, r.history)
	return history
}

// Messages for router events
type (
	// NavigatedMsg is sent after the current route changed
	NavigatedMsg struct {
		Transition Transition
	}

	// ErrorMsg is sent when navigation failed
	ErrorMsg struct {
		Error error
	}
)
