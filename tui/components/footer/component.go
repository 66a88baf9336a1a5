package footer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Component represents a footer with key hints
type Component struct {
	style lipgloss.Style
}

// New creates a new footer component rendered with style
func New(style lipgloss.Style) *Component {
	return &Component{style: style}
}

// KeyBinding represents a single key hint
type KeyBinding struct {
	Key         string
	Description string
}

// View renders the footer with the provided key bindings
func (c *Component) View(bindings ...KeyBinding) string {
	var parts []string
	for _, binding := range bindings {
		if part := binding.Format(); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	return c.style.Render(strings.Join(parts, "  "))
}

// Format renders a key binding in the standard format
func (kb KeyBinding) Format() string {
	if kb.Key == "" || kb.Description == "" {
		return ""
	}
	return "[" + kb.Key + "] " + kb.Description
}

// Common key bindings for reuse
var (
	QuitBinding     = KeyBinding{Key: "ctrl+c", Description: "quit"}
	MenuQuitBinding = KeyBinding{Key: "q", Description: "quit"}
	BackBinding     = KeyBinding{Key: "esc", Description: "back"}
	EnterBinding    = KeyBinding{Key: "enter", Description: "select"}
	SubmitBinding   = KeyBinding{Key: "enter", Description: "submit"}
	OpenBinding     = KeyBinding{Key: "enter", Description: "open in browser"}
	DetailsBinding  = KeyBinding{Key: "enter", Description: "details"}
	TabBinding      = KeyBinding{Key: "tab", Description: "switch"}
	NavigateBinding = KeyBinding{Key: "↑/↓ or k/j", Description: "move"}
)
