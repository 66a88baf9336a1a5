package keys

import (
	"photohunter-cli/tui/components/footer"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GlobalKeyMap defines key bindings shared by all screens
type GlobalKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	MenuQuit key.Binding
}

// DefaultGlobalKeys returns the default key bindings.
// Form screens accept free text, so only ctrl+c quits there; q quits from menus.
func DefaultGlobalKeys() GlobalKeyMap {
	return GlobalKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		MenuQuit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Handler provides a centralized way to handle common key patterns
type Handler struct {
	keys GlobalKeyMap
}

// NewHandler creates a new key handler with default bindings
func NewHandler() *Handler {
	return &Handler{
		keys: DefaultGlobalKeys(),
	}
}

// IsQuit returns true if the key message quits from any screen
func (h *Handler) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Quit)
}

// IsMenuQuit returns true if the key message quits from a menu screen
func (h *Handler) IsMenuQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.MenuQuit)
}

// IsBack returns true if the key message is a back command
func (h *Handler) IsBack(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Back)
}

// IsEnter returns true if the key message is an enter command
func (h *Handler) IsEnter(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Enter)
}

// IsNext returns true if the key message moves focus forward
func (h *Handler) IsNext(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Next)
}

// IsPrev returns true if the key message moves focus backward
func (h *Handler) IsPrev(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Prev)
}

// IsNextTab returns true if the key message switches to the next tab.
// Unlike IsNext it leaves the arrow keys to the focused table.
func (h *Handler) IsNextTab(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.NextTab)
}

// IsPrevTab returns true if the key message switches to the previous tab
func (h *Handler) IsPrevTab(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.PrevTab)
}

// Login returns footer bindings for the login screen
func Login() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.TabBinding,
		footer.SubmitBinding,
		footer.QuitBinding,
	}
}

// Form returns footer bindings for form screens reachable from login
func Form() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.TabBinding,
		footer.SubmitBinding,
		footer.BackBinding,
		footer.QuitBinding,
	}
}

// Link returns footer bindings for screens that only open a link
func Link() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.OpenBinding,
		footer.BackBinding,
		footer.QuitBinding,
	}
}

// Menu returns footer bindings for menu screens
func Menu() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.NavigateBinding,
		footer.EnterBinding,
		footer.MenuQuitBinding,
	}
}

// Locations returns footer bindings for the locations screen
func Locations() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.TabBinding,
		footer.NavigateBinding,
		footer.DetailsBinding,
		footer.BackBinding,
		footer.QuitBinding,
	}
}
