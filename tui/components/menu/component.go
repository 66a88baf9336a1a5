package menu

import (
	"strings"

	"photohunter-cli/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component represents a vertical menu with selectable items
type Component struct {
	items         []string
	selectedIndex int
	styles        Styles
}

// Styles defines the visual styling for menu components
type Styles struct {
	ItemStyle      lipgloss.Style
	SelectedStyle  lipgloss.Style
	Cursor         string
	SelectedCursor string
}

// StylesFrom derives menu styles from the application theme
func StylesFrom(s theme.Styles) Styles {
	return Styles{
		ItemStyle: lipgloss.NewStyle().
			Foreground(s.Colors.Primary).
			Padding(0, 1),
		SelectedStyle: lipgloss.NewStyle().
			Foreground(s.Colors.Text).
			Background(s.Colors.Secondary).
			Bold(true).
			Padding(0, 1),
		Cursor:         "  ",
		SelectedCursor: "> ",
	}
}

// New creates a new menu component with the given items
func New(items []string, styles Styles) *Component {
	return &Component{
		items:  items,
		styles: styles,
	}
}

// GetSelectedIndex returns the current selection index
func (c *Component) GetSelectedIndex() int {
	return c.selectedIndex
}

// GetSelectedItem returns the currently selected item
func (c *Component) GetSelectedItem() string {
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.items) {
		return ""
	}
	return c.items[c.selectedIndex]
}

// SelectMsg is sent when an item is chosen with enter
type SelectMsg struct {
	SelectedIndex int
	SelectedItem  string
}

// Update handles keyboard input for menu navigation
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if len(c.items) == 0 {
		return c, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		c.selectedIndex--
		if c.selectedIndex < 0 {
			c.selectedIndex = len(c.items) - 1
		}
	case "down", "j":
		c.selectedIndex++
		if c.selectedIndex >= len(c.items) {
			c.selectedIndex = 0
		}
	case "enter":
		selected := SelectMsg{SelectedIndex: c.selectedIndex, SelectedItem: c.GetSelectedItem()}
		return c, func() tea.Msg { return selected }
	}

	return c, nil
}

// View renders the menu
func (c *Component) View() string {
	lines := make([]string, 0, len(c.items))
	for i, item := range c.items {
		cursor, style := c.styles.Cursor, c.styles.ItemStyle
		if i == c.selectedIndex {
			cursor, style = c.styles.SelectedCursor, c.styles.SelectedStyle
		}
		lines = append(lines, cursor+style.Render(item))
	}
	return strings.Join(lines, "\n")
}
