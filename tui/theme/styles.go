package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorScheme defines colors for a specific theme
type ColorScheme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
}

// DarkTheme colors (default)
var DarkTheme = ColorScheme{
	Primary:   lipgloss.Color("#00ff00"), // Bright green
	Secondary: lipgloss.Color("#00aa00"), // Darker green
	Accent:    lipgloss.Color("#00ffaa"), // Cyan-green
	Error:     lipgloss.Color("#ff0000"), // Red
	Text:      lipgloss.Color("#ffffff"),
	Muted:     lipgloss.Color("#888888"),
	Success:   lipgloss.Color("#00aa00"),
}

// LightTheme colors
var LightTheme = ColorScheme{
	Primary:   lipgloss.Color("#006600"),
	Secondary: lipgloss.Color("#008800"),
	Accent:    lipgloss.Color("#0066aa"),
	Error:     lipgloss.Color("#cc0000"),
	Text:      lipgloss.Color("#000000"),
	Muted:     lipgloss.Color("#666666"),
	Success:   lipgloss.Color("#006600"),
}

// Styles is the set of styles every screen renders with
type Styles struct {
	Colors        ColorScheme
	Title         lipgloss.Style
	Box           lipgloss.Style
	Label         lipgloss.Style
	Error         lipgloss.Style
	Notice        lipgloss.Style
	Pending       lipgloss.Style
	Muted         lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
	Link          lipgloss.Style
	FocusedLink   lipgloss.Style
	Cursor        lipgloss.Style
}

// New builds the styles for theme
func New(theme Theme) Styles {
	colors := DarkTheme
	if theme == ThemeLight {
		colors = LightTheme
	}

	return Styles{
		Colors: colors,
		Title: lipgloss.NewStyle().
			Foreground(colors.Accent).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Accent).
			Padding(1, 4).
			Width(60),
		Label: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Width(10),
		Error: lipgloss.NewStyle().
			Foreground(colors.Error).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(colors.Success).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(colors.Accent).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(colors.Muted).
			Faint(true),
		Button: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Secondary).
			Padding(0, 2),
		FocusedButton: lipgloss.NewStyle().
			Foreground(colors.Text).
			Background(colors.Secondary).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Accent).
			Bold(true).
			Padding(0, 2),
		Link: lipgloss.NewStyle().
			Foreground(colors.Secondary).
			Underline(true),
		FocusedLink: lipgloss.NewStyle().
			Foreground(colors.Accent).
			Underline(true).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(colors.Accent),
	}
}

// Default detects the terminal theme and builds matching styles
func Default() Styles {
	return New(NewDetector().DetectTheme())
}
