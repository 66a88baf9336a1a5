package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents the detected terminal theme
type Theme int

const (
	ThemeUnknown Theme = iota
	ThemeLight
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Detector handles terminal theme detection
type Detector struct {
	getenv            func(string) string
	hasDarkBackground func() bool
}

// NewDetector creates a new theme detector
func NewDetector() *Detector {
	return &Detector{
		getenv:            os.Getenv,
		hasDarkBackground: lipgloss.HasDarkBackground,
	}
}

// DetectTheme picks a theme from PHOTOHUNTER_THEME, then COLORFGBG, then by
// asking the terminal for its background colour.
func (d *Detector) DetectTheme() Theme {
	switch strings.ToLower(d.getenv("PHOTOHUNTER_THEME")) {
	case "light":
		return ThemeLight
	case "dark":
		return ThemeDark
	}

	if theme := d.detectFromColorFGBG(); theme != ThemeUnknown {
		return theme
	}

	if d.hasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// detectFromColorFGBG reads the "fg;bg" pair many terminals export
func (d *Detector) detectFromColorFGBG() Theme {
	colorfgbg := d.getenv("COLORFGBG")
	if colorfgbg == "" {
		return ThemeUnknown
	}

	parts := strings.Split(colorfgbg, ";")
	if len(parts) < 2 {
		return ThemeUnknown
	}

	switch strings.TrimSpace(parts[len(parts)-1]) {
	case "7", "15":
		return ThemeLight
	case "0", "8":
		return ThemeDark
	}
	return ThemeUnknown
}
