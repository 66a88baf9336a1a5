package forgot

import (
	"strings"

	"photohunter-cli/logger"
	"photohunter-cli/tui/components/footer"
	"photohunter-cli/tui/keys"
	"photohunter-cli/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// URLOpener opens a link outside the terminal
type URLOpener interface {
	Open(rawURL string) error
}

// openedMsg reports the outcome of opening the reset page
type openedMsg struct {
	err error
}

// Component shows where to reset a forgotten password
type Component struct {
	resetURL string
	opener   URLOpener
	status   string
	failed   bool
	keys     *keys.Handler
	styles   theme.Styles
	footer   *footer.Component
}

// New creates the password reset screen
func New(resetURL string, opener URLOpener, styles theme.Styles) *Component {
	return &Component{
		resetURL: resetURL,
		opener:   opener,
		keys:     keys.NewHandler(),
		styles:   styles,
		footer:   footer.New(styles.Muted),
	}
}

// Init initializes the component
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update handles messages for the password reset screen
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.keys.IsEnter(msg) {
			return c, c.Open()
		}
	case openedMsg:
		if msg.err != nil {
			c.failed = true
			c.status = "Could not open the browser. Visit the link above."
			return c, nil
		}
		c.failed = false
		c.status = "Opened in your browser."
	}
	return c, nil
}

// Configured reports whether there is a reset page to open
func (c *Component) Configured() bool {
	return c.resetURL != ""
}

// Open returns a command that opens the reset page, or nil when none is configured
func (c *Component) Open() tea.Cmd {
	if !c.Configured() {
		return nil
	}
	opener, resetURL := c.opener, c.resetURL
	return func() tea.Msg {
		err := opener.Open(resetURL)
		if err != nil {
			logger.Log.Warnw("failed to open reset page", "url", resetURL, "error", err)
		}
		return openedMsg{err: err}
	}
}

// View renders the password reset screen
func (c *Component) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render("Forgot your Password?"))
	b.WriteString("\n\n")
	if !c.Configured() {
		b.WriteString(c.styles.Muted.Render("Password reset is not configured."))
		b.WriteString("\n")
		b.WriteString(c.styles.Muted.Render("Set PASSWORD_RESET_URL to enable it."))
		return c.styles.Box.Render(b.String()) + "\n" + c.footer.View(footer.BackBinding, footer.QuitBinding)
	}

	b.WriteString("Reset your password on the web:\n\n")
	b.WriteString(c.styles.FocusedLink.Render(c.resetURL))

	if c.status != "" {
		style := c.styles.Notice
		if c.failed {
			style = c.styles.Error
		}
		b.WriteString("\n\n" + style.Render(c.status))
	}

	return c.styles.Box.Render(b.String()) + "\n" + c.footer.View(keys.Link()...)
}
