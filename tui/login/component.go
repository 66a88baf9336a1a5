package login

import (
	"context"
	"strings"

	"photohunter-cli/auth"
	"photohunter-cli/logger"
	"photohunter-cli/tui/components/footer"
	"photohunter-cli/tui/keys"
	"photohunter-cli/tui/router"
	"photohunter-cli/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Focusable items, in tab order
const (
	focusEmail = iota
	focusPassword
	focusSignIn
	focusForgot
	focusRegistration
	focusCount
)

// Component is the login screen
type Component struct {
	id        string
	inputs    []textinput.Model
	focusIdx  int
	errorMsg  string
	notice    string
	loggingIn bool
	attempt   int
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc

	session auth.Session
	router  router.Navigator
	keys    *keys.Handler
	styles  theme.Styles
	footer  *footer.Component
}

// New creates a login screen. Every visit to the login route gets a fresh one.
func New(session auth.Session, nav router.Navigator, styles theme.Styles) *Component {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Focus()
	email.CharLimit = 254
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	ctx, cancel := context.WithCancel(context.Background())

	return &Component{
		id:      uuid.NewString(),
		inputs:  []textinput.Model{email, password},
		ctx:     ctx,
		cancel:  cancel,
		session: session,
		router:  nav,
		keys:    keys.NewHandler(),
		styles:  styles,
		footer:  footer.New(styles.Muted),
	}
}

// Init initializes the login component
func (c *Component) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login component
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKey(msg)
	case LoginSuccessMsg:
		if !c.owns(msg.ScreenID, msg.Attempt) {
			return c, nil
		}
		c.loggingIn = false
		return c, SessionStartedCommand()
	case LoginErrorMsg:
		if !c.owns(msg.ScreenID, msg.Attempt) {
			return c, nil
		}
		c.loggingIn = false
		c.errorMsg = msg.Message
		return c, nil
	}

	return c, nil
}

func (c *Component) handleKey(msg tea.KeyMsg) (*Component, tea.Cmd) {
	switch {
	case c.keys.IsNext(msg):
		c.setFocus(c.focusIdx + 1)
		return c, nil
	case c.keys.IsPrev(msg):
		c.setFocus(c.focusIdx - 1)
		return c, nil
	case c.keys.IsEnter(msg):
		switch c.focusIdx {
		case focusEmail:
			c.setFocus(focusPassword)
			return c, nil
		case focusPassword, focusSignIn:
			return c, c.Submit()
		case focusForgot:
			return c, c.GoToForgotPassword()
		case focusRegistration:
			return c, c.GoToRegistration()
		}
	}

	if c.focusIdx > focusPassword {
		return c, nil
	}
	var cmd tea.Cmd
	c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
	return c, cmd
}

// owns reports whether a result belongs to the latest attempt of this live screen
func (c *Component) owns(screenID string, attempt int) bool {
	return !c.closed && screenID == c.id && attempt == c.attempt
}

// Submit sends the current credentials to the session.
// It returns nil while an earlier submit is still pending.
func (c *Component) Submit() tea.Cmd {
	if c.loggingIn || c.closed {
		return nil
	}

	c.loggingIn = true
	c.notice = ""
	c.attempt++

	creds := auth.Credentials{Email: c.Email(), Password: c.Password()}
	screenID, attempt := c.id, c.attempt
	session, ctx := c.session, c.ctx

	logger.Log.Debugw("login submitted", "screen", screenID, "attempt", attempt)

	return func() tea.Msg {
		if err := session.Login(ctx, creds); err != nil {
			return LoginErrorMsg{ScreenID: screenID, Attempt: attempt, Message: auth.MessageOf(err)}
		}
		return LoginSuccessMsg{ScreenID: screenID, Attempt: attempt}
	}
}

// GoToRegistration opens the in-app registration screen
func (c *Component) GoToRegistration() tea.Cmd {
	return c.router.NavigateTo(string(router.Registration))
}

// GoToForgotPassword opens the password reset screen
func (c *Component) GoToForgotPassword() tea.Cmd {
	return c.router.NavigateTo(string(router.Forgot))
}

// Close cancels a pending submit and stops the screen from accepting results
func (c *Component) Close() {
	c.closed = true
	c.cancel()
}

// Email returns the current email input
func (c *Component) Email() string {
	return c.inputs[focusEmail].Value()
}

// Password returns the current password input
func (c *Component) Password() string {
	return c.inputs[focusPassword].Value()
}

// ErrorMessage returns the error currently shown, "" when none
func (c *Component) ErrorMessage() string {
	return c.errorMsg
}

// IsLoggingIn reports whether a submit is pending
func (c *Component) IsLoggingIn() bool {
	return c.loggingIn
}

// SetNotice shows an informational line above the form
func (c *Component) SetNotice(notice string) {
	c.notice = notice
}

func (c *Component) setFocus(idx int) {
	c.focusIdx = (idx%focusCount + focusCount) % focusCount
	for i := range c.inputs {
		if i == c.focusIdx {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

// View renders the login component
func (c *Component) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render("Login"))
	b.WriteString("\n\n")

	if c.errorMsg != "" {
		b.WriteString(c.styles.Error.Render(c.errorMsg) + "\n\n")
	}
	if c.notice != "" {
		b.WriteString(c.styles.Notice.Render(c.notice) + "\n\n")
	}

	b.WriteString(c.styles.Label.Render("Email") + c.inputs[focusEmail].View() + "\n")
	b.WriteString(c.styles.Label.Render("Password") + c.inputs[focusPassword].View() + "\n\n")

	b.WriteString(c.button("Sign In", focusSignIn) + "\n")
	b.WriteString(c.link("Forgot your Password?", focusForgot) + "\n\n")
	b.WriteString(c.button("Registration", focusRegistration))

	if c.loggingIn {
		b.WriteString("\n\n" + c.styles.Pending.Render("Logging in..."))
	}

	return c.styles.Box.Render(b.String()) + "\n" + c.footer.View(keys.Login()...)
}

func (c *Component) button(label string, idx int) string {
	if c.focusIdx == idx {
		return c.styles.FocusedButton.Render(label)
	}
	return c.styles.Button.Render(label)
}

func (c *Component) link(label string, idx int) string {
	if c.focusIdx == idx {
		return c.styles.FocusedLink.Render(label)
	}
	return c.styles.Link.Render(label)
}
