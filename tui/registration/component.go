package registration

import (
	"context"
	"strings"

	"photohunter-cli/api"
	"photohunter-cli/auth"
	"photohunter-cli/logger"
	"photohunter-cli/tui/components/footer"
	"photohunter-cli/tui/keys"
	"photohunter-cli/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	focusName = iota
	focusEmail
	focusPassword
	focusSubmit
	focusCount
)

// Registerer creates accounts
type Registerer interface {
	Register(ctx context.Context, req api.RegistrationRequest) (*api.User, error)
}

// RegisteredMsg is sent once the account exists
type RegisteredMsg struct {
	Email string
}

type resultMsg struct {
	screenID string
	attempt  int
	email    string
	message  string
	err      error
}

// Component is the registration screen
type Component struct {
	id         string
	inputs     []textinput.Model
	focusIdx   int
	errorMsg   string
	submitting bool
	attempt    int
	closed     bool

	ctx    context.Context
	cancel context.CancelFunc

	registerer Registerer
	keys       *keys.Handler
	styles     theme.Styles
	footer     *footer.Component
}

// New creates a registration screen
func New(registerer Registerer, styles theme.Styles) *Component {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.Focus()
	name.CharLimit = 128
	name.Width = 32

	email := textinput.New()
	email.Placeholder = "Email"
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
		id:         uuid.NewString(),
		inputs:     []textinput.Model{name, email, password},
		ctx:        ctx,
		cancel:     cancel,
		registerer: registerer,
		keys:       keys.NewHandler(),
		styles:     styles,
		footer:     footer.New(styles.Muted),
	}
}

// Init initializes the registration component
func (c *Component) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the registration component
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case c.keys.IsNext(msg):
			c.setFocus(c.focusIdx + 1)
			return c, nil
		case c.keys.IsPrev(msg):
			c.setFocus(c.focusIdx - 1)
			return c, nil
		case c.keys.IsEnter(msg):
			if c.focusIdx == focusPassword || c.focusIdx == focusSubmit {
				return c, c.Submit()
			}
			c.setFocus(c.focusIdx + 1)
			return c, nil
		}
		if c.focusIdx == focusSubmit {
			return c, nil
		}
		var cmd tea.Cmd
		c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
		return c, cmd
	case resultMsg:
		if c.closed || msg.screenID != c.id || msg.attempt != c.attempt {
			return c, nil
		}
		c.submitting = false
		if msg.err != nil {
			c.errorMsg = msg.message
			return c, nil
		}
		email := msg.email
		return c, func() tea.Msg { return RegisteredMsg{Email: email} }
	}

	return c, nil
}

// Submit sends the form. It returns nil while an earlier submit is pending.
func (c *Component) Submit() tea.Cmd {
	if c.submitting || c.closed {
		return nil
	}

	c.submitting = true
	c.attempt++

	req := api.RegistrationRequest{
		Name:     strings.TrimSpace(c.inputs[focusName].Value()),
		Email:    strings.TrimSpace(c.inputs[focusEmail].Value()),
		Password: c.inputs[focusPassword].Value(),
	}
	screenID, attempt := c.id, c.attempt
	registerer, ctx := c.registerer, c.ctx

	return func() tea.Msg {
		if _, err := registerer.Register(ctx, req); err != nil {
			logger.Log.Infow("registration rejected", "email", req.Email, "error", err)
			return resultMsg{screenID: screenID, attempt: attempt, message: auth.MessageOf(err), err: err}
		}
		logger.Log.Infow("registered", "email", req.Email)
		return resultMsg{screenID: screenID, attempt: attempt, email: req.Email}
	}
}

// Close cancels a pending submit and stops the screen from accepting results
func (c *Component) Close() {
	c.closed = true
	c.cancel()
}

// ErrorMessage returns the error currently shown
func (c *Component) ErrorMessage() string {
	return c.errorMsg
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

// View renders the registration component
func (c *Component) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render("Registration"))
	b.WriteString("\n\n")
	if c.errorMsg != "" {
		b.WriteString(c.styles.Error.Render(c.errorMsg) + "\n\n")
	}

	b.WriteString(c.styles.Label.Render("Name") + c.inputs[focusName].View() + "\n")
	b.WriteString(c.styles.Label.Render("Email") + c.inputs[focusEmail].View() + "\n")
	b.WriteString(c.styles.Label.Render("Password") + c.inputs[focusPassword].View() + "\n\n")

	button := c.styles.Button
	if c.focusIdx == focusSubmit {
		button = c.styles.FocusedButton
	}
	b.WriteString(button.Render("Create Account"))

	if c.submitting {
		b.WriteString("\n\n" + c.styles.Pending.Render("Creating account..."))
	}

	return c.styles.Box.Render(b.String()) + "\n" + c.footer.View(keys.Form()...)
}
