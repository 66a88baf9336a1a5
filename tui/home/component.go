package home

import (
	"context"
	"fmt"
	"strings"

	"photohunter-cli/api"
	"photohunter-cli/auth"
	"photohunter-cli/logger"
	"photohunter-cli/tui/components/footer"
	"photohunter-cli/tui/components/menu"
	"photohunter-cli/tui/keys"
	"photohunter-cli/tui/router"
	"photohunter-cli/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Menu items
const (
	LocationsItem = "Locations"
	LogoutItem    = "Logout"
	QuitItem      = "Quit"
)

// ProfileLoader fetches the signed-in user's profile
type ProfileLoader interface {
	GetProfile(ctx context.Context) (*api.Profile, error)
}

// LogoutMsg asks the application to drop the session
type LogoutMsg struct{}

type profileMsg struct {
	screenID string
	attempt  int
	profile  *api.Profile
	err      error
}

// Component is the home screen shown after login
type Component struct {
	id      string
	attempt int
	closed  bool

	loader  ProfileLoader
	router  router.Navigator
	profile *api.Profile
	loading bool
	err     string
	menu    *menu.Component
	styles  theme.Styles
	footer  *footer.Component

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the home screen
func New(loader ProfileLoader, nav router.Navigator, styles theme.Styles) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	return &Component{
		id:     uuid.NewString(),
		loader: loader,
		router: nav,
		menu:   menu.New([]string{LocationsItem, LogoutItem, QuitItem}, menu.StylesFrom(styles)),
		styles: styles,
		footer: footer.New(styles.Muted),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Init starts loading the profile
func (c *Component) Init() tea.Cmd {
	return c.Load()
}

// Load returns a command that fetches the profile. Only the latest load is applied.
func (c *Component) Load() tea.Cmd {
	if c.closed {
		return nil
	}

	c.loading = true
	c.err = ""
	c.attempt++

	screenID, attempt := c.id, c.attempt
	loader, ctx := c.loader, c.ctx
	return func() tea.Msg {
		profile, err := loader.GetProfile(ctx)
		return profileMsg{screenID: screenID, attempt: attempt, profile: profile, err: err}
	}
}

// Update handles messages for the home screen
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		if c.closed || msg.screenID != c.id || msg.attempt != c.attempt {
			return c, nil
		}
		c.loading = false
		if msg.err != nil {
			logger.Log.Warnw("failed to load profile", "error", msg.err)
			c.err = auth.MessageOf(msg.err)
			if c.err == "" {
				c.err = "Could not load your profile."
			}
			return c, nil
		}
		c.profile = msg.profile
		return c, nil
	case menu.SelectMsg:
		switch msg.SelectedItem {
		case LocationsItem:
			return c, c.router.NavigateTo(string(router.Locations))
		case LogoutItem:
			return c, func() tea.Msg { return LogoutMsg{} }
		case QuitItem:
			return c, tea.Quit
		}
		return c, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		c.menu, cmd = c.menu.Update(msg)
		return c, cmd
	}
	return c, nil
}

// Close cancels a pending profile request and drops its result
func (c *Component) Close() {
	c.closed = true
	c.cancel()
}

// View renders the home screen
func (c *Component) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render("PhotoHunter"))
	b.WriteString("\n\n")

	switch {
	case c.loading:
		b.WriteString(c.styles.Pending.Render("Loading profile..."))
	case c.err != "":
		b.WriteString(c.styles.Error.Render(c.err))
	case c.profile != nil:
		b.WriteString(fmt.Sprintf("Welcome, %s\n\n", c.profile.User.FullName))
		b.WriteString(c.styles.Muted.Render(fmt.Sprintf("%d locations  %d favorites",
			len(c.profile.Locations), len(c.profile.Favorites))))
	}

	b.WriteString("\n\n" + c.menu.View())

	return c.styles.Box.Render(b.String()) + "\n" + c.footer.View(keys.Menu()...)
}
