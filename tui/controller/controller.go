package controller

import (
	"photohunter-cli/api"
	"photohunter-cli/auth"
	"photohunter-cli/logger"
	"photohunter-cli/tui/forgot"
	"photohunter-cli/tui/home"
	"photohunter-cli/tui/keys"
	"photohunter-cli/tui/locations"
	"photohunter-cli/tui/login"
	"photohunter-cli/tui/registration"
	"photohunter-cli/tui/router"
	"photohunter-cli/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Notices shown on the login screen after leaving another flow
const (
	RegisteredNotice = "Account created. Please sign in."
	LoggedOutNotice  = "You have been logged out."
	ExpiredNotice    = "Session expired. Please log in again."
)

// SessionStore is the stored-session surface the controller needs
type SessionStore interface {
	HasSession() bool
	HasExpiredSession() bool
	Clear() error
}

// Dependencies wires the controller to the rest of the application
type Dependencies struct {
	Session  auth.Session
	Store    SessionStore
	Client   api.ClientInterface
	Opener   forgot.URLOpener
	ResetURL string
	Styles   theme.Styles
}

// Controller owns the router and the screen for the current route
type Controller struct {
	router *router.Router
	keys   *keys.Handler
	deps   Dependencies

	loginComponent        *login.Component
	registrationComponent *registration.Component
	forgotComponent       *forgot.Component
	homeComponent         *home.Component
	locationsComponent    *locations.Component

	pendingNotice string
	errorMsg      string
	quitting      bool
}

// New creates a controller positioned at the session restore route
func New(deps Dependencies) *Controller {
	return &Controller{
		router: router.New(router.Restoring),
		keys:   keys.NewHandler(),
		deps:   deps,
	}
}

// Init checks for a stored session
func (c *Controller) Init() tea.Cmd {
	return c.restoreSessionCmd()
}

// Route returns the current route
func (c *Controller) Route() router.Route {
	return c.router.Current()
}

// Update handles incoming messages and updates the controller state
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keys.IsQuit(keyMsg) {
		return c.quit()
	}

	switch msg := msg.(type) {
	case SessionRestoredMsg:
		if c.router.Current() != router.Restoring {
			return c, nil
		}
		if msg.Valid {
			return c, c.router.Reset(router.Home)
		}
		if msg.Expired {
			c.pendingNotice = ExpiredNotice
		}
		return c, c.router.Reset(router.Login)
	case router.NavigatedMsg:
		logger.Log.Debugw("navigated", "transition", msg.Transition.String())
		c.errorMsg = ""
		return c, c.enter(msg.Transition.To)
	case router.ErrorMsg:
		logger.Log.Warnw("navigation failed", "error", msg.Error)
		c.errorMsg = msg.Error.Error()
		return c, nil
	case login.SessionStartedMsg:
		return c, c.router.Reset(router.Home)
	case registration.RegisteredMsg:
		c.pendingNotice = RegisteredNotice
		return c, c.router.Reset(router.Login)
	case home.LogoutMsg:
		return c, c.logout()
	}

	return c.delegate(msg)
}

// enter builds a fresh screen for route once the router has settled on it
func (c *Controller) enter(route router.Route) tea.Cmd {
	if route != c.router.Current() {
		return nil
	}
	c.closeScreens()

	switch route {
	case router.Login:
		c.loginComponent = login.New(c.deps.Session, c.router, c.deps.Styles)
		if c.pendingNotice != "" {
			c.loginComponent.SetNotice(c.pendingNotice)
			c.pendingNotice = ""
		}
		return c.loginComponent.Init()
	case router.Registration:
		c.registrationComponent = registration.New(c.deps.Client, c.deps.Styles)
		return c.registrationComponent.Init()
	case router.Forgot:
		c.forgotComponent = forgot.New(c.deps.ResetURL, c.deps.Opener, c.deps.Styles)
		return c.forgotComponent.Init()
	case router.Home:
		c.homeComponent = home.New(c.deps.Client, c.router, c.deps.Styles)
		return c.homeComponent.Init()
	case router.Locations:
		c.locationsComponent = locations.New(c.deps.Client, c.deps.Styles)
		return c.locationsComponent.Init()
	}
	return nil
}

// delegate hands msg to the screen for the current route
func (c *Controller) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch c.router.Current() {
	case router.Login:
		if c.loginComponent != nil {
			c.loginComponent, cmd = c.loginComponent.Update(msg)
		}
	case router.Registration:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keys.IsBack(keyMsg) {
			return c, c.router.Back()
		}
		if c.registrationComponent != nil {
			c.registrationComponent, cmd = c.registrationComponent.Update(msg)
		}
	case router.Forgot:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keys.IsBack(keyMsg) {
			return c, c.router.Back()
		}
		if c.forgotComponent != nil {
			c.forgotComponent, cmd = c.forgotComponent.Update(msg)
		}
	case router.Locations:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keys.IsBack(keyMsg) {
			return c, c.router.Back()
		}
		if c.locationsComponent != nil {
			c.locationsComponent, cmd = c.locationsComponent.Update(msg)
		}
	case router.Home:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keys.IsMenuQuit(keyMsg) {
			return c.quit()
		}
		if c.homeComponent != nil {
			c.homeComponent, cmd = c.homeComponent.Update(msg)
		}
	}

	return c, cmd
}

func (c *Controller) logout() tea.Cmd {
	if err := c.deps.Store.Clear(); err != nil {
		logger.Log.Errorw("failed to clear session", "error", err)
		c.errorMsg = "Failed to log out: " + err.Error()
		return nil
	}
	logger.Log.Infow("logged out")
	c.pendingNotice = LoggedOutNotice
	return c.router.Reset(router.Login)
}

func (c *Controller) quit() (tea.Model, tea.Cmd) {
	c.quitting = true
	c.closeScreens()
	return c, tea.Quit
}

// closeScreens stops pending work of every screen so late results are dropped
func (c *Controller) closeScreens() {
	if c.loginComponent != nil {
		c.loginComponent.Close()
		c.loginComponent = nil
	}
	if c.registrationComponent != nil {
		c.registrationComponent.Close()
		c.registrationComponent = nil
	}
	if c.homeComponent != nil {
		c.homeComponent.Close()
		c.homeComponent = nil
	}
	if c.locationsComponent != nil {
		c.locationsComponent.Close()
		c.locationsComponent = nil
	}
	c.forgotComponent = nil
}
