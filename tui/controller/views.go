package controller

import (
	"photohunter-cli/tui/router"
)

// View renders the screen for the current route
func (c *Controller) View() string {
	if c.quitting {
		return c.deps.Styles.Muted.Render("Goodbye!") + "\n"
	}

	view := c.renderRoute()
	if c.errorMsg != "" {
		view += "\n" + c.deps.Styles.Error.Render(c.errorMsg)
	}
	return view
}

func (c *Controller) renderRoute() string {
	switch c.router.Current() {
	case router.Restoring:
		return c.renderRestoring()
	case router.Login:
		if c.loginComponent != nil {
			return c.loginComponent.View()
		}
	case router.Registration:
		if c.registrationComponent != nil {
			return c.registrationComponent.View()
		}
	case router.Forgot:
		if c.forgotComponent != nil {
			return c.forgotComponent.View()
		}
	case router.Home:
		if c.homeComponent != nil {
			return c.homeComponent.View()
		}
	case router.Locations:
		if c.locationsComponent != nil {
			return c.locationsComponent.View()
		}
	}
	return ""
}

func (c *Controller) renderRestoring() string {
	return c.deps.Styles.Pending.Render("\nRestoring session... Please wait.")
}
