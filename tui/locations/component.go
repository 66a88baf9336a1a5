package locations

import (
	"context"
	"fmt"
	"strings"

	"photohunter-cli/api"
	"photohunter-cli/auth"
	"photohunter-cli/logger"
	"photohunter-cli/tui/components/footer"
	"photohunter-cli/tui/components/table"
	"photohunter-cli/tui/keys"
	"photohunter-cli/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Tabs, in display order
const (
	TabMine = iota
	TabFavorites
	TabBrowse
	tabCount
)

var tabTitles = [tabCount]string{"My locations", "Favorites", "Browse"}

// Source provides the locations shown on the screen
type Source interface {
	GetProfile(ctx context.Context) (*api.Profile, error)
	ListLocations(ctx context.Context, near *api.Coordinates) ([]api.Location, error)
}

type loadedMsg struct {
	screenID   string
	attempt    int
	profile    *api.Profile
	profileErr error
	browse     []api.Location
	browseErr  error
}

// Component lists the user's own, favourite and public locations
type Component struct {
	id      string
	attempt int
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc

	source   Source
	tables   [tabCount]*table.Component
	errs     [tabCount]string
	active   int
	loading  bool
	selected *api.Location

	keys   *keys.Handler
	styles theme.Styles
	footer *footer.Component
}

// New creates the locations screen
func New(source Source, styles theme.Styles) *Component {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Component{
		id:     uuid.NewString(),
		ctx:    ctx,
		cancel: cancel,
		source: source,
		keys:   keys.NewHandler(),
		styles: styles,
		footer: footer.New(styles.Muted),
	}
	for i := range c.tables {
		c.tables[i] = table.New()
	}
	c.tables[TabMine].SetFocused(true)
	return c
}

// Init starts loading all tabs
func (c *Component) Init() tea.Cmd {
	return c.Load()
}

// Load fetches the profile lists and the public locations in one go
func (c *Component) Load() tea.Cmd {
	if c.closed {
		return nil
	}

	c.loading = true
	c.attempt++

	screenID, attempt := c.id, c.attempt
	source, ctx := c.source, c.ctx
	return func() tea.Msg {
		msg := loadedMsg{screenID: screenID, attempt: attempt}
		msg.profile, msg.profileErr = source.GetProfile(ctx)
		msg.browse, msg.browseErr = source.ListLocations(ctx, nil)
		return msg
	}
}

// Update handles messages for the locations screen
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if c.closed || msg.screenID != c.id || msg.attempt != c.attempt {
			return c, nil
		}
		c.loading = false
		c.apply(msg)
		return c, nil
	case tea.KeyMsg:
		switch {
		case c.keys.IsNextTab(msg):
			c.setActive(c.active + 1)
			return c, nil
		case c.keys.IsPrevTab(msg):
			c.setActive(c.active - 1)
			return c, nil
		case c.keys.IsEnter(msg):
			c.selected = c.tables[c.active].HighlightedLocation()
			return c, nil
		}
		var cmd tea.Cmd
		c.tables[c.active], cmd = c.tables[c.active].Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *Component) apply(msg loadedMsg) {
	c.errs = [tabCount]string{}

	if msg.profileErr != nil {
		logger.Log.Warnw("failed to load profile locations", "error", msg.profileErr)
		text := loadError(msg.profileErr)
		c.errs[TabMine], c.errs[TabFavorites] = text, text
	} else if msg.profile != nil {
		c.tables[TabMine].SetLocations(msg.profile.Locations)
		c.tables[TabFavorites].SetLocations(msg.profile.Favorites)
	}

	if msg.browseErr != nil {
		logger.Log.Warnw("failed to list locations", "error", msg.browseErr)
		c.errs[TabBrowse] = loadError(msg.browseErr)
	} else {
		c.tables[TabBrowse].SetLocations(msg.browse)
	}
}

func loadError(err error) string {
	if message := auth.MessageOf(err); message != "" {
		return message
	}
	return "Could not load locations."
}

// Active returns the index of the visible tab
func (c *Component) Active() int {
	return c.active
}

// Selected returns the location whose details are shown, if any
func (c *Component) Selected() *api.Location {
	return c.selected
}

// Close cancels a pending load and drops its result
func (c *Component) Close() {
	c.closed = true
	c.cancel()
}

func (c *Component) setActive(idx int) {
	c.tables[c.active].SetFocused(false)
	c.active = (idx%tabCount + tabCount) % tabCount
	c.tables[c.active].SetFocused(true)
	c.selected = nil
}

// View renders the locations screen
func (c *Component) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render("Locations"))
	b.WriteString("\n\n")
	b.WriteString(c.renderTabs())
	b.WriteString("\n\n")

	switch {
	case c.loading:
		b.WriteString(c.styles.Pending.Render("Loading locations..."))
	case c.errs[c.active] != "":
		b.WriteString(c.styles.Error.Render(c.errs[c.active]))
	case c.tables[c.active].Len() == 0:
		b.WriteString(c.styles.Muted.Render("No locations yet."))
	default:
		b.WriteString(c.tables[c.active].View())
	}

	if c.selected != nil {
		b.WriteString("\n\n" + c.renderDetails(*c.selected))
	}

	return b.String() + "\n" + c.footer.View(keys.Locations()...)
}

func (c *Component) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		label := title
		if !c.loading && c.errs[i] == "" {
			label = fmt.Sprintf("%s (%d)", title, c.tables[i].Len())
		}
		style := c.styles.Button
		if i == c.active {
			style = c.styles.FocusedButton
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (c *Component) renderDetails(location api.Location) string {
	var b strings.Builder
	b.WriteString(c.styles.Notice.Render(location.Title) + "\n")
	if location.Description != "" {
		b.WriteString(location.Description + "\n")
	}
	b.WriteString(c.styles.Muted.Render(table.FormatPosition(location)))
	return b.String()
}
