package table

import (
	"fmt"

	"photohunter-cli/api"

	tea "github.com/charmbracelet/bubbletea"
	btable "github.com/evertras/bubble-table/table"
)

const (
	columnID          = "id"
	columnTitle       = "title"
	columnDescription = "description"
	columnPosition    = "position"

	pageSize = 8
)

// Component represents a reusable location table
type Component struct {
	table     btable.Model
	locations []api.Location
	focused   bool
}

// New creates a new location table
func New() *Component {
	columns := []btable.Column{
		btable.NewColumn(columnTitle, "Title", 20),
		btable.NewColumn(columnDescription, "Description", 26),
		btable.NewColumn(columnPosition, "Lat, Lng", 20),
	}

	return &Component{
		table: btable.New(columns).WithPageSize(pageSize),
	}
}

// SetLocations replaces the rows of the table
func (c *Component) SetLocations(locations []api.Location) {
	c.locations = locations
	c.refreshTable()
}

// Len returns the number of locations in the table
func (c *Component) Len() int {
	return len(c.locations)
}

// SetFocused sets whether the table reacts to row navigation keys
func (c *Component) SetFocused(focused bool) {
	c.focused = focused
	c.table = c.table.Focused(focused)
}

// HighlightedLocation returns the location under the cursor, or nil for an empty table
func (c *Component) HighlightedLocation() *api.Location {
	row := c.table.HighlightedRow()
	if row.Data == nil {
		return nil
	}

	id, ok := row.Data[columnID].(string)
	if !ok {
		return nil
	}
	for i := range c.locations {
		if c.locations[i].ID == id {
			location := c.locations[i]
			return &location
		}
	}
	return nil
}

// Update handles Bubble Tea messages
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return c, cmd
}

// View renders the table
func (c *Component) View() string {
	return c.table.View()
}

// FormatPosition renders coordinates the way the table shows them
func FormatPosition(location api.Location) string {
	return fmt.Sprintf("%.5f, %.5f", location.Lat, location.Lng)
}

func (c *Component) refreshTable() {
	rows := make([]btable.Row, 0, len(c.locations))
	for _, location := range c.locations {
		rows = append(rows, btable.NewRow(btable.RowData{
			columnID:          location.ID,
			columnTitle:       location.Title,
			columnDescription: location.Description,
			columnPosition:    FormatPosition(location),
		}))
	}

	c.table = c.table.WithRows(rows).Focused(c.focused)
}
