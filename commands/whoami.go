package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"photohunter-cli/config"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type sessionReader interface {
	Current() (config.Session, error)
	HasSession() bool
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			return runWhoami(a.sessions, cmd.OutOrStdout())
		},
	}
}

func runWhoami(store sessionReader, out io.Writer) error {
	session, err := store.Current()
	if errors.Is(err, config.ErrNoSession) {
		fmt.Fprintln(out, "Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	status := "active"
	if !store.HasSession() {
		status = "expired"
	}

	table := tablewriter.NewWriter(out)
	table.Header("Email", "Name", "Expires", "Status")
	if err := table.Append([]string{
		session.Email,
		session.Name,
		formatTime(session.ExpiresAt),
		status,
	}); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	return table.Render()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
