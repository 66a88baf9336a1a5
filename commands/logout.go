package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type sessionClearer interface {
	Clear() error
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			return runLogout(a.sessions, cmd.OutOrStdout())
		},
	}
}

func runLogout(store sessionClearer, out io.Writer) error {
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Logged out.")
	return nil
}
