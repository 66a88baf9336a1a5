package commands

import (
	"fmt"
	"os"

	"photohunter-cli/browser"
	"photohunter-cli/logger"
	"photohunter-cli/tui/controller"
	"photohunter-cli/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the photohunter command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "photohunter",
		Short: "PhotoHunter in your terminal",
		Long: `PhotoHunter in your terminal.

Run without a command to open the interactive client.

Use "photohunter [command] --help" for more information about a command.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			return runTUI(a)
		},
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute executes the root command
func Execute() {
	defer logger.Sync()

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(a *app) error {
	styles := theme.Default()

	model := controller.New(controller.Dependencies{
		Session:  a.authService,
		Store:    a.sessions,
		Client:   a.client,
		Opener:   browser.NewOpener(),
		ResetURL: a.settings.PasswordResetURL,
		Styles:   styles,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Log.Errorw("tui exited with error", "error", err)
		return fmt.Errorf("failed to run interactive client: %w", err)
	}
	return nil
}
