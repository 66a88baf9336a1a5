package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"photohunter-cli/auth"

	"github.com/spf13/cobra"
)

const loginTimeout = 30 * time.Second

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in without opening the interactive client",
		Long: `Sign in and store the session for later commands.

Missing values are read from standard input:
  photohunter login --email you@example.com
  printf 'you@example.com\nsecret\n' | photohunter login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
			defer cancel()

			return runLogin(ctx, a.authService, cmd.InOrStdin(), cmd.OutOrStdout(), email, password)
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email to sign in with")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password to sign in with")

	return cmd
}

func runLogin(ctx context.Context, session auth.Session, in io.Reader, out io.Writer, email, password string) error {
	reader := bufio.NewReader(in)

	if email == "" {
		fmt.Fprint(out, "Email: ")
		line, err := readLine(reader)
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = line
	}

	if password == "" {
		fmt.Fprint(out, "Password: ")
		line, err := readLine(reader)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = line
	}

	if err := session.Login(ctx, auth.Credentials{Email: email, Password: password}); err != nil {
		if message := auth.MessageOf(err); message != "" {
			return fmt.Errorf("login failed: %s", message)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintf(out, "Signed in as %s\n", email)
	return nil
}

// readLine returns the next line without its line ending. A final line without
// a newline is accepted.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
