// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ptladmin/cli/internal/auth"
	"ptladmin/cli/internal/terminal"
)

var (
	loginEmail      string
	loginPassword   string
	loginRememberMe bool
)

// loginCmd represents the login command for password authentication.
// It authenticates against the backend, stores the resulting tokens in the
// OS keychain and arms the background renewal timer for the session.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate against the PTL backend",
	Long: `The login command authenticates with email and password against the PTL
backend. On success the access token, refresh token and user profile are
stored in the OS keychain, so subsequent commands run without logging in
again until the session expires.

Credentials can be passed with --email and --password for scripting; when
omitted they are prompted interactively, with the password read without
echo.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := newSession(ctx)
		if err != nil {
			return err
		}

		if s.mgr.IsAuthenticated() {
			if u := s.mgr.CurrentUser(); u != nil {
				fmt.Printf("Already logged in as %s\n", u.Email)
				return nil
			}
		}

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			fmt.Print("Email: ")
			line, rerr := bufio.NewReader(os.Stdin).ReadString('\n')
			if rerr != nil {
				return rerr
			}
			email = strings.TrimSpace(line)
		}
		if email == "" {
			return fmt.Errorf("an email address is required")
		}

		password := loginPassword
		if password == "" {
			prompt := "Password: "
			fmt.Print(prompt)
			raw, rerr := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if rerr != nil {
				return rerr
			}
			password = string(raw)
			// Scrub the prompt so the secret's length is not left on screen
			terminal.ClearPreviousLines(len(prompt))
		}
		if password == "" {
			return fmt.Errorf("a password is required")
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", 120*time.Millisecond)
		res, err := s.mgr.Login(ctx, auth.Credentials{
			Email:      email,
			Password:   password,
			RememberMe: loginRememberMe,
		})
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Println(loginGreeting(res.User))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginRememberMe, "remember-me", false, "Ask the backend for a long-lived session")
}

// loginGreeting builds the post-login message from the normalized user.
func loginGreeting(u auth.User) string {
	name := u.Name
	if name == "" {
		name = u.Email
	}
	return fmt.Sprintf("✅ Logged in as %s (%s)", name, u.Role)
}
