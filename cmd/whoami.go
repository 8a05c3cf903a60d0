package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptladmin/cli/internal/apierrors"
)

// whoamiCmd represents the whoami command for displaying the current session.
// It validates the token with the backend and shows the account it belongs
// to, falling back to the locally stored profile when the backend cannot be
// reached.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays the account that owns the current session.
It validates the stored token against the backend; when the backend is
unreachable the locally stored profile is shown instead, marked as
unverified.

If no valid session exists, it will indicate that the user is not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := newSession(ctx)
		if err != nil {
			return err
		}

		if !s.mgr.IsAuthenticated() {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'ptladmin login' to get started.")
			return nil
		}

		local := s.mgr.CurrentUser()
		user, err := s.mgr.ValidateToken(ctx)
		if err != nil {
			switch apierrors.CodeOf(err) {
			case apierrors.ConnectionError, apierrors.ServerUnavailable:
				if local != nil {
					fmt.Printf("👤 Current user: %s <%s> [%s] (offline, unverified)\n", local.Name, local.Email, local.Role)
					return nil
				}
			}
			return err
		}

		fmt.Printf("👤 Current user: %s <%s> [%s]\n", user.Name, user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
