// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing the local session.
// The backend is never contacted: the session ends by deleting the stored
// tokens, user profile and expiry, and cancelling the renewal timer.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove all saved credentials and tokens",
	Long: `The logout command clears the session from the local system: the access
token, refresh token, stored user profile and expiry timestamp are removed
from the OS keychain and the background renewal timer is cancelled.

The backend session is not invalidated remotely; the tokens simply age out
server-side.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := s.mgr.Logout(); err != nil {
			return err
		}
		fmt.Println("✅ All credentials and tokens have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
