// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// refreshCmd forces an immediate token renewal.
// Normally the renewal timer takes care of this; the command exists for
// scripts and for recovering a session whose timer never fired because the
// process was not running.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Renew the session token now",
	Long: `The refresh command exchanges the stored refresh token for a new token
pair immediately, instead of waiting for the scheduled renewal. If the
renewal is rejected the stored credentials are cleared and a new login is
required.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		res, err := s.mgr.RefreshToken(cmd.Context())
		if err != nil {
			return err
		}

		validFor := time.Duration(res.ExpiresIn) * time.Second
		fmt.Printf("✅ Token renewed; valid for %s\n", validFor)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
