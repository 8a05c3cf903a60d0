// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/pterm/pterm"

	"ptladmin/cli/internal/auth"
	"ptladmin/cli/internal/backend"
	"ptladmin/cli/internal/config"
	"ptladmin/cli/internal/credstore"
	"ptladmin/cli/internal/logging"
)

// cliSession bundles the wired-up pieces every authenticated command needs.
type cliSession struct {
	cfg config.Config
	api *backend.HTTP
	mgr *auth.Manager
}

// printNavigator is the CLI's stand-in for a browser redirect: when the
// session ends it tells the user how to get back in.
type printNavigator struct{}

func (printNavigator) GoTo(path string) {
	if path == auth.LoginPath {
		pterm.Println("🔒 Session ended. Run 'ptladmin login' to sign in again.")
	}
}

// openStore picks the credential store. PTLADMIN_NO_KEYCHAIN=1 selects the
// in-memory store, which means credentials last only for this process.
func openStore() (credstore.Store, error) {
	if os.Getenv("PTLADMIN_NO_KEYCHAIN") == "1" {
		return credstore.NewMemory(), nil
	}
	return credstore.OpenKeychain()
}

// newSession wires config, credential store, backend client and session
// manager together and restores any persisted session.
func newSession(ctx context.Context) (*cliSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := openStore()
	if err != nil {
		return nil, err
	}

	api := backend.New(cfg.APIURL)
	mgr := auth.NewManager(api, store, printNavigator{},
		auth.WithLogger(logging.New(cfg.LogLevel)),
	)
	api.AttachSession(mgr)
	mgr.Initialize(ctx)

	return &cliSession{cfg: cfg, api: api, mgr: mgr}, nil
}

// requireAuth returns the wired session or an error when nobody is logged in.
func requireAuth(ctx context.Context) (*cliSession, error) {
	s, err := newSession(ctx)
	if err != nil {
		return nil, err
	}
	if !s.mgr.IsAuthenticated() {
		return nil, errors.New("you are not logged in; run 'ptladmin login' to get started")
	}
	// Renew up front if the token is about to lapse, so a slow command does
	// not race its own expiry.
	if _, err := s.mgr.CheckAndRefreshToken(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
