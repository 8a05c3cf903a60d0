// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"

	"ptladmin/cli/internal/xdg"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "ptladmin"

// Keychain stores credentials in the OS keyring. All methods are
// thread-safe; a missing key reads as empty.
type Keychain struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// OpenKeychain opens the OS keyring for the ptladmin namespace.
// Native backends (macOS Keychain, Windows Credential Manager, Secret
// Service) are preferred; an encrypted file in the XDG state dir is the
// fallback for headless Linux hosts.
func OpenKeychain() (*Keychain, error) {
	fileDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	allowed := []keyring.BackendType{
		keyring.KeychainBackend,
		keyring.WinCredBackend,
		keyring.SecretServiceBackend,
		keyring.PassBackend,
		keyring.FileBackend,
	}

	cfg := keyring.Config{
		ServiceName:      ServiceName,
		AllowedBackends:  allowed,
		PassPrefix:       ServiceName,
		FileDir:          fileDir,
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, err
	}
	return &Keychain{ring: ring}, nil
}

// Get reads a key from the keyring. Missing keys yield "" with no error.
func (k *Keychain) Get(key string) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	it, err := k.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(it.Data), nil
}

// Set writes a key to the keyring.
func (k *Keychain) Set(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

// Remove deletes a key from the keyring; missing keys are not an error.
func (k *Keychain) Remove(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
