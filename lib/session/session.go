// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// state is the on-disk shape of the session file.
type state struct {
	// Token is the bearer token issued by the backend at login.
	Token string `json:"token"`
}

// Store holds the current session token and mirrors it to a file on
// every mutation. Safe for concurrent use: the request layer reads the
// token at dispatch time while the console mutates it on login, logout,
// and 401 handling.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// FilePath returns the path of the session file. Checks the
// TESSERA_SESSION_FILE environment variable first, then falls back to
// $XDG_CONFIG_HOME/tessera/session.json or ~/.config/tessera/session.json.
func FilePath() string {
	if envPath := os.Getenv("TESSERA_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback; this should rarely happen.
			return filepath.Join("/tmp", "tessera-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "tessera", "session.json")
}

// Open loads the session store backed by the given file path. A missing
// file is not an error: it simply means no session exists yet. An
// unreadable or malformed file is an error: silently discarding a
// session would log the operator out without explanation.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var persisted state
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	store.token = persisted.Token
	return store, nil
}

// Token returns the current bearer token, or "" when no session exists.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a session token is present. Presence
// is the only check; validity is the backend's call.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken replaces the session token and persists it. The session file
// is written with mode 0600 (owner-only) since it contains a credential,
// and its parent directory is created with mode 0700 if needed.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(state{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", s.path, err)
	}

	s.token = token
	return nil
}

// Clear destroys the session: the in-memory token is dropped and the
// session file is removed. Clearing an already-empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", s.path, err)
	}
	return nil
}
