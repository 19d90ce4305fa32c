// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/config"
	"github.com/tessera-admin/tessera/lib/session"
)

// requestTimeout bounds every non-interactive backend call.
const requestTimeout = 30 * time.Second

// environment bundles what every command needs: configuration, the
// session store, and a scoped logger.
type environment struct {
	config  *config.Config
	session *session.Store
	logger  *slog.Logger
}

func loadEnvironment(command string) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath = session.FilePath()
	}
	store, err := session.Open(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	return &environment{
		config:  cfg,
		session: store,
		logger:  cli.NewCommandLogger().With("command", command),
	}, nil
}

// newClient builds the backend client with the session authorizer
// installed. onUnauthorized may be nil for one-shot commands, where a
// 401 simply surfaces as the command's error.
func (e *environment) newClient(onUnauthorized func()) (*api.Client, error) {
	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &api.Authorizer{
			Session:        e.session,
			OnUnauthorized: onUnauthorized,
			Logger:         e.logger,
		},
	}

	return api.NewClient(api.ClientConfig{
		BaseURL: e.config.BaseURL,
		Routes: api.Routes{
			Auth:        e.config.API.Auth,
			TenantAdmin: e.config.API.TenantAdmin,
			Customer:    e.config.API.Customer,
			User:        e.config.API.User,
		},
		HTTPClient: httpClient,
		Logger:     e.logger,
	})
}
