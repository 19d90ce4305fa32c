// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
	"github.com/tessera-admin/tessera/lib/consoleui"
)

func consoleCommand() *cli.Command {
	return &cli.Command{
		Name:    "console",
		Summary: "open the interactive console",
		Description: `Open the interactive console: sign in, browse the dashboard, and
manage customers and users in a full-screen terminal interface.

This is also what plain 'tessera' does.`,
		Usage: "tessera console",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			return runConsole()
		},
	}
}

func runConsole() error {
	env, err := loadEnvironment("console")
	if err != nil {
		return err
	}

	// The authorizer needs the app's 401 hook and the app needs the
	// client; the indirection breaks the construction cycle.
	var onUnauthorized func()
	client, err := env.newClient(func() {
		if onUnauthorized != nil {
			onUnauthorized()
		}
	})
	if err != nil {
		return err
	}

	app := consoleui.NewApp(consoleui.AppConfig{
		Backend:  client,
		Session:  env.session,
		Logger:   env.logger,
		PageSize: env.config.PageSize,
	})
	onUnauthorized = app.UnauthorizedHook()

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}
