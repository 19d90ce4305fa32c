// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Command tessera is the admin console for the Tessera multi-tenant
// business backend. Run without arguments it opens the interactive
// console; subcommands cover the same operations non-interactively
// for scripts and automation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
)

func main() {
	root := &cli.Command{
		Name:    "tessera",
		Summary: "admin console for the Tessera backend",
		Description: `Tessera is the admin console for a multi-tenant business backend.

Without a subcommand it opens the interactive console. Subcommands
expose the same operations for scripting: signing in, registering a
company, and listing customers and users.`,
		Subcommands: []*cli.Command{
			consoleCommand(),
			loginCommand(),
			logoutCommand(),
			registerCommand(),
			customerCommand(),
			userCommand(),
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q\n\nRun 'tessera --help' for usage.", args[0])
			}
			return runConsole()
		},
	}

	if err := root.Execute(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "tessera: %v\n", err)
		os.Exit(1)
	}
}
