// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
)

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "discard the saved session",
		Description: `Discard the saved session token. The backend keeps no session state,
so removing the local token is all a sign-out takes. Logging out when
no session exists is not an error.`,
		Usage: "tessera logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			env, err := loadEnvironment("logout")
			if err != nil {
				return err
			}
			if err := env.session.Clear(); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}

			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}
