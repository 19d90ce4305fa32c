// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
)

func loginCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "sign in and save a session",
		Description: `Sign in against the backend and save the issued token.

The session file is stored at ~/.config/tessera/session.json (or
$TESSERA_SESSION_FILE if set, or $XDG_CONFIG_HOME/tessera/session.json).
The file is written with mode 0600 (owner-only read/write) since it
contains an access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "tessera login <company-code> <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "tessera login acme jane",
			},
			{
				Description: "Log in with password from file",
				Command:     "tessera login acme jane --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&passwordFile, "password-file", "",
				"path to file containing password, or - to prompt interactively (default: prompt)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("company code and username are required\n\nUsage: tessera login <company-code> <username> [flags]")
			}
			companyCode, username := args[0], args[1]
			if len(args) > 2 {
				return fmt.Errorf("unexpected argument: %s", args[2])
			}

			password, err := cli.ReadPassword(passwordFile)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			defer password.Close()

			env, err := loadEnvironment("login")
			if err != nil {
				return err
			}
			client, err := env.newClient(nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			response, err := client.Login(ctx, companyCode, username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := env.session.SetToken(response.Token); err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s@%s.\n", username, companyCode)
			return nil
		},
	}
}
