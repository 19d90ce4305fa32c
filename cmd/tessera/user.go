// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
)

func userCommand() *cli.Command {
	return &cli.Command{
		Name:        "user",
		Summary:     "work with staff accounts",
		Subcommands: []*cli.Command{userListCommand()},
	}
}

func userListCommand() *cli.Command {
	var flags listFlags

	return &cli.Command{
		Name:    "list",
		Summary: "list users",
		Description: `List one page of staff accounts. The user endpoint has no search
support.`,
		Usage: "tessera user list [flags]",
		Examples: []cli.Example{
			{
				Description: "All users sorted by username",
				Command:     "tessera user list --sort-by username",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			env, err := loadEnvironment("user/list")
			if err != nil {
				return err
			}
			query, err := flags.query(env.config)
			if err != nil {
				return err
			}

			client, err := env.newClient(nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			page, err := client.ListUsers(ctx, query)
			if err != nil {
				return err
			}

			if flags.outputJSON {
				return cli.WriteJSON(page)
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS")
			for _, user := range page.Content {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					user.ID, user.Username, user.Email, user.Role, user.Status)
			}
			tw.Flush()

			fmt.Fprintf(os.Stderr, "page %d of %d (%d total)\n",
				page.PageNumber+1, page.TotalPages, page.TotalElements)
			return nil
		},
	}
}
