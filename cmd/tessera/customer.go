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

func customerCommand() *cli.Command {
	return &cli.Command{
		Name:        "customer",
		Summary:     "work with customer records",
		Subcommands: []*cli.Command{customerListCommand()},
	}
}

func customerListCommand() *cli.Command {
	var flags listFlags
	var search string

	return &cli.Command{
		Name:    "list",
		Summary: "list customers",
		Description: `List one page of customer records. The search term filters
server-side across the customer's name and contact fields.`,
		Usage: "tessera customer list [flags]",
		Examples: []cli.Example{
			{
				Description: "Second page of 25, newest first",
				Command:     "tessera customer list --page 1 --size 25 --sort-by id --sort-dir desc",
			},
			{
				Description: "Search as JSON for scripting",
				Command:     "tessera customer list --search jane --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&search, "search", "", "server-side search term")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			env, err := loadEnvironment("customer/list")
			if err != nil {
				return err
			}
			query, err := flags.query(env.config)
			if err != nil {
				return err
			}
			query.Search = search

			client, err := env.newClient(nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			page, err := client.ListCustomers(ctx, query)
			if err != nil {
				return err
			}

			if flags.outputJSON {
				return cli.WriteJSON(page)
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tMOBILE\tGENDER\tAGE")
			for _, customer := range page.Content {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
					customer.ID, customer.FirstName, customer.LastName,
					customer.Email, customer.Mobile, customer.Gender, customer.Age)
			}
			tw.Flush()

			fmt.Fprintf(os.Stderr, "page %d of %d (%d total)\n",
				page.PageNumber+1, page.TotalPages, page.TotalElements)
			return nil
		},
	}
}
