// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tessera-admin/tessera/cmd/tessera/cli"
	"github.com/tessera-admin/tessera/lib/api"
)

func registerCommand() *cli.Command {
	var (
		companyCode  string
		companyName  string
		companyEmail string
		username     string
		email        string
		passwordFile string
	)

	return &cli.Command{
		Name:    "register",
		Summary: "register a company and its first admin",
		Description: `Register a new company (tenant) together with its initial admin
account. On success, sign in with 'tessera login'.`,
		Usage: "tessera register [flags]",
		Examples: []cli.Example{
			{
				Description: "Register a company, prompting for the admin password",
				Command: "tessera register --company-code acme --company-name \"Acme Corp\" " +
					"--company-email info@acme.example --username jane --email jane@acme.example",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flagSet.StringVar(&companyCode, "company-code", "", "unique company code")
			flagSet.StringVar(&companyName, "company-name", "", "company display name")
			flagSet.StringVar(&companyEmail, "company-email", "", "company contact email")
			flagSet.StringVar(&username, "username", "", "admin username")
			flagSet.StringVar(&email, "email", "", "admin email")
			flagSet.StringVar(&passwordFile, "password-file", "",
				"path to file containing the admin password, or - to prompt interactively (default: prompt)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			var missing []string
			for _, required := range []struct {
				flag  string
				value string
			}{
				{"company-code", companyCode},
				{"company-name", companyName},
				{"company-email", companyEmail},
				{"username", username},
				{"email", email},
			} {
				if required.value == "" {
					missing = append(missing, "--"+required.flag)
				}
			}
			if len(missing) > 0 {
				return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
			}

			password, err := cli.ReadPassword(passwordFile)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			defer password.Close()

			env, err := loadEnvironment("register")
			if err != nil {
				return err
			}
			client, err := env.newClient(nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			err = client.RegisterTenant(ctx, api.RegisterRequest{
				CompanyCode:   companyCode,
				CompanyName:   companyName,
				CompanyEmail:  companyEmail,
				AdminUsername: username,
				AdminEmail:    email,
				AdminPassword: password,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Registered company %q. Sign in with 'tessera login %s %s'.\n",
				companyName, companyCode, username)
			return nil
		},
	}
}
