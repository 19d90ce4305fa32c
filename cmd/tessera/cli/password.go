// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tessera-admin/tessera/lib/secret"
)

// ReadPassword reads a password into a locked secret buffer. If
// passwordFile is a path, the file's contents are used; if it is ""
// or "-", the password is prompted on the terminal with echo
// disabled.
func ReadPassword(passwordFile string) (*secret.Buffer, error) {
	if passwordFile != "" && passwordFile != "-" {
		return readSecretFile(passwordFile)
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, fmt.Errorf("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	// NewFromBytes zeroes the source slice after copying it into the
	// locked region.
	buffer, err := secret.NewFromBytes(passwordBytes)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// readSecretFile reads a secret from a file path into a secret.Buffer.
// Strips trailing newlines (common with echo/printf pipelines).
func readSecretFile(path string) (*secret.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
		data = data[:len(data)-1]
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty (after stripping trailing newlines)", path)
	}

	buffer, err := secret.NewFromBytes(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
