// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// resolvePassword returns the flag value as-is, except for "-", which
// prompts on the terminal without echo.
func resolvePassword(flagVal, prompt string) (string, error) {
	if flagVal != "-" {
		return flagVal, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
