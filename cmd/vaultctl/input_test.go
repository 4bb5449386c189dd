// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePasswordPassthrough(t *testing.T) {
	pw, err := resolvePassword("hunter2", "Password: ")
	require.NoError(t, err)
	require.Equal(t, "hunter2", pw)

	pw, err = resolvePassword("", "Password: ")
	require.NoError(t, err)
	require.Equal(t, "", pw)
}

func TestResolvePasswordPrompts(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) { return []byte("from-tty"), nil }
	pw, err := resolvePassword("-", "Password: ")
	require.NoError(t, err)
	require.Equal(t, "from-tty", pw)

	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = resolvePassword("-", "Password: ")
	require.ErrorContains(t, err, "failed to read password")
}
