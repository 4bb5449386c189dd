// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHumanSize(t *testing.T) {
	require.Equal(t, "512 B", HumanSize(512))
	require.Equal(t, "1.00 KB", HumanSize(1024))
	require.Equal(t, "1.50 MB", HumanSize(1536*1024))
	require.Equal(t, "2.00 GB", HumanSize(2*1024*1024*1024))
}

func TestResolveTarget(t *testing.T) {
	dir := t.TempDir()

	// empty destination falls back to the bare filename
	target, err := ResolveTarget("", "cat.png")
	require.NoError(t, err)
	require.Equal(t, "cat.png", target)

	// existing directory
	target, err = ResolveTarget(dir, "cat.png")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cat.png"), target)

	// existing file wins as-is
	existing := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))
	target, err = ResolveTarget(existing, "cat.png")
	require.NoError(t, err)
	require.Equal(t, existing, target)

	// missing destination gets created as a directory
	fresh := filepath.Join(dir, "new", "nested")
	target, err = ResolveTarget(fresh, "cat.png")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(fresh, "cat.png"), target)
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestSaveFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "saved.bin")
	require.NoError(t, SaveFile(target, []byte("payload")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), got)
}
