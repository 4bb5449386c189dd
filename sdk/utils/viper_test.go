// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestBindEnvFromStruct_DefaultsAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("VAULT_BUCKET", "bucket-from-env")
	BindEnvFromStruct("")

	require.Equal(t, "https://waifuvault.moe/rest", viper.GetString(VaultEndpoint))
	require.Equal(t, "60s", viper.GetString(VaultTimeout))
	require.Equal(t, "short", viper.GetString(VaultOutput))
	require.Equal(t, "bucket-from-env", viper.GetString(VaultBucket))
}

func TestWriteIniFromStruct_PersistsOnlySetKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(VaultEndpoint, "http://localhost:8081/rest")
	viper.Set(VaultBucket, "abc123")

	iniPath := filepath.Join(t.TempDir(), IniName)
	require.NoError(t, WriteIniFromStruct(iniPath, "local"))

	cfg, err := ini.Load(iniPath)
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Section("DEFAULT").Key("current_environment").String())

	sec := cfg.Section("local")
	require.Equal(t, "http://localhost:8081/rest", sec.Key(VaultEndpoint).String())
	require.Equal(t, "abc123", sec.Key(VaultBucket).String())
	require.False(t, sec.HasKey(VaultAlbum), "unset keys stay out of the file")
}

func TestUpdateIniFromStruct_MergesAndStampsTimestamp(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	iniPath := filepath.Join(t.TempDir(), IniName)

	viper.Set(VaultEndpoint, "http://localhost:8081/rest")
	require.NoError(t, WriteIniFromStruct(iniPath, "local"))

	viper.Set(VaultBucket, "fresh-bucket")
	require.NoError(t, UpdateIniFromStruct(iniPath, "local"))

	cfg, err := ini.Load(iniPath)
	require.NoError(t, err)
	sec := cfg.Section("local")
	require.Equal(t, "http://localhost:8081/rest", sec.Key(VaultEndpoint).String())
	require.Equal(t, "fresh-bucket", sec.Key(VaultBucket).String())
	require.NotEmpty(t, sec.Key(UpdatedEnvKey).String())
}

func TestUpdateIniFromStruct_CreatesFileWhenMissing(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(VaultEndpoint, "http://localhost:8081/rest")

	iniPath := filepath.Join(t.TempDir(), IniName)
	require.NoError(t, UpdateIniFromStruct(iniPath, "local"))

	cfg, err := ini.Load(iniPath)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8081/rest", cfg.Section("local").Key(VaultEndpoint).String())
}
