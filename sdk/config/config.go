// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// DefaultBaseURL is the public vault deployment, used whenever no
// endpoint is configured.
const DefaultBaseURL = "https://waifuvault.moe/rest"

// Config passed to the SDK (no viper/INI at this layer)
type Config struct {
	Vault VaultConfig
}

type VaultConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}
