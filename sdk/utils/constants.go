// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".waifuvault.ini"
	IniSource          = "ini_source"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	VaultEndpoint     = "vault_endpoint"
	VaultBucket       = "vault_bucket"
	VaultAlbum        = "vault_album"
	VaultTimeout      = "vault_timeout"
	VaultOutput       = "vault_output"
	VaultRestrictions = "vault_restrictions"

	// how long cached upload restrictions stay fresh
	outdatedAfterHours = 1

	// restriction types the vault advertises
	RestrictionMaxFileSize    = "MAX_FILE_SIZE"
	RestrictionBannedMimeType = "BANNED_MIME_TYPE"
)
