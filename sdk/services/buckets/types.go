// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package buckets

type GetRequest struct {
	Token string
}

type DeleteRequest struct {
	Token string
}
