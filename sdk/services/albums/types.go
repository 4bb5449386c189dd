// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package albums

type CreateRequest struct {
	// Bucket the album lives in.
	BucketToken string
	Name        string
}

type GetRequest struct {
	Token string
}

type AssociateRequest struct {
	AlbumToken string
	FileTokens []string
}

type DisassociateRequest struct {
	AlbumToken string
	FileTokens []string
}

type DeleteRequest struct {
	Token string

	// Also delete the album's files server-side instead of just the
	// grouping.
	DeleteFiles bool
}

type ShareRequest struct {
	Token string
}

type RevokeRequest struct {
	Token string
}

type DownloadRequest struct {
	Token string

	// File ids to include in the zip; empty means the whole album.
	Files []int
}
