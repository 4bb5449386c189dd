// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package api

// FileInfo describes a stored file as the vault reports it.
type FileInfo struct {
	Token  string `json:"token"`
	URL    string `json:"url"`
	Bucket string `json:"bucket,omitempty"`

	// Album the file belongs to, if any.
	Album *AlbumMetadata `json:"album,omitempty"`

	Views int `json:"views"`

	// Either a human-readable string or epoch milliseconds, depending
	// on the formatted flag of the request that produced this entry.
	RetentionPeriod any `json:"retentionPeriod,omitempty"`

	Options *FileOptions `json:"options,omitempty"`
}

// FileOptions are the per-file switches chosen at upload time.
type FileOptions struct {
	HideFilename    bool `json:"hideFilename"`
	OneTimeDownload bool `json:"oneTimeDownload"`

	// True when the file is password protected.
	Protected bool `json:"protected"`
}

// Bucket groups files uploaded under one access token.
type Bucket struct {
	Token  string          `json:"token"`
	Files  []FileInfo      `json:"files"`
	Albums []AlbumMetadata `json:"albums,omitempty"`
}

// Album is a named collection of files inside a bucket.
type Album struct {
	Token       string `json:"token"`
	BucketToken string `json:"bucketToken"`

	// Set while the album is publicly shared.
	PublicToken string `json:"publicToken,omitempty"`

	Name  string     `json:"name"`
	Files []FileInfo `json:"files"`
}

// AlbumMetadata is the compact album form embedded in file and bucket
// entries.
type AlbumMetadata struct {
	Token       string `json:"token"`
	PublicToken string `json:"publicToken,omitempty"`
	Name        string `json:"name"`
	Bucket      string `json:"bucket"`
	DateCreated int64  `json:"dateCreated,omitempty"`
}

// GenericResponse is the vault's answer to operations that return no
// entity, e.g. album deletion or sharing.
type GenericResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}
