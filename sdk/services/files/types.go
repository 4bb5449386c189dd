// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"encoding/json"
	"fmt"
)

// Source selects where the uploaded content comes from. Exactly one
// implementation is set on an UploadRequest; the split into three types
// makes "two sources at once" unrepresentable.
type Source interface {
	isSource()
}

// LocalFile uploads a file read from the local filesystem.
type LocalFile struct {
	Path string
}

// RemoteURL asks the vault to fetch the content itself.
type RemoteURL struct {
	URL string
}

// RawBytes uploads an in-memory buffer stored under Name.
type RawBytes struct {
	Name    string
	Content []byte
}

func (LocalFile) isSource() {}
func (RemoteURL) isSource() {}
func (RawBytes) isSource()  {}

type ExpiryUnit string

const (
	Minutes ExpiryUnit = "m"
	Hours   ExpiryUnit = "h"
	Days    ExpiryUnit = "d"
)

// Expiry is how long the vault keeps a file, e.g. {2, Days} for "2d".
type Expiry struct {
	Amount int
	Unit   ExpiryUnit
}

func (e Expiry) String() string {
	return fmt.Sprintf("%d%s", e.Amount, e.Unit)
}

// The wire format is the compact string, not an object.
func (e Expiry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

type UploadRequest struct {
	Source Source

	Bucket          string
	Password        string
	Expires         *Expiry
	HideFilename    bool
	OneTimeDownload bool
}

type GetRequest struct {
	Token string

	// Render the retention period as text instead of epoch millis.
	Formatted bool
}

// ModificationRequest carries only the properties to change. Nil fields
// stay out of the payload and are left untouched server-side; the
// previous password pairing is checked by the vault, not locally.
type ModificationRequest struct {
	Token string `json:"-"`

	Password         *string `json:"password,omitempty"`
	PreviousPassword *string `json:"previousPassword,omitempty"`
	CustomExpiry     *Expiry `json:"customExpiry,omitempty"`
	HideFilename     *bool   `json:"hideFilename,omitempty"`
}

type DeleteRequest struct {
	Token string
}

type DownloadRequest struct {
	// Content URL as reported by FileInfo.URL.
	URL      string
	Password string
}
