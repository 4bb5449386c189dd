// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"
	"net/url"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/config"
)

// FilesService exposes the vault's file endpoints: upload, info, modify,
// delete and content download.
type FilesService struct {
	http config.VaultHTTP
}

func NewFilesService(_ context.Context, conf config.Config) (*FilesService, error) {
	if conf.Vault.BaseURL == "" {
		conf.Vault.BaseURL = config.DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(conf.Vault.BaseURL); err != nil {
		return nil, errors.New("invalid vault config")
	}
	return &FilesService{
		http: config.NewHTTPVault(nil, conf.Vault),
	}, nil
}

// NewFilesServiceWithHTTP builds the service around a caller-supplied
// transport, mostly to swap in a stub during tests.
func NewFilesServiceWithHTTP(h config.VaultHTTP) *FilesService {
	return &FilesService{http: h}
}
