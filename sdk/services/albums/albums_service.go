// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

// Package albums drives the vault's album endpoints. An album is a named
// collection of files inside a bucket that can be shared through a
// public URL and downloaded as a single zip.
package albums

import (
	"context"
	"errors"
	"net/url"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/config"
)

type AlbumsService struct {
	http config.VaultHTTP
}

func NewAlbumsService(_ context.Context, conf config.Config) (*AlbumsService, error) {
	if conf.Vault.BaseURL == "" {
		conf.Vault.BaseURL = config.DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(conf.Vault.BaseURL); err != nil {
		return nil, errors.New("invalid vault config")
	}
	return &AlbumsService{
		http: config.NewHTTPVault(nil, conf.Vault),
	}, nil
}

// NewAlbumsServiceWithHTTP builds the service around a caller-supplied
// transport, mostly to swap in a stub during tests.
func NewAlbumsServiceWithHTTP(h config.VaultHTTP) *AlbumsService {
	return &AlbumsService{http: h}
}
