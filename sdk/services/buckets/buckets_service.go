// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

// Package buckets drives the vault's bucket endpoints. A bucket is a
// server-side grouping of files that share one access token.
package buckets

import (
	"context"
	"errors"
	"net/url"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/config"
)

type BucketsService struct {
	http config.VaultHTTP
}

func NewBucketsService(_ context.Context, conf config.Config) (*BucketsService, error) {
	if conf.Vault.BaseURL == "" {
		conf.Vault.BaseURL = config.DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(conf.Vault.BaseURL); err != nil {
		return nil, errors.New("invalid vault config")
	}
	return &BucketsService{
		http: config.NewHTTPVault(nil, conf.Vault),
	}, nil
}

// NewBucketsServiceWithHTTP builds the service around a caller-supplied
// transport, mostly to swap in a stub during tests.
func NewBucketsServiceWithHTTP(h config.VaultHTTP) *BucketsService {
	return &BucketsService{http: h}
}
