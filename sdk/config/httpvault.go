// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

// VaultHTTP is the transport every service talks through. Do returns the
// response body and status verbatim; mapping non-2xx answers onto errors
// is the caller's job (see sdk/api).
type VaultHTTP interface {
	BuildURL(params map[string]string, segments ...string) string
	Do(ctx context.Context, method, url string, header http.Header, data []byte) ([]byte, int, error)
}

type httpVault struct {
	httpClient  *http.Client
	vaultConfig VaultConfig
}

func NewHTTPVault(httpClient *http.Client, vaultConfig VaultConfig) VaultHTTP {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: vaultConfig.Timeout}
	}
	return &httpVault{httpClient: httpClient, vaultConfig: vaultConfig}
}

func (httpVault *httpVault) BuildURL(params map[string]string, segments ...string) string {
	base := strings.TrimSuffix(httpVault.vaultConfig.BaseURL, "/")
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		base += "/" + segment
	}
	first := true
	for k, v := range params {
		if v == "" {
			continue
		}
		if first {
			base += "?"
			first = false
		} else {
			base += "&"
		}
		base += fmt.Sprintf("%s=%s", k, v)
	}
	return base
}

func (httpVault *httpVault) Do(ctx context.Context, method, url string, header http.Header, data []byte) ([]byte, int, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if data != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if ua := httpVault.vaultConfig.UserAgent; ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	req.Header.Set("X-Request-Id", utils.UUIDv4NoDash())

	resp, err := httpVault.httpClient.Do(req)
	if err != nil {
		return nil, 0, &api.TransportError{Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &api.TransportError{Err: err}
	}
	return b, resp.StatusCode, nil
}
