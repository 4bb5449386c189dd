// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"context"
	"net/http"
)

// fakeVault satisfies config.VaultHTTP and records the last request so
// tests can assert on what would have gone over the wire.
type fakeVault struct {
	status int
	body   []byte
	err    error

	calls  int
	method string
	url    string
	header http.Header
	sent   []byte
}

func (f *fakeVault) BuildURL(params map[string]string, segments ...string) string {
	base := "https://vault.test/rest"
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
		base += k + "=" + v
	}
	return base
}

func (f *fakeVault) Do(_ context.Context, method, url string, header http.Header, data []byte) ([]byte, int, error) {
	f.calls++
	f.method = method
	f.url = url
	f.header = header
	f.sent = data
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.body, f.status, nil
}

const notFoundBody = `{"status":404,"message":"not found","name":"NotFoundError"}`
