// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"fmt"
	"net/http"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Download performs GET on the content URL reported by FileInfo.URL and
// returns the raw bytes. Protected files need the password, sent as the
// x-password header.
func (s *FilesService) Download(ctx context.Context, req DownloadRequest) ([]byte, error) {
	if req.URL == "" {
		return nil, &api.ValidationError{Reason: "content url is empty"}
	}

	var header http.Header
	if req.Password != "" {
		header = http.Header{}
		header.Set("x-password", req.Password)
	}

	b, status, err := s.http.Do(ctx, http.MethodGet, req.URL, header, nil)
	if err != nil {
		return nil, fmt.Errorf("download request failed (status %d): %w", status, err)
	}

	// The vault answers 403 both for a missing password and for a wrong
	// one; the body carries no envelope here, so spell out which it was.
	if status == http.StatusForbidden {
		msg := "this file requires a password to download"
		if req.Password != "" {
			msg = "supplied password is incorrect"
		}
		return nil, &api.APIError{StatusCode: status, Name: "Forbidden", Message: msg}
	}

	if err := api.CheckStatus(status, b); err != nil {
		return nil, err
	}
	return b, nil
}
