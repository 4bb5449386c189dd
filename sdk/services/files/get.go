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

// Get performs GET {base}/{token} and returns the file's metadata.
func (s *FilesService) Get(ctx context.Context, req GetRequest) (*api.FileInfo, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "token is empty"}
	}

	params := map[string]string{}
	if req.Formatted {
		params["formatted"] = "true"
	}

	url := s.http.BuildURL(params, req.Token)
	b, status, err := s.http.Do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("info request failed (status %d): %w", status, err)
	}

	var info api.FileInfo
	if err := api.Decode(status, b, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
