// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package albums

import (
	"context"
	"fmt"
	"net/http"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Share performs GET {base}/album/share/{token}, turning the album
// public. The response description carries the public URL.
func (s *AlbumsService) Share(ctx context.Context, req ShareRequest) (*api.GenericResponse, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "album token is empty"}
	}

	url := s.http.BuildURL(nil, "album", "share", req.Token)
	b, status, err := s.http.Do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("share request failed (status %d): %w", status, err)
	}

	var resp api.GenericResponse
	if err := api.Decode(status, b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
