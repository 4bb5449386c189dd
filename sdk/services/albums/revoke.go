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

// Revoke performs GET {base}/album/revoke/{token}. The public URL stops
// working immediately; a later Share issues a fresh one.
func (s *AlbumsService) Revoke(ctx context.Context, req RevokeRequest) (*api.GenericResponse, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "album token is empty"}
	}

	url := s.http.BuildURL(nil, "album", "revoke", req.Token)
	b, status, err := s.http.Do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("revoke request failed (status %d): %w", status, err)
	}

	var resp api.GenericResponse
	if err := api.Decode(status, b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
