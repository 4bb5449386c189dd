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

// Get performs GET {base}/album/{token} and returns the album with its
// file entries.
func (s *AlbumsService) Get(ctx context.Context, req GetRequest) (*api.Album, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "album token is empty"}
	}

	url := s.http.BuildURL(nil, "album", req.Token)
	b, status, err := s.http.Do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("album get failed (status %d): %w", status, err)
	}

	var album api.Album
	if err := api.Decode(status, b, &album); err != nil {
		return nil, err
	}
	return &album, nil
}
