// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package albums

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Create performs POST {base}/album/{bucketToken} with {"name": name}.
func (s *AlbumsService) Create(ctx context.Context, req CreateRequest) (*api.Album, error) {
	if req.BucketToken == "" {
		return nil, &api.ValidationError{Reason: "bucket token is empty"}
	}
	if req.Name == "" {
		return nil, &api.ValidationError{Reason: "album name is empty"}
	}

	body, err := json.Marshal(map[string]string{"name": req.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(nil, "album", req.BucketToken)
	b, status, err := s.http.Do(ctx, http.MethodPost, url, nil, body)
	if err != nil {
		return nil, fmt.Errorf("album create failed (status %d): %w", status, err)
	}

	var album api.Album
	if err := api.Decode(status, b, &album); err != nil {
		return nil, err
	}
	return &album, nil
}
