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

// Disassociate performs POST {base}/album/{token}/disassociate. The
// files stay in their bucket, only the album membership is removed.
func (s *AlbumsService) Disassociate(ctx context.Context, req DisassociateRequest) (*api.Album, error) {
	if req.AlbumToken == "" {
		return nil, &api.ValidationError{Reason: "album token is empty"}
	}
	if len(req.FileTokens) == 0 {
		return nil, &api.ValidationError{Reason: "no file tokens given"}
	}

	body, err := json.Marshal(map[string][]string{"fileTokens": req.FileTokens})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(nil, "album", req.AlbumToken, "disassociate")
	b, status, err := s.http.Do(ctx, http.MethodPost, url, nil, body)
	if err != nil {
		return nil, fmt.Errorf("disassociate request failed (status %d): %w", status, err)
	}

	var album api.Album
	if err := api.Decode(status, b, &album); err != nil {
		return nil, err
	}
	return &album, nil
}
