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

// Download performs POST {base}/album/download/{token} and returns the
// zip archive the vault builds, as raw bytes. The body lists the file
// ids to include; an empty list means every file in the album.
func (s *AlbumsService) Download(ctx context.Context, req DownloadRequest) ([]byte, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "album token is empty"}
	}

	files := req.Files
	if files == nil {
		files = []int{}
	}
	body, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(nil, "album", "download", req.Token)
	b, status, err := s.http.Do(ctx, http.MethodPost, url, nil, body)
	if err != nil {
		return nil, fmt.Errorf("album download failed (status %d): %w", status, err)
	}

	if err := api.CheckStatus(status, b); err != nil {
		return nil, err
	}
	return b, nil
}
