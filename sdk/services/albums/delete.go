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

// Delete performs DELETE {base}/album/{token}?deleteFiles=true|false.
// With deleteFiles=false only the grouping disappears; the files remain
// in their bucket.
func (s *AlbumsService) Delete(ctx context.Context, req DeleteRequest) (*api.GenericResponse, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "album token is empty"}
	}

	params := map[string]string{
		"deleteFiles": "false",
	}
	if req.DeleteFiles {
		params["deleteFiles"] = "true"
	}

	url := s.http.BuildURL(params, "album", req.Token)
	b, status, err := s.http.Do(ctx, http.MethodDelete, url, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("album delete failed (status %d): %w", status, err)
	}

	var resp api.GenericResponse
	if err := api.Decode(status, b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
