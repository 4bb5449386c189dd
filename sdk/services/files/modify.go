// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Modify performs PATCH {base}/{token}. Only set fields end up in the
// JSON body; the server treats absence as "leave unchanged".
func (s *FilesService) Modify(ctx context.Context, req ModificationRequest) (*api.FileInfo, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "token is empty"}
	}
	if req.Password == nil && req.PreviousPassword == nil && req.CustomExpiry == nil && req.HideFilename == nil {
		return nil, &api.ValidationError{Reason: "no changes requested"}
	}
	if req.CustomExpiry != nil {
		if err := validateExpiry(*req.CustomExpiry); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(nil, req.Token)
	b, status, err := s.http.Do(ctx, http.MethodPatch, url, nil, body)
	if err != nil {
		return nil, fmt.Errorf("modification request failed (status %d): %w", status, err)
	}

	var info api.FileInfo
	if err := api.Decode(status, b, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
