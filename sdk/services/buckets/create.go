// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package buckets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Create performs GET {base}/bucket/create. The vault issues at most one
// bucket per caller, so repeating the call hands back the existing one.
func (s *BucketsService) Create(ctx context.Context) (*api.Bucket, error) {
	url := s.http.BuildURL(nil, "bucket", "create")
	b, status, err := s.http.Do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("bucket create failed (status %d): %w", status, err)
	}

	var bucket api.Bucket
	if err := api.Decode(status, b, &bucket); err != nil {
		return nil, err
	}
	return &bucket, nil
}
