// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package buckets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/api"
)

// Get performs POST {base}/bucket/get and returns the bucket together
// with its files and albums. The token travels in the body, not the
// path, so it never ends up in server access logs.
func (s *BucketsService) Get(ctx context.Context, req GetRequest) (*api.Bucket, error) {
	if req.Token == "" {
		return nil, &api.ValidationError{Reason: "bucket token is empty"}
	}

	body, err := json.Marshal(map[string]string{"bucket_token": req.Token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	url := s.http.BuildURL(nil, "bucket", "get")
	b, status, err := s.http.Do(ctx, http.MethodPost, url, nil, body)
	if err != nil {
		return nil, fmt.Errorf("bucket get failed (status %d): %w", status, err)
	}

	var bucket api.Bucket
	if err := api.Decode(status, b, &bucket); err != nil {
		return nil, err
	}
	return &bucket, nil
}
