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

// Delete performs DELETE {base}/bucket/{token}, removing the bucket and
// every file in it. The vault answers with a bare JSON boolean.
func (s *BucketsService) Delete(ctx context.Context, req DeleteRequest) (bool, error) {
	if req.Token == "" {
		return false, &api.ValidationError{Reason: "bucket token is empty"}
	}

	url := s.http.BuildURL(nil, "bucket", req.Token)
	b, status, err := s.http.Do(ctx, http.MethodDelete, url, nil, nil)
	if err != nil {
		return false, fmt.Errorf("bucket delete failed (status %d): %w", status, err)
	}

	var deleted bool
	if err := api.Decode(status, b, &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}
