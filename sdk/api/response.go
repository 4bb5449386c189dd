// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"encoding/json"
)

// errorEnvelope is the document the vault returns on failure.
type errorEnvelope struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// CheckStatus maps a non-2xx response onto an APIError. The error envelope
// is decoded when the body carries one, otherwise the raw body text becomes
// the message.
func CheckStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: status}
	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		apiErr.Name = env.Name
		apiErr.Message = env.Message
		if env.Status != 0 {
			apiErr.StatusCode = env.Status
		}
		return apiErr
	}
	apiErr.Message = string(bytes.TrimSpace(body))
	return apiErr
}

// Decode checks the status and unmarshals the JSON body into out. Passing
// a nil out skips decoding for callers that only care about the status.
func Decode(status int, body []byte, out any) error {
	if err := CheckStatus(status, body); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
