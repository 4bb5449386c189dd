// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

// Package api holds the vault's wire types and maps transport results
// onto them or onto typed errors.
package api

import (
	"fmt"
	"net/http"
)

// ValidationError reports request input rejected before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// IOError reports a local filesystem failure while preparing a request.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from the vault, decoded from its error
// envelope when the body carries one.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	name := e.Name
	if name == "" {
		name = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("vault responded with %d %s: %s", e.StatusCode, name, e.Message)
}

// DecodeError reports a 2xx body that does not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError wraps a network-level failure from the HTTP client.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
