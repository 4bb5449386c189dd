// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"sigs.k8s.io/yaml"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/files"
)

// loadUploadOptions reads a YAML options file into a flat map, e.g.
//
//	bucket: some-token
//	expires: 2d
//	hide_filename: true
func loadUploadOptions(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}
	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("yaml to json failed: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(jsonBytes, &m); err != nil {
		return nil, fmt.Errorf("failed to parse after JSON conversion: %w", err)
	}
	return m, nil
}

// applyUploadOptions maps merged option keys onto the request. Keys use
// the wire names, so an options file doubles as upload documentation.
func applyUploadOptions(req *files.UploadRequest, opts map[string]any) error {
	for key, raw := range opts {
		switch key {
		case "bucket":
			s, ok := raw.(string)
			if !ok {
				return badOption(key, raw)
			}
			req.Bucket = s
		case "password":
			s, ok := raw.(string)
			if !ok {
				return badOption(key, raw)
			}
			req.Password = s
		case "expires":
			s, ok := raw.(string)
			if !ok {
				return badOption(key, raw)
			}
			e, err := parseExpiry(s)
			if err != nil {
				return err
			}
			req.Expires = e
		case "hide_filename":
			b, ok := raw.(bool)
			if !ok {
				return badOption(key, raw)
			}
			req.HideFilename = b
		case "one_time_download":
			b, ok := raw.(bool)
			if !ok {
				return badOption(key, raw)
			}
			req.OneTimeDownload = b
		default:
			return fmt.Errorf("unknown upload option %q", key)
		}
	}
	return nil
}

func badOption(key string, v any) error {
	return fmt.Errorf("upload option %q has unusable value %v", key, v)
}

// parseExpiry turns "2d" into a typed expiry.
func parseExpiry(raw string) (*files.Expiry, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("invalid expiry %q (expected e.g. 10m, 2h, 1d)", raw)
	}
	unit := files.ExpiryUnit(raw[len(raw)-1:])
	switch unit {
	case files.Minutes, files.Hours, files.Days:
	default:
		return nil, fmt.Errorf("invalid expiry unit in %q (use m, h or d)", raw)
	}
	amount, err := strconv.Atoi(raw[:len(raw)-1])
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("invalid expiry amount in %q", raw)
	}
	return &files.Expiry{Amount: amount, Unit: unit}, nil
}
