// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

// printEntity renders v in the requested format. An empty format falls
// back to the configured vault_output.
func printEntity(v any, format string) error {
	if format == "" {
		format = viper.GetString(utils.VaultOutput)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}

	switch utils.TranslateFormat(format) {
	case "json":
		fmt.Println(utils.PrettyJSON(b))
	case "yaml":
		y, err := yaml.JSONToYAML(b)
		if err != nil {
			return fmt.Errorf("json to yaml failed: %w", err)
		}
		fmt.Print(string(y))
	default:
		fmt.Print(renderShort(b))
	}
	return nil
}

// renderShort prints one "key: value" line per top-level field, sorted,
// with nested values inlined as compact JSON.
func renderShort(jsonBytes []byte) string {
	var m map[string]any
	if err := json.Unmarshal(jsonBytes, &m); err != nil {
		return string(jsonBytes) + "\n"
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		switch v := m[k].(type) {
		case map[string]any, []any:
			compact, _ := json.Marshal(v)
			fmt.Fprintf(&sb, "%s: %s\n", k, compact)
		default:
			fmt.Fprintf(&sb, "%s: %s\n", k, utils.ReflectValue(v))
		}
	}
	return sb.String()
}
