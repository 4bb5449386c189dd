// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Restriction is one upload limit advertised by the vault, e.g.
// {"type":"MAX_FILE_SIZE","value":536870912}.
type Restriction struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// CheckUpdateRestrictions decides whether to refresh the cached upload
// restrictions:
// - missing/empty timestamp -> update
// - invalid timestamp       -> update
// - older than TTL          -> update
func CheckUpdateRestrictions() {
	if viper.IsSet(IniSource) && viper.GetString(IniSource) == "env" {
		return
	}

	val := viper.GetString(UpdatedEnvKey)
	if !viper.IsSet(UpdatedEnvKey) || val == "" {
		updateRestrictions()
		return
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		updateRestrictions()
		return
	}

	age := time.Now().UTC().Sub(t.UTC())
	ttl := time.Duration(outdatedAfterHours) * time.Hour
	if age >= ttl {
		updateRestrictions()
	}
}

// Fetch restrictions, update Viper, bump timestamp, persist allowlisted keys.
func updateRestrictions() {
	baseEndpoint := viper.GetString(VaultEndpoint)
	if baseEndpoint == "" {
		return
	}

	list, err := FetchRestrictions(baseEndpoint)
	if err != nil {
		log.Printf("Restrictions fetch failed: %v\n", err)
		return
	}

	raw, err := json.Marshal(list)
	if err != nil {
		log.Printf("Restrictions encode failed: %v\n", err)
		return
	}
	viper.Set(VaultRestrictions, string(raw))
	viper.Set(UpdatedEnvKey, time.Now().UTC().Format(time.RFC3339))

	env := viper.GetString(CurrentEnvironment)
	if env == "" {
		env = resolveEnvName()
	}
	if err := UpdateIniFromStruct(getIniPath(), env); err != nil {
		log.Printf("Persist failed: %v\n", err)
	}
}

// FetchRestrictions pulls the current upload limits from the vault.
func FetchRestrictions(baseEndpoint string) ([]Restriction, error) {
	var list []Restriction
	if err := FetchJSON(baseEndpoint+"/resources/restrictions", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// RestrictionValue returns the cached value for one restriction type, or
// "" when the cache is cold or the type is unknown.
func RestrictionValue(rtype string) string {
	raw := viper.GetString(VaultRestrictions)
	if raw == "" {
		return ""
	}
	var list []Restriction
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return ""
	}
	for _, r := range list {
		if r.Type == rtype {
			return ReflectValue(r.Value)
		}
	}
	return ""
}

// UpdateIniSectionFromViper persists the active environment's keys back to
// the INI, e.g. after the CLI stored a fresh bucket token.
func UpdateIniSectionFromViper() error {
	env := viper.GetString(CurrentEnvironment)
	if env == "" {
		env = resolveEnvName()
	}
	if err := UpdateIniFromStruct(getIniPath(), env); err != nil {
		return fmt.Errorf("failed to save ini: %w", err)
	}
	return nil
}
