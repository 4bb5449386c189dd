// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

// restrictionsCmd fetches the vault's current upload limits, bypassing
// the cache so the answer is always live.
func restrictionsCmd(args []string) error {
	fs := flag.NewFlagSet("restrictions", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	list, err := utils.FetchRestrictions(viper.GetString(utils.VaultEndpoint))
	if err != nil {
		return err
	}

	format := *output
	if format == "" {
		format = viper.GetString(utils.VaultOutput)
	}
	if utils.TranslateFormat(format) != "short" {
		return printEntity(list, format)
	}

	for _, r := range list {
		val := utils.ReflectValue(r.Value)
		if r.Type == utils.RestrictionMaxFileSize {
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				val = utils.HumanSize(n)
			}
		}
		fmt.Printf("%s: %s\n", r.Type, val)
	}
	return nil
}
