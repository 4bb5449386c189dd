// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

// configurable keys, in display order
var configKeys = []string{
	utils.VaultEndpoint,
	utils.VaultBucket,
	utils.VaultAlbum,
	utils.VaultTimeout,
	utils.VaultOutput,
}

func configCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: vaultctl config <show|set> [flags] [args]")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		return configShowCmd(rest)
	case "set":
		return configSetCmd(rest)
	default:
		return fmt.Errorf("unknown config command %q", sub)
	}
}

func configShowCmd(args []string) error {
	fs := flag.NewFlagSet("config show", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	fs.Parse(args)

	// no restrictions refresh here, just the stored values
	if err := utils.RegisterIniCfgWithViper(*env); err != nil {
		return err
	}

	fmt.Printf("environment: %s (%s)\n", viper.GetString(utils.CurrentEnvironment), utils.IniPath())
	for _, key := range configKeys {
		fmt.Printf("%s: %s\n", key, viper.GetString(key))
	}
	return nil
}

func configSetCmd(args []string) error {
	fs := flag.NewFlagSet("config set", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	fs.Parse(args)

	if fs.NArg() != 2 {
		return errors.New("usage: vaultctl config set [flags] <key> <value>")
	}
	key, value := fs.Arg(0), fs.Arg(1)

	known := false
	for _, k := range configKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown config key %q", key)
	}
	if key == utils.VaultTimeout {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
	}

	if err := utils.RegisterIniCfgWithViper(*env); err != nil {
		return err
	}
	viper.Set(key, value)
	if err := utils.UpdateIniSectionFromViper(); err != nil {
		return err
	}
	utils.Infof("Saved %s", key)
	return nil
}
