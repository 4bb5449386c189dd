// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

// vaultctl is a thin command line client for a waifuvault deployment,
// built on the service packages under sdk/.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/config"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Printf("%v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "upload":
		return uploadCmd(rest)
	case "info":
		return infoCmd(rest)
	case "modify":
		return modifyCmd(rest)
	case "delete":
		return deleteCmd(rest)
	case "download":
		return downloadCmd(rest)
	case "bucket":
		return bucketCmd(rest)
	case "album":
		return albumCmd(rest)
	case "restrictions":
		return restrictionsCmd(rest)
	case "config":
		return configCmd(rest)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// bootstrap loads the INI/env configuration into viper and refreshes the
// cached upload restrictions when they are stale.
func bootstrap(env string) error {
	if err := utils.RegisterIniCfgWithViper(env); err != nil {
		return err
	}
	utils.CheckUpdateRestrictions()
	return nil
}

func vaultConfig() config.Config {
	timeout, err := time.ParseDuration(viper.GetString(utils.VaultTimeout))
	if err != nil || timeout <= 0 {
		timeout = 60 * time.Second
	}
	return config.Config{Vault: config.VaultConfig{
		BaseURL:   viper.GetString(utils.VaultEndpoint),
		Timeout:   timeout,
		UserAgent: "vaultctl",
	}}
}

func usage() {
	fmt.Fprint(os.Stderr, `vaultctl - command line client for waifuvault

Usage:
  vaultctl <command> [flags] [args]

Commands:
  upload        upload a local file, a remote URL or stdin
  info          show stored file details
  modify        change password, expiry or filename hiding
  delete        delete a stored file
  download      fetch a stored file's content
  bucket        create, inspect or delete buckets
  album         manage albums inside a bucket
  restrictions  show the vault's current upload limits
  config        show or set the persisted configuration

Use "vaultctl <command> -h" for command flags.
`)
}
