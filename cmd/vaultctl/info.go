// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/files"
)

func infoCmd(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	formatted := fs.Bool("formatted", false, "retention as text instead of epoch millis")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("usage: vaultctl info [flags] <token>")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}

	svc, err := files.NewFilesService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	info, err := svc.Get(context.Background(), files.GetRequest{
		Token:     fs.Arg(0),
		Formatted: *formatted,
	})
	if err != nil {
		return err
	}
	return printEntity(info, *output)
}
