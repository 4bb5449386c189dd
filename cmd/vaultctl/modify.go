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

// modifyCmd builds the modification from the flags that were actually
// given: an untouched flag stays out of the payload entirely, so
// "vaultctl modify -hide-filename=false <token>" and plain
// "vaultctl modify <token>" mean different things.
func modifyCmd(args []string) error {
	fs := flag.NewFlagSet("modify", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	password := fs.String("password", "", "new password ('-' prompts, empty clears)")
	previous := fs.String("previous-password", "", "current password ('-' prompts)")
	expiry := fs.String("expiry", "", "new retention, e.g. 1h")
	hideFilename := fs.Bool("hide-filename", false, "serve the file under a random name")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("usage: vaultctl modify [flags] <token>")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}

	req := files.ModificationRequest{Token: fs.Arg(0)}
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "password":
			pw, err := resolvePassword(*password, "New password: ")
			if err != nil {
				visitErr = err
				return
			}
			req.Password = &pw
		case "previous-password":
			pw, err := resolvePassword(*previous, "Current password: ")
			if err != nil {
				visitErr = err
				return
			}
			req.PreviousPassword = &pw
		case "expiry":
			e, err := parseExpiry(*expiry)
			if err != nil {
				visitErr = err
				return
			}
			req.CustomExpiry = e
		case "hide-filename":
			req.HideFilename = hideFilename
		}
	})
	if visitErr != nil {
		return visitErr
	}

	svc, err := files.NewFilesService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	info, err := svc.Modify(context.Background(), req)
	if err != nil {
		return err
	}
	return printEntity(info, *output)
}
