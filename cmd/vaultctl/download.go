// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"net/url"
	"path"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/files"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

func downloadCmd(args []string) error {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	password := fs.String("password", "", "file password ('-' prompts)")
	out := fs.String("out", "", "target file or directory")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("usage: vaultctl download [flags] <token>")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}

	svc, err := files.NewFilesService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}

	// resolve the token to its content URL first
	ctx := context.Background()
	info, err := svc.Get(ctx, files.GetRequest{Token: fs.Arg(0)})
	if err != nil {
		return err
	}

	pw, err := resolvePassword(*password, "File password: ")
	if err != nil {
		return err
	}
	data, err := svc.Download(ctx, files.DownloadRequest{URL: info.URL, Password: pw})
	if err != nil {
		return err
	}

	target, err := utils.ResolveTarget(*out, filenameFromURL(info.URL))
	if err != nil {
		return err
	}
	return utils.SaveFile(target, data)
}

// filenameFromURL falls back to a fixed name when the content URL has no
// usable base segment.
func filenameFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			return base
		}
	}
	return "download.bin"
}
