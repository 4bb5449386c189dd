// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/files"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

func uploadCmd(args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	bucket := fs.String("bucket", "", "bucket token (defaults to the stored one)")
	expires := fs.String("expires", "", "retention, e.g. 10m, 2h, 1d")
	password := fs.String("password", "", "encrypt the upload ('-' prompts)")
	hideFilename := fs.Bool("hide-filename", false, "serve the file under a random name")
	oneTime := fs.Bool("one-time", false, "delete the file after the first download")
	optionsFile := fs.String("options", "", "YAML file with upload options")
	name := fs.String("name", "stdin.bin", "filename for stdin uploads")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("usage: vaultctl upload [flags] <file|url|->")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}

	// options file first, explicit flags win
	opts := map[string]any{}
	if *optionsFile != "" {
		fromFile, err := loadUploadOptions(*optionsFile)
		if err != nil {
			return err
		}
		opts = fromFile
	}
	flagOpts := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bucket":
			flagOpts["bucket"] = *bucket
		case "expires":
			flagOpts["expires"] = *expires
		case "password":
			flagOpts["password"] = *password
		case "hide-filename":
			flagOpts["hide_filename"] = *hideFilename
		case "one-time":
			flagOpts["one_time_download"] = *oneTime
		}
	})
	opts = utils.MergeMaps(opts, flagOpts)

	var req files.UploadRequest
	if err := applyUploadOptions(&req, opts); err != nil {
		return err
	}
	if req.Bucket == "" {
		req.Bucket = viper.GetString(utils.VaultBucket)
	}
	pw, err := resolvePassword(req.Password, "Password for upload: ")
	if err != nil {
		return err
	}
	req.Password = pw

	target := fs.Arg(0)
	switch {
	case target == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		req.Source = files.RawBytes{Name: *name, Content: data}
	case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
		req.Source = files.RemoteURL{URL: target}
	default:
		warnIfOversized(target)
		req.Source = files.LocalFile{Path: target}
	}

	svc, err := files.NewFilesService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	info, err := svc.Upload(context.Background(), req)
	if err != nil {
		return err
	}
	return printEntity(info, *output)
}

// warnIfOversized flags uploads the vault will reject anyway, using the
// cached MAX_FILE_SIZE restriction.
func warnIfOversized(path string) {
	raw := utils.RestrictionValue(utils.RestrictionMaxFileSize)
	if raw == "" {
		return
	}
	max, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || max <= 0 {
		return
	}
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return
	}
	if st.Size() > max {
		utils.Warnf("%s is %s, above the vault limit of %s",
			path, utils.HumanSize(st.Size()), utils.HumanSize(max))
	}
}
