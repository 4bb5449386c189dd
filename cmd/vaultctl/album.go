// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/albums"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

func albumCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: vaultctl album <create|get|add|remove|delete|share|revoke|download> [flags]")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "create":
		return albumCreateCmd(rest)
	case "get":
		return albumGetCmd(rest)
	case "add":
		return albumAddCmd(rest)
	case "remove":
		return albumRemoveCmd(rest)
	case "delete":
		return albumDeleteCmd(rest)
	case "share":
		return albumShareCmd(rest)
	case "revoke":
		return albumRevokeCmd(rest)
	case "download":
		return albumDownloadCmd(rest)
	default:
		return fmt.Errorf("unknown album command %q", sub)
	}
}

func albumCreateCmd(args []string) error {
	fs := flag.NewFlagSet("album create", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	bucket := fs.String("bucket", "", "bucket token (defaults to the stored one)")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("usage: vaultctl album create [flags] <name>")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}
	bucketToken := *bucket
	if bucketToken == "" {
		bucketToken = viper.GetString(utils.VaultBucket)
	}

	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	a, err := svc.Create(context.Background(), albums.CreateRequest{
		BucketToken: bucketToken,
		Name:        fs.Arg(0),
	})
	if err != nil {
		return err
	}

	// remember the token so later album commands can omit it
	viper.Set(utils.VaultAlbum, a.Token)
	if err := utils.UpdateIniSectionFromViper(); err != nil {
		utils.Warnf("%v", err)
	}
	return printEntity(a, *output)
}

func albumGetCmd(args []string) error {
	fs := flag.NewFlagSet("album get", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token, err := albumToken(fs, 0)
	if err != nil {
		return err
	}
	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	a, err := svc.Get(context.Background(), albums.GetRequest{Token: token})
	if err != nil {
		return err
	}
	return printEntity(a, *output)
}

func albumAddCmd(args []string) error {
	fs := flag.NewFlagSet("album add", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	album := fs.String("album", "", "album token (defaults to the stored one)")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return errors.New("usage: vaultctl album add [flags] <file-token>...")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}
	token := storedAlbumToken(*album)

	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	a, err := svc.Associate(context.Background(), albums.AssociateRequest{
		AlbumToken: token,
		FileTokens: fs.Args(),
	})
	if err != nil {
		return err
	}
	return printEntity(a, *output)
}

func albumRemoveCmd(args []string) error {
	fs := flag.NewFlagSet("album remove", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	album := fs.String("album", "", "album token (defaults to the stored one)")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return errors.New("usage: vaultctl album remove [flags] <file-token>...")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}
	token := storedAlbumToken(*album)

	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	a, err := svc.Disassociate(context.Background(), albums.DisassociateRequest{
		AlbumToken: token,
		FileTokens: fs.Args(),
	})
	if err != nil {
		return err
	}
	return printEntity(a, *output)
}

func albumDeleteCmd(args []string) error {
	fs := flag.NewFlagSet("album delete", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	deleteFiles := fs.Bool("delete-files", false, "also delete the album's files")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token, err := albumToken(fs, 0)
	if err != nil {
		return err
	}
	if !*yes {
		msg := fmt.Sprintf("Delete album %s? [Y/n] ", token)
		if *deleteFiles {
			msg = fmt.Sprintf("Delete album %s and its files? [Y/n] ", token)
		}
		utils.WaitForConfirmation(msg)
	}

	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	resp, err := svc.Delete(context.Background(), albums.DeleteRequest{
		Token:       token,
		DeleteFiles: *deleteFiles,
	})
	if err != nil {
		return err
	}
	fmt.Println(resp.Description)
	return nil
}

func albumShareCmd(args []string) error {
	fs := flag.NewFlagSet("album share", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token, err := albumToken(fs, 0)
	if err != nil {
		return err
	}
	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	resp, err := svc.Share(context.Background(), albums.ShareRequest{Token: token})
	if err != nil {
		return err
	}
	// the description carries the public URL
	fmt.Println(resp.Description)
	return nil
}

func albumRevokeCmd(args []string) error {
	fs := flag.NewFlagSet("album revoke", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token, err := albumToken(fs, 0)
	if err != nil {
		return err
	}
	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	resp, err := svc.Revoke(context.Background(), albums.RevokeRequest{Token: token})
	if err != nil {
		return err
	}
	fmt.Println(resp.Description)
	return nil
}

// albumDownloadCmd fetches the album as a zip. Positional arguments
// after the first select individual files by numeric id.
func albumDownloadCmd(args []string) error {
	fs := flag.NewFlagSet("album download", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	album := fs.String("album", "", "album token (defaults to the stored one)")
	out := fs.String("out", "", "target file or directory")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token := storedAlbumToken(*album)

	var fileIDs []int
	for _, arg := range fs.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid file id %q", arg)
		}
		fileIDs = append(fileIDs, id)
	}

	svc, err := albums.NewAlbumsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	data, err := svc.Download(context.Background(), albums.DownloadRequest{
		Token: token,
		Files: fileIDs,
	})
	if err != nil {
		return err
	}

	target, err := utils.ResolveTarget(*out, token+".zip")
	if err != nil {
		return err
	}
	return utils.SaveFile(target, data)
}

// albumToken takes the positional argument at pos when given, otherwise
// the stored default album.
func albumToken(fs *flag.FlagSet, pos int) (string, error) {
	if fs.NArg() > pos {
		return fs.Arg(pos), nil
	}
	if token := viper.GetString(utils.VaultAlbum); token != "" {
		return token, nil
	}
	return "", errors.New("no album token given and none stored (run \"vaultctl album create\" first)")
}

func storedAlbumToken(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return viper.GetString(utils.VaultAlbum)
}
