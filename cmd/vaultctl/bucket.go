// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/spf13/viper"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/buckets"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

func bucketCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: vaultctl bucket <create|get|delete> [flags]")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "create":
		return bucketCreateCmd(rest)
	case "get":
		return bucketGetCmd(rest)
	case "delete":
		return bucketDeleteCmd(rest)
	default:
		return fmt.Errorf("unknown bucket command %q", sub)
	}
}

func bucketCreateCmd(args []string) error {
	fs := flag.NewFlagSet("bucket create", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	svc, err := buckets.NewBucketsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	b, err := svc.Create(context.Background())
	if err != nil {
		return err
	}

	// remember the token so later uploads land in this bucket
	viper.Set(utils.VaultBucket, b.Token)
	if err := utils.UpdateIniSectionFromViper(); err != nil {
		utils.Warnf("%v", err)
	}
	return printEntity(b, *output)
}

func bucketGetCmd(args []string) error {
	fs := flag.NewFlagSet("bucket get", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	output := fs.String("output", "", "output format: short, json or yaml")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token, err := bucketToken(fs)
	if err != nil {
		return err
	}
	svc, err := buckets.NewBucketsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	b, err := svc.Get(context.Background(), buckets.GetRequest{Token: token})
	if err != nil {
		return err
	}
	return printEntity(b, *output)
}

func bucketDeleteCmd(args []string) error {
	fs := flag.NewFlagSet("bucket delete", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)

	if err := bootstrap(*env); err != nil {
		return err
	}
	token, err := bucketToken(fs)
	if err != nil {
		return err
	}
	if !*yes {
		utils.WaitForConfirmation(fmt.Sprintf("Delete bucket %s and all its files? [Y/n] ", token))
	}
	svc, err := buckets.NewBucketsService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	ok, err := svc.Delete(context.Background(), buckets.DeleteRequest{Token: token})
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}

// bucketToken takes the positional argument when given, otherwise the
// stored default bucket.
func bucketToken(fs *flag.FlagSet) (string, error) {
	if fs.NArg() > 0 {
		return fs.Arg(0), nil
	}
	if token := viper.GetString(utils.VaultBucket); token != "" {
		return token, nil
	}
	return "", errors.New("no bucket token given and none stored (run \"vaultctl bucket create\" first)")
}
