// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/waifuvault/waifuvault-go-sdk/sdk/services/files"
	"github.com/waifuvault/waifuvault-go-sdk/sdk/utils"
)

func deleteCmd(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	env := fs.String("env", "", "ini environment to use")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return errors.New("usage: vaultctl delete [flags] <token>")
	}
	if err := bootstrap(*env); err != nil {
		return err
	}

	token := fs.Arg(0)
	if !*yes {
		utils.WaitForConfirmation(fmt.Sprintf("Delete file %s? [Y/n] ", token))
	}

	svc, err := files.NewFilesService(context.Background(), vaultConfig())
	if err != nil {
		return err
	}
	ok, err := svc.Delete(context.Background(), files.DeleteRequest{Token: token})
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}
