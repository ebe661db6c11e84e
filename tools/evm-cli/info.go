// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	accountFlag = cli.StringFlag{
		Name:  "address",
		Usage: "the hex encoded address of an account to print",
	}
)

var getInfoCommand = cli.Command{
	Action: getInfo,
	Name:   "info",
	Usage:  "prints summary information about a state directory or one of its accounts",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&chainIdFlag,
		&blockNumberFlag,
		&blockTimestampFlag,
		&accountFlag,
	},
}

func getInfo(ctx *cli.Context) (err error) {
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	fmt.Printf("Chain ID: %d\n", store.ChainID())
	fmt.Printf("Block number: %d\n", store.BlockNumber())
	fmt.Printf("Block timestamp: %d\n", store.BlockTimestamp())

	if !ctx.IsSet(accountFlag.Name) {
		return nil
	}
	address, err := parseAddress(ctx, &accountFlag)
	if err != nil {
		return err
	}
	exists, err := store.Exists(address)
	if err != nil {
		return err
	}
	fmt.Printf("Account %v\n", address)
	fmt.Printf("  exists: %t\n", exists)
	if !exists {
		return nil
	}
	nonce, err := store.Nonce(address)
	if err != nil {
		return err
	}
	balance, err := store.Balance(address)
	if err != nil {
		return err
	}
	size, err := store.CodeSize(address)
	if err != nil {
		return err
	}
	hash, err := store.CodeHash(address)
	if err != nil {
		return err
	}
	fmt.Printf("  nonce: %d\n", nonce)
	fmt.Printf("  balance: %v\n", balance)
	fmt.Printf("  code size: %d\n", size)
	fmt.Printf("  code hash: %v\n", hash)
	return nil
}
