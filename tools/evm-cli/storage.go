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

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var storageCommand = cli.Command{
	Action: listStorage,
	Name:   "storage",
	Usage:  "lists the non-zero storage slots of a contract",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&chainIdFlag,
		&blockNumberFlag,
		&blockTimestampFlag,
		&addressFlag,
	},
}

func listStorage(ctx *cli.Context) (err error) {
	address, err := parseAddress(ctx, &addressFlag)
	if err != nil {
		return err
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	count := 0
	err = store.ForEachStorage(address, func(key, value uint256.Int) {
		fmt.Printf("%v: %v\n", key.Hex(), value.Hex())
		count++
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d slots\n", count)
	return nil
}
