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
	"github.com/Terranova-EVM/terranova-core/executor"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "the decimal balance to be assigned",
		Value: "100000000",
	}
)

var airdropCommand = cli.Command{
	Action: airdrop,
	Name:   "airdrop",
	Usage:  "sets the balance of an account, creating it if needed",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&chainIdFlag,
		&blockNumberFlag,
		&blockTimestampFlag,
		&addressFlag,
		&amountFlag,
	},
}

func airdrop(ctx *cli.Context) (err error) {
	address, err := parseAddress(ctx, &addressFlag)
	if err != nil {
		return err
	}
	balance, err := parseAmount(ctx, &amountFlag)
	if err != nil {
		return err
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	if err := executor.Airdrop(store, address, balance); err != nil {
		return err
	}
	log.Info("Airdrop completed", "address", address, "balance", balance)
	return nil
}
