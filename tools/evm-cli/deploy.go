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
	codeFlag = cli.StringFlag{
		Name:     "code",
		Usage:    "the 0x-prefixed hex encoded runtime code",
		Required: true,
	}
)

var deployCommand = cli.Command{
	Action: deploy,
	Name:   "deploy",
	Usage:  "installs runtime code at an address without running any init code",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&chainIdFlag,
		&blockNumberFlag,
		&blockTimestampFlag,
		&addressFlag,
		&codeFlag,
	},
}

func deploy(ctx *cli.Context) (err error) {
	address, err := parseAddress(ctx, &addressFlag)
	if err != nil {
		return err
	}
	code, err := parseHex(ctx, &codeFlag)
	if err != nil {
		return err
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	if err := executor.Deploy(store, address, code); err != nil {
		return err
	}
	log.Info("Contract deployed", "address", address, "size", len(code))
	return nil
}
