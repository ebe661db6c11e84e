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
	"sort"

	"github.com/Terranova-EVM/terranova-core/executor"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

var (
	callerFlag = cli.StringFlag{
		Name:     "caller",
		Usage:    "the hex encoded address of the sender",
		Required: true,
	}
	txFlag = cli.StringFlag{
		Name:     "tx",
		Usage:    "the 0x-prefixed hex encoded RLP of the unsigned transaction",
		Required: true,
	}
	queryFlag = cli.BoolFlag{
		Name:  "query",
		Usage: "run the transaction without modifying the state",
	}
)

var execCommand = cli.Command{
	Action: execute,
	Name:   "exec",
	Usage:  "executes an unsigned transaction on a state directory",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&chainIdFlag,
		&blockNumberFlag,
		&blockTimestampFlag,
		&callerFlag,
		&txFlag,
		&queryFlag,
		&cpuProfilingFlag,
	},
}

func execute(ctx *cli.Context) (err error) {
	profileTarget := ctx.String(cpuProfilingFlag.Name)
	if len(profileTarget) != 0 {
		if err := StartCPUProfile(profileTarget); err != nil {
			return err
		}
		defer StopCPUProfile()
	}

	caller, err := parseAddress(ctx, &callerFlag)
	if err != nil {
		return err
	}
	raw, err := parseHex(ctx, &txFlag)
	if err != nil {
		return err
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	processor := executor.NewProcessor(executor.ValueTransferInterpreter{})
	if ctx.Bool(queryFlag.Name) {
		output, err := processor.Query(store, caller, raw)
		if err != nil {
			return err
		}
		fmt.Printf("Output: %v\n", hexutil.Encode(output))
		return nil
	}

	receipt, err := processor.Execute(store, caller, raw)
	if err != nil {
		return err
	}
	fmt.Printf("Transaction: %v\n", receipt.TxHash)
	fmt.Printf("Success: %t\n", receipt.Success)
	if receipt.Err != nil {
		fmt.Printf("Failure: %v\n", receipt.Err)
	}
	fmt.Printf("Gas used: %d\n", receipt.GasUsed)
	if receipt.ContractAddress != nil {
		fmt.Printf("Contract address: %v\n", receipt.ContractAddress)
	}
	fmt.Printf("Logs: %d\n", len(receipt.Logs))
	fmt.Printf("Output: %v\n", hexutil.Encode(receipt.Output))
	printMetrics()
	return nil
}

// printMetrics prints the counters collected when metrics are enabled.
func printMetrics() {
	if !metrics.Enabled {
		return
	}
	counts := map[string]int64{}
	metrics.DefaultRegistry.Each(func(name string, metric interface{}) {
		if counter, ok := metric.(metrics.Counter); ok {
			counts[name] = counter.Snapshot().Count()
		}
	})
	names := maps.Keys(counts)
	sort.Strings(names)
	fmt.Println("Metrics:")
	for _, name := range names {
		fmt.Printf("  %s: %d\n", name, counts[name])
	}
}
