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
	"os"
	"runtime/pprof"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/config"
	"github.com/Terranova-EVM/terranova-core/state/ldb"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "a TOML file with configuration parameters",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "the log level (trace, debug, info, warn, error, crit)",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "enable the collection of metrics",
	}
	dbDirectoryFlag = cli.StringFlag{
		Name:     "dir",
		Usage:    "the targeted state directory",
		Required: true,
	}
	chainIdFlag = cli.Uint64Flag{
		Name:  "chain-id",
		Usage: "the chain transactions are accepted for",
	}
	blockNumberFlag = cli.Uint64Flag{
		Name:  "block-number",
		Usage: "the number of the block transactions are executed in",
	}
	blockTimestampFlag = cli.Uint64Flag{
		Name:  "block-timestamp",
		Usage: "the timestamp of the block transactions are executed in",
	}
	addressFlag = cli.StringFlag{
		Name:     "address",
		Usage:    "the hex encoded address of the account",
		Required: true,
	}
	cpuProfilingFlag = cli.StringFlag{
		Name:  "cpu-profile",
		Usage: "enable the recording of a CPU profile",
	}
)

// loadConfig resolves the configuration from the config file and the
// command line flags, the flags taking precedence.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String(configFileFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(dbDirectoryFlag.Name) {
		cfg.Store.Directory = ctx.String(dbDirectoryFlag.Name)
	}
	if ctx.IsSet(chainIdFlag.Name) {
		cfg.Chain.ChainID = ctx.Uint64(chainIdFlag.Name)
	}
	if ctx.IsSet(blockNumberFlag.Name) {
		cfg.Chain.BlockNumber = ctx.Uint64(blockNumberFlag.Name)
	}
	if ctx.IsSet(blockTimestampFlag.Name) {
		cfg.Chain.BlockTimestamp = ctx.Uint64(blockTimestampFlag.Name)
	}
	return cfg, cfg.Validate()
}

func setupLogging(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, true)))
	return nil
}

// open opens the store in the configured directory.
func open(ctx *cli.Context) (*ldb.Store, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Opening state", "directory", cfg.Store.Directory, "block", cfg.Chain.BlockNumber, "chain", cfg.Chain.ChainID)
	return ldb.Open(cfg.StoreParameters())
}

// closeStore closes the store, keeping the first error encountered.
func closeStore(store *ldb.Store, err *error) {
	log.Info("Closing state")
	if closeError := store.Close(); closeError != nil {
		if *err == nil {
			*err = closeError
		} else {
			log.Error("Failure closing DB", "err", closeError)
		}
	}
}

func parseAddress(ctx *cli.Context, flag *cli.StringFlag) (common.Address, error) {
	value := ctx.String(flag.Name)
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid address for --%s: %q", flag.Name, value)
	}
	return common.HexToAddress(value), nil
}

func parseAmount(ctx *cli.Context, flag *cli.StringFlag) (amount.Amount, error) {
	value, err := amount.ParseDecimal(ctx.String(flag.Name))
	if err != nil {
		return amount.Amount{}, fmt.Errorf("invalid amount for --%s: %w", flag.Name, err)
	}
	return value, nil
}

func parseHex(ctx *cli.Context, flag *cli.StringFlag) ([]byte, error) {
	data, err := hexutil.Decode(ctx.String(flag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid hex data for --%s: %w", flag.Name, err)
	}
	return data, nil
}

func StartCPUProfile(profileName string) error {
	f, err := os.Create(profileName)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %s", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %s", err)
	}
	return nil
}

func StopCPUProfile() {
	pprof.StopCPUProfile()
}
