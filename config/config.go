// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package config defines the configuration of the state-transition core and
// loads it from TOML files.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/state/ldb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is reported for configurations that can not be used.
const ErrInvalidConfig = common.ConstError("invalid configuration")

// DefaultChainID is the chain transactions are accepted for by default.
const DefaultChainID = 789_789_789

// Config is the complete set of configuration parameters.
type Config struct {
	Store StoreConfig `toml:"store"`
	Chain ChainConfig `toml:"chain"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig configures the durable state.
type StoreConfig struct {
	// Directory of the LevelDB files; empty for an in-memory store.
	Directory string `toml:"directory"`
	CacheSize int    `toml:"cache_size"`
}

// ChainConfig describes the chain and the block transactions are executed in.
type ChainConfig struct {
	ChainID        uint64 `toml:"chain_id"`
	BlockNumber    uint64 `toml:"block_number"`
	BlockTimestamp uint64 `toml:"block_timestamp"`
}

// LogConfig configures the logger of command line tools.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, or crit.
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Directory: "",
			CacheSize: ldb.DefaultCacheSize,
		},
		Chain: ChainConfig{
			ChainID: DefaultChainID,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from the given TOML file. Parameters not
// listed in the file keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes a TOML configuration. Unknown parameters are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the consistency of the configuration.
func (c *Config) Validate() error {
	if c.Store.CacheSize <= 0 {
		return fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalidConfig, c.Store.CacheSize)
	}
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("%w: chain id must not be zero", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	level, found := logLevels[strings.ToLower(c.Log.Level)]
	if !found {
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return level, nil
}

var logLevels = map[string]slog.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"crit":  log.LevelCrit,
}

// StoreParameters returns the parameters for opening the configured store.
func (c *Config) StoreParameters() ldb.Parameters {
	return ldb.Parameters{
		Directory: c.Store.Directory,
		CacheSize: c.Store.CacheSize,
		Context: ldb.BlockContext{
			Number:    c.Chain.BlockNumber,
			Timestamp: c.Chain.BlockTimestamp,
			ChainID:   c.Chain.ChainID,
		},
	}
}
