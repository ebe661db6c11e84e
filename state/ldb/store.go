// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"fmt"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/state"
	"github.com/ethereum/go-ethereum/log"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// DefaultCacheSize is the number of account records kept in memory by default.
const DefaultCacheSize = 1 << 14

// BlockContext describes the block transactions are currently processed in.
type BlockContext struct {
	Number    uint64
	Timestamp uint64
	ChainID   uint64
}

// Parameters configure a Store.
type Parameters struct {
	// Directory holds the LevelDB files. An empty directory selects an
	// in-memory database.
	Directory string
	// CacheSize is the capacity of the account cache.
	CacheSize int
	Context   BlockContext
}

// Store is the durable world state. It implements state.Backend, writing
// directly into the database, and offers transactions through Begin.
type Store struct {
	accessor
	db      *leveldb.DB
	context BlockContext
}

// Open opens or creates the store described by the given parameters.
func Open(params Parameters) (*Store, error) {
	var db *leveldb.DB
	var err error
	if params.Directory == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(params.Directory, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB in %q: %w", params.Directory, err)
	}
	cacheSize := params.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	store := &Store{
		db:      db,
		context: params.Context,
	}
	store.accessor = accessor{
		db:       db,
		context:  &store.context,
		accounts: common.NewLruCache[common.Address, accountEntry](cacheSize),
	}
	log.Debug("Opened state store", "directory", params.Directory, "cache", cacheSize)
	return store, nil
}

// OpenInMemory creates an empty store not backed by any files.
func OpenInMemory(context BlockContext) (*Store, error) {
	return Open(Parameters{Context: context})
}

// BlockContext returns the block transactions are currently processed in.
func (s *Store) BlockContext() BlockContext {
	return s.context
}

// SetBlockContext updates the block transactions are processed in. It must
// not be called while a transaction is pending.
func (s *Store) SetBlockContext(context BlockContext) {
	s.context = context
}

// Begin starts a transaction. Only a single transaction may be open at any
// time; writes to the store block until it is committed or discarded.
func (s *Store) Begin() (state.Transaction, error) {
	tx, err := s.db.OpenTransaction()
	if err != nil {
		return nil, err
	}
	return &Transaction{
		accessor: accessor{
			db:      tx,
			context: &s.context,
			touched: map[common.Address]struct{}{},
		},
		tx:    tx,
		store: s,
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	s.accounts.Clear()
	return s.db.Close()
}

// Transaction is a pending set of changes to a Store.
type Transaction struct {
	accessor
	tx    *leveldb.Transaction
	store *Store
}

// Commit writes the changes of the transaction into the store.
func (t *Transaction) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return err
	}
	for address := range t.touched {
		t.store.accounts.Remove(address)
	}
	log.Trace("Committed state transaction", "accounts", len(t.touched))
	return nil
}

// Discard drops the changes of the transaction.
func (t *Transaction) Discard() {
	t.tx.Discard()
}

var (
	_ state.Backend     = (*Store)(nil)
	_ state.Transaction = (*Transaction)(nil)
)
