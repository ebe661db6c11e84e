// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ldb implements the durable world state on top of LevelDB.
package ldb

import (
	"encoding/binary"
	"fmt"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/holiman/uint256"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// TableSpace divide key-value storage into spaces by adding a prefix to the key.
type TableSpace byte

const (
	// AccountKey is a tablespace for RLP encoded account records
	AccountKey TableSpace = 'A'
	// ContractKey is a tablespace for RLP encoded contract records
	ContractKey TableSpace = 'C'
	// StorageKey is a tablespace for contract storage slots, keyed by address and slot
	StorageKey TableSpace = 'S'
	// BlockHashKey is a tablespace mapping block numbers to block hashes
	BlockHashKey TableSpace = 'H'
)

const slotLength = 32

// DbKey expects max size of the address plus a 32 byte slot and one byte
// for the table prefix.
type DbKey [1 + common.AddressLength + slotLength]byte

func (d DbKey) ToBytes() []byte {
	return d[:]
}

// ToDBKey converts the input key to its respective table space key
func ToDBKey(t TableSpace, key []byte) DbKey {
	var dbKey DbKey
	dbKey[0] = byte(t)
	if n := copy(dbKey[1:], key); n < len(key) {
		panic(fmt.Sprintf("input key does not fit into dbkey: len(key) > len(DbKey)-1: %d > %d", len(key), len(dbKey)-1))
	}
	return dbKey
}

func accountKey(address common.Address) []byte {
	return ToDBKey(AccountKey, address[:]).ToBytes()
}

func contractKey(address common.Address) []byte {
	return ToDBKey(ContractKey, address[:]).ToBytes()
}

func storageKey(address common.Address, slot uint256.Int) []byte {
	var key [common.AddressLength + slotLength]byte
	copy(key[:], address[:])
	slot.WriteToSlice(key[common.AddressLength:])
	return ToDBKey(StorageKey, key[:]).ToBytes()
}

// storagePrefix is the common prefix of all storage keys of an address.
func storagePrefix(address common.Address) []byte {
	return append([]byte{byte(StorageKey)}, address[:]...)
}

func blockHashKey(number uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], number)
	return ToDBKey(BlockHashKey, key[:]).ToBytes()
}

// LevelDB is an interface missing in original LevelDB design.
// It contains methods common for the LevelDB instance and its Transactions.
// It allows for easy switching between transactional and non-transactional accesses.
type LevelDB interface {
	// Get gets the value for the given key. It returns ErrNotFound if the
	// DB does not contain the key.
	Get(key []byte, ro *opt.ReadOptions) (value []byte, err error)

	// Has returns true if the DB does contain the given key.
	Has(key []byte, ro *opt.ReadOptions) (bool, error)

	// NewIterator returns an iterator for the latest snapshot of the
	// underlying DB, restricted to the given range.
	// The iterator must be released after use, by calling Release method.
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator

	// Put sets the value for the given key.
	Put(key, value []byte, wo *opt.WriteOptions) error

	// Delete deletes the value for the given key.
	Delete(key []byte, wo *opt.WriteOptions) error

	// Write apply the given batch to the DB.
	Write(batch *leveldb.Batch, wo *opt.WriteOptions) error
}

var (
	_ LevelDB = (*leveldb.DB)(nil)
	_ LevelDB = (*leveldb.Transaction)(nil)
)
