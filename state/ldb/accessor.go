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
	"errors"
	"fmt"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/state"
	geth "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// accessor implements state.Backend on top of a LevelDB instance or one of
// its transactions.
type accessor struct {
	db      LevelDB
	context *BlockContext
	// accounts caches decoded account records; nil for transactions
	accounts *common.LruCache[common.Address, accountEntry]
	// touched collects addresses written through a transaction
	touched map[common.Address]struct{}
}

type accountEntry struct {
	account state.Account
	exists  bool
}

func (a *accessor) BlockNumber() uint64 {
	return a.context.Number
}

func (a *accessor) BlockTimestamp() uint64 {
	return a.context.Timestamp
}

func (a *accessor) ChainID() uint64 {
	return a.context.ChainID
}

func (a *accessor) BlockHash(number uint64) (common.Hash, error) {
	data, err := a.db.Get(blockHashKey(number), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return common.Hash{}, nil
	}
	if err != nil {
		return common.Hash{}, err
	}
	return geth.BytesToHash(data), nil
}

func (a *accessor) getAccount(address common.Address) (state.Account, bool, error) {
	if a.accounts != nil {
		if entry, found := a.accounts.Get(address); found {
			return entry.account, entry.exists, nil
		}
	}
	data, err := a.db.Get(accountKey(address), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		a.cacheAccount(accountEntry{account: state.NewAccount(address)})
		return state.NewAccount(address), false, nil
	}
	if err != nil {
		return state.Account{}, false, err
	}
	var account state.Account
	if err := rlp.DecodeBytes(data, &account); err != nil {
		return state.Account{}, false, fmt.Errorf("failed to decode account %v: %w", address, err)
	}
	a.cacheAccount(accountEntry{account: account, exists: true})
	return account, true, nil
}

func (a *accessor) putAccount(account state.Account) error {
	data, err := rlp.EncodeToBytes(&account)
	if err != nil {
		return err
	}
	if err := a.db.Put(accountKey(account.Address), data, nil); err != nil {
		return err
	}
	a.cacheAccount(accountEntry{account: account, exists: true})
	a.touch(account.Address)
	return nil
}

func (a *accessor) cacheAccount(entry accountEntry) {
	if a.accounts != nil {
		a.accounts.Set(entry.account.Address, entry)
	}
}

func (a *accessor) touch(address common.Address) {
	if a.touched != nil {
		a.touched[address] = struct{}{}
	}
}

func (a *accessor) getContract(address common.Address) (state.Contract, bool, error) {
	data, err := a.db.Get(contractKey(address), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return state.Contract{}, false, nil
	}
	if err != nil {
		return state.Contract{}, false, err
	}
	var contract state.Contract
	if err := rlp.DecodeBytes(data, &contract); err != nil {
		return state.Contract{}, false, fmt.Errorf("failed to decode contract %v: %w", address, err)
	}
	return contract, true, nil
}

func (a *accessor) Exists(address common.Address) (bool, error) {
	_, exists, err := a.getAccount(address)
	return exists, err
}

func (a *accessor) Nonce(address common.Address) (uint64, error) {
	account, _, err := a.getAccount(address)
	return account.Nonce, err
}

func (a *accessor) Balance(address common.Address) (amount.Amount, error) {
	account, _, err := a.getAccount(address)
	return account.Balance, err
}

func (a *accessor) CodeSize(address common.Address) (int, error) {
	contract, _, err := a.getContract(address)
	return int(contract.CodeSize), err
}

func (a *accessor) CodeHash(address common.Address) (common.Hash, error) {
	exists, err := a.Exists(address)
	if err != nil || !exists {
		return common.Hash{}, err
	}
	contract, found, err := a.getContract(address)
	if err != nil {
		return common.Hash{}, err
	}
	if !found {
		return common.EmptyCodeHash, nil
	}
	return contract.CodeHash(), nil
}

func (a *accessor) Code(address common.Address) ([]byte, error) {
	contract, _, err := a.getContract(address)
	return contract.Code, err
}

func (a *accessor) Valids(address common.Address) ([]byte, error) {
	contract, _, err := a.getContract(address)
	return contract.Valids, err
}

func (a *accessor) Storage(address common.Address, key uint256.Int) (uint256.Int, error) {
	var value uint256.Int
	data, err := a.db.Get(storageKey(address, key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return value, nil
	}
	if err != nil {
		return value, err
	}
	value.SetBytes(data)
	return value, nil
}

func (a *accessor) CreateAccount(address common.Address) error {
	_, exists, err := a.getAccount(address)
	if err != nil || exists {
		return err
	}
	return a.putAccount(state.NewAccount(address))
}

func (a *accessor) HasContract(address common.Address) (bool, error) {
	return a.db.Has(contractKey(address), nil)
}

func (a *accessor) SetNonce(address common.Address, nonce uint64) error {
	account, _, err := a.getAccount(address)
	if err != nil {
		return err
	}
	account.Nonce = nonce
	return a.putAccount(account)
}

func (a *accessor) SetBalance(address common.Address, balance amount.Amount) error {
	account, exists, err := a.getAccount(address)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %v", common.ErrAccountNotFound, address)
	}
	account.Balance = balance
	return a.putAccount(account)
}

func (a *accessor) SetContract(address common.Address, contract state.Contract) error {
	account, _, err := a.getAccount(address)
	if err != nil {
		return err
	}
	data, err := rlp.EncodeToBytes(&contract)
	if err != nil {
		return err
	}
	if err := a.db.Put(contractKey(address), data, nil); err != nil {
		return err
	}
	account.MarkContract()
	return a.putAccount(account)
}

func (a *accessor) SetStorage(address common.Address, key, value uint256.Int) error {
	hasContract, err := a.HasContract(address)
	if err != nil {
		return err
	}
	if !hasContract {
		return fmt.Errorf("%w: storage write to %v", common.ErrContractNotFound, address)
	}
	if value.IsZero() {
		return a.db.Delete(storageKey(address, key), nil)
	}
	data := value.Bytes32()
	return a.db.Put(storageKey(address, key), data[:], nil)
}

func (a *accessor) ClearStorage(address common.Address) error {
	hasContract, err := a.HasContract(address)
	if err != nil || !hasContract {
		return err
	}
	return a.clearStorage(address)
}

func (a *accessor) clearStorage(address common.Address) error {
	batch := new(leveldb.Batch)
	it := a.db.NewIterator(util.BytesPrefix(storagePrefix(address)), nil)
	for it.Next() {
		batch.Delete(it.Key())
	}
	it.Release()
	if err := it.Error(); err != nil {
		return err
	}
	log.Trace("Clearing storage", "address", address, "slots", batch.Len())
	return a.db.Write(batch, nil)
}

func (a *accessor) DeleteAccount(address common.Address) error {
	if err := a.clearStorage(address); err != nil {
		return err
	}
	if err := a.db.Delete(contractKey(address), nil); err != nil {
		return err
	}
	if err := a.db.Delete(accountKey(address), nil); err != nil {
		return err
	}
	a.cacheAccount(accountEntry{account: state.NewAccount(address)})
	a.touch(address)
	return nil
}

// ForEachStorage visits all non-zero storage slots of the given address in
// ascending slot order.
func (a *accessor) ForEachStorage(address common.Address, visit func(key, value uint256.Int)) error {
	prefix := storagePrefix(address)
	it := a.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()
	for it.Next() {
		var key, value uint256.Int
		key.SetBytes(it.Key()[len(prefix):])
		value.SetBytes(it.Value())
		visit(key, value)
	}
	return it.Error()
}

// RecordBlockHash registers the hash of a block for later BlockHash queries.
func (a *accessor) RecordBlockHash(number uint64, hash common.Hash) error {
	return a.db.Put(blockHashKey(number), hash[:], nil)
}
