// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

//go:generate mockgen -source backend.go -destination backend_mocks.go -package state

import (
	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/holiman/uint256"
)

// Reader provides read access to the durable world state as of the start of
// the current transaction. Reads of accounts that do not exist produce zero
// values and a nil error. A non-nil error signals a failure of the
// underlying storage, never the absence of data.
type Reader interface {
	// BlockNumber returns the height of the block currently being processed.
	BlockNumber() uint64

	// BlockTimestamp returns the timestamp of the block currently being processed.
	BlockTimestamp() uint64

	// BlockHash returns the hash of the given block or the zero hash if it is unknown.
	BlockHash(number uint64) (common.Hash, error)

	// ChainID returns the identifier of the chain transactions are accepted for.
	ChainID() uint64

	// Exists checks whether an account is present for the given address.
	Exists(address common.Address) (bool, error)

	// Nonce returns the nonce of the given account.
	Nonce(address common.Address) (uint64, error)

	// Balance returns the balance of the given account.
	Balance(address common.Address) (amount.Amount, error)

	// CodeSize returns the length of the code of the given account.
	CodeSize(address common.Address) (int, error)

	// CodeHash returns the zero hash for missing accounts, the hash of the
	// empty code for accounts without code, and the hash of the code otherwise.
	CodeHash(address common.Address) (common.Hash, error)

	// Code returns the code of the given account.
	Code(address common.Address) ([]byte, error)

	// Valids returns the valid jump destination bitmap of the given account's code.
	Valids(address common.Address) ([]byte, error)

	// Storage returns the value of a contract storage slot.
	Storage(address common.Address, key uint256.Int) (uint256.Int, error)
}

// Backend extends the Reader by the mutations required for committing the
// effects of a transaction. Backends do not validate the protocol of the
// caller beyond the documented preconditions.
type Backend interface {
	Reader

	// CreateAccount creates an empty account if none is present for the address.
	CreateAccount(address common.Address) error

	// HasContract checks whether a contract record is present for the address.
	HasContract(address common.Address) (bool, error)

	// SetNonce updates the nonce of an account, creating it if needed.
	SetNonce(address common.Address, nonce uint64) error

	// SetBalance updates the balance of an existing account. ErrAccountNotFound
	// is reported if the account was never created.
	SetBalance(address common.Address, balance amount.Amount) error

	// SetContract stores a contract record for the address and marks the
	// account as a contract account.
	SetContract(address common.Address, contract Contract) error

	// SetStorage updates a contract storage slot. ErrContractNotFound is
	// reported if the address has no contract record.
	SetStorage(address common.Address, key, value uint256.Int) error

	// ClearStorage removes all storage slots of the contract at the given
	// address. It is a no-op for addresses without contract.
	ClearStorage(address common.Address) error

	// DeleteAccount removes the account, its contract record, and its storage.
	DeleteAccount(address common.Address) error
}

// Transaction is a Backend collecting changes that become visible in the
// underlying store atomically on Commit. A discarded transaction leaves the
// store unchanged.
type Transaction interface {
	Backend

	// Commit writes all changes of the transaction into the store.
	Commit() error

	// Discard drops all changes of the transaction.
	Discard()
}
