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

import (
	"fmt"
	"io"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/ethereum/go-ethereum/rlp"
)

// Account is the durable record of an externally owned or contract account.
type Account struct {
	Address common.Address
	Nonce   uint64
	Balance amount.Amount
	// ContractKey is set iff a Contract record exists for the account. It
	// refers to the account's own address.
	ContractKey *common.Address
	// Advisory lock fields. They are persisted but not enforced.
	RWBlocked      bool
	ROBlockedCount uint8
}

// NewAccount creates an empty account for the given address.
func NewAccount(address common.Address) Account {
	return Account{Address: address}
}

// IsContract is true if the account is marked as having a contract record.
func (a *Account) IsContract() bool {
	return a.ContractKey != nil
}

// MarkContract marks the account as a contract account.
func (a *Account) MarkContract() {
	key := a.Address
	a.ContractKey = &key
}

type accountRLP struct {
	Address        common.Address
	Nonce          uint64
	Balance        []byte
	ContractKey    []byte
	RWBlocked      bool
	ROBlockedCount uint8
}

// EncodeRLP implements rlp.Encoder.
func (a *Account) EncodeRLP(w io.Writer) error {
	enc := accountRLP{
		Address:        a.Address,
		Nonce:          a.Nonce,
		Balance:        a.Balance.Bytes(),
		RWBlocked:      a.RWBlocked,
		ROBlockedCount: a.ROBlockedCount,
	}
	if a.ContractKey != nil {
		enc.ContractKey = a.ContractKey[:]
	}
	return rlp.Encode(w, &enc)
}

// DecodeRLP implements rlp.Decoder.
func (a *Account) DecodeRLP(s *rlp.Stream) error {
	var dec accountRLP
	if err := s.Decode(&dec); err != nil {
		return err
	}
	balance, err := amount.Decode(dec.Balance)
	if err != nil {
		return fmt.Errorf("invalid balance: %w", err)
	}
	*a = Account{
		Address:        dec.Address,
		Nonce:          dec.Nonce,
		Balance:        balance,
		RWBlocked:      dec.RWBlocked,
		ROBlockedCount: dec.ROBlockedCount,
	}
	switch len(dec.ContractKey) {
	case 0:
	case common.AddressLength:
		key := common.Address(dec.ContractKey)
		a.ContractKey = &key
	default:
		return fmt.Errorf("invalid contract key encoding of %d bytes", len(dec.ContractKey))
	}
	return nil
}

// Contract is the durable code record of a contract account. Its storage is
// kept separately, keyed by the contract's address and the slot.
type Contract struct {
	CodeSize uint32
	Code     []byte
	Valids   []byte
}

// NewContract creates a contract record for the given code and its valid
// jump destination bitmap.
func NewContract(code, valids []byte) Contract {
	return Contract{
		CodeSize: uint32(len(code)),
		Code:     code,
		Valids:   valids,
	}
}

// CodeHash returns the Keccak-256 hash of the contract's code.
func (c *Contract) CodeHash() common.Hash {
	return common.Keccak256(c.Code)
}
