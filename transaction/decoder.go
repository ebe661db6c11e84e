// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package transaction decodes unsigned Ethereum transactions.
package transaction

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// UnsignedTransaction is a legacy Ethereum transaction without signature.
// Transactions following EIP-155 carry the chain they are valid on.
type UnsignedTransaction struct {
	Nonce    uint64
	GasPrice uint256.Int
	GasLimit uint256.Int
	// To is nil for contract creations
	To       *common.Address
	Value    uint256.Int
	CallData []byte
	// ChainID is nil for transactions not bound to a chain
	ChainID *uint256.Int
	// RLPLen is the length of the encoded transaction within its input
	RLPLen int

	hash common.Hash
}

// FromRLP decodes a transaction from the RLP list at the start of the given
// input. The list has the items [nonce, gasPrice, gasLimit, to, value, data],
// optionally followed by [chainId, 0, 0]. Bytes following the list are
// ignored. All malformed inputs are reported as ErrInvalidTransactionData.
func FromRLP(raw []byte) (*UnsignedTransaction, error) {
	tx, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidTransactionData, err)
	}
	return tx, nil
}

func decode(raw []byte) (*UnsignedTransaction, error) {
	kind, _, rest, err := rlp.Split(raw)
	if err != nil {
		return nil, err
	}
	if kind != rlp.List {
		return nil, fmt.Errorf("expected list, got %v", kind)
	}
	item := raw[:len(raw)-len(rest)]

	tx := &UnsignedTransaction{
		RLPLen: len(item),
		hash:   common.Keccak256(item),
	}
	s := rlp.NewStream(bytes.NewReader(item), uint64(len(item)))
	if _, err := s.List(); err != nil {
		return nil, err
	}
	if tx.Nonce, err = s.Uint64(); err != nil {
		return nil, fmt.Errorf("invalid nonce: %w", err)
	}
	if err := s.ReadUint256(&tx.GasPrice); err != nil {
		return nil, fmt.Errorf("invalid gas price: %w", err)
	}
	if err := s.ReadUint256(&tx.GasLimit); err != nil {
		return nil, fmt.Errorf("invalid gas limit: %w", err)
	}
	to, err := s.Bytes()
	if err != nil {
		return nil, fmt.Errorf("invalid destination: %w", err)
	}
	switch len(to) {
	case 0:
	case common.AddressLength:
		address := common.Address(to)
		tx.To = &address
	default:
		return nil, fmt.Errorf("invalid destination length %d", len(to))
	}
	if err := s.ReadUint256(&tx.Value); err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}
	if tx.CallData, err = s.Bytes(); err != nil {
		return nil, fmt.Errorf("invalid call data: %w", err)
	}

	var chainID uint256.Int
	switch err := s.ReadUint256(&chainID); {
	case errors.Is(err, rlp.EOL):
		return tx, s.ListEnd()
	case err != nil:
		return nil, fmt.Errorf("invalid chain id: %w", err)
	}
	tx.ChainID = &chainID

	var r, sig uint256.Int
	if err := s.ReadUint256(&r); err != nil {
		return nil, fmt.Errorf("invalid r: %w", err)
	}
	if err := s.ReadUint256(&sig); err != nil {
		return nil, fmt.Errorf("invalid s: %w", err)
	}
	if !r.IsZero() || !sig.IsZero() {
		return nil, fmt.Errorf("unsigned transaction with non-zero signature values")
	}
	if err := s.ListEnd(); err != nil {
		return nil, fmt.Errorf("too many items: %w", err)
	}
	return tx, nil
}

// IsCreate is true if the transaction deploys a new contract.
func (tx *UnsignedTransaction) IsCreate() bool {
	return tx.To == nil
}

// Hash returns the Keccak-256 hash of the encoded transaction.
func (tx *UnsignedTransaction) Hash() common.Hash {
	return tx.hash
}

func (tx *UnsignedTransaction) String() string {
	to := "create"
	if tx.To != nil {
		to = tx.To.Hex()
	}
	return fmt.Sprintf("tx{nonce: %d, to: %s, value: %v, gas: %v, data: %d bytes}", tx.Nonce, to, &tx.Value, &tx.GasLimit, len(tx.CallData))
}
