// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"

	geth "github.com/ethereum/go-ethereum/common"
)

// Address is the 20-byte identifier of an EVM account.
// Address is the 20-byte identifier of an account.
type Address = geth.Address

// Hash is a 32-byte Keccak-256 digest.
type Hash = geth.Hash

// AddressLength is the number of bytes in an Address.
const AddressLength = geth.AddressLength

// HexToAddress parses a hex encoded address. Invalid input results in a
// truncated or zero address, as in go-ethereum.
func HexToAddress(s string) Address {
	return geth.HexToAddress(s)
}

// IsHexAddress reports whether s is a valid hex encoded address.
func IsHexAddress(s string) bool {
	return geth.IsHexAddress(s)
}

// AddressLess orders addresses by their byte representation.
// AddressLess defines a total order on addresses used for deterministic
// iteration.
func AddressLess(a, b Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
