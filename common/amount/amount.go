// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.


// Package amount provides the 256-bit unsigned quantity used for balances
// and transferred values.
package amount

import (
	"fmt"

	"github.com/holiman/uint256"
)

// BytesLength is the maximum length of an encoded amount.
const BytesLength = 32

// Amount is a native token quantity. Arithmetic on amounts always reports
// wrap-arounds instead of silently truncating.
type Amount struct {
	value uint256.Int
}

// New builds an amount from at most four 64-bit words, most significant
// word first. New() is zero and New(x) equals x. More than four words
// cause a panic.
func New(words ...uint64) Amount {
	if len(words) > 4 {
		panic(fmt.Sprintf("an amount has at most 4 words, got %d", len(words)))
	}
	var res Amount
	for i, word := range words {
		res.value[len(words)-1-i] = word
	}
	return res
}

// FromUint256 converts a 256-bit integer into an amount.
func FromUint256(value *uint256.Int) Amount {
	return Amount{value: *value}
}

// ParseDecimal reads an amount from its base 10 representation.
func ParseDecimal(s string) (Amount, error) {
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: *value}, nil
}

// Decode restores an amount from its big-endian encoding as produced by
// Bytes. Leading zeros are accepted.
func Decode(data []byte) (Amount, error) {
	if len(data) > BytesLength {
		return Amount{}, fmt.Errorf("amount encoding of %d bytes exceeds %d bytes", len(data), BytesLength)
	}
	var res Amount
	res.value.SetBytes(data)
	return res, nil
}

// Bytes returns the minimal big-endian encoding. Zero encodes to an empty slice.
func (a Amount) Bytes() []byte {
	return a.value.Bytes()
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String renders the amount in base 10.
func (a Amount) String() string {
	return a.value.Dec()
}

// AddOverflow returns a+b and whether the sum wrapped around.
func AddOverflow(a, b Amount) (Amount, bool) {
	var sum Amount
	_, overflow := sum.value.AddOverflow(&a.value, &b.value)
	return sum, overflow
}

// SubUnderflow returns a-b and whether the difference wrapped around.
func SubUnderflow(a, b Amount) (Amount, bool) {
	var diff Amount
	_, underflow := diff.value.SubOverflow(&a.value, &b.value)
	return diff, underflow
}

// Max is the largest representable amount.
func Max() Amount {
	var res Amount
	res.value.SetAllOne()
	return res
}
