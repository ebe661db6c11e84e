// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package evm contains the code analysis shared by the journal and the
// durable contract records.
package evm

// OpCode is a single EVM instruction byte.
type OpCode byte

const (
	JUMPDEST OpCode = 0x5b
	PUSH1    OpCode = 0x60
	PUSH32   OpCode = 0x7f
)

// IsPush reports whether op is one of PUSH1 .. PUSH32.
func (op OpCode) IsPush() bool {
	return PUSH1 <= op && op <= PUSH32
}

// ComputeValids produces the valid jump destination bitmap of the given
// code. Bit i (most significant bit first within each byte) is set iff
// code[i] is a JUMPDEST instruction and not part of the immediate data of a
// PUSH instruction. The bitmap has ceil(len(code)/8) bytes.
func ComputeValids(code []byte) []byte {
	valids := make([]byte, (len(code)+7)/8)
	for pc := 0; pc < len(code); pc++ {
		op := OpCode(code[pc])
		if op == JUMPDEST {
			valids[pc/8] |= 0x80 >> (pc % 8)
			continue
		}
		if op.IsPush() {
			pc += int(op-PUSH1) + 1
		}
	}
	return valids
}

// IsValidJumpDest checks the given position against a bitmap produced by
// ComputeValids. Positions beyond the bitmap are invalid.
func IsValidJumpDest(valids []byte, pos uint64) bool {
	if pos/8 >= uint64(len(valids)) {
		return false
	}
	return valids[pos/8]&(0x80>>(pos%8)) != 0
}
