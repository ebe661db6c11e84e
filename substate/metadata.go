// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package substate

// Metadata describes the call frame a substate belongs to.
type Metadata struct {
	isStatic bool
	// depth is -1 for the root frame
	depth          int
	blockNumber    uint64
	blockTimestamp uint64
}

// NewMetadata creates the metadata of a root frame executed in the given block.
func NewMetadata(blockNumber, blockTimestamp uint64) Metadata {
	return Metadata{
		depth:          -1,
		blockNumber:    blockNumber,
		blockTimestamp: blockTimestamp,
	}
}

// IsStatic reports whether state modifications are forbidden in this frame.
func (m Metadata) IsStatic() bool {
	return m.isStatic
}

// Depth returns the call depth of the frame. The root frame has no depth,
// its first nested frame has depth 0.
func (m Metadata) Depth() (int, bool) {
	return m.depth, m.depth >= 0
}

// Child derives the metadata of a nested frame. A static frame only has
// static children.
func (m Metadata) Child(isStatic bool) Metadata {
	return Metadata{
		isStatic:       m.isStatic || isStatic,
		depth:          m.depth + 1,
		blockNumber:    m.blockNumber,
		blockTimestamp: m.blockTimestamp,
	}
}

func (m Metadata) BlockNumber() uint64 {
	return m.blockNumber
}

func (m Metadata) BlockTimestamp() uint64 {
	return m.blockTimestamp
}
