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
	"sort"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"golang.org/x/exp/maps"
)

// ApplyState summarizes the effective changes of a successful transaction.
// It is produced once by deconstructing the root of a substate journal and
// consumed by a Committer.
type ApplyState struct {
	Applies   []Apply
	Logs      []*types.Log
	Transfers []Transfer
}

// IsEmpty is true if the state change has no effect on the durable state.
func (s *ApplyState) IsEmpty() bool {
	return len(s.Applies) == 0 && len(s.Transfers) == 0 && len(s.Logs) == 0
}

func (s *ApplyState) String() string {
	return fmt.Sprintf("ApplyState{applies: %d, transfers: %d, logs: %d}", len(s.Applies), len(s.Transfers), len(s.Logs))
}

// Transfer is a completed movement of native tokens between two accounts.
type Transfer struct {
	Source common.Address
	Target common.Address
	Value  amount.Amount
}

// ApplyKind distinguishes the two forms of per-address changes.
type ApplyKind byte

const (
	Modify ApplyKind = iota
	Delete
)

func (k ApplyKind) String() string {
	switch k {
	case Modify:
		return "modify"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("ApplyKind(%d)", byte(k))
}

// CodeAndValids is newly deployed code together with its valid jump
// destination bitmap.
type CodeAndValids struct {
	Code   []byte
	Valids []byte
}

// Apply describes the changes to a single address. For Delete entries only
// the address is relevant.
type Apply struct {
	Kind          ApplyKind
	Address       common.Address
	Nonce         uint256.Int
	CodeAndValids *CodeAndValids
	Storage       map[uint256.Int]uint256.Int
	ResetStorage  bool
}

// NewDelete creates an entry deleting the account at the given address.
func NewDelete(address common.Address) Apply {
	return Apply{Kind: Delete, Address: address}
}

// SortedStorageKeys returns the keys of the modified storage slots in
// ascending order.
func (a *Apply) SortedStorageKeys() []uint256.Int {
	keys := maps.Keys(a.Storage)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Lt(&keys[j])
	})
	return keys
}
