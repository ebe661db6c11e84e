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

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/state"
	"github.com/holiman/uint256"
	"go.uber.org/mock/gomock"
)

var (
	address1 = common.Address{0x01}
	address2 = common.Address{0x02}
	address3 = common.Address{0x03}

	key1 = *uint256.NewInt(1)
	key2 = *uint256.NewInt(2)
	val1 = *uint256.NewInt(10)
	val2 = *uint256.NewInt(20)
)

func newTestSubstate(t *testing.T) (*Substate, *state.MockReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := state.NewMockReader(ctrl)
	backend.EXPECT().BlockNumber().Return(uint64(12))
	backend.EXPECT().BlockTimestamp().Return(uint64(1234))
	return New(backend), backend
}

// expectEmptyAccounts makes the backend report zero values for all accounts.
func expectEmptyAccounts(backend *state.MockReader) {
	backend.EXPECT().Exists(gomock.Any()).Return(false, nil).AnyTimes()
	backend.EXPECT().Nonce(gomock.Any()).Return(uint64(0), nil).AnyTimes()
	backend.EXPECT().Balance(gomock.Any()).Return(amount.New(), nil).AnyTimes()
	backend.EXPECT().Code(gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().Valids(gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().Storage(gomock.Any(), gomock.Any()).Return(uint256.Int{}, nil).AnyTimes()
}

func TestSubstate_BlockContextIsTakenFromBackend(t *testing.T) {
	substate, backend := newTestSubstate(t)
	backend.EXPECT().ChainID().Return(uint64(42))

	if want, got := uint64(12), substate.BlockNumber(); want != got {
		t.Errorf("unexpected block number, wanted %d, got %d", want, got)
	}
	if want, got := uint64(1234), substate.BlockTimestamp(); want != got {
		t.Errorf("unexpected block timestamp, wanted %d, got %d", want, got)
	}
	if want, got := uint64(42), substate.ChainID(); want != got {
		t.Errorf("unexpected chain id, wanted %d, got %d", want, got)
	}
}

func TestSubstate_MetadataTracksNesting(t *testing.T) {
	substate, _ := newTestSubstate(t)
	if _, ok := substate.Depth(); ok {
		t.Errorf("root frame should have no depth")
	}
	substate.Enter(false)
	if depth, ok := substate.Depth(); !ok || depth != 0 {
		t.Errorf("unexpected depth of first nested frame: %d, %t", depth, ok)
	}
	substate.Enter(true)
	substate.Enter(false)
	if depth, _ := substate.Depth(); depth != 2 {
		t.Errorf("unexpected depth, wanted 2, got %d", depth)
	}
	if !substate.Metadata().IsStatic() {
		t.Errorf("children of static frames should be static")
	}
	substate.ExitRevert()
	substate.ExitDiscard()
	if substate.Metadata().IsStatic() {
		t.Errorf("static flag should not leak into parent frames")
	}
	substate.ExitCommit()
	if _, ok := substate.Depth(); ok {
		t.Errorf("root frame should have no depth")
	}
}

func TestMetadata_ChildrenKeepBlockContext(t *testing.T) {
	child := NewMetadata(12, 1234).Child(true).Child(false)
	if want, got := uint64(12), child.BlockNumber(); want != got {
		t.Errorf("unexpected block number, wanted %d, got %d", want, got)
	}
	if want, got := uint64(1234), child.BlockTimestamp(); want != got {
		t.Errorf("unexpected block timestamp, wanted %d, got %d", want, got)
	}
	if !child.IsStatic() {
		t.Errorf("children of static frames should be static")
	}
}

func TestSubstate_ExitingRootFrameCausesPanic(t *testing.T) {
	exits := map[string]func(*Substate){
		"commit":  (*Substate).ExitCommit,
		"revert":  (*Substate).ExitRevert,
		"discard": (*Substate).ExitDiscard,
	}
	for name, exit := range exits {
		t.Run(name, func(t *testing.T) {
			substate, _ := newTestSubstate(t)
			defer func() {
				if recover() == nil {
					t.Errorf("exiting the root frame should cause a panic")
				}
			}()
			exit(substate)
		})
	}
}

func TestSubstate_CommittedChangesAreVisibleInParent(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	substate.Enter(false)
	substate.SetStorage(address1, key1, val1)
	substate.Log(address1, nil, []byte{1})
	substate.SetCode(address2, []byte{0x5b})
	substate.SetDeleted(address3)
	if err := substate.IncNonce(address1); err != nil {
		t.Fatalf("failed to increment nonce: %v", err)
	}
	substate.ExitCommit()

	if got := substate.Storage(address1, key1); got != val1 {
		t.Errorf("unexpected storage value, wanted %v, got %v", &val1, &got)
	}
	if got := len(substate.Logs()); got != 1 {
		t.Errorf("unexpected number of logs, wanted 1, got %d", got)
	}
	if got := substate.Code(address2); !bytes.Equal(got, []byte{0x5b}) {
		t.Errorf("unexpected code %x", got)
	}
	if !substate.Deleted(address3) {
		t.Errorf("account should be deleted")
	}
	if got := substate.Nonce(address1); got.Uint64() != 1 {
		t.Errorf("unexpected nonce, wanted 1, got %d", got.Uint64())
	}
}

func TestSubstate_RevertedChangesAreInvisibleInParent(t *testing.T) {
	for _, exit := range []func(*Substate){(*Substate).ExitRevert, (*Substate).ExitDiscard} {
		substate, backend := newTestSubstate(t)
		expectEmptyAccounts(backend)

		substate.Log(address1, nil, []byte{1})
		substate.SetStorage(address1, key1, val1)

		substate.Enter(false)
		substate.SetStorage(address1, key1, val2)
		substate.SetStorage(address2, key2, val2)
		substate.Log(address2, nil, []byte{2})
		substate.SetDeleted(address3)
		if err := substate.IncNonce(address1); err != nil {
			t.Fatalf("failed to increment nonce: %v", err)
		}
		exit(substate)

		if got := substate.Storage(address1, key1); got != val1 {
			t.Errorf("unexpected storage value, wanted %v, got %v", &val1, &got)
		}
		if got := substate.Storage(address2, key2); !got.IsZero() {
			t.Errorf("reverted storage value should be dropped, got %v", &got)
		}
		if logs := substate.Logs(); len(logs) != 1 || logs[0].Address != address1 {
			t.Errorf("unexpected logs after revert: %v", logs)
		}
		if substate.Deleted(address3) {
			t.Errorf("reverted deletion should be dropped")
		}
		if got := substate.Nonce(address1); !got.IsZero() {
			t.Errorf("reverted nonce increment should be dropped")
		}
	}
}

func TestSubstate_BackendIsReadAtMostOncePerField(t *testing.T) {
	substate, backend := newTestSubstate(t)

	backend.EXPECT().Exists(address1).Return(true, nil).Times(1)
	backend.EXPECT().Nonce(address1).Return(uint64(5), nil).Times(1)
	backend.EXPECT().Balance(address1).Return(amount.New(7), nil).Times(1)
	backend.EXPECT().Code(address1).Return([]byte{0x00}, nil).Times(1)
	backend.EXPECT().Valids(address1).Return([]byte{0x00}, nil).Times(1)
	backend.EXPECT().Storage(address1, key1).Return(val1, nil).Times(1)
	backend.EXPECT().BlockHash(uint64(3)).Return(common.Hash{3}, nil).Times(1)

	for i := 0; i < 3; i++ {
		substate.Enter(false)
		substate.Exists(address1)
		if got := substate.Nonce(address1); got.Uint64() != 5 {
			t.Errorf("unexpected nonce %d", got.Uint64())
		}
		if got := substate.Balance(address1); got != amount.New(7) {
			t.Errorf("unexpected balance %v", got)
		}
		substate.Code(address1)
		substate.CodeSize(address1)
		substate.Valids(address1)
		if got := substate.Storage(address1, key1); got != val1 {
			t.Errorf("unexpected storage value %v", &got)
		}
		substate.OriginalStorage(address1, key1)
		if got := substate.BlockHash(3); got != (common.Hash{3}) {
			t.Errorf("unexpected block hash %v", got)
		}
		substate.ExitDiscard()
	}
}

func TestSubstate_TransferMovesFunds(t *testing.T) {
	substate, backend := newTestSubstate(t)
	backend.EXPECT().Balance(address1).Return(amount.New(100_000_000), nil)
	backend.EXPECT().Balance(address2).Return(amount.New(), nil)

	transfer := state.Transfer{Source: address1, Target: address2, Value: amount.New(123456)}
	if err := substate.Transfer(transfer); err != nil {
		t.Fatalf("failed to transfer: %v", err)
	}
	if want, got := amount.New(99_876_544), substate.Balance(address1); want != got {
		t.Errorf("unexpected source balance, wanted %v, got %v", want, got)
	}
	if want, got := amount.New(123_456), substate.Balance(address2); want != got {
		t.Errorf("unexpected target balance, wanted %v, got %v", want, got)
	}
	if got := substate.Transfers(); len(got) != 1 || got[0] != transfer {
		t.Errorf("unexpected transfers %v", got)
	}
}

func TestSubstate_FailedTransfersLeaveBalancesUnchanged(t *testing.T) {
	tests := map[string]struct {
		source, target amount.Amount
		value          amount.Amount
		want           error
	}{
		"insufficient funds":      {amount.New(), amount.New(), amount.New(100), common.ErrInsufficientFunds},
		"partial funds":           {amount.New(99), amount.New(), amount.New(100), common.ErrInsufficientFunds},
		"target balance overflow": {amount.New(1), amount.Max(), amount.New(1), common.ErrBalanceOverflow},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			substate, backend := newTestSubstate(t)
			backend.EXPECT().Balance(address1).Return(test.source, nil)
			backend.EXPECT().Balance(address2).Return(test.target, nil)

			err := substate.Transfer(state.Transfer{Source: address1, Target: address2, Value: test.value})
			if !errors.Is(err, test.want) {
				t.Errorf("unexpected error, wanted %v, got %v", test.want, err)
			}
			if got := substate.Balance(address1); got != test.source {
				t.Errorf("source balance changed from %v to %v", test.source, got)
			}
			if got := substate.Balance(address2); got != test.target {
				t.Errorf("target balance changed from %v to %v", test.target, got)
			}
			if got := len(substate.Transfers()); got != 0 {
				t.Errorf("failed transfer should not be recorded")
			}
		})
	}
}

func TestSubstate_TransferToSelfKeepsBalance(t *testing.T) {
	substate, backend := newTestSubstate(t)
	backend.EXPECT().Balance(address1).Return(amount.New(10), nil)

	if err := substate.Transfer(state.Transfer{Source: address1, Target: address1, Value: amount.New(10)}); err != nil {
		t.Fatalf("failed to transfer: %v", err)
	}
	if got := substate.Balance(address1); got != amount.New(10) {
		t.Errorf("unexpected balance %v", got)
	}
	if err := substate.Transfer(state.Transfer{Source: address1, Target: address1, Value: amount.New(11)}); !errors.Is(err, common.ErrInsufficientFunds) {
		t.Errorf("unexpected error, wanted %v, got %v", common.ErrInsufficientFunds, err)
	}
}

func TestSubstate_IncNonceRejectsOverflow(t *testing.T) {
	substate, backend := newTestSubstate(t)
	backend.EXPECT().Nonce(address1).Return(uint64(math.MaxUint64), nil)

	if err := substate.IncNonce(address1); !errors.Is(err, common.ErrNonceOverflow) {
		t.Errorf("unexpected error, wanted %v, got %v", common.ErrNonceOverflow, err)
	}
	if got := substate.Nonce(address1); got.Uint64() != math.MaxUint64 {
		t.Errorf("nonce should be unchanged, got %v", &got)
	}
}

func TestSubstate_ResetStorageHidesBackendValues(t *testing.T) {
	substate, backend := newTestSubstate(t)
	backend.EXPECT().Nonce(address1).Return(uint64(1), nil)
	backend.EXPECT().Storage(address2, key1).Return(val2, nil)

	substate.SetStorage(address1, key1, val1)
	substate.ResetStorage(address1)
	if got := substate.Storage(address1, key1); !got.IsZero() {
		t.Errorf("storage should be cleared, got %v", &got)
	}
	if got := substate.OriginalStorage(address1, key1); !got.IsZero() {
		t.Errorf("original storage of reset account should be zero, got %v", &got)
	}
	substate.SetStorage(address1, key2, val2)
	if got := substate.Storage(address1, key2); got != val2 {
		t.Errorf("storage written after reset should be visible, got %v", &got)
	}
	if got := substate.Storage(address2, key1); got != val2 {
		t.Errorf("storage of other accounts should be unaffected, got %v", &got)
	}
}

func TestSubstate_CommittedResetRemovesParentStorage(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	substate.SetStorage(address1, key1, val1)
	substate.SetStorage(address2, key1, val1)

	substate.Enter(false)
	substate.ResetStorage(address1)
	substate.SetStorage(address1, key2, val2)
	substate.ExitCommit()

	if got := substate.Storage(address1, key1); !got.IsZero() {
		t.Errorf("parent storage of reset account should be removed, got %v", &got)
	}
	if got := substate.Storage(address1, key2); got != val2 {
		t.Errorf("child storage should be committed, got %v", &got)
	}
	if got := substate.Storage(address2, key1); got != val1 {
		t.Errorf("storage of other accounts should be kept, got %v", &got)
	}

	change, err := substate.Deconstruct()
	if err != nil {
		t.Fatalf("failed to deconstruct: %v", err)
	}
	want := []state.Apply{
		{Kind: state.Modify, Address: address1, Storage: map[uint256.Int]uint256.Int{key2: val2}, ResetStorage: true},
		{Kind: state.Modify, Address: address2, Storage: map[uint256.Int]uint256.Int{key1: val1}},
	}
	if !reflect.DeepEqual(want, change.Applies) {
		t.Errorf("unexpected applies, wanted %v, got %v", want, change.Applies)
	}
}

func TestSubstate_ParentResetSurvivesCommitOfChild(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	substate.ResetStorage(address1)
	substate.Enter(false)
	if err := substate.IncNonce(address1); err != nil {
		t.Fatalf("failed to increment nonce: %v", err)
	}
	substate.ExitCommit()

	change, err := substate.Deconstruct()
	if err != nil {
		t.Fatalf("failed to deconstruct: %v", err)
	}
	if len(change.Applies) != 1 || !change.Applies[0].ResetStorage {
		t.Fatalf("reset flag should be kept, got %v", change.Applies)
	}
	if got := change.Applies[0].Nonce; got.Uint64() != 1 {
		t.Errorf("unexpected nonce, wanted 1, got %v", &got)
	}
}

func TestSubstate_CodeSurvivesCommitOfChildTouchingAccount(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	code := []byte{0x60, 0x00, 0x5b}
	substate.SetCode(address1, code)
	substate.Enter(false)
	if err := substate.IncNonce(address1); err != nil {
		t.Fatalf("failed to increment nonce: %v", err)
	}
	substate.Touch(address1)
	substate.ExitCommit()

	if got := substate.Code(address1); !bytes.Equal(code, got) {
		t.Errorf("unexpected code, wanted %x, got %x", code, got)
	}
	if got := substate.Valids(address1); !bytes.Equal([]byte{0x20}, got) {
		t.Errorf("unexpected valids, wanted 20, got %x", got)
	}

	change, err := substate.Deconstruct()
	if err != nil {
		t.Fatalf("failed to deconstruct: %v", err)
	}
	want := []state.Apply{{
		Kind:          state.Modify,
		Address:       address1,
		Nonce:         *uint256.NewInt(1),
		CodeAndValids: &state.CodeAndValids{Code: code, Valids: []byte{0x20}},
		Storage:       map[uint256.Int]uint256.Int{},
	}}
	if !reflect.DeepEqual(want, change.Applies) {
		t.Errorf("unexpected applies, wanted %v, got %v", want, change.Applies)
	}
}

func TestSubstate_ChildDoesNotInheritStorageReset(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	substate.ResetStorage(address1)
	substate.Enter(false)
	substate.Touch(address1)
	substate.ExitRevert()
	substate.Enter(false)
	substate.SetStorage(address1, key1, val1)
	substate.Touch(address1)
	substate.ExitCommit()

	change, err := substate.Deconstruct()
	if err != nil {
		t.Fatalf("failed to deconstruct: %v", err)
	}
	want := []state.Apply{{
		Kind:         state.Modify,
		Address:      address1,
		Storage:      map[uint256.Int]uint256.Int{key1: val1},
		ResetStorage: true,
	}}
	if !reflect.DeepEqual(want, change.Applies) {
		t.Errorf("unexpected applies, wanted %v, got %v", want, change.Applies)
	}
}

func TestSubstate_DeconstructOrdersModificationsBeforeDeletes(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	substate.SetStorage(address3, key1, val1)
	substate.SetCode(address2, []byte{0x5b})
	substate.Touch(address1)
	substate.SetDeleted(address1)
	substate.Log(address2, []common.Hash{{1}}, nil)

	change, err := substate.Deconstruct()
	if err != nil {
		t.Fatalf("failed to deconstruct: %v", err)
	}
	want := []state.Apply{
		{
			Kind:          state.Modify,
			Address:       address2,
			CodeAndValids: &state.CodeAndValids{Code: []byte{0x5b}, Valids: []byte{0x80}},
			Storage:       map[uint256.Int]uint256.Int{},
		},
		{Kind: state.Modify, Address: address3, Storage: map[uint256.Int]uint256.Int{key1: val1}},
		state.NewDelete(address1),
	}
	if !reflect.DeepEqual(want, change.Applies) {
		t.Errorf("unexpected applies, wanted %v, got %v", want, change.Applies)
	}
	if len(change.Logs) != 1 || change.Logs[0].BlockNumber != 12 {
		t.Errorf("unexpected logs %v", change.Logs)
	}
}

func TestSubstate_DeconstructIsDeterministic(t *testing.T) {
	run := func() state.ApplyState {
		substate, backend := newTestSubstate(t)
		backend.EXPECT().Balance(address1).Return(amount.New(1000), nil).AnyTimes()
		expectEmptyAccounts(backend)
		for i := 0; i < 20; i++ {
			address := common.Address{byte(i * 7 % 20)}
			substate.Enter(false)
			substate.SetStorage(address, *uint256.NewInt(uint64(i)), *uint256.NewInt(uint64(i + 1)))
			if err := substate.IncNonce(address); err != nil {
				t.Fatalf("failed to increment nonce: %v", err)
			}
			if i%5 == 0 {
				substate.SetDeleted(address)
			}
			substate.ExitCommit()
		}
		if err := substate.Transfer(state.Transfer{Source: address1, Target: address2, Value: amount.New(5)}); err != nil {
			t.Fatalf("failed to transfer: %v", err)
		}
		change, err := substate.Deconstruct()
		if err != nil {
			t.Fatalf("failed to deconstruct: %v", err)
		}
		return change
	}

	first := run()
	for i := 0; i < 5; i++ {
		if next := run(); !reflect.DeepEqual(first, next) {
			t.Fatalf("deconstruction is not deterministic:\n%v\n%v", first, next)
		}
	}
	for i := 1; i < len(first.Applies); i++ {
		previous, current := first.Applies[i-1], first.Applies[i]
		if previous.Kind == current.Kind && !common.AddressLess(previous.Address, current.Address) {
			t.Errorf("applies are not sorted: %v before %v", previous.Address, current.Address)
		}
	}
}

func TestSubstate_DeconstructingNestedSubstateCausesPanic(t *testing.T) {
	substate, _ := newTestSubstate(t)
	substate.Enter(false)
	defer func() {
		if recover() == nil {
			t.Errorf("deconstructing a nested substate should cause a panic")
		}
	}()
	substate.Deconstruct()
}

func TestSubstate_BackendErrorsAreCollected(t *testing.T) {
	substate, backend := newTestSubstate(t)
	injected := fmt.Errorf("injected error")
	backend.EXPECT().Balance(address1).Return(amount.New(), injected)
	backend.EXPECT().Nonce(address1).Return(uint64(0), nil)

	if got := substate.Balance(address1); !got.IsZero() {
		t.Errorf("failed reads should produce zero values, got %v", got)
	}
	substate.Touch(address1)
	if err := substate.Check(); !errors.Is(err, injected) {
		t.Errorf("unexpected error, wanted %v, got %v", injected, err)
	}
	if _, err := substate.Deconstruct(); !errors.Is(err, injected) {
		t.Errorf("unexpected error, wanted %v, got %v", injected, err)
	}
}

func TestSubstate_CodeHashAndEmptiness(t *testing.T) {
	substate, backend := newTestSubstate(t)
	expectEmptyAccounts(backend)

	if got := substate.CodeHash(address1); got != (common.Hash{}) {
		t.Errorf("code hash of missing account should be zero, got %v", got)
	}
	if !substate.Empty(address1) {
		t.Errorf("missing account should be empty")
	}

	substate.Touch(address1)
	if !substate.Exists(address1) {
		t.Errorf("touched account should exist")
	}
	if got := substate.CodeHash(address1); got != common.EmptyCodeHash {
		t.Errorf("code hash of account without code should be the empty code hash, got %v", got)
	}

	code := []byte{0x60, 0x5b, 0x5b}
	substate.SetCode(address1, code)
	if got := substate.CodeHash(address1); got != common.Keccak256(code) {
		t.Errorf("unexpected code hash %v", got)
	}
	if got := substate.Valids(address1); !bytes.Equal(got, []byte{0x20}) {
		t.Errorf("unexpected valids %x", got)
	}
	if substate.Empty(address1) {
		t.Errorf("account with code should not be empty")
	}
}

func TestSubstate_ResetBalance(t *testing.T) {
	substate, backend := newTestSubstate(t)
	backend.EXPECT().Balance(address1).Return(amount.New(10), nil)

	if got := substate.Balance(address1); got != amount.New(10) {
		t.Errorf("unexpected balance %v", got)
	}
	substate.Enter(false)
	substate.ResetBalance(address1)
	if got := substate.Balance(address1); !got.IsZero() {
		t.Errorf("balance should be reset, got %v", got)
	}
	substate.ExitRevert()
	if got := substate.Balance(address1); got != amount.New(10) {
		t.Errorf("reverted reset should be dropped, got %v", got)
	}
}
