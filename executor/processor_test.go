// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"testing"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/state"
	"github.com/Terranova-EVM/terranova-core/state/ldb"
	"github.com/Terranova-EVM/terranova-core/substate"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

const testChainID = 42

var (
	sender    = common.HexToAddress("0xa000000000000000000000000000000000000001")
	recipient = common.HexToAddress("0xb000000000000000000000000000000000000002")
)

type interpreterFunc func(journal *substate.Substate, msg Message) Result

func (f interpreterFunc) Call(journal *substate.Substate, msg Message) Result {
	return f(journal, msg)
}

func (f interpreterFunc) Create(journal *substate.Substate, msg Message) Result {
	return f(journal, msg)
}

func newTestStore(t *testing.T) *ldb.Store {
	t.Helper()
	store, err := ldb.OpenInMemory(ldb.BlockContext{Number: 1, Timestamp: 100, ChainID: testChainID})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func encodeTx(t *testing.T, nonce uint64, to *common.Address, value uint64, gas uint64, data []byte, chainID ...uint64) []byte {
	t.Helper()
	var dest []byte
	if to != nil {
		dest = to.Bytes()
	}
	items := []any{nonce, uint64(1), gas, dest, value, data}
	for _, id := range chainID {
		items = append(items, id, uint64(0), uint64(0))
	}
	raw, err := rlp.EncodeToBytes(items)
	require.NoError(t, err)
	return raw
}

func requireBalance(t *testing.T, db Database, address common.Address, want uint64) {
	t.Helper()
	balance, err := db.Balance(address)
	require.NoError(t, err)
	require.Equal(t, amount.New(want), balance)
}

func requireNonce(t *testing.T, db Database, address common.Address, want uint64) {
	t.Helper()
	nonce, err := db.Nonce(address)
	require.NoError(t, err)
	require.Equal(t, want, nonce)
}

func TestProcessor_ExecutesValueTransfer(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Airdrop(store, sender, amount.New(100_000_000)))

	raw := encodeTx(t, 0, &recipient, 123456, 21_000, nil, testChainID)
	receipt, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
	require.NoError(t, err)
	require.True(t, receipt.Success, "transaction failed: %v", receipt.Err)
	require.Equal(t, uint64(21_000), receipt.GasUsed)
	require.Equal(t, common.Keccak256(raw), receipt.TxHash)

	requireBalance(t, store, sender, 99_876_544)
	requireBalance(t, store, recipient, 123_456)
	requireNonce(t, store, sender, 1)
}

func TestProcessor_FailedTransactionOnlyConsumesNonce(t *testing.T) {
	store := newTestStore(t)

	raw := encodeTx(t, 0, &recipient, 100, 21_000, nil)
	receipt, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
	require.NoError(t, err)
	require.False(t, receipt.Success)
	require.ErrorIs(t, receipt.Err, common.ErrInsufficientFunds)

	requireNonce(t, store, sender, 1)
	requireBalance(t, store, sender, 0)
	exists, err := store.Exists(recipient)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProcessor_RejectsInvalidTransactions(t *testing.T) {
	hugeGasLimit, err := rlp.EncodeToBytes([]any{uint64(0), uint64(1), new(uint256.Int).Lsh(uint256.NewInt(1), 64), recipient.Bytes(), uint64(0), []byte{}})
	require.NoError(t, err)

	tests := map[string][]byte{
		"malformed":      {0x01, 0x02},
		"wrong nonce":    encodeTx(t, 3, &recipient, 0, 21_000, nil),
		"wrong chain":    encodeTx(t, 0, &recipient, 0, 21_000, nil, testChainID+1),
		"huge gas limit": hugeGasLimit,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			store := newTestStore(t)
			_, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
			require.ErrorIs(t, err, common.ErrInvalidTransactionData)
			requireNonce(t, store, sender, 0)
		})
	}
}

func TestProcessor_CallingCodeIsUnsupported(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Airdrop(store, sender, amount.New(1000)))
	require.NoError(t, Deploy(store, recipient, []byte{0x00}))

	raw := encodeTx(t, 0, &recipient, 10, 21_000, nil)
	receipt, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
	require.NoError(t, err)
	require.False(t, receipt.Success)
	require.ErrorIs(t, receipt.Err, ErrCodeExecutionUnsupported)
	requireBalance(t, store, sender, 1000)
	requireBalance(t, store, recipient, 0)
	requireNonce(t, store, sender, 1)
}

func TestProcessor_CreatesContractWithoutInitCode(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Airdrop(store, sender, amount.New(1000)))

	raw := encodeTx(t, 0, nil, 10, 100_000, nil)
	receipt, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
	require.NoError(t, err)
	require.True(t, receipt.Success, "transaction failed: %v", receipt.Err)
	require.Equal(t, uint64(53_000), receipt.GasUsed)

	want := crypto.CreateAddress(sender, 0)
	require.NotNil(t, receipt.ContractAddress)
	require.Equal(t, want, *receipt.ContractAddress)

	hasContract, err := store.HasContract(want)
	require.NoError(t, err)
	require.True(t, hasContract)
	requireNonce(t, store, want, 1)
	requireBalance(t, store, want, 10)
	requireNonce(t, store, sender, 1)
}

func TestProcessor_CreationWithInitCodeIsUnsupported(t *testing.T) {
	store := newTestStore(t)
	raw := encodeTx(t, 0, nil, 0, 100_000, []byte{0x60, 0x00})
	receipt, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
	require.NoError(t, err)
	require.False(t, receipt.Success)
	require.ErrorIs(t, receipt.Err, ErrCodeExecutionUnsupported)
	requireNonce(t, store, sender, 1)
}

func TestProcessor_GasOveruseFailsTransaction(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Airdrop(store, sender, amount.New(1000)))

	raw := encodeTx(t, 0, &recipient, 10, 20_000, nil)
	receipt, err := NewProcessor(ValueTransferInterpreter{}).Execute(store, sender, raw)
	require.NoError(t, err)
	require.False(t, receipt.Success)
	require.ErrorIs(t, receipt.Err, ErrOutOfGas)
	require.Equal(t, uint64(20_000), receipt.GasUsed)
	requireBalance(t, store, sender, 1000)
	requireNonce(t, store, sender, 1)
}

func TestProcessor_FailingApplyIsRolledBack(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Airdrop(store, sender, amount.New(1000)))

	// The transfer is applied before the storage write fails, since the
	// recipient has no contract.
	interpreter := interpreterFunc(func(journal *substate.Substate, msg Message) Result {
		if err := journal.Transfer(state.Transfer{Source: msg.Caller, Target: *msg.To, Value: msg.Value}); err != nil {
			return Result{Err: err}
		}
		journal.SetStorage(*msg.To, *uint256.NewInt(1), *uint256.NewInt(1))
		return Result{Success: true}
	})

	raw := encodeTx(t, 0, &recipient, 10, 21_000, nil)
	receipt, err := NewProcessor(interpreter).Execute(store, sender, raw)
	require.NoError(t, err)
	require.False(t, receipt.Success)
	require.ErrorIs(t, receipt.Err, common.ErrContractNotFound)
	requireBalance(t, store, sender, 1000)
	requireBalance(t, store, recipient, 0)
	requireNonce(t, store, sender, 1)
}

func TestProcessor_ReceiptContainsLogsAndOutput(t *testing.T) {
	store := newTestStore(t)
	interpreter := interpreterFunc(func(journal *substate.Substate, msg Message) Result {
		journal.Enter(false)
		journal.Log(*msg.To, []common.Hash{{1}}, []byte{2})
		journal.ExitCommit()
		return Result{Success: true, Output: []byte{3}, GasUsed: 1}
	})

	receipt, err := NewProcessor(interpreter).Execute(store, sender, encodeTx(t, 0, &recipient, 0, 21_000, nil))
	require.NoError(t, err)
	require.True(t, receipt.Success)
	require.Equal(t, []byte{3}, receipt.Output)
	require.Len(t, receipt.Logs, 1)
	require.Equal(t, recipient, receipt.Logs[0].Address)
	require.Equal(t, uint64(1), receipt.Logs[0].BlockNumber)
}

func TestProcessor_QueryDoesNotModifyState(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Airdrop(store, sender, amount.New(1000)))
	interpreter := interpreterFunc(func(journal *substate.Substate, msg Message) Result {
		if err := journal.Transfer(state.Transfer{Source: msg.Caller, Target: *msg.To, Value: msg.Value}); err != nil {
			return Result{Err: err}
		}
		balance := journal.Balance(*msg.To)
		return Result{Success: true, Output: balance.Bytes()}
	})

	output, err := NewProcessor(interpreter).Query(store, sender, encodeTx(t, 5, &recipient, 10, 21_000, nil))
	require.NoError(t, err)
	require.Equal(t, []byte{10}, output)
	requireBalance(t, store, sender, 1000)
	requireBalance(t, store, recipient, 0)
	requireNonce(t, store, sender, 0)
}

func TestIntrinsicGas(t *testing.T) {
	require.Equal(t, uint64(21_000), IntrinsicGas(nil, false))
	require.Equal(t, uint64(53_000), IntrinsicGas(nil, true))
	require.Equal(t, uint64(21_000+4+16), IntrinsicGas([]byte{0, 1}, false))
}
