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
	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/state"
	"github.com/Terranova-EVM/terranova-core/substate"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
)

const (
	// ErrCodeExecutionUnsupported is reported by interpreters not able to run contract code.
	ErrCodeExecutionUnsupported = common.ConstError("contract code execution is not supported")
	// ErrOutOfGas is reported if a transaction used more gas than its limit.
	ErrOutOfGas = common.ConstError("out of gas")
)

// Message is a call or create request handed to an Interpreter.
type Message struct {
	Caller common.Address
	// To is the called account; nil for contract creations
	To    *common.Address
	Nonce uint64
	Value amount.Amount
	// Data is the call data or the init code of a contract creation
	Data     []byte
	GasLimit uint64
}

// Result summarizes the outcome of a call or create.
type Result struct {
	Success bool
	Output  []byte
	GasUsed uint64
	// ContractAddress is the address of a created contract
	ContractAddress *common.Address
	// Err is the reason of a failure
	Err error
}

// Interpreter runs messages against a journal. Implementations apply the
// effects of successful executions to the journal and leave it unchanged
// otherwise, by nesting their work into journal frames.
type Interpreter interface {
	Call(journal *substate.Substate, msg Message) Result
	Create(journal *substate.Substate, msg Message) Result
}

// ValueTransferInterpreter is an Interpreter supporting plain value
// transfers and the creation of contracts without init code. Messages
// requiring the execution of code fail with ErrCodeExecutionUnsupported.
type ValueTransferInterpreter struct{}

// IntrinsicGas computes the gas charged for a message before executing any code.
func IntrinsicGas(data []byte, isCreate bool) uint64 {
	gas := params.TxGas
	if isCreate {
		gas = params.TxGasContractCreation
	}
	for _, b := range data {
		if b == 0 {
			gas += params.TxDataZeroGas
		} else {
			gas += params.TxDataNonZeroGasEIP2028
		}
	}
	return gas
}

func (ValueTransferInterpreter) Call(journal *substate.Substate, msg Message) Result {
	gas := IntrinsicGas(msg.Data, false)
	journal.Enter(false)
	transfer := state.Transfer{Source: msg.Caller, Target: *msg.To, Value: msg.Value}
	if err := journal.Transfer(transfer); err != nil {
		journal.ExitRevert()
		return Result{GasUsed: gas, Err: err}
	}
	if journal.CodeSize(*msg.To) > 0 {
		journal.ExitRevert()
		return Result{GasUsed: gas, Err: ErrCodeExecutionUnsupported}
	}
	journal.Touch(*msg.To)
	journal.ExitCommit()
	return Result{Success: true, GasUsed: gas}
}

func (ValueTransferInterpreter) Create(journal *substate.Substate, msg Message) Result {
	gas := IntrinsicGas(msg.Data, true)
	address := crypto.CreateAddress(msg.Caller, msg.Nonce)
	if nonce := journal.Nonce(address); !nonce.IsZero() || journal.CodeSize(address) > 0 {
		return Result{GasUsed: gas, Err: common.ErrContractCreationFailed}
	}
	if len(msg.Data) > 0 {
		return Result{GasUsed: gas, Err: ErrCodeExecutionUnsupported}
	}

	journal.Enter(false)
	if err := journal.IncNonce(address); err != nil {
		journal.ExitRevert()
		return Result{GasUsed: gas, Err: err}
	}
	if err := journal.Transfer(state.Transfer{Source: msg.Caller, Target: address, Value: msg.Value}); err != nil {
		journal.ExitRevert()
		return Result{GasUsed: gas, Err: err}
	}
	journal.SetCode(address, []byte{})
	journal.ExitCommit()
	return Result{Success: true, GasUsed: gas, ContractAddress: &address}
}
