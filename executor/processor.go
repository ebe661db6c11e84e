// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package executor processes transactions submitted by the host: it decodes
// them, runs them on a journal through an Interpreter, and commits their
// effects to the durable state.
package executor

import (
	"fmt"
	"math"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/state"
	"github.com/Terranova-EVM/terranova-core/substate"
	"github.com/Terranova-EVM/terranova-core/transaction"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
)

var (
	executedTxCounter = metrics.NewRegisteredCounter("executor/tx/executed", nil)
	failedTxCounter   = metrics.NewRegisteredCounter("executor/tx/failed", nil)
	queriesCounter    = metrics.NewRegisteredCounter("executor/queries", nil)
)

// Database is the durable state transactions are executed on.
type Database interface {
	state.Reader
	Begin() (state.Transaction, error)
}

// Receipt summarizes the execution of a transaction.
type Receipt struct {
	TxHash          common.Hash
	Success         bool
	Output          []byte
	GasUsed         uint64
	ContractAddress *common.Address
	Logs            []*types.Log
	// Err is the reason a transaction failed
	Err error
}

// Processor executes transactions using an Interpreter.
type Processor struct {
	interpreter Interpreter
}

// NewProcessor creates a processor running messages on the given interpreter.
func NewProcessor(interpreter Interpreter) *Processor {
	return &Processor{interpreter: interpreter}
}

// Execute runs the encoded transaction sent by the caller and commits its
// effects. Transactions that are malformed, bound to another chain, or not
// matching the caller's nonce are rejected with ErrInvalidTransactionData
// without modifying the state. Transactions failing during execution or
// while committing their effects only consume the caller's nonce; the
// failure is reported in the receipt. Errors of the database are returned.
func (p *Processor) Execute(db Database, caller common.Address, raw []byte) (*Receipt, error) {
	tx, err := transaction.FromRLP(raw)
	if err != nil {
		return nil, err
	}
	msg, err := p.toMessage(db, caller, tx)
	if err != nil {
		return nil, err
	}

	dbTx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	receipt, err := p.run(dbTx, tx, msg)
	if err != nil {
		dbTx.Discard()
		return nil, err
	}
	if receipt.Success {
		if err := dbTx.Commit(); err != nil {
			return nil, err
		}
		executedTxCounter.Inc(1)
		log.Debug("Executed transaction", "hash", receipt.TxHash, "caller", caller, "gas", receipt.GasUsed)
		return receipt, nil
	}

	dbTx.Discard()
	if err := consumeNonce(db, caller); err != nil {
		return nil, err
	}
	failedTxCounter.Inc(1)
	log.Debug("Transaction failed", "hash", receipt.TxHash, "caller", caller, "err", receipt.Err)
	return receipt, nil
}

func (p *Processor) toMessage(reader state.Reader, caller common.Address, tx *transaction.UnsignedTransaction) (Message, error) {
	if tx.ChainID != nil && (!tx.ChainID.IsUint64() || tx.ChainID.Uint64() != reader.ChainID()) {
		return Message{}, fmt.Errorf("%w: chain id %v, expected %d", common.ErrInvalidTransactionData, tx.ChainID, reader.ChainID())
	}
	nonce, err := reader.Nonce(caller)
	if err != nil {
		return Message{}, err
	}
	if tx.Nonce != nonce {
		return Message{}, fmt.Errorf("%w: nonce %d of %v, expected %d", common.ErrInvalidTransactionData, tx.Nonce, caller, nonce)
	}
	if !tx.GasLimit.IsUint64() {
		return Message{}, fmt.Errorf("%w: gas limit %v", common.ErrInvalidTransactionData, &tx.GasLimit)
	}
	return Message{
		Caller:   caller,
		To:       tx.To,
		Nonce:    tx.Nonce,
		Value:    amount.FromUint256(&tx.Value),
		Data:     tx.CallData,
		GasLimit: tx.GasLimit.Uint64(),
	}, nil
}

func (p *Processor) interpret(journal *substate.Substate, msg Message) Result {
	var result Result
	if msg.To == nil {
		result = p.interpreter.Create(journal, msg)
	} else {
		result = p.interpreter.Call(journal, msg)
	}
	if result.Success && result.GasUsed > msg.GasLimit {
		return Result{GasUsed: msg.GasLimit, Err: ErrOutOfGas}
	}
	return result
}

// run executes the message within the given database transaction. Errors
// are only reported for failing database accesses.
func (p *Processor) run(backend state.Transaction, tx *transaction.UnsignedTransaction, msg Message) (*Receipt, error) {
	receipt := &Receipt{TxHash: tx.Hash()}
	journal := substate.New(backend)
	if err := journal.IncNonce(msg.Caller); err != nil {
		receipt.Err = err
		return receipt, nil
	}

	result := p.interpret(journal, msg)
	if err := journal.Check(); err != nil {
		return nil, err
	}
	receipt.Output = result.Output
	receipt.GasUsed = result.GasUsed
	if !result.Success {
		receipt.Err = result.Err
		return receipt, nil
	}

	change, err := journal.Deconstruct()
	if err != nil {
		return nil, err
	}
	if err := state.NewCommitter(backend).ApplyStateChange(change); err != nil {
		receipt.Err = err
		return receipt, nil
	}
	receipt.Success = true
	receipt.ContractAddress = result.ContractAddress
	receipt.Logs = change.Logs
	return receipt, nil
}

func consumeNonce(db Database, caller common.Address) error {
	dbTx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := state.NewCommitter(dbTx).IncrementNonce(caller); err != nil {
		dbTx.Discard()
		return err
	}
	return dbTx.Commit()
}

// Query runs the encoded transaction without committing any of its effects
// and returns its output. The nonce of the transaction is not checked.
func (p *Processor) Query(reader state.Reader, caller common.Address, raw []byte) ([]byte, error) {
	tx, err := transaction.FromRLP(raw)
	if err != nil {
		return nil, err
	}
	nonce, err := reader.Nonce(caller)
	if err != nil {
		return nil, err
	}
	queriesCounter.Inc(1)
	msg := Message{
		Caller:   caller,
		To:       tx.To,
		Nonce:    nonce,
		Value:    amount.FromUint256(&tx.Value),
		Data:     tx.CallData,
		GasLimit: math.MaxUint64,
	}
	if tx.GasLimit.IsUint64() {
		msg.GasLimit = tx.GasLimit.Uint64()
	}
	journal := substate.New(reader)
	result := p.interpret(journal, msg)
	if err := journal.Check(); err != nil {
		return nil, err
	}
	if !result.Success {
		return result.Output, result.Err
	}
	return result.Output, nil
}

// Airdrop sets the balance of an account in a dedicated database transaction.
func Airdrop(db Database, address common.Address, balance amount.Amount) error {
	return update(db, func(committer *state.Committer) error {
		return committer.Airdrop(address, balance)
	})
}

// Deploy installs contract code at the given address in a dedicated
// database transaction.
func Deploy(db Database, address common.Address, code []byte) error {
	return update(db, func(committer *state.Committer) error {
		return committer.DeployContract(address, code)
	})
}

func update(db Database, change func(*state.Committer) error) error {
	dbTx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := change(state.NewCommitter(dbTx)); err != nil {
		dbTx.Discard()
		return err
	}
	return dbTx.Commit()
}
