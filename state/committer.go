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
	"math"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/evm"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/holiman/uint256"
)

var (
	appliedTransfersCounter = metrics.NewRegisteredCounter("state/apply/transfers", nil)
	appliedModifiesCounter  = metrics.NewRegisteredCounter("state/apply/modifies", nil)
	appliedDeletesCounter   = metrics.NewRegisteredCounter("state/apply/deletes", nil)
	acceptedLogsCounter     = metrics.NewRegisteredCounter("state/apply/logs", nil)
	failedAppliesCounter    = metrics.NewRegisteredCounter("state/apply/failed", nil)
)

// Committer writes the effects of transactions into a Backend.
//
// A state change is written in a fixed order: all transfers first, then the
// per-address changes in the order listed. The first failing entry aborts the
// process. Entries written before the failure remain in the backend, so
// callers requiring atomicity need to run the Committer on a transactional
// backend and discard it on failure.
type Committer struct {
	backend Backend
}

// NewCommitter creates a Committer writing into the given backend.
func NewCommitter(backend Backend) *Committer {
	return &Committer{backend: backend}
}

// ApplyStateChange writes the given state change into the backend. Logs are
// accepted but not persisted. A nonce decreasing the stored nonce of an
// account or the deletion of an account without contract is a violation of
// the caller's protocol and causes a panic.
func (c *Committer) ApplyStateChange(change ApplyState) error {
	if err := c.applyStateChange(change); err != nil {
		failedAppliesCounter.Inc(1)
		return err
	}
	log.Debug("Applied state change", "transfers", len(change.Transfers), "applies", len(change.Applies), "logs", len(change.Logs))
	return nil
}

func (c *Committer) applyStateChange(change ApplyState) error {
	for _, transfer := range change.Transfers {
		if err := c.applyTransfer(transfer); err != nil {
			return err
		}
	}
	appliedTransfersCounter.Inc(int64(len(change.Transfers)))

	for _, apply := range change.Applies {
		switch apply.Kind {
		case Delete:
			if err := c.applyDelete(apply.Address); err != nil {
				return err
			}
			appliedDeletesCounter.Inc(1)
		case Modify:
			if err := c.applyModify(&apply); err != nil {
				return err
			}
			appliedModifiesCounter.Inc(1)
		default:
			panic(fmt.Sprintf("unknown apply kind %v for %v", apply.Kind, apply.Address))
		}
	}

	acceptedLogsCounter.Inc(int64(len(change.Logs)))
	return nil
}

func (c *Committer) applyTransfer(transfer Transfer) error {
	if err := c.backend.CreateAccount(transfer.Source); err != nil {
		return err
	}
	if err := c.backend.CreateAccount(transfer.Target); err != nil {
		return err
	}

	sourceBalance, err := c.backend.Balance(transfer.Source)
	if err != nil {
		return err
	}
	newSourceBalance, underflow := amount.SubUnderflow(sourceBalance, transfer.Value)
	if underflow {
		log.Debug("Transfer exceeds source balance", "source", transfer.Source, "balance", sourceBalance, "value", transfer.Value)
		return fmt.Errorf("%w: %v has %v, transfer requires %v", common.ErrInsufficientFunds, transfer.Source, sourceBalance, transfer.Value)
	}
	if transfer.Source == transfer.Target {
		return nil
	}

	targetBalance, err := c.backend.Balance(transfer.Target)
	if err != nil {
		return err
	}
	newTargetBalance, overflow := amount.AddOverflow(targetBalance, transfer.Value)
	if overflow {
		log.Debug("Transfer overflows target balance", "target", transfer.Target, "balance", targetBalance, "value", transfer.Value)
		return fmt.Errorf("%w: %v has %v, received %v", common.ErrBalanceOverflow, transfer.Target, targetBalance, transfer.Value)
	}

	if err := c.backend.SetBalance(transfer.Source, newSourceBalance); err != nil {
		return err
	}
	return c.backend.SetBalance(transfer.Target, newTargetBalance)
}

func (c *Committer) applyDelete(address common.Address) error {
	hasContract, err := c.backend.HasContract(address)
	if err != nil {
		return err
	}
	if !hasContract {
		panic(fmt.Sprintf("deleting account %v without contract", address))
	}
	return c.backend.DeleteAccount(address)
}

func (c *Committer) applyModify(apply *Apply) error {
	address := apply.Address
	if err := c.backend.CreateAccount(address); err != nil {
		return err
	}

	current, err := c.backend.Nonce(address)
	if err != nil {
		return err
	}
	stored := uint256.NewInt(current)
	if !apply.Nonce.Eq(stored) {
		if apply.Nonce.Lt(stored) {
			panic(fmt.Sprintf("nonce of %v decreases from %d to %v", address, current, &apply.Nonce))
		}
		if !apply.Nonce.IsUint64() {
			log.Debug("Nonce exceeds durable width", "address", address, "nonce", &apply.Nonce)
			return fmt.Errorf("%w: %v for %v", common.ErrNonceOverflow, &apply.Nonce, address)
		}
		if err := c.backend.SetNonce(address, apply.Nonce.Uint64()); err != nil {
			return err
		}
	}

	if code := apply.CodeAndValids; code != nil {
		if err := c.backend.SetContract(address, NewContract(code.Code, code.Valids)); err != nil {
			return err
		}
	}

	if apply.ResetStorage || len(apply.Storage) > 0 {
		if apply.ResetStorage {
			if err := c.backend.ClearStorage(address); err != nil {
				return err
			}
		}
		for _, key := range apply.SortedStorageKeys() {
			if err := c.backend.SetStorage(address, key, apply.Storage[key]); err != nil {
				return err
			}
		}
	}
	return nil
}

// IncrementNonce consumes a nonce of the given account. It is used for
// transactions that failed but still need to advance the sender's nonce.
// The account is created if needed.
func (c *Committer) IncrementNonce(address common.Address) error {
	if err := c.backend.CreateAccount(address); err != nil {
		return err
	}
	nonce, err := c.backend.Nonce(address)
	if err != nil {
		return err
	}
	if nonce == math.MaxUint64 {
		return fmt.Errorf("%w: %v", common.ErrNonceOverflow, address)
	}
	return c.backend.SetNonce(address, nonce+1)
}

// Airdrop sets the balance of the given account, creating it if needed.
func (c *Committer) Airdrop(address common.Address, balance amount.Amount) error {
	if err := c.backend.CreateAccount(address); err != nil {
		return err
	}
	log.Info("Airdrop", "address", address, "balance", balance)
	return c.backend.SetBalance(address, balance)
}

// DeployContract installs the given runtime code at the address. Accounts
// with a zero nonce get a nonce of 1, as contract creation would set it.
func (c *Committer) DeployContract(address common.Address, code []byte) error {
	if err := c.backend.CreateAccount(address); err != nil {
		return err
	}
	nonce, err := c.backend.Nonce(address)
	if err != nil {
		return err
	}
	if nonce == 0 {
		if err := c.backend.SetNonce(address, 1); err != nil {
			return err
		}
	}
	log.Info("Deploying contract", "address", address, "size", len(code))
	return c.backend.SetContract(address, NewContract(code, evm.ComputeValids(code)))
}
