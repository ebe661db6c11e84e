// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package substate implements the journal of speculative state changes
// made while executing a single transaction. Each call or create frame of
// the execution operates on its own frame of the journal, which is merged
// into its parent on success and dropped on failure.
package substate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Terranova-EVM/terranova-core/common"
	"github.com/Terranova-EVM/terranova-core/common/amount"
	"github.com/Terranova-EVM/terranova-core/evm"
	"github.com/Terranova-EVM/terranova-core/state"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"golang.org/x/exp/maps"
)

// account is the journal's view of an account modified in some frame.
type account struct {
	nonce   uint256.Int
	hasCode bool
	code    []byte
	valids  []byte
	// reset is set if the account's storage was cleared in this frame
	reset bool
}

type slotId struct {
	address common.Address
	key     uint256.Int
}

// frame holds the changes made by a single call or create frame.
type frame struct {
	metadata  Metadata
	logs      []*types.Log
	transfers []state.Transfer
	accounts  map[common.Address]*account
	balances  map[common.Address]amount.Amount
	storages  map[slotId]uint256.Int
	deletes   map[common.Address]struct{}
}

func newFrame(metadata Metadata) *frame {
	return &frame{
		metadata: metadata,
		accounts: map[common.Address]*account{},
		balances: map[common.Address]amount.Amount{},
		storages: map[slotId]uint256.Int{},
		deletes:  map[common.Address]struct{}{},
	}
}

// origin memoizes values read from the backend. Each value is fetched at
// most once per transaction.
type origin struct {
	exists      map[common.Address]bool
	nonces      map[common.Address]uint64
	balances    map[common.Address]amount.Amount
	codes       map[common.Address][]byte
	valids      map[common.Address][]byte
	storages    map[slotId]uint256.Int
	blockHashes map[uint64]common.Hash
}

func newOrigin() origin {
	return origin{
		exists:      map[common.Address]bool{},
		nonces:      map[common.Address]uint64{},
		balances:    map[common.Address]amount.Amount{},
		codes:       map[common.Address][]byte{},
		valids:      map[common.Address][]byte{},
		storages:    map[slotId]uint256.Int{},
		blockHashes: map[uint64]common.Hash{},
	}
}

// Substate is the journal of a single transaction. Reads are served by the
// innermost frame knowing the requested value, falling back to the backend.
// Writes only affect the innermost frame.
//
// Failing backend reads are reported as zero values. The failures are
// collected and reported by Check and Deconstruct; a transaction observing
// such a failure must not be committed.
//
// A Substate is not safe for concurrent use.
type Substate struct {
	backend state.Reader
	// frames is the stack of active frames; frames[0] is the root
	frames []*frame
	origin origin
	// A list of errors encountered during backend interactions.
	errors []error
}

// New creates the root journal of a transaction executed on top of the
// given backend.
func New(backend state.Reader) *Substate {
	return &Substate{
		backend: backend,
		frames:  []*frame{newFrame(NewMetadata(backend.BlockNumber(), backend.BlockTimestamp()))},
		origin:  newOrigin(),
	}
}

func (s *Substate) top() *frame {
	return s.frames[len(s.frames)-1]
}

// Metadata returns the metadata of the innermost frame.
func (s *Substate) Metadata() Metadata {
	return s.top().metadata
}

// Depth returns the call depth of the innermost frame, see Metadata.Depth.
func (s *Substate) Depth() (int, bool) {
	return s.top().metadata.Depth()
}

// Logs returns the logs emitted in the innermost frame.
func (s *Substate) Logs() []*types.Log {
	return s.top().logs
}

// Transfers returns the transfers performed in the innermost frame.
func (s *Substate) Transfers() []state.Transfer {
	return s.top().transfers
}

// Check returns the errors encountered while reading from the backend.
func (s *Substate) Check() error {
	return errors.Join(s.errors...)
}

// Enter starts a nested frame.
func (s *Substate) Enter(isStatic bool) {
	s.frames = append(s.frames, newFrame(s.top().metadata.Child(isStatic)))
}

func (s *Substate) pop(operation string) *frame {
	if len(s.frames) == 1 {
		panic(fmt.Sprintf("cannot %s the root substate", operation))
	}
	child := s.top()
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return child
}

// ExitCommit ends the innermost frame, merging its changes into its parent.
// It panics if called on the root frame.
func (s *Substate) ExitCommit() {
	child := s.pop("commit")
	parent := s.top()

	parent.logs = append(parent.logs, child.logs...)
	parent.transfers = append(parent.transfers, child.transfers...)

	// Storage cleared in the child invalidates the parent's pending writes.
	for address, acc := range child.accounts {
		if !acc.reset {
			continue
		}
		for id := range parent.storages {
			if id.address == address {
				delete(parent.storages, id)
			}
		}
	}

	// The parent's resets survive the replacement of its account entries.
	var resets []common.Address
	for address, acc := range parent.accounts {
		if acc.reset {
			resets = append(resets, address)
		}
	}
	for address, acc := range child.accounts {
		parent.accounts[address] = acc
	}
	for _, address := range resets {
		parent.accounts[address].reset = true
	}

	for id, value := range child.storages {
		parent.storages[id] = value
	}
	for address := range child.deletes {
		parent.deletes[address] = struct{}{}
	}
	for address, balance := range child.balances {
		parent.balances[address] = balance
	}
}

// ExitRevert ends the innermost frame, dropping all its changes. It panics
// if called on the root frame.
func (s *Substate) ExitRevert() {
	s.pop("revert")
}

// ExitDiscard ends the innermost frame, dropping all its changes. It panics
// if called on the root frame.
func (s *Substate) ExitDiscard() {
	s.pop("discard")
}

// ----------------------------------------------------------------------------
//                             Block context
// ----------------------------------------------------------------------------

func (s *Substate) BlockNumber() uint64 {
	return s.top().metadata.BlockNumber()
}

func (s *Substate) BlockTimestamp() uint64 {
	return s.top().metadata.BlockTimestamp()
}

func (s *Substate) ChainID() uint64 {
	return s.backend.ChainID()
}

func (s *Substate) BlockHash(number uint64) common.Hash {
	if hash, found := s.origin.blockHashes[number]; found {
		return hash
	}
	hash, err := s.backend.BlockHash(number)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("failed to load hash of block %d: %w", number, err))
		return common.Hash{}
	}
	s.origin.blockHashes[number] = hash
	return hash
}

// ----------------------------------------------------------------------------
//                             Accounts
// ----------------------------------------------------------------------------

// knownAccount returns the entry of the innermost frame knowing the account.
func (s *Substate) knownAccount(address common.Address) *account {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if acc, found := s.frames[i].accounts[address]; found {
			return acc
		}
	}
	return nil
}

// accountMut returns the entry of the account in the innermost frame,
// creating it from the closest known state if needed.
func (s *Substate) accountMut(address common.Address) *account {
	top := s.top()
	if acc, found := top.accounts[address]; found {
		return acc
	}
	acc := &account{}
	if known := s.knownAccount(address); known != nil {
		// Storage resets stay with the frame that issued them.
		*acc = *known
		acc.reset = false
	} else {
		acc.nonce.SetUint64(s.backendNonce(address))
	}
	top.accounts[address] = acc
	return acc
}

// Exists checks whether the account is known to the journal or present in
// the backend.
func (s *Substate) Exists(address common.Address) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, found := s.frames[i].accounts[address]; found {
			return true
		}
		if _, found := s.frames[i].balances[address]; found {
			return true
		}
	}
	if exists, found := s.origin.exists[address]; found {
		return exists
	}
	exists, err := s.backend.Exists(address)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("failed to check existence of %v: %w", address, err))
		return false
	}
	s.origin.exists[address] = exists
	return exists
}

// Empty checks whether the account has a zero balance, a zero nonce, and no code.
func (s *Substate) Empty(address common.Address) bool {
	if !s.Balance(address).IsZero() {
		return false
	}
	if nonce := s.Nonce(address); !nonce.IsZero() {
		return false
	}
	return s.CodeSize(address) == 0
}

// Deleted checks whether the account has been scheduled for deletion.
func (s *Substate) Deleted(address common.Address) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, found := s.frames[i].deletes[address]; found {
			return true
		}
	}
	return false
}

func (s *Substate) Nonce(address common.Address) uint256.Int {
	if acc := s.knownAccount(address); acc != nil {
		return acc.nonce
	}
	var nonce uint256.Int
	nonce.SetUint64(s.backendNonce(address))
	return nonce
}

func (s *Substate) backendNonce(address common.Address) uint64 {
	if nonce, found := s.origin.nonces[address]; found {
		return nonce
	}
	nonce, err := s.backend.Nonce(address)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("failed to load nonce for address %v: %w", address, err))
		return 0
	}
	s.origin.nonces[address] = nonce
	return nonce
}

func (s *Substate) Balance(address common.Address) amount.Amount {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if balance, found := s.frames[i].balances[address]; found {
			return balance
		}
	}
	if balance, found := s.origin.balances[address]; found {
		return balance
	}
	balance, err := s.backend.Balance(address)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("failed to load balance for address %v: %w", address, err))
		return amount.New()
	}
	s.origin.balances[address] = balance
	return balance
}

func (s *Substate) Code(address common.Address) []byte {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if acc, found := s.frames[i].accounts[address]; found && acc.hasCode {
			return acc.code
		}
	}
	if code, found := s.origin.codes[address]; found {
		return code
	}
	code, err := s.backend.Code(address)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("unable to obtain code for %v: %w", address, err))
		return nil
	}
	s.origin.codes[address] = code
	return code
}

func (s *Substate) Valids(address common.Address) []byte {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if acc, found := s.frames[i].accounts[address]; found && acc.hasCode {
			return acc.valids
		}
	}
	if valids, found := s.origin.valids[address]; found {
		return valids
	}
	valids, err := s.backend.Valids(address)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("unable to obtain valids for %v: %w", address, err))
		return nil
	}
	s.origin.valids[address] = valids
	return valids
}

func (s *Substate) CodeSize(address common.Address) int {
	return len(s.Code(address))
}

// CodeHash returns the zero hash for accounts that do not exist and the
// Keccak-256 hash of the code otherwise.
func (s *Substate) CodeHash(address common.Address) common.Hash {
	if !s.Exists(address) {
		return common.Hash{}
	}
	code := s.Code(address)
	if len(code) == 0 {
		return common.EmptyCodeHash
	}
	return common.Keccak256(code)
}

// ----------------------------------------------------------------------------
//                             Storage
// ----------------------------------------------------------------------------

func (s *Substate) Storage(address common.Address, key uint256.Int) uint256.Int {
	id := slotId{address, key}
	for i := len(s.frames) - 1; i >= 0; i-- {
		if value, found := s.frames[i].storages[id]; found {
			return value
		}
		if acc, found := s.frames[i].accounts[address]; found && acc.reset {
			return uint256.Int{}
		}
	}
	return s.backendStorage(id)
}

// OriginalStorage returns the value of the slot at the start of the
// transaction. Slots of accounts with cleared storage are zero.
func (s *Substate) OriginalStorage(address common.Address, key uint256.Int) uint256.Int {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if acc, found := s.frames[i].accounts[address]; found && acc.reset {
			return uint256.Int{}
		}
	}
	return s.backendStorage(slotId{address, key})
}

func (s *Substate) backendStorage(id slotId) uint256.Int {
	if value, found := s.origin.storages[id]; found {
		return value
	}
	value, err := s.backend.Storage(id.address, id.key)
	if err != nil {
		s.errors = append(s.errors, fmt.Errorf("failed to load storage location %v/%v: %w", id.address, &id.key, err))
		return uint256.Int{}
	}
	s.origin.storages[id] = value
	return value
}

// ----------------------------------------------------------------------------
//                             Mutations
// ----------------------------------------------------------------------------

// IncNonce increments the nonce of the account. ErrNonceOverflow is
// reported if the result would not fit into 64 bits; the nonce is not
// modified in this case.
func (s *Substate) IncNonce(address common.Address) error {
	acc := s.accountMut(address)
	if !acc.nonce.IsUint64() || acc.nonce.Uint64() == math.MaxUint64 {
		return fmt.Errorf("%w: %v", common.ErrNonceOverflow, address)
	}
	acc.nonce.AddUint64(&acc.nonce, 1)
	return nil
}

func (s *Substate) SetStorage(address common.Address, key, value uint256.Int) {
	s.top().storages[slotId{address, key}] = value
}

// ResetStorage clears the storage of the account.
func (s *Substate) ResetStorage(address common.Address) {
	top := s.top()
	for id := range top.storages {
		if id.address == address {
			delete(top.storages, id)
		}
	}
	s.accountMut(address).reset = true
}

func (s *Substate) Log(address common.Address, topics []common.Hash, data []byte) {
	top := s.top()
	top.logs = append(top.logs, &types.Log{
		Address:     address,
		Topics:      topics,
		Data:        data,
		BlockNumber: top.metadata.BlockNumber(),
	})
}

// SetDeleted schedules the account for deletion at the end of the transaction.
func (s *Substate) SetDeleted(address common.Address) {
	s.top().deletes[address] = struct{}{}
}

// SetCode installs the code of the account and computes its valid jump
// destinations.
func (s *Substate) SetCode(address common.Address, code []byte) {
	acc := s.accountMut(address)
	acc.hasCode = true
	acc.code = code
	acc.valids = evm.ComputeValids(code)
}

// Touch makes the account known to the innermost frame.
func (s *Substate) Touch(address common.Address) {
	s.accountMut(address)
}

// ResetBalance sets the balance of the account to zero.
func (s *Substate) ResetBalance(address common.Address) {
	s.top().balances[address] = amount.New()
}

// Transfer moves value between two accounts. On failure, balances remain
// unchanged and ErrInsufficientFunds or ErrBalanceOverflow is reported.
func (s *Substate) Transfer(transfer state.Transfer) error {
	sourceBalance := s.Balance(transfer.Source)
	newSourceBalance, underflow := amount.SubUnderflow(sourceBalance, transfer.Value)
	if underflow {
		return fmt.Errorf("%w: %v has %v, transfer requires %v", common.ErrInsufficientFunds, transfer.Source, sourceBalance, transfer.Value)
	}

	top := s.top()
	if transfer.Source != transfer.Target {
		targetBalance := s.Balance(transfer.Target)
		newTargetBalance, overflow := amount.AddOverflow(targetBalance, transfer.Value)
		if overflow {
			return fmt.Errorf("%w: %v has %v, received %v", common.ErrBalanceOverflow, transfer.Target, targetBalance, transfer.Value)
		}
		top.balances[transfer.Source] = newSourceBalance
		top.balances[transfer.Target] = newTargetBalance
	}
	top.transfers = append(top.transfers, transfer)
	return nil
}

// ----------------------------------------------------------------------------
//                             Deconstruction
// ----------------------------------------------------------------------------

// Deconstruct flattens the root journal into the state change to be
// committed. It panics if nested frames are still active. Any error
// encountered while reading from the backend is reported instead of the
// state change.
func (s *Substate) Deconstruct() (state.ApplyState, error) {
	if len(s.frames) != 1 {
		panic(fmt.Sprintf("cannot deconstruct substate with %d nested frames", len(s.frames)-1))
	}
	root := s.frames[0]

	storages := map[common.Address]map[uint256.Int]uint256.Int{}
	for id, value := range root.storages {
		slots, found := storages[id.address]
		if !found {
			slots = map[uint256.Int]uint256.Int{}
			storages[id.address] = slots
		}
		slots[id.key] = value
	}

	touched := map[common.Address]struct{}{}
	for address := range root.accounts {
		touched[address] = struct{}{}
	}
	for address := range storages {
		touched[address] = struct{}{}
	}

	var applies []state.Apply
	for _, address := range sortedAddresses(touched) {
		if _, deleted := root.deletes[address]; deleted {
			continue
		}
		apply := state.Apply{
			Kind:    state.Modify,
			Address: address,
			Nonce:   s.Nonce(address),
			Storage: storages[address],
		}
		if apply.Storage == nil {
			apply.Storage = map[uint256.Int]uint256.Int{}
		}
		if acc, found := root.accounts[address]; found {
			apply.ResetStorage = acc.reset
			if acc.hasCode {
				apply.CodeAndValids = &state.CodeAndValids{Code: acc.code, Valids: acc.valids}
			}
		}
		applies = append(applies, apply)
	}
	for _, address := range sortedAddresses(root.deletes) {
		applies = append(applies, state.NewDelete(address))
	}

	if err := s.Check(); err != nil {
		return state.ApplyState{}, err
	}

	log.Trace("Deconstructed substate", "applies", len(applies), "transfers", len(root.transfers), "logs", len(root.logs))
	return state.ApplyState{
		Applies:   applies,
		Logs:      root.logs,
		Transfers: root.transfers,
	}, nil
}

func sortedAddresses(set map[common.Address]struct{}) []common.Address {
	addresses := maps.Keys(set)
	sort.Slice(addresses, func(i, j int) bool {
		return common.AddressLess(addresses[i], addresses[j])
	})
	return addresses
}
