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
	reflect "reflect"

	common "github.com/Terranova-EVM/terranova-core/common"
	amount "github.com/Terranova-EVM/terranova-core/common/amount"
	uint256 "github.com/holiman/uint256"
	gomock "go.uber.org/mock/gomock"
)

// MockReader is a mock of Reader interface.
type MockReader struct {
	ctrl     *gomock.Controller
	recorder *MockReaderMockRecorder
}

// MockReaderMockRecorder is the mock recorder for MockReader.
type MockReaderMockRecorder struct {
	mock *MockReader
}

// NewMockReader creates a new mock instance.
func NewMockReader(ctrl *gomock.Controller) *MockReader {
	mock := &MockReader{ctrl: ctrl}
	mock.recorder = &MockReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReader) EXPECT() *MockReaderMockRecorder {
	return m.recorder
}

// Balance mocks base method.
func (m *MockReader) Balance(address common.Address) (amount.Amount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", address)
	ret0, _ := ret[0].(amount.Amount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Balance indicates an expected call of Balance.
func (mr *MockReaderMockRecorder) Balance(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockReader)(nil).Balance), address)
}

// BlockHash mocks base method.
func (m *MockReader) BlockHash(number uint64) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockHash", number)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BlockHash indicates an expected call of BlockHash.
func (mr *MockReaderMockRecorder) BlockHash(number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockHash", reflect.TypeOf((*MockReader)(nil).BlockHash), number)
}

// BlockNumber mocks base method.
func (m *MockReader) BlockNumber() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockNumber")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockNumber indicates an expected call of BlockNumber.
func (mr *MockReaderMockRecorder) BlockNumber() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockNumber", reflect.TypeOf((*MockReader)(nil).BlockNumber))
}

// BlockTimestamp mocks base method.
func (m *MockReader) BlockTimestamp() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockTimestamp")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockTimestamp indicates an expected call of BlockTimestamp.
func (mr *MockReaderMockRecorder) BlockTimestamp() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockTimestamp", reflect.TypeOf((*MockReader)(nil).BlockTimestamp))
}

// ChainID mocks base method.
func (m *MockReader) ChainID() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChainID")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// ChainID indicates an expected call of ChainID.
func (mr *MockReaderMockRecorder) ChainID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChainID", reflect.TypeOf((*MockReader)(nil).ChainID))
}

// Code mocks base method.
func (m *MockReader) Code(address common.Address) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Code", address)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Code indicates an expected call of Code.
func (mr *MockReaderMockRecorder) Code(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Code", reflect.TypeOf((*MockReader)(nil).Code), address)
}

// CodeHash mocks base method.
func (m *MockReader) CodeHash(address common.Address) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeHash", address)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeHash indicates an expected call of CodeHash.
func (mr *MockReaderMockRecorder) CodeHash(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeHash", reflect.TypeOf((*MockReader)(nil).CodeHash), address)
}

// CodeSize mocks base method.
func (m *MockReader) CodeSize(address common.Address) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeSize", address)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeSize indicates an expected call of CodeSize.
func (mr *MockReaderMockRecorder) CodeSize(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeSize", reflect.TypeOf((*MockReader)(nil).CodeSize), address)
}

// Exists mocks base method.
func (m *MockReader) Exists(address common.Address) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", address)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockReaderMockRecorder) Exists(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockReader)(nil).Exists), address)
}

// Nonce mocks base method.
func (m *MockReader) Nonce(address common.Address) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Nonce", address)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Nonce indicates an expected call of Nonce.
func (mr *MockReaderMockRecorder) Nonce(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Nonce", reflect.TypeOf((*MockReader)(nil).Nonce), address)
}

// Storage mocks base method.
func (m *MockReader) Storage(address common.Address, key uint256.Int) (uint256.Int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Storage", address, key)
	ret0, _ := ret[0].(uint256.Int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Storage indicates an expected call of Storage.
func (mr *MockReaderMockRecorder) Storage(address, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Storage", reflect.TypeOf((*MockReader)(nil).Storage), address, key)
}

// Valids mocks base method.
func (m *MockReader) Valids(address common.Address) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Valids", address)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Valids indicates an expected call of Valids.
func (mr *MockReaderMockRecorder) Valids(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Valids", reflect.TypeOf((*MockReader)(nil).Valids), address)
}

// MockBackend is a mock of Backend interface.
type MockBackend struct {
	ctrl     *gomock.Controller
	recorder *MockBackendMockRecorder
}

// MockBackendMockRecorder is the mock recorder for MockBackend.
type MockBackendMockRecorder struct {
	mock *MockBackend
}

// NewMockBackend creates a new mock instance.
func NewMockBackend(ctrl *gomock.Controller) *MockBackend {
	mock := &MockBackend{ctrl: ctrl}
	mock.recorder = &MockBackendMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBackend) EXPECT() *MockBackendMockRecorder {
	return m.recorder
}

// Balance mocks base method.
func (m *MockBackend) Balance(address common.Address) (amount.Amount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", address)
	ret0, _ := ret[0].(amount.Amount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Balance indicates an expected call of Balance.
func (mr *MockBackendMockRecorder) Balance(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockBackend)(nil).Balance), address)
}

// BlockHash mocks base method.
func (m *MockBackend) BlockHash(number uint64) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockHash", number)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BlockHash indicates an expected call of BlockHash.
func (mr *MockBackendMockRecorder) BlockHash(number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockHash", reflect.TypeOf((*MockBackend)(nil).BlockHash), number)
}

// BlockNumber mocks base method.
func (m *MockBackend) BlockNumber() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockNumber")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockNumber indicates an expected call of BlockNumber.
func (mr *MockBackendMockRecorder) BlockNumber() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockNumber", reflect.TypeOf((*MockBackend)(nil).BlockNumber))
}

// BlockTimestamp mocks base method.
func (m *MockBackend) BlockTimestamp() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockTimestamp")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockTimestamp indicates an expected call of BlockTimestamp.
func (mr *MockBackendMockRecorder) BlockTimestamp() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockTimestamp", reflect.TypeOf((*MockBackend)(nil).BlockTimestamp))
}

// ChainID mocks base method.
func (m *MockBackend) ChainID() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChainID")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// ChainID indicates an expected call of ChainID.
func (mr *MockBackendMockRecorder) ChainID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChainID", reflect.TypeOf((*MockBackend)(nil).ChainID))
}

// ClearStorage mocks base method.
func (m *MockBackend) ClearStorage(address common.Address) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearStorage", address)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearStorage indicates an expected call of ClearStorage.
func (mr *MockBackendMockRecorder) ClearStorage(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearStorage", reflect.TypeOf((*MockBackend)(nil).ClearStorage), address)
}

// Code mocks base method.
func (m *MockBackend) Code(address common.Address) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Code", address)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Code indicates an expected call of Code.
func (mr *MockBackendMockRecorder) Code(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Code", reflect.TypeOf((*MockBackend)(nil).Code), address)
}

// CodeHash mocks base method.
func (m *MockBackend) CodeHash(address common.Address) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeHash", address)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeHash indicates an expected call of CodeHash.
func (mr *MockBackendMockRecorder) CodeHash(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeHash", reflect.TypeOf((*MockBackend)(nil).CodeHash), address)
}

// CodeSize mocks base method.
func (m *MockBackend) CodeSize(address common.Address) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeSize", address)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeSize indicates an expected call of CodeSize.
func (mr *MockBackendMockRecorder) CodeSize(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeSize", reflect.TypeOf((*MockBackend)(nil).CodeSize), address)
}

// CreateAccount mocks base method.
func (m *MockBackend) CreateAccount(address common.Address) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccount", address)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockBackendMockRecorder) CreateAccount(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockBackend)(nil).CreateAccount), address)
}

// DeleteAccount mocks base method.
func (m *MockBackend) DeleteAccount(address common.Address) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAccount", address)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAccount indicates an expected call of DeleteAccount.
func (mr *MockBackendMockRecorder) DeleteAccount(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAccount", reflect.TypeOf((*MockBackend)(nil).DeleteAccount), address)
}

// Exists mocks base method.
func (m *MockBackend) Exists(address common.Address) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", address)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockBackendMockRecorder) Exists(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockBackend)(nil).Exists), address)
}

// HasContract mocks base method.
func (m *MockBackend) HasContract(address common.Address) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasContract", address)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasContract indicates an expected call of HasContract.
func (mr *MockBackendMockRecorder) HasContract(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasContract", reflect.TypeOf((*MockBackend)(nil).HasContract), address)
}

// Nonce mocks base method.
func (m *MockBackend) Nonce(address common.Address) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Nonce", address)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Nonce indicates an expected call of Nonce.
func (mr *MockBackendMockRecorder) Nonce(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Nonce", reflect.TypeOf((*MockBackend)(nil).Nonce), address)
}

// SetBalance mocks base method.
func (m *MockBackend) SetBalance(address common.Address, balance amount.Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBalance", address, balance)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBalance indicates an expected call of SetBalance.
func (mr *MockBackendMockRecorder) SetBalance(address, balance any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBalance", reflect.TypeOf((*MockBackend)(nil).SetBalance), address, balance)
}

// SetContract mocks base method.
func (m *MockBackend) SetContract(address common.Address, contract Contract) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetContract", address, contract)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetContract indicates an expected call of SetContract.
func (mr *MockBackendMockRecorder) SetContract(address, contract any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetContract", reflect.TypeOf((*MockBackend)(nil).SetContract), address, contract)
}

// SetNonce mocks base method.
func (m *MockBackend) SetNonce(address common.Address, nonce uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetNonce", address, nonce)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetNonce indicates an expected call of SetNonce.
func (mr *MockBackendMockRecorder) SetNonce(address, nonce any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetNonce", reflect.TypeOf((*MockBackend)(nil).SetNonce), address, nonce)
}

// SetStorage mocks base method.
func (m *MockBackend) SetStorage(address common.Address, key, value uint256.Int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStorage", address, key, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetStorage indicates an expected call of SetStorage.
func (mr *MockBackendMockRecorder) SetStorage(address, key, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockBackend)(nil).SetStorage), address, key, value)
}

// Storage mocks base method.
func (m *MockBackend) Storage(address common.Address, key uint256.Int) (uint256.Int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Storage", address, key)
	ret0, _ := ret[0].(uint256.Int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Storage indicates an expected call of Storage.
func (mr *MockBackendMockRecorder) Storage(address, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Storage", reflect.TypeOf((*MockBackend)(nil).Storage), address, key)
}

// Valids mocks base method.
func (m *MockBackend) Valids(address common.Address) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Valids", address)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Valids indicates an expected call of Valids.
func (mr *MockBackendMockRecorder) Valids(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Valids", reflect.TypeOf((*MockBackend)(nil).Valids), address)
}

// MockTransaction is a mock of Transaction interface.
type MockTransaction struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionMockRecorder
}

// MockTransactionMockRecorder is the mock recorder for MockTransaction.
type MockTransactionMockRecorder struct {
	mock *MockTransaction
}

// NewMockTransaction creates a new mock instance.
func NewMockTransaction(ctrl *gomock.Controller) *MockTransaction {
	mock := &MockTransaction{ctrl: ctrl}
	mock.recorder = &MockTransactionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransaction) EXPECT() *MockTransactionMockRecorder {
	return m.recorder
}

// Balance mocks base method.
func (m *MockTransaction) Balance(address common.Address) (amount.Amount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", address)
	ret0, _ := ret[0].(amount.Amount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Balance indicates an expected call of Balance.
func (mr *MockTransactionMockRecorder) Balance(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockTransaction)(nil).Balance), address)
}

// BlockHash mocks base method.
func (m *MockTransaction) BlockHash(number uint64) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockHash", number)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BlockHash indicates an expected call of BlockHash.
func (mr *MockTransactionMockRecorder) BlockHash(number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockHash", reflect.TypeOf((*MockTransaction)(nil).BlockHash), number)
}

// BlockNumber mocks base method.
func (m *MockTransaction) BlockNumber() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockNumber")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockNumber indicates an expected call of BlockNumber.
func (mr *MockTransactionMockRecorder) BlockNumber() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockNumber", reflect.TypeOf((*MockTransaction)(nil).BlockNumber))
}

// BlockTimestamp mocks base method.
func (m *MockTransaction) BlockTimestamp() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockTimestamp")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockTimestamp indicates an expected call of BlockTimestamp.
func (mr *MockTransactionMockRecorder) BlockTimestamp() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockTimestamp", reflect.TypeOf((*MockTransaction)(nil).BlockTimestamp))
}

// ChainID mocks base method.
func (m *MockTransaction) ChainID() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChainID")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// ChainID indicates an expected call of ChainID.
func (mr *MockTransactionMockRecorder) ChainID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChainID", reflect.TypeOf((*MockTransaction)(nil).ChainID))
}

// ClearStorage mocks base method.
func (m *MockTransaction) ClearStorage(address common.Address) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearStorage", address)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearStorage indicates an expected call of ClearStorage.
func (mr *MockTransactionMockRecorder) ClearStorage(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearStorage", reflect.TypeOf((*MockTransaction)(nil).ClearStorage), address)
}

// Code mocks base method.
func (m *MockTransaction) Code(address common.Address) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Code", address)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Code indicates an expected call of Code.
func (mr *MockTransactionMockRecorder) Code(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Code", reflect.TypeOf((*MockTransaction)(nil).Code), address)
}

// CodeHash mocks base method.
func (m *MockTransaction) CodeHash(address common.Address) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeHash", address)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeHash indicates an expected call of CodeHash.
func (mr *MockTransactionMockRecorder) CodeHash(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeHash", reflect.TypeOf((*MockTransaction)(nil).CodeHash), address)
}

// CodeSize mocks base method.
func (m *MockTransaction) CodeSize(address common.Address) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeSize", address)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeSize indicates an expected call of CodeSize.
func (mr *MockTransactionMockRecorder) CodeSize(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeSize", reflect.TypeOf((*MockTransaction)(nil).CodeSize), address)
}

// CreateAccount mocks base method.
func (m *MockTransaction) CreateAccount(address common.Address) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccount", address)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockTransactionMockRecorder) CreateAccount(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockTransaction)(nil).CreateAccount), address)
}

// DeleteAccount mocks base method.
func (m *MockTransaction) DeleteAccount(address common.Address) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAccount", address)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAccount indicates an expected call of DeleteAccount.
func (mr *MockTransactionMockRecorder) DeleteAccount(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAccount", reflect.TypeOf((*MockTransaction)(nil).DeleteAccount), address)
}

// Exists mocks base method.
func (m *MockTransaction) Exists(address common.Address) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", address)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockTransactionMockRecorder) Exists(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockTransaction)(nil).Exists), address)
}

// HasContract mocks base method.
func (m *MockTransaction) HasContract(address common.Address) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasContract", address)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasContract indicates an expected call of HasContract.
func (mr *MockTransactionMockRecorder) HasContract(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasContract", reflect.TypeOf((*MockTransaction)(nil).HasContract), address)
}

// Nonce mocks base method.
func (m *MockTransaction) Nonce(address common.Address) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Nonce", address)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Nonce indicates an expected call of Nonce.
func (mr *MockTransactionMockRecorder) Nonce(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Nonce", reflect.TypeOf((*MockTransaction)(nil).Nonce), address)
}

// SetBalance mocks base method.
func (m *MockTransaction) SetBalance(address common.Address, balance amount.Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBalance", address, balance)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBalance indicates an expected call of SetBalance.
func (mr *MockTransactionMockRecorder) SetBalance(address, balance any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBalance", reflect.TypeOf((*MockTransaction)(nil).SetBalance), address, balance)
}

// SetContract mocks base method.
func (m *MockTransaction) SetContract(address common.Address, contract Contract) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetContract", address, contract)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetContract indicates an expected call of SetContract.
func (mr *MockTransactionMockRecorder) SetContract(address, contract any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetContract", reflect.TypeOf((*MockTransaction)(nil).SetContract), address, contract)
}

// SetNonce mocks base method.
func (m *MockTransaction) SetNonce(address common.Address, nonce uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetNonce", address, nonce)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetNonce indicates an expected call of SetNonce.
func (mr *MockTransactionMockRecorder) SetNonce(address, nonce any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetNonce", reflect.TypeOf((*MockTransaction)(nil).SetNonce), address, nonce)
}

// SetStorage mocks base method.
func (m *MockTransaction) SetStorage(address common.Address, key, value uint256.Int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStorage", address, key, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetStorage indicates an expected call of SetStorage.
func (mr *MockTransactionMockRecorder) SetStorage(address, key, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockTransaction)(nil).SetStorage), address, key, value)
}

// Storage mocks base method.
func (m *MockTransaction) Storage(address common.Address, key uint256.Int) (uint256.Int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Storage", address, key)
	ret0, _ := ret[0].(uint256.Int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Storage indicates an expected call of Storage.
func (mr *MockTransactionMockRecorder) Storage(address, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Storage", reflect.TypeOf((*MockTransaction)(nil).Storage), address, key)
}

// Valids mocks base method.
func (m *MockTransaction) Valids(address common.Address) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Valids", address)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Valids indicates an expected call of Valids.
func (mr *MockTransactionMockRecorder) Valids(address any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Valids", reflect.TypeOf((*MockTransaction)(nil).Valids), address)
}

// Commit mocks base method.
func (m *MockTransaction) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockTransactionMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockTransaction)(nil).Commit))
}

// Discard mocks base method.
func (m *MockTransaction) Discard() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Discard")
}

// Discard indicates an expected call of Discard.
func (mr *MockTransactionMockRecorder) Discard() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Discard", reflect.TypeOf((*MockTransaction)(nil).Discard))
}
