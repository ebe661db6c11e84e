// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Recoverable failure kinds of the state-transition core. Errors reported by
// this module wrap one of these constants and should be tested for using
// errors.Is. Broken caller protocols are not reported as errors but cause
// a panic.
const (
	// ErrInsufficientFunds is reported if a transfer source can not cover the transferred value.
	ErrInsufficientFunds = ConstError("insufficient funds in the source account")

	// ErrBalanceOverflow is reported if a balance would exceed 256 bits.
	ErrBalanceOverflow = ConstError("account balance overflow")

	// ErrNonceOverflow is reported if a nonce does not fit into 64 bits.
	ErrNonceOverflow = ConstError("account nonce overflow")

	// ErrInvalidTransactionData is reported for malformed or unacceptable transactions.
	ErrInvalidTransactionData = ConstError("the unsigned transaction is invalid")

	// ErrContractCreationFailed is reported if a contract could not be deployed.
	ErrContractCreationFailed = ConstError("contract creation failed")

	// ErrAccountNotFound is reported by backends writing to an account that was never created.
	ErrAccountNotFound = ConstError("account not found")

	// ErrContractNotFound is reported by backends writing contract data of a non-contract account.
	ErrContractNotFound = ConstError("contract not found")
)
