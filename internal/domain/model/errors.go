package model

import "errors"

// Sentinel errors surfaced by the fee ledger domain. Callers classify them
// with errors.Is; the presentation layer maps them onto transport status
// codes.
var (
	// ErrLedgerNotFound indicates no ledger exists for the given scope.
	ErrLedgerNotFound = errors.New("fee ledger not found")

	// ErrInstallmentNotFound indicates the installment ID does not belong
	// to the ledger.
	ErrInstallmentNotFound = errors.New("installment not found")

	// ErrInvalidInput indicates malformed schedule or payment parameters.
	// It is always wrapped with detail and rejected before any mutation.
	ErrInvalidInput = errors.New("invalid fee ledger input")

	// ErrVersionConflict indicates a lost update: the ledger was modified
	// between read and write. Callers may retry with a fresh read.
	ErrVersionConflict = errors.New("fee ledger version conflict")
)
