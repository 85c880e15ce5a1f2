package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the settlement state of one installment.
// The only transitions are Pending -> Paid (payment) and Paid -> Pending
// (reversal); there is no terminal state.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusPaid    = "Paid"
	installmentStatusPending = "Pending"
)

var (
	InstallmentStatusPaid    = InstallmentStatus{value: installmentStatusPaid}
	InstallmentStatusPending = InstallmentStatus{value: installmentStatusPending}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusPaid:    InstallmentStatusPaid,
	installmentStatusPending: InstallmentStatusPending,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid installment status transition")
)
