package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MonilK96/admin-panel-backend/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Fee ledger events
// ---------------------------------------------------------------------------

// LedgerCreated is raised when an enrollment builds a new installment
// schedule for a student.
type LedgerCreated struct {
	events.BaseEvent
	StudentID        string          `json:"student_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Discount         decimal.Decimal `json:"discount"`
	AdmissionAmount  decimal.Decimal `json:"admission_amount"`
	AmountRemaining  decimal.Decimal `json:"amount_remaining"`
	NoOfInstallments int             `json:"no_of_installments"`
}

func NewLedgerCreated(
	ledgerID, tenantID, studentID string,
	totalAmount, discount, admissionAmount, amountRemaining decimal.Decimal,
	noOfInstallments int,
) LedgerCreated {
	return LedgerCreated{
		BaseEvent:        events.NewBaseEvent("feeledger.ledger.created", ledgerID, "FeeLedger", tenantID),
		StudentID:        studentID,
		TotalAmount:      totalAmount,
		Discount:         discount,
		AdmissionAmount:  admissionAmount,
		AmountRemaining:  amountRemaining,
		NoOfInstallments: noOfInstallments,
	}
}

// InstallmentPaid is raised when a payment settles a pending installment.
type InstallmentPaid struct {
	events.BaseEvent
	StudentID       string          `json:"student_id"`
	InstallmentID   string          `json:"installment_id"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	Shortfall       decimal.Decimal `json:"shortfall"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`
}

func NewInstallmentPaid(
	ledgerID, tenantID, studentID, installmentID string,
	paymentAmount, shortfall, amountPaid, amountRemaining decimal.Decimal,
) InstallmentPaid {
	return InstallmentPaid{
		BaseEvent:       events.NewBaseEvent("feeledger.installment.paid", ledgerID, "FeeLedger", tenantID),
		StudentID:       studentID,
		InstallmentID:   installmentID,
		PaymentAmount:   paymentAmount,
		Shortfall:       shortfall,
		AmountPaid:      amountPaid,
		AmountRemaining: amountRemaining,
	}
}

// InstallmentReversed is raised when a previously settled installment is
// flipped back to pending. Only totals are reverted; redistribution from the
// original payment is intentionally left in place.
type InstallmentReversed struct {
	events.BaseEvent
	StudentID       string          `json:"student_id"`
	InstallmentID   string          `json:"installment_id"`
	ReversedAmount  decimal.Decimal `json:"reversed_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`
}

func NewInstallmentReversed(
	ledgerID, tenantID, studentID, installmentID string,
	reversedAmount, amountPaid, amountRemaining decimal.Decimal,
) InstallmentReversed {
	return InstallmentReversed{
		BaseEvent:       events.NewBaseEvent("feeledger.installment.reversed", ledgerID, "FeeLedger", tenantID),
		StudentID:       studentID,
		InstallmentID:   installmentID,
		ReversedAmount:  reversedAmount,
		AmountPaid:      amountPaid,
		AmountRemaining: amountRemaining,
	}
}
