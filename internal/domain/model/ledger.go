package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MonilK96/admin-panel-backend/internal/domain/event"
	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Ledger aggregate root (Installment Ledger & Reconciliation Engine)
// ---------------------------------------------------------------------------

// Ledger is the full fee record for one student: enrollment-time totals plus
// the ordered installment schedule. It is an immutable aggregate; mutations
// return a new copy, so applying the same payment to the same ledger value
// twice yields the same result both times.
type Ledger struct {
	id               string
	tenantID         string
	studentID        string
	totalAmount      decimal.Decimal
	discount         decimal.Decimal
	admissionAmount  decimal.Decimal
	amountPaid       decimal.Decimal
	amountRemaining  decimal.Decimal
	noOfInstallments int
	installments     []Installment
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLedger validates the enrollment inputs and builds the initial
// installment schedule. amountPaid and amountRemaining are the running-total
// seeds; the discount is credited once here and never re-entered, so the
// seeds must satisfy amountPaid + amountRemaining == totalAmount - discount.
func NewLedger(
	tenantID, studentID string,
	totalAmount, discount, admissionAmount, amountPaid, amountRemaining decimal.Decimal,
	noOfInstallments int,
	firstDueDate time.Time,
	now time.Time,
) (Ledger, error) {
	if tenantID == "" {
		return Ledger{}, fmt.Errorf("%w: tenant ID is required", ErrInvalidInput)
	}
	if studentID == "" {
		return Ledger{}, fmt.Errorf("%w: student ID is required", ErrInvalidInput)
	}
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return Ledger{}, fmt.Errorf("%w: total amount must be positive", ErrInvalidInput)
	}
	for name, amount := range map[string]decimal.Decimal{
		"discount":         discount,
		"admission amount": admissionAmount,
		"amount paid":      amountPaid,
		"amount remaining": amountRemaining,
	} {
		if amount.IsNegative() {
			return Ledger{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}
	if noOfInstallments < 0 {
		return Ledger{}, fmt.Errorf("%w: number of installments must not be negative", ErrInvalidInput)
	}
	if amountRemaining.IsPositive() && noOfInstallments == 0 {
		return Ledger{}, fmt.Errorf("%w: installments are required while an amount remains", ErrInvalidInput)
	}
	if noOfInstallments > 0 && firstDueDate.IsZero() {
		return Ledger{}, fmt.Errorf("%w: first due date is required", ErrInvalidInput)
	}
	if !amountPaid.Add(amountRemaining).Equal(totalAmount.Sub(discount)) {
		return Ledger{}, fmt.Errorf(
			"%w: amount paid plus amount remaining must equal total amount minus discount",
			ErrInvalidInput,
		)
	}

	id := uuid.New().String()
	ledger := Ledger{
		id:               id,
		tenantID:         tenantID,
		studentID:        studentID,
		totalAmount:      totalAmount,
		discount:         discount,
		admissionAmount:  admissionAmount,
		amountPaid:       amountPaid,
		amountRemaining:  amountRemaining,
		noOfInstallments: noOfInstallments,
		installments: buildInstallmentSchedule(
			amountPaid, admissionAmount, discount, amountRemaining,
			noOfInstallments, firstDueDate, now,
		),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}

	ledger.domainEvents = append(ledger.domainEvents, event.NewLedgerCreated(
		id, tenantID, studentID,
		totalAmount, discount, admissionAmount, amountRemaining,
		noOfInstallments,
	))

	return ledger, nil
}

// ReconstructLedger rebuilds a Ledger aggregate from persistence.
func ReconstructLedger(
	id, tenantID, studentID string,
	totalAmount, discount, admissionAmount, amountPaid, amountRemaining decimal.Decimal,
	noOfInstallments int,
	installments []Installment,
	version int,
	createdAt, updatedAt time.Time,
) Ledger {
	return Ledger{
		id:               id,
		tenantID:         tenantID,
		studentID:        studentID,
		totalAmount:      totalAmount,
		discount:         discount,
		admissionAmount:  admissionAmount,
		amountPaid:       amountPaid,
		amountRemaining:  amountRemaining,
		noOfInstallments: noOfInstallments,
		installments:     installments,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reconciliation
// ---------------------------------------------------------------------------

// ApplyPayment settles a pending installment with paymentAmount and
// redistributes the shortfall (or surplus, when negative) evenly across the
// remaining pending installments, so the schedule still nets to the amount
// the student owes.
//
// When the target is the last pending installment there is nothing to
// redistribute into; the shortfall is absorbed without touching any other
// entry rather than dividing by a non-positive count.
func (l Ledger) ApplyPayment(installmentID string, paymentAmount decimal.Decimal, now time.Time) (Ledger, error) {
	if paymentAmount.LessThanOrEqual(decimal.Zero) {
		return l, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}

	idx, err := l.findInstallment(installmentID)
	if err != nil {
		return l, err
	}
	if l.installments[idx].Status.Equal(valueobject.InstallmentStatusPaid) {
		return l, fmt.Errorf("%w: installment is already paid", valueobject.ErrInvalidStatusTransition)
	}

	next := l.clone()
	target := &next.installments[idx]

	expected := target.Amount
	shortfall := expected.Sub(paymentAmount)

	// The target is still Pending here, so it is excluded from the count.
	remainingCount := next.pendingCount() - 1
	if remainingCount > 0 {
		adjustment := shortfall.
			Div(decimal.NewFromInt(int64(remainingCount))).
			Round(2)
		for i := range next.installments {
			other := &next.installments[i]
			if i != idx && other.Status.Equal(valueobject.InstallmentStatusPending) {
				other.Amount = other.Amount.Add(adjustment)
			}
		}
	}

	paidAt := now
	target.Amount = paymentAmount
	target.Status = valueobject.InstallmentStatusPaid
	target.PaymentDate = &paidAt

	next.amountPaid = next.amountPaid.Add(paymentAmount)
	next.amountRemaining = next.amountRemaining.Sub(paymentAmount)
	next.updatedAt = now

	next.domainEvents = append(next.domainEvents, event.NewInstallmentPaid(
		next.id, next.tenantID, next.studentID, installmentID,
		paymentAmount, shortfall, next.amountPaid, next.amountRemaining,
	))

	return next, nil
}

// ReversePayment flips a settled installment back to pending and reverts the
// running totals. The amounts grown into other installments by the original
// payment's redistribution are intentionally left in place: a reversal is a
// correction of this installment, not a reallocation event, so it does not
// invert the forward path exactly.
func (l Ledger) ReversePayment(installmentID string, paymentAmount decimal.Decimal, now time.Time) (Ledger, error) {
	if paymentAmount.LessThanOrEqual(decimal.Zero) {
		return l, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}

	idx, err := l.findInstallment(installmentID)
	if err != nil {
		return l, err
	}
	if !l.installments[idx].Status.Equal(valueobject.InstallmentStatusPaid) {
		return l, fmt.Errorf("%w: installment is not paid", valueobject.ErrInvalidStatusTransition)
	}

	next := l.clone()
	target := &next.installments[idx]

	target.Status = valueobject.InstallmentStatusPending
	target.PaymentDate = nil

	next.amountPaid = next.amountPaid.Sub(paymentAmount)
	next.amountRemaining = next.amountRemaining.Add(paymentAmount)
	next.updatedAt = now

	next.domainEvents = append(next.domainEvents, event.NewInstallmentReversed(
		next.id, next.tenantID, next.studentID, installmentID,
		paymentAmount, next.amountPaid, next.amountRemaining,
	))

	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Ledger) ID() string                       { return l.id }
func (l Ledger) TenantID() string                 { return l.tenantID }
func (l Ledger) StudentID() string                { return l.studentID }
func (l Ledger) TotalAmount() decimal.Decimal     { return l.totalAmount }
func (l Ledger) Discount() decimal.Decimal        { return l.discount }
func (l Ledger) AdmissionAmount() decimal.Decimal { return l.admissionAmount }
func (l Ledger) AmountPaid() decimal.Decimal      { return l.amountPaid }
func (l Ledger) AmountRemaining() decimal.Decimal { return l.amountRemaining }
func (l Ledger) NoOfInstallments() int            { return l.noOfInstallments }
func (l Ledger) Version() int                     { return l.version }
func (l Ledger) CreatedAt() time.Time             { return l.createdAt }
func (l Ledger) UpdatedAt() time.Time             { return l.updatedAt }

// Installments returns a defensive copy of the installment sequence in due
// date order.
func (l Ledger) Installments() []Installment {
	if l.installments == nil {
		return nil
	}
	out := make([]Installment, len(l.installments))
	copy(out, l.installments)
	return out
}

// DomainEvents returns the events collected since construction or the last
// ClearEvents call.
func (l Ledger) DomainEvents() []event.DomainEvent { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Ledger) ClearEvents() Ledger {
	next := l
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (l Ledger) findInstallment(installmentID string) (int, error) {
	for i := range l.installments {
		if l.installments[i].ID == installmentID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInstallmentNotFound, installmentID)
}

func (l Ledger) pendingCount() int {
	count := 0
	for i := range l.installments {
		if l.installments[i].Status.Equal(valueobject.InstallmentStatusPending) {
			count++
		}
	}
	return count
}

// clone deep-copies the mutable parts of the aggregate so mutations never
// leak into the receiver.
func (l Ledger) clone() Ledger {
	next := l
	next.installments = make([]Installment, len(l.installments))
	copy(next.installments, l.installments)
	next.domainEvents = copyEvents(l.domainEvents)
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
