package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
)

// Installment is one scheduled or settled payment obligation within a fee
// ledger. Position 0 is always the admission entry, created already settled.
type Installment struct {
	ID              string
	Amount          decimal.Decimal
	Status          valueobject.InstallmentStatus
	InstallmentDate time.Time
	PaymentDate     *time.Time
	Position        int
}

// IsAdmission reports whether this is the admission entry.
func (i Installment) IsAdmission() bool { return i.Position == 0 }

// buildInstallmentSchedule assembles the initial installment sequence for an
// enrollment.
//
// Entry 0 folds everything collected up front (the already-paid seed, the
// admission fee, and the discount credit) into a single settled entry dated
// now. Entries 1..n are equal pending installments of amountRemaining/n,
// due one calendar month apart starting at firstDueDate.
//
// Amounts are rounded to 2 decimal places; the final installment carries no
// corrective adjustment, so a sub-cent residual per installment is accepted.
func buildInstallmentSchedule(
	amountPaid, admissionAmount, discount, amountRemaining decimal.Decimal,
	noOfInstallments int,
	firstDueDate time.Time,
	now time.Time,
) []Installment {
	schedule := make([]Installment, 0, noOfInstallments+1)

	paidAt := now
	schedule = append(schedule, Installment{
		ID:              uuid.New().String(),
		Amount:          amountPaid.Add(admissionAmount).Add(discount),
		Status:          valueobject.InstallmentStatusPaid,
		InstallmentDate: now,
		PaymentDate:     &paidAt,
		Position:        0,
	})

	if noOfInstallments <= 0 {
		return schedule
	}

	perInstallment := amountRemaining.
		Div(decimal.NewFromInt(int64(noOfInstallments))).
		Round(2)

	dueDate := firstDueDate
	for i := 1; i <= noOfInstallments; i++ {
		schedule = append(schedule, Installment{
			ID:              uuid.New().String(),
			Amount:          perInstallment,
			Status:          valueobject.InstallmentStatusPending,
			InstallmentDate: dueDate,
			Position:        i,
		})
		dueDate = dueDate.AddDate(0, 1, 0)
	}

	return schedule
}
