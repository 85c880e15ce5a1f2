package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
)

// perInstallmentTolerance is the rounding drift each 2dp-rounded installment
// may contribute to the schedule total.
var perInstallmentTolerance = decimal.NewFromFloat(0.01)

// LedgerAuditor checks the balance invariants of a freshly built ledger
// before it is persisted.
type LedgerAuditor struct{}

// NewLedgerAuditor creates a LedgerAuditor.
func NewLedgerAuditor() *LedgerAuditor {
	return &LedgerAuditor{}
}

// Audit verifies that the ledger's running totals and installment schedule
// net back to the amount the student owes.
//
// The totals invariant is exact: amount_paid + amount_remaining must equal
// total_amount - discount. The schedule sum invariant allows per-installment
// rounding drift, and expects the admission entry's folded seed on top of
// the net owed: the admission entry carries amount_paid + admission_amount +
// discount, so the full schedule sums to (total - discount) + admission +
// discount within tolerance.
func (a *LedgerAuditor) Audit(ledger model.Ledger) error {
	netOwed := ledger.TotalAmount().Sub(ledger.Discount())

	totals := ledger.AmountPaid().Add(ledger.AmountRemaining())
	if !totals.Equal(netOwed) {
		return fmt.Errorf(
			"ledger totals out of balance: amount_paid %s + amount_remaining %s != %s",
			ledger.AmountPaid().String(), ledger.AmountRemaining().String(), netOwed.String(),
		)
	}

	sum := decimal.Zero
	for _, installment := range ledger.Installments() {
		sum = sum.Add(installment.Amount)
	}

	expected := netOwed.Add(ledger.AdmissionAmount()).Add(ledger.Discount())
	tolerance := perInstallmentTolerance.Mul(decimal.NewFromInt(int64(ledger.NoOfInstallments())))
	if sum.Sub(expected).Abs().GreaterThan(tolerance) {
		return fmt.Errorf(
			"installment schedule out of balance: sum %s, expected %s (tolerance %s)",
			sum.String(), expected.String(), tolerance.String(),
		)
	}

	return nil
}
