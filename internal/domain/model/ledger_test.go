package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonilK96/admin-panel-backend/internal/domain/event"
	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
	"github.com/MonilK96/admin-panel-backend/pkg/testutil"
)

var (
	testNow      = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	testFirstDue = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
)

// newTestLedger builds the standard enrollment fixture: 13000 total, 1000
// discount, 1000 admission, 2000 paid up front, 10000 across 5 installments.
func newTestLedger(t *testing.T) Ledger {
	t.Helper()
	ledger, err := NewLedger(
		testutil.TestTenantID, testutil.TestStudentID,
		decimal.NewFromInt(13000), decimal.NewFromInt(1000), decimal.NewFromInt(1000),
		decimal.NewFromInt(2000), decimal.NewFromInt(10000),
		5, testFirstDue, testNow,
	)
	require.NoError(t, err)
	return ledger
}

func TestNewLedger(t *testing.T) {
	t.Run("builds a valid ledger", func(t *testing.T) {
		ledger := newTestLedger(t)

		assert.NotEmpty(t, ledger.ID())
		assert.Equal(t, testutil.TestTenantID, ledger.TenantID())
		assert.Equal(t, testutil.TestStudentID, ledger.StudentID())
		assert.Equal(t, 1, ledger.Version())
		assert.Len(t, ledger.Installments(), 6)

		events := ledger.DomainEvents()
		require.Len(t, events, 1)
		created, ok := events[0].(event.LedgerCreated)
		require.True(t, ok)
		assert.Equal(t, "feeledger.ledger.created", created.EventType())
		assert.Equal(t, ledger.ID(), created.AggregateID())
	})

	t.Run("rejects missing tenant", func(t *testing.T) {
		_, err := NewLedger(
			"", testutil.TestStudentID,
			decimal.NewFromInt(13000), decimal.NewFromInt(1000), decimal.NewFromInt(1000),
			decimal.NewFromInt(2000), decimal.NewFromInt(10000),
			5, testFirstDue, testNow,
		)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := NewLedger(
			testutil.TestTenantID, testutil.TestStudentID,
			decimal.Zero, decimal.Zero, decimal.Zero,
			decimal.Zero, decimal.Zero,
			0, time.Time{}, testNow,
		)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		_, err := NewLedger(
			testutil.TestTenantID, testutil.TestStudentID,
			decimal.NewFromInt(13000), decimal.NewFromInt(-1), decimal.NewFromInt(1000),
			decimal.NewFromInt(2000), decimal.NewFromInt(10000),
			5, testFirstDue, testNow,
		)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects remaining amount without installments", func(t *testing.T) {
		_, err := NewLedger(
			testutil.TestTenantID, testutil.TestStudentID,
			decimal.NewFromInt(13000), decimal.NewFromInt(1000), decimal.NewFromInt(1000),
			decimal.NewFromInt(2000), decimal.NewFromInt(10000),
			0, time.Time{}, testNow,
		)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects installments without a first due date", func(t *testing.T) {
		_, err := NewLedger(
			testutil.TestTenantID, testutil.TestStudentID,
			decimal.NewFromInt(13000), decimal.NewFromInt(1000), decimal.NewFromInt(1000),
			decimal.NewFromInt(2000), decimal.NewFromInt(10000),
			5, time.Time{}, testNow,
		)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects seeds that do not net to total minus discount", func(t *testing.T) {
		_, err := NewLedger(
			testutil.TestTenantID, testutil.TestStudentID,
			decimal.NewFromInt(13000), decimal.NewFromInt(1000), decimal.NewFromInt(1000),
			decimal.NewFromInt(2000), decimal.NewFromInt(9000),
			5, testFirstDue, testNow,
		)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLedger_ApplyPayment(t *testing.T) {
	t.Run("short payment redistributes shortfall", func(t *testing.T) {
		ledger := newTestLedger(t).ClearEvents()
		target := ledger.Installments()[1]

		paidAt := testNow.Add(24 * time.Hour)
		next, err := ledger.ApplyPayment(target.ID, decimal.NewFromInt(1800), paidAt)
		require.NoError(t, err)

		// Target carries the actual payment and is settled.
		updated := next.Installments()[1]
		assert.True(t, updated.Amount.Equal(decimal.NewFromInt(1800)))
		assert.True(t, updated.Status.Equal(valueobject.InstallmentStatusPaid))
		require.NotNil(t, updated.PaymentDate)
		assert.Equal(t, paidAt, *updated.PaymentDate)

		// 200 shortfall spread over 4 remaining: each grows to 2050.
		for _, installment := range next.Installments()[2:] {
			assert.True(t, installment.Amount.Equal(decimal.NewFromInt(2050)),
				"installment %d should be 2050, got %s", installment.Position, installment.Amount)
			assert.True(t, installment.Status.Equal(valueobject.InstallmentStatusPending))
		}

		assert.True(t, next.AmountPaid().Equal(decimal.NewFromInt(3800)))
		assert.True(t, next.AmountRemaining().Equal(decimal.NewFromInt(8200)))

		events := next.DomainEvents()
		require.Len(t, events, 1)
		paid, ok := events[0].(event.InstallmentPaid)
		require.True(t, ok)
		assert.True(t, paid.Shortfall.Equal(decimal.NewFromInt(200)))
	})

	t.Run("overpayment shrinks remaining installments", func(t *testing.T) {
		ledger := newTestLedger(t).ClearEvents()
		target := ledger.Installments()[1]

		next, err := ledger.ApplyPayment(target.ID, decimal.NewFromInt(2200), testNow)
		require.NoError(t, err)

		// -200 shortfall spread over 4 remaining: each shrinks to 1950.
		for _, installment := range next.Installments()[2:] {
			assert.True(t, installment.Amount.Equal(decimal.NewFromInt(1950)),
				"installment %d should be 1950, got %s", installment.Position, installment.Amount)
		}
		assert.True(t, next.AmountPaid().Equal(decimal.NewFromInt(4200)))
		assert.True(t, next.AmountRemaining().Equal(decimal.NewFromInt(7800)))
	})

	t.Run("conserves net owed across redistribution", func(t *testing.T) {
		ledger := newTestLedger(t).ClearEvents()
		target := ledger.Installments()[1]

		next, err := ledger.ApplyPayment(target.ID, decimal.NewFromInt(1800), testNow)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, installment := range next.Installments() {
			sum = sum.Add(installment.Amount)
		}
		// 4000 admission + 1800 paid + 4 * 2050 pending = 14000 still.
		assert.True(t, sum.Equal(decimal.NewFromInt(14000)),
			"schedule should sum to 14000, got %s", sum)
		assert.True(t, next.AmountPaid().Add(next.AmountRemaining()).
			Equal(next.TotalAmount().Sub(next.Discount())))
	})

	t.Run("last pending installment absorbs its own shortfall", func(t *testing.T) {
		ledger := newTestLedger(t).ClearEvents()
		now := testNow

		// Settle installments 1..4 exactly.
		for _, installment := range ledger.Installments()[1:5] {
			var err error
			ledger, err = ledger.ApplyPayment(installment.ID, decimal.NewFromInt(2000), now)
			require.NoError(t, err)
		}

		last := ledger.Installments()[5]
		next, err := ledger.ApplyPayment(last.ID, decimal.NewFromInt(1500), now)
		require.NoError(t, err)

		// No other pending entry to push the 500 shortfall into.
		updated := next.Installments()[5]
		assert.True(t, updated.Amount.Equal(decimal.NewFromInt(1500)))
		assert.True(t, updated.Status.Equal(valueobject.InstallmentStatusPaid))
		assert.True(t, next.AmountRemaining().Equal(decimal.NewFromInt(500)))
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		ledger := newTestLedger(t).ClearEvents()
		target := ledger.Installments()[1]

		first, err := ledger.ApplyPayment(target.ID, decimal.NewFromInt(1800), testNow)
		require.NoError(t, err)
		second, err := ledger.ApplyPayment(target.ID, decimal.NewFromInt(1800), testNow)
		require.NoError(t, err)

		// The original ledger is untouched and both applications agree.
		assert.True(t, ledger.AmountPaid().Equal(decimal.NewFromInt(2000)))
		assert.True(t, ledger.Installments()[2].Amount.Equal(decimal.NewFromInt(2000)))
		assert.True(t, first.AmountPaid().Equal(second.AmountPaid()))
		assert.True(t, first.Installments()[2].Amount.Equal(second.Installments()[2].Amount))
	})

	t.Run("rejects non-positive payment", func(t *testing.T) {
		ledger := newTestLedger(t)
		target := ledger.Installments()[1]

		_, err := ledger.ApplyPayment(target.ID, decimal.Zero, testNow)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown installment", func(t *testing.T) {
		ledger := newTestLedger(t)

		_, err := ledger.ApplyPayment("00000000-0000-0000-0000-000000000000", decimal.NewFromInt(100), testNow)
		require.ErrorIs(t, err, ErrInstallmentNotFound)
	})

	t.Run("rejects paying a settled installment", func(t *testing.T) {
		ledger := newTestLedger(t)
		admission := ledger.Installments()[0]

		_, err := ledger.ApplyPayment(admission.ID, decimal.NewFromInt(4000), testNow)
		require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestLedger_ReversePayment(t *testing.T) {
	t.Run("reverts totals but leaves redistribution in place", func(t *testing.T) {
		ledger := newTestLedger(t).ClearEvents()
		target := ledger.Installments()[1]

		paid, err := ledger.ApplyPayment(target.ID, decimal.NewFromInt(1800), testNow)
		require.NoError(t, err)
		paid = paid.ClearEvents()

		next, err := paid.ReversePayment(target.ID, decimal.NewFromInt(1800), testNow)
		require.NoError(t, err)

		// Totals are back to their pre-payment values.
		assert.True(t, next.AmountPaid().Equal(decimal.NewFromInt(2000)))
		assert.True(t, next.AmountRemaining().Equal(decimal.NewFromInt(10000)))

		// The target flips back to pending but keeps the paid amount.
		reversed := next.Installments()[1]
		assert.True(t, reversed.Status.Equal(valueobject.InstallmentStatusPending))
		assert.Nil(t, reversed.PaymentDate)
		assert.True(t, reversed.Amount.Equal(decimal.NewFromInt(1800)))

		// Other installments keep the grown amounts from the original payment.
		for _, installment := range next.Installments()[2:] {
			assert.True(t, installment.Amount.Equal(decimal.NewFromInt(2050)),
				"installment %d should stay at 2050, got %s", installment.Position, installment.Amount)
		}

		events := next.DomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(event.InstallmentReversed)
		assert.True(t, ok)
	})

	t.Run("rejects reversing a pending installment", func(t *testing.T) {
		ledger := newTestLedger(t)
		target := ledger.Installments()[1]

		_, err := ledger.ReversePayment(target.ID, decimal.NewFromInt(2000), testNow)
		require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("rejects unknown installment", func(t *testing.T) {
		ledger := newTestLedger(t)

		_, err := ledger.ReversePayment("00000000-0000-0000-0000-000000000000", decimal.NewFromInt(100), testNow)
		require.ErrorIs(t, err, ErrInstallmentNotFound)
	})
}

func TestLedger_Installments_DefensiveCopy(t *testing.T) {
	ledger := newTestLedger(t)

	installments := ledger.Installments()
	installments[1].Amount = decimal.NewFromInt(999999)

	assert.True(t, ledger.Installments()[1].Amount.Equal(decimal.NewFromInt(2000)))
}

func TestReconstructLedger(t *testing.T) {
	original := newTestLedger(t)

	rebuilt := ReconstructLedger(
		original.ID(), original.TenantID(), original.StudentID(),
		original.TotalAmount(), original.Discount(), original.AdmissionAmount(),
		original.AmountPaid(), original.AmountRemaining(),
		original.NoOfInstallments(), original.Installments(),
		original.Version(), original.CreatedAt(), original.UpdatedAt(),
	)

	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.Equal(t, original.Version(), rebuilt.Version())
	assert.Len(t, rebuilt.Installments(), 6)
	assert.Empty(t, rebuilt.DomainEvents())
}
