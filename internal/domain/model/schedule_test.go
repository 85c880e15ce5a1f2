package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
)

func TestBuildInstallmentSchedule_Enrollment(t *testing.T) {
	// 12000 net owed, 2000 collected up front, 1000 admission, 1000 discount,
	// 10000 remaining over 5 monthly installments.
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	firstDue := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	schedule := buildInstallmentSchedule(
		decimal.NewFromInt(2000), decimal.NewFromInt(1000), decimal.NewFromInt(1000),
		decimal.NewFromInt(10000),
		5, firstDue, now,
	)

	require.Len(t, schedule, 6)

	// Admission entry folds seed + admission + discount, settled immediately.
	admission := schedule[0]
	assert.Equal(t, 0, admission.Position)
	assert.True(t, admission.IsAdmission())
	assert.True(t, admission.Amount.Equal(decimal.NewFromInt(4000)),
		"admission entry should be 4000, got %s", admission.Amount)
	assert.True(t, admission.Status.Equal(valueobject.InstallmentStatusPaid))
	assert.Equal(t, now, admission.InstallmentDate)
	require.NotNil(t, admission.PaymentDate)
	assert.Equal(t, now, *admission.PaymentDate)

	// Entries 1..5: equal pending installments, one calendar month apart.
	for i, installment := range schedule[1:] {
		assert.Equal(t, i+1, installment.Position)
		assert.False(t, installment.IsAdmission())
		assert.True(t, installment.Amount.Equal(decimal.NewFromInt(2000)),
			"installment %d should be 2000, got %s", i+1, installment.Amount)
		assert.True(t, installment.Status.Equal(valueobject.InstallmentStatusPending))
		assert.Equal(t, firstDue.AddDate(0, i, 0), installment.InstallmentDate)
		assert.Nil(t, installment.PaymentDate)
		assert.NotEmpty(t, installment.ID)
	}
}

func TestBuildInstallmentSchedule_ZeroInstallments(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	schedule := buildInstallmentSchedule(
		decimal.NewFromInt(5000), decimal.NewFromInt(500), decimal.Zero,
		decimal.Zero,
		0, time.Time{}, now,
	)

	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].Amount.Equal(decimal.NewFromInt(5500)))
	assert.True(t, schedule[0].Status.Equal(valueobject.InstallmentStatusPaid))
}

func TestBuildInstallmentSchedule_RoundsToTwoDecimals(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	firstDue := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	// 10000 / 3 = 3333.333... rounds to 3333.33 per installment.
	schedule := buildInstallmentSchedule(
		decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.NewFromInt(10000),
		3, firstDue, now,
	)

	require.Len(t, schedule, 4)
	for _, installment := range schedule[1:] {
		assert.True(t, installment.Amount.Equal(decimal.NewFromFloat(3333.33)),
			"expected 3333.33, got %s", installment.Amount)
	}
}

func TestBuildInstallmentSchedule_MonthEndDates(t *testing.T) {
	now := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	firstDue := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	schedule := buildInstallmentSchedule(
		decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.NewFromInt(3000),
		2, firstDue, now,
	)

	require.Len(t, schedule, 3)
	// AddDate normalises Jan 31 + 1 month to Mar 3 (2026 is not a leap year).
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), schedule[2].InstallmentDate)
}
