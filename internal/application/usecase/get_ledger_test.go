package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonilK96/admin-panel-backend/internal/application/dto"
	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
	"github.com/MonilK96/admin-panel-backend/pkg/testutil"
)

func TestGetLedgerUseCase_Execute(t *testing.T) {
	t.Run("returns the student's ledger", func(t *testing.T) {
		ledger := seedLedger(t)
		repo := &mockLedgerRepo{
			findByStudentIDFunc: func(_ context.Context, tenantID, studentID string) (model.Ledger, error) {
				assert.Equal(t, testutil.TestTenantID, tenantID)
				assert.Equal(t, testutil.TestStudentID, studentID)
				return ledger, nil
			},
		}
		uc := NewGetLedgerUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.GetLedgerRequest{
			TenantID:  testutil.TestTenantID,
			StudentID: testutil.TestStudentID,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.ID(), resp.ID)
		assert.Len(t, resp.Installments, 6)
	})

	t.Run("surfaces missing ledger", func(t *testing.T) {
		uc := NewGetLedgerUseCase(&mockLedgerRepo{})

		_, err := uc.Execute(context.Background(), dto.GetLedgerRequest{
			TenantID:  testutil.TestTenantID,
			StudentID: testutil.TestStudentID,
		})
		require.ErrorIs(t, err, model.ErrLedgerNotFound)
	})
}
