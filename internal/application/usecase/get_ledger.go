package usecase

import (
	"context"
	"fmt"

	"github.com/MonilK96/admin-panel-backend/internal/application/dto"
	"github.com/MonilK96/admin-panel-backend/internal/domain/port"
)

// GetLedgerUseCase retrieves a student's fee ledger.
type GetLedgerUseCase struct {
	ledgerRepo port.LedgerRepository
}

// NewGetLedgerUseCase wires dependencies.
func NewGetLedgerUseCase(ledgerRepo port.LedgerRepository) *GetLedgerUseCase {
	return &GetLedgerUseCase{ledgerRepo: ledgerRepo}
}

// Execute loads the ledger for the requested student.
func (uc *GetLedgerUseCase) Execute(
	ctx context.Context,
	req dto.GetLedgerRequest,
) (dto.LedgerResponse, error) {
	ledger, err := uc.ledgerRepo.FindByStudentID(ctx, req.TenantID, req.StudentID)
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("find ledger: %w", err)
	}

	return dto.FromLedger(ledger), nil
}
