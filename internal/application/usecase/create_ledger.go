package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/MonilK96/admin-panel-backend/internal/application/dto"
	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
	"github.com/MonilK96/admin-panel-backend/internal/domain/port"
	"github.com/MonilK96/admin-panel-backend/internal/domain/service"
)

// CreateLedgerUseCase builds a student's installment schedule at enrollment
// and persists the resulting ledger.
type CreateLedgerUseCase struct {
	ledgerRepo port.LedgerRepository
	publisher  port.EventPublisher
	auditor    *service.LedgerAuditor
}

// NewCreateLedgerUseCase wires dependencies.
func NewCreateLedgerUseCase(
	ledgerRepo port.LedgerRepository,
	publisher port.EventPublisher,
	auditor *service.LedgerAuditor,
) *CreateLedgerUseCase {
	return &CreateLedgerUseCase{
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
		auditor:    auditor,
	}
}

// Execute builds, audits, and stores a new fee ledger.
func (uc *CreateLedgerUseCase) Execute(
	ctx context.Context,
	req dto.CreateLedgerRequest,
) (dto.LedgerResponse, error) {
	now := time.Now().UTC()

	ledger, err := model.NewLedger(
		req.TenantID, req.StudentID,
		req.TotalAmount, req.Discount, req.AdmissionAmount,
		req.AmountPaid, req.AmountRemaining,
		req.NoOfInstallments, req.FirstDueDate, now,
	)
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("build schedule: %w", err)
	}

	if err := uc.auditor.Audit(ledger); err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("audit ledger: %w", err)
	}

	if err := uc.ledgerRepo.Save(ctx, ledger); err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("save ledger: %w", err)
	}

	if err := uc.publisher.Publish(ctx, ledger.DomainEvents()...); err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromLedger(ledger), nil
}
