package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/MonilK96/admin-panel-backend/internal/application/dto"
	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
	"github.com/MonilK96/admin-panel-backend/internal/domain/port"
	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
)

// ApplyPaymentUseCase reconciles one payment or reversal event against a
// student's ledger. The whole aggregate is reloaded, mutated in memory, and
// written back under an optimistic version check; a concurrent writer
// surfaces model.ErrVersionConflict and the caller re-issues the request.
type ApplyPaymentUseCase struct {
	ledgerRepo port.LedgerRepository
	publisher  port.EventPublisher
}

// NewApplyPaymentUseCase wires dependencies.
func NewApplyPaymentUseCase(
	ledgerRepo port.LedgerRepository,
	publisher port.EventPublisher,
) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
	}
}

// Execute applies the payment event described by req and returns the
// reconciled ledger.
func (uc *ApplyPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.LedgerResponse, error) {
	now := time.Now().UTC()

	status, err := valueobject.NewInstallmentStatus(req.Status)
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	ledger, err := uc.ledgerRepo.FindByStudentID(ctx, req.TenantID, req.StudentID)
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("find ledger: %w", err)
	}

	if status.Equal(valueobject.InstallmentStatusPaid) {
		ledger, err = ledger.ApplyPayment(req.InstallmentID, req.PaymentAmount, now)
	} else {
		ledger, err = ledger.ReversePayment(req.InstallmentID, req.PaymentAmount, now)
	}
	if err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("reconcile payment: %w", err)
	}

	if err := uc.ledgerRepo.Save(ctx, ledger); err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("save ledger: %w", err)
	}

	if err := uc.publisher.Publish(ctx, ledger.DomainEvents()...); err != nil {
		return dto.LedgerResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromLedger(ledger), nil
}
