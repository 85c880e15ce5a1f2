package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MonilK96/admin-panel-backend/internal/application/dto"
	"github.com/MonilK96/admin-panel-backend/internal/application/usecase"
	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
)

// FeeLedgerHandler exposes fee ledger operations over gRPC.
type FeeLedgerHandler struct {
	UnimplementedFeeLedgerServiceServer

	createLedger *usecase.CreateLedgerUseCase
	applyPayment *usecase.ApplyPaymentUseCase
	getLedger    *usecase.GetLedgerUseCase
	validate     *validator.Validate
}

// NewFeeLedgerHandler creates a new handler with all use-case dependencies.
func NewFeeLedgerHandler(
	createLedger *usecase.CreateLedgerUseCase,
	applyPayment *usecase.ApplyPaymentUseCase,
	getLedger *usecase.GetLedgerUseCase,
) *FeeLedgerHandler {
	return &FeeLedgerHandler{
		createLedger: createLedger,
		applyPayment: applyPayment,
		getLedger:    getLedger,
		validate:     validator.New(),
	}
}

// CreateFeeLedger builds a student's installment schedule at enrollment.
func (h *FeeLedgerHandler) CreateFeeLedger(ctx context.Context, req *CreateFeeLedgerRequest) (*CreateFeeLedgerResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	totalAmount, err := parseAmount(req.TotalAmount, "total_amount")
	if err != nil {
		return nil, err
	}
	discount, err := parseOptionalAmount(req.Discount, "discount")
	if err != nil {
		return nil, err
	}
	admissionAmount, err := parseOptionalAmount(req.AdmissionAmount, "admission_amount")
	if err != nil {
		return nil, err
	}
	amountPaid, err := parseOptionalAmount(req.AmountPaid, "amount_paid")
	if err != nil {
		return nil, err
	}
	amountRemaining, err := parseOptionalAmount(req.AmountRemaining, "amount_remaining")
	if err != nil {
		return nil, err
	}

	var firstDueDate time.Time
	if req.FirstDueDate != "" {
		firstDueDate, err = time.Parse(time.RFC3339, req.FirstDueDate)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid first_due_date: expected RFC 3339")
		}
	}

	resp, err := h.createLedger.Execute(ctx, dto.CreateLedgerRequest{
		TenantID:         req.TenantID,
		StudentID:        req.StudentID,
		TotalAmount:      totalAmount,
		Discount:         discount,
		AdmissionAmount:  admissionAmount,
		AmountPaid:       amountPaid,
		AmountRemaining:  amountRemaining,
		NoOfInstallments: req.NoOfInstallments,
		FirstDueDate:     firstDueDate,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &CreateFeeLedgerResponse{Ledger: toLedgerMessage(resp)}, nil
}

// GetFeeLedger retrieves a student's fee ledger.
func (h *FeeLedgerHandler) GetFeeLedger(ctx context.Context, req *GetFeeLedgerRequest) (*GetFeeLedgerResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := h.getLedger.Execute(ctx, dto.GetLedgerRequest{
		TenantID:  req.TenantID,
		StudentID: req.StudentID,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &GetFeeLedgerResponse{Ledger: toLedgerMessage(resp)}, nil
}

// RecordFeePayment applies a payment to an installment, or reverses one when
// the requested status is Pending.
func (h *FeeLedgerHandler) RecordFeePayment(ctx context.Context, req *RecordFeePaymentRequest) (*RecordFeePaymentResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	paymentAmount, err := parseAmount(req.PaymentAmount, "payment_amount")
	if err != nil {
		return nil, err
	}

	resp, err := h.applyPayment.Execute(ctx, dto.RecordPaymentRequest{
		TenantID:      req.TenantID,
		StudentID:     req.StudentID,
		InstallmentID: req.InstallmentID,
		Status:        req.Status,
		PaymentAmount: paymentAmount,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &RecordFeePaymentResponse{Ledger: toLedgerMessage(resp)}, nil
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return amount, nil
}

func parseOptionalAmount(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return parseAmount(raw, field)
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, model.ErrLedgerNotFound), errors.Is(err, model.ErrInstallmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toLedgerMessage(resp dto.LedgerResponse) LedgerMessage {
	installments := make([]InstallmentMessage, 0, len(resp.Installments))
	for _, installment := range resp.Installments {
		msg := InstallmentMessage{
			ID:              installment.ID,
			Amount:          installment.Amount.StringFixed(2),
			Status:          installment.Status,
			InstallmentDate: installment.InstallmentDate.Format(time.RFC3339),
			Position:        installment.Position,
		}
		if installment.PaymentDate != nil {
			msg.PaymentDate = installment.PaymentDate.Format(time.RFC3339)
		}
		installments = append(installments, msg)
	}

	return LedgerMessage{
		ID:               resp.ID,
		TenantID:         resp.TenantID,
		StudentID:        resp.StudentID,
		TotalAmount:      resp.TotalAmount.StringFixed(2),
		Discount:         resp.Discount.StringFixed(2),
		AdmissionAmount:  resp.AdmissionAmount.StringFixed(2),
		AmountPaid:       resp.AmountPaid.StringFixed(2),
		AmountRemaining:  resp.AmountRemaining.StringFixed(2),
		NoOfInstallments: resp.NoOfInstallments,
		Installments:     installments,
		Version:          resp.Version,
	}
}
