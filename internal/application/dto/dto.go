package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLedgerRequest carries the enrollment-time financial inputs from
// which the installment schedule is built.
type CreateLedgerRequest struct {
	TenantID         string          `json:"tenant_id" validate:"required"`
	StudentID        string          `json:"student_id" validate:"required"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Discount         decimal.Decimal `json:"discount"`
	AdmissionAmount  decimal.Decimal `json:"admission_amount"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	AmountRemaining  decimal.Decimal `json:"amount_remaining"`
	NoOfInstallments int             `json:"no_of_installments" validate:"min=0"`
	FirstDueDate     time.Time       `json:"first_due_date"`
}

// RecordPaymentRequest carries one payment or reversal event against a
// single installment. Status selects the direction: "Paid" applies a
// payment, "Pending" reverses one.
type RecordPaymentRequest struct {
	TenantID      string          `json:"tenant_id" validate:"required"`
	StudentID     string          `json:"student_id" validate:"required"`
	InstallmentID string          `json:"installment_id" validate:"required"`
	Status        string          `json:"status" validate:"required"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

// GetLedgerRequest identifies a student's fee ledger to retrieve.
type GetLedgerRequest struct {
	TenantID  string `json:"tenant_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is the external representation of one installment.
type InstallmentResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	InstallmentDate time.Time       `json:"installment_date"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	Position        int             `json:"position"`
}

// LedgerResponse is the external representation of a student's fee ledger.
type LedgerResponse struct {
	ID               string                `json:"id"`
	TenantID         string                `json:"tenant_id"`
	StudentID        string                `json:"student_id"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	Discount         decimal.Decimal       `json:"discount"`
	AdmissionAmount  decimal.Decimal       `json:"admission_amount"`
	AmountPaid       decimal.Decimal       `json:"amount_paid"`
	AmountRemaining  decimal.Decimal       `json:"amount_remaining"`
	NoOfInstallments int                   `json:"no_of_installments"`
	Installments     []InstallmentResponse `json:"installments"`
	Version          int                   `json:"version"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// FromLedger maps the domain aggregate onto its response representation.
func FromLedger(ledger model.Ledger) LedgerResponse {
	installments := ledger.Installments()
	out := make([]InstallmentResponse, 0, len(installments))
	for _, installment := range installments {
		out = append(out, InstallmentResponse{
			ID:              installment.ID,
			Amount:          installment.Amount,
			Status:          installment.Status.String(),
			InstallmentDate: installment.InstallmentDate,
			PaymentDate:     installment.PaymentDate,
			Position:        installment.Position,
		})
	}

	return LedgerResponse{
		ID:               ledger.ID(),
		TenantID:         ledger.TenantID(),
		StudentID:        ledger.StudentID(),
		TotalAmount:      ledger.TotalAmount(),
		Discount:         ledger.Discount(),
		AdmissionAmount:  ledger.AdmissionAmount(),
		AmountPaid:       ledger.AmountPaid(),
		AmountRemaining:  ledger.AmountRemaining(),
		NoOfInstallments: ledger.NoOfInstallments(),
		Installments:     out,
		Version:          ledger.Version(),
		CreatedAt:        ledger.CreatedAt(),
		UpdatedAt:        ledger.UpdatedAt(),
	}
}
