package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
	"github.com/MonilK96/admin-panel-backend/internal/domain/valueobject"
	pkgpostgres "github.com/MonilK96/admin-panel-backend/pkg/postgres"
)

type scannable interface {
	Scan(dest ...any) error
}

// LedgerRepo implements port.LedgerRepository on PostgreSQL. The aggregate is
// stored across two tables: fee_ledgers holds the totals and the version,
// fee_installments holds the schedule rows.
type LedgerRepo struct {
	pool *pgxpool.Pool
}

// NewLedgerRepo creates a PostgreSQL-backed fee ledger repository.
func NewLedgerRepo(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Save persists the ledger and its installments in one transaction.
//
// Updates use a compare-and-swap on the stored version: the row is only
// rewritten when it still carries the version the aggregate was loaded with,
// and the version is bumped in the same statement. A stale writer gets
// model.ErrVersionConflict and must reload.
func (r *LedgerRepo) Save(ctx context.Context, ledger model.Ledger) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO fee_ledgers (
				id, tenant_id, student_id,
				total_amount, discount, admission_amount, amount_paid, amount_remaining,
				no_of_installments, version, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				amount_paid      = EXCLUDED.amount_paid,
				amount_remaining = EXCLUDED.amount_remaining,
				version          = fee_ledgers.version + 1,
				updated_at       = EXCLUDED.updated_at
			WHERE fee_ledgers.version = $10
		`
		tag, err := tx.Exec(ctx, query,
			ledger.ID(), ledger.TenantID(), ledger.StudentID(),
			ledger.TotalAmount(), ledger.Discount(), ledger.AdmissionAmount(),
			ledger.AmountPaid(), ledger.AmountRemaining(),
			ledger.NoOfInstallments(), ledger.Version(),
			ledger.CreatedAt(), ledger.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save fee ledger: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: ledger %s version %d", model.ErrVersionConflict, ledger.ID(), ledger.Version())
		}

		for _, installment := range ledger.Installments() {
			query := `
				INSERT INTO fee_installments (
					id, ledger_id, position, amount, status, installment_date, payment_date
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id) DO UPDATE SET
					amount       = EXCLUDED.amount,
					status       = EXCLUDED.status,
					payment_date = EXCLUDED.payment_date
			`
			if _, err := tx.Exec(ctx, query,
				installment.ID, ledger.ID(), installment.Position,
				installment.Amount, installment.Status.String(),
				installment.InstallmentDate, installment.PaymentDate,
			); err != nil {
				return fmt.Errorf("save fee installment %d: %w", installment.Position, err)
			}
		}
		return nil
	})
}

// FindByID retrieves a ledger by its identifier within a tenant.
func (r *LedgerRepo) FindByID(ctx context.Context, tenantID, id string) (model.Ledger, error) {
	query := ledgerSelect + ` WHERE tenant_id = $1 AND id = $2`
	return r.loadLedger(ctx, r.pool.QueryRow(ctx, query, tenantID, id))
}

// FindByStudentID retrieves a student's ledger within a tenant. Each student
// carries at most one ledger.
func (r *LedgerRepo) FindByStudentID(ctx context.Context, tenantID, studentID string) (model.Ledger, error) {
	query := ledgerSelect + ` WHERE tenant_id = $1 AND student_id = $2`
	return r.loadLedger(ctx, r.pool.QueryRow(ctx, query, tenantID, studentID))
}

const ledgerSelect = `
	SELECT id, tenant_id, student_id,
	       total_amount, discount, admission_amount, amount_paid, amount_remaining,
	       no_of_installments, version, created_at, updated_at
	FROM fee_ledgers
`

func (r *LedgerRepo) loadLedger(ctx context.Context, row pgx.Row) (model.Ledger, error) {
	var (
		id, tenantID, studentID                                       string
		totalAmount, discount, admissionAmount, paid, remaining       decimal.Decimal
		noOfInstallments, version                                     int
		createdAt, updatedAt                                          time.Time
	)
	err := row.Scan(
		&id, &tenantID, &studentID,
		&totalAmount, &discount, &admissionAmount, &paid, &remaining,
		&noOfInstallments, &version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Ledger{}, model.ErrLedgerNotFound
	}
	if err != nil {
		return model.Ledger{}, fmt.Errorf("scan fee ledger: %w", err)
	}

	installments, err := r.loadInstallments(ctx, id)
	if err != nil {
		return model.Ledger{}, err
	}

	return model.ReconstructLedger(
		id, tenantID, studentID,
		totalAmount, discount, admissionAmount, paid, remaining,
		noOfInstallments, installments, version, createdAt, updatedAt,
	), nil
}

func (r *LedgerRepo) loadInstallments(ctx context.Context, ledgerID string) ([]model.Installment, error) {
	query := `
		SELECT id, position, amount, status, installment_date, payment_date
		FROM fee_installments
		WHERE ledger_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("query fee installments: %w", err)
	}
	defer rows.Close()

	var result []model.Installment
	for rows.Next() {
		installment, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, installment)
	}
	return result, rows.Err()
}

func scanInstallment(s scannable) (model.Installment, error) {
	var (
		id, statusStr   string
		position        int
		amount          decimal.Decimal
		installmentDate time.Time
		paymentDate     *time.Time
	)
	if err := s.Scan(&id, &position, &amount, &statusStr, &installmentDate, &paymentDate); err != nil {
		return model.Installment{}, fmt.Errorf("scan fee installment: %w", err)
	}

	status, err := valueobject.NewInstallmentStatus(statusStr)
	if err != nil {
		return model.Installment{}, fmt.Errorf("parse installment status: %w", err)
	}

	return model.Installment{
		ID:              id,
		Amount:          amount,
		Status:          status,
		InstallmentDate: installmentDate,
		PaymentDate:     paymentDate,
		Position:        position,
	}, nil
}
