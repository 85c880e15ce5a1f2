package port

import (
	"context"

	"github.com/MonilK96/admin-panel-backend/internal/domain/event"
	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LedgerRepository persists and retrieves fee ledgers. Save is a full
// read-modify-write of the aggregate guarded by an optimistic version check;
// it returns model.ErrVersionConflict when the stored version moved on.
type LedgerRepository interface {
	Save(ctx context.Context, ledger model.Ledger) error
	FindByID(ctx context.Context, tenantID, id string) (model.Ledger, error)
	FindByStudentID(ctx context.Context, tenantID, studentID string) (model.Ledger, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
