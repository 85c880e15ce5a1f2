package usecase

import (
	"context"

	"github.com/MonilK96/admin-panel-backend/internal/domain/event"
	"github.com/MonilK96/admin-panel-backend/internal/domain/model"
)

type mockLedgerRepo struct {
	saveFunc            func(ctx context.Context, ledger model.Ledger) error
	findByIDFunc        func(ctx context.Context, tenantID, id string) (model.Ledger, error)
	findByStudentIDFunc func(ctx context.Context, tenantID, studentID string) (model.Ledger, error)

	saved []model.Ledger
}

func (m *mockLedgerRepo) Save(ctx context.Context, ledger model.Ledger) error {
	m.saved = append(m.saved, ledger)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, ledger)
	}
	return nil
}

func (m *mockLedgerRepo) FindByID(ctx context.Context, tenantID, id string) (model.Ledger, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Ledger{}, model.ErrLedgerNotFound
}

func (m *mockLedgerRepo) FindByStudentID(ctx context.Context, tenantID, studentID string) (model.Ledger, error) {
	if m.findByStudentIDFunc != nil {
		return m.findByStudentIDFunc(ctx, tenantID, studentID)
	}
	return model.Ledger{}, model.ErrLedgerNotFound
}

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error

	published []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, events...)
	}
	return nil
}
