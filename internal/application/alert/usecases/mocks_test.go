package usecases

import (
	"context"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/shared/logger"
)

type mockAlertRepository struct {
	SaveFunc                   func(ctx context.Context, a *alert.Alert) error
	UpdateFunc                 func(ctx context.Context, a *alert.Alert) error
	GetByIDFunc                func(ctx context.Context, alertID uint) (*alert.Alert, error)
	ListFunc                   func(ctx context.Context, filter alert.AlertFilter) ([]*alert.Alert, int64, error)
	ListByBankIDFunc           func(ctx context.Context, bankID uint) ([]*alert.Alert, error)
	ListEscalationEligibleFunc func(ctx context.Context, olderThan time.Duration) ([]*alert.Alert, error)
}

func (m *mockAlertRepository) Save(ctx context.Context, a *alert.Alert) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) GetByID(ctx context.Context, alertID uint) (*alert.Alert, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, alertID)
	}
	return nil, nil
}

func (m *mockAlertRepository) List(ctx context.Context, filter alert.AlertFilter) ([]*alert.Alert, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAlertRepository) ListByBankID(ctx context.Context, bankID uint) ([]*alert.Alert, error) {
	if m.ListByBankIDFunc != nil {
		return m.ListByBankIDFunc(ctx, bankID)
	}
	return nil, nil
}

func (m *mockAlertRepository) ListEscalationEligible(ctx context.Context, olderThan time.Duration) ([]*alert.Alert, error) {
	if m.ListEscalationEligibleFunc != nil {
		return m.ListEscalationEligibleFunc(ctx, olderThan)
	}
	return nil, nil
}

type mockEscalationNotifier struct {
	NotifyEscalationFunc func(ctx context.Context, a *alert.Alert) error
}

func (m *mockEscalationNotifier) NotifyEscalation(ctx context.Context, a *alert.Alert) error {
	if m.NotifyEscalationFunc != nil {
		return m.NotifyEscalationFunc(ctx, a)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
