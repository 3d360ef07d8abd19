package usecases

import (
	"context"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/domain/covenant"
	"covena/internal/shared/logger"
)

type mockCovenantRepository struct {
	SaveFunc            func(ctx context.Context, c *covenant.Covenant) error
	UpdateFunc          func(ctx context.Context, c *covenant.Covenant) error
	GetByIDFunc         func(ctx context.Context, covenantID uint) (*covenant.Covenant, error)
	ListFunc            func(ctx context.Context, filter covenant.CovenantFilter) ([]*covenant.Covenant, int64, error)
	GetByContractIDFunc func(ctx context.Context, contractID uint) ([]*covenant.Covenant, error)
}

func (m *mockCovenantRepository) Save(ctx context.Context, c *covenant.Covenant) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCovenantRepository) Update(ctx context.Context, c *covenant.Covenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCovenantRepository) GetByID(ctx context.Context, covenantID uint) (*covenant.Covenant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, covenantID)
	}
	return nil, nil
}

func (m *mockCovenantRepository) List(ctx context.Context, filter covenant.CovenantFilter) ([]*covenant.Covenant, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCovenantRepository) GetByContractID(ctx context.Context, contractID uint) ([]*covenant.Covenant, error) {
	if m.GetByContractIDFunc != nil {
		return m.GetByContractIDFunc(ctx, contractID)
	}
	return nil, nil
}

type mockHealthRepository struct {
	UpsertFunc           func(ctx context.Context, h *covenant.Health) error
	GetByCovenantIDFunc  func(ctx context.Context, covenantID uint) (*covenant.Health, error)
	ListByBankIDFunc     func(ctx context.Context, bankID uint) ([]*covenant.Health, error)
	ListByContractIDFunc func(ctx context.Context, contractID uint) ([]*covenant.Health, error)
}

func (m *mockHealthRepository) Upsert(ctx context.Context, h *covenant.Health) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, h)
	}
	return nil
}

func (m *mockHealthRepository) GetByCovenantID(ctx context.Context, covenantID uint) (*covenant.Health, error) {
	if m.GetByCovenantIDFunc != nil {
		return m.GetByCovenantIDFunc(ctx, covenantID)
	}
	return nil, nil
}

func (m *mockHealthRepository) ListByBankID(ctx context.Context, bankID uint) ([]*covenant.Health, error) {
	if m.ListByBankIDFunc != nil {
		return m.ListByBankIDFunc(ctx, bankID)
	}
	return nil, nil
}

func (m *mockHealthRepository) ListByContractID(ctx context.Context, contractID uint) ([]*covenant.Health, error) {
	if m.ListByContractIDFunc != nil {
		return m.ListByContractIDFunc(ctx, contractID)
	}
	return nil, nil
}

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

type mockTransactionRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockAlertCooldown struct {
	AcquireFunc func(ctx context.Context, covenantID uint, alertType string) (bool, error)
}

func (m *mockAlertCooldown) Acquire(ctx context.Context, covenantID uint, alertType string) (bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, covenantID, alertType)
	}
	return true, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}
