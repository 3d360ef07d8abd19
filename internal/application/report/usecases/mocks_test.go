package usecases

import (
	"context"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/domain/contract"
	"covena/internal/domain/covenant"
	"covena/internal/domain/report"
	"covena/internal/shared/logger"
)

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

type mockContractRepository struct {
	SaveFunc         func(ctx context.Context, c *contract.Contract) error
	GetByIDFunc      func(ctx context.Context, contractID uint) (*contract.Contract, error)
	ListByBankIDFunc func(ctx context.Context, bankID uint) ([]*contract.Contract, error)
}

func (m *mockContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockContractRepository) GetByID(ctx context.Context, contractID uint) (*contract.Contract, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, contractID)
	}
	return nil, nil
}

func (m *mockContractRepository) ListByBankID(ctx context.Context, bankID uint) ([]*contract.Contract, error) {
	if m.ListByBankIDFunc != nil {
		return m.ListByBankIDFunc(ctx, bankID)
	}
	return nil, nil
}

type mockRiskAnalyzer struct {
	AnalyzeRiskFunc func(ctx context.Context, summary *report.PortfolioSummary) (*RiskAnalysis, error)
}

func (m *mockRiskAnalyzer) AnalyzeRisk(ctx context.Context, summary *report.PortfolioSummary) (*RiskAnalysis, error) {
	if m.AnalyzeRiskFunc != nil {
		return m.AnalyzeRiskFunc(ctx, summary)
	}
	return nil, nil
}

type mockNarrativeRenderer struct {
	RenderHTMLFunc func(markdown string) (string, error)
}

func (m *mockNarrativeRenderer) RenderHTML(markdown string) (string, error) {
	if m.RenderHTMLFunc != nil {
		return m.RenderHTMLFunc(markdown)
	}
	return markdown, nil
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
