package alert

import (
	"context"
	"time"

	vo "covena/internal/domain/alert/valueobjects"
)

type AlertRepository interface {
	Save(ctx context.Context, a *Alert) error
	Update(ctx context.Context, a *Alert) error
	GetByID(ctx context.Context, alertID uint) (*Alert, error)
	List(ctx context.Context, filter AlertFilter) ([]*Alert, int64, error)
	ListByBankID(ctx context.Context, bankID uint) ([]*Alert, error)
	// ListEscalationEligible returns alerts still in status new whose
	// triggered_at is at least the given age old. Read-only.
	ListEscalationEligible(ctx context.Context, olderThan time.Duration) ([]*Alert, error)
}

type AlertFilter struct {
	BankID     *uint
	ContractID *uint
	CovenantID *uint
	Status     *vo.AlertStatus
	Severity   *vo.Severity
	Type       *vo.AlertType
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
