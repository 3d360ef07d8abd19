package covenant

import (
	"context"

	vo "covena/internal/domain/covenant/valueobjects"
)

type CovenantRepository interface {
	Save(ctx context.Context, c *Covenant) error
	Update(ctx context.Context, c *Covenant) error
	GetByID(ctx context.Context, covenantID uint) (*Covenant, error)
	List(ctx context.Context, filter CovenantFilter) ([]*Covenant, int64, error)
	GetByContractID(ctx context.Context, contractID uint) ([]*Covenant, error)
}

type CovenantFilter struct {
	BankID     *uint
	ContractID *uint
	Type       *vo.CovenantType
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// HealthRepository stores the latest evaluated state per covenant.
// Upsert supersedes the stored row; GetByCovenantID is how the previous
// status is read before a recomputation overwrites it.
type HealthRepository interface {
	Upsert(ctx context.Context, h *Health) error
	GetByCovenantID(ctx context.Context, covenantID uint) (*Health, error)
	ListByBankID(ctx context.Context, bankID uint) ([]*Health, error)
	ListByContractID(ctx context.Context, contractID uint) ([]*Health, error)
}
