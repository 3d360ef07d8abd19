package contract

import "context"

type ContractRepository interface {
	Save(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, contractID uint) (*Contract, error)
	ListByBankID(ctx context.Context, bankID uint) ([]*Contract, error)
}
