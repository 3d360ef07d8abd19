package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"covena/internal/domain/contract"
	"covena/internal/infrastructure/persistence/mappers"
	"covena/internal/infrastructure/persistence/models"
	"covena/internal/shared/db"
)

type ContractRepository struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{
		db:     db,
		mapper: mappers.NewContractMapper(),
	}
}

func (r *ContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contract: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ContractRepository) GetByID(ctx context.Context, contractID uint) (*contract.Contract, error) {
	var model models.ContractModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, contractID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ContractRepository) ListByBankID(ctx context.Context, bankID uint) ([]*contract.Contract, error) {
	var rows []models.ContractModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("bank_id = ?", bankID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	contracts := make([]*contract.Contract, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, nil
}
