package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"covena/internal/domain/covenant"
	"covena/internal/infrastructure/persistence/mappers"
	"covena/internal/infrastructure/persistence/models"
	"covena/internal/shared/db"
)

// HealthRepository keeps one row per covenant; Upsert supersedes it in place.
type HealthRepository struct {
	db     *gorm.DB
	mapper mappers.HealthMapper
}

func NewHealthRepository(db *gorm.DB) *HealthRepository {
	return &HealthRepository{
		db:     db,
		mapper: mappers.NewHealthMapper(),
	}
}

func (r *HealthRepository) Upsert(ctx context.Context, h *covenant.Health) error {
	model := r.mapper.ToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "covenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"contract_id", "bank_id", "status", "trend", "buffer_pct",
			"current_value", "days_to_breach", "metric_history",
			"last_calculated", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert covenant health: %w", err)
	}

	return nil
}

func (r *HealthRepository) GetByCovenantID(ctx context.Context, covenantID uint) (*covenant.Health, error) {
	var model models.CovenantHealthModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("covenant_id = ?", covenantID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find covenant health: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HealthRepository) ListByBankID(ctx context.Context, bankID uint) ([]*covenant.Health, error) {
	return r.list(ctx, "bank_id = ?", bankID)
}

func (r *HealthRepository) ListByContractID(ctx context.Context, contractID uint) ([]*covenant.Health, error) {
	return r.list(ctx, "contract_id = ?", contractID)
}

func (r *HealthRepository) list(ctx context.Context, cond string, arg any) ([]*covenant.Health, error) {
	var rows []models.CovenantHealthModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(cond, arg).
		Order("covenant_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list covenant health: %w", err)
	}

	healths := make([]*covenant.Health, 0, len(rows))
	for i := range rows {
		h, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		healths = append(healths, h)
	}

	return healths, nil
}
