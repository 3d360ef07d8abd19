package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"covena/internal/domain/covenant"
	"covena/internal/infrastructure/persistence/mappers"
	"covena/internal/infrastructure/persistence/models"
	"covena/internal/shared/db"
)

// allowedCovenantOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedCovenantOrderByFields = map[string]bool{
	"id":          true,
	"contract_id": true,
	"name":        true,
	"metric_name": true,
	"type":        true,
	"threshold":   true,
	"created_at":  true,
	"updated_at":  true,
}

type CovenantRepository struct {
	db     *gorm.DB
	mapper mappers.CovenantMapper
}

func NewCovenantRepository(db *gorm.DB) *CovenantRepository {
	return &CovenantRepository{
		db:     db,
		mapper: mappers.NewCovenantMapper(),
	}
}

func (r *CovenantRepository) Save(ctx context.Context, c *covenant.Covenant) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save covenant: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CovenantRepository) Update(ctx context.Context, c *covenant.Covenant) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CovenantModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update covenant: %w", result.Error)
	}

	return nil
}

func (r *CovenantRepository) GetByID(ctx context.Context, covenantID uint) (*covenant.Covenant, error) {
	var model models.CovenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, covenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find covenant: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CovenantRepository) List(ctx context.Context, filter covenant.CovenantFilter) ([]*covenant.Covenant, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.CovenantModel{})

	if filter.BankID != nil {
		tx = tx.Where("bank_id = ?", *filter.BankID)
	}
	if filter.ContractID != nil {
		tx = tx.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.Type != nil {
		tx = tx.Where("type = ?", filter.Type.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count covenants: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedCovenantOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var rows []models.CovenantModel
	query := tx.Order(fmt.Sprintf("%s %s", orderBy, direction))
	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list covenants: %w", err)
	}

	covenants := make([]*covenant.Covenant, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		covenants = append(covenants, c)
	}

	return covenants, total, nil
}

func (r *CovenantRepository) GetByContractID(ctx context.Context, contractID uint) ([]*covenant.Covenant, error) {
	var rows []models.CovenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("contract_id = ?", contractID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list covenants by contract: %w", err)
	}

	covenants := make([]*covenant.Covenant, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		covenants = append(covenants, c)
	}

	return covenants, nil
}
