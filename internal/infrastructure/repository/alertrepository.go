package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"covena/internal/domain/alert"
	vo "covena/internal/domain/alert/valueobjects"
	"covena/internal/infrastructure/persistence/mappers"
	"covena/internal/infrastructure/persistence/models"
	"covena/internal/shared/db"
)

// allowedAlertOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedAlertOrderByFields = map[string]bool{
	"id":           true,
	"covenant_id":  true,
	"contract_id":  true,
	"type":         true,
	"severity":     true,
	"status":       true,
	"triggered_at": true,
	"created_at":   true,
	"updated_at":   true,
}

type AlertRepository struct {
	db     *gorm.DB
	mapper mappers.AlertMapper
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{
		db:     db,
		mapper: mappers.NewAlertMapper(),
	}
}

func (r *AlertRepository) Save(ctx context.Context, a *alert.Alert) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}

	return a.SetID(model.ID)
}

// Update writes the alert's mutable lifecycle fields. The stored status is a
// precondition in the WHERE clause: a concurrent transition loses and surfaces
// as a conflict instead of silently overwriting.
func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AlertModel{}).
		Where("id = ? AND status != ?", model.ID, vo.StatusResolved.String()).
		Select(
			"status", "severity", "acknowledged_at", "acknowledged_by",
			"resolution_notes", "escalated_at", "escalation_reason", "updated_at",
		).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("alert %d not updated: already resolved or missing", model.ID)
	}

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, alertID uint) (*alert.Alert, error) {
	var model models.AlertModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, alertID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find alert: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AlertRepository) List(ctx context.Context, filter alert.AlertFilter) ([]*alert.Alert, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.AlertModel{})

	if filter.BankID != nil {
		tx = tx.Where("bank_id = ?", *filter.BankID)
	}
	if filter.ContractID != nil {
		tx = tx.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.CovenantID != nil {
		tx = tx.Where("covenant_id = ?", *filter.CovenantID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Severity != nil {
		tx = tx.Where("severity = ?", filter.Severity.String())
	}
	if filter.Type != nil {
		tx = tx.Where("type = ?", filter.Type.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	orderBy := "triggered_at"
	if filter.SortBy != "" && allowedAlertOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var rows []models.AlertModel
	query := tx.Order(fmt.Sprintf("%s %s", orderBy, direction))
	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts, err := r.toDomainSlice(rows)
	if err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

func (r *AlertRepository) ListByBankID(ctx context.Context, bankID uint) ([]*alert.Alert, error) {
	var rows []models.AlertModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("bank_id = ?", bankID).
		Order("triggered_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts by bank: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *AlertRepository) ListEscalationEligible(ctx context.Context, olderThan time.Duration) ([]*alert.Alert, error) {
	cutoff := time.Now().Add(-olderThan).UnixMilli()

	var rows []models.AlertModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ? AND triggered_at <= ?", vo.StatusNew.String(), cutoff).
		Order("triggered_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list escalation-eligible alerts: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *AlertRepository) toDomainSlice(rows []models.AlertModel) ([]*alert.Alert, error) {
	alerts := make([]*alert.Alert, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}
