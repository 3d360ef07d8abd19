package mappers

import (
	"time"

	"covena/internal/domain/alert"
	vo "covena/internal/domain/alert/valueobjects"
	"covena/internal/infrastructure/persistence/models"
)

// AlertMapper handles the conversion between Alert domain entities and
// persistence models.
type AlertMapper interface {
	ToModel(a *alert.Alert) *models.AlertModel
	ToDomain(model *models.AlertModel) (*alert.Alert, error)
}

type AlertMapperImpl struct{}

func NewAlertMapper() AlertMapper {
	return &AlertMapperImpl{}
}

func (m *AlertMapperImpl) ToModel(a *alert.Alert) *models.AlertModel {
	model := &models.AlertModel{
		ID:                 a.ID(),
		CovenantID:         a.CovenantID(),
		ContractID:         a.ContractID(),
		BankID:             a.BankID(),
		Type:               a.Type().String(),
		Severity:           a.Severity().String(),
		Title:              a.Title(),
		Description:        a.Description(),
		TriggerMetricValue: a.TriggerMetricValue(),
		ThresholdValue:     a.ThresholdValue(),
		Status:             a.Status().String(),
		TriggeredAt:        a.TriggeredAt().UnixMilli(),
		AcknowledgedBy:     a.AcknowledgedBy(),
		ResolutionNotes:    a.ResolutionNotes(),
		EscalationReason:   a.EscalationReason(),
		CreatedAt:          a.CreatedAt().UnixMilli(),
		UpdatedAt:          a.UpdatedAt().UnixMilli(),
	}

	if t := a.AcknowledgedAt(); t != nil {
		ms := t.UnixMilli()
		model.AcknowledgedAt = &ms
	}
	if t := a.EscalatedAt(); t != nil {
		ms := t.UnixMilli()
		model.EscalatedAt = &ms
	}

	return model
}

func (m *AlertMapperImpl) ToDomain(model *models.AlertModel) (*alert.Alert, error) {
	var acknowledgedAt *time.Time
	if model.AcknowledgedAt != nil {
		t := time.UnixMilli(*model.AcknowledgedAt)
		acknowledgedAt = &t
	}
	var escalatedAt *time.Time
	if model.EscalatedAt != nil {
		t := time.UnixMilli(*model.EscalatedAt)
		escalatedAt = &t
	}

	return alert.ReconstructAlert(
		model.ID,
		model.CovenantID,
		model.ContractID,
		model.BankID,
		vo.AlertType(model.Type),
		vo.Severity(model.Severity),
		model.Title,
		model.Description,
		model.TriggerMetricValue,
		model.ThresholdValue,
		vo.AlertStatus(model.Status),
		time.UnixMilli(model.TriggeredAt),
		acknowledgedAt,
		model.AcknowledgedBy,
		model.ResolutionNotes,
		escalatedAt,
		model.EscalationReason,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
