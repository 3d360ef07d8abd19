package dto

import (
	"time"

	"covena/internal/domain/alert"
)

type AlertDTO struct {
	ID                 uint       `json:"id"`
	CovenantID         uint       `json:"covenant_id"`
	ContractID         uint       `json:"contract_id"`
	BankID             uint       `json:"bank_id"`
	Type               string     `json:"type"`
	Severity           string     `json:"severity"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	TriggerMetricValue float64    `json:"trigger_metric_value"`
	ThresholdValue     float64    `json:"threshold_value"`
	Status             string     `json:"status"`
	TriggeredAt        time.Time  `json:"triggered_at"`
	AcknowledgedAt     *time.Time `json:"acknowledged_at"`
	AcknowledgedBy     *uint      `json:"acknowledged_by"`
	ResolutionNotes    string     `json:"resolution_notes,omitempty"`
	EscalatedAt        *time.Time `json:"escalated_at"`
	EscalationReason   string     `json:"escalation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToAlertDTO(a *alert.Alert) *AlertDTO {
	if a == nil {
		return nil
	}
	return &AlertDTO{
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
		TriggeredAt:        a.TriggeredAt(),
		AcknowledgedAt:     a.AcknowledgedAt(),
		AcknowledgedBy:     a.AcknowledgedBy(),
		ResolutionNotes:    a.ResolutionNotes(),
		EscalatedAt:        a.EscalatedAt(),
		EscalationReason:   a.EscalationReason(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func ToAlertDTOs(alerts []*alert.Alert) []*AlertDTO {
	out := make([]*AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, ToAlertDTO(a))
	}
	return out
}
