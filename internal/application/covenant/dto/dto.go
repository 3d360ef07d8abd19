package dto

import (
	"time"

	"covena/internal/domain/covenant"
)

type CovenantDTO struct {
	ID            uint      `json:"id"`
	ContractID    uint      `json:"contract_id"`
	BankID        uint      `json:"bank_id"`
	Name          string    `json:"name"`
	MetricName    string    `json:"metric_name"`
	Type          string    `json:"type"`
	Operator      string    `json:"operator"`
	Threshold     float64   `json:"threshold"`
	ThresholdUnit string    `json:"threshold_unit"`
	Frequency     string    `json:"frequency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HealthDTO struct {
	CovenantID     uint      `json:"covenant_id"`
	ContractID     uint      `json:"contract_id"`
	BankID         uint      `json:"bank_id"`
	Status         string    `json:"status"`
	Trend          string    `json:"trend"`
	BufferPct      float64   `json:"buffer_pct"`
	CurrentValue   float64   `json:"current_value"`
	DaysToBreach   *float64  `json:"days_to_breach"`
	LastCalculated time.Time `json:"last_calculated"`
}

func ToCovenantDTO(c *covenant.Covenant) *CovenantDTO {
	if c == nil {
		return nil
	}
	return &CovenantDTO{
		ID:            c.ID(),
		ContractID:    c.ContractID(),
		BankID:        c.BankID(),
		Name:          c.Name(),
		MetricName:    c.MetricName(),
		Type:          c.Type().String(),
		Operator:      c.Operator().String(),
		Threshold:     c.Threshold(),
		ThresholdUnit: c.ThresholdUnit(),
		Frequency:     c.Frequency().String(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func ToCovenantDTOs(covenants []*covenant.Covenant) []*CovenantDTO {
	out := make([]*CovenantDTO, 0, len(covenants))
	for _, c := range covenants {
		out = append(out, ToCovenantDTO(c))
	}
	return out
}

func ToHealthDTO(h *covenant.Health) *HealthDTO {
	if h == nil {
		return nil
	}
	return &HealthDTO{
		CovenantID:     h.CovenantID(),
		ContractID:     h.ContractID(),
		BankID:         h.BankID(),
		Status:         h.Status().String(),
		Trend:          h.Trend().String(),
		BufferPct:      h.BufferPct(),
		CurrentValue:   h.CurrentValue(),
		DaysToBreach:   h.DaysToBreach(),
		LastCalculated: h.LastCalculated(),
	}
}
