package mappers

import (
	"encoding/json"
	"time"

	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/infrastructure/persistence/models"
)

// HealthMapper handles the conversion between CovenantHealth domain entities
// and persistence models.
type HealthMapper interface {
	ToModel(h *covenant.Health) *models.CovenantHealthModel
	ToDomain(model *models.CovenantHealthModel) (*covenant.Health, error)
}

type HealthMapperImpl struct{}

func NewHealthMapper() HealthMapper {
	return &HealthMapperImpl{}
}

func (m *HealthMapperImpl) ToModel(h *covenant.Health) *models.CovenantHealthModel {
	model := &models.CovenantHealthModel{
		CovenantID:     h.CovenantID(),
		ContractID:     h.ContractID(),
		BankID:         h.BankID(),
		Status:         h.Status().String(),
		Trend:          h.Trend().String(),
		BufferPct:      h.BufferPct(),
		CurrentValue:   h.CurrentValue(),
		DaysToBreach:   h.DaysToBreach(),
		LastCalculated: h.LastCalculated().UnixMilli(),
	}

	if len(h.MetricHistory()) > 0 {
		historyJSON, _ := json.Marshal(h.MetricHistory())
		model.MetricHistory = historyJSON
	}

	return model
}

func (m *HealthMapperImpl) ToDomain(model *models.CovenantHealthModel) (*covenant.Health, error) {
	h, err := covenant.ReconstructHealth(
		model.CovenantID,
		model.ContractID,
		model.BankID,
		vo.HealthStatus(model.Status),
		vo.TrendDirection(model.Trend),
		model.BufferPct,
		model.CurrentValue,
		model.DaysToBreach,
		time.UnixMilli(model.LastCalculated),
	)
	if err != nil {
		return nil, err
	}

	if len(model.MetricHistory) > 0 {
		var history []float64
		if err := json.Unmarshal(model.MetricHistory, &history); err == nil {
			h.AttachHistory(history)
		}
	}

	return h, nil
}
