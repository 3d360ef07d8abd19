package mappers

import (
	"time"

	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/infrastructure/persistence/models"
)

// CovenantMapper handles the conversion between Covenant domain entities and
// persistence models.
type CovenantMapper interface {
	ToModel(c *covenant.Covenant) *models.CovenantModel
	ToDomain(model *models.CovenantModel) (*covenant.Covenant, error)
}

type CovenantMapperImpl struct{}

func NewCovenantMapper() CovenantMapper {
	return &CovenantMapperImpl{}
}

func (m *CovenantMapperImpl) ToModel(c *covenant.Covenant) *models.CovenantModel {
	return &models.CovenantModel{
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
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}
}

func (m *CovenantMapperImpl) ToDomain(model *models.CovenantModel) (*covenant.Covenant, error) {
	return covenant.ReconstructCovenant(
		model.ID,
		model.ContractID,
		model.BankID,
		model.Name,
		model.MetricName,
		vo.CovenantType(model.Type),
		vo.Operator(model.Operator),
		model.Threshold,
		model.ThresholdUnit,
		vo.CheckFrequency(model.Frequency),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
