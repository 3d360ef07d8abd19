package mappers

import (
	"time"

	"covena/internal/domain/contract"
	"covena/internal/infrastructure/persistence/models"
)

// ContractMapper handles the conversion between Contract domain entities and
// persistence models.
type ContractMapper interface {
	ToModel(c *contract.Contract) *models.ContractModel
	ToDomain(model *models.ContractModel) (*contract.Contract, error)
}

type ContractMapperImpl struct{}

func NewContractMapper() ContractMapper {
	return &ContractMapperImpl{}
}

func (m *ContractMapperImpl) ToModel(c *contract.Contract) *models.ContractModel {
	return &models.ContractModel{
		ID:              c.ID(),
		BankID:          c.BankID(),
		BorrowerName:    c.BorrowerName(),
		PrincipalAmount: c.PrincipalAmount(),
		OriginationDate: c.OriginationDate().UnixMilli(),
		MaturityDate:    c.MaturityDate().UnixMilli(),
		Status:          c.Status(),
		CreatedAt:       c.CreatedAt().UnixMilli(),
		UpdatedAt:       c.UpdatedAt().UnixMilli(),
	}
}

func (m *ContractMapperImpl) ToDomain(model *models.ContractModel) (*contract.Contract, error) {
	return contract.ReconstructContract(
		model.ID,
		model.BankID,
		model.BorrowerName,
		model.PrincipalAmount,
		time.UnixMilli(model.OriginationDate),
		time.UnixMilli(model.MaturityDate),
		model.Status,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
