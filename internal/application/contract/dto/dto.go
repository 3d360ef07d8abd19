package dto

import (
	"time"

	"covena/internal/domain/contract"
)

type ContractDTO struct {
	ID              uint      `json:"id"`
	BankID          uint      `json:"bank_id"`
	BorrowerName    string    `json:"borrower_name"`
	PrincipalAmount float64   `json:"principal_amount"`
	OriginationDate time.Time `json:"origination_date"`
	MaturityDate    time.Time `json:"maturity_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToContractDTO(c *contract.Contract) *ContractDTO {
	if c == nil {
		return nil
	}
	return &ContractDTO{
		ID:              c.ID(),
		BankID:          c.BankID(),
		BorrowerName:    c.BorrowerName(),
		PrincipalAmount: c.PrincipalAmount(),
		OriginationDate: c.OriginationDate(),
		MaturityDate:    c.MaturityDate(),
		Status:          c.Status(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func ToContractDTOs(contracts []*contract.Contract) []*ContractDTO {
	out := make([]*ContractDTO, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, ToContractDTO(c))
	}
	return out
}
