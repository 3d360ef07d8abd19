package usecases

import (
	"context"

	"covena/internal/application/contract/dto"
	"covena/internal/domain/authorization"
	"covena/internal/domain/contract"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type GetContractQuery struct {
	Actor      *authorization.AuthUser
	ContractID uint
}

type GetContractUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewGetContractUseCase(
	contractRepo contract.ContractRepository,
	logger logger.Interface,
) *GetContractUseCase {
	return &GetContractUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *GetContractUseCase) Execute(ctx context.Context, query GetContractQuery) (*dto.ContractDTO, error) {
	if query.ContractID == 0 {
		return nil, errors.NewValidationError("contract ID is required")
	}

	existing, err := uc.contractRepo.GetByID(ctx, query.ContractID)
	if err != nil {
		uc.logger.Errorw("failed to get contract", "error", err, "contract_id", query.ContractID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("contract not found")
	}

	if !authorization.CanViewContract(query.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to view this contract")
	}

	return dto.ToContractDTO(existing), nil
}
