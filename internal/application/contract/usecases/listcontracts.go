package usecases

import (
	"context"

	"covena/internal/application/contract/dto"
	"covena/internal/domain/authorization"
	"covena/internal/domain/contract"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type ListContractsQuery struct {
	Actor *authorization.AuthUser
}

type ListContractsResult struct {
	Contracts []*dto.ContractDTO
}

type ListContractsUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewListContractsUseCase(
	contractRepo contract.ContractRepository,
	logger logger.Interface,
) *ListContractsUseCase {
	return &ListContractsUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *ListContractsUseCase) Execute(ctx context.Context, query ListContractsQuery) (*ListContractsResult, error) {
	if query.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}
	if !authorization.HasPermission(query.Actor, authorization.ResourceContract, authorization.ActionRead) {
		return nil, errors.NewForbiddenError("not allowed to list contracts")
	}

	contracts, err := uc.contractRepo.ListByBankID(ctx, query.Actor.BankID)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "error", err, "bank_id", query.Actor.BankID)
		return nil, err
	}

	return &ListContractsResult{Contracts: dto.ToContractDTOs(contracts)}, nil
}
