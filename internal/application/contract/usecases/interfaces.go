package usecases

import (
	"context"

	"covena/internal/application/contract/dto"
)

type GetContractExecutor interface {
	Execute(ctx context.Context, query GetContractQuery) (*dto.ContractDTO, error)
}

type ListContractsExecutor interface {
	Execute(ctx context.Context, query ListContractsQuery) (*ListContractsResult, error)
}
