package usecases

import (
	"context"

	"covena/internal/application/covenant/dto"
	"covena/internal/domain/authorization"
	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type ListCovenantsQuery struct {
	Actor      *authorization.AuthUser
	ContractID *uint
	Type       *string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListCovenantsResult struct {
	Covenants []*dto.CovenantDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListCovenantsUseCase struct {
	covenantRepo covenant.CovenantRepository
	logger       logger.Interface
}

func NewListCovenantsUseCase(
	covenantRepo covenant.CovenantRepository,
	logger logger.Interface,
) *ListCovenantsUseCase {
	return &ListCovenantsUseCase{
		covenantRepo: covenantRepo,
		logger:       logger,
	}
}

func (uc *ListCovenantsUseCase) Execute(ctx context.Context, query ListCovenantsQuery) (*ListCovenantsResult, error) {
	if query.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}
	if !authorization.HasPermission(query.Actor, authorization.ResourceCovenant, authorization.ActionRead) {
		return nil, errors.NewForbiddenError("not allowed to list covenants")
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	// Listing is always scoped to the actor's tenant.
	filter := covenant.CovenantFilter{
		BankID:     &query.Actor.BankID,
		ContractID: query.ContractID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}
	if query.Type != nil {
		ct := vo.CovenantType(*query.Type)
		if !ct.IsValid() {
			return nil, errors.NewValidationError("invalid covenant type")
		}
		filter.Type = &ct
	}

	covenants, total, err := uc.covenantRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list covenants", "error", err, "bank_id", query.Actor.BankID)
		return nil, err
	}

	return &ListCovenantsResult{
		Covenants: dto.ToCovenantDTOs(covenants),
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}
