package usecases

import (
	"context"

	"covena/internal/application/covenant/dto"
	"covena/internal/domain/authorization"
	"covena/internal/domain/covenant"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type GetCovenantQuery struct {
	Actor      *authorization.AuthUser
	CovenantID uint
}

// GetCovenantResult pairs the definition with its latest evaluated health;
// Health is nil when the covenant has never been recomputed.
type GetCovenantResult struct {
	Covenant *dto.CovenantDTO
	Health   *dto.HealthDTO
}

type GetCovenantUseCase struct {
	covenantRepo covenant.CovenantRepository
	healthRepo   covenant.HealthRepository
	logger       logger.Interface
}

func NewGetCovenantUseCase(
	covenantRepo covenant.CovenantRepository,
	healthRepo covenant.HealthRepository,
	logger logger.Interface,
) *GetCovenantUseCase {
	return &GetCovenantUseCase{
		covenantRepo: covenantRepo,
		healthRepo:   healthRepo,
		logger:       logger,
	}
}

func (uc *GetCovenantUseCase) Execute(ctx context.Context, query GetCovenantQuery) (*GetCovenantResult, error) {
	if query.CovenantID == 0 {
		return nil, errors.NewValidationError("covenant ID is required")
	}

	existing, err := uc.covenantRepo.GetByID(ctx, query.CovenantID)
	if err != nil {
		uc.logger.Errorw("failed to get covenant", "error", err, "covenant_id", query.CovenantID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("covenant not found")
	}

	if !authorization.CanViewCovenant(query.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to view this covenant")
	}

	health, err := uc.healthRepo.GetByCovenantID(ctx, query.CovenantID)
	if err != nil {
		uc.logger.Errorw("failed to get covenant health", "error", err, "covenant_id", query.CovenantID)
		return nil, err
	}

	return &GetCovenantResult{
		Covenant: dto.ToCovenantDTO(existing),
		Health:   dto.ToHealthDTO(health),
	}, nil
}
