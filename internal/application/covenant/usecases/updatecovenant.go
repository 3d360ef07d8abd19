package usecases

import (
	"context"
	"time"

	"covena/internal/domain/authorization"
	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type UpdateCovenantCommand struct {
	Actor         *authorization.AuthUser
	CovenantID    uint
	Name          string
	Operator      string
	Threshold     float64
	ThresholdUnit string
	Frequency     string
}

type UpdateCovenantResult struct {
	CovenantID uint
	UpdatedAt  time.Time
}

// UpdateCovenantUseCase is the only mutation path for covenant definitions.
type UpdateCovenantUseCase struct {
	covenantRepo covenant.CovenantRepository
	logger       logger.Interface
}

func NewUpdateCovenantUseCase(
	covenantRepo covenant.CovenantRepository,
	logger logger.Interface,
) *UpdateCovenantUseCase {
	return &UpdateCovenantUseCase{
		covenantRepo: covenantRepo,
		logger:       logger,
	}
}

func (uc *UpdateCovenantUseCase) Execute(ctx context.Context, cmd UpdateCovenantCommand) (*UpdateCovenantResult, error) {
	if cmd.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}
	if cmd.CovenantID == 0 {
		return nil, errors.NewValidationError("covenant ID is required")
	}

	existing, err := uc.covenantRepo.GetByID(ctx, cmd.CovenantID)
	if err != nil {
		uc.logger.Errorw("failed to get covenant", "error", err, "covenant_id", cmd.CovenantID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("covenant not found")
	}

	if !authorization.CanUpdateCovenant(cmd.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to update this covenant")
	}

	if err := existing.UpdateTerms(
		cmd.Name,
		vo.Operator(cmd.Operator),
		cmd.Threshold,
		cmd.ThresholdUnit,
		vo.CheckFrequency(cmd.Frequency),
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.covenantRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update covenant", "error", err, "covenant_id", cmd.CovenantID)
		return nil, err
	}

	uc.logger.Infow("covenant updated", "covenant_id", existing.ID(), "bank_id", existing.BankID())

	return &UpdateCovenantResult{
		CovenantID: existing.ID(),
		UpdatedAt:  existing.UpdatedAt(),
	}, nil
}
