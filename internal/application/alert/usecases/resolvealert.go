package usecases

import (
	"context"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/domain/authorization"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type ResolveAlertCommand struct {
	Actor   *authorization.AuthUser
	AlertID uint
	Notes   string
}

type ResolveAlertResult struct {
	AlertID    uint
	Status     string
	ResolvedAt time.Time
}

type ResolveAlertUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewResolveAlertUseCase(
	alertRepo alert.AlertRepository,
	logger logger.Interface,
) *ResolveAlertUseCase {
	return &ResolveAlertUseCase{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (uc *ResolveAlertUseCase) Execute(ctx context.Context, cmd ResolveAlertCommand) (*ResolveAlertResult, error) {
	if cmd.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}
	if cmd.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}

	existing, err := uc.alertRepo.GetByID(ctx, cmd.AlertID)
	if err != nil {
		uc.logger.Errorw("failed to get alert", "error", err, "alert_id", cmd.AlertID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("alert not found")
	}

	if !authorization.CanResolveAlert(cmd.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to resolve this alert")
	}

	if err := existing.Resolve(cmd.Notes); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.alertRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update alert", "error", err, "alert_id", cmd.AlertID)
		return nil, err
	}

	uc.logger.Infow("alert resolved",
		"alert_id", existing.ID(),
		"user_id", cmd.Actor.ID,
		"bank_id", existing.BankID(),
	)

	return &ResolveAlertResult{
		AlertID:    existing.ID(),
		Status:     existing.Status().String(),
		ResolvedAt: existing.UpdatedAt(),
	}, nil
}
