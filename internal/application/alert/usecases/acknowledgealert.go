package usecases

import (
	"context"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/domain/authorization"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type AcknowledgeAlertCommand struct {
	Actor   *authorization.AuthUser
	AlertID uint
	Notes   string
}

type AcknowledgeAlertResult struct {
	AlertID        uint
	Status         string
	AcknowledgedAt time.Time
}

type AcknowledgeAlertUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewAcknowledgeAlertUseCase(
	alertRepo alert.AlertRepository,
	logger logger.Interface,
) *AcknowledgeAlertUseCase {
	return &AcknowledgeAlertUseCase{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (uc *AcknowledgeAlertUseCase) Execute(ctx context.Context, cmd AcknowledgeAlertCommand) (*AcknowledgeAlertResult, error) {
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

	if !authorization.CanAcknowledgeAlert(cmd.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to acknowledge this alert")
	}

	if err := existing.Acknowledge(cmd.Actor.ID, cmd.Notes); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.alertRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update alert", "error", err, "alert_id", cmd.AlertID)
		return nil, err
	}

	uc.logger.Infow("alert acknowledged",
		"alert_id", existing.ID(),
		"user_id", cmd.Actor.ID,
		"bank_id", existing.BankID(),
	)

	return &AcknowledgeAlertResult{
		AlertID:        existing.ID(),
		Status:         existing.Status().String(),
		AcknowledgedAt: *existing.AcknowledgedAt(),
	}, nil
}
