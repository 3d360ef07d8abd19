package usecases

import (
	"context"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/domain/authorization"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type EscalateAlertCommand struct {
	Actor   *authorization.AuthUser
	AlertID uint
	Reason  string
	// System marks escalations driven by the sweep worker rather than a
	// user; these bypass the role check (the worker is the external clock,
	// not an actor) but still record the reason.
	System bool
}

type EscalateAlertResult struct {
	AlertID     uint
	Status      string
	Severity    string
	EscalatedAt time.Time
}

type EscalateAlertUseCase struct {
	alertRepo alert.AlertRepository
	notifier  EscalationNotifier
	logger    logger.Interface
}

func NewEscalateAlertUseCase(
	alertRepo alert.AlertRepository,
	notifier EscalationNotifier,
	logger logger.Interface,
) *EscalateAlertUseCase {
	return &EscalateAlertUseCase{
		alertRepo: alertRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *EscalateAlertUseCase) Execute(ctx context.Context, cmd EscalateAlertCommand) (*EscalateAlertResult, error) {
	if cmd.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}
	if len(cmd.Reason) == 0 {
		return nil, errors.NewValidationError("escalation reason is required")
	}
	if !cmd.System && cmd.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}

	existing, err := uc.alertRepo.GetByID(ctx, cmd.AlertID)
	if err != nil {
		uc.logger.Errorw("failed to get alert", "error", err, "alert_id", cmd.AlertID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("alert not found")
	}

	if !cmd.System && !authorization.CanEscalateAlert(cmd.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to escalate this alert")
	}

	if err := existing.Escalate(cmd.Reason); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.alertRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update alert", "error", err, "alert_id", cmd.AlertID)
		return nil, err
	}

	uc.logger.Infow("alert escalated",
		"alert_id", existing.ID(),
		"severity", existing.Severity().String(),
		"reason", cmd.Reason,
	)

	// Notification is best effort; the escalation itself has committed.
	if uc.notifier != nil {
		if err := uc.notifier.NotifyEscalation(ctx, existing); err != nil {
			uc.logger.Warnw("escalation notification failed", "error", err, "alert_id", existing.ID())
		}
	}

	return &EscalateAlertResult{
		AlertID:     existing.ID(),
		Status:      existing.Status().String(),
		Severity:    existing.Severity().String(),
		EscalatedAt: *existing.EscalatedAt(),
	}, nil
}
