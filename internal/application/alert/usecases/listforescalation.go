package usecases

import (
	"context"
	"time"

	"covena/internal/application/alert/dto"
	"covena/internal/domain/alert"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

// ListForEscalationQuery selects alerts still in status new whose triggered_at
// is at least OlderThan in the past. The age threshold comes from the
// escalation policy config; this usecase never decides when to run.
type ListForEscalationQuery struct {
	OlderThan time.Duration
}

type ListForEscalationResult struct {
	Alerts []*dto.AlertDTO
}

type ListForEscalationUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewListForEscalationUseCase(
	alertRepo alert.AlertRepository,
	logger logger.Interface,
) *ListForEscalationUseCase {
	return &ListForEscalationUseCase{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (uc *ListForEscalationUseCase) Execute(ctx context.Context, query ListForEscalationQuery) (*ListForEscalationResult, error) {
	if query.OlderThan <= 0 {
		return nil, errors.NewValidationError("age threshold must be positive")
	}

	alerts, err := uc.alertRepo.ListEscalationEligible(ctx, query.OlderThan)
	if err != nil {
		uc.logger.Errorw("failed to list escalation-eligible alerts", "error", err)
		return nil, err
	}

	return &ListForEscalationResult{Alerts: dto.ToAlertDTOs(alerts)}, nil
}
