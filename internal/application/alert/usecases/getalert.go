package usecases

import (
	"context"

	"covena/internal/application/alert/dto"
	"covena/internal/domain/alert"
	"covena/internal/domain/authorization"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type GetAlertQuery struct {
	Actor   *authorization.AuthUser
	AlertID uint
}

type GetAlertUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewGetAlertUseCase(
	alertRepo alert.AlertRepository,
	logger logger.Interface,
) *GetAlertUseCase {
	return &GetAlertUseCase{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (uc *GetAlertUseCase) Execute(ctx context.Context, query GetAlertQuery) (*dto.AlertDTO, error) {
	if query.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}

	existing, err := uc.alertRepo.GetByID(ctx, query.AlertID)
	if err != nil {
		uc.logger.Errorw("failed to get alert", "error", err, "alert_id", query.AlertID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("alert not found")
	}

	if !authorization.CanViewAlert(query.Actor, existing.BankID()) {
		return nil, errors.NewForbiddenError("not allowed to view this alert")
	}

	return dto.ToAlertDTO(existing), nil
}
