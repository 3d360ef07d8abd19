package usecases

import (
	"context"

	"covena/internal/application/alert/dto"
	"covena/internal/domain/alert"
	vo "covena/internal/domain/alert/valueobjects"
	"covena/internal/domain/authorization"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type ListAlertsQuery struct {
	Actor      *authorization.AuthUser
	ContractID *uint
	CovenantID *uint
	Status     *string
	Severity   *string
	Type       *string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListAlertsResult struct {
	Alerts   []*dto.AlertDTO
	Total    int64
	Page     int
	PageSize int
}

type ListAlertsUseCase struct {
	alertRepo alert.AlertRepository
	logger    logger.Interface
}

func NewListAlertsUseCase(
	alertRepo alert.AlertRepository,
	logger logger.Interface,
) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (uc *ListAlertsUseCase) Execute(ctx context.Context, query ListAlertsQuery) (*ListAlertsResult, error) {
	if query.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}
	if !authorization.HasPermission(query.Actor, authorization.ResourceAlert, authorization.ActionRead) {
		return nil, errors.NewForbiddenError("not allowed to list alerts")
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	filter := alert.AlertFilter{
		BankID:     &query.Actor.BankID,
		ContractID: query.ContractID,
		CovenantID: query.CovenantID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != nil {
		status, err := vo.NewAlertStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid alert status")
		}
		filter.Status = &status
	}
	if query.Severity != nil {
		severity := vo.Severity(*query.Severity)
		if !severity.IsValid() {
			return nil, errors.NewValidationError("invalid severity")
		}
		filter.Severity = &severity
	}
	if query.Type != nil {
		alertType := vo.AlertType(*query.Type)
		if !alertType.IsValid() {
			return nil, errors.NewValidationError("invalid alert type")
		}
		filter.Type = &alertType
	}

	alerts, total, err := uc.alertRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list alerts", "error", err, "bank_id", query.Actor.BankID)
		return nil, err
	}

	return &ListAlertsResult{
		Alerts:   dto.ToAlertDTOs(alerts),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
