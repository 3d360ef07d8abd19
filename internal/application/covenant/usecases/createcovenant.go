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

type CreateCovenantCommand struct {
	Actor         *authorization.AuthUser
	ContractID    uint
	Name          string
	MetricName    string
	Type          string
	Operator      string
	Threshold     float64
	ThresholdUnit string
	Frequency     string
}

type CreateCovenantResult struct {
	CovenantID uint
	CreatedAt  time.Time
}

type CreateCovenantUseCase struct {
	covenantRepo covenant.CovenantRepository
	logger       logger.Interface
}

func NewCreateCovenantUseCase(
	covenantRepo covenant.CovenantRepository,
	logger logger.Interface,
) *CreateCovenantUseCase {
	return &CreateCovenantUseCase{
		covenantRepo: covenantRepo,
		logger:       logger,
	}
}

func (uc *CreateCovenantUseCase) Execute(ctx context.Context, cmd CreateCovenantCommand) (*CreateCovenantResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create covenant command", "error", err)
		return nil, err
	}

	// The covenant inherits its tenant from the actor; cross-tenant creation
	// is rejected by the helper, not trusted from the request body.
	if !authorization.CanCreateCovenant(cmd.Actor, cmd.Actor.BankID) {
		return nil, errors.NewForbiddenError("not allowed to create covenants")
	}

	newCovenant, err := covenant.NewCovenant(
		cmd.ContractID,
		cmd.Actor.BankID,
		cmd.Name,
		cmd.MetricName,
		vo.CovenantType(cmd.Type),
		vo.Operator(cmd.Operator),
		cmd.Threshold,
		cmd.ThresholdUnit,
		vo.CheckFrequency(cmd.Frequency),
	)
	if err != nil {
		uc.logger.Errorw("failed to create covenant entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.covenantRepo.Save(ctx, newCovenant); err != nil {
		uc.logger.Errorw("failed to save covenant", "error", err, "contract_id", cmd.ContractID)
		return nil, err
	}

	uc.logger.Infow("covenant created",
		"covenant_id", newCovenant.ID(),
		"contract_id", newCovenant.ContractID(),
		"bank_id", newCovenant.BankID(),
	)

	return &CreateCovenantResult{
		CovenantID: newCovenant.ID(),
		CreatedAt:  newCovenant.CreatedAt(),
	}, nil
}

func (uc *CreateCovenantUseCase) validateCommand(cmd CreateCovenantCommand) error {
	if cmd.Actor == nil {
		return errors.NewUnauthorizedError("authenticated user is required")
	}
	if cmd.ContractID == 0 {
		return errors.NewValidationError("contract ID is required")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.MetricName) == 0 {
		return errors.NewValidationError("metric name is required")
	}
	if !vo.CovenantType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid covenant type")
	}
	if !vo.Operator(cmd.Operator).IsValid() {
		return errors.NewValidationError("invalid operator")
	}
	if !vo.CheckFrequency(cmd.Frequency).IsValid() {
		return errors.NewValidationError("invalid check frequency")
	}
	return nil
}
