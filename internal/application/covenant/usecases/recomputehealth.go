package usecases

import (
	"context"

	"covena/internal/application/covenant/dto"
	"covena/internal/domain/alert"
	"covena/internal/domain/compliance"
	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

// RecomputeHealthCommand carries one covenant's metric history, oldest first,
// with the last element being the current observation. The external scheduler
// owns the decision of when to invoke this; the usecase only reacts.
type RecomputeHealthCommand struct {
	CovenantID   uint
	MetricValues []float64
}

type RecomputeHealthResult struct {
	Health       *dto.HealthDTO
	AlertCreated bool
	AlertID      uint
}

// RecomputeHealthUseCase evaluates a covenant against fresh metric data,
// supersedes the stored health and, on a degrading status transition, creates
// an alert through the generator. Health write and alert write share one
// transaction; a duplicate-suppression cooldown guards alert creation.
type RecomputeHealthUseCase struct {
	covenantRepo covenant.CovenantRepository
	healthRepo   covenant.HealthRepository
	alertRepo    alert.AlertRepository
	generator    *alert.Generator
	policy       compliance.Policy
	txManager    TransactionRunner
	cooldown     AlertCooldown
	logger       logger.Interface
}

func NewRecomputeHealthUseCase(
	covenantRepo covenant.CovenantRepository,
	healthRepo covenant.HealthRepository,
	alertRepo alert.AlertRepository,
	policy compliance.Policy,
	txManager TransactionRunner,
	cooldown AlertCooldown,
	logger logger.Interface,
) *RecomputeHealthUseCase {
	return &RecomputeHealthUseCase{
		covenantRepo: covenantRepo,
		healthRepo:   healthRepo,
		alertRepo:    alertRepo,
		generator:    alert.NewGenerator(policy),
		policy:       policy,
		txManager:    txManager,
		cooldown:     cooldown,
		logger:       logger,
	}
}

func (uc *RecomputeHealthUseCase) Execute(ctx context.Context, cmd RecomputeHealthCommand) (*RecomputeHealthResult, error) {
	if cmd.CovenantID == 0 {
		return nil, errors.NewValidationError("covenant ID is required")
	}
	if len(cmd.MetricValues) == 0 {
		return nil, errors.NewValidationError("at least one metric value is required")
	}

	cov, err := uc.covenantRepo.GetByID(ctx, cmd.CovenantID)
	if err != nil {
		uc.logger.Errorw("failed to get covenant", "error", err, "covenant_id", cmd.CovenantID)
		return nil, err
	}
	if cov == nil {
		return nil, errors.NewNotFoundError("covenant not found")
	}

	current := cmd.MetricValues[len(cmd.MetricValues)-1]
	eval, err := uc.policy.Evaluate(current, cov.Threshold(), cov.Operator(), cmd.MetricValues)
	if err != nil {
		uc.logger.Errorw("failed to evaluate covenant", "error", err, "covenant_id", cov.ID())
		return nil, err
	}

	newHealth, err := covenant.NewHealth(
		cov.ID(),
		cov.ContractID(),
		cov.BankID(),
		eval.Status,
		eval.Trend,
		eval.BufferPct,
		current,
		eval.DaysToBreach,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newHealth.AttachHistory(cmd.MetricValues)

	result := &RecomputeHealthResult{Health: dto.ToHealthDTO(newHealth)}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		previous, err := uc.healthRepo.GetByCovenantID(txCtx, cov.ID())
		if err != nil {
			return err
		}

		if err := uc.healthRepo.Upsert(txCtx, newHealth); err != nil {
			return err
		}

		// A covenant with no stored health starts from a compliant baseline:
		// its first evaluation alerts when it lands in warning or breached.
		previousStatus := vo.StatusCompliant
		if previous != nil {
			previousStatus = previous.Status()
		}

		newAlert, err := uc.generator.FromStatusChange(alert.StatusChangeEvent{
			CovenantID:     cov.ID(),
			ContractID:     cov.ContractID(),
			BankID:         cov.BankID(),
			CovenantName:   cov.Name(),
			MetricName:     cov.MetricName(),
			PreviousStatus: previousStatus,
			NewStatus:      eval.Status,
			CurrentValue:   current,
			ThresholdValue: cov.Threshold(),
			Operator:       cov.Operator(),
		})
		if err != nil {
			return err
		}
		if newAlert == nil {
			return nil
		}

		acquired, err := uc.cooldown.Acquire(txCtx, cov.ID(), newAlert.Type().String())
		if err != nil {
			// Dedup is an optimization; losing it must not lose the alert.
			uc.logger.Warnw("alert cooldown check failed, proceeding without dedup",
				"error", err, "covenant_id", cov.ID())
			acquired = true
		}
		if !acquired {
			uc.logger.Infow("alert suppressed by cooldown",
				"covenant_id", cov.ID(), "alert_type", newAlert.Type().String())
			return nil
		}

		if err := uc.alertRepo.Save(txCtx, newAlert); err != nil {
			return err
		}

		result.AlertCreated = true
		result.AlertID = newAlert.ID()
		uc.logger.Infow("alert created on status transition",
			"covenant_id", cov.ID(),
			"previous_status", previousStatus.String(),
			"new_status", eval.Status.String(),
			"severity", newAlert.Severity().String(),
		)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to recompute covenant health", "error", err, "covenant_id", cov.ID())
		return nil, err
	}

	return result, nil
}
