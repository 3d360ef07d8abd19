package scheduler

import (
	"context"
	"fmt"
	"time"

	alertusecases "covena/internal/application/alert/usecases"
	"covena/internal/infrastructure/cache"
	"covena/internal/shared/logger"
)

// EscalationSweepJob escalates alerts that have sat in status new beyond the
// policy age threshold. A Redis lock keeps concurrent worker instances from
// double-escalating the same batch; losing the lock race is a clean no-op.
type EscalationSweepJob struct {
	listUC       *alertusecases.ListForEscalationUseCase
	escalateUC   *alertusecases.EscalateAlertUseCase
	sweepLock    *cache.SweepLock
	ageThreshold time.Duration
	lockTTL      time.Duration
	logger       logger.Interface
}

func NewEscalationSweepJob(
	listUC *alertusecases.ListForEscalationUseCase,
	escalateUC *alertusecases.EscalateAlertUseCase,
	sweepLock *cache.SweepLock,
	ageThreshold time.Duration,
	lockTTL time.Duration,
	logger logger.Interface,
) *EscalationSweepJob {
	return &EscalationSweepJob{
		listUC:       listUC,
		escalateUC:   escalateUC,
		sweepLock:    sweepLock,
		ageThreshold: ageThreshold,
		lockTTL:      lockTTL,
		logger:       logger,
	}
}

func (j *EscalationSweepJob) Execute(ctx context.Context) (int, error) {
	if j.sweepLock != nil {
		acquired, err := j.sweepLock.TryAcquire(ctx, j.lockTTL)
		if err != nil {
			return 0, fmt.Errorf("failed to acquire sweep lock: %w", err)
		}
		if !acquired {
			j.logger.Debugw("escalation sweep skipped, another instance holds the lock")
			return 0, nil
		}
		defer func() {
			if err := j.sweepLock.Release(context.WithoutCancel(ctx)); err != nil {
				j.logger.Warnw("failed to release sweep lock", "error", err)
			}
		}()
	}

	result, err := j.listUC.Execute(ctx, alertusecases.ListForEscalationQuery{
		OlderThan: j.ageThreshold,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list escalation-eligible alerts: %w", err)
	}

	escalated := 0
	for _, a := range result.Alerts {
		reason := fmt.Sprintf("unacknowledged for over %s", j.ageThreshold)

		_, err := j.escalateUC.Execute(ctx, alertusecases.EscalateAlertCommand{
			AlertID: a.ID,
			Reason:  reason,
			System:  true,
		})
		if err != nil {
			// An alert acknowledged between the list and the escalate loses
			// eligibility; skip it and keep sweeping.
			j.logger.Warnw("failed to escalate alert",
				"error", err,
				"alert_id", a.ID,
			)
			continue
		}
		escalated++
	}

	return escalated, nil
}
