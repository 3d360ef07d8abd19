package usecases

import (
	"context"

	"covena/internal/application/alert/dto"
	"covena/internal/domain/alert"
)

// EscalationNotifier delivers an out-of-band notification after an alert has
// escalated. Failures are logged, never propagated.
type EscalationNotifier interface {
	NotifyEscalation(ctx context.Context, a *alert.Alert) error
}

type AcknowledgeAlertExecutor interface {
	Execute(ctx context.Context, cmd AcknowledgeAlertCommand) (*AcknowledgeAlertResult, error)
}

type ResolveAlertExecutor interface {
	Execute(ctx context.Context, cmd ResolveAlertCommand) (*ResolveAlertResult, error)
}

type EscalateAlertExecutor interface {
	Execute(ctx context.Context, cmd EscalateAlertCommand) (*EscalateAlertResult, error)
}

type GetAlertExecutor interface {
	Execute(ctx context.Context, query GetAlertQuery) (*dto.AlertDTO, error)
}

type ListAlertsExecutor interface {
	Execute(ctx context.Context, query ListAlertsQuery) (*ListAlertsResult, error)
}

type ListForEscalationExecutor interface {
	Execute(ctx context.Context, query ListForEscalationQuery) (*ListForEscalationResult, error)
}
