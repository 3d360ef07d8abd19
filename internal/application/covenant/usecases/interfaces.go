package usecases

import "context"

// TransactionRunner abstracts shared/db.TransactionManager so usecases stay
// testable without a live database.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AlertCooldown suppresses duplicate alerts for the same covenant and alert
// type inside a configured window. Acquire reports whether this caller won
// the window.
type AlertCooldown interface {
	Acquire(ctx context.Context, covenantID uint, alertType string) (bool, error)
}

type CreateCovenantExecutor interface {
	Execute(ctx context.Context, cmd CreateCovenantCommand) (*CreateCovenantResult, error)
}

type UpdateCovenantExecutor interface {
	Execute(ctx context.Context, cmd UpdateCovenantCommand) (*UpdateCovenantResult, error)
}

type GetCovenantExecutor interface {
	Execute(ctx context.Context, query GetCovenantQuery) (*GetCovenantResult, error)
}

type ListCovenantsExecutor interface {
	Execute(ctx context.Context, query ListCovenantsQuery) (*ListCovenantsResult, error)
}

type RecomputeHealthExecutor interface {
	Execute(ctx context.Context, cmd RecomputeHealthCommand) (*RecomputeHealthResult, error)
}
