package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/authorization"
	"covena/internal/domain/covenant"
	"covena/internal/shared/errors"
)

func analystActor(t *testing.T) *authorization.AuthUser {
	t.Helper()
	u, err := authorization.NewAuthUser(5, authorization.RoleAnalyst, 7)
	require.NoError(t, err)
	return u
}

func viewerActor(t *testing.T) *authorization.AuthUser {
	t.Helper()
	u, err := authorization.NewAuthUser(6, authorization.RoleViewer, 7)
	require.NoError(t, err)
	return u
}

func validCreateCommand(actor *authorization.AuthUser) CreateCovenantCommand {
	return CreateCovenantCommand{
		Actor:         actor,
		ContractID:    20,
		Name:          "Max Leverage",
		MetricName:    "Debt/EBITDA",
		Type:          "financial",
		Operator:      "<=",
		Threshold:     3.5,
		ThresholdUnit: "x",
		Frequency:     "quarterly",
	}
}

func TestCreateCovenantUseCase_Execute_Success(t *testing.T) {
	var saved *covenant.Covenant
	repo := &mockCovenantRepository{
		SaveFunc: func(ctx context.Context, c *covenant.Covenant) error {
			saved = c
			return c.SetID(10)
		},
	}

	uc := NewCreateCovenantUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), validCreateCommand(analystActor(t)))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.CovenantID)

	require.NotNil(t, saved)
	// Tenant comes from the actor, never from the request.
	assert.Equal(t, uint(7), saved.BankID())
	assert.Equal(t, "Debt/EBITDA", saved.MetricName())
}

func TestCreateCovenantUseCase_Execute_ViewerForbidden(t *testing.T) {
	uc := NewCreateCovenantUseCase(&mockCovenantRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), validCreateCommand(viewerActor(t)))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateCovenantUseCase_Execute_ValidationErrors(t *testing.T) {
	actor := analystActor(t)

	tests := []struct {
		name   string
		mutate func(cmd *CreateCovenantCommand)
	}{
		{"missing actor", func(cmd *CreateCovenantCommand) { cmd.Actor = nil }},
		{"missing contract", func(cmd *CreateCovenantCommand) { cmd.ContractID = 0 }},
		{"empty name", func(cmd *CreateCovenantCommand) { cmd.Name = "" }},
		{"empty metric", func(cmd *CreateCovenantCommand) { cmd.MetricName = "" }},
		{"bad type", func(cmd *CreateCovenantCommand) { cmd.Type = "exotic" }},
		{"bad operator", func(cmd *CreateCovenantCommand) { cmd.Operator = "between" }},
		{"bad frequency", func(cmd *CreateCovenantCommand) { cmd.Frequency = "weekly" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateCommand(actor)
			tt.mutate(&cmd)

			uc := NewCreateCovenantUseCase(&mockCovenantRepository{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
