package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/alert"
	vo "covena/internal/domain/alert/valueobjects"
	"covena/internal/domain/authorization"
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

func adminActor(t *testing.T) *authorization.AuthUser {
	t.Helper()
	u, err := authorization.NewAuthUser(9, authorization.RoleAdmin, 7)
	require.NoError(t, err)
	return u
}

func storedAlert(t *testing.T, status vo.AlertStatus, severity vo.Severity, bankID uint) *alert.Alert {
	t.Helper()
	a, err := alert.ReconstructAlert(
		1, 10, 20, bankID,
		vo.TypeWarning, severity,
		"Covenant warning: Max Leverage",
		"Debt/EBITDA is approaching the limit",
		3.45, 3.5,
		status,
		time.Now().Add(-2*time.Hour),
		nil, nil, "", nil, "",
		time.Now().Add(-2*time.Hour), time.Now().Add(-2*time.Hour),
	)
	require.NoError(t, err)
	return a
}

func TestAcknowledgeAlertUseCase_Execute_Success(t *testing.T) {
	existing := storedAlert(t, vo.StatusNew, vo.SeverityMedium, 7)

	var updated *alert.Alert
	repo := &mockAlertRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*alert.Alert, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, a *alert.Alert) error {
			updated = a
			return nil
		},
	}

	uc := NewAcknowledgeAlertUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AcknowledgeAlertCommand{
		Actor:   analystActor(t),
		AlertID: 1,
		Notes:   "investigating",
	})

	require.NoError(t, err)
	assert.Equal(t, "acknowledged", result.Status)
	assert.False(t, result.AcknowledgedAt.IsZero())

	require.NotNil(t, updated)
	require.NotNil(t, updated.AcknowledgedBy())
	assert.Equal(t, uint(5), *updated.AcknowledgedBy())
	// Trigger context survives the transition.
	assert.Equal(t, vo.TypeWarning, updated.Type())
	assert.Equal(t, vo.SeverityMedium, updated.Severity())
	assert.Equal(t, 3.45, updated.TriggerMetricValue())
}

func TestAcknowledgeAlertUseCase_Execute_ViewerForbidden(t *testing.T) {
	repo := &mockAlertRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*alert.Alert, error) {
			return storedAlert(t, vo.StatusNew, vo.SeverityMedium, 7), nil
		},
	}

	uc := NewAcknowledgeAlertUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AcknowledgeAlertCommand{
		Actor:   viewerActor(t),
		AlertID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAcknowledgeAlertUseCase_Execute_CrossTenantForbidden(t *testing.T) {
	repo := &mockAlertRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*alert.Alert, error) {
			return storedAlert(t, vo.StatusNew, vo.SeverityMedium, 99), nil
		},
	}

	uc := NewAcknowledgeAlertUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AcknowledgeAlertCommand{
		Actor:   analystActor(t),
		AlertID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAcknowledgeAlertUseCase_Execute_ResolvedIsConflict(t *testing.T) {
	repo := &mockAlertRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*alert.Alert, error) {
			return storedAlert(t, vo.StatusResolved, vo.SeverityMedium, 7), nil
		},
	}

	uc := NewAcknowledgeAlertUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AcknowledgeAlertCommand{
		Actor:   analystActor(t),
		AlertID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAcknowledgeAlertUseCase_Execute_NotFound(t *testing.T) {
	uc := NewAcknowledgeAlertUseCase(&mockAlertRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AcknowledgeAlertCommand{
		Actor:   analystActor(t),
		AlertID: 404,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
