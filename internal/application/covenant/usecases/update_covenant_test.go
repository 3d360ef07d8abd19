package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/shared/errors"
)

func existingCovenant(t *testing.T, bankID uint) *covenant.Covenant {
	t.Helper()
	c, err := covenant.ReconstructCovenant(
		10, 20, bankID,
		"Max Leverage", "Debt/EBITDA",
		vo.TypeFinancial, vo.OperatorLessOrEqual,
		3.5, "x", vo.FrequencyQuarterly,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return c
}

func TestUpdateCovenantUseCase_Execute_Success(t *testing.T) {
	existing := existingCovenant(t, 7)

	var updated *covenant.Covenant
	repo := &mockCovenantRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*covenant.Covenant, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, c *covenant.Covenant) error {
			updated = c
			return nil
		},
	}

	uc := NewUpdateCovenantUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateCovenantCommand{
		Actor:         analystActor(t),
		CovenantID:    10,
		Name:          "Max Leverage (amended)",
		Operator:      "<=",
		Threshold:     4.0,
		ThresholdUnit: "x",
		Frequency:     "monthly",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.CovenantID)
	require.NotNil(t, updated)
	assert.Equal(t, 4.0, updated.Threshold())
	assert.Equal(t, vo.FrequencyMonthly, updated.Frequency())
}

func TestUpdateCovenantUseCase_Execute_CrossTenantForbidden(t *testing.T) {
	otherBank := existingCovenant(t, 9)
	repo := &mockCovenantRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*covenant.Covenant, error) {
			return otherBank, nil
		},
	}

	uc := NewUpdateCovenantUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateCovenantCommand{
		Actor:         analystActor(t),
		CovenantID:    10,
		Name:          "n",
		Operator:      "<=",
		Threshold:     4.0,
		ThresholdUnit: "x",
		Frequency:     "monthly",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateCovenantUseCase_Execute_NotFound(t *testing.T) {
	uc := NewUpdateCovenantUseCase(&mockCovenantRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateCovenantCommand{
		Actor:         analystActor(t),
		CovenantID:    404,
		Name:          "n",
		Operator:      "<=",
		Threshold:     4.0,
		ThresholdUnit: "x",
		Frequency:     "monthly",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
