package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/covenant"
	vo "covena/internal/domain/covenant/valueobjects"
)

func TestCovenantRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCovenantRepository(db)
	ctx := context.Background()

	c := createTestCovenant(t, 1, 10, "Max Leverage")
	err := repo.Save(ctx, c)
	require.NoError(t, err)
	require.NotZero(t, c.ID())

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Max Leverage", found.Name())
	assert.Equal(t, "debt_to_ebitda", found.MetricName())
	assert.Equal(t, vo.OperatorLessOrEqual, found.Operator())
	assert.InDelta(t, 3.5, found.Threshold(), 1e-9)
	assert.Equal(t, vo.FrequencyQuarterly, found.Frequency())
}

func TestCovenantRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCovenantRepository(db)

	found, err := repo.GetByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestCovenantRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCovenantRepository(db)
	ctx := context.Background()

	c := createTestCovenant(t, 1, 10, "Max Leverage")
	require.NoError(t, repo.Save(ctx, c))

	err := c.UpdateTerms("Max Leverage (amended)", vo.OperatorLessThan, 4.0, "ratio", vo.FrequencyMonthly)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Max Leverage (amended)", found.Name())
	assert.Equal(t, vo.OperatorLessThan, found.Operator())
	assert.InDelta(t, 4.0, found.Threshold(), 1e-9)
	assert.Equal(t, vo.FrequencyMonthly, found.Frequency())
}

func TestCovenantRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCovenantRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestCovenant(t, 1, 10, "Max Leverage")))
	require.NoError(t, repo.Save(ctx, createTestCovenant(t, 1, 10, "Min DSCR")))
	require.NoError(t, repo.Save(ctx, createTestCovenant(t, 2, 20, "Min Liquidity")))

	bankID := uint(10)
	covenants, total, err := repo.List(ctx, covenant.CovenantFilter{BankID: &bankID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, covenants, 2)

	covenants, total, err = repo.List(ctx, covenant.CovenantFilter{BankID: &bankID, Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, covenants, 1)
}

func TestCovenantRepository_GetByContractID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCovenantRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestCovenant(t, 1, 10, "Max Leverage")))
	require.NoError(t, repo.Save(ctx, createTestCovenant(t, 1, 10, "Min DSCR")))
	require.NoError(t, repo.Save(ctx, createTestCovenant(t, 2, 10, "Min Liquidity")))

	covenants, err := repo.GetByContractID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, covenants, 2)
}
