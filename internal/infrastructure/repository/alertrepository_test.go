package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/alert"
	vo "covena/internal/domain/alert/valueobjects"
)

func TestAlertRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := createTestAlert(t, 1, 1, 10)
	err := repo.Save(ctx, a)
	require.NoError(t, err)
	require.NotZero(t, a.ID())

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, a.Title(), found.Title())
	assert.Equal(t, vo.StatusNew, found.Status())
	assert.Equal(t, vo.TypeBreach, found.Type())
	assert.Equal(t, uint(10), found.BankID())
	assert.InDelta(t, 4.2, found.TriggerMetricValue(), 1e-9)
}

func TestAlertRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)

	found, err := repo.GetByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestAlertRepository_Update_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := createTestAlert(t, 1, 1, 10)
	require.NoError(t, repo.Save(ctx, a))

	require.NoError(t, a.Acknowledge(7, "looking into it"))
	require.NoError(t, repo.Update(ctx, a))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAcknowledged, found.Status())
	require.NotNil(t, found.AcknowledgedBy())
	assert.Equal(t, uint(7), *found.AcknowledgedBy())

	require.NoError(t, a.Resolve("restructured facility"))
	require.NoError(t, repo.Update(ctx, a))

	found, err = repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, found.Status())
	assert.Equal(t, "restructured facility", found.ResolutionNotes())
}

func TestAlertRepository_Update_ResolvedIsImmutable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := createTestAlert(t, 1, 1, 10)
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, a.Acknowledge(7, ""))
	require.NoError(t, repo.Update(ctx, a))
	require.NoError(t, a.Resolve(""))
	require.NoError(t, repo.Update(ctx, a))

	// The stored row is terminal now; a stale writer must be rejected.
	err := repo.Update(ctx, a)
	assert.Error(t, err)
}

func TestAlertRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a1 := createTestAlert(t, 1, 1, 10)
	require.NoError(t, repo.Save(ctx, a1))
	a2 := createTestAlert(t, 2, 1, 10)
	require.NoError(t, repo.Save(ctx, a2))
	a3 := createTestAlert(t, 3, 2, 20)
	require.NoError(t, repo.Save(ctx, a3))

	bankID := uint(10)
	alerts, total, err := repo.List(ctx, alert.AlertFilter{BankID: &bankID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, alerts, 2)

	otherBank := uint(20)
	covenantID := uint(3)
	alerts, total, err = repo.List(ctx, alert.AlertFilter{BankID: &otherBank, CovenantID: &covenantID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, alerts, 1)
	assert.Equal(t, uint(3), alerts[0].CovenantID())
}

func TestAlertRepository_ListEscalationEligible(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	stale := createTestAlert(t, 1, 1, 10)
	require.NoError(t, repo.Save(ctx, stale))
	fresh := createTestAlert(t, 2, 1, 10)
	require.NoError(t, repo.Save(ctx, fresh))
	acked := createTestAlert(t, 3, 1, 10)
	require.NoError(t, repo.Save(ctx, acked))
	require.NoError(t, acked.Acknowledge(7, ""))
	require.NoError(t, repo.Update(ctx, acked))

	// Age the first two rows past the threshold.
	aged := time.Now().Add(-2 * time.Hour).UnixMilli()
	require.NoError(t, db.Exec(
		"UPDATE alerts SET triggered_at = ? WHERE id IN (?, ?)",
		aged, stale.ID(), acked.ID(),
	).Error)

	eligible, err := repo.ListEscalationEligible(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, stale.ID(), eligible[0].ID())
}
