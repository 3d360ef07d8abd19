package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "covena/internal/domain/alert/valueobjects"
	"covena/internal/domain/compliance"
	covenantvo "covena/internal/domain/covenant/valueobjects"
)

func testEvent(prev, next covenantvo.HealthStatus, current, threshold float64) StatusChangeEvent {
	return StatusChangeEvent{
		CovenantID:     10,
		ContractID:     20,
		BankID:         30,
		CovenantName:   "Max Leverage",
		MetricName:     "Debt/EBITDA",
		PreviousStatus: prev,
		NewStatus:      next,
		CurrentValue:   current,
		ThresholdValue: threshold,
		Operator:       covenantvo.OperatorLessOrEqual,
	}
}

func TestGenerator_NoAlertWithoutDegradation(t *testing.T) {
	g := NewGenerator(compliance.DefaultPolicy())

	tests := []struct {
		name string
		prev covenantvo.HealthStatus
		next covenantvo.HealthStatus
	}{
		{"unchanged compliant", covenantvo.StatusCompliant, covenantvo.StatusCompliant},
		{"unchanged warning", covenantvo.StatusWarning, covenantvo.StatusWarning},
		{"unchanged breached", covenantvo.StatusBreached, covenantvo.StatusBreached},
		{"warning recovers", covenantvo.StatusWarning, covenantvo.StatusCompliant},
		{"breach recovers fully", covenantvo.StatusBreached, covenantvo.StatusCompliant},
		{"breach eases to warning", covenantvo.StatusBreached, covenantvo.StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := g.FromStatusChange(testEvent(tt.prev, tt.next, 3.0, 3.5))
			require.NoError(t, err)
			assert.Nil(t, a)
		})
	}
}

func TestGenerator_BreachIsAlwaysCritical(t *testing.T) {
	g := NewGenerator(compliance.DefaultPolicy())

	for _, prev := range []covenantvo.HealthStatus{covenantvo.StatusCompliant, covenantvo.StatusWarning} {
		a, err := g.FromStatusChange(testEvent(prev, covenantvo.StatusBreached, 4.0, 3.5))
		require.NoError(t, err)
		require.NotNil(t, a)

		assert.Equal(t, vo.TypeBreach, a.Type())
		assert.Equal(t, vo.SeverityCritical, a.Severity())
		assert.Equal(t, vo.StatusNew, a.Status())
		assert.Equal(t, 4.0, a.TriggerMetricValue())
		assert.Equal(t, 3.5, a.ThresholdValue())
		assert.Contains(t, a.Title(), "Max Leverage")
		assert.Contains(t, a.Title(), "breach")
		assert.Contains(t, a.Description(), "Debt/EBITDA")
		assert.Contains(t, a.Description(), "Max Leverage")
	}
}

func TestGenerator_WarningSeverityFromBuffer(t *testing.T) {
	g := NewGenerator(compliance.DefaultPolicy())

	tests := []struct {
		name    string
		current float64
		want    vo.Severity
	}{
		// Distance to the 3.5 ceiling: (3.5-current)/3.5 * 100.
		{"razor thin buffer", 3.45, vo.SeverityHigh},      // ~1.4%
		{"moderate buffer", 3.2, vo.SeverityMedium},       // ~8.6%
		{"comfortable buffer", 2.8, vo.SeverityLow},       // 20%
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := g.FromStatusChange(testEvent(covenantvo.StatusCompliant, covenantvo.StatusWarning, tt.current, 3.5))
			require.NoError(t, err)
			require.NotNil(t, a)

			assert.Equal(t, vo.TypeWarning, a.Type())
			assert.Equal(t, tt.want, a.Severity())
			assert.NotEqual(t, vo.SeverityCritical, a.Severity())
			assert.Contains(t, a.Title(), "warning")
		})
	}
}

func TestGenerator_RejectsIncompleteEvent(t *testing.T) {
	g := NewGenerator(compliance.DefaultPolicy())

	ev := testEvent(covenantvo.StatusCompliant, covenantvo.StatusBreached, 4.0, 3.5)
	ev.CovenantID = 0
	_, err := g.FromStatusChange(ev)
	assert.Error(t, err)

	ev = testEvent(covenantvo.StatusCompliant, covenantvo.StatusBreached, 4.0, 3.5)
	ev.PreviousStatus = covenantvo.HealthStatus("unknown")
	_, err = g.FromStatusChange(ev)
	assert.Error(t, err)
}

func TestGenerator_AlertValidates(t *testing.T) {
	g := NewGenerator(compliance.DefaultPolicy())

	a, err := g.FromStatusChange(testEvent(covenantvo.StatusCompliant, covenantvo.StatusWarning, 3.4, 3.5))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NoError(t, a.Validate())
	assert.Zero(t, a.ID())
	assert.Nil(t, a.AcknowledgedAt())
	assert.Nil(t, a.EscalatedAt())
}
