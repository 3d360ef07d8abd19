package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "covena/internal/domain/covenant/valueobjects"
)

func TestTrend_FewerThanTwoPointsIsStable(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, vo.TrendStable, p.Trend(nil))
	assert.Equal(t, vo.TrendStable, p.Trend([]float64{}))
	assert.Equal(t, vo.TrendStable, p.Trend([]float64{42.0}))
	assert.Equal(t, vo.TrendStable, p.Trend([]float64{-1000.0}))
}

func TestTrend_Direction(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name    string
		history []float64
		want    vo.TrendDirection
	}{
		{"steadily rising", []float64{1.0, 1.2, 1.4, 1.6}, vo.TrendImproving},
		{"steadily falling", []float64{1.6, 1.4, 1.2, 1.0}, vo.TrendDeteriorating},
		{"flat", []float64{2.0, 2.0, 2.0, 2.0}, vo.TrendStable},
		{"noise below epsilon", []float64{2.0, 2.003, 1.998, 2.002}, vo.TrendStable},
		{"rising despite one dip", []float64{1.0, 1.5, 1.3, 2.0}, vo.TrendImproving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Trend(tt.history))
		})
	}
}

// Regression: the trend sign convention ignores operator polarity. A rising
// metric reads as improving even for a ceiling covenant (Debt/EBITDA <= x)
// where a decline would be the favorable direction. Consumers depend on the
// value-based convention; do not flip it without a migration plan.
func TestTrend_IgnoresOperatorPolarity(t *testing.T) {
	p := DefaultPolicy()

	rising := []float64{2.8, 3.0, 3.2, 3.4}
	assert.Equal(t, vo.TrendImproving, p.Trend(rising))

	falling := []float64{3.4, 3.2, 3.0, 2.8}
	assert.Equal(t, vo.TrendDeteriorating, p.Trend(falling))
}

func TestSlope(t *testing.T) {
	assert.Equal(t, 0.0, Slope(nil))
	assert.Equal(t, 0.0, Slope([]float64{5}))
	assert.InDelta(t, 0.2, Slope([]float64{1.0, 1.2, 1.4, 1.6}), 1e-9)
	assert.InDelta(t, -0.2, Slope([]float64{1.6, 1.4, 1.2, 1.0}), 1e-9)
	assert.InDelta(t, 0.0, Slope([]float64{2.0, 2.0, 2.0}), 1e-9)
}

func TestDaysToBreach(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		threshold float64
		op        vo.Operator
		slope     float64
		wantNil   bool
		wantDays  float64
	}{
		{
			name:    "ceiling, rising toward threshold",
			current: 3.0, threshold: 3.5, op: vo.OperatorLessOrEqual, slope: 0.1,
			wantDays: 5 * 365.0 / 4,
		},
		{
			name:    "ceiling, falling away",
			current: 3.0, threshold: 3.5, op: vo.OperatorLessOrEqual, slope: -0.1,
			wantNil: true,
		},
		{
			name:    "floor, falling toward threshold",
			current: 1.5, threshold: 1.25, op: vo.OperatorGreaterOrEqual, slope: -0.05,
			wantDays: 5 * 365.0 / 4,
		},
		{
			name:    "floor, rising away",
			current: 1.5, threshold: 1.25, op: vo.OperatorGreaterOrEqual, slope: 0.05,
			wantNil: true,
		},
		{
			name:    "flat slope",
			current: 3.0, threshold: 3.5, op: vo.OperatorLessOrEqual, slope: 0,
			wantNil: true,
		},
		{
			name:    "equality operator has no estimate",
			current: 4.9, threshold: 5.0, op: vo.OperatorEqual, slope: 0.1,
			wantNil: true,
		},
		{
			name:    "already past the ceiling",
			current: 4.0, threshold: 3.5, op: vo.OperatorLessOrEqual, slope: 0.1,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysToBreach(tt.current, tt.threshold, tt.op, tt.slope, 4)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.wantDays, *got, 1e-6)
			assert.Greater(t, *got, 0.0)
		})
	}
}
