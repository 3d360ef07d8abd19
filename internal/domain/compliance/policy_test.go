package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	alertvo "covena/internal/domain/alert/valueobjects"
	sharedConfig "covena/internal/shared/config"
)

func TestPolicy_SeverityForBuffer(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name      string
		bufferPct float64
		want      alertvo.Severity
	}{
		{"very tight buffer", 3.0, alertvo.SeverityHigh},
		{"at high cut point", 5.0, alertvo.SeverityHigh},
		{"moderate buffer", 6.7, alertvo.SeverityMedium},
		{"at medium cut point", 15.0, alertvo.SeverityMedium},
		{"wide buffer", 20.0, alertvo.SeverityLow},
		{"zero buffer", 0.0, alertvo.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SeverityForBuffer(tt.bufferPct)
			assert.Equal(t, tt.want, got)
			// The warning path never yields critical.
			assert.NotEqual(t, alertvo.SeverityCritical, got)
		})
	}
}

func TestPolicyFromConfig(t *testing.T) {
	cfg := sharedConfig.ComplianceConfig{
		WarningMargin:           0.2,
		HighSeverityBufferPct:   2.5,
		MediumSeverityBufferPct: 10.0,
		StableSlopeEpsilon:      0.05,
		PeriodsPerYear:          12,
	}

	p := PolicyFromConfig(cfg)
	assert.Equal(t, 0.2, p.WarningMargin)
	assert.Equal(t, 2.5, p.HighBufferPct)
	assert.Equal(t, 10.0, p.MediumBufferPct)
	assert.Equal(t, 0.05, p.StableSlopeEpsilon)
	assert.Equal(t, 12, p.PeriodsPerYear)
}

func TestPolicyFromConfig_ZeroValuesFallBackToDefaults(t *testing.T) {
	p := PolicyFromConfig(sharedConfig.ComplianceConfig{})
	assert.Equal(t, DefaultPolicy(), p)
}
