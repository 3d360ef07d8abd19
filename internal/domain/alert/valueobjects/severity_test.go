package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_Escalated(t *testing.T) {
	tests := []struct {
		name string
		from Severity
		want Severity
	}{
		{"low to medium", SeverityLow, SeverityMedium},
		{"medium to high", SeverityMedium, SeverityHigh},
		{"high to critical", SeverityHigh, SeverityCritical},
		{"critical saturates", SeverityCritical, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Escalated())
		})
	}
}

func TestSeverity_Rank(t *testing.T) {
	assert.Less(t, SeverityLow.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityHigh.Rank())
	assert.Less(t, SeverityHigh.Rank(), SeverityCritical.Rank())
}
