// Package compliance implements the covenant threshold-evaluation calculus:
// condition checks, buffer percentages, status determination, metric trend
// fitting, and days-to-breach estimation. All functions are pure.
package compliance

import (
	alertvo "covena/internal/domain/alert/valueobjects"
	sharedConfig "covena/internal/shared/config"
)

// Policy carries the evaluation tunables. Values come from configuration so
// the thresholds can be adjusted without code changes.
type Policy struct {
	// WarningMargin is the normalized distance-to-threshold fraction at or
	// below which a satisfied covenant is reported as warning.
	WarningMargin float64

	// HighBufferPct and MediumBufferPct are the buffer percentage cut points
	// for warning-path alert severity. Buffers at or below HighBufferPct map
	// to high, at or below MediumBufferPct to medium, anything wider to low.
	HighBufferPct   float64
	MediumBufferPct float64

	// StableSlopeEpsilon is the trend slope magnitude below which a metric
	// history counts as stable.
	StableSlopeEpsilon float64

	// PeriodsPerYear converts per-period slopes into days.
	PeriodsPerYear int
}

// DefaultPolicy returns the standard evaluation policy: 10% warning margin,
// 5%/15% severity cut points, quarterly periods.
func DefaultPolicy() Policy {
	return Policy{
		WarningMargin:      0.10,
		HighBufferPct:      5.0,
		MediumBufferPct:    15.0,
		StableSlopeEpsilon: 0.01,
		PeriodsPerYear:     4,
	}
}

// PolicyFromConfig builds a Policy from the loaded compliance configuration.
func PolicyFromConfig(cfg sharedConfig.ComplianceConfig) Policy {
	p := DefaultPolicy()
	if cfg.WarningMargin > 0 {
		p.WarningMargin = cfg.WarningMargin
	}
	if cfg.HighSeverityBufferPct > 0 {
		p.HighBufferPct = cfg.HighSeverityBufferPct
	}
	if cfg.MediumSeverityBufferPct > 0 {
		p.MediumBufferPct = cfg.MediumSeverityBufferPct
	}
	if cfg.StableSlopeEpsilon > 0 {
		p.StableSlopeEpsilon = cfg.StableSlopeEpsilon
	}
	if cfg.PeriodsPerYear > 0 {
		p.PeriodsPerYear = cfg.PeriodsPerYear
	}
	return p
}

// SeverityForBuffer maps a warning buffer percentage to an alert severity.
// The warning path never yields critical; that is reserved for breaches.
func (p Policy) SeverityForBuffer(bufferPct float64) alertvo.Severity {
	switch {
	case bufferPct <= p.HighBufferPct:
		return alertvo.SeverityHigh
	case bufferPct <= p.MediumBufferPct:
		return alertvo.SeverityMedium
	default:
		return alertvo.SeverityLow
	}
}
