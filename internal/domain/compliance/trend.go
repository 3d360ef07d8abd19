package compliance

import (
	vo "covena/internal/domain/covenant/valueobjects"
)

// daysPerYear for converting reporting periods into an elapsed-days estimate.
const daysPerYear = 365.0

// Slope fits an ordinary least-squares line through the value history
// (oldest first) against the point index and returns its slope. Fewer than
// two points yield a slope of zero.
func Slope(history []float64) float64 {
	n := len(history)
	if n < 2 {
		return 0
	}

	// x values are the indexes 0..n-1.
	meanX := float64(n-1) / 2.0
	var meanY float64
	for _, y := range history {
		meanY += y
	}
	meanY /= float64(n)

	var num, den float64
	for i, y := range history {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// TrendFromSlope classifies a fitted slope. Magnitudes under the stable
// epsilon are stable; positive slopes are improving, negative deteriorating.
//
// The sign convention does not account for operator polarity: a rising value
// reads as improving even for a ceiling covenant. Pinned behavior; see the
// regression test before changing it.
func (p Policy) TrendFromSlope(slope float64) vo.TrendDirection {
	if slope > -p.StableSlopeEpsilon && slope < p.StableSlopeEpsilon {
		return vo.TrendStable
	}
	if slope > 0 {
		return vo.TrendImproving
	}
	return vo.TrendDeteriorating
}

// Trend classifies the direction of a metric history. Fewer than two points
// is always stable.
func (p Policy) Trend(history []float64) vo.TrendDirection {
	if len(history) < 2 {
		return vo.TrendStable
	}
	return p.TrendFromSlope(Slope(history))
}

// DaysToBreach estimates elapsed days until the value crosses the threshold,
// assuming the per-period slope continues linearly. It returns nil when the
// operator is not an ordered comparison, when the slope is flat or moves the
// value away from the threshold, or when the value is already past it.
func DaysToBreach(current, threshold float64, op vo.Operator, slope float64, periodsPerYear int) *float64 {
	if !op.IsOrdered() || slope == 0 {
		return nil
	}
	if periodsPerYear <= 0 {
		periodsPerYear = 4
	}

	// Same expression for ceilings and floors: positive only when the slope
	// carries the value toward the threshold from the satisfied side.
	periods := (threshold - current) / slope
	if periods <= 0 {
		return nil
	}

	days := periods * daysPerYear / float64(periodsPerYear)
	return &days
}
