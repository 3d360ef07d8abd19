package compliance

import (
	"fmt"
	"math"

	vo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/shared/errors"
)

// EvaluateCondition reports whether the covenant condition holds for the
// current value. With checkForBreach the result is negated, answering "is
// this covenant breached" instead of "is it satisfied".
//
// An unsupported operator is a validation error, never a silent false.
func EvaluateCondition(current, threshold float64, op vo.Operator, checkForBreach bool) (bool, error) {
	var satisfied bool
	switch op {
	case vo.OperatorLessThan:
		satisfied = current < threshold
	case vo.OperatorLessOrEqual:
		satisfied = current <= threshold
	case vo.OperatorGreaterThan:
		satisfied = current > threshold
	case vo.OperatorGreaterOrEqual:
		satisfied = current >= threshold
	case vo.OperatorEqual:
		satisfied = current == threshold
	case vo.OperatorNotEqual:
		satisfied = current != threshold
	default:
		return false, errors.NewValidationError(fmt.Sprintf("unsupported operator: %s", op))
	}

	if checkForBreach {
		return !satisfied, nil
	}
	return satisfied, nil
}

// BufferPercentage returns how far the current value is past the threshold
// as a percentage of the threshold. A satisfied covenant has a buffer of
// exactly 0. Equality operators are binary: 0 when satisfied, 100 when not.
func BufferPercentage(current, threshold float64, op vo.Operator) (float64, error) {
	satisfied, err := EvaluateCondition(current, threshold, op, false)
	if err != nil {
		return 0, err
	}
	if satisfied {
		return 0, nil
	}

	if !op.IsOrdered() {
		return 100, nil
	}

	if threshold == 0 {
		// No basis for a relative distance; report the full magnitude.
		return 100, nil
	}

	return math.Abs(current-threshold) / math.Abs(threshold) * 100, nil
}

// DistanceToThresholdPct returns the relative distance between the current
// value and the threshold as a percentage of the threshold, regardless of
// which side the value sits on. For a satisfied covenant this is the
// remaining headroom; for a breached one it equals the breach magnitude.
// Warning-path alert severity is derived from this value.
func DistanceToThresholdPct(current, threshold float64) float64 {
	if threshold == 0 {
		return 100
	}
	return math.Abs(current-threshold) / math.Abs(threshold) * 100
}

// DetermineStatus classifies the current value against the threshold. A
// breached condition is breached regardless of margin. Otherwise the
// normalized distance to the threshold decides between warning and
// compliant. The != operator has no warning zone.
func DetermineStatus(current, threshold float64, op vo.Operator, warningMargin float64) (vo.HealthStatus, error) {
	breached, err := EvaluateCondition(current, threshold, op, true)
	if err != nil {
		return "", err
	}
	if breached {
		return vo.StatusBreached, nil
	}

	if op == vo.OperatorNotEqual {
		return vo.StatusCompliant, nil
	}

	if threshold == 0 {
		return vo.StatusCompliant, nil
	}

	distance := math.Abs(current-threshold) / math.Abs(threshold)
	if distance <= warningMargin {
		return vo.StatusWarning, nil
	}
	return vo.StatusCompliant, nil
}

// Evaluate runs the full calculus for one covenant observation: breach
// check, buffer, status, trend over the history, and the days-to-breach
// estimate from the fitted slope.
type Evaluation struct {
	Status       vo.HealthStatus
	Trend        vo.TrendDirection
	BufferPct    float64
	Slope        float64
	DaysToBreach *float64
}

func (p Policy) Evaluate(current, threshold float64, op vo.Operator, history []float64) (*Evaluation, error) {
	status, err := DetermineStatus(current, threshold, op, p.WarningMargin)
	if err != nil {
		return nil, err
	}

	slope := Slope(history)
	trend := p.TrendFromSlope(slope)

	return &Evaluation{
		Status:       status,
		Trend:        trend,
		BufferPct:    DistanceToThresholdPct(current, threshold),
		Slope:        slope,
		DaysToBreach: DaysToBreach(current, threshold, op, slope, p.PeriodsPerYear),
	}, nil
}
