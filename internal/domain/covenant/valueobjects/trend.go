package valueobjects

import "fmt"

// TrendDirection is the directional slope of a covenant metric's history.
//
// The sign convention is value-based, not compliance-based: a rising value is
// always "improving" even for ceiling covenants where a decline would be
// favorable. This matches the historical behavior consumers depend on.
type TrendDirection string

const (
	TrendImproving     TrendDirection = "improving"
	TrendStable        TrendDirection = "stable"
	TrendDeteriorating TrendDirection = "deteriorating"
)

var validTrendDirections = map[TrendDirection]bool{
	TrendImproving:     true,
	TrendStable:        true,
	TrendDeteriorating: true,
}

func NewTrendDirection(s string) (TrendDirection, error) {
	td := TrendDirection(s)
	if !td.IsValid() {
		return "", fmt.Errorf("invalid trend direction: %s", s)
	}
	return td, nil
}

func (td TrendDirection) String() string {
	return string(td)
}

func (td TrendDirection) IsValid() bool {
	return validTrendDirections[td]
}

func (td TrendDirection) IsStable() bool {
	return td == TrendStable
}

func (td TrendDirection) IsDeteriorating() bool {
	return td == TrendDeteriorating
}
