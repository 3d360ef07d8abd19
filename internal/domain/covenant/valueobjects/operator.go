package valueobjects

import "fmt"

// Operator is the comparison a covenant applies between the observed metric
// value and its contractual threshold.
type Operator string

const (
	OperatorLessThan       Operator = "<"
	OperatorLessOrEqual    Operator = "<="
	OperatorGreaterThan    Operator = ">"
	OperatorGreaterOrEqual Operator = ">="
	OperatorEqual          Operator = "="
	OperatorNotEqual       Operator = "!="
)

var validOperators = map[Operator]bool{
	OperatorLessThan:       true,
	OperatorLessOrEqual:    true,
	OperatorGreaterThan:    true,
	OperatorGreaterOrEqual: true,
	OperatorEqual:          true,
	OperatorNotEqual:       true,
}

func NewOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.IsValid() {
		return "", fmt.Errorf("invalid operator: %s", s)
	}
	return op, nil
}

func (o Operator) String() string {
	return string(o)
}

func (o Operator) IsValid() bool {
	return validOperators[o]
}

// IsOrdered reports whether the operator defines an ordered comparison.
// Equality operators have no direction, so no warning zone and no
// days-to-breach estimate.
func (o Operator) IsOrdered() bool {
	switch o {
	case OperatorLessThan, OperatorLessOrEqual, OperatorGreaterThan, OperatorGreaterOrEqual:
		return true
	}
	return false
}

// IsUpperBound reports whether the covenant is satisfied below the threshold
// (a ceiling, e.g. Debt/EBITDA <= 3.0).
func (o Operator) IsUpperBound() bool {
	return o == OperatorLessThan || o == OperatorLessOrEqual
}

// IsLowerBound reports whether the covenant is satisfied above the threshold
// (a floor, e.g. DSCR >= 1.25).
func (o Operator) IsLowerBound() bool {
	return o == OperatorGreaterThan || o == OperatorGreaterOrEqual
}
