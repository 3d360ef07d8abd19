package valueobjects

import "fmt"

// CheckFrequency is how often a covenant is contractually tested.
type CheckFrequency string

const (
	FrequencyMonthly    CheckFrequency = "monthly"
	FrequencyQuarterly  CheckFrequency = "quarterly"
	FrequencySemiAnnual CheckFrequency = "semi_annual"
	FrequencyAnnual     CheckFrequency = "annual"
)

var validFrequencies = map[CheckFrequency]bool{
	FrequencyMonthly:    true,
	FrequencyQuarterly:  true,
	FrequencySemiAnnual: true,
	FrequencyAnnual:     true,
}

func NewCheckFrequency(s string) (CheckFrequency, error) {
	f := CheckFrequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid check frequency: %s", s)
	}
	return f, nil
}

func (f CheckFrequency) String() string {
	return string(f)
}

func (f CheckFrequency) IsValid() bool {
	return validFrequencies[f]
}

// PeriodsPerYear is the number of observations a year of history holds at
// this frequency.
func (f CheckFrequency) PeriodsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencySemiAnnual:
		return 2
	case FrequencyAnnual:
		return 1
	}
	return 4
}
