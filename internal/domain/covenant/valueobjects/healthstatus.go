package valueobjects

import "fmt"

// HealthStatus is the evaluated compliance state of a covenant.
type HealthStatus string

const (
	StatusCompliant HealthStatus = "compliant"
	StatusWarning   HealthStatus = "warning"
	StatusBreached  HealthStatus = "breached"
)

var validHealthStatuses = map[HealthStatus]bool{
	StatusCompliant: true,
	StatusWarning:   true,
	StatusBreached:  true,
}

// healthStatusRank orders statuses by severity of non-compliance.
var healthStatusRank = map[HealthStatus]int{
	StatusCompliant: 0,
	StatusWarning:   1,
	StatusBreached:  2,
}

func NewHealthStatus(s string) (HealthStatus, error) {
	hs := HealthStatus(s)
	if !hs.IsValid() {
		return "", fmt.Errorf("invalid health status: %s", s)
	}
	return hs, nil
}

func (hs HealthStatus) String() string {
	return string(hs)
}

func (hs HealthStatus) IsValid() bool {
	return validHealthStatuses[hs]
}

func (hs HealthStatus) IsCompliant() bool {
	return hs == StatusCompliant
}

func (hs HealthStatus) IsWarning() bool {
	return hs == StatusWarning
}

func (hs HealthStatus) IsBreached() bool {
	return hs == StatusBreached
}

// Rank returns the severity rank under compliant < warning < breached.
func (hs HealthStatus) Rank() int {
	return healthStatusRank[hs]
}

// IsDegradationFrom reports whether moving from prev to hs worsens
// compliance. Alerts are only generated on degradations.
func (hs HealthStatus) IsDegradationFrom(prev HealthStatus) bool {
	return hs.Rank() > prev.Rank()
}
