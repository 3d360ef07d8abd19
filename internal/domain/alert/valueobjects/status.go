package valueobjects

import "fmt"

// AlertStatus is the lifecycle state of an alert.
type AlertStatus string

const (
	StatusNew          AlertStatus = "new"
	StatusAcknowledged AlertStatus = "acknowledged"
	StatusResolved     AlertStatus = "resolved"
	StatusEscalated    AlertStatus = "escalated"
)

var validAlertStatuses = map[AlertStatus]bool{
	StatusNew:          true,
	StatusAcknowledged: true,
	StatusResolved:     true,
	StatusEscalated:    true,
}

// Resolved is terminal: no transitions out.
var alertStatusTransitions = map[AlertStatus][]AlertStatus{
	StatusNew: {
		StatusAcknowledged,
		StatusEscalated,
	},
	StatusAcknowledged: {
		StatusResolved,
		StatusEscalated,
	},
	StatusEscalated: {
		StatusAcknowledged,
	},
	StatusResolved: {},
}

func NewAlertStatus(s string) (AlertStatus, error) {
	as := AlertStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid alert status: %s", s)
	}
	return as, nil
}

func (as AlertStatus) String() string {
	return string(as)
}

func (as AlertStatus) IsValid() bool {
	return validAlertStatuses[as]
}

func (as AlertStatus) CanTransitionTo(newStatus AlertStatus) bool {
	allowed, ok := alertStatusTransitions[as]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (as AlertStatus) IsNew() bool {
	return as == StatusNew
}

func (as AlertStatus) IsAcknowledged() bool {
	return as == StatusAcknowledged
}

func (as AlertStatus) IsResolved() bool {
	return as == StatusResolved
}

func (as AlertStatus) IsEscalated() bool {
	return as == StatusEscalated
}
