package alert

import (
	"fmt"
	"time"

	vo "covena/internal/domain/alert/valueobjects"
)

// Alert is a generated covenant notification. Alerts are created only by the
// Generator and mutated only through the lifecycle methods below; the core
// never deletes them.
type Alert struct {
	id                 uint
	covenantID         uint
	contractID         uint
	bankID             uint
	alertType          vo.AlertType
	severity           vo.Severity
	title              string
	description        string
	triggerMetricValue float64
	thresholdValue     float64
	status             vo.AlertStatus
	triggeredAt        time.Time
	acknowledgedAt     *time.Time
	acknowledgedBy     *uint
	resolutionNotes    string
	escalatedAt        *time.Time
	escalationReason   string
	createdAt          time.Time
	updatedAt          time.Time
}

func ReconstructAlert(
	id uint,
	covenantID uint,
	contractID uint,
	bankID uint,
	alertType vo.AlertType,
	severity vo.Severity,
	title string,
	description string,
	triggerMetricValue float64,
	thresholdValue float64,
	status vo.AlertStatus,
	triggeredAt time.Time,
	acknowledgedAt *time.Time,
	acknowledgedBy *uint,
	resolutionNotes string,
	escalatedAt *time.Time,
	escalationReason string,
	createdAt, updatedAt time.Time,
) (*Alert, error) {
	if id == 0 {
		return nil, fmt.Errorf("alert ID cannot be zero")
	}
	if covenantID == 0 {
		return nil, fmt.Errorf("covenant ID is required")
	}
	if !alertType.IsValid() {
		return nil, fmt.Errorf("invalid alert type")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Alert{
		id:                 id,
		covenantID:         covenantID,
		contractID:         contractID,
		bankID:             bankID,
		alertType:          alertType,
		severity:           severity,
		title:              title,
		description:        description,
		triggerMetricValue: triggerMetricValue,
		thresholdValue:     thresholdValue,
		status:             status,
		triggeredAt:        triggeredAt,
		acknowledgedAt:     acknowledgedAt,
		acknowledgedBy:     acknowledgedBy,
		resolutionNotes:    resolutionNotes,
		escalatedAt:        escalatedAt,
		escalationReason:   escalationReason,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (a *Alert) ID() uint                    { return a.id }
func (a *Alert) CovenantID() uint            { return a.covenantID }
func (a *Alert) ContractID() uint            { return a.contractID }
func (a *Alert) BankID() uint                { return a.bankID }
func (a *Alert) Type() vo.AlertType          { return a.alertType }
func (a *Alert) Severity() vo.Severity       { return a.severity }
func (a *Alert) Title() string               { return a.title }
func (a *Alert) Description() string         { return a.description }
func (a *Alert) TriggerMetricValue() float64 { return a.triggerMetricValue }
func (a *Alert) ThresholdValue() float64     { return a.thresholdValue }
func (a *Alert) Status() vo.AlertStatus      { return a.status }
func (a *Alert) TriggeredAt() time.Time      { return a.triggeredAt }
func (a *Alert) AcknowledgedAt() *time.Time  { return a.acknowledgedAt }
func (a *Alert) AcknowledgedBy() *uint       { return a.acknowledgedBy }
func (a *Alert) ResolutionNotes() string     { return a.resolutionNotes }
func (a *Alert) EscalatedAt() *time.Time     { return a.escalatedAt }
func (a *Alert) EscalationReason() string    { return a.escalationReason }
func (a *Alert) CreatedAt() time.Time        { return a.createdAt }
func (a *Alert) UpdatedAt() time.Time        { return a.updatedAt }

func (a *Alert) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("alert ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("alert ID cannot be zero")
	}
	a.id = id
	return nil
}

// Acknowledge moves the alert to acknowledged on behalf of a user. Reachable
// from new and from escalated (sign-off on an escalated alert). Optional
// notes are attached immediately.
func (a *Alert) Acknowledge(userID uint, notes string) error {
	if userID == 0 {
		return fmt.Errorf("acknowledging user ID is required")
	}
	if !a.status.CanTransitionTo(vo.StatusAcknowledged) {
		return fmt.Errorf("cannot acknowledge alert with status %s", a.status)
	}

	now := time.Now()
	a.status = vo.StatusAcknowledged
	a.acknowledgedAt = &now
	a.acknowledgedBy = &userID
	if notes != "" {
		a.resolutionNotes = notes
	}
	a.updatedAt = now
	return nil
}

// Resolve closes out an acknowledged alert. Terminal state.
func (a *Alert) Resolve(notes string) error {
	if !a.status.CanTransitionTo(vo.StatusResolved) {
		return fmt.Errorf("cannot resolve alert with status %s", a.status)
	}

	a.status = vo.StatusResolved
	if notes != "" {
		a.resolutionNotes = notes
	}
	a.updatedAt = time.Now()
	return nil
}

// Escalate raises severity exactly one level, saturating at critical, and
// records the escalation timestamp and reason. Driven by the external
// time-based policy, not by this entity.
func (a *Alert) Escalate(reason string) error {
	if len(reason) == 0 {
		return fmt.Errorf("escalation reason is required")
	}
	if !a.status.CanTransitionTo(vo.StatusEscalated) {
		return fmt.Errorf("cannot escalate alert with status %s", a.status)
	}

	now := time.Now()
	a.status = vo.StatusEscalated
	a.severity = a.severity.Escalated()
	a.escalatedAt = &now
	a.escalationReason = reason
	a.updatedAt = now
	return nil
}

// EligibleForEscalation reports whether the alert has sat unhandled long
// enough for the time-based escalation policy: still new, triggered at least
// olderThan before now.
func (a *Alert) EligibleForEscalation(olderThan time.Duration, now time.Time) bool {
	return a.status == vo.StatusNew && now.Sub(a.triggeredAt) >= olderThan
}

func (a *Alert) Validate() error {
	if a.covenantID == 0 {
		return fmt.Errorf("covenant ID is required")
	}
	if a.contractID == 0 {
		return fmt.Errorf("contract ID is required")
	}
	if a.bankID == 0 {
		return fmt.Errorf("bank ID is required")
	}
	if !a.alertType.IsValid() {
		return fmt.Errorf("invalid alert type")
	}
	if !a.severity.IsValid() {
		return fmt.Errorf("invalid severity")
	}
	if !a.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if len(a.title) == 0 {
		return fmt.Errorf("title is required")
	}
	return nil
}
