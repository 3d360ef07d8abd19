package alert

import (
	"fmt"
	"time"

	vo "covena/internal/domain/alert/valueobjects"
	"covena/internal/domain/compliance"
	covenantvo "covena/internal/domain/covenant/valueobjects"
)

// StatusChangeEvent describes a covenant health transition observed during a
// recomputation: the stored status before the overwrite and the freshly
// computed one, with the metric snapshot that produced it.
type StatusChangeEvent struct {
	CovenantID     uint
	ContractID     uint
	BankID         uint
	CovenantName   string
	MetricName     string
	PreviousStatus covenantvo.HealthStatus
	NewStatus      covenantvo.HealthStatus
	CurrentValue   float64
	ThresholdValue float64
	Operator       covenantvo.Operator
}

// Generator is the sole creation path for alerts. It turns a status-change
// event into an alert when, and only when, the transition is a degradation
// into warning or breached territory.
type Generator struct {
	policy compliance.Policy
}

func NewGenerator(policy compliance.Policy) *Generator {
	return &Generator{policy: policy}
}

// FromStatusChange returns the alert for a degrading transition, or nil when
// the event does not warrant one (status unchanged or improved, or the new
// status is compliant). Breaches are always critical; warning severity is
// derived from the buffer percentage and is never critical.
func (g *Generator) FromStatusChange(ev StatusChangeEvent) (*Alert, error) {
	if ev.CovenantID == 0 {
		return nil, fmt.Errorf("covenant ID is required")
	}
	if ev.ContractID == 0 {
		return nil, fmt.Errorf("contract ID is required")
	}
	if ev.BankID == 0 {
		return nil, fmt.Errorf("bank ID is required")
	}
	if !ev.PreviousStatus.IsValid() {
		return nil, fmt.Errorf("invalid previous status")
	}
	if !ev.NewStatus.IsValid() {
		return nil, fmt.Errorf("invalid new status")
	}

	if ev.NewStatus.IsCompliant() {
		return nil, nil
	}
	if !ev.NewStatus.IsDegradationFrom(ev.PreviousStatus) {
		return nil, nil
	}

	var (
		alertType vo.AlertType
		severity  vo.Severity
	)
	if ev.NewStatus.IsBreached() {
		alertType = vo.TypeBreach
		severity = vo.SeverityCritical
	} else {
		alertType = vo.TypeWarning
		bufferPct := compliance.DistanceToThresholdPct(ev.CurrentValue, ev.ThresholdValue)
		severity = g.policy.SeverityForBuffer(bufferPct)
	}

	now := time.Now()
	a := &Alert{
		covenantID:         ev.CovenantID,
		contractID:         ev.ContractID,
		bankID:             ev.BankID,
		alertType:          alertType,
		severity:           severity,
		title:              buildTitle(ev, alertType),
		description:        buildDescription(ev, alertType),
		triggerMetricValue: ev.CurrentValue,
		thresholdValue:     ev.ThresholdValue,
		status:             vo.StatusNew,
		triggeredAt:        now,
		createdAt:          now,
		updatedAt:          now,
	}
	return a, nil
}

func buildTitle(ev StatusChangeEvent, alertType vo.AlertType) string {
	if alertType.IsBreach() {
		return fmt.Sprintf("Covenant breach: %s", ev.CovenantName)
	}
	return fmt.Sprintf("Covenant warning: %s", ev.CovenantName)
}

func buildDescription(ev StatusChangeEvent, alertType vo.AlertType) string {
	if alertType.IsBreach() {
		return fmt.Sprintf(
			"%s breached its covenant %q: %s is %g against a threshold of %s %g.",
			ev.MetricName, ev.CovenantName, ev.MetricName, ev.CurrentValue, ev.Operator, ev.ThresholdValue,
		)
	}
	return fmt.Sprintf(
		"%s is approaching the limit of covenant %q: %s is %g against a threshold of %s %g.",
		ev.MetricName, ev.CovenantName, ev.MetricName, ev.CurrentValue, ev.Operator, ev.ThresholdValue,
	)
}
