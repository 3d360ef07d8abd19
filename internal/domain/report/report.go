// Package report rolls covenant health, alerts and contracts into
// portfolio-level summaries with breach statistics, trend aggregates and
// per-borrower risk scores.
package report

import (
	"time"

	alertvo "covena/internal/domain/alert/valueobjects"
	covenantvo "covena/internal/domain/covenant/valueobjects"
)

// StatusBreakdown counts covenants by compliance status.
type StatusBreakdown struct {
	Compliant int `json:"compliant"`
	Warning   int `json:"warning"`
	Breached  int `json:"breached"`
}

// TrendBreakdown counts covenants by trend direction.
type TrendBreakdown struct {
	Improving     int `json:"improving"`
	Stable        int `json:"stable"`
	Deteriorating int `json:"deteriorating"`
}

// AlertBreakdown counts alerts by lifecycle status and severity.
type AlertBreakdown struct {
	Open         int `json:"open"` // new + escalated
	New          int `json:"new"`
	Acknowledged int `json:"acknowledged"`
	Resolved     int `json:"resolved"`
	Escalated    int `json:"escalated"`
	Critical     int `json:"critical"`
	High         int `json:"high"`
	Medium       int `json:"medium"`
	Low          int `json:"low"`
}

// BorrowerRisk is the per-borrower roll-up with a 0-10 risk score.
type BorrowerRisk struct {
	ContractID        uint    `json:"contract_id"`
	BorrowerName      string  `json:"borrower_name"`
	PrincipalAmount   float64 `json:"principal_amount"`
	ContractStatus    string  `json:"contract_status"`
	BreachedCovenants int     `json:"breached_covenants"`
	WarningCovenants  int     `json:"warning_covenants"`
	OpenAlerts        int     `json:"open_alerts"`
	RiskScore         float64 `json:"risk_score"`
}

// PortfolioSummary is the portfolio-level compliance report for one bank.
// Narrative is optional: it is absent whenever the summarizer collaborator
// is unavailable, and the report is still complete without it.
type PortfolioSummary struct {
	BankID          uint            `json:"bank_id"`
	GeneratedAt     time.Time       `json:"generated_at"`
	TotalContracts  int             `json:"total_contracts"`
	TotalCovenants  int             `json:"total_covenants"`
	TotalPrincipal  float64         `json:"total_principal"`
	ComplianceRate  float64         `json:"compliance_rate"`
	Statuses        StatusBreakdown `json:"statuses"`
	Trends          TrendBreakdown  `json:"trends"`
	Alerts          AlertBreakdown  `json:"alerts"`
	BorrowerRisks   []BorrowerRisk  `json:"borrower_risks"`
	Narrative       string          `json:"narrative,omitempty"`
	NarrativeHTML   string          `json:"narrative_html,omitempty"`
	RiskScore       float64         `json:"risk_score"`
	RiskFactors     []string        `json:"risk_factors,omitempty"`
	RecommendedActs []string        `json:"recommended_actions,omitempty"`
}

func statusIsOpen(s alertvo.AlertStatus) bool {
	return s == alertvo.StatusNew || s == alertvo.StatusEscalated
}

func countStatus(b *StatusBreakdown, s covenantvo.HealthStatus) {
	switch s {
	case covenantvo.StatusCompliant:
		b.Compliant++
	case covenantvo.StatusWarning:
		b.Warning++
	case covenantvo.StatusBreached:
		b.Breached++
	}
}

func countTrend(b *TrendBreakdown, t covenantvo.TrendDirection) {
	switch t {
	case covenantvo.TrendImproving:
		b.Improving++
	case covenantvo.TrendStable:
		b.Stable++
	case covenantvo.TrendDeteriorating:
		b.Deteriorating++
	}
}

func countAlert(b *AlertBreakdown, status alertvo.AlertStatus, severity alertvo.Severity) {
	switch status {
	case alertvo.StatusNew:
		b.New++
	case alertvo.StatusAcknowledged:
		b.Acknowledged++
	case alertvo.StatusResolved:
		b.Resolved++
	case alertvo.StatusEscalated:
		b.Escalated++
	}
	if statusIsOpen(status) {
		b.Open++
	}
	switch severity {
	case alertvo.SeverityCritical:
		b.Critical++
	case alertvo.SeverityHigh:
		b.High++
	case alertvo.SeverityMedium:
		b.Medium++
	case alertvo.SeverityLow:
		b.Low++
	}
}
