package report

import (
	"math"
	"sort"
	"time"

	"covena/internal/domain/alert"
	"covena/internal/domain/contract"
	"covena/internal/domain/covenant"
)

// Risk score weights. A breached covenant dominates; open alerts add by
// severity. Scores saturate at 10.
const (
	maxRiskScore          = 10.0
	breachedCovenantScore = 3.0
	warningCovenantScore  = 1.0
	criticalAlertScore    = 2.0
	highAlertScore        = 1.0
	mediumAlertScore      = 0.5
	lowAlertScore         = 0.25
)

// Aggregator builds portfolio summaries from snapshot reads. Pure
// computation; the caller supplies the records and accepts that concurrent
// writes are not reflected.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate rolls the bank's covenant health, alerts and contracts into a
// PortfolioSummary. The narrative fields stay empty; the summarizer
// collaborator fills them in when available.
func (ag *Aggregator) Aggregate(
	bankID uint,
	healths []*covenant.Health,
	alerts []*alert.Alert,
	contracts []*contract.Contract,
) *PortfolioSummary {
	summary := &PortfolioSummary{
		BankID:         bankID,
		GeneratedAt:    time.Now(),
		TotalContracts: len(contracts),
		TotalCovenants: len(healths),
		BorrowerRisks:  []BorrowerRisk{},
	}

	type perContract struct {
		breached   int
		warning    int
		openAlerts int
		score      float64
	}
	byContract := make(map[uint]*perContract)
	getBucket := func(contractID uint) *perContract {
		b, ok := byContract[contractID]
		if !ok {
			b = &perContract{}
			byContract[contractID] = b
		}
		return b
	}

	for _, h := range healths {
		countStatus(&summary.Statuses, h.Status())
		countTrend(&summary.Trends, h.Trend())

		b := getBucket(h.ContractID())
		switch {
		case h.Status().IsBreached():
			b.breached++
			b.score += breachedCovenantScore
		case h.Status().IsWarning():
			b.warning++
			b.score += warningCovenantScore
		}
	}

	for _, a := range alerts {
		countAlert(&summary.Alerts, a.Status(), a.Severity())
		if !statusIsOpen(a.Status()) {
			continue
		}
		b := getBucket(a.ContractID())
		b.openAlerts++
		switch a.Severity().String() {
		case "critical":
			b.score += criticalAlertScore
		case "high":
			b.score += highAlertScore
		case "medium":
			b.score += mediumAlertScore
		default:
			b.score += lowAlertScore
		}
	}

	if summary.TotalCovenants > 0 {
		summary.ComplianceRate = float64(summary.Statuses.Compliant) / float64(summary.TotalCovenants) * 100
	}

	var totalScore float64
	for _, c := range contracts {
		summary.TotalPrincipal += c.PrincipalAmount()

		risk := BorrowerRisk{
			ContractID:      c.ID(),
			BorrowerName:    c.BorrowerName(),
			PrincipalAmount: c.PrincipalAmount(),
			ContractStatus:  c.Status(),
		}
		if b, ok := byContract[c.ID()]; ok {
			risk.BreachedCovenants = b.breached
			risk.WarningCovenants = b.warning
			risk.OpenAlerts = b.openAlerts
			risk.RiskScore = math.Min(maxRiskScore, b.score)
		}
		summary.BorrowerRisks = append(summary.BorrowerRisks, risk)
		totalScore += risk.RiskScore
	}

	// Highest-risk borrowers first, stable on contract id for equal scores.
	sort.SliceStable(summary.BorrowerRisks, func(i, j int) bool {
		if summary.BorrowerRisks[i].RiskScore != summary.BorrowerRisks[j].RiskScore {
			return summary.BorrowerRisks[i].RiskScore > summary.BorrowerRisks[j].RiskScore
		}
		return summary.BorrowerRisks[i].ContractID < summary.BorrowerRisks[j].ContractID
	})

	if len(contracts) > 0 {
		summary.RiskScore = math.Round(totalScore/float64(len(contracts))*100) / 100
	}

	return summary
}
