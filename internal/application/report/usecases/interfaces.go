package usecases

import (
	"context"

	"covena/internal/domain/report"
)

// RiskAnalysis is the analyzer collaborator's verdict on a portfolio
// snapshot.
type RiskAnalysis struct {
	RiskScore          float64
	RiskFactors        []string
	RecommendedActions []string
	NarrativeSummary   string
	Confidence         float64
}

// RiskAnalyzer is the external summarizer. Implementations may fail at any
// time; callers must treat the narrative as optional.
type RiskAnalyzer interface {
	AnalyzeRisk(ctx context.Context, summary *report.PortfolioSummary) (*RiskAnalysis, error)
}

// NarrativeRenderer turns the analyzer's markdown narrative into sanitized
// HTML for report delivery.
type NarrativeRenderer interface {
	RenderHTML(markdown string) (string, error)
}

type GeneratePortfolioReportExecutor interface {
	Execute(ctx context.Context, query GeneratePortfolioReportQuery) (*report.PortfolioSummary, error)
}
