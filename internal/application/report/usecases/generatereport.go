package usecases

import (
	"context"

	"covena/internal/domain/alert"
	"covena/internal/domain/authorization"
	"covena/internal/domain/contract"
	"covena/internal/domain/covenant"
	"covena/internal/domain/report"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

type GeneratePortfolioReportQuery struct {
	Actor *authorization.AuthUser
}

// GeneratePortfolioReportUseCase rolls a bank's compliance state into a
// portfolio summary. Repository reads are required and their failure is
// fatal; the risk analyzer is an optional collaborator whose failure only
// costs the narrative.
type GeneratePortfolioReportUseCase struct {
	healthRepo   covenant.HealthRepository
	alertRepo    alert.AlertRepository
	contractRepo contract.ContractRepository
	aggregator   *report.Aggregator
	analyzer     RiskAnalyzer
	renderer     NarrativeRenderer
	logger       logger.Interface
}

func NewGeneratePortfolioReportUseCase(
	healthRepo covenant.HealthRepository,
	alertRepo alert.AlertRepository,
	contractRepo contract.ContractRepository,
	analyzer RiskAnalyzer,
	renderer NarrativeRenderer,
	logger logger.Interface,
) *GeneratePortfolioReportUseCase {
	return &GeneratePortfolioReportUseCase{
		healthRepo:   healthRepo,
		alertRepo:    alertRepo,
		contractRepo: contractRepo,
		aggregator:   report.NewAggregator(),
		analyzer:     analyzer,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *GeneratePortfolioReportUseCase) Execute(ctx context.Context, query GeneratePortfolioReportQuery) (*report.PortfolioSummary, error) {
	if query.Actor == nil {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}
	if !authorization.CanGenerateReport(query.Actor, query.Actor.BankID) {
		return nil, errors.NewForbiddenError("not allowed to generate reports")
	}

	bankID := query.Actor.BankID

	healths, err := uc.healthRepo.ListByBankID(ctx, bankID)
	if err != nil {
		uc.logger.Errorw("failed to read covenant health for report", "error", err, "bank_id", bankID)
		return nil, errors.NewCollaboratorError("data store read failed: covenant health")
	}
	alerts, err := uc.alertRepo.ListByBankID(ctx, bankID)
	if err != nil {
		uc.logger.Errorw("failed to read alerts for report", "error", err, "bank_id", bankID)
		return nil, errors.NewCollaboratorError("data store read failed: alerts")
	}
	contracts, err := uc.contractRepo.ListByBankID(ctx, bankID)
	if err != nil {
		uc.logger.Errorw("failed to read contracts for report", "error", err, "bank_id", bankID)
		return nil, errors.NewCollaboratorError("data store read failed: contracts")
	}

	summary := uc.aggregator.Aggregate(bankID, healths, alerts, contracts)

	if uc.analyzer != nil {
		analysis, err := uc.analyzer.AnalyzeRisk(ctx, summary)
		if err != nil {
			uc.logger.Warnw("risk analyzer unavailable, report continues without narrative",
				"error", err, "bank_id", bankID)
		} else if analysis != nil {
			summary.Narrative = analysis.NarrativeSummary
			summary.RiskFactors = analysis.RiskFactors
			summary.RecommendedActs = analysis.RecommendedActions
			if uc.renderer != nil && analysis.NarrativeSummary != "" {
				html, err := uc.renderer.RenderHTML(analysis.NarrativeSummary)
				if err != nil {
					uc.logger.Warnw("narrative rendering failed", "error", err, "bank_id", bankID)
				} else {
					summary.NarrativeHTML = html
				}
			}
		}
	}

	uc.logger.Infow("portfolio report generated",
		"bank_id", bankID,
		"contracts", summary.TotalContracts,
		"covenants", summary.TotalCovenants,
		"risk_score", summary.RiskScore,
	)

	return summary, nil
}
