package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/authorization"
	"covena/internal/domain/contract"
	"covena/internal/domain/covenant"
	covenantvo "covena/internal/domain/covenant/valueobjects"
	"covena/internal/domain/report"
	"covena/internal/shared/errors"
)

func analystActor(t *testing.T) *authorization.AuthUser {
	t.Helper()
	u, err := authorization.NewAuthUser(5, authorization.RoleAnalyst, 7)
	require.NoError(t, err)
	return u
}

func reportFixtures(t *testing.T) (*mockHealthRepository, *mockAlertRepository, *mockContractRepository) {
	t.Helper()

	h, err := covenant.NewHealth(1, 100, 7, covenantvo.StatusBreached, covenantvo.TrendDeteriorating, 14.3, 4.0, nil)
	require.NoError(t, err)
	c, err := contract.ReconstructContract(
		100, 7, "Acme Industrial", 10_000_000,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
		"active", time.Now(), time.Now(),
	)
	require.NoError(t, err)

	healthRepo := &mockHealthRepository{
		ListByBankIDFunc: func(ctx context.Context, bankID uint) ([]*covenant.Health, error) {
			return []*covenant.Health{h}, nil
		},
	}
	contractRepo := &mockContractRepository{
		ListByBankIDFunc: func(ctx context.Context, bankID uint) ([]*contract.Contract, error) {
			return []*contract.Contract{c}, nil
		},
	}
	return healthRepo, &mockAlertRepository{}, contractRepo
}

func TestGeneratePortfolioReportUseCase_Execute_WithNarrative(t *testing.T) {
	healthRepo, alertRepo, contractRepo := reportFixtures(t)

	analyzer := &mockRiskAnalyzer{
		AnalyzeRiskFunc: func(ctx context.Context, summary *report.PortfolioSummary) (*RiskAnalysis, error) {
			return &RiskAnalysis{
				RiskScore:          8.1,
				RiskFactors:        []string{"leverage covenant breached"},
				RecommendedActions: []string{"engage borrower"},
				NarrativeSummary:   "## Portfolio at risk",
				Confidence:         0.92,
			}, nil
		},
	}
	renderer := &mockNarrativeRenderer{
		RenderHTMLFunc: func(md string) (string, error) {
			return "<h2>Portfolio at risk</h2>", nil
		},
	}

	uc := NewGeneratePortfolioReportUseCase(healthRepo, alertRepo, contractRepo, analyzer, renderer, &mockLogger{})
	summary, err := uc.Execute(context.Background(), GeneratePortfolioReportQuery{Actor: analystActor(t)})

	require.NoError(t, err)
	assert.Equal(t, uint(7), summary.BankID)
	assert.Equal(t, 1, summary.TotalContracts)
	assert.Equal(t, 1, summary.Statuses.Breached)
	assert.Equal(t, "## Portfolio at risk", summary.Narrative)
	assert.Equal(t, "<h2>Portfolio at risk</h2>", summary.NarrativeHTML)
	assert.Equal(t, []string{"leverage covenant breached"}, summary.RiskFactors)
}

func TestGeneratePortfolioReportUseCase_Execute_AnalyzerFailureDegradesGracefully(t *testing.T) {
	healthRepo, alertRepo, contractRepo := reportFixtures(t)

	analyzer := &mockRiskAnalyzer{
		AnalyzeRiskFunc: func(ctx context.Context, summary *report.PortfolioSummary) (*RiskAnalysis, error) {
			return nil, stderrors.New("summarizer timeout")
		},
	}

	uc := NewGeneratePortfolioReportUseCase(healthRepo, alertRepo, contractRepo, analyzer, nil, &mockLogger{})
	summary, err := uc.Execute(context.Background(), GeneratePortfolioReportQuery{Actor: analystActor(t)})

	// The report completes without a narrative.
	require.NoError(t, err)
	assert.Empty(t, summary.Narrative)
	assert.Empty(t, summary.NarrativeHTML)
	assert.Equal(t, 1, summary.TotalCovenants)
	assert.Equal(t, 1, summary.Statuses.Breached)
}

func TestGeneratePortfolioReportUseCase_Execute_DataStoreFailureIsFatal(t *testing.T) {
	_, alertRepo, contractRepo := reportFixtures(t)

	healthRepo := &mockHealthRepository{
		ListByBankIDFunc: func(ctx context.Context, bankID uint) ([]*covenant.Health, error) {
			return nil, stderrors.New("connection refused")
		},
	}

	uc := NewGeneratePortfolioReportUseCase(healthRepo, alertRepo, contractRepo, nil, nil, &mockLogger{})
	summary, err := uc.Execute(context.Background(), GeneratePortfolioReportQuery{Actor: analystActor(t)})

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.IsCollaboratorError(err))
}

func TestGeneratePortfolioReportUseCase_Execute_ViewerForbidden(t *testing.T) {
	healthRepo, alertRepo, contractRepo := reportFixtures(t)

	viewer, err := authorization.NewAuthUser(6, authorization.RoleViewer, 7)
	require.NoError(t, err)

	uc := NewGeneratePortfolioReportUseCase(healthRepo, alertRepo, contractRepo, nil, nil, &mockLogger{})
	_, err = uc.Execute(context.Background(), GeneratePortfolioReportQuery{Actor: viewer})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
