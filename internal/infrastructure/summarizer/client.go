package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	reportusecases "covena/internal/application/report/usecases"
	"covena/internal/domain/report"
	sharedConfig "covena/internal/shared/config"
	"covena/internal/shared/errors"
	"covena/internal/shared/logger"
)

const defaultTimeout = 10 * time.Second

// Client calls the external risk narrative service. It implements the report
// usecases' RiskAnalyzer; callers treat every failure as a soft degradation.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.SummarizerConfig, logger logger.Interface) *Client {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type analyzeRequest struct {
	BankID         uint    `json:"bank_id"`
	TotalContracts int     `json:"total_contracts"`
	TotalCovenants int     `json:"total_covenants"`
	TotalPrincipal float64 `json:"total_principal"`
	ComplianceRate float64 `json:"compliance_rate"`
	BreachedCount  int     `json:"breached_count"`
	WarningCount   int     `json:"warning_count"`
	OpenAlerts     int     `json:"open_alerts"`
	RiskScore      float64 `json:"risk_score"`
}

type analyzeResponse struct {
	RiskScore          float64  `json:"risk_score"`
	RiskFactors        []string `json:"risk_factors"`
	RecommendedActions []string `json:"recommended_actions"`
	NarrativeSummary   string   `json:"narrative_summary"`
	Confidence         float64  `json:"confidence"`
}

func (c *Client) AnalyzeRisk(ctx context.Context, summary *report.PortfolioSummary) (*reportusecases.RiskAnalysis, error) {
	payload := analyzeRequest{
		BankID:         summary.BankID,
		TotalContracts: summary.TotalContracts,
		TotalCovenants: summary.TotalCovenants,
		TotalPrincipal: summary.TotalPrincipal,
		ComplianceRate: summary.ComplianceRate,
		BreachedCount:  summary.Statuses.Breached,
		WarningCount:   summary.Statuses.Warning,
		OpenAlerts:     summary.Alerts.Open,
		RiskScore:      summary.RiskScore,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewCollaboratorError(fmt.Sprintf("summarizer request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewCollaboratorError(fmt.Sprintf("summarizer returned status %d", resp.StatusCode))
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.NewCollaboratorError(fmt.Sprintf("summarizer response unreadable: %v", err))
	}

	return &reportusecases.RiskAnalysis{
		RiskScore:          parsed.RiskScore,
		RiskFactors:        parsed.RiskFactors,
		RecommendedActions: parsed.RecommendedActions,
		NarrativeSummary:   parsed.NarrativeSummary,
		Confidence:         parsed.Confidence,
	}, nil
}
