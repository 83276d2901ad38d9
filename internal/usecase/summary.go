package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"FinModels/internal/domain/models"
	"FinModels/pkg/config"
	xhttp "FinModels/pkg/http"
	applogger "FinModels/pkg/logger"
)

// summaryMapping describes how one valuation endpoint flattens into a
// dashboard entry. The headline key is probed first, then the fallback.
type summaryMapping struct {
	Series      string
	Model       string
	HeadlineKey string
	FallbackKey string
	Currency    string
}

var summaryMappings = map[string]summaryMapping{
	"asset/dda":         {Series: "Asset & Depreciation", Model: "FM-DDA", HeadlineKey: "final_figure", FallbackKey: "total_depreciation", Currency: "KRW"},
	"asset/lam":         {Series: "Asset & Depreciation", Model: "FM-LAM", HeadlineKey: "final_figure", FallbackKey: "interest_expense", Currency: "KRW"},
	"asset/rvm":         {Series: "Asset & Depreciation", Model: "FM-RVM", HeadlineKey: "final_figure", FallbackKey: "total_extraction_value", Currency: "KRW"},
	"expense/ceem":      {Series: "Expense & Profitability", Model: "FM-CEEM", HeadlineKey: "final_figure", FallbackKey: "total_consumable_usage_value", Currency: "KRW"},
	"expense/bdm":       {Series: "Expense & Profitability", Model: "FM-BDM", HeadlineKey: "final_figure", FallbackKey: "interest_cost", Currency: "KRW"},
	"expense/belm":      {Series: "Expense & Profitability", Model: "FM-BELM", HeadlineKey: "final_bad_debt_ratio", FallbackKey: "actual_interest_cost", Currency: "KRW"},
	"risk/cprm":         {Series: "Capital & Risk Derivatives", Model: "FM-CPRM", HeadlineKey: "final_figure", FallbackKey: "final_adjusted_convertible_bond_rate", Currency: "KRW"},
	"risk/c-ocim":       {Series: "Capital & Risk Derivatives", Model: "FM-C-OCIM", HeadlineKey: "final_figure", FallbackKey: "compound_adjustment_amount", Currency: "KRW"},
	"risk/farex":        {Series: "Capital & Risk Derivatives", Model: "FM-FAREX", HeadlineKey: "final_figure", FallbackKey: "final_adjusted_rate", Currency: "KRW"},
	"analysis/tct-beam": {Series: "Advanced Analytics", Model: "FM-TCT-BEAM", HeadlineKey: "final_figure", FallbackKey: "cumulative_fixed_cost", Currency: "KRW"},
	"analysis/cpmrv":    {Series: "Advanced Analytics", Model: "FM-CPMRV", HeadlineKey: "final_figure", FallbackKey: "relative_asset_risk", Currency: "USD"},
	"analysis/dcbpra":   {Series: "Advanced Analytics", Model: "FM-DCBPRA", HeadlineKey: "final_figure", FallbackKey: "baseline_capm_return", Currency: "KRW"},
	"service/psras":     {Series: "Insurance & Service Revenue", Model: "FM-PSRAS", HeadlineKey: "final_figure", FallbackKey: "pure_performance_break_even", Currency: "KRW"},
	"probability/lsmrv": {Series: "Probability Revaluation", Model: "FM-LSMRV", HeadlineKey: "final_figure", FallbackKey: "expected_adjustment_value", Currency: "KRW"},
}

// RegisteredEndpoints returns the endpoints the bridge can map, sorted.
func RegisteredEndpoints() []string {
	endpoints := make([]string, 0, len(summaryMappings))
	for endpoint := range summaryMappings {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)
	return endpoints
}

type summaryReport struct {
	GeneratedAt string                `json:"generated_at"`
	Entries     []models.SummaryEntry `json:"entries"`
}

// SummaryBridge flattens model outputs into summary entries and forwards
// them to the external summary API.
type SummaryBridge struct {
	client *xhttp.Client
	cfg    *config.Config
	logger *applogger.Logger
}

func NewSummaryBridge(cfg *config.Config, client *xhttp.Client, l *applogger.Logger) *SummaryBridge {
	return &SummaryBridge{client: client, cfg: cfg, logger: l}
}

func (b *SummaryBridge) Enabled() bool {
	return b.cfg.Summary.Enabled
}

// MapEntry converts one endpoint's output into a summary entry.
func (b *SummaryBridge) MapEntry(endpoint string, output map[string]interface{}) (models.SummaryEntry, error) {
	mapping, ok := summaryMappings[strings.Trim(endpoint, "/")]
	if !ok {
		return models.SummaryEntry{}, fmt.Errorf("endpoint %q is not registered for summary mapping", endpoint)
	}

	headline, ok := numericField(output, mapping.HeadlineKey)
	if !ok {
		headline, ok = numericField(output, mapping.FallbackKey)
	}
	if !ok {
		return models.SummaryEntry{}, fmt.Errorf(
			"no headline amount: %q and %q missing from output for %q",
			mapping.HeadlineKey, mapping.FallbackKey, endpoint,
		)
	}

	return models.SummaryEntry{
		Series:         mapping.Series,
		Model:          mapping.Model,
		HeadlineAmount: headline,
		Currency:       mapping.Currency,
		Details:        output,
	}, nil
}

// Forward maps all items and posts the report. Items that cannot be mapped
// are skipped and reported back, not dropped silently.
func (b *SummaryBridge) Forward(ctx context.Context, items []models.SummaryBridgeItem) (*models.SummaryBridgeResponse, error) {
	resp := &models.SummaryBridgeResponse{}
	for _, item := range items {
		entry, err := b.MapEntry(item.Endpoint, item.Output)
		if err != nil {
			b.logger.Warn("summary entry skipped",
				applogger.String("endpoint", item.Endpoint),
				applogger.Error(err),
			)
			resp.Skipped = append(resp.Skipped, fmt.Sprintf("%s: %v", item.Endpoint, err))
			continue
		}
		resp.Entries = append(resp.Entries, entry)
	}

	if len(resp.Entries) == 0 {
		return resp, nil
	}

	report := summaryReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:     resp.Entries,
	}
	url := strings.TrimRight(b.cfg.Summary.BaseURL, "/") + "/summary/report"
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    url,
		Headers: map[string]string{
			"X-Internal-Token": b.cfg.Summary.InternalToken,
		},
		Body: report,
	}, nil)
	if err != nil {
		b.logger.Error("summary report delivery failed",
			applogger.String("url", url),
			applogger.Int("entries", len(resp.Entries)),
			applogger.Error(err),
		)
		return nil, xhttp.BadGatewayError("summary API rejected the report").WithError(err)
	}

	resp.Forwarded = len(resp.Entries)
	b.logger.Info("summary report forwarded",
		applogger.Int("entries", resp.Forwarded),
		applogger.Int("skipped", len(resp.Skipped)),
	)
	return resp, nil
}

func numericField(output map[string]interface{}, key string) (float64, bool) {
	raw, ok := output[key]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
