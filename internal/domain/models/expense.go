package models

// Requests and results for the expense & profitability series (CEEM, BDM, BELM).

type CEEMRequest struct {
	ExpenseLabel                    string   `json:"expense_label"`
	CumulativeUsageUnits            float64  `json:"cumulative_usage_units" validate:"required,gt=0"`
	CumulativeUsageDays             float64  `json:"cumulative_usage_days" validate:"required,gt=0"`
	CurrentUnitCost                 float64  `json:"current_unit_cost" validate:"required,gt=0"`
	QuantitativeUsageLimit          *float64 `json:"quantitative_usage_limit" validate:"omitempty,gt=0"`
	StandardValueOverride           *float64 `json:"standard_value_override" validate:"omitempty,gt=0"`
	PreviousYearStandardUsageValue  float64  `json:"previous_year_standard_usage_value" validate:"required,gt=0"`
	UsefulLifeYears                 float64  `json:"useful_life_years" validate:"required,gt=0"`
	ElapsedYears                    float64  `json:"elapsed_years" validate:"gte=0"`
	Beta                            float64  `json:"beta" default:"1.0"`
}

// Standard-value source labels, in selection priority order.
const (
	StandardSourceOverride        = "override"
	StandardSourceQuantitative    = "quantitative_limit"
	StandardSourceNonQuantitative = "non_quantitative"
)

type CEEMResult struct {
	ExpenseLabel                   string        `json:"expense_label,omitempty"`
	DailyAverageUsageUnits         float64       `json:"daily_average_usage_units"`
	StandardValueNonQuantitative   float64       `json:"standard_usage_value_non_quantitative"`
	StandardValueQuantitative      *float64      `json:"standard_usage_value_quantitative,omitempty"`
	SelectedStandardUsageValue     float64       `json:"selected_standard_usage_value"`
	SelectedStandardSource         string        `json:"selected_standard_source"`
	TotalConsumableUsageValue      float64       `json:"total_consumable_usage_value"`
	UsageChangeRate                float64       `json:"usage_change_rate"`
	MarketChangeIndex              float64       `json:"market_change_index"`
	MarketSensitivityValue         float64       `json:"market_sensitivity_value"`
	FinalFigure                    float64       `json:"final_figure"`
	Stages                         []StageResult `json:"stages"`
}

type BDMRequest struct {
	BondLabel                string  `json:"bond_label"`
	BondIssuePrice           float64 `json:"bond_issue_price" validate:"required,gt=0"`
	BondContractDays         float64 `json:"bond_contract_days" validate:"required,gt=0"`
	ElapsedDaysSinceContract float64 `json:"elapsed_days_since_contract" validate:"gte=0"`
	PreviousValuation        float64 `json:"previous_valuation" validate:"omitempty,gt=0"`
	CurrentFairValue         float64 `json:"current_fair_value" validate:"required,gt=0"`
}

type BDMResult struct {
	BondLabel           string        `json:"bond_label,omitempty"`
	DailyEstimatedUsage float64       `json:"daily_estimated_usage"`
	EstimatedValuePS    float64       `json:"estimated_value_ps"`
	MarketBeta          float64       `json:"market_beta"`
	InterestCost        float64       `json:"interest_cost"`
	InterestType        string        `json:"interest_type"`
	FinalFigure         float64       `json:"final_figure"`
	Stages              []StageResult `json:"stages"`
}

type BELMRequest struct {
	DebtorLabel                      string  `json:"debtor_label"`
	DebtorTotalAmount                float64 `json:"debtor_total_amount" validate:"gte=0"`
	RemainingYears                   float64 `json:"remaining_years" validate:"required,gt=0"`
	ElapsedDays                      float64 `json:"elapsed_days" validate:"gte=0"`
	ActualRepaymentAmount            float64 `json:"actual_repayment_amount" validate:"gte=0"`
	InterestRate                     float64 `json:"interest_rate" validate:"gte=0"`
	TotalDebtBalanceAllCounterparties float64 `json:"total_debt_balance_all_counterparties" validate:"required,gt=0"`
	LastYearCounterpartyRepayment    float64 `json:"last_year_counterparty_repayment" validate:"gte=0"`
	LastYearTotalRepaymentAll        float64 `json:"last_year_total_repayment_all" validate:"required,gt=0"`
}

type BELMResult struct {
	DebtorLabel                  string        `json:"debtor_label,omitempty"`
	DailyEstimatedRepayment      float64       `json:"daily_estimated_repayment"`
	ExpectedRepaymentAtEvaluation float64      `json:"expected_repayment_at_evaluation"`
	InterestRateAdjustment       float64       `json:"interest_rate_adjustment"`
	ActualInterestCost           float64       `json:"actual_interest_cost"`
	PreliminaryBadDebtRatio      float64       `json:"preliminary_bad_debt_ratio"`
	FinalBadDebtRatio            float64       `json:"final_bad_debt_ratio"`
	FinalFigure                  float64       `json:"final_figure"`
	Stages                       []StageResult `json:"stages"`
}
