package models

// Requests and results for the asset & depreciation series (DDA, LAM, RVM).
// Request field names are the engine's wire contract and must stay stable.

type DDARequest struct {
	AssetLabel              string    `json:"asset_label"`
	AcquisitionCost         float64   `json:"acquisition_cost" validate:"required,gt=0"`
	SalvageValue            float64   `json:"salvage_value" validate:"gte=0"`
	UsefulLifeYears         int       `json:"useful_life_years" validate:"required,gt=0"`
	AdjustmentFactor        float64   `json:"adjustment_factor" default:"1.0" validate:"gt=0"`
	PlannedUsageDaysPerYear []float64 `json:"planned_usage_days_per_year" validate:"omitempty,dive,gte=0"`
	ActualUsageDaysPerYear  []float64 `json:"actual_usage_days_per_year" validate:"omitempty,dive,gte=0"`
	UnusedDaysPerYear       []float64 `json:"unused_days_per_year" validate:"omitempty,dive,gte=0"`
	MarketPriceSeries       []float64 `json:"market_price_series" validate:"omitempty,min=2"`
	UsageElasticity         float64   `json:"usage_elasticity" default:"1.0"`
	Beta                    float64   `json:"beta" default:"1.0"`
}

type DDAResult struct {
	AssetLabel        string         `json:"asset_label,omitempty"`
	UsageVariance     []float64      `json:"usage_variance"`
	MarketLogShock    []float64      `json:"market_log_shock"`
	CAPMBeta          float64        `json:"capm_beta"`
	TotalDepreciation float64        `json:"total_depreciation"`
	BookValue         float64        `json:"book_value"`
	MarketSensitivity float64        `json:"market_sensitivity"`
	UncappedValue     float64        `json:"uncapped_value"`
	WasCapped         bool           `json:"was_capped"`
	Trigger           TriggerOutcome `json:"trigger"`
	FinalFigure       float64        `json:"final_figure"`
	Stages            []StageResult  `json:"stages"`
}

type LAMRequest struct {
	LeaseLabel                string    `json:"lease_label"`
	InitialAssetValue         float64   `json:"initial_asset_value" validate:"required,gt=0"`
	LeaseTermYears            int       `json:"lease_term_years" validate:"required,gt=0"`
	DiscountRate              float64   `json:"discount_rate" validate:"required,gt=0"`
	ResidualValue             float64   `json:"residual_value" validate:"gte=0"`
	PlannedUsageDaysPerPeriod []float64 `json:"planned_usage_days_per_period" validate:"omitempty,dive,gte=0"`
	ActualUsageDaysPerPeriod  []float64 `json:"actual_usage_days_per_period" validate:"omitempty,dive,gte=0"`
	UnusedDaysPerPeriod       []float64 `json:"unused_days_per_period" validate:"omitempty,dive,gte=0"`
	ActualDailyUsageHours     []float64 `json:"actual_daily_usage_hours" validate:"omitempty,dive,gte=0"`
	StandardDailyUsageHours   []float64 `json:"standard_daily_usage_hours" validate:"omitempty,dive,gte=0"`
	MarketFairValues          []float64 `json:"market_fair_values" validate:"omitempty,min=2"`
	IFRSRevaluationLosses     []float64 `json:"ifrs_revaluation_losses" validate:"omitempty,dive,gte=0"`
	Beta                      float64   `json:"beta" default:"1.0"`
}

type LAMResult struct {
	LeaseLabel             string         `json:"lease_label,omitempty"`
	DailyLeaseAmortization float64        `json:"daily_lease_amortization"`
	UsageRatio             []float64      `json:"usage_ratio"`
	AmortizationTotal      float64        `json:"amortization_total"`
	InterestExpense        float64        `json:"interest_expense"`
	MarketChangeIndex      float64        `json:"market_change_index"`
	MarketSensitivity      float64        `json:"market_sensitivity"`
	BaselineRevaluation    float64        `json:"baseline_revaluation"`
	Trigger                TriggerOutcome `json:"trigger"`
	PostTriggerValue       float64        `json:"post_trigger_value"`
	RevaluationGainLoss    float64        `json:"revaluation_gain_loss"`
	TerminationAdjustment  float64        `json:"termination_adjustment"`
	WasCapped              bool           `json:"was_capped"`
	FinalFigure            float64        `json:"final_figure"`
	Stages                 []StageResult  `json:"stages"`
}

type RVMRequest struct {
	ResourceLabel                  string  `json:"resource_label"`
	CumulativeExtractionAmount     float64 `json:"cumulative_extraction_amount" validate:"required,gt=0"`
	CumulativeExtractionDays       float64 `json:"cumulative_extraction_days" validate:"required,gt=0"`
	TotalExtractionDaysAtEvaluation float64 `json:"total_extraction_days_at_evaluation" validate:"omitempty,gt=0"`
	CurrentUnitExtractionValue     float64 `json:"current_unit_extraction_value" validate:"required,gt=0"`
	PreviousExtractionValue        float64 `json:"previous_extraction_value" validate:"omitempty,gt=0"`
	TotalYearsOfUsefulLife         float64 `json:"total_years_of_useful_life" validate:"required,gt=0"`
	ElapsedYears                   float64 `json:"elapsed_years" validate:"gte=0"`
	Beta                           float64 `json:"beta" default:"1.0"`
}

type RVMResult struct {
	ResourceLabel           string        `json:"resource_label,omitempty"`
	DailyAverageExtraction  float64       `json:"daily_average_extraction"`
	StandardExtractionValue float64       `json:"standard_extraction_value"`
	TotalExtractionValue    float64       `json:"total_extraction_value"`
	ExtractionRate          float64       `json:"extraction_rate"`
	MarketChangeIndex       float64       `json:"market_change_index"`
	MarketSensitivity       float64       `json:"market_sensitivity"`
	FinalFigure             float64       `json:"final_figure"`
	Stages                  []StageResult `json:"stages"`
}
