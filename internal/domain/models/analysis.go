package models

// Requests and results for the advanced analytics series
// (TCT-BEAM, CPMRV, DCBPRA, PSRAS, LSMRV).

type TCTBeamRequest struct {
	ModelLabel       string    `json:"model_label"`
	FixedCosts       []float64 `json:"fixed_costs" validate:"required,min=1,max=5,dive,gte=0"`
	VariableCosts    []float64 `json:"variable_costs" validate:"required,min=1,max=5,dive,gte=0"`
	OperatingProfits []float64 `json:"operating_profits" validate:"required,min=1,max=5"`
}

type TCTBeamYearEntry struct {
	YearIndex            int     `json:"year_index"`
	FixedCostTotal       float64 `json:"fixed_cost_total"`
	VariableCostTotal    float64 `json:"variable_cost_total"`
	OperatingProfit      float64 `json:"operating_profit"`
	TotalCost            float64 `json:"total_cost"`
	FixedCostRatio       float64 `json:"fixed_cost_ratio"`
	VariableCostRatio    float64 `json:"variable_cost_ratio"`
	AngleAdjustment      float64 `json:"angle_adjustment_degrees"`
	FixedCostWave        float64 `json:"fixed_cost_wave"`
	VariableCostWave     float64 `json:"variable_cost_wave"`
	OperatingProfitRatio float64 `json:"operating_profit_ratio"`
	ProfitWaveValue      float64 `json:"profit_wave_value"`
	BreakEvenReached     bool    `json:"break_even_reached"`
	BreakEvenCrossed     bool    `json:"break_even_crossed"`
}

type TCTBeamResult struct {
	ModelLabel               string             `json:"model_label,omitempty"`
	EvaluationYears          int                `json:"evaluation_years"`
	CumulativeFixedCost      float64            `json:"cumulative_fixed_cost"`
	CumulativeVariableCost   float64            `json:"cumulative_variable_cost"`
	BreakEvenYearIndex       *int               `json:"break_even_year_index,omitempty"`
	Schedule                 []TCTBeamYearEntry `json:"schedule"`
	FinalFigure              float64            `json:"final_figure"`
	Stages                   []StageResult      `json:"stages"`
}

type CPMRVRequest struct {
	AssetLabel                  string  `json:"asset_label"`
	LastYearGrowthRate          float64 `json:"last_year_growth_rate" validate:"required,gt=0"`
	LastYearDrawdown            float64 `json:"last_year_drawdown" validate:"required"`
	CurrentYearCumulativeGrowth float64 `json:"current_year_cumulative_growth" validate:"required,gt=0"`
	CurrentYearCumulativeDrawdown float64 `json:"current_year_cumulative_drawdown" validate:"required"`
	MonthsElapsed               *int    `json:"months_elapsed" validate:"omitempty,gte=0,lte=12"`
	CurrentFairValue            float64 `json:"current_fair_value" validate:"required,gt=0"`
}

type CPMRVResult struct {
	AssetLabel                 string        `json:"asset_label,omitempty"`
	LastYearAveragePerformance float64       `json:"last_year_average_performance"`
	CurrentYearLogRatio        float64       `json:"current_year_log_ratio"`
	MonthlyGrowthRisk          float64       `json:"monthly_growth_risk"`
	RiskDirection              string        `json:"risk_direction"`
	RelativeAssetRisk          float64       `json:"relative_asset_risk"`
	FinalFigure                float64       `json:"final_figure"`
	Stages                     []StageResult `json:"stages"`
}

type DCBPRARequest struct {
	AssetLabel                    string  `json:"asset_label"`
	ActualGrowthRate              float64 `json:"actual_growth_rate" validate:"required"`
	LastYearGrowthRate            float64 `json:"last_year_growth_rate" validate:"required,gt=0"`
	LastYearDrawdown              float64 `json:"last_year_drawdown" validate:"required"`
	CurrentYearCumulativeGrowth   float64 `json:"current_year_cumulative_growth" validate:"required,gt=0"`
	CurrentYearCumulativeDrawdown float64 `json:"current_year_cumulative_drawdown" validate:"required"`
	MonthsElapsed                 *int    `json:"months_elapsed" validate:"omitempty,gte=0,lte=12"`
	Beta                          float64 `json:"beta" default:"1.0"`
	RiskFreeRate                  float64 `json:"risk_free_rate"`
	MarketReturnRate              float64 `json:"market_return_rate"`
}

type DCBPRAResult struct {
	AssetLabel                 string        `json:"asset_label,omitempty"`
	GrowthPercentageFactor     float64       `json:"growth_percentage_factor"`
	RealGrowthAdjustment       float64       `json:"real_growth_adjustment"`
	LastYearAveragePerformance float64       `json:"last_year_average_performance"`
	CurrentYearLogRatio        float64       `json:"current_year_log_ratio"`
	MonthlyGrowthRisk          float64       `json:"monthly_growth_risk"`
	RiskDirection              string        `json:"risk_direction"`
	AdjustedBeta               float64       `json:"adjusted_beta"`
	BaselineCAPMReturn         float64       `json:"baseline_capm_return"`
	FinalFigure                float64       `json:"final_figure"`
	Stages                     []StageResult `json:"stages"`
}

type PSRASRequest struct {
	PortfolioLabel                    string  `json:"portfolio_label"`
	PrepaidCostAverage1Y              float64 `json:"prepaid_cost_average_1y" validate:"required,gt=0"`
	PrepaidCostTotal1Y                float64 `json:"prepaid_cost_total_1y" validate:"required,gt=0"`
	SubscriberCount                   float64 `json:"subscriber_count" validate:"required,gt=0"`
	NewContractCount                  float64 `json:"new_contract_count" validate:"gte=0"`
	RetainedContractCount             float64 `json:"retained_contract_count" validate:"gte=0"`
	NewSubscriberCount                float64 `json:"new_subscriber_count" validate:"required,gt=0"`
	NewSubscriberTotalPayment         float64 `json:"new_subscriber_total_payment" validate:"gte=0"`
	TotalCustomerPayments             float64 `json:"total_customer_payments" validate:"gte=0"`
	CancelledCustomerPayments         float64 `json:"cancelled_customer_payments" validate:"gte=0"`
	TotalSubscribersInPeriod          float64 `json:"total_subscribers_in_period" validate:"required,gt=0"`
	CancelledCustomersInPeriod        float64 `json:"cancelled_customers_in_period" validate:"gte=0"`
	TotalPrepaidAndUnearned           float64 `json:"total_prepaid_and_unearned" validate:"gte=0"`
	VarianceContractEquityAdjustment  float64 `json:"variance_contract_equity_adjustment"`
	CovarianceContractEquityVsPrepaid float64 `json:"covariance_contract_equity_vs_prepaid"`
	TotalContractDeposits             float64 `json:"total_contract_deposits" validate:"gte=0"`
	CurrentYearYield                  float64 `json:"current_year_yield"`
}

type PSRASResult struct {
	PortfolioLabel                  string        `json:"portfolio_label,omitempty"`
	AssumedRevenueRecognitionRate   float64       `json:"assumed_revenue_recognition_rate"`
	NewSubscriberAveragePayment     float64       `json:"new_subscriber_average_payment"`
	ExistingSubscriberAveragePayment float64      `json:"existing_subscriber_average_payment"`
	PaymentComparisonIndex          float64       `json:"payment_comparison_index"`
	PaymentIndexBaselineAmount      float64       `json:"payment_index_baseline_amount"`
	PurePerformanceBreakEven        float64       `json:"pure_performance_break_even"`
	FinalFigure                     float64       `json:"final_figure"`
	Stages                          []StageResult `json:"stages"`
}

type LSMRVRequest struct {
	EvaluationLabel             string    `json:"evaluation_label"`
	PriceBandCountA             float64   `json:"price_band_count_a" validate:"required,gt=0"`
	PriceBandCountB             float64   `json:"price_band_count_b" validate:"required,gt=0"`
	LastEvaluationGrowthA       float64   `json:"last_evaluation_growth_a" validate:"required"`
	LastEvaluationGrowthB       float64   `json:"last_evaluation_growth_b" validate:"required"`
	HighestPreferenceA          float64   `json:"highest_preference_a"`
	HighestPreferenceB          float64   `json:"highest_preference_b"`
	StandardSampleSize          float64   `json:"standard_sample_size" validate:"required,gt=0"`
	PriceBandCriterionCount     float64   `json:"price_band_criterion_count" validate:"gte=0"`
	TotalStandardUsage          float64   `json:"total_standard_usage" validate:"gte=0"`
	ReturnsA                    []float64 `json:"returns_a" validate:"omitempty,min=2"`
	ReturnsB                    []float64 `json:"returns_b" validate:"omitempty,min=2"`
	PreviousCovariance          float64   `json:"previous_covariance"`
	OperatingProfitPrevious     float64   `json:"operating_profit_previous"`
	AccountsReceivablePrevious  float64   `json:"accounts_receivable_previous"`
	ROI                         float64   `json:"roi"`
	MarketPrice                 float64   `json:"market_price" validate:"gte=0"`
	ActualCashFlow              float64   `json:"actual_cash_flow"`
	EstimatedCashFlow           float64   `json:"estimated_cash_flow"`
	NoiseFactor                 float64   `json:"noise_factor"`
	DiscountRate                float64   `json:"discount_rate"`
	CurrentInvestmentCashFlow   float64   `json:"current_investment_cash_flow"`
	PreviousInvestmentCashFlow  float64   `json:"previous_investment_cash_flow"`
	CurrentTotalCashFlow        float64   `json:"current_total_cash_flow"`
}

type LSMRVResult struct {
	EvaluationLabel          string        `json:"evaluation_label,omitempty"`
	ProbabilityDistributionA float64       `json:"probability_distribution_a"`
	ProbabilityDistributionB float64       `json:"probability_distribution_b"`
	GrowthCorrectionValue    float64       `json:"growth_correction_value"`
	CumulativeAdjustmentValue float64      `json:"cumulative_adjustment_value"`
	ExpectedAdjustmentValue  float64       `json:"expected_adjustment_value"`
	FinalFigure              float64       `json:"final_figure"`
	Stages                   []StageResult `json:"stages"`
}
