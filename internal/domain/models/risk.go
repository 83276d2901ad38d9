package models

// Requests and results for the capital & risk derivatives series
// (CPRM, C-OCIM, FAREX).

type CPRMRequest struct {
	ExposureID                          string   `json:"exposure_id"`
	AllowanceForBadDebts                float64  `json:"allowance_for_bad_debts" validate:"required,gt=0"`
	TotalBondRelatedAssets              float64  `json:"total_bond_related_assets" validate:"required,gt=0"`
	BadDebtAmount                       float64  `json:"bad_debt_amount" validate:"required,gt=0"`
	TransactionValuePerBondUnit         float64  `json:"transaction_value_per_bond_unit" validate:"required,gt=0"`
	TotalConvertibleBondTransactionValue float64 `json:"total_convertible_bond_transaction_value" validate:"required,gt=0"`
	StockPurchaseTransactionValue       float64  `json:"stock_purchase_transaction_value" validate:"required,gt=0"`
	StockSaleTransactionValue           float64  `json:"stock_sale_transaction_value" validate:"required,gt=0"`
	TotalScopeBondsForConversion        float64  `json:"total_scope_bonds_for_conversion" validate:"required,gt=0"`
	CurrentDebtRepayments               float64  `json:"current_debt_repayments" validate:"required,gt=0"`
	NumberOfDebtRepayments              int      `json:"number_of_debt_repayments" validate:"required,gt=0"`
	TotalConvertibleBondPurchases       float64  `json:"total_convertible_bond_purchases" validate:"required,gt=0"`
	TotalConvertibleBondSales           float64  `json:"total_convertible_bond_sales" validate:"required,gt=0"`
	TotalNumberPurchaseTransactions     int      `json:"total_number_purchase_transactions" validate:"required,gt=0"`
	TotalNumberSaleTransactions         int      `json:"total_number_sale_transactions" validate:"required,gt=0"`
	TotalBondTransactionsValue          float64  `json:"total_bond_transactions_value" validate:"required,gt=0"`
	TotalStockTransactionValue          float64  `json:"total_stock_transaction_value" validate:"required,gt=0"`
	ValueOfConvertibleBondProducts      float64  `json:"value_of_convertible_bond_products" validate:"required,gt=0"`
	TotalDebtRepaymentForTrigger        *float64 `json:"total_debt_repayment_for_trigger" validate:"omitempty,gt=0"`
	RateTriggerThreshold                *float64 `json:"rate_trigger_threshold" validate:"omitempty,gte=0"`
}

type CPRMResult struct {
	ExposureID                     string         `json:"exposure_id,omitempty"`
	AssumedBadDebtOccurrenceRate   float64        `json:"assumed_bad_debt_occurrence_rate"`
	ConvertibleBondRate            float64        `json:"convertible_bond_rate"`
	ConvertibleBondFirstAmount     float64        `json:"convertible_bond_first_amount"`
	AveragePastBadDebtRecovery     float64        `json:"average_past_bad_debt_recovery"`
	AverageConvertibleBondPrice    float64        `json:"average_convertible_bond_price"`
	AdditionalAdjustmentBeta       float64        `json:"additional_adjustment_beta"`
	Trigger                        TriggerOutcome `json:"trigger"`
	ConvertibleBondRateAdjustment  *float64       `json:"convertible_bond_rate_adjustment,omitempty"`
	FinalAdjustedConvertibleRate   float64        `json:"final_adjusted_convertible_bond_rate"`
	FinalFigure                    float64        `json:"final_figure"`
	Stages                         []StageResult  `json:"stages"`
}

type COCIMQuarterData struct {
	QuarterIndex         int     `json:"quarter_index" validate:"required,gte=1"`
	PreCompoundBalance   float64 `json:"pre_compound_balance"`
	PostCompoundBalance  float64 `json:"post_compound_balance"`
	CurrentQuarterYield  float64 `json:"current_quarter_yield"`
	PreviousQuarterYield float64 `json:"previous_quarter_yield"`
	PreviousQuarterRate  float64 `json:"previous_quarter_rate"`
	CurrentQuarterRate   float64 `json:"current_quarter_rate"`
}

type COCIMRequest struct {
	PortfolioLabel           string             `json:"portfolio_label"`
	OCIAccountBalance        float64            `json:"oci_account_balance" validate:"required"`
	TotalOCIAmount           float64            `json:"total_oci_amount" validate:"required,gt=0"`
	PolicyRate               float64            `json:"policy_rate"`
	UsefulLifeYearsRemaining float64            `json:"useful_life_years_remaining" validate:"required,gt=0"`
	InitialRecognitionAmount float64            `json:"initial_recognition_amount" validate:"required,gt=0"`
	YearEndBalance           float64            `json:"year_end_balance" validate:"required,gt=0"`
	QuarterlyData            []COCIMQuarterData `json:"quarterly_data" validate:"omitempty,dive"`
}

type COCIMQuarterResult struct {
	QuarterIndex        int     `json:"quarter_index"`
	AdjustmentValue     float64 `json:"adjustment_value"`
	PreCompoundBalance  float64 `json:"pre_compound_balance"`
	PostCompoundBalance float64 `json:"post_compound_balance"`
}

type COCIMResult struct {
	PortfolioLabel             string               `json:"portfolio_label,omitempty"`
	AccountRatio               float64              `json:"account_ratio"`
	InitialCompoundMeasurement float64              `json:"initial_compound_measurement"`
	QuarterlyAdjustments       []COCIMQuarterResult `json:"quarterly_adjustments"`
	AnnualCompoundGrowthRate   float64              `json:"annual_compound_growth_rate"`
	Trigger                    TriggerOutcome       `json:"trigger"`
	CompoundAdjustmentAmount   float64              `json:"compound_adjustment_amount"`
	FinalFigure                float64              `json:"final_figure"`
	Stages                     []StageResult        `json:"stages"`
}

type FAREXRequest struct {
	ContractID                 string  `json:"contract_id"`
	BaseCurrencyAmount         float64 `json:"base_currency_amount" validate:"required,gt=0"`
	SpotRate                   float64 `json:"spot_rate" validate:"required,gt=0"`
	ForecastRate               float64 `json:"forecast_rate" validate:"omitempty,gt=0"`
	InflationRateHome          float64 `json:"inflation_rate_home" validate:"gte=-1"`
	InflationRateForeign       float64 `json:"inflation_rate_foreign" validate:"gte=-1"`
	HedgeRatio                 float64 `json:"hedge_ratio" default:"1.0" validate:"gt=0"`
	LastYearPrevMonthExport    float64 `json:"last_year_prev_month_export" validate:"required,gt=0"`
	LastYearPrevMonthImport    float64 `json:"last_year_prev_month_import" validate:"required,gt=0"`
	LastYearCurrentMonthExport float64 `json:"last_year_current_month_export" validate:"required,gt=0"`
	LastYearCurrentMonthImport float64 `json:"last_year_current_month_import" validate:"required,gt=0"`
	CurrentYearPrevMonthExport float64 `json:"current_year_prev_month_export" validate:"required,gt=0"`
	CurrentYearPrevMonthImport float64 `json:"current_year_prev_month_import" validate:"required,gt=0"`
}

type FAREXResult struct {
	ContractID            string         `json:"contract_id,omitempty"`
	LastYearTradeRatio    float64        `json:"last_year_trade_ratio"`
	CurrentYearTradeRatio float64        `json:"current_year_trade_ratio"`
	ExportImportBeta      float64        `json:"export_import_beta"`
	AdjustmentIndicator   float64        `json:"adjustment_indicator"`
	InflationAdjustedRate float64        `json:"inflation_adjusted_rate"`
	FinalAdjustedRate     float64        `json:"final_adjusted_rate"`
	Trigger               TriggerOutcome `json:"trigger"`
	FinalFigure           float64        `json:"final_figure"`
	Stages                []StageResult  `json:"stages"`
}
