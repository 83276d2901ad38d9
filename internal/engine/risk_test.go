package engine

import (
	"math"
	"testing"

	"FinModels/internal/domain/models"
)

func cprmBaseRequest() models.CPRMRequest {
	return models.CPRMRequest{
		ExposureID:                           "cb-desk-1",
		AllowanceForBadDebts:                 100,
		TotalBondRelatedAssets:               1000,
		BadDebtAmount:                        100,
		TransactionValuePerBondUnit:          1,
		TotalConvertibleBondTransactionValue: 100,
		StockPurchaseTransactionValue:        2000,
		StockSaleTransactionValue:            1000,
		TotalScopeBondsForConversion:         10,
		CurrentDebtRepayments:                500,
		NumberOfDebtRepayments:               5,
		TotalConvertibleBondPurchases:        300,
		TotalConvertibleBondSales:            300,
		TotalNumberPurchaseTransactions:      3,
		TotalNumberSaleTransactions:          3,
		TotalBondTransactionsValue:           1000,
		TotalStockTransactionValue:           2000,
		ValueOfConvertibleBondProducts:       300,
	}
}

func TestCPRMRateTriggerFires(t *testing.T) {
	req := cprmBaseRequest()
	req.TotalDebtRepaymentForTrigger = floatPtr(5000)

	result, err := testEngine().EvaluateCPRM(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.AssumedBadDebtOccurrenceRate, 0.1) {
		t.Fatalf("assumed rate: expected 0.1, got %v", result.AssumedBadDebtOccurrenceRate)
	}
	wantRate := 100 * 1.1 / (100 * math.Log(2))
	if !almostEqual(result.ConvertibleBondRate, wantRate) {
		t.Fatalf("bond rate: expected %v, got %v", wantRate, result.ConvertibleBondRate)
	}
	if !almostEqual(result.AveragePastBadDebtRecovery, 100) || !almostEqual(result.AverageConvertibleBondPrice, 100) {
		t.Fatalf("averages: expected 100/100, got %v/%v",
			result.AveragePastBadDebtRecovery, result.AverageConvertibleBondPrice)
	}
	if !almostEqual(result.AdditionalAdjustmentBeta, 2) {
		t.Fatalf("adjustment beta: expected 2, got %v", result.AdditionalAdjustmentBeta)
	}
	if result.Trigger.Tier != "rate-threshold" || !result.Trigger.Fired {
		t.Fatalf("expected rate-threshold trigger, got %+v", result.Trigger)
	}
	// Debt repayment 5000 dominates {2000, 5000, 300}: (5000-2300)/(5000-2000).
	if result.ConvertibleBondRateAdjustment == nil || !almostEqual(*result.ConvertibleBondRateAdjustment, 0.9) {
		t.Fatalf("rate adjustment: expected 0.9, got %v", result.ConvertibleBondRateAdjustment)
	}
	if !almostEqual(result.FinalAdjustedConvertibleRate, 0.2) {
		t.Fatalf("final adjusted rate: expected 0.2, got %v", result.FinalAdjustedConvertibleRate)
	}
	want := RoundMoney(result.ConvertibleBondFirstAmount + 300*2)
	if result.FinalFigure != want {
		t.Fatalf("final figure: expected %v, got %v", want, result.FinalFigure)
	}
}

func TestCPRMThresholdOverrideSuppressesTrigger(t *testing.T) {
	req := cprmBaseRequest()
	req.RateTriggerThreshold = floatPtr(10)

	result, err := testEngine().EvaluateCPRM(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Trigger.Tier != TierNone || result.Trigger.Fired {
		t.Fatalf("expected no trigger with raised threshold, got %+v", result.Trigger)
	}
	if result.ConvertibleBondRateAdjustment != nil {
		t.Fatalf("expected no rate adjustment, got %v", *result.ConvertibleBondRateAdjustment)
	}
	if !almostEqual(result.FinalAdjustedConvertibleRate, result.AdditionalAdjustmentBeta) {
		t.Fatalf("untriggered rate must equal beta: %v vs %v",
			result.FinalAdjustedConvertibleRate, result.AdditionalAdjustmentBeta)
	}
}

func TestCPRMNonPositiveStockValues(t *testing.T) {
	req := cprmBaseRequest()
	req.StockSaleTransactionValue = 0

	_, err := testEngine().EvaluateCPRM(req)
	engErr, ok := AsEngineError(err)
	if !ok || engErr.Kind != KindInvalidDomain || engErr.Stage != "convertible_bond_rate" {
		t.Fatalf("expected INVALID_DOMAIN at convertible_bond_rate, got %v", err)
	}
}

func TestCOCIMGrowthBoundary(t *testing.T) {
	base := models.COCIMRequest{
		PortfolioLabel:           "oci-book",
		OCIAccountBalance:        50,
		TotalOCIAmount:           100,
		PolicyRate:               0.05,
		UsefulLifeYearsRemaining: 2,
		InitialRecognitionAmount: 100,
		YearEndBalance:           130,
	}

	// Growth of exactly 0.30 sits on the threshold and must fire.
	result, err := testEngine().EvaluateCOCIM(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.AccountRatio, 0.5) {
		t.Fatalf("account ratio: expected 0.5, got %v", result.AccountRatio)
	}
	if !almostEqual(result.AnnualCompoundGrowthRate, 0.3) {
		t.Fatalf("growth rate: expected 0.3, got %v", result.AnnualCompoundGrowthRate)
	}
	if result.Trigger.Tier != "growth" || !result.Trigger.Fired {
		t.Fatalf("expected growth trigger at the boundary, got %+v", result.Trigger)
	}
	if !almostEqual(result.CompoundAdjustmentAmount, 9) {
		t.Fatalf("adjustment: expected 9, got %v", result.CompoundAdjustmentAmount)
	}
	if result.FinalFigure != 139 {
		t.Fatalf("final figure: expected 139, got %v", result.FinalFigure)
	}

	below := base
	below.YearEndBalance = 129
	result, err = testEngine().EvaluateCOCIM(below)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Trigger.Fired {
		t.Fatalf("growth 0.29 must not fire, got %+v", result.Trigger)
	}
	if result.CompoundAdjustmentAmount != 0 || result.FinalFigure != 129 {
		t.Fatalf("expected untouched year end 129, got adj=%v final=%v",
			result.CompoundAdjustmentAmount, result.FinalFigure)
	}
}

func TestCOCIMQuarterlyAdjustments(t *testing.T) {
	req := models.COCIMRequest{
		OCIAccountBalance:        50,
		TotalOCIAmount:           100,
		UsefulLifeYearsRemaining: 2,
		InitialRecognitionAmount: 100,
		YearEndBalance:           110,
		QuarterlyData: []models.COCIMQuarterData{
			{QuarterIndex: 1, PreCompoundBalance: 10, PostCompoundBalance: 5,
				CurrentQuarterYield: 0.02, PreviousQuarterYield: 0.01,
				PreviousQuarterRate: 0.01, CurrentQuarterRate: 0.01},
		},
	}

	result, err := testEngine().EvaluateCOCIM(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.QuarterlyAdjustments) != 1 {
		t.Fatalf("expected 1 quarterly adjustment, got %d", len(result.QuarterlyAdjustments))
	}
	quarter := result.QuarterlyAdjustments[0]
	if quarter.QuarterIndex != 1 {
		t.Fatalf("expected quarter index 1, got %d", quarter.QuarterIndex)
	}
	want := (100 + (10 - 5.0)) / (1 + ((0.02 + 0.01) - (0.01 + 0.01)) - 100)
	if !almostEqual(quarter.AdjustmentValue, want) {
		t.Fatalf("quarter adjustment: expected %v, got %v", want, quarter.AdjustmentValue)
	}
}

func TestCOCIMZeroTotalAmount(t *testing.T) {
	req := models.COCIMRequest{OCIAccountBalance: 50, InitialRecognitionAmount: 100, YearEndBalance: 110}
	_, err := testEngine().EvaluateCOCIM(req)
	engErr, ok := AsEngineError(err)
	if !ok || engErr.Kind != KindDivisionByZero || engErr.Stage != "account_ratio" {
		t.Fatalf("expected DIVISION_BY_ZERO at account_ratio, got %v", err)
	}
}

func farexBaseRequest() models.FAREXRequest {
	return models.FAREXRequest{
		ContractID:                 "usdkrw-q3",
		BaseCurrencyAmount:         1000,
		SpotRate:                   1300,
		InflationRateHome:          0.03,
		InflationRateForeign:       0.01,
		HedgeRatio:                 1,
		LastYearPrevMonthExport:    120,
		LastYearPrevMonthImport:    100,
		LastYearCurrentMonthExport: 110,
		LastYearCurrentMonthImport: 100,
		CurrentYearPrevMonthExport: 115,
		CurrentYearPrevMonthImport: 105,
	}
}

func TestFAREXSelfConsistent(t *testing.T) {
	req := farexBaseRequest()
	result, err := testEngine().EvaluateFAREX(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantInflation := 1300 * 1.03 / 1.01
	if !almostEqual(result.InflationAdjustedRate, wantInflation) {
		t.Fatalf("inflation adjusted rate: expected %v, got %v", wantInflation, result.InflationAdjustedRate)
	}

	shouldFire := math.Abs(result.AdjustmentIndicator) >= 1.5 && result.AdjustmentIndicator != 0
	if result.Trigger.Fired != shouldFire {
		t.Fatalf("trigger fired=%v does not match indicator %v", result.Trigger.Fired, result.AdjustmentIndicator)
	}
	wantFinalRate := result.InflationAdjustedRate * result.AdjustmentIndicator
	if result.Trigger.Fired {
		wantFinalRate = result.InflationAdjustedRate / result.AdjustmentIndicator
	}
	if !almostEqual(result.FinalAdjustedRate, wantFinalRate) {
		t.Fatalf("final adjusted rate: expected %v, got %v", wantFinalRate, result.FinalAdjustedRate)
	}

	want := RoundMoney(1000 * (result.FinalAdjustedRate - 1300) * 1)
	if result.FinalFigure != want {
		t.Fatalf("final figure: expected %v, got %v", want, result.FinalFigure)
	}
}

func TestFAREXForecastRateOverridesSpot(t *testing.T) {
	req := farexBaseRequest()
	req.ForecastRate = 1350

	result, err := testEngine().EvaluateFAREX(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1350 * 1.03 / 1.01
	if !almostEqual(result.InflationAdjustedRate, want) {
		t.Fatalf("inflation adjusted rate: expected %v from the forecast rate, got %v",
			want, result.InflationAdjustedRate)
	}
}

func TestFAREXForeignInflationFloor(t *testing.T) {
	req := farexBaseRequest()
	req.InflationRateForeign = -1

	_, err := testEngine().EvaluateFAREX(req)
	engErr, ok := AsEngineError(err)
	if !ok || engErr.Kind != KindDivisionByZero || engErr.Stage != "inflation_spread" {
		t.Fatalf("expected DIVISION_BY_ZERO at inflation_spread, got %v", err)
	}
}

func TestNormaliseTradeRatio(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.5, 0.5},
		{0, 0},
		{-0.3, 0.3},
		{-1.5, 0.5},
		{-1, 1},
		{-2, 1},
	}
	for _, tc := range cases {
		if got := normaliseTradeRatio(tc.in); !almostEqual(got, tc.want) {
			t.Fatalf("normaliseTradeRatio(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
