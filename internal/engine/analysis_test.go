package engine

import (
	"math"
	"testing"

	"FinModels/internal/domain/models"
)

func intPtr(v int) *int { return &v }

func TestTCTBeamBreakEvenFirstYear(t *testing.T) {
	req := models.TCTBeamRequest{
		ModelLabel:       "plant-a",
		FixedCosts:       []float64{100},
		VariableCosts:    []float64{100},
		OperatingProfits: []float64{200},
	}

	result, err := testEngine().EvaluateTCTBeam(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EvaluationYears != 1 {
		t.Fatalf("expected 1 evaluation year, got %d", result.EvaluationYears)
	}
	if result.CumulativeFixedCost != 100 || result.CumulativeVariableCost != 100 {
		t.Fatalf("cumulative costs: expected 100/100, got %v/%v",
			result.CumulativeFixedCost, result.CumulativeVariableCost)
	}
	// Profit equals total cost, so the profit angle lands exactly on 180.
	if result.BreakEvenYearIndex == nil || *result.BreakEvenYearIndex != 1 {
		t.Fatalf("expected break-even in year 1, got %v", result.BreakEvenYearIndex)
	}
	entry := result.Schedule[0]
	if !entry.BreakEvenReached || entry.BreakEvenCrossed {
		t.Fatalf("expected reached without crossing, got %+v", entry)
	}
	if result.FinalFigure != 200 {
		t.Fatalf("final figure: expected 200, got %v", result.FinalFigure)
	}
}

func TestTCTBeamNoBreakEven(t *testing.T) {
	req := models.TCTBeamRequest{
		FixedCosts:       []float64{100, 100},
		VariableCosts:    []float64{100, 100},
		OperatingProfits: []float64{50, 80},
	}

	result, err := testEngine().EvaluateTCTBeam(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BreakEvenYearIndex != nil {
		t.Fatalf("expected no break-even year, got %d", *result.BreakEvenYearIndex)
	}
	if len(result.Schedule) != 2 {
		t.Fatalf("expected 2 schedule entries, got %d", len(result.Schedule))
	}
	if result.FinalFigure != 130 {
		t.Fatalf("final figure: expected 130, got %v", result.FinalFigure)
	}
}

func TestTCTBeamLengthMismatch(t *testing.T) {
	req := models.TCTBeamRequest{
		FixedCosts:       []float64{100, 100},
		VariableCosts:    []float64{100},
		OperatingProfits: []float64{50, 80},
	}
	_, err := testEngine().EvaluateTCTBeam(req)
	engErr, ok := AsEngineError(err)
	if !ok || engErr.Kind != KindLengthMismatch || engErr.Stage != "cost_totals" {
		t.Fatalf("expected LENGTH_MISMATCH at cost_totals, got %v", err)
	}
}

func TestCPMRVZeroRiskDoublesFairValue(t *testing.T) {
	req := models.CPMRVRequest{
		AssetLabel:                    "growth-fund",
		LastYearGrowthRate:            1.1,
		LastYearDrawdown:              0.1,
		CurrentYearCumulativeGrowth:   1.1,
		CurrentYearCumulativeDrawdown: 0.1,
		CurrentFairValue:              100,
	}

	result, err := testEngine().EvaluateCPMRV(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.MonthlyGrowthRisk, 0) {
		t.Fatalf("expected zero risk, got %v", result.MonthlyGrowthRisk)
	}
	if result.RiskDirection != models.RiskDirectionUpside {
		t.Fatalf("zero risk counts as upside, got %q", result.RiskDirection)
	}
	if !almostEqual(result.RelativeAssetRisk, 2) {
		t.Fatalf("multiplier: expected 2, got %v", result.RelativeAssetRisk)
	}
	if result.FinalFigure != 200 {
		t.Fatalf("final figure: expected 200, got %v", result.FinalFigure)
	}
}

func TestCPMRVDownsideDirection(t *testing.T) {
	req := models.CPMRVRequest{
		LastYearGrowthRate:            1.1,
		LastYearDrawdown:              0.1,
		CurrentYearCumulativeGrowth:   2.2,
		CurrentYearCumulativeDrawdown: 0.1,
		MonthsElapsed:                 intPtr(6),
		CurrentFairValue:              100,
	}

	result, err := testEngine().EvaluateCPMRV(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Current year outruns last year, so the risk is negative.
	if result.MonthlyGrowthRisk >= 0 {
		t.Fatalf("expected negative risk, got %v", result.MonthlyGrowthRisk)
	}
	if result.RiskDirection != models.RiskDirectionDownside {
		t.Fatalf("expected downside, got %q", result.RiskDirection)
	}
	if result.RelativeAssetRisk >= 1 {
		t.Fatalf("downside multiplier must shrink the value, got %v", result.RelativeAssetRisk)
	}
	if result.FinalFigure != RoundMoney(100*result.RelativeAssetRisk) {
		t.Fatalf("final figure %v inconsistent with multiplier %v", result.FinalFigure, result.RelativeAssetRisk)
	}
}

func TestDCBPRAKnownReturn(t *testing.T) {
	req := models.DCBPRARequest{
		AssetLabel:                    "index-kr",
		ActualGrowthRate:              100,
		LastYearGrowthRate:            1.1,
		LastYearDrawdown:              0.1,
		CurrentYearCumulativeGrowth:   1.1,
		CurrentYearCumulativeDrawdown: 0.1,
		Beta:                          1,
		RiskFreeRate:                  0.02,
		MarketReturnRate:              0.1,
	}

	result, err := testEngine().EvaluateDCBPRA(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.GrowthPercentageFactor, 1) || !almostEqual(result.RealGrowthAdjustment, 2) {
		t.Fatalf("growth adjustment: expected factor 1 and adjustment 2, got %v/%v",
			result.GrowthPercentageFactor, result.RealGrowthAdjustment)
	}
	if !almostEqual(result.AdjustedBeta, 2) {
		t.Fatalf("adjusted beta: expected 2, got %v", result.AdjustedBeta)
	}
	if !almostEqual(result.BaselineCAPMReturn, 0.1) {
		t.Fatalf("baseline return: expected 0.1, got %v", result.BaselineCAPMReturn)
	}
	// (0.02 + 0.08*2) * 2 = 0.36.
	if result.FinalFigure != 0.36 {
		t.Fatalf("final figure: expected 0.36, got %v", result.FinalFigure)
	}
}

func TestDCBPRANegativeGrowthShrinksReturn(t *testing.T) {
	req := models.DCBPRARequest{
		ActualGrowthRate:              -100,
		LastYearGrowthRate:            1.1,
		LastYearDrawdown:              0.1,
		CurrentYearCumulativeGrowth:   1.1,
		CurrentYearCumulativeDrawdown: 0.1,
		Beta:                          1,
		RiskFreeRate:                  0.02,
		MarketReturnRate:              0.1,
	}

	result, err := testEngine().EvaluateDCBPRA(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.RealGrowthAdjustment, 0) {
		t.Fatalf("full negative growth zeroes the adjustment, got %v", result.RealGrowthAdjustment)
	}
	if result.FinalFigure != 0 {
		t.Fatalf("final figure: expected 0, got %v", result.FinalFigure)
	}
}

func TestPSRASFullRecognition(t *testing.T) {
	req := models.PSRASRequest{
		PortfolioLabel:             "prepaid-book",
		PrepaidCostAverage1Y:       10,
		PrepaidCostTotal1Y:         1000,
		SubscriberCount:            100,
		NewContractCount:           50,
		RetainedContractCount:      100,
		NewSubscriberCount:         50,
		NewSubscriberTotalPayment:  500,
		TotalCustomerPayments:      2000,
		CancelledCustomerPayments:  500,
		TotalSubscribersInPeriod:   150,
		CancelledCustomersInPeriod: 50,
		TotalPrepaidAndUnearned:    1000,
		TotalContractDeposits:      10000,
		CurrentYearYield:           0.05,
	}

	result, err := testEngine().EvaluatePSRAS(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10*100/1000 is exactly 1, so recognition is full and the break-even
	// term vanishes.
	if !almostEqual(result.AssumedRevenueRecognitionRate, 1) {
		t.Fatalf("recognition rate: expected 1, got %v", result.AssumedRevenueRecognitionRate)
	}
	if !almostEqual(result.NewSubscriberAveragePayment, 10) {
		t.Fatalf("new subscriber average: expected 10, got %v", result.NewSubscriberAveragePayment)
	}
	if !almostEqual(result.ExistingSubscriberAveragePayment, 15) {
		t.Fatalf("existing subscriber average: expected 15, got %v", result.ExistingSubscriberAveragePayment)
	}
	if !almostEqual(result.PurePerformanceBreakEven, 0) {
		t.Fatalf("break-even: expected 0, got %v", result.PurePerformanceBreakEven)
	}
	if result.FinalFigure != 500 {
		t.Fatalf("final figure: expected 500, got %v", result.FinalFigure)
	}
}

func TestPSRASSelfConsistent(t *testing.T) {
	req := models.PSRASRequest{
		PrepaidCostAverage1Y:              20,
		PrepaidCostTotal1Y:                1000,
		SubscriberCount:                   100,
		NewContractCount:                  50,
		RetainedContractCount:             100,
		NewSubscriberCount:                50,
		NewSubscriberTotalPayment:         500,
		TotalCustomerPayments:             2000,
		CancelledCustomerPayments:         500,
		TotalSubscribersInPeriod:          150,
		CancelledCustomersInPeriod:        50,
		TotalPrepaidAndUnearned:           1000,
		VarianceContractEquityAdjustment:  2,
		CovarianceContractEquityVsPrepaid: 1,
		TotalContractDeposits:             10000,
		CurrentYearYield:                  0.05,
	}

	result, err := testEngine().EvaluatePSRAS(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.AssumedRevenueRecognitionRate, math.Sqrt(2)) {
		t.Fatalf("recognition rate: expected sqrt(2), got %v", result.AssumedRevenueRecognitionRate)
	}
	adjustment := 1 - result.AssumedRevenueRecognitionRate
	wantBreakEven := (result.ExistingSubscriberAveragePayment+result.NewSubscriberAveragePayment)*adjustment -
		result.PaymentIndexBaselineAmount*adjustment
	if !almostEqual(result.PurePerformanceBreakEven, wantBreakEven) {
		t.Fatalf("break-even: expected %v, got %v", wantBreakEven, result.PurePerformanceBreakEven)
	}
	want := RoundMoney(10000*0.05 + result.PurePerformanceBreakEven*0.5)
	if result.FinalFigure != want {
		t.Fatalf("final figure: expected %v, got %v", want, result.FinalFigure)
	}
}

func TestLSMRVSelfConsistent(t *testing.T) {
	req := models.LSMRVRequest{
		EvaluationLabel:            "listing-band",
		PriceBandCountA:            4,
		PriceBandCountB:            5,
		LastEvaluationGrowthA:      2,
		LastEvaluationGrowthB:      1,
		HighestPreferenceA:         10,
		HighestPreferenceB:         5,
		StandardSampleSize:         100,
		PriceBandCriterionCount:    10,
		TotalStandardUsage:         20,
		ReturnsA:                   []float64{1, 2, 3},
		ReturnsB:                   []float64{2, 4, 6},
		PreviousCovariance:         1,
		OperatingProfitPrevious:    100,
		AccountsReceivablePrevious: 200,
		ROI:                        0.1,
		MarketPrice:                10,
		ActualCashFlow:             50,
		EstimatedCashFlow:          100,
		NoiseFactor:                0.05,
		DiscountRate:               0.05,
		CurrentInvestmentCashFlow:  50,
		PreviousInvestmentCashFlow: 50,
		CurrentTotalCashFlow:       100,
	}

	result, err := testEngine().EvaluateLSMRV(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.ProbabilityDistributionA, 25) || !almostEqual(result.ProbabilityDistributionB, 20) {
		t.Fatalf("probability distributions: expected 25/20, got %v/%v",
			result.ProbabilityDistributionA, result.ProbabilityDistributionB)
	}
	wantCorrection := (10.0 - 5.0) / ((2.0 + 1.0) * (1 + math.Log(2)))
	if !almostEqual(result.GrowthCorrectionValue, wantCorrection) {
		t.Fatalf("growth correction: expected %v, got %v", wantCorrection, result.GrowthCorrectionValue)
	}
	if !almostEqual(result.CumulativeAdjustmentValue, wantCorrection/70) {
		t.Fatalf("cumulative adjustment: expected %v, got %v", wantCorrection/70, result.CumulativeAdjustmentValue)
	}
	if result.ExpectedAdjustmentValue == 0 {
		t.Fatal("expected adjustment must be non-zero for this input")
	}
	want := RoundMoney((10 + 5) * result.ExpectedAdjustmentValue)
	if result.FinalFigure != want {
		t.Fatalf("final figure: expected %v, got %v", want, result.FinalFigure)
	}
	if len(result.Stages) != 9 {
		t.Fatalf("expected 9 stages, got %d", len(result.Stages))
	}
}

func TestRemainingMonths(t *testing.T) {
	if got := remainingMonths(nil); got != 12 {
		t.Fatalf("nil months: expected 12, got %v", got)
	}
	if got := remainingMonths(intPtr(4)); got != 8 {
		t.Fatalf("4 months: expected 8, got %v", got)
	}
	if got := remainingMonths(intPtr(12)); got != 1 {
		t.Fatalf("12 months: expected 1, got %v", got)
	}
}
