package engine

import (
	"math"

	"FinModels/internal/domain/models"
)

// EvaluateCPRM runs the convertible bond risk pipeline. The rate trigger
// redistributes the adjustment beta when the convertible bond rate crosses
// the configured threshold.
func (e *Engine) EvaluateCPRM(req models.CPRMRequest) (*models.CPRMResult, error) {
	result := &models.CPRMResult{ExposureID: req.ExposureID}

	threshold := e.policy.CPRMRateThreshold
	if req.RateTriggerThreshold != nil {
		threshold = *req.RateTriggerThreshold
	}

	pipe := Pipeline{Model: ModelCPRM, Stages: []Stage{
		{Name: "assumed_bad_debt_rate", Fn: func(r *Run) (interface{}, error) {
			rate := req.AllowanceForBadDebts / req.TotalBondRelatedAssets
			result.AssumedBadDebtOccurrenceRate = rate
			return rate, nil
		}},
		{Name: "convertible_bond_rate", Fn: func(r *Run) (interface{}, error) {
			if req.StockPurchaseTransactionValue <= 0 || req.StockSaleTransactionValue <= 0 {
				return nil, invalidDomainErrorf("stock transaction values must be positive for the log ratio")
			}
			logRatio := math.Log(req.StockPurchaseTransactionValue / req.StockSaleTransactionValue)
			denominator := req.TransactionValuePerBondUnit * req.TotalConvertibleBondTransactionValue * logRatio
			var rate float64
			if denominator != 0 {
				rate = req.BadDebtAmount * (1 + r.Scalar("assumed_bad_debt_rate")) / denominator
			}
			result.ConvertibleBondRate = rate
			result.ConvertibleBondFirstAmount = req.TotalScopeBondsForConversion * rate
			return rate, nil
		}},
		{Name: "multi_stage_adjustment", Fn: func(r *Run) (interface{}, error) {
			recovery := req.CurrentDebtRepayments / float64(req.NumberOfDebtRepayments)
			result.AveragePastBadDebtRecovery = recovery

			totalTransactions := float64(req.TotalNumberPurchaseTransactions + req.TotalNumberSaleTransactions)
			averagePrice := (req.TotalConvertibleBondPurchases + req.TotalConvertibleBondSales) / totalTransactions
			result.AverageConvertibleBondPrice = averagePrice

			ratioBondStock := req.TotalBondTransactionsValue / req.TotalStockTransactionValue
			var beta float64
			if recovery != 0 && ratioBondStock != 0 {
				beta = (averagePrice / recovery) / ratioBondStock
			}
			result.AdditionalAdjustmentBeta = beta
			return beta, nil
		}},
		{Name: "trigger_evaluate", Fn: func(r *Run) (interface{}, error) {
			beta := r.Scalar("multi_stage_adjustment")
			totalDebtRepayment := req.CurrentDebtRepayments
			if req.TotalDebtRepaymentForTrigger != nil {
				totalDebtRepayment = *req.TotalDebtRepaymentForTrigger
			}

			outcome := EvaluateTiers([]Tier{
				{Label: "rate-threshold", Match: func(v float64) bool { return v >= threshold }},
			}, r.Scalar("convertible_bond_rate"))

			finalRate := beta
			if outcome.Fired {
				values := []float64{req.TotalStockTransactionValue, totalDebtRepayment, req.ValueOfConvertibleBondProducts}
				maxValue, otherSum := values[0], 0.0
				for _, v := range values[1:] {
					if v > maxValue {
						maxValue = v
					}
				}
				for _, v := range values {
					otherSum += v
				}
				otherSum -= maxValue

				var rateAdjustment float64
				if denominator := maxValue - req.TotalStockTransactionValue; denominator != 0 {
					rateAdjustment = (maxValue - otherSum) / denominator
				}
				result.ConvertibleBondRateAdjustment = &rateAdjustment
				finalRate = beta * (1 - rateAdjustment)
				outcome.Adjustment = rateAdjustment
			}
			result.Trigger = outcome
			result.FinalAdjustedConvertibleRate = finalRate
			return finalRate, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := result.ConvertibleBondFirstAmount + req.ValueOfConvertibleBondProducts*result.AdditionalAdjustmentBeta
			result.FinalFigure = RoundMoney(final)
			return result.FinalFigure, nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		return nil, err
	}
	result.Stages = stages
	return result, nil
}

// EvaluateCOCIM runs the compound comprehensive income pipeline with the
// growth trigger at the configured threshold.
func (e *Engine) EvaluateCOCIM(req models.COCIMRequest) (*models.COCIMResult, error) {
	result := &models.COCIMResult{PortfolioLabel: req.PortfolioLabel}

	pipe := Pipeline{Model: ModelCOCIM, Stages: []Stage{
		{Name: "account_ratio", Fn: func(r *Run) (interface{}, error) {
			if req.TotalOCIAmount == 0 {
				return nil, divisionByZeroErrorf("total comprehensive income amount is zero")
			}
			ratio := req.OCIAccountBalance / req.TotalOCIAmount
			result.AccountRatio = ratio
			return ratio, nil
		}},
		{Name: "policy_rate_discount", Fn: func(r *Run) (interface{}, error) {
			discount := math.Pow(1+req.PolicyRate, req.UsefulLifeYearsRemaining)
			if discount == 0 {
				return nil, divisionByZeroErrorf("policy rate discount factor is zero")
			}
			measurement := req.OCIAccountBalance / discount
			result.InitialCompoundMeasurement = measurement
			return measurement, nil
		}},
		{Name: "quarterly_adjustment", Fn: func(r *Run) (interface{}, error) {
			adjustments := make([]float64, 0, len(req.QuarterlyData))
			result.QuarterlyAdjustments = make([]models.COCIMQuarterResult, 0, len(req.QuarterlyData))
			for _, quarter := range req.QuarterlyData {
				numerator := req.InitialRecognitionAmount + (quarter.PreCompoundBalance - quarter.PostCompoundBalance)
				denominator := 1 +
					((quarter.CurrentQuarterYield + quarter.PreviousQuarterYield) -
						(quarter.PreviousQuarterRate + quarter.CurrentQuarterRate)) -
					req.InitialRecognitionAmount
				var adjustment float64
				if denominator != 0 {
					adjustment = numerator / denominator
				}
				adjustments = append(adjustments, adjustment)
				result.QuarterlyAdjustments = append(result.QuarterlyAdjustments, models.COCIMQuarterResult{
					QuarterIndex:        quarter.QuarterIndex,
					AdjustmentValue:     adjustment,
					PreCompoundBalance:  quarter.PreCompoundBalance,
					PostCompoundBalance: quarter.PostCompoundBalance,
				})
			}
			return adjustments, nil
		}},
		{Name: "trigger_evaluate", Fn: func(r *Run) (interface{}, error) {
			if req.InitialRecognitionAmount == 0 {
				return nil, divisionByZeroErrorf("initial recognition amount is zero")
			}
			increase := req.YearEndBalance - req.InitialRecognitionAmount
			growthRate := increase / req.InitialRecognitionAmount
			result.AnnualCompoundGrowthRate = growthRate

			outcome := EvaluateTiers([]Tier{
				{
					Label:      "growth",
					Match:      func(v float64) bool { return v >= e.policy.OCIMGrowthThreshold },
					Adjustment: increase * growthRate,
				},
			}, growthRate)
			result.Trigger = outcome
			if outcome.Fired {
				result.CompoundAdjustmentAmount = outcome.Adjustment
			}
			return result.CompoundAdjustmentAmount, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := req.YearEndBalance + r.Scalar("trigger_evaluate")
			result.FinalFigure = RoundMoney(final)
			return result.FinalFigure, nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		return nil, err
	}
	result.Stages = stages
	return result, nil
}

// normaliseTradeRatio lifts a negative ratio into (0, 1] so it can feed the
// export/import logarithm.
func normaliseTradeRatio(value float64) float64 {
	if value >= 0 {
		return value
	}
	adjusted := value
	for adjusted < 0 {
		adjusted++
	}
	adjusted = 1 - math.Abs(adjusted)
	if adjusted == 0 {
		adjusted = 1e-6
	}
	return adjusted
}

// EvaluateFAREX runs the exchange revaluation pipeline. The indicator
// threshold flips the final adjustment between division and multiplication.
func (e *Engine) EvaluateFAREX(req models.FAREXRequest) (*models.FAREXResult, error) {
	result := &models.FAREXResult{ContractID: req.ContractID}

	pipe := Pipeline{Model: ModelFAREX, Stages: []Stage{
		{Name: "yoy_trade_ratio", Fn: func(r *Run) (interface{}, error) {
			numerator := (req.LastYearPrevMonthExport-req.LastYearPrevMonthImport)/req.LastYearPrevMonthExport -
				(req.LastYearPrevMonthImport-req.LastYearPrevMonthExport)/req.LastYearPrevMonthImport
			denominator := (req.LastYearCurrentMonthExport-req.LastYearCurrentMonthImport)/req.LastYearCurrentMonthExport -
				(req.LastYearCurrentMonthImport-req.LastYearCurrentMonthExport)/req.LastYearCurrentMonthImport
			var lastYearRatio float64
			if denominator != 0 {
				lastYearRatio = numerator / denominator
			}
			result.LastYearTradeRatio = lastYearRatio

			adjNumerator := (req.CurrentYearPrevMonthExport - req.LastYearCurrentMonthExport) -
				(req.CurrentYearPrevMonthImport - req.LastYearCurrentMonthImport)
			adjDenominator := (req.CurrentYearPrevMonthImport - req.LastYearCurrentMonthExport) -
				(req.CurrentYearPrevMonthExport - req.LastYearCurrentMonthImport)
			var adjustmentTerm float64
			if adjDenominator != 0 {
				adjustmentTerm = adjNumerator / adjDenominator
			}
			result.CurrentYearTradeRatio = lastYearRatio - adjustmentTerm
			return lastYearRatio, nil
		}},
		{Name: "export_import_beta", Fn: func(r *Run) (interface{}, error) {
			normLast := normaliseTradeRatio(result.LastYearTradeRatio)
			normCurrent := normaliseTradeRatio(result.CurrentYearTradeRatio)
			var beta float64
			if normCurrent != 0 && normLast > 0 {
				beta = math.Log(normLast / normCurrent)
			}
			result.ExportImportBeta = beta
			return beta, nil
		}},
		{Name: "adjustment_indicator", Fn: func(r *Run) (interface{}, error) {
			ratioNumerator := req.LastYearPrevMonthExport + req.LastYearCurrentMonthExport - req.CurrentYearPrevMonthExport
			ratioDenominator := req.LastYearCurrentMonthImport
			if ratioDenominator == 0 {
				ratioDenominator = 1e-6
			}
			ratioComponent := ratioNumerator / ratioDenominator

			beta := r.Scalar("export_import_beta")
			var indicator float64
			if beta >= 0 {
				indicator = 1 - beta*ratioComponent
			} else {
				indicator = 1 + math.Abs(beta)*ratioComponent
			}
			result.AdjustmentIndicator = indicator
			return indicator, nil
		}},
		{Name: "inflation_spread", Fn: func(r *Run) (interface{}, error) {
			if 1+req.InflationRateForeign == 0 {
				return nil, divisionByZeroErrorf("foreign inflation rate of -100%% has no real exchange adjustment")
			}
			baseRate := req.SpotRate
			if req.ForecastRate > 0 {
				baseRate = req.ForecastRate
			}
			adjusted := baseRate * (1 + req.InflationRateHome) / (1 + req.InflationRateForeign)
			result.InflationAdjustedRate = adjusted
			return adjusted, nil
		}},
		{Name: "threshold_trigger_evaluate", Fn: func(r *Run) (interface{}, error) {
			indicator := r.Scalar("adjustment_indicator")
			inflationAdjusted := r.Scalar("inflation_spread")

			outcome := EvaluateTiers([]Tier{
				{
					Label:      "indicator",
					Match:      func(v float64) bool { return math.Abs(v) >= e.policy.FAREXIndicatorThreshold && v != 0 },
					Adjustment: indicator,
				},
			}, indicator)
			result.Trigger = outcome

			finalRate := inflationAdjusted * indicator
			if outcome.Fired {
				finalRate = inflationAdjusted / indicator
			}
			result.FinalAdjustedRate = finalRate
			return finalRate, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			revaluation := req.BaseCurrencyAmount * (r.Scalar("threshold_trigger_evaluate") - req.SpotRate) * req.HedgeRatio
			result.FinalFigure = RoundMoney(revaluation)
			return result.FinalFigure, nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		return nil, err
	}
	result.Stages = stages
	return result, nil
}
