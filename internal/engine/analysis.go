package engine

import (
	"math"

	"FinModels/internal/domain/models"
)

func normaliseProfitAngle(angleDeg float64) float64 {
	remainder := math.Mod(angleDeg, 180)
	if math.Abs(remainder-90) < 1e-6 {
		if angleDeg >= 90 {
			return angleDeg + 0.001
		}
		return angleDeg - 0.001
	}
	return angleDeg
}

func profitWave(angleDeg, angleAdjustment float64) (wave float64, reached, crossed bool) {
	adjusted := normaliseProfitAngle(angleDeg + angleAdjustment)
	tangent := math.Tan(adjusted * math.Pi / 180)

	denominator := 180 - angleAdjustment
	if math.Abs(denominator) < 1e-6 {
		denominator = 1e-6
	}

	raw := -tangent / denominator
	reached = adjusted >= 180
	crossed = adjusted >= 181
	if crossed {
		return math.Abs(raw), reached, crossed
	}
	return raw, reached, crossed
}

// EvaluateTCTBeam runs the cost-structure wave pipeline: per-year cost
// ratios map onto angles whose sine/cosine waves track structure shifts, and
// the profit angle marks the break-even year.
func (e *Engine) EvaluateTCTBeam(req models.TCTBeamRequest) (*models.TCTBeamResult, error) {
	result := &models.TCTBeamResult{ModelLabel: req.ModelLabel}

	pipe := Pipeline{Model: ModelTCTBeam, Stages: []Stage{
		{Name: "cost_totals", Fn: func(r *Run) (interface{}, error) {
			if len(req.VariableCosts) != len(req.FixedCosts) {
				return nil, lengthMismatchErrorf("variable costs have %d years, fixed costs have %d", len(req.VariableCosts), len(req.FixedCosts))
			}
			if len(req.OperatingProfits) != len(req.FixedCosts) {
				return nil, lengthMismatchErrorf("operating profits have %d years, fixed costs have %d", len(req.OperatingProfits), len(req.FixedCosts))
			}
			totals := make([]float64, len(req.FixedCosts))
			for i := range req.FixedCosts {
				totals[i] = req.FixedCosts[i] + req.VariableCosts[i]
			}
			result.EvaluationYears = len(totals)
			result.CumulativeFixedCost = sumSeries(req.FixedCosts)
			result.CumulativeVariableCost = sumSeries(req.VariableCosts)
			return totals, nil
		}},
		{Name: "wave_schedule", Fn: func(r *Run) (interface{}, error) {
			totals := r.Series("cost_totals")
			var prevFixedRatio, prevVariableRatio float64
			var cumulativeProfit float64
			waves := make([]float64, 0, len(totals))

			for i, total := range totals {
				fixed, variable, profit := req.FixedCosts[i], req.VariableCosts[i], req.OperatingProfits[i]
				var fixedRatio, variableRatio, profitRatio float64
				if total != 0 {
					fixedRatio = fixed / total
					variableRatio = variable / total
					profitRatio = profit / total
				}

				var angleAdjustment float64
				if i > 0 {
					angleAdjustment = ((fixedRatio - prevFixedRatio) + (variableRatio - prevVariableRatio)) * 180
				}

				fixedWave := math.Sin((fixedRatio*180 + angleAdjustment) * math.Pi / 180)
				variableWave := math.Cos((variableRatio*180 + angleAdjustment) * math.Pi / 180)

				wave, reached, crossed := profitWave(profitRatio*180, angleAdjustment)
				if reached && result.BreakEvenYearIndex == nil {
					year := i + 1
					result.BreakEvenYearIndex = &year
				}

				result.Schedule = append(result.Schedule, models.TCTBeamYearEntry{
					YearIndex:            i + 1,
					FixedCostTotal:       fixed,
					VariableCostTotal:    variable,
					OperatingProfit:      profit,
					TotalCost:            total,
					FixedCostRatio:       fixedRatio,
					VariableCostRatio:    variableRatio,
					AngleAdjustment:      angleAdjustment,
					FixedCostWave:        fixedWave,
					VariableCostWave:     variableWave,
					OperatingProfitRatio: profitRatio,
					ProfitWaveValue:      wave,
					BreakEvenReached:     reached,
					BreakEvenCrossed:     crossed,
				})

				waves = append(waves, wave)
				prevFixedRatio, prevVariableRatio = fixedRatio, variableRatio
				cumulativeProfit += profit
			}
			result.FinalFigure = RoundMoney(cumulativeProfit)
			return waves, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
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

func remainingMonths(monthsElapsed *int) float64 {
	if monthsElapsed == nil {
		return 12
	}
	return math.Max(1, float64(12-*monthsElapsed))
}

// riskAdjustment converts a monthly growth risk into a relative multiplier
// and direction label.
func riskAdjustment(monthlyGrowthRisk float64) (multiplier float64, direction string) {
	denom := 1 + monthlyGrowthRisk
	if math.Abs(denom) < 1e-9 {
		denom = math.Copysign(1e-9, denom)
	}
	component := math.Abs(1 / denom)
	if monthlyGrowthRisk < 0 {
		return 1 - component, models.RiskDirectionDownside
	}
	return 1 + component, models.RiskDirectionUpside
}

// EvaluateCPMRV runs the performance risk valuation pipeline.
func (e *Engine) EvaluateCPMRV(req models.CPMRVRequest) (*models.CPMRVResult, error) {
	result := &models.CPMRVResult{AssetLabel: req.AssetLabel}

	pipe := Pipeline{Model: ModelCPMRV, Stages: []Stage{
		{Name: "last_year_average", Fn: func(r *Run) (interface{}, error) {
			average := safeLogRatio(req.LastYearGrowthRate, math.Abs(req.LastYearDrawdown))
			result.LastYearAveragePerformance = average
			return average, nil
		}},
		{Name: "current_year_log_ratio", Fn: func(r *Run) (interface{}, error) {
			ratio := safeLogRatio(req.CurrentYearCumulativeGrowth, math.Abs(req.CurrentYearCumulativeDrawdown))
			result.CurrentYearLogRatio = ratio
			return ratio, nil
		}},
		{Name: "monthly_growth_risk", Fn: func(r *Run) (interface{}, error) {
			risk := (r.Scalar("last_year_average") - r.Scalar("current_year_log_ratio")) / remainingMonths(req.MonthsElapsed)
			result.MonthlyGrowthRisk = risk
			return risk, nil
		}},
		{Name: "relative_asset_risk", Fn: func(r *Run) (interface{}, error) {
			multiplier, direction := riskAdjustment(r.Scalar("monthly_growth_risk"))
			result.RelativeAssetRisk = multiplier
			result.RiskDirection = direction
			return multiplier, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := req.CurrentFairValue * r.Scalar("relative_asset_risk")
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

// EvaluateDCBPRA runs the beta risk adjustment pipeline: the monthly growth
// risk scales the CAPM beta, and the real growth factor scales the expected
// return.
func (e *Engine) EvaluateDCBPRA(req models.DCBPRARequest) (*models.DCBPRAResult, error) {
	result := &models.DCBPRAResult{AssetLabel: req.AssetLabel}

	pipe := Pipeline{Model: ModelDCBPRA, Stages: []Stage{
		{Name: "growth_adjustment", Fn: func(r *Run) (interface{}, error) {
			percentageFactor := req.ActualGrowthRate / 100
			absFactor := math.Abs(percentageFactor)
			if absFactor < 1e-9 {
				absFactor = 1e-9
			}
			component := math.Abs(1 / absFactor)
			adjustment := 1 + component
			if percentageFactor < 0 {
				adjustment = 1 - component
			}
			result.GrowthPercentageFactor = percentageFactor
			result.RealGrowthAdjustment = adjustment
			return adjustment, nil
		}},
		{Name: "last_year_average", Fn: func(r *Run) (interface{}, error) {
			average := safeLogRatio(req.LastYearGrowthRate, math.Abs(req.LastYearDrawdown))
			result.LastYearAveragePerformance = average
			return average, nil
		}},
		{Name: "current_year_log_ratio", Fn: func(r *Run) (interface{}, error) {
			ratio := safeLogRatio(req.CurrentYearCumulativeGrowth, math.Abs(req.CurrentYearCumulativeDrawdown))
			result.CurrentYearLogRatio = ratio
			return ratio, nil
		}},
		{Name: "monthly_growth_risk", Fn: func(r *Run) (interface{}, error) {
			risk := (r.Scalar("last_year_average") - r.Scalar("current_year_log_ratio")) / remainingMonths(req.MonthsElapsed)
			result.MonthlyGrowthRisk = risk
			return risk, nil
		}},
		{Name: "adjusted_beta", Fn: func(r *Run) (interface{}, error) {
			multiplier, direction := riskAdjustment(r.Scalar("monthly_growth_risk"))
			result.RiskDirection = direction
			result.AdjustedBeta = req.Beta * multiplier
			return result.AdjustedBeta, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			premium := req.MarketReturnRate - req.RiskFreeRate
			result.BaselineCAPMReturn = req.RiskFreeRate + premium*req.Beta
			adjustedReturn := (req.RiskFreeRate + premium*r.Scalar("adjusted_beta")) * r.Scalar("growth_adjustment")
			result.FinalFigure = RoundMoney(adjustedReturn)
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

// EvaluatePSRAS runs the prepaid service revenue recognition pipeline.
func (e *Engine) EvaluatePSRAS(req models.PSRASRequest) (*models.PSRASResult, error) {
	const eps = 1e-9
	result := &models.PSRASResult{PortfolioLabel: req.PortfolioLabel}

	pipe := Pipeline{Model: ModelPSRAS, Stages: []Stage{
		{Name: "recognition_rate", Fn: func(r *Run) (interface{}, error) {
			denominator := req.PrepaidCostTotal1Y
			if math.Abs(denominator) < eps {
				denominator = eps
			}
			baseRatio := req.PrepaidCostAverage1Y * req.SubscriberCount / denominator
			if baseRatio <= 0 {
				baseRatio = eps
			}
			exponent := 1.0
			if math.Abs(req.RetainedContractCount) > eps {
				exponent = 1 - req.NewContractCount/req.RetainedContractCount
			}
			rate := math.Pow(baseRatio, exponent)
			result.AssumedRevenueRecognitionRate = rate
			return rate, nil
		}},
		{Name: "average_payments", Fn: func(r *Run) (interface{}, error) {
			newCount := req.NewSubscriberCount
			if math.Abs(newCount) < eps {
				newCount = eps
			}
			result.NewSubscriberAveragePayment = req.NewSubscriberTotalPayment / newCount

			existingTotal := req.TotalCustomerPayments - req.CancelledCustomerPayments
			existingCount := req.TotalSubscribersInPeriod - req.CancelledCustomersInPeriod
			if math.Abs(existingCount) < eps {
				existingCount = eps
			}
			result.ExistingSubscriberAveragePayment = existingTotal / existingCount
			return result.ExistingSubscriberAveragePayment, nil
		}},
		{Name: "payment_comparison_index", Fn: func(r *Run) (interface{}, error) {
			existingTotal := req.TotalCustomerPayments - req.CancelledCustomerPayments
			index := safeLogRatio(req.CancelledCustomerPayments, req.NewSubscriberTotalPayment+existingTotal)
			result.PaymentComparisonIndex = index
			return index, nil
		}},
		{Name: "payment_baseline", Fn: func(r *Run) (interface{}, error) {
			index := r.Scalar("payment_comparison_index")
			multiplier := 1 - index
			if index < 0 {
				multiplier = 1 + math.Abs(index)
			}
			baseline := req.TotalPrepaidAndUnearned * multiplier
			result.PaymentIndexBaselineAmount = baseline
			return baseline, nil
		}},
		{Name: "pure_performance_break_even", Fn: func(r *Run) (interface{}, error) {
			adjustmentFactor := 1 - r.Scalar("recognition_rate")
			breakEven := (result.ExistingSubscriberAveragePayment+result.NewSubscriberAveragePayment)*adjustmentFactor -
				r.Scalar("payment_baseline")*adjustmentFactor
			result.PurePerformanceBreakEven = breakEven
			return breakEven, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			var betaFactor float64
			if math.Abs(req.VarianceContractEquityAdjustment) > eps {
				betaFactor = req.CovarianceContractEquityVsPrepaid / req.VarianceContractEquityAdjustment
			}
			final := req.TotalContractDeposits*req.CurrentYearYield + r.Scalar("pure_performance_break_even")*betaFactor
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

// EvaluateLSMRV runs the probability-weighted revaluation pipeline.
func (e *Engine) EvaluateLSMRV(req models.LSMRVRequest) (*models.LSMRVResult, error) {
	const eps = 1e-9
	result := &models.LSMRVResult{EvaluationLabel: req.EvaluationLabel}

	pipe := Pipeline{Model: ModelLSMRV, Stages: []Stage{
		{Name: "probability_distribution", Fn: func(r *Run) (interface{}, error) {
			result.ProbabilityDistributionA = 100 / req.PriceBandCountA
			result.ProbabilityDistributionB = 100 / req.PriceBandCountB
			return []float64{result.ProbabilityDistributionA, result.ProbabilityDistributionB}, nil
		}},
		{Name: "growth_correction", Fn: func(r *Run) (interface{}, error) {
			growthSum := req.LastEvaluationGrowthA + req.LastEvaluationGrowthB
			if math.Abs(growthSum) < eps {
				growthSum = eps
			}
			logRatio := safeLogRatio(req.LastEvaluationGrowthA, req.LastEvaluationGrowthB)
			modifier := 1 + logRatio
			if logRatio < 0 {
				modifier = 1 - math.Abs(logRatio)
			}
			if math.Abs(modifier) < eps {
				modifier = eps
			}
			correction := (req.HighestPreferenceA - req.HighestPreferenceB) / (growthSum * modifier)
			result.GrowthCorrectionValue = correction
			return correction, nil
		}},
		{Name: "cumulative_adjustment", Fn: func(r *Run) (interface{}, error) {
			denominator := req.StandardSampleSize - (req.PriceBandCriterionCount + req.TotalStandardUsage)
			if math.Abs(denominator) < eps {
				denominator = eps
			}
			cumulative := r.Scalar("growth_correction") / denominator
			result.CumulativeAdjustmentValue = cumulative
			return cumulative, nil
		}},
		{Name: "covariance_growth", Fn: func(r *Run) (interface{}, error) {
			paired := len(req.ReturnsA)
			if len(req.ReturnsB) < paired {
				paired = len(req.ReturnsB)
			}
			covariance := eps
			if paired >= 2 {
				covariance = sampleCovariance(req.ReturnsA[:paired], req.ReturnsB[:paired])
				if math.Abs(covariance) < eps {
					covariance = eps
				}
			}
			baseline := req.PreviousCovariance
			if math.Abs(baseline) < eps {
				baseline = eps
			}
			growth := math.Log(math.Max(math.Abs(covariance), eps) / math.Max(math.Abs(baseline), eps))
			if math.Abs(growth) < eps {
				growth = eps
			}
			return math.Copysign(math.Abs(growth), covariance), nil
		}},
		{Name: "operating_component", Fn: func(r *Run) (interface{}, error) {
			receivable := req.AccountsReceivablePrevious
			if math.Abs(receivable) < eps {
				receivable = eps
			}
			operatingRatio := req.OperatingProfitPrevious / receivable
			sqrtInput := operatingRatio / r.Scalar("covariance_growth") * req.ROI
			operatingAdjustment := math.Exp(math.Sqrt(math.Max(sqrtInput, 0)))

			estimated := req.EstimatedCashFlow
			if math.Abs(estimated) < eps {
				estimated = eps
			}
			cashFlowRatio := req.MarketPrice * req.ActualCashFlow / estimated
			return operatingAdjustment * cashFlowRatio, nil
		}},
		{Name: "noise_discount_component", Fn: func(r *Run) (interface{}, error) {
			noiseSum := req.NoiseFactor + req.DiscountRate
			if math.Abs(noiseSum) < eps {
				noiseSum = eps
			}
			return (1 / noiseSum) * r.Scalar("cumulative_adjustment"), nil
		}},
		{Name: "cashflow_component", Fn: func(r *Run) (interface{}, error) {
			totalCashFlow := req.CurrentTotalCashFlow
			if math.Abs(totalCashFlow) < eps {
				totalCashFlow = eps
			}
			investmentRatio := math.Abs(req.CurrentInvestmentCashFlow / totalCashFlow)
			logRatio := safeLogRatio(req.CurrentInvestmentCashFlow, req.PreviousInvestmentCashFlow)
			exponent := 1 - logRatio
			if logRatio < 0 {
				exponent = 1 + math.Abs(logRatio)
			}
			return math.Pow(investmentRatio, exponent), nil
		}},
		{Name: "expected_adjustment", Fn: func(r *Run) (interface{}, error) {
			expected := r.Scalar("operating_component") * r.Scalar("noise_discount_component") * r.Scalar("cashflow_component")
			result.ExpectedAdjustmentValue = expected
			return expected, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := (req.HighestPreferenceA + req.HighestPreferenceB) * r.Scalar("expected_adjustment")
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
