package engine

import (
	"math"

	"FinModels/internal/domain/models"
)

func constantSeries(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// EvaluateDDA runs the dynamic depreciation pipeline: usage variance against
// the planned calendar, log shocks over the market series, a CAPM beta
// linking the two, depreciation, market-sensitive revaluation, and an IFRS
// loss cap with an observable was_capped flag.
func (e *Engine) EvaluateDDA(req models.DDARequest) (*models.DDAResult, error) {
	planned := req.PlannedUsageDaysPerYear
	if len(planned) == 0 {
		planned = constantSeries(365, req.UsefulLifeYears)
	}
	actual := req.ActualUsageDaysPerYear
	if len(actual) == 0 {
		actual = planned
	}
	market := req.MarketPriceSeries
	if len(market) == 0 {
		market = constantSeries(req.AcquisitionCost, len(planned)+1)
	} else if len(market) == len(planned) {
		// One price per year reads as period-end prices; the last price
		// carries forward to close the final interval.
		extended := make([]float64, 0, len(market)+1)
		extended = append(extended, market...)
		market = append(extended, market[len(market)-1])
	}

	depreciable := math.Max(req.AcquisitionCost-req.SalvageValue, 0)
	result := &models.DDAResult{AssetLabel: req.AssetLabel}

	pipe := Pipeline{Model: ModelDDA, Stages: []Stage{
		{Name: "usage_variance", Fn: func(r *Run) (interface{}, error) {
			variance, err := UsageVariance(actual, planned)
			if err != nil {
				return nil, err
			}
			result.UsageVariance = variance
			return variance, nil
		}},
		{Name: "market_log_shock", Fn: func(r *Run) (interface{}, error) {
			shocks, err := MarketLogShock(market)
			if err != nil {
				return nil, err
			}
			result.MarketLogShock = shocks
			return shocks, nil
		}},
		{Name: "capm_beta", Fn: func(r *Run) (interface{}, error) {
			variance := r.Series("usage_variance")
			shocks := r.Series("market_log_shock")
			if len(shocks) != len(variance) {
				return nil, lengthMismatchErrorf("usage variance has %d periods, market shocks have %d", len(variance), len(shocks))
			}
			// A flat market carries no covariance signal. The asset holds
			// its book value instead of failing on zero market variance,
			// which also covers the defaulted constant-price series.
			if isFlatSeries(shocks) {
				result.CAPMBeta = 0
				return 0.0, nil
			}
			beta, err := CAPMBeta(variance, shocks)
			if err != nil {
				return nil, err
			}
			result.CAPMBeta = beta
			return beta, nil
		}},
		{Name: "total_depreciation", Fn: func(r *Run) (interface{}, error) {
			unused := req.UnusedDaysPerYear
			if len(unused) == 0 {
				unused = make([]float64, len(planned))
				for i := range planned {
					unused[i] = math.Max(planned[i]-actual[i], 0)
				}
			} else if len(unused) != len(planned) {
				return nil, lengthMismatchErrorf("unused days have %d periods, planned days have %d", len(unused), len(planned))
			}
			var effectiveDays float64
			for i := range planned {
				effectiveDays += math.Max(planned[i]-unused[i], 0)
			}
			if effectiveDays == 0 {
				return nil, divisionByZeroErrorf("effective usage days sum to zero")
			}
			dailyDepreciation := depreciable / effectiveDays
			variance := r.Series("usage_variance")
			var weightedDays float64
			for i := range actual {
				weightedDays += actual[i] * (1 + variance[i])
			}
			raw := dailyDepreciation * weightedDays * req.AdjustmentFactor
			total := math.Min(math.Max(raw, 0), depreciable)
			result.TotalDepreciation = total
			return total, nil
		}},
		{Name: "market_sensitivity", Fn: func(r *Run) (interface{}, error) {
			cumulativeShock := sumSeries(r.Series("market_log_shock"))
			sensitivity := math.Exp(cumulativeShock*req.UsageElasticity) * req.Beta
			result.MarketSensitivity = sensitivity
			return sensitivity, nil
		}},
		{Name: "apply_cap", Fn: func(r *Run) (interface{}, error) {
			bookValue := req.AcquisitionCost - r.Scalar("total_depreciation")
			revalued := bookValue * r.Scalar("market_sensitivity")
			uncapped := bookValue + r.Scalar("capm_beta")*(revalued-bookValue)

			lower := req.SalvageValue
			upper := e.policy.LossCapMultiple * req.AcquisitionCost
			capped, wasCapped := ApplyCap(uncapped, lower, upper)

			result.BookValue = bookValue
			result.UncappedValue = uncapped
			result.WasCapped = wasCapped
			result.Trigger = EvaluateTiers([]Tier{
				{
					Label:      "6-3-1",
					Match:      func(v float64) bool { return v < lower },
					Adjustment: lower - uncapped,
				},
			}, uncapped)
			return capped, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := RoundMoney(r.Scalar("apply_cap"))
			result.FinalFigure = final
			return final, nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		return nil, err
	}
	result.Stages = stages
	return result, nil
}

// EvaluateLAM runs the lease amortisation pipeline. The trigger tiers 6-1
// through 6-3-1 are declared most severe first with mutually exclusive
// predicates, so evaluation order is explicit data rather than control flow.
func (e *Engine) EvaluateLAM(req models.LAMRequest) (*models.LAMResult, error) {
	periods := req.LeaseTermYears
	planned := req.PlannedUsageDaysPerPeriod
	if len(planned) == 0 {
		planned = constantSeries(365, periods)
	}
	actual := req.ActualUsageDaysPerPeriod
	if len(actual) == 0 {
		actual = planned
	}

	fairValues := req.MarketFairValues
	if len(fairValues) == 0 {
		fairValues = []float64{req.InitialAssetValue, req.InitialAssetValue}
	} else if len(fairValues) == periods {
		fairValues = append([]float64{req.InitialAssetValue}, fairValues...)
	}

	ifrsLossTotal := sumSeries(req.IFRSRevaluationLosses)
	result := &models.LAMResult{LeaseLabel: req.LeaseLabel}

	pipe := Pipeline{Model: ModelLAM, Stages: []Stage{
		{Name: "daily_lease_amortisation", Fn: func(r *Run) (interface{}, error) {
			unused := req.UnusedDaysPerPeriod
			if len(unused) == 0 {
				unused = make([]float64, len(planned))
				for i := range planned {
					if i < len(actual) {
						unused[i] = math.Max(planned[i]-actual[i], 0)
					}
				}
			} else if len(unused) != len(planned) {
				return nil, lengthMismatchErrorf("unused days have %d periods, planned days have %d", len(unused), len(planned))
			}
			effectiveDays := math.Max(sumSeries(planned)-sumSeries(unused), 1)
			daily := req.InitialAssetValue / effectiveDays
			result.DailyLeaseAmortization = daily
			return daily, nil
		}},
		{Name: "usage_ratio", Fn: func(r *Run) (interface{}, error) {
			measure, standard := actual, planned
			if len(req.StandardDailyUsageHours) > 0 {
				standard = req.StandardDailyUsageHours
			}
			if len(req.ActualDailyUsageHours) > 0 {
				measure = req.ActualDailyUsageHours
			}
			ratio, err := UsageVariance(measure, standard)
			if err != nil {
				return nil, err
			}
			result.UsageRatio = ratio
			return ratio, nil
		}},
		{Name: "amortisation_total", Fn: func(r *Run) (interface{}, error) {
			ratio := r.Series("usage_ratio")
			if len(ratio) != len(actual) {
				return nil, lengthMismatchErrorf("usage ratio has %d periods, actual days have %d", len(ratio), len(actual))
			}
			daily := r.Scalar("daily_lease_amortisation")
			var total float64
			for i := range actual {
				total += daily * actual[i] * (1 + ratio[i])
			}
			total = math.Min(math.Max(total, 0), math.Max(req.InitialAssetValue-req.ResidualValue, 0))
			result.AmortizationTotal = total
			return total, nil
		}},
		{Name: "interest_expense", Fn: func(r *Run) (interface{}, error) {
			interest := req.InitialAssetValue * req.DiscountRate * float64(periods)
			result.InterestExpense = interest
			return interest, nil
		}},
		{Name: "market_change_index", Fn: func(r *Run) (interface{}, error) {
			shocks, err := MarketLogShock(fairValues)
			if err != nil {
				return nil, err
			}
			index := sumSeries(shocks)
			result.MarketChangeIndex = index
			return index, nil
		}},
		{Name: "market_sensitivity", Fn: func(r *Run) (interface{}, error) {
			sensitivity := math.Exp(r.Scalar("market_change_index")*float64(periods)) * req.Beta
			result.MarketSensitivity = sensitivity
			return sensitivity, nil
		}},
		{Name: "trigger_evaluate", Fn: func(r *Run) (interface{}, error) {
			amortised := r.Scalar("amortisation_total")
			baseAfter := math.Max(req.InitialAssetValue-amortised, req.ResidualValue)
			baseline := baseAfter * r.Scalar("market_sensitivity")
			result.BaselineRevaluation = baseline

			gainLoss := baseline - req.InitialAssetValue
			lossMagnitude := math.Max(0, -gainLoss)

			lossCap := e.policy.LossCapMultiple * req.InitialAssetValue
			capacity := math.Max(0, lossCap-amortised)
			cappedLossValue := req.InitialAssetValue - math.Min(lossMagnitude, capacity)

			usageShare := sumSeries(actual) / math.Max(float64(periods)*365, 1)
			reversalEligible := usageShare >= e.policy.UsageThreshold &&
				math.Abs(gainLoss) > e.policy.RevaluationMultiple*req.InitialAssetValue

			v1 := (baseline - req.ResidualValue) * (1 - e.policy.ReverseImpairmentHaircut)
			v2 := v1 - ifrsLossTotal
			v3 := v2 - ifrsLossTotal
			excessive := func(v float64) bool {
				return math.Abs(v) > e.policy.RevaluationMultiple*req.InitialAssetValue
			}

			outcome := EvaluateTiers([]Tier{
				{
					Label:      "6-3-1",
					Match:      func(float64) bool { return amortised+lossMagnitude >= lossCap },
					Adjustment: cappedLossValue,
				},
				{
					Label:      "6-3",
					Match:      func(float64) bool { return reversalEligible && excessive(v1) && excessive(v2) },
					Adjustment: v3,
				},
				{
					Label:      "6-2",
					Match:      func(float64) bool { return reversalEligible && excessive(v1) && !excessive(v2) },
					Adjustment: v2,
				},
				{
					Label:      "6-1",
					Match:      func(float64) bool { return reversalEligible && !excessive(v1) },
					Adjustment: v1,
				},
			}, gainLoss)

			postTrigger := baseline
			if outcome.Fired {
				postTrigger = outcome.Adjustment
			}
			result.Trigger = outcome
			result.PostTriggerValue = postTrigger
			return postTrigger, nil
		}},
		{Name: "apply_cap", Fn: func(r *Run) (interface{}, error) {
			amortised := r.Scalar("amortisation_total")
			baseline := result.BaselineRevaluation
			postTrigger := r.Scalar("trigger_evaluate")
			gainLoss := postTrigger - req.InitialAssetValue
			lossComponent := math.Max(0, -gainLoss)

			if amortised+lossComponent > req.InitialAssetValue {
				result.TerminationAdjustment = (baseline - req.InitialAssetValue) - gainLoss
				result.RevaluationGainLoss = 0
				result.WasCapped = true
				postTrigger = req.InitialAssetValue
			} else {
				result.TerminationAdjustment = (baseline - req.InitialAssetValue) - gainLoss
				result.RevaluationGainLoss = gainLoss
			}
			capped, flag := ApplyCap(postTrigger, req.ResidualValue, math.Inf(1))
			result.WasCapped = result.WasCapped || flag
			return capped, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := RoundMoney(r.Scalar("apply_cap"))
			result.FinalFigure = final
			return final, nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		return nil, err
	}
	result.Stages = stages
	return result, nil
}

// EvaluateRVM runs the resource valuation pipeline.
func (e *Engine) EvaluateRVM(req models.RVMRequest) (*models.RVMResult, error) {
	result := &models.RVMResult{ResourceLabel: req.ResourceLabel}

	pipe := Pipeline{Model: ModelRVM, Stages: []Stage{
		{Name: "daily_average", Fn: func(r *Run) (interface{}, error) {
			if req.CumulativeExtractionDays == 0 {
				return nil, divisionByZeroErrorf("cumulative extraction days is zero")
			}
			daily := req.CumulativeExtractionAmount / req.CumulativeExtractionDays
			result.DailyAverageExtraction = daily
			return daily, nil
		}},
		{Name: "standard_vs_actual_extraction", Fn: func(r *Run) (interface{}, error) {
			totalDays := req.TotalExtractionDaysAtEvaluation
			if totalDays == 0 {
				totalDays = req.CumulativeExtractionDays
			}
			standard := r.Scalar("daily_average") * req.CurrentUnitExtractionValue * totalDays
			result.StandardExtractionValue = standard
			result.TotalExtractionValue = req.CumulativeExtractionAmount * req.CurrentUnitExtractionValue
			return standard, nil
		}},
		{Name: "extraction_rate", Fn: func(r *Run) (interface{}, error) {
			standard := r.Scalar("standard_vs_actual_extraction")
			var rate float64
			if standard != 0 {
				rate = (result.TotalExtractionValue - standard) / standard
			}
			result.ExtractionRate = rate
			return rate, nil
		}},
		{Name: "market_change_index", Fn: func(r *Run) (interface{}, error) {
			previous := req.PreviousExtractionValue
			if previous == 0 {
				previous = result.StandardExtractionValue
			}
			if previous == 0 {
				previous = result.TotalExtractionValue
			}
			var index float64
			if previous > 0 && result.TotalExtractionValue > 0 {
				index = math.Log(result.TotalExtractionValue / previous)
			}
			result.MarketChangeIndex = index
			return index, nil
		}},
		{Name: "market_sensitivity", Fn: func(r *Run) (interface{}, error) {
			effectiveYears := math.Max(req.TotalYearsOfUsefulLife-req.ElapsedYears, 0)
			sensitivity := math.Exp(r.Scalar("market_change_index")*effectiveYears) * req.Beta
			result.MarketSensitivity = sensitivity
			return sensitivity, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := result.TotalExtractionValue * (1 + r.Scalar("extraction_rate")) * r.Scalar("market_sensitivity")
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
