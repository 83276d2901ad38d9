package engine

import (
	"math"

	"FinModels/internal/domain/models"
)

// standardValueSource is one entry of the CEEM selection policy: sources are
// probed in declared order and the first that yields a value wins.
type standardValueSource struct {
	Label  string
	Lookup func() (float64, bool)
}

// EvaluateCEEM runs the consumable expense pipeline. Standard-value
// selection is an ordered policy list, not input type inspection.
func (e *Engine) EvaluateCEEM(req models.CEEMRequest) (*models.CEEMResult, error) {
	result := &models.CEEMResult{ExpenseLabel: req.ExpenseLabel}

	pipe := Pipeline{Model: ModelCEEM, Stages: []Stage{
		{Name: "daily_usage", Fn: func(r *Run) (interface{}, error) {
			if req.CumulativeUsageDays == 0 {
				return nil, divisionByZeroErrorf("cumulative usage days is zero")
			}
			daily := req.CumulativeUsageUnits / req.CumulativeUsageDays
			result.DailyAverageUsageUnits = daily
			return daily, nil
		}},
		{Name: "standard_value_selection", Fn: func(r *Run) (interface{}, error) {
			nonQuantitative := r.Scalar("daily_usage") * req.CurrentUnitCost * 365
			result.StandardValueNonQuantitative = nonQuantitative
			if req.QuantitativeUsageLimit != nil {
				quantitative := *req.QuantitativeUsageLimit * req.CurrentUnitCost
				result.StandardValueQuantitative = &quantitative
			}

			policy := []standardValueSource{
				{Label: models.StandardSourceOverride, Lookup: func() (float64, bool) {
					if req.StandardValueOverride != nil {
						return *req.StandardValueOverride, true
					}
					return 0, false
				}},
				{Label: models.StandardSourceQuantitative, Lookup: func() (float64, bool) {
					if result.StandardValueQuantitative != nil {
						return *result.StandardValueQuantitative, true
					}
					return 0, false
				}},
				{Label: models.StandardSourceNonQuantitative, Lookup: func() (float64, bool) {
					return nonQuantitative, true
				}},
			}
			for _, source := range policy {
				if value, ok := source.Lookup(); ok {
					result.SelectedStandardUsageValue = value
					result.SelectedStandardSource = source.Label
					return value, nil
				}
			}
			return nil, validationErrorf("no standard value source available")
		}},
		{Name: "change_vs_prior_period", Fn: func(r *Run) (interface{}, error) {
			selected := r.Scalar("standard_value_selection")
			result.TotalConsumableUsageValue = req.CumulativeUsageUnits * req.CurrentUnitCost
			var changeRate float64
			if selected != 0 {
				changeRate = (result.TotalConsumableUsageValue - selected) / selected
			}
			result.UsageChangeRate = changeRate
			return changeRate, nil
		}},
		{Name: "market_change_index", Fn: func(r *Run) (interface{}, error) {
			selected := r.Scalar("standard_value_selection")
			if selected <= 0 || req.PreviousYearStandardUsageValue <= 0 {
				return nil, invalidDomainErrorf("standard value ratio must be positive for the market change logarithm")
			}
			index := math.Log(selected / req.PreviousYearStandardUsageValue)
			result.MarketChangeIndex = index
			return index, nil
		}},
		{Name: "market_sensitivity_adjust", Fn: func(r *Run) (interface{}, error) {
			effectiveYears := req.UsefulLifeYears + math.Max(req.ElapsedYears-1, 0)
			sensitivity := math.Exp(r.Scalar("market_change_index")*effectiveYears) * req.Beta
			result.MarketSensitivityValue = sensitivity
			return sensitivity, nil
		}},
		{Name: "final_figure", Fn: func(r *Run) (interface{}, error) {
			final := result.TotalConsumableUsageValue * (1 + r.Scalar("change_vs_prior_period")) * r.Scalar("market_sensitivity_adjust")
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

// EvaluateBDM runs the bond depreciation pipeline, classifying the interest
// cost as discount or premium.
func (e *Engine) EvaluateBDM(req models.BDMRequest) (*models.BDMResult, error) {
	result := &models.BDMResult{BondLabel: req.BondLabel}

	pipe := Pipeline{Model: ModelBDM, Stages: []Stage{
		{Name: "daily_bond_usage", Fn: func(r *Run) (interface{}, error) {
			if req.BondContractDays == 0 {
				return nil, divisionByZeroErrorf("bond contract days is zero")
			}
			daily := req.BondIssuePrice / req.BondContractDays
			result.DailyEstimatedUsage = daily
			return daily, nil
		}},
		{Name: "estimated_value_ps", Fn: func(r *Run) (interface{}, error) {
			estimated := req.BondIssuePrice - r.Scalar("daily_bond_usage")*req.ElapsedDaysSinceContract
			result.EstimatedValuePS = estimated
			return estimated, nil
		}},
		{Name: "market_beta", Fn: func(r *Run) (interface{}, error) {
			previous := req.PreviousValuation
			if previous == 0 {
				previous = req.CurrentFairValue
			}
			beta := 1.0
			if previous != 0 {
				beta = 1 + (r.Scalar("estimated_value_ps")-previous)/previous
			}
			result.MarketBeta = beta
			return beta, nil
		}},
		{Name: "final_book_value", Fn: func(r *Run) (interface{}, error) {
			return req.CurrentFairValue * r.Scalar("market_beta"), nil
		}},
		{Name: "interest_classification", Fn: func(r *Run) (interface{}, error) {
			bookValue := r.Scalar("final_book_value")
			estimated := r.Scalar("estimated_value_ps")
			if bookValue < estimated {
				result.InterestCost = estimated - bookValue
				result.InterestType = models.InterestTypeDiscount
			} else {
				result.InterestCost = bookValue - estimated
				result.InterestType = models.InterestTypePremium
			}
			result.FinalFigure = RoundMoney(bookValue)
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

// EvaluateBELM runs the expected loss pipeline. A structurally valid zero
// debtor amount yields zero ratios; only genuine zero denominators fail.
func (e *Engine) EvaluateBELM(req models.BELMRequest) (*models.BELMResult, error) {
	result := &models.BELMResult{DebtorLabel: req.DebtorLabel}

	pipe := Pipeline{Model: ModelBELM, Stages: []Stage{
		{Name: "debt_repayment_projection", Fn: func(r *Run) (interface{}, error) {
			daysRemaining := req.RemainingYears * 365
			if daysRemaining == 0 {
				return nil, divisionByZeroErrorf("remaining years is zero")
			}
			daily := req.DebtorTotalAmount / daysRemaining
			result.DailyEstimatedRepayment = daily
			result.ExpectedRepaymentAtEvaluation = daily * req.ElapsedDays
			return result.ExpectedRepaymentAtEvaluation, nil
		}},
		{Name: "interest_adjustment", Fn: func(r *Run) (interface{}, error) {
			expected := r.Scalar("debt_repayment_projection")
			adjustment := 1.0
			if req.DebtorTotalAmount != 0 {
				numerator := (req.DebtorTotalAmount - expected) - (expected - req.ActualRepaymentAmount)
				adjustment = 1 + numerator/req.DebtorTotalAmount
			}
			result.InterestRateAdjustment = adjustment
			result.ActualInterestCost = (req.DebtorTotalAmount - req.ActualRepaymentAmount) * (req.InterestRate * adjustment)
			return adjustment, nil
		}},
		{Name: "bad_debt_ratio", Fn: func(r *Run) (interface{}, error) {
			if req.TotalDebtBalanceAllCounterparties == 0 {
				return nil, divisionByZeroErrorf("total debt balance across counterparties is zero")
			}
			if req.LastYearTotalRepaymentAll == 0 {
				return nil, divisionByZeroErrorf("last year total repayment across counterparties is zero")
			}
			preliminary := req.DebtorTotalAmount / req.TotalDebtBalanceAllCounterparties
			additional := req.LastYearCounterpartyRepayment / req.LastYearTotalRepaymentAll
			result.PreliminaryBadDebtRatio = preliminary
			result.FinalBadDebtRatio = preliminary + math.Max(0, additional)
			result.FinalFigure = result.FinalBadDebtRatio
			return result.FinalBadDebtRatio, nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		return nil, err
	}
	result.Stages = stages
	return result, nil
}
