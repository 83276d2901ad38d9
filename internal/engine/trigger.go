package engine

import "FinModels/internal/domain/models"

// TierNone is the outcome label when no tier matches.
const TierNone = "none"

// Tier is one threshold rule. Tiers are data: each model declares its own
// ordered list, with predicates that must be mutually exclusive within that
// list. Adjustment carries the amount or factor the tier applies.
type Tier struct {
	Label      string
	Match      func(observed float64) bool
	Adjustment float64
}

// EvaluateTiers walks tiers in declared order and returns the first match.
// An empty list or no match yields the "none" outcome with zero adjustment.
func EvaluateTiers(tiers []Tier, observed float64) models.TriggerOutcome {
	for _, tier := range tiers {
		if tier.Match(observed) {
			return models.TriggerOutcome{Tier: tier.Label, Fired: true, Adjustment: tier.Adjustment}
		}
	}
	return models.TriggerOutcome{Tier: TierNone}
}
