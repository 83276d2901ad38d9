package engine

import "testing"

func TestEvaluateTiersFirstMatchWins(t *testing.T) {
	tiers := []Tier{
		{Label: "severe", Match: func(v float64) bool { return v >= 10 }, Adjustment: 3},
		{Label: "mild", Match: func(v float64) bool { return v >= 5 }, Adjustment: 1},
	}

	got := EvaluateTiers(tiers, 12)
	if got.Tier != "severe" || !got.Fired || got.Adjustment != 3 {
		t.Fatalf("expected severe tier, got %+v", got)
	}

	got = EvaluateTiers(tiers, 7)
	if got.Tier != "mild" || got.Adjustment != 1 {
		t.Fatalf("expected mild tier, got %+v", got)
	}
}

func TestEvaluateTiersDeclaredOrder(t *testing.T) {
	// Overlapping predicates: the declared order decides, not severity.
	tiers := []Tier{
		{Label: "first", Match: func(v float64) bool { return v > 0 }},
		{Label: "second", Match: func(v float64) bool { return v > 0 }},
	}
	if got := EvaluateTiers(tiers, 1); got.Tier != "first" {
		t.Fatalf("expected first declared tier, got %q", got.Tier)
	}
}

func TestEvaluateTiersNoMatch(t *testing.T) {
	tiers := []Tier{
		{Label: "any", Match: func(v float64) bool { return v > 100 }, Adjustment: 9},
	}
	got := EvaluateTiers(tiers, 1)
	if got.Tier != TierNone || got.Fired || got.Adjustment != 0 {
		t.Fatalf("expected none outcome, got %+v", got)
	}
}

func TestEvaluateTiersEmpty(t *testing.T) {
	got := EvaluateTiers(nil, 42)
	if got.Tier != TierNone || got.Fired {
		t.Fatalf("expected none outcome on empty tiers, got %+v", got)
	}
}

func TestEvaluateTiersDeterministic(t *testing.T) {
	tiers := []Tier{
		{Label: "hit", Match: func(v float64) bool { return v >= 1.5 }, Adjustment: 2},
	}
	first := EvaluateTiers(tiers, 1.5)
	for i := 0; i < 100; i++ {
		if got := EvaluateTiers(tiers, 1.5); got != first {
			t.Fatalf("outcome changed between calls: %+v vs %+v", first, got)
		}
	}
}
