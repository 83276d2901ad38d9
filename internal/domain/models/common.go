package models

// StageResult is one named intermediate value of a pipeline run, in
// execution order. Value is either a float64 or a []float64 series.
// Stage values keep full precision; only final figures are rounded.
type StageResult struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// TriggerOutcome records which trigger tier fired for a pipeline run.
// Tier is "none" when no tier matched.
type TriggerOutcome struct {
	Tier       string  `json:"tier"`
	Fired      bool    `json:"fired"`
	Adjustment float64 `json:"adjustment"`
}

// Interest cost classification for bond valuations.
const (
	InterestTypeDiscount = "discount"
	InterestTypePremium  = "premium"
)

// Risk direction classification for growth-risk valuations.
const (
	RiskDirectionUpside   = "upside"
	RiskDirectionDownside = "downside"
)
