package engine

// Model identifiers, matching the route slugs and metric labels.
const (
	ModelDDA     = "dda"
	ModelLAM     = "lam"
	ModelRVM     = "rvm"
	ModelCEEM    = "ceem"
	ModelBDM     = "bdm"
	ModelBELM    = "belm"
	ModelCPRM    = "cprm"
	ModelCOCIM   = "c-ocim"
	ModelFAREX   = "farex"
	ModelTCTBeam = "tct-beam"
	ModelCPMRV   = "cpmrv"
	ModelDCBPRA  = "dcbpra"
	ModelPSRAS   = "psras"
	ModelLSMRV   = "lsmrv"
)

// TriggerPolicy holds the threshold constants behind every trigger tier.
// Tier definitions are externally supplied data, loaded from configuration,
// so the documented 6-1 through 6-3-1 levels can be tuned without a rebuild.
type TriggerPolicy struct {
	LossCapMultiple          float64
	UsageThreshold           float64
	RevaluationMultiple      float64
	ReverseImpairmentHaircut float64
	CPRMRateThreshold        float64
	OCIMGrowthThreshold      float64
	FAREXIndicatorThreshold  float64
}

// DefaultTriggerPolicy returns the documented baseline thresholds.
func DefaultTriggerPolicy() TriggerPolicy {
	return TriggerPolicy{
		LossCapMultiple:          1.2,
		UsageThreshold:           0.75,
		RevaluationMultiple:      2.0,
		ReverseImpairmentHaircut: 0.30,
		CPRMRateThreshold:        0.10,
		OCIMGrowthThreshold:      0.30,
		FAREXIndicatorThreshold:  1.5,
	}
}

// Engine evaluates the model pipelines under a fixed trigger policy. It is
// stateless apart from the policy and safe for concurrent use.
type Engine struct {
	policy TriggerPolicy
}

func New(policy TriggerPolicy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() TriggerPolicy {
	return e.policy
}
