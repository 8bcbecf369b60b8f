package rules

// Goal tokens recognized by the heat-equation rule table.
const (
	HeatFastDiffusion = "fast_diffusion"
	HeatStable        = "stable"
)

// HeatParams is a fully resolved heat-equation parameter bundle.
// Every field is always populated, either with the baseline default or a
// rule-derived override.
type HeatParams struct {
	Width         int32   `json:"width"`
	Height        int32   `json:"height"`
	DiffusionRate float64 `json:"diffusion_rate"`
	TimeSteps     int32   `json:"time_steps"`
	DeltaT        float64 `json:"delta_t"`
	DeltaX        float64 `json:"delta_x"`
}

// DefaultHeatParams returns the baseline heat-equation defaults used when
// no rule matches the goal token.
func DefaultHeatParams() HeatParams {
	return HeatParams{
		Width:         100,
		Height:        100,
		DiffusionRate: 1.0,
		TimeSteps:     100,
		DeltaT:        0.1,
		DeltaX:        1.0,
	}
}

// heatRules maps a goal token to a pure override of the baseline record.
// Tokens are matched by exact string equality, so at most one rule can
// apply per derivation.
var heatRules = map[string]func(HeatParams) HeatParams{
	HeatFastDiffusion: func(p HeatParams) HeatParams {
		p.DiffusionRate = 5.0
		p.TimeSteps = 50
		return p
	},
	HeatStable: func(p HeatParams) HeatParams {
		p.DiffusionRate = 0.5
		p.DeltaT = 0.05
		return p
	},
}

// DeriveHeatParams resolves a target property to a heat-equation
// parameter bundle. Unrecognized properties (including the empty string)
// yield the baseline defaults; derivation never fails.
func DeriveHeatParams(targetProperty string) HeatParams {
	params := DefaultHeatParams()
	if override, ok := heatRules[targetProperty]; ok {
		return override(params)
	}
	return params
}
