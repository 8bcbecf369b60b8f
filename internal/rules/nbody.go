package rules

// Goal tokens recognized by the n-body rule table.
const (
	NBodyMinimizeCollisions = "minimize_collisions"
	NBodyHighActivity       = "high_activity"
)

// DefaultBodyCount is used when the goal leaves the body count unset
// (zero or negative).
const DefaultBodyCount = 100

// NBodyParams is a fully resolved n-body parameter bundle.
type NBodyParams struct {
	NumBodies int32   `json:"num_bodies"`
	TimeSteps int32   `json:"time_steps"`
	DeltaT    float64 `json:"delta_t"`
	GConstant float64 `json:"g_constant"`
}

// DefaultNBodyParams returns the baseline n-body defaults used when no
// rule matches the goal token.
func DefaultNBodyParams() NBodyParams {
	return NBodyParams{
		NumBodies: DefaultBodyCount,
		TimeSteps: 200,
		DeltaT:    0.01,
		GConstant: 1.0,
	}
}

// nbodyRules maps a goal token to a pure override of the baseline record.
var nbodyRules = map[string]func(NBodyParams) NBodyParams{
	NBodyMinimizeCollisions: func(p NBodyParams) NBodyParams {
		// Lower gravity and a smaller step keep the integration stable.
		p.GConstant = 0.5
		p.DeltaT = 0.005
		return p
	},
	NBodyHighActivity: func(p NBodyParams) NBodyParams {
		p.GConstant = 5.0
		p.DeltaT = 0.02
		return p
	},
}

// DeriveNBodyParams resolves a target behavior and requested body count
// to an n-body parameter bundle. A bodyCount <= 0 is treated as unset and
// replaced by DefaultBodyCount. Unrecognized behaviors yield the baseline
// defaults; derivation never fails.
func DeriveNBodyParams(targetBehavior string, bodyCount int32) NBodyParams {
	params := DefaultNBodyParams()
	if override, ok := nbodyRules[targetBehavior]; ok {
		params = override(params)
	}
	if bodyCount > 0 {
		params.NumBodies = bodyCount
	}
	return params
}
