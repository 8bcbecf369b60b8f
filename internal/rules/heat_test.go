package rules

import "testing"

func TestDeriveHeatParams(t *testing.T) {
	tests := []struct {
		name           string
		targetProperty string
		want           HeatParams
	}{
		{
			name:           "fast diffusion raises rate and halves steps",
			targetProperty: "fast_diffusion",
			want:           HeatParams{Width: 100, Height: 100, DiffusionRate: 5.0, TimeSteps: 50, DeltaT: 0.1, DeltaX: 1.0},
		},
		{
			name:           "stable lowers rate and tightens step",
			targetProperty: "stable",
			want:           HeatParams{Width: 100, Height: 100, DiffusionRate: 0.5, TimeSteps: 100, DeltaT: 0.05, DeltaX: 1.0},
		},
		{
			name:           "unknown token falls back to baseline",
			targetProperty: "unknown_xyz",
			want:           DefaultHeatParams(),
		},
		{
			name:           "empty token falls back to baseline",
			targetProperty: "",
			want:           DefaultHeatParams(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveHeatParams(tt.targetProperty)
			if got != tt.want {
				t.Fatalf("DeriveHeatParams(%q) = %+v, want %+v", tt.targetProperty, got, tt.want)
			}
		})
	}
}

func TestDeriveHeatParamsIsPure(t *testing.T) {
	first := DeriveHeatParams("fast_diffusion")
	second := DeriveHeatParams("fast_diffusion")
	if first != second {
		t.Fatalf("expected identical results for identical input, got %+v then %+v", first, second)
	}
}

func TestDeriveHeatParamsDoesNotMutateBaseline(t *testing.T) {
	before := DefaultHeatParams()
	_ = DeriveHeatParams("stable")
	after := DefaultHeatParams()
	if before != after {
		t.Fatalf("baseline changed across derivations: %+v vs %+v", before, after)
	}
}

func TestDefaultHeatParamsFullyPopulated(t *testing.T) {
	p := DefaultHeatParams()
	if p.Width == 0 || p.Height == 0 || p.DiffusionRate == 0 || p.TimeSteps == 0 || p.DeltaT == 0 || p.DeltaX == 0 {
		t.Fatalf("expected every baseline field to be non-zero, got %+v", p)
	}
}
