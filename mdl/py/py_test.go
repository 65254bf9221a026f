package py

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func representativeInputs() Inputs {
	return Inputs{
		Z:         10,
		B:         24,
		GammaEff:  60,
		SigmaVEff: 1200,
		Cu:        1500,
		Phi:       32,
		Cyclic:    false,
	}
}

var sampleYs = []float64{0.01, 0.05, 0.2, 0.5, 1, 2, 5, 10, 20}

// P1: every registered p-y model is odd and nondecreasing in |y|, bounded
// by p_ult(z).
func Test_allModels_oddNondecreasingBounded(t *testing.T) {
	chk.PrintTitle("allModels_oddNondecreasingBounded")
	for _, key := range Keys() {
		m, err := New(key)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", key, err)
		}
		if ud, ok := m.(*UserDefined); ok {
			if err := ud.SetTable([][2]float64{
				{-10, -500}, {-5, -300}, {0, 0}, {5, 300}, {10, 500},
			}); err != nil {
				t.Fatalf("user-input SetTable failed: %v", err)
			}
		} else if err := m.Init(m.GetPrms(true)); err != nil {
			t.Fatalf("Init(%q) failed: %v", key, err)
		}
		ctx := m.BuildContext(representativeInputs())

		var prevAbs float64
		for _, y := range sampleYs {
			pPos, _ := m.Eval(ctx, y)
			pNeg, _ := m.Eval(ctx, -y)
			if math.Abs(pPos+pNeg) > 1e-6*(math.Abs(pPos)+math.Abs(pNeg)+1) {
				t.Fatalf("%s: p not odd at y=%v: p(y)=%v p(-y)=%v", key, y, pPos, pNeg)
			}
			absP := math.Abs(pPos)
			if absP < prevAbs-1e-6*(prevAbs+1) {
				t.Fatalf("%s: |p| decreased at y=%v: %v < previous %v", key, y, absP, prevAbs)
			}
			prevAbs = absP
			if !math.IsInf(ctx.PUlt, 1) && absP > ctx.PUlt*(1+1e-6)+1e-6 {
				t.Fatalf("%s: |p|=%v exceeds p_ult=%v at y=%v", key, absP, ctx.PUlt, y)
			}
		}
	}
}

// P9: AUTO p-y model resolution matches spec §4.4's cohesive/cohesionless
// split.
func Test_autoKey_resolvesByType(t *testing.T) {
	chk.PrintTitle("autoKey_resolvesByType")
	if AutoKey(true) != KeyMatlockSoftClay {
		t.Fatalf("AutoKey(cohesive) = %q, want %q", AutoKey(true), KeyMatlockSoftClay)
	}
	if AutoKey(false) != KeyAPISand {
		t.Fatalf("AutoKey(cohesionless) = %q, want %q", AutoKey(false), KeyAPISand)
	}
}

func Test_keys_countsEighteen(t *testing.T) {
	chk.PrintTitle("keys_countsEighteen")
	if n := len(Keys()); n != 18 {
		t.Fatalf("expected 18 registered p-y models, got %d", n)
	}
}

func Test_new_rejectsUnknownKey(t *testing.T) {
	chk.PrintTitle("new_rejectsUnknownKey")
	if _, err := New("not-a-real-model"); err == nil {
		t.Fatalf("expected error for unknown model key")
	}
}
