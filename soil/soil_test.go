package soil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func uniformSandProfile(depthFt float64) *Profile {
	return &Profile{
		Layers: []Layer{
			{ZTop: 0, Thickness: depthFt, Type: Sand, NSPT: 15, HasNSPT: true},
		},
		Corrections: DefaultSPTCorrections(),
	}
}

func Test_stressAt_monotone(t *testing.T) {
	chk.PrintTitle("stressAt_monotone")
	p := uniformSandProfile(30)
	wt := 10.0
	p.WaterTable = &wt
	prevV, prevEff := 0.0, 0.0
	for z := 0.0; z <= 30; z += 0.5 {
		v, eff := p.StressAt(z)
		if v < prevV-1e-9 {
			t.Fatalf("sigma_v not monotone at z=%.1f: %v < %v", z, v, prevV)
		}
		if eff < prevEff-1e-9 {
			t.Fatalf("sigma'_v not monotone at z=%.1f: %v < %v", z, eff, prevEff)
		}
		if eff > v+1e-9 {
			t.Fatalf("sigma'_v > sigma_v at z=%.1f: %v > %v", z, eff, v)
		}
		if eff < -1e-9 {
			t.Fatalf("sigma'_v negative at z=%.1f: %v", z, eff)
		}
		prevV, prevEff = v, eff
	}
}

func Test_waterTable_aboveSurface_clamped(t *testing.T) {
	chk.PrintTitle("waterTable_aboveSurface_clamped")
	p := uniformSandProfile(20)
	above := -5.0
	p.WaterTable = &above
	_, effAbove := p.StressAt(10)
	clamp := 0.0
	p2 := uniformSandProfile(20)
	p2.WaterTable = &clamp
	_, effClamped := p2.StressAt(10)
	chk.Scalar(t, "effective stress with above-surface WT == clamp to z=0", 1e-9, effAbove, effClamped)
}

func Test_waterTable_belowToe_noEffect(t *testing.T) {
	chk.PrintTitle("waterTable_belowToe_noEffect")
	pDry := uniformSandProfile(20)
	pWet := uniformSandProfile(20)
	deep := 1000.0
	pWet.WaterTable = &deep
	_, e1 := pDry.StressAt(20)
	_, e2 := pWet.StressAt(20)
	chk.Scalar(t, "deep water table has no effect at the toe", 1e-9, e1, e2)
}

func Test_singleVsSplitLayer(t *testing.T) {
	chk.PrintTitle("singleVsSplitLayer")
	single := uniformSandProfile(20)
	split := &Profile{
		Layers: []Layer{
			{ZTop: 0, Thickness: 8, Type: Sand, NSPT: 15, HasNSPT: true},
			{ZTop: 8, Thickness: 12, Type: Sand, NSPT: 15, HasNSPT: true},
		},
		Corrections: DefaultSPTCorrections(),
	}
	for _, z := range []float64{0, 3, 8, 8.0001, 15, 20} {
		v1, e1 := single.StressAt(z)
		v2, e2 := split.StressAt(z)
		chk.Scalar(t, "sigma_v matches across split", 1e-6, v1, v2)
		chk.Scalar(t, "sigma'_v matches across split", 1e-6, e1, e2)
	}
}

func Test_autoFill_roundTrip(t *testing.T) {
	chk.PrintTitle("autoFill_roundTrip")
	gamma := 118.0
	phi := 32.0
	p := &Profile{
		Layers: []Layer{
			{ZTop: 0, Thickness: 10, Type: Sand, NSPT: 15, HasNSPT: true, Gamma: &gamma, Phi: &phi},
		},
		Corrections: DefaultSPTCorrections(),
	}
	l := &p.Layers[0]
	if p.GammaOf(l, false) != gamma {
		t.Fatalf("explicit gamma was overwritten by auto-fill")
	}
	if p.PhiOf(l) != phi {
		t.Fatalf("explicit phi was overwritten by auto-fill")
	}
}

func Test_n60_and_n1_60(t *testing.T) {
	chk.PrintTitle("n60_and_n1_60")
	p := uniformSandProfile(10)
	l := &p.Layers[0]
	n60 := p.N60(l)
	chk.Scalar(t, "N60 = N_spt * 0.6", 1e-9, n60, 15*0.6)
	n1 := p.N1_60(l)
	if n1 <= 0 || n1 > 2*n60+1e-6 {
		t.Fatalf("N1_60 out of plausible range: %v (N60=%v)", n1, n60)
	}
}

func Test_validate_rejectsGap(t *testing.T) {
	chk.PrintTitle("validate_rejectsGap")
	p := &Profile{
		Layers: []Layer{
			{ZTop: 0, Thickness: 5, Type: Sand},
			{ZTop: 6, Thickness: 5, Type: Sand},
		},
	}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected validation error for gapped profile")
	}
}
