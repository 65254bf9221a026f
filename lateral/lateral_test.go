package lateral

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
)

func sandProfile(depthFt float64, nspt float64) *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: depthFt, Type: soil.Sand, NSPT: nspt, HasNSPT: true},
		},
		Corrections: soil.DefaultSPTCorrections(),
	}
}

func testSection(t *testing.T) *section.Section {
	t.Helper()
	sec, err := section.Lookup("w6x20")
	if err != nil {
		t.Fatalf("section lookup: %v", err)
	}
	return sec
}

func baseRequest(t *testing.T) Request {
	return Request{
		Profile:       sandProfile(25, 15),
		Section:       testSection(t),
		EmbedmentFt:   20,
		Axis:          section.Strong,
		HLb:           3000,
		HeadCondition: Free,
	}
}

func Test_analyze_converges(t *testing.T) {
	chk.PrintTitle("analyze_converges")
	req := baseRequest(t)
	res, err := Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !res.Converged {
		t.Fatalf("expected convergence, notes: %v", res.Notes)
	}
	if res.YGround <= 0 {
		t.Fatalf("expected positive head deflection for a positive applied shear, got %v", res.YGround)
	}
	if len(res.DepthFt) == 0 || len(res.YIn) != len(res.DepthFt) {
		t.Fatalf("result arrays inconsistent: depth=%d y=%d", len(res.DepthFt), len(res.YIn))
	}
}

// P4-adjacent: deflection grows monotonically with applied shear.
func Test_analyze_deflectionIncreasesWithLoad(t *testing.T) {
	chk.PrintTitle("analyze_deflectionIncreasesWithLoad")
	low := baseRequest(t)
	low.HLb = 1500
	high := baseRequest(t)
	high.HLb = 4500

	lowRes, err := Analyze(low)
	if err != nil {
		t.Fatalf("Analyze(low) failed: %v", err)
	}
	highRes, err := Analyze(high)
	if err != nil {
		t.Fatalf("Analyze(high) failed: %v", err)
	}
	if highRes.YGround <= lowRes.YGround {
		t.Fatalf("higher shear should produce larger head deflection: low=%v high=%v", lowRes.YGround, highRes.YGround)
	}
}

// Stiffer soil (higher N_spt) resists the same applied shear with less
// head deflection.
func Test_analyze_stifferSoilDeflectsLess(t *testing.T) {
	chk.PrintTitle("analyze_stifferSoilDeflectsLess")
	loose := baseRequest(t)
	loose.Profile = sandProfile(25, 8)
	dense := baseRequest(t)
	dense.Profile = sandProfile(25, 40)

	looseRes, err := Analyze(loose)
	if err != nil {
		t.Fatalf("Analyze(loose) failed: %v", err)
	}
	denseRes, err := Analyze(dense)
	if err != nil {
		t.Fatalf("Analyze(dense) failed: %v", err)
	}
	if denseRes.YGround >= looseRes.YGround {
		t.Fatalf("denser soil should deflect less: loose=%v dense=%v", looseRes.YGround, denseRes.YGround)
	}
}

// A Fixed head, unable to rotate, deflects less at the ground line than a
// Free head under the same applied shear.
func Test_analyze_fixedHeadDeflectsLessThanFree(t *testing.T) {
	chk.PrintTitle("analyze_fixedHeadDeflectsLessThanFree")
	free := baseRequest(t)
	fixed := baseRequest(t)
	fixed.HeadCondition = Fixed

	freeRes, err := Analyze(free)
	if err != nil {
		t.Fatalf("Analyze(free) failed: %v", err)
	}
	fixedRes, err := Analyze(fixed)
	if err != nil {
		t.Fatalf("Analyze(fixed) failed: %v", err)
	}
	if fixedRes.YGround >= freeRes.YGround {
		t.Fatalf("fixed head should deflect less than free head: fixed=%v free=%v", fixedRes.YGround, freeRes.YGround)
	}
}

func Test_analyze_rejectsZeroEI(t *testing.T) {
	chk.PrintTitle("analyze_rejectsZeroEI")
	req := baseRequest(t)
	zeroEI := *req.Section
	zeroEI.Ix = 0
	zeroEI.Iy = 0
	req.Section = &zeroEI
	_, err := Analyze(req)
	if err == nil {
		t.Fatalf("expected error for zero EI")
	}
	if ae, ok := err.(*errs.Error); !ok || ae.Kind != errs.Singular {
		t.Fatalf("expected errs.Singular, got %v", err)
	}
}

// Two layers carrying explicit "user-input" p-y tables, one soft and one
// stiff, produce different head deflections (the stiffer table deflects
// less), proving the override actually reaches the solved system rather
// than being silently discarded in favor of model defaults.
func Test_analyze_userDefinedTableOverrideReachesSolve(t *testing.T) {
	chk.PrintTitle("analyze_userDefinedTableOverrideReachesSolve")
	soft := baseRequest(t)
	soft.Profile = &soil.Profile{
		Layers: []soil.Layer{
			{
				ZTop: 0, Thickness: 25, Type: soil.Sand, NSPT: 15, HasNSPT: true,
				PYModel: "user-input",
				PYTable: [][2]float64{{-10, -50}, {-1, -20}, {0, 0}, {1, 20}, {10, 50}},
			},
		},
		Corrections: soil.DefaultSPTCorrections(),
	}
	stiff := baseRequest(t)
	stiff.Profile = &soil.Profile{
		Layers: []soil.Layer{
			{
				ZTop: 0, Thickness: 25, Type: soil.Sand, NSPT: 15, HasNSPT: true,
				PYModel: "user-input",
				PYTable: [][2]float64{{-10, -5000}, {-1, -2000}, {0, 0}, {1, 2000}, {10, 5000}},
			},
		},
		Corrections: soil.DefaultSPTCorrections(),
	}

	softRes, err := Analyze(soft)
	if err != nil {
		t.Fatalf("Analyze(soft) failed: %v", err)
	}
	stiffRes, err := Analyze(stiff)
	if err != nil {
		t.Fatalf("Analyze(stiff) failed: %v", err)
	}
	if stiffRes.YGround >= softRes.YGround {
		t.Fatalf("a stiffer caller-supplied p-y table should deflect less: soft=%v stiff=%v", softRes.YGround, stiffRes.YGround)
	}
}

func Test_analyze_rejectsTooFewSegments(t *testing.T) {
	chk.PrintTitle("analyze_rejectsTooFewSegments")
	req := baseRequest(t)
	req.NSegments = 2
	_, err := Analyze(req)
	if err == nil {
		t.Fatalf("expected error for too few segments")
	}
	if ae, ok := err.(*errs.Error); !ok || ae.Kind != errs.DegenerateGeometry {
		t.Fatalf("expected errs.DegenerateGeometry, got %v", err)
	}
}
