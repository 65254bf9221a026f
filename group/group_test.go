package group

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/solarpile/pilefem/soil"
)

func sandProfile(depthFt float64) *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: depthFt, Type: soil.Sand, NSPT: 15, HasNSPT: true},
		},
		Corrections: soil.DefaultSPTCorrections(),
	}
}

func clayProfile(depthFt, cu float64) *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: depthFt, Type: soil.Clay, CuUser: &cu},
		},
	}
}

// P6: group efficiency never exceeds 1 and the governing capacity never
// exceeds the sum of unreduced single-pile capacities.
func Test_groupEfficiency_boundedByOne(t *testing.T) {
	chk.PrintTitle("groupEfficiency_boundedByOne")
	req := Request{
		Profile:            sandProfile(30),
		EmbedmentFt:        20,
		Layout:             Layout{NRows: 3, NCols: 3, Spacing: 36, PileD: 6},
		QSingleCompression: 50000,
	}
	res, err := Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res.ConverseLabarre > 1.0+1e-9 || res.ConverseLabarre < 0 {
		t.Fatalf("Converse-Labarre efficiency out of [0,1]: %v", res.ConverseLabarre)
	}
	if res.AverageLateralEff > 1.0+1e-9 || res.AverageLateralEff < 0 {
		t.Fatalf("average lateral p-multiplier out of [0,1]: %v", res.AverageLateralEff)
	}
	sumSingle := float64(req.Layout.NRows*req.Layout.NCols) * req.QSingleCompression
	if res.QGroupGoverning > sumSingle+1e-6 {
		t.Fatalf("governing group capacity %v exceeds sum of single-pile capacities %v", res.QGroupGoverning, sumSingle)
	}
}

// S4-style: widely spaced piles approach full efficiency (no overlap of
// influence zones); tightly spaced piles are reduced well below 1.
func Test_groupEfficiency_increasesWithSpacing(t *testing.T) {
	chk.PrintTitle("groupEfficiency_increasesWithSpacing")
	wide := Request{
		Profile:            sandProfile(30),
		EmbedmentFt:        20,
		Layout:             Layout{NRows: 2, NCols: 2, Spacing: 96, PileD: 6},
		QSingleCompression: 50000,
	}
	tight := wide
	tight.Layout.Spacing = 18

	wideRes, err := Analyze(wide)
	if err != nil {
		t.Fatalf("Analyze(wide) failed: %v", err)
	}
	tightRes, err := Analyze(tight)
	if err != nil {
		t.Fatalf("Analyze(tight) failed: %v", err)
	}
	if tightRes.ConverseLabarre >= wideRes.ConverseLabarre {
		t.Fatalf("tight spacing efficiency %v should be less than wide spacing efficiency %v", tightRes.ConverseLabarre, wideRes.ConverseLabarre)
	}
	if tightRes.AverageLateralEff >= wideRes.AverageLateralEff {
		t.Fatalf("tight spacing lateral efficiency %v should be less than wide spacing %v", tightRes.AverageLateralEff, wideRes.AverageLateralEff)
	}
}

// Block failure only applies when a cohesive layer exists within the
// embedment; a purely cohesionless profile never reports it.
func Test_blockFailure_onlyForCohesive(t *testing.T) {
	chk.PrintTitle("blockFailure_onlyForCohesive")
	sandReq := Request{
		Profile:            sandProfile(30),
		EmbedmentFt:        20,
		Layout:             Layout{NRows: 3, NCols: 3, Spacing: 30, PileD: 6},
		QSingleCompression: 40000,
	}
	sandRes, err := Analyze(sandReq)
	if err != nil {
		t.Fatalf("Analyze(sand) failed: %v", err)
	}
	if sandRes.BlockApplicable {
		t.Fatalf("block failure should not apply for a purely cohesionless profile")
	}

	clayReq := sandReq
	clayReq.Profile = clayProfile(30, 1200)
	clayRes, err := Analyze(clayReq)
	if err != nil {
		t.Fatalf("Analyze(clay) failed: %v", err)
	}
	if !clayRes.BlockApplicable {
		t.Fatalf("block failure should apply for a cohesive profile")
	}
	if clayRes.QBlock <= 0 {
		t.Fatalf("QBlock must be positive when applicable, got %v", clayRes.QBlock)
	}
}

func Test_analyze_rejectsInvalidLayout(t *testing.T) {
	chk.PrintTitle("analyze_rejectsInvalidLayout")
	base := Request{
		Profile:            sandProfile(30),
		EmbedmentFt:        20,
		Layout:             Layout{NRows: 2, NCols: 2, Spacing: 30, PileD: 6},
		QSingleCompression: 40000,
	}
	zeroRows := base
	zeroRows.Layout.NRows = 0
	if _, err := Analyze(zeroRows); err == nil {
		t.Fatalf("expected error for zero rows")
	}

	tooClose := base
	tooClose.Layout.Spacing = 3
	if _, err := Analyze(tooClose); err == nil {
		t.Fatalf("expected error for spacing below minimum")
	}

	noSingle := base
	noSingle.QSingleCompression = 0
	if _, err := Analyze(noSingle); err == nil {
		t.Fatalf("expected error for zero Q_single_compression")
	}
}
