package bnwf

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/solarpile/pilefem/lateral"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
)

func sandProfile(depthFt, nspt float64) *soil.Profile {
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
		VAxialLb:      5000,
		HLateralLb:    3000,
		HeadCondition: lateral.Free,
		Mode:          Static,
	}
}

func Test_analyze_convergesAndCouplesAxialLateral(t *testing.T) {
	chk.PrintTitle("analyze_convergesAndCouplesAxialLateral")
	req := baseRequest(t)
	res, err := Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !res.Converged {
		t.Fatalf("expected convergence, notes: %v", res.Notes)
	}
	if len(res.AxialDispIn) == 0 || len(res.AxialDispIn) != len(res.DepthFt) {
		t.Fatalf("axial displacement profile inconsistent with depth: %d vs %d", len(res.AxialDispIn), len(res.DepthFt))
	}
	if res.YGround <= 0 {
		t.Fatalf("expected positive lateral head deflection, got %v", res.YGround)
	}
	if res.AxialDispIn[0] <= 0 {
		t.Fatalf("expected positive head axial settlement under a compressive head load, got %v", res.AxialDispIn[0])
	}
}

// Increasing the applied axial load increases head settlement (monotone
// t-z response).
func Test_analyze_axialSettlementIncreasesWithLoad(t *testing.T) {
	chk.PrintTitle("analyze_axialSettlementIncreasesWithLoad")
	low := baseRequest(t)
	low.VAxialLb = 2000
	high := baseRequest(t)
	high.VAxialLb = 10000

	lowRes, err := Analyze(low)
	if err != nil {
		t.Fatalf("Analyze(low) failed: %v", err)
	}
	highRes, err := Analyze(high)
	if err != nil {
		t.Fatalf("Analyze(high) failed: %v", err)
	}
	if highRes.AxialDispIn[0] <= lowRes.AxialDispIn[0] {
		t.Fatalf("heavier axial load should settle more: low=%v high=%v", lowRes.AxialDispIn[0], highRes.AxialDispIn[0])
	}
}

// The 3x3 head stiffness matrix is reported with positive direct axial and
// lateral stiffness entries.
func Test_analyze_headStiffnessReported(t *testing.T) {
	chk.PrintTitle("analyze_headStiffnessReported")
	req := baseRequest(t)
	res, err := Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res.KHead[0][0] <= 0 {
		t.Fatalf("expected positive axial head stiffness, got %v", res.KHead[0][0])
	}
	if res.KHead[1][1] <= 0 {
		t.Fatalf("expected positive lateral head stiffness, got %v", res.KHead[1][1])
	}
}

func Test_analyze_rejectsMissingSection(t *testing.T) {
	chk.PrintTitle("analyze_rejectsMissingSection")
	req := baseRequest(t)
	req.Section = nil
	if _, err := Analyze(req); err == nil {
		t.Fatalf("expected error for nil section")
	}
}

func Test_analyze_rejectsZeroEmbedment(t *testing.T) {
	chk.PrintTitle("analyze_rejectsZeroEmbedment")
	req := baseRequest(t)
	req.EmbedmentFt = 0
	if _, err := Analyze(req); err == nil {
		t.Fatalf("expected error for zero embedment")
	}
}

// Pushover mode reports load and head-displacement traces of equal length,
// both monotonically nondecreasing across the load steps.
func Test_pushoverLateral_loadTraceMonotone(t *testing.T) {
	chk.PrintTitle("pushoverLateral_loadTraceMonotone")
	req := baseRequest(t)
	req.Mode = PushoverLateral
	req.PushoverSteps = 10
	req.PushoverMaxMult = 3.0
	res, err := Analyze(req)
	if err != nil {
		t.Fatalf("Analyze(pushover) failed: %v", err)
	}
	if len(res.PushoverDisp) == 0 || len(res.PushoverLoad) != len(res.PushoverDisp) {
		t.Fatalf("pushover traces inconsistent: disp=%d load=%d", len(res.PushoverDisp), len(res.PushoverLoad))
	}
	for i := 1; i < len(res.PushoverDisp); i++ {
		if res.PushoverLoad[i] < res.PushoverLoad[i-1]-1e-9 {
			t.Fatalf("pushover load trace not nondecreasing at step %d", i)
		}
		if res.PushoverDisp[i] < res.PushoverDisp[i-1]-1e-9 {
			t.Fatalf("pushover displacement trace not nondecreasing at step %d", i)
		}
	}
}
