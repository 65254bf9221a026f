package pilefem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/solarpile/pilefem/axial"
	"github.com/solarpile/pilefem/bnwf"
	"github.com/solarpile/pilefem/broms"
	"github.com/solarpile/pilefem/group"
	"github.com/solarpile/pilefem/lateral"
	"github.com/solarpile/pilefem/loads"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
)

func testProfile() *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: 30, Type: soil.Sand, NSPT: 15, HasNSPT: true},
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

// Smoke-tests the six entry points of spec §6 against the root package's
// direct pass-through wrappers.
func Test_sixEntryPoints_callable(t *testing.T) {
	chk.PrintTitle("sixEntryPoints_callable")
	p := testProfile()
	sec := testSection(t)

	if _, err := AxialCapacity(axial.Request{Profile: p, Section: sec, EmbedmentFt: 20}); err != nil {
		t.Fatalf("AxialCapacity failed: %v", err)
	}

	if _, err := LateralAnalysis(lateral.Request{Profile: p, Section: sec, EmbedmentFt: 20, HLb: 2000}); err != nil {
		t.Fatalf("LateralAnalysis failed: %v", err)
	}

	axRes, err := AxialCapacity(axial.Request{Profile: p, Section: sec, EmbedmentFt: 20})
	if err != nil {
		t.Fatalf("AxialCapacity (for group) failed: %v", err)
	}
	if _, err := GroupAnalysis(group.Request{
		Profile:            p,
		EmbedmentFt:        20,
		Layout:             group.Layout{NRows: 2, NCols: 2, Spacing: 36, PileD: 6},
		QSingleCompression: axRes.QUltCompression,
	}); err != nil {
		t.Fatalf("GroupAnalysis failed: %v", err)
	}

	if _, err := BNWFAnalysis(bnwf.Request{
		Profile:     p,
		Section:     sec,
		EmbedmentFt: 20,
		VAxialLb:    3000,
		HLateralLb:  2000,
	}); err != nil {
		t.Fatalf("BNWFAnalysis failed: %v", err)
	}

	res := LoadCombinations(loads.Input{Dead: 400, Live: 200, WindUp: 1500}, loads.Both)
	if len(res.LRFD) == 0 || len(res.ASD) == 0 {
		t.Fatalf("LoadCombinations returned empty case lists")
	}

	if _, err := BromsLateral(broms.Request{Profile: p, Section: sec, EmbedmentFt: 15, LeverArmFt: 2}); err != nil {
		t.Fatalf("BromsLateral failed: %v", err)
	}
}
