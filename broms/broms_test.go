package broms

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
)

func deepClayProfile(cu float64) *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: 50, Type: soil.Clay, CuUser: &cu},
		},
	}
}

func deepSandProfile() *soil.Profile {
	phi := 32.0
	gamma := 115.0
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: 50, Type: soil.Sand, Phi: &phi, Gamma: &gamma, NSPT: 20, HasNSPT: true},
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

// HUltLb is always the governing minimum of the two failure modes, and
// HAllowLb applies the documented factor of safety.
func Test_governingIsMinimumOfModes(t *testing.T) {
	chk.PrintTitle("governingIsMinimumOfModes")
	sec := testSection(t)
	cases := []Request{
		{Profile: deepClayProfile(1000), Section: sec, EmbedmentFt: 15, Axis: section.Strong, LeverArmFt: 2},
		{Profile: deepSandProfile(), Section: sec, EmbedmentFt: 15, Axis: section.Strong, LeverArmFt: 2},
	}
	for _, req := range cases {
		res, err := Analyze(req)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if res.HUltLb > res.HUltLongLb+1e-6 {
			t.Fatalf("HUltLb %v exceeds HUltLongLb %v", res.HUltLb, res.HUltLongLb)
		}
		if res.HUltShortLb > 0 && res.HUltLb > res.HUltShortLb+1e-6 {
			t.Fatalf("HUltLb %v exceeds HUltShortLb %v", res.HUltLb, res.HUltShortLb)
		}
		chk.Scalar(t, "HAllowLb = HUltLb / FS", 1e-9, res.HAllowLb, res.HUltLb/2.5)
	}
}

// Short-pile capacity increases with embedment in a cohesive profile,
// since a longer pile mobilizes more passive resistance ahead of it.
func Test_shortPileCapacity_increasesWithEmbedment(t *testing.T) {
	chk.PrintTitle("shortPileCapacity_increasesWithEmbedment")
	sec := testSection(t)
	shallow := Request{Profile: deepClayProfile(1000), Section: sec, EmbedmentFt: 10, Axis: section.Strong, LeverArmFt: 2}
	deep := shallow
	deep.EmbedmentFt = 20
	rShallow, err := Analyze(shallow)
	if err != nil {
		t.Fatalf("Analyze(shallow) failed: %v", err)
	}
	rDeep, err := Analyze(deep)
	if err != nil {
		t.Fatalf("Analyze(deep) failed: %v", err)
	}
	if rDeep.HUltShortLb <= rShallow.HUltShortLb {
		t.Fatalf("deeper embedment did not increase short-pile capacity: shallow=%v deep=%v", rShallow.HUltShortLb, rDeep.HUltShortLb)
	}
}

func Test_analyze_rejectsInvalidInputs(t *testing.T) {
	chk.PrintTitle("analyze_rejectsInvalidInputs")
	sec := testSection(t)
	good := Request{Profile: deepClayProfile(1000), Section: sec, EmbedmentFt: 15, Axis: section.Strong, LeverArmFt: 2}

	noProfile := good
	noProfile.Profile = &soil.Profile{}
	if _, err := Analyze(noProfile); err == nil {
		t.Fatalf("expected error for empty profile")
	}

	noSection := good
	noSection.Section = nil
	if _, err := Analyze(noSection); err == nil {
		t.Fatalf("expected error for nil section")
	}

	zeroEmbed := good
	zeroEmbed.EmbedmentFt = 0
	if _, err := Analyze(zeroEmbed); err == nil {
		t.Fatalf("expected error for zero embedment")
	}

	negLever := good
	negLever.LeverArmFt = -1
	if _, err := Analyze(negLever); err == nil {
		t.Fatalf("expected error for negative lever arm")
	}
}
