package axial

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
)

func uniformClayProfile(depthFt, cu float64) *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: depthFt, Type: soil.Clay, CuUser: &cu},
		},
		Corrections: soil.DefaultSPTCorrections(),
	}
}

func uniformSandProfile(depthFt float64) *soil.Profile {
	return &soil.Profile{
		Layers: []soil.Layer{
			{ZTop: 0, Thickness: depthFt, Type: soil.Sand, NSPT: 20, HasNSPT: true},
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

// P3 (partial): tension capacity never exceeds compression capacity, and
// compression capacity is positive, for both the alpha and beta methods.
func Test_capacity_tensionBoundedByCompression(t *testing.T) {
	chk.PrintTitle("capacity_tensionBoundedByCompression")
	sec := testSection(t)
	cases := []struct {
		name string
		p    *soil.Profile
	}{
		{"clay-alpha", uniformClayProfile(30, 1200)},
		{"sand-beta", uniformSandProfile(30)},
	}
	for _, c := range cases {
		req := Request{Profile: c.p, Section: sec, EmbedmentFt: 20, Method: Auto, Install: DrivenClay}
		res, err := Capacity(req)
		if err != nil {
			t.Fatalf("%s: Capacity failed: %v", c.name, err)
		}
		if res.QUltTension > res.QUltCompression+1e-6 {
			t.Fatalf("%s: QUltTension %v exceeds QUltCompression %v", c.name, res.QUltTension, res.QUltCompression)
		}
		if res.QUltCompression <= 0 {
			t.Fatalf("%s: QUltCompression must be positive, got %v", c.name, res.QUltCompression)
		}
	}
}

func Test_capacity_increasesWithEmbedment(t *testing.T) {
	chk.PrintTitle("capacity_increasesWithEmbedment")
	sec := testSection(t)
	p := uniformClayProfile(40, 1000)
	shallow, err := Capacity(Request{Profile: p, Section: sec, EmbedmentFt: 15, Method: Auto, Install: DrivenClay})
	if err != nil {
		t.Fatalf("shallow Capacity failed: %v", err)
	}
	deep, err := Capacity(Request{Profile: p, Section: sec, EmbedmentFt: 30, Method: Auto, Install: DrivenClay})
	if err != nil {
		t.Fatalf("deep Capacity failed: %v", err)
	}
	if deep.QUltCompression <= shallow.QUltCompression {
		t.Fatalf("deeper embedment did not increase capacity: shallow=%v deep=%v", shallow.QUltCompression, deep.QUltCompression)
	}
}

// P3: for a uniform cohesive profile deep enough that the alpha curve has
// saturated (cu/sigma'_v small), skin friction accrues nearly linearly
// with embedment, since alpha and cu are both ~constant with depth there.
func Test_capacity_nearLinearForDeepUniformClay(t *testing.T) {
	chk.PrintTitle("capacity_nearLinearForDeepUniformClay")
	sec := testSection(t)
	p := uniformClayProfile(200, 2000)
	l20, err := Capacity(Request{Profile: p, Section: sec, EmbedmentFt: 100, Method: Alpha, Install: DrivenClay})
	if err != nil {
		t.Fatalf("Capacity(100) failed: %v", err)
	}
	l40, err := Capacity(Request{Profile: p, Section: sec, EmbedmentFt: 150, Method: Alpha, Install: DrivenClay})
	if err != nil {
		t.Fatalf("Capacity(150) failed: %v", err)
	}
	qs20 := l20.QUltCompression - l20.QEndBearing
	qs40 := l40.QUltCompression - l40.QEndBearing
	ratio := qs40 / qs20
	want := 150.0 / 100.0
	if ratio < want*0.8 || ratio > want*1.2 {
		t.Fatalf("skin friction ratio %v not near the embedment ratio %v within 20%%", ratio, want)
	}
}

func Test_capacity_rejectsZeroEmbedment(t *testing.T) {
	chk.PrintTitle("capacity_rejectsZeroEmbedment")
	sec := testSection(t)
	p := uniformSandProfile(20)
	if _, err := Capacity(Request{Profile: p, Section: sec, EmbedmentFt: 0}); err == nil {
		t.Fatalf("expected error for zero embedment")
	}
}

func Test_capacity_rejectsEmbedmentBeyondProfile(t *testing.T) {
	chk.PrintTitle("capacity_rejectsEmbedmentBeyondProfile")
	sec := testSection(t)
	p := uniformSandProfile(10)
	if _, err := Capacity(Request{Profile: p, Section: sec, EmbedmentFt: 20}); err == nil {
		t.Fatalf("expected error for embedment exceeding profile depth")
	}
}

func Test_capacity_autoMethodPerType(t *testing.T) {
	chk.PrintTitle("capacity_autoMethodPerType")
	sec := testSection(t)
	clayReq := Request{Profile: uniformClayProfile(20, 1000), Section: sec, EmbedmentFt: 15, Method: Auto, Install: DrivenClay}
	sandReq := Request{Profile: uniformSandProfile(20), Section: sec, EmbedmentFt: 15, Method: Auto, Install: DrivenSand}
	clayRes, err := Capacity(clayReq)
	if err != nil {
		t.Fatalf("clay Capacity failed: %v", err)
	}
	sandRes, err := Capacity(sandReq)
	if err != nil {
		t.Fatalf("sand Capacity failed: %v", err)
	}
	foundAlpha, foundBeta := false, false
	for _, lc := range clayRes.Layers {
		if lc.Method == "alpha" {
			foundAlpha = true
		}
	}
	for _, lc := range sandRes.Layers {
		if lc.Method == "beta" {
			foundBeta = true
		}
	}
	if !foundAlpha {
		t.Fatalf("AUTO did not select alpha method for cohesive profile")
	}
	if !foundBeta {
		t.Fatalf("AUTO did not select beta method for cohesionless profile")
	}
}
