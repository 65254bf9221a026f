// Package soil implements the layered soil profile and parameter
// derivation of spec §4.2 (Component C): SPT corrections, auto-correlation
// of unit weight / friction angle / undrained strength, and the effective
// stress profile. Every derived parameter is evaluated lazily when queried;
// an explicit non-zero user value always overrides auto-derivation, and the
// "unset vs set-to-value" distinction of spec §9 is represented with
// pointer fields rather than the zero-means-auto sentinel the teacher's
// dynamically-typed source used.
package soil

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/units"
)

// Type is the tagged SoilType variant of spec §3.
type Type int

const (
	Sand Type = iota
	Clay
	Silt
	Gravel
	Organic
)

func (t Type) String() string {
	switch t {
	case Sand:
		return "Sand"
	case Clay:
		return "Clay"
	case Silt:
		return "Silt"
	case Gravel:
		return "Gravel"
	case Organic:
		return "Organic"
	default:
		return "Unknown"
	}
}

// IsCohesive reports whether the type participates in cohesive-block
// failure and uses c_u / the alpha method (spec §4.2, §4.5, §4.8).
func (t Type) IsCohesive() bool {
	return t == Clay || t == Silt || t == Organic
}

// Layer is the ordered SoilLayer record of spec §3. Optional numeric
// parameters are pointers: nil means "auto-derive from N_spt and Type".
type Layer struct {
	ZTop      float64  // top depth, ft
	Thickness float64  // Delta, ft; must be > 0
	Type      Type
	PYModel   string   // non-empty overrides the AUTO p-y model selection
	NSPT      float64  // blows/ft; 0 is a legitimate measured value, so...
	HasNSPT   bool      // ...HasNSPT distinguishes "measured zero" from "unset"
	Gamma     *float64 // pcf; nil means auto-derive
	Phi       *float64 // deg; nil means auto-derive
	CuUser    *float64 // psf; nil means auto-derive

	// PYParams is the optional model-specific parameter bundle of spec §3,
	// passed to the resolved p-y Model's Init exactly as a caller would via
	// Model.GetPrms. Nil means the model falls back to its own Init defaults.
	PYParams fun.Prms

	// PYTable is the (y,p) pair table for PYModel "user-input" (model 18);
	// it bypasses PYParams entirely since UserDefined has no scalar
	// parameter bundle, only a table set via SetTable.
	PYTable [][2]float64
}

// ZBot returns the bottom depth of the layer, ft.
func (l *Layer) ZBot() float64 { return l.ZTop + l.Thickness }

// SPTCorrections holds the overridable SPT energy/borehole/rod/sampler
// correction factors of spec §3 (default C_E=0.60, C_B=C_R=C_S=1.0).
type SPTCorrections struct {
	CE float64
	CB float64
	CR float64
	CS float64
}

// DefaultSPTCorrections returns the spec-default correction factor set.
func DefaultSPTCorrections() SPTCorrections {
	return SPTCorrections{CE: 0.60, CB: 1.0, CR: 1.0, CS: 1.0}
}

// Profile is the ordered SoilProfile of spec §3.
type Profile struct {
	Layers      []Layer
	WaterTable  *float64 // ft; nil means dry (absent)
	Corrections SPTCorrections
}

// Validate checks the layer-covers-[0,total_depth]-without-gaps-or-overlap
// invariant of spec §3 and returns an InvalidInput error on violation.
func (p *Profile) Validate() error {
	if len(p.Layers) == 0 {
		return errs.New(errs.InvalidInput, "soil: profile has no layers")
	}
	z := p.Layers[0].ZTop
	if math.Abs(z) > 1e-9 {
		return errs.New(errs.InvalidInput, "soil: first layer must start at z=0, got z=%.4f", z)
	}
	for i := range p.Layers {
		l := &p.Layers[i]
		if l.Thickness <= 0 {
			return errs.New(errs.InvalidInput, "soil: layer %d has non-positive thickness %.4f", i, l.Thickness)
		}
		if i+1 < len(p.Layers) {
			next := p.Layers[i+1]
			if math.Abs(l.ZBot()-next.ZTop) > 1e-6 {
				return errs.New(errs.InvalidInput, "soil: layer %d bottom (%.4f) does not meet layer %d top (%.4f)", i, l.ZBot(), i+1, next.ZTop)
			}
		}
	}
	return nil
}

// TotalDepth returns the bottom depth of the last layer, ft.
func (p *Profile) TotalDepth() float64 {
	if len(p.Layers) == 0 {
		return 0
	}
	return p.Layers[len(p.Layers)-1].ZBot()
}

// waterTableDepth returns the effective water-table depth, clamped to z=0
// when the caller supplies a negative (above-surface) value, per the
// boundary behaviour of spec §8. A nil WaterTable means dry: +Inf.
func (p *Profile) waterTableDepth() float64 {
	if p.WaterTable == nil {
		return math.Inf(1)
	}
	if *p.WaterTable < 0 {
		return 0
	}
	return *p.WaterTable
}

// LayerAt returns the layer containing depth z, tie-breaking toward the
// deeper layer at interior boundaries (spec §4.2, §4.6).
func (p *Profile) LayerAt(z float64) *Layer {
	for i := range p.Layers {
		l := &p.Layers[i]
		if z < l.ZBot() || i == len(p.Layers)-1 {
			return l
		}
	}
	return &p.Layers[len(p.Layers)-1]
}

// GammaOf returns the unit weight to use for layer l, auto-deriving from
// N60 and Type via the tabular lookup of spec §4.2 when Gamma is unset.
// Submerged layers use gamma_saturated; gamma' = gamma_sat - gamma_water is
// applied by the caller (StressAt), not here.
func (p *Profile) GammaOf(l *Layer, submerged bool) float64 {
	if l.Gamma != nil {
		return *l.Gamma
	}
	n60 := p.N60(l)
	return autoGamma(l.Type, n60, submerged)
}

// autoGamma implements the tabular unit-weight lookup keyed by SoilType and
// N60, as an interpolated table rather than hard discrete brackets, so
// intermediate N60 values vary smoothly.
func autoGamma(t Type, n60 float64, submerged bool) float64 {
	var dry, sat [][2]float64 // {N60, gamma pcf}
	switch t {
	case Sand, Gravel:
		dry = [][2]float64{{0, 90}, {4, 100}, {10, 110}, {30, 120}, {50, 130}}
		sat = [][2]float64{{0, 100}, {4, 110}, {10, 118}, {30, 126}, {50, 135}}
	case Silt:
		dry = [][2]float64{{0, 85}, {4, 95}, {15, 105}, {30, 115}}
		sat = [][2]float64{{0, 100}, {4, 105}, {15, 112}, {30, 120}}
	case Clay:
		dry = [][2]float64{{0, 95}, {4, 105}, {15, 115}, {30, 125}}
		sat = [][2]float64{{0, 100}, {4, 110}, {15, 118}, {30, 128}}
	case Organic:
		dry = [][2]float64{{0, 70}, {10, 85}, {30, 95}}
		sat = [][2]float64{{0, 85}, {10, 95}, {30, 105}}
	}
	table := dry
	if submerged {
		table = sat
	}
	return lerpTable(table, n60)
}

func lerpTable(table [][2]float64, x float64) float64 {
	if x <= table[0][0] {
		return table[0][1]
	}
	last := table[len(table)-1]
	if x >= last[0] {
		return last[1]
	}
	for i := 0; i+1 < len(table); i++ {
		a, b := table[i], table[i+1]
		if x >= a[0] && x <= b[0] {
			f := (x - a[0]) / (b[0] - a[0])
			return a[1] + f*(b[1]-a[1])
		}
	}
	return last[1]
}

// PhiOf returns the friction angle (deg) to use for layer l, auto-deriving
// per spec §4.2 when Phi is unset.
func (p *Profile) PhiOf(l *Layer) float64 {
	if l.Phi != nil {
		return *l.Phi
	}
	n60 := p.N60(l)
	switch l.Type {
	case Sand, Gravel:
		v := math.Sqrt(20*n60) + 20
		return math.Min(v, 45)
	case Silt:
		v := 24 + 0.25*n60
		return math.Min(v, 34)
	default: // Clay, Organic
		return 0
	}
}

// CuOf returns the undrained shear strength (psf) to use for layer l,
// auto-deriving per spec §4.2 when CuUser is unset.
func (p *Profile) CuOf(l *Layer) float64 {
	if l.CuUser != nil {
		return *l.CuUser
	}
	switch l.Type {
	case Clay, Silt, Organic:
		return 125 * p.N60(l)
	default: // Sand, Gravel
		return 0
	}
}

// N60 returns the energy/borehole/rod/sampler-corrected SPT blow count for
// layer l (spec §4.2). Returns 0 for a layer with no measured N_spt.
func (p *Profile) N60(l *Layer) float64 {
	if !l.HasNSPT {
		return 0
	}
	c := p.Corrections
	return l.NSPT * c.CE * c.CB * c.CR * c.CS
}

// N1_60 returns the overburden-corrected (N1)60 at the mid-depth of layer
// l, per the Liao-Whitman C_N relation of spec §4.2.
func (p *Profile) N1_60(l *Layer) float64 {
	n60 := p.N60(l)
	zMid := (l.ZTop + l.ZBot()) / 2
	_, sigEff := p.StressAt(zMid)
	if sigEff < units.SigmaVEffFloor {
		sigEff = units.SigmaVEffFloor
	}
	cn := math.Min(math.Sqrt(units.Pa/sigEff), 2.0)
	return n60 * cn
}

// StressAt returns total vertical stress (sigma_v) and effective vertical
// stress (sigma'_v) at depth z, psf, per spec §4.2.
func (p *Profile) StressAt(z float64) (sigmaV, sigmaVEff float64) {
	zwt := p.waterTableDepth()
	var total, eff float64
	for i := range p.Layers {
		l := &p.Layers[i]
		top := l.ZTop
		bot := l.ZBot()
		if z <= top {
			break
		}
		segBot := math.Min(z, bot)
		dz := segBot - top
		if dz <= 0 {
			continue
		}
		submergedLayer := zwt < bot
		gamma := p.GammaOf(l, submergedLayer)
		total += gamma * dz
		// effective stress: subtract gamma_water below the water table,
		// applied to the submerged portion of this layer's slice only.
		subTop := math.Max(top, zwt)
		subDz := math.Max(0, segBot-subTop)
		eff += gamma*dz - units.GammaWater*subDz
	}
	if eff < 0 {
		eff = 0
	}
	return total, eff
}
