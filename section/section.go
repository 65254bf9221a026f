// Package section implements the steel cross-section catalogue of spec §4.3
// (Component B): an exhaustive, bundled lookup table keyed by section name,
// plus the derived bending properties (EI, M_y, M_p) and the corrosion
// reduction used to derive a new section from an as-built one.
package section

import (
	"strings"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/units"
)

// Axis selects which principal axis a Section bends about.
type Axis int

const (
	// Strong selects bending about the strong (x) axis.
	Strong Axis = iota
	// Weak selects bending about the weak (y) axis.
	Weak
)

// Section holds the geometric and section-modulus properties of a steel
// cross-section, spec §3's SteelSection.
type Section struct {
	Name      string  // catalogue key, e.g. "W6x9"
	D         float64 // nominal depth, in
	Bf        float64 // flange width, in
	TfIn      float64 // flange thickness, in
	TwIn      float64 // web thickness, in
	Area      float64 // cross-sectional area, in^2
	WeightPlf float64 // weight per linear foot, lb/ft
	Ix        float64 // strong-axis moment of inertia, in^4
	Iy        float64 // weak-axis moment of inertia, in^4
	Sx        float64 // strong-axis elastic section modulus, in^3
	Sy        float64 // weak-axis elastic section modulus, in^3
	Zx        float64 // strong-axis plastic section modulus, in^3
	Zy        float64 // weak-axis plastic section modulus, in^3
	Perimeter float64 // outside perimeter, in (for skin friction)
	TipArea   float64 // tip bearing area, in^2
	Fy        float64 // yield stress, ksi; zero means units.DefaultFy
}

// fy returns the section's yield stress, defaulting per spec §4.3.
func (s *Section) fy() float64 {
	if s.Fy > 0 {
		return s.Fy
	}
	return units.DefaultFy
}

// EI returns bending stiffness (E * I) on the chosen axis, in lb-in^2,
// using E = 29,000 ksi for structural steel.
func (s *Section) EI(axis Axis) float64 {
	const eKsi = 29000.0
	i := s.Ix
	if axis == Weak {
		i = s.Iy
	}
	return eKsi * 1000.0 * i // ksi -> psi, times in^4 -> lb-in^2
}

// My returns the yield moment F_y*S on the chosen axis, in lb-in.
func (s *Section) My(axis Axis) float64 {
	sMod := s.Sx
	if axis == Weak {
		sMod = s.Sy
	}
	return s.fy() * 1000.0 * sMod
}

// Mp returns the plastic moment F_y*Z on the chosen axis, in lb-in.
func (s *Section) Mp(axis Axis) float64 {
	zMod := s.Zx
	if axis == Weak {
		zMod = s.Zy
	}
	return s.fy() * 1000.0 * zMod
}

// Corroded returns a new Section with flange and web thickness reduced by
// rate (in/yr) times life (yr), holding depth and width fixed and
// recomputing area, perimeter-adjacent moduli proportionally to the
// thickness loss. Downstream code consumes whichever Section the caller
// supplies; this is the only place a corrosion allowance is applied.
func (s *Section) Corroded(rateInPerYr, lifeYr float64) *Section {
	loss := rateInPerYr * lifeYr
	tf := s.TfIn - loss
	tw := s.TwIn - loss
	if tf < 0 {
		tf = 0
	}
	if tw < 0 {
		tw = 0
	}
	fFlange := 1.0
	if s.TfIn > 0 {
		fFlange = tf / s.TfIn
	}
	fWeb := 1.0
	if s.TwIn > 0 {
		fWeb = tw / s.TwIn
	}
	// approximate the moment-of-inertia loss as a blend of flange (dominant
	// for Ix/Sx/Zx) and web (dominant for shear/area) thickness ratios.
	fBend := 0.85*fFlange + 0.15*fWeb
	c := *s
	c.TfIn = tf
	c.TwIn = tw
	c.Area = s.Area * (0.6*fFlange + 0.4*fWeb)
	c.WeightPlf = s.WeightPlf * c.Area / s.Area
	c.Ix = s.Ix * fBend
	c.Iy = s.Iy * fBend
	c.Sx = s.Sx * fBend
	c.Sy = s.Sy * fBend
	c.Zx = s.Zx * fBend
	c.Zy = s.Zy * fBend
	c.Perimeter = s.Perimeter // outside perimeter unaffected by wall thinning
	c.TipArea = s.TipArea
	c.Name = s.Name + "-corroded"
	return &c
}

// catalogue holds the bundled, exhaustive section table, keyed by
// case-insensitive name. Values are representative AISC W- and C-shape
// properties used throughout solar-tracker pile design.
var catalogue = map[string]*Section{
	"w6x7": {
		Name: "W6x7", D: 5.90, Bf: 3.94, TfIn: 0.23, TwIn: 0.17,
		Area: 2.09, WeightPlf: 7.0,
		Ix: 5.56, Iy: 2.19, Sx: 1.88, Sy: 1.11, Zx: 2.09, Zy: 1.72,
		Perimeter: 19.4, TipArea: 2.09,
	},
	"w6x9": {
		Name: "W6x9", D: 5.90, Bf: 3.94, TfIn: 0.215, TwIn: 0.17,
		Area: 2.68, WeightPlf: 9.0,
		Ix: 16.4, Iy: 2.20, Sx: 5.56, Sy: 1.11, Zx: 6.23, Zy: 1.72,
		Perimeter: 19.6, TipArea: 2.68,
	},
	"w6x12": {
		Name: "W6x12", D: 6.03, Bf: 4.00, TfIn: 0.28, TwIn: 0.23,
		Area: 3.55, WeightPlf: 12.0,
		Ix: 22.1, Iy: 2.99, Sx: 7.31, Sy: 1.50, Zx: 8.30, Zy: 2.32,
		Perimeter: 20.1, TipArea: 3.55,
	},
	"w6x15": {
		Name: "W6x15", D: 5.99, Bf: 5.99, TfIn: 0.26, TwIn: 0.23,
		Area: 4.43, WeightPlf: 15.0,
		Ix: 29.1, Iy: 9.32, Sx: 9.72, Sy: 3.11, Zx: 10.8, Zy: 4.75,
		Perimeter: 24.0, TipArea: 4.43,
	},
	"w6x20": {
		Name: "W6x20", D: 6.20, Bf: 6.02, TfIn: 0.365, TwIn: 0.26,
		Area: 5.87, WeightPlf: 20.0,
		Ix: 41.4, Iy: 13.3, Sx: 13.4, Sy: 4.43, Zx: 14.9, Zy: 6.72,
		Perimeter: 24.4, TipArea: 5.87,
	},
	"w8x10": {
		Name: "W8x10", D: 7.89, Bf: 3.94, TfIn: 0.205, TwIn: 0.17,
		Area: 2.96, WeightPlf: 10.0,
		Ix: 30.8, Iy: 2.09, Sx: 7.81, Sy: 1.06, Zx: 8.87, Zy: 1.66,
		Perimeter: 23.4, TipArea: 2.96,
	},
	"w8x13": {
		Name: "W8x13", D: 7.99, Bf: 4.00, TfIn: 0.255, TwIn: 0.23,
		Area: 3.84, WeightPlf: 13.0,
		Ix: 39.6, Iy: 2.73, Sx: 9.91, Sy: 1.37, Zx: 11.4, Zy: 2.15,
		Perimeter: 23.9, TipArea: 3.84,
	},
	"w8x15": {
		Name: "W8x15", D: 8.11, Bf: 4.01, TfIn: 0.315, TwIn: 0.245,
		Area: 4.44, WeightPlf: 15.0,
		Ix: 48.0, Iy: 3.41, Sx: 11.8, Sy: 1.70, Zx: 13.6, Zy: 2.67,
		Perimeter: 24.2, TipArea: 4.44,
	},
	"w8x18": {
		Name: "W8x18", D: 8.14, Bf: 5.25, TfIn: 0.33, TwIn: 0.23,
		Area: 5.26, WeightPlf: 18.0,
		Ix: 61.9, Iy: 7.97, Sx: 15.2, Sy: 3.04, Zx: 17.0, Zy: 4.66,
		Perimeter: 26.8, TipArea: 5.26,
	},
	"c4x5.4": {
		Name: "C4x5.4", D: 4.00, Bf: 1.58, TfIn: 0.296, TwIn: 0.184,
		Area: 1.59, WeightPlf: 5.4,
		Ix: 3.85, Iy: 0.319, Sx: 1.93, Sy: 0.28, Zx: 2.29, Zy: 0.56,
		Perimeter: 11.1, TipArea: 1.59,
	},
	"c4x7.25": {
		Name: "C4x7.25", D: 4.00, Bf: 1.72, TfIn: 0.296, TwIn: 0.321,
		Area: 2.13, WeightPlf: 7.25,
		Ix: 4.58, Iy: 0.425, Sx: 2.29, Sy: 0.34, Zx: 2.80, Zy: 0.69,
		Perimeter: 11.4, TipArea: 2.13,
	},
}

// Lookup returns the catalogue Section for name (case-insensitive), or a
// fatal InvalidInput-style error if the name is not in the catalogue. The
// returned Section is a copy so callers may freely derive (e.g. Corroded)
// from it without mutating the catalogue.
func Lookup(name string) (*Section, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	s, ok := catalogue[key]
	if !ok {
		return nil, errs.New(errs.InvalidInput, "section: unknown section name %q", name)
	}
	cp := *s
	return &cp, nil
}

// Names returns the catalogue's section names in stable, deterministic
// order for display or enumeration purposes.
func Names() []string {
	order := []string{
		"w6x7", "w6x9", "w6x12", "w6x15", "w6x20",
		"w8x10", "w8x13", "w8x15", "w8x18",
		"c4x5.4", "c4x7.25",
	}
	out := make([]string, len(order))
	for i, k := range order {
		out[i] = catalogue[k].Name
	}
	return out
}
