// Package broms implements the Broms (1964) closed-form lateral capacity
// check of spec §4.9 (Component K): a hand-calculation cross-check against
// the FDM/BNWF solvers of packages lateral and bnwf, using only the
// averaged properties of the top soil layer within 10*b of the surface.
// Grounded on the teacher's ana/constantstress.go, the one example repo
// file that evaluates a textbook closed-form result directly from a
// request struct rather than assembling and solving a system.
package broms

import (
	"math"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
	"github.com/solarpile/pilefem/units"
)

// Request bundles the inputs to Analyze, spec §6 entry point 6,
// broms_lateral.
type Request struct {
	Profile     *soil.Profile
	Section     *section.Section
	EmbedmentFt float64
	Axis        section.Axis
	LeverArmFt  float64 // height of H above the ground line, e
}

// Result is the BromsResult of spec §6 entry point 6.
type Result struct {
	HUltShortLb   float64
	HUltLongLb    float64
	HUltLb        float64
	GoverningMode string // "short" or "long"
	HAllowLb      float64
	Notes         []string
}

// Analyze implements spec §6 entry point 6, broms_lateral: a free-headed
// rigid/flexible pile check against the averaged top-layer soil parameters,
// taking H_ult as the governing minimum of the short-pile (soil-capacity)
// and long-pile (pile-yield) failure modes.
func Analyze(req Request) (*Result, error) {
	if req.Profile == nil || len(req.Profile.Layers) == 0 {
		return nil, errs.New(errs.InvalidInput, "broms: profile has no layers")
	}
	if req.Section == nil {
		return nil, errs.New(errs.InvalidInput, "broms: section is required")
	}
	if req.EmbedmentFt <= 0 {
		return nil, errs.New(errs.InvalidInput, "broms: embedment must be > 0")
	}
	if req.LeverArmFt < 0 {
		return nil, errs.New(errs.InvalidInput, "broms: lever_arm must be >= 0")
	}

	bIn := req.Section.D
	bFt := bIn / units.FtToIn
	if bFt <= 0 {
		return nil, errs.New(errs.InvalidInput, "broms: section depth must be > 0")
	}

	l := req.EmbedmentFt
	e := req.LeverArmFt
	my := req.Section.My(req.Axis)

	windowFt := math.Min(10*bFt, l)
	cohesive, cuAvg, phiAvg, gammaAvg := topLayerWindow(req.Profile, windowFt)

	var notes []string
	res := &Result{}

	if cohesive {
		if cuAvg < units.CuFloor {
			notes = append(notes, "floor applied: top-layer c_u raised to c_u_floor for Broms short/long check")
			cuAvg = units.CuFloor
		}
		if l <= 1.5*bFt {
			notes = append(notes, "embedment is within the assumed dead zone (1.5*b); Broms short-pile result is degenerate")
			res.HUltShortLb = 0
		} else {
			res.HUltShortLb = 9 * cuAvg * bFt * (l - 1.5*bFt) * (l - 1.5*bFt) / (2 * (e + l))
		}
		// Mmax(Hu) = Hu*e + 1.5*Hu*b + Hu^2/(18*cu*b); solve the quadratic
		// A*Hu^2 + B*Hu - My = 0 for the long-pile (yield-governed) capacity.
		a := 1.0 / (18 * cuAvg * bFt)
		b := e + 1.5*bFt
		res.HUltLongLb = solveQuadraticPositiveRoot(a, b, -my)
	} else {
		phi := phiAvg
		if phi <= 0 {
			phi = 28 // a conservative default for an unclassified cohesionless layer
			notes = append(notes, "default applied: top-layer phi assumed 28 deg, no auto-derivable value available")
		}
		kp := math.Pow(math.Tan(units.DegToRad(45+phi/2)), 2)
		if gammaAvg <= 0 {
			gammaAvg = 110
		}
		res.HUltShortLb = 0.5 * kp * gammaAvg * bFt * l * l * l / (e + l)
		res.HUltLongLb = solveLongPileSand(e, kp, gammaAvg, bFt, my)
	}

	if res.HUltShortLb > 0 && res.HUltShortLb <= res.HUltLongLb {
		res.HUltLb = res.HUltShortLb
		res.GoverningMode = "short"
	} else {
		res.HUltLb = res.HUltLongLb
		res.GoverningMode = "long"
	}

	res.HAllowLb = res.HUltLb / units.DefaultFSBroms
	res.Notes = notes
	return res, nil
}

// solveQuadraticPositiveRoot returns the positive root of a*x^2+b*x+c=0 for
// a>0, b>0, c<=0 (the only sign pattern the long-pile cohesive moment
// balance produces), or 0 if no positive root exists.
func solveQuadraticPositiveRoot(a, b, c float64) float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}
	root := (-b + math.Sqrt(disc)) / (2 * a)
	if root < 0 {
		return 0
	}
	return root
}

// solveLongPileSand solves M_max(Hu) = Hu*e + (2/3)*Hu*f(Hu) = My for Hu,
// where f(Hu) = sqrt(Hu/(1.5*Kp*gamma*b)) is the depth to the point of
// maximum moment. M_max is monotone increasing in Hu, so bisection over an
// expanding bracket converges without needing the closed quadratic form
// sand's depth-proportional resistance lacks.
func solveLongPileSand(e, kp, gamma, bFt, my float64) float64 {
	moment := func(hu float64) float64 {
		if hu <= 0 {
			return 0
		}
		f := math.Sqrt(hu / (1.5 * kp * gamma * bFt))
		return hu*e + (2.0/3.0)*hu*f
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 100 && moment(hi) < my; i++ {
		hi *= 2
	}
	for i := 0; i < 80; i++ {
		mid := 0.5 * (lo + hi)
		if moment(mid) < my {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// topLayerWindow averages the soil parameters of the layers within
// [0, windowFt], thickness-weighted, and classifies the zone cohesive or
// cohesionless by the surface layer's SoilType, per spec §4.9. gammaAvg is
// an average effective unit weight derived from the profile's own
// effective-stress integration so submergence is handled consistently with
// package soil rather than re-derived here.
func topLayerWindow(p *soil.Profile, windowFt float64) (cohesive bool, cuAvg, phiAvg, gammaAvg float64) {
	cohesive = p.Layers[0].Type.IsCohesive()
	if windowFt <= 0 {
		windowFt = p.Layers[0].Thickness
	}

	var cuSum, phiSum, weight float64
	for i := range p.Layers {
		l := &p.Layers[i]
		top := l.ZTop
		bot := math.Min(l.ZBot(), windowFt)
		if top >= windowFt || bot <= top {
			continue
		}
		thickness := bot - top
		cuSum += p.CuOf(l) * thickness
		phiSum += p.PhiOf(l) * thickness
		weight += thickness
	}
	if weight > 0 {
		cuAvg = cuSum / weight
		phiAvg = phiSum / weight
	}

	_, sigEff := p.StressAt(windowFt)
	if windowFt > 0 {
		gammaAvg = sigEff / windowFt
	}
	return cohesive, cuAvg, phiAvg, gammaAvg
}
