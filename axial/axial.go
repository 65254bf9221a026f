// Package axial implements the axial capacity kernel of spec §4.5
// (Component F): alpha, beta, and Meyerhof skin-friction methods summed
// layer-by-layer over the embedded length, plus end bearing, tension
// reduction, and FS/phi wrapping — grounded on the teacher's
// mdl/solid/driver.go layer/increment summation-driver shape, generalized
// from a stress-strain integration driver to a skin-friction integration
// driver.
package axial

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/notes"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
	"github.com/solarpile/pilefem/units"
)

// Method selects the skin-friction formulation, spec §4.5.
type Method int

const (
	// Auto selects alpha for Clay/Silt/Organic, beta for Sand/Gravel,
	// per spec §4.5's "AUTO method choice."
	Auto Method = iota
	Alpha
	Beta
	Meyerhof
)

// PileType selects the K_s ratio used by the beta method (spec §4.5).
type PileType int

const (
	// Driven is a driven displacement pile (steel H or pipe), K_s = K0*1.0.
	Driven PileType = iota
	// Helical is a helical/screw pile, K_s = K0*1.5 (looser disturbance).
	Helical
)

// InstallMethod selects the LRFD resistance factor phi table of spec §4.5.
type InstallMethod int

const (
	DrivenClay InstallMethod = iota
	DrivenSand
	EndBearingMethod
	HelicalMethod
)

func phiFor(m InstallMethod) float64 {
	switch m {
	case DrivenClay:
		return 0.35
	case DrivenSand:
		return 0.45
	case EndBearingMethod:
		return 0.45
	case HelicalMethod:
		return 0.50
	default:
		return 0.40
	}
}

// LayerContribution records one layer's skin-friction increment, spec §4.5.
type LayerContribution struct {
	ZMid      float64 // mid-depth of the layer slice within the embedment, ft
	Thickness float64 // ft
	Method    string  // method actually used for this layer
	Fs        float64 // unit skin friction, psf
	DeltaQs   float64 // incremental skin-friction capacity, lb
}

// Result is the AxialResult of spec §3/§6.
type Result struct {
	QUltCompression float64
	QUltTension     float64
	QAllowC         float64
	QAllowT         float64
	PhiRn           float64 // LRFD factored resistance, using phi for the compression case
	Layers          []LayerContribution
	QEndBearing     float64
	Notes           []string
}

// Request bundles the inputs to Capacity, spec §6 entry point 1.
type Request struct {
	Profile     *soil.Profile
	Section     *section.Section
	EmbedmentFt float64
	PileType    PileType
	Method      Method
	Install     InstallMethod
	FSCompression float64 // 0 means units.DefaultFSCompression
	FSTension     float64 // 0 means units.DefaultFSTension
	Cyclic        bool
}

// Capacity implements spec §6 entry point 1, axial_capacity.
func Capacity(req Request) (*Result, error) {
	p := req.Profile
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if req.EmbedmentFt <= 0 {
		return nil, errs.New(errs.InvalidInput, "axial: embedment must be > 0, got %g", req.EmbedmentFt)
	}
	if req.EmbedmentFt > p.TotalDepth()+1e-9 {
		return nil, errs.New(errs.InvalidInput, "axial: embedment %g ft exceeds profile depth %g ft", req.EmbedmentFt, p.TotalDepth())
	}
	sec := req.Section
	if sec == nil {
		return nil, errs.New(errs.InvalidInput, "axial: section is required")
	}

	nbuf := notes.NewBuffer()
	fsC := req.FSCompression
	if fsC <= 0 {
		fsC = units.DefaultFSCompression
	}
	fsT := req.FSTension
	if fsT <= 0 {
		fsT = units.DefaultFSTension
	}

	res := &Result{}
	// discretize the embedment into per-layer slices at a fine enough
	// resolution (10 slices per layer) so a thick layer still integrates
	// sigma'_v variation.
	const slicesPerLayer = 10
	depth := 0.0
	for i := range p.Layers {
		l := &p.Layers[i]
		top := l.ZTop
		bot := math.Min(l.ZBot(), req.EmbedmentFt)
		if top >= req.EmbedmentFt {
			break
		}
		if bot <= top {
			continue
		}
		dzSlice := (bot - top) / slicesPerLayer
		for s := 0; s < slicesPerLayer; s++ {
			zTop := top + float64(s)*dzSlice
			zBot := zTop + dzSlice
			zMid := 0.5 * (zTop + zBot)
			contrib := skinFrictionLayer(p, l, req, zMid, dzSlice, nbuf)
			res.Layers = append(res.Layers, contrib)
			res.QUltCompression += contrib.DeltaQs
			depth = zBot
		}
	}

	qEnd := endBearing(p, req, depth, nbuf)
	res.QEndBearing = qEnd
	qSkin := res.QUltCompression
	res.QUltCompression = qSkin + qEnd
	res.QUltTension = 0.75 * qSkin

	res.QAllowC = res.QUltCompression / fsC
	res.QAllowT = res.QUltTension / fsT
	res.PhiRn = phiFor(req.Install) * res.QUltCompression

	res.Notes = nbuf.Lines()
	return res, nil
}

func resolveMethod(req Request, t soil.Type) Method {
	if req.Method != Auto {
		return req.Method
	}
	if t.IsCohesive() {
		return Alpha
	}
	return Beta
}

func skinFrictionLayer(p *soil.Profile, l *soil.Layer, req Request, zMid, dz float64, nbuf *notes.Buffer) LayerContribution {
	_, sigEff := p.StressAt(zMid)
	if sigEff < units.SigmaVEffFloor {
		nbuf.AddOnce("sigeff-floor", "floor applied: sigma'_v=0 near z=%.2f ft, using %.0f psf", zMid, units.SigmaVEffFloor)
		sigEff = units.SigmaVEffFloor
	}
	method := resolveMethod(req, l.Type)
	var fs float64
	var methodName string
	switch method {
	case Alpha:
		cu := p.CuOf(l)
		if cu < units.CuFloor {
			nbuf.AddOnce("cu-floor", "floor applied: c_u=0 near z=%.2f ft, using %.0f psf", zMid, units.CuFloor)
			cu = units.CuFloor
		}
		alpha := apiAlpha(cu, sigEff)
		fs = alpha * cu
		methodName = "alpha"
	case Beta:
		phi := p.PhiOf(l)
		delta := 0.7 * phi
		k0 := 1 - math.Sin(units.DegToRad(phi))
		ksRatio := 1.0
		if req.PileType == Helical {
			ksRatio = 1.5
		}
		ks := k0 * ksRatio
		beta := ks * math.Tan(units.DegToRad(delta))
		fs = beta * sigEff
		methodName = "beta"
	case Meyerhof:
		n60 := p.N60(l)
		switch l.Type {
		case soil.Sand, soil.Gravel:
			fs = 2 * n60
			if fs > 2000 {
				nbuf.AddOnce("meyerhof-sand-cap", "cap applied: Meyerhof sand f_s capped at 2000 psf near z=%.2f ft", zMid)
				fs = 2000
			}
		case soil.Silt:
			fs = 2 * n60
			if fs > 1200 {
				nbuf.AddOnce("meyerhof-silt-cap", "cap applied: Meyerhof silt f_s capped at 1200 psf near z=%.2f ft", zMid)
				fs = 1200
			}
		default:
			fs = 0
		}
		methodName = "meyerhof"
	}
	autoMethod := Beta
	if l.Type.IsCohesive() {
		autoMethod = Alpha
	}
	if method != autoMethod {
		nbuf.AddOnce(io.Sf("method-override-%d", int(method)), "method override: layer at z=%.2f ft uses %s instead of AUTO", zMid, methodName)
	}
	perimeterIn := req.Section.Perimeter
	deltaQ := fs * perimeterIn * (dz * units.FtToIn) / 144.0 // psf * in * in -> lb (1 sqft = 144 sqin)
	return LayerContribution{ZMid: zMid, Thickness: dz, Method: methodName, Fs: fs, DeltaQs: deltaQ}
}

// apiAlpha implements the API cu/sigma'_v alpha rule of spec §4.5, capped
// at 1.0.
func apiAlpha(cu, sigEff float64) float64 {
	ratio := cu / sigEff
	var alpha float64
	switch {
	case ratio <= 1.0:
		alpha = 0.5 * math.Pow(ratio, -0.5)
	default:
		alpha = 0.5 * math.Pow(ratio, -0.25)
	}
	if alpha > 1.0 {
		alpha = 1.0
	}
	return alpha
}

// meyerhofNq is the Meyerhof bearing-capacity factor N_q keyed by friction
// angle, spec §4.5's "Meyerhof N_q table (interpolated in phi)."
var meyerhofNqTable = [][2]float64{
	{20, 12.4}, {25, 20.3}, {30, 33.3}, {35, 48.0}, {40, 120.0},
}

func meyerhofNq(phiDeg float64) float64 {
	if phiDeg <= meyerhofNqTable[0][0] {
		return meyerhofNqTable[0][1]
	}
	last := meyerhofNqTable[len(meyerhofNqTable)-1]
	if phiDeg >= last[0] {
		return last[1]
	}
	for i := 0; i+1 < len(meyerhofNqTable); i++ {
		a, b := meyerhofNqTable[i], meyerhofNqTable[i+1]
		if phiDeg >= a[0] && phiDeg <= b[0] {
			f := (phiDeg - a[0]) / (b[0] - a[0])
			return a[1] + f*(b[1]-a[1])
		}
	}
	return last[1]
}

// meyerhofQbMax caps q_b (psf) by friction angle for cohesionless end
// bearing, spec §4.5's "q_b_max(phi)."
func meyerhofQbMax(phiDeg float64) float64 {
	switch {
	case phiDeg >= 37:
		return 120000
	case phiDeg >= 32:
		return 60000
	default:
		return 30000
	}
}

func endBearing(p *soil.Profile, req Request, depthFt float64, nbuf *notes.Buffer) float64 {
	qb := UnitEndBearingPsf(p, req, depthFt, nbuf)
	return qb * req.Section.TipArea / 144.0 // psf * in^2 -> lb
}

// UnitEndBearingPsf returns the unit end bearing q_b (psf) at tip depth
// depthFt, the Nc*cu or Nq*sigma'_v branch of spec §4.5, exposed so
// package bnwf can build the q_max of its q-z tip spring (spec §4.7)
// without re-deriving the bearing-factor logic.
func UnitEndBearingPsf(p *soil.Profile, req Request, depthFt float64, nbuf *notes.Buffer) float64 {
	l := p.LayerAt(depthFt)
	_, sigEff := p.StressAt(depthFt)
	if sigEff < units.SigmaVEffFloor {
		sigEff = units.SigmaVEffFloor
	}
	var qb float64
	if l.Type.IsCohesive() {
		cu := p.CuOf(l)
		if cu < units.CuFloor {
			cu = units.CuFloor
		}
		b := req.Section.D / units.FtToIn // pile width, ft
		nc := math.Min(6*(1+0.2*depthFt/math.Max(b, 1e-6)), 9)
		qb = nc * cu
	} else {
		phi := p.PhiOf(l)
		nq := meyerhofNq(phi)
		qb = nq * sigEff
		cap := meyerhofQbMax(phi)
		if qb > cap {
			nbuf.AddOnce("qb-cap", "cap applied: end bearing q_b capped at %.0f psf for phi=%.1f", cap, phi)
			qb = cap
		}
	}
	return qb
}

// UnitSkinFriction returns the unit skin friction f_s (psf) and resolved
// method name at mid-depth zMid for layer l, using the same alpha/beta/
// Meyerhof resolution Capacity applies per slice — exposed so package bnwf
// can build t-z curves (spec §4.7) without re-deriving the method tables.
func UnitSkinFriction(p *soil.Profile, l *soil.Layer, pileType PileType, method Method, zMid float64, nbuf *notes.Buffer) (fs float64, methodName string) {
	req := Request{PileType: pileType, Method: method, Section: &section.Section{Perimeter: 1}}
	c := skinFrictionLayer(p, l, req, zMid, 1.0, nbuf)
	return c.Fs, c.Method
}
