// Package tz implements the shaft-friction (t-z) and tip-bearing (q-z)
// transfer functions of spec §4.7 (Component E), following the API 1993
// formulation the teacher's own 1D interface law (mdl/solid/rjointm1.go,
// an elastic-then-capped rod-joint plasticity model) generalizes: an
// elastic segment up to a characteristic displacement, then a capped or
// hyperbolic approach to the ultimate transfer value.
package tz

import "math"

// TZCurve evaluates shaft friction per unit length (lb/in; the caller folds
// the pile perimeter into t_max) as a trilinear function of axial slip z
// (in), reaching t_max at z_c ~= 0.01*D then staying flat.
type TZCurve struct {
	TMax float64 // ultimate shaft friction per unit length, lb/in
	ZC   float64 // critical slip displacement, in
}

// NewTZ builds a TZCurve for a clay layer (t_max = alpha*cu*perimeter) or
// sand layer (t_max = beta*sigma'_v*perimeter), with z_c ~= 0.01*pile diameter D (in), per
// spec §4.7.
func NewTZ(tMax, diameterIn float64) *TZCurve {
	zc := 0.01 * diameterIn
	if zc <= 0 {
		zc = 0.1
	}
	return &TZCurve{TMax: tMax, ZC: zc}
}

// Eval returns shaft friction t(z) and its slope dt/dz at slip z (in). The
// trilinear shape rises linearly to 0.5*t_max at z_c/3, to 0.9*t_max at
// 2*z_c/3, and to t_max at z_c, then stays flat — the "trilinear up to z_c
// then flat" curve referenced by spec §4.7's t-z description.
func (c *TZCurve) Eval(z float64) (t, dtdz float64) {
	if c.TMax == 0 || c.ZC <= 0 {
		return 0, 0
	}
	za := math.Abs(z)
	sgn := 1.0
	if z < 0 {
		sgn = -1.0
	}
	breakpoints := []struct{ z, frac float64 }{
		{0, 0}, {c.ZC / 3, 0.5}, {2 * c.ZC / 3, 0.9}, {c.ZC, 1.0},
	}
	if za >= c.ZC {
		return sgn * c.TMax, 0
	}
	for i := 0; i+1 < len(breakpoints); i++ {
		a, b := breakpoints[i], breakpoints[i+1]
		if za >= a.z && za <= b.z {
			slope := (b.frac - a.frac) * c.TMax / (b.z - a.z)
			val := a.frac*c.TMax + slope*(za-a.z)
			return sgn * val, slope
		}
	}
	return sgn * c.TMax, 0
}

// QZCurve evaluates tip bearing force (lb) as a function of tip settlement
// w (in): hyperbolic up to 0.9*q_max at 0.1*b, then linear to q_max at
// 0.2*b and flat beyond, per spec §4.7.
type QZCurve struct {
	QMax float64 // ultimate tip bearing force, lb
	B    float64 // pile width/diameter, in
}

// NewQZ builds a QZCurve for a clay tip (q_max = Nc*cu*A_tip) or sand tip
// (q_max = Nq*sigma'_v*A_tip).
func NewQZ(qMax, diameterIn float64) *QZCurve {
	return &QZCurve{QMax: qMax, B: diameterIn}
}

// Eval returns tip force q(w) and its slope dq/dw at settlement w (in),
// nonnegative (tip bearing only resists compression into the soil).
func (c *QZCurve) Eval(w float64) (q, dqdw float64) {
	if c.QMax <= 0 || c.B <= 0 || w <= 0 {
		return 0, 0
	}
	// hyperbolic q = w/(1/Ki + w/qmax) calibrated so q(0.1b)=0.9*qmax:
	// solve Ki from that single calibration point.
	w1 := 0.1 * c.B
	target := 0.9 * c.QMax
	// past the calibration point: linear from 0.9*qmax at 0.1b to qmax at
	// 0.2b, flat beyond.
	w2 := 0.2 * c.B
	if w >= w2 {
		return c.QMax, 0
	}
	if w > w1 {
		slope := (c.QMax - target) / (w2 - w1)
		return target + slope*(w-w1), slope
	}
	// target = w1/(1/Ki + w1/qmax)  =>  1/Ki = w1/target - w1/qmax
	invKi := w1/target - w1/c.QMax
	if invKi <= 0 {
		invKi = 1e-9
	}
	denom := invKi + w/c.QMax
	q = w / denom
	if q > c.QMax {
		q = c.QMax
	}
	// dq/dw of w/(a+w/qmax) is a/(a+w/qmax)^2
	dqdw = invKi / (denom * denom)
	return q, dqdw
}
