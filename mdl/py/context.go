package py

// Ctx is the shared, per-(depth,layer) precomputed context of spec §9:
// evaluating the same curve at many trial y values inside the solver's
// inner loop should not recompute constants like p_ult, y50, or shape
// coefficients every time. A BuildContext call does that work once; Eval
// only does the cheap part.
type Ctx struct {
	Inputs

	ZIn float64 // depth in inches (Z*12), convenience for p=k*z*y forms

	PUlt float64 // ultimate lateral resistance, lb/in
	Y50  float64 // reference displacement, in
	K    float64 // initial/subgrade modulus, lb/in^3 (p = K*z*y form) or lb/in^2 depending on model
	ShA  float64 // shape coefficient A
	ShB  float64 // shape coefficient B
	ShC  float64 // shape coefficient C
	Zr   float64 // transition depth, in (Matlock cyclic)

	Extra map[string]float64 // rarer model-specific scalars (Gmax, alpha_r, ...)
}

func newCtx(in Inputs) *Ctx {
	return &Ctx{Inputs: in, ZIn: in.Z * 12.0, Extra: map[string]float64{}}
}

// lerpTable performs piecewise-linear interpolation over a table of
// {x, y} pairs sorted by x, clamping flat beyond the table's ends. This is
// the shared shape behind the by-phi / by-consistency tables of the p-y
// models in spec §4.4.
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

// numDeriv returns a central-difference estimate of f'(y), the same
// num.DerivCen role the teacher's msolid/driver.go plays when cross-checking
// a model's analytic tangent. Most of the eighteen curves below are
// multi-branch (piecewise power-law / hyperbolic / table lookups) where a
// hand-differentiated closed form would be easy to get subtly wrong across
// branch boundaries; evaluating the same p(y) closure at y+-h is exact
// enough for the secant solver that consumes dp/dy (spec §4.6) and keeps
// every model's derivative consistent with its own value by construction.
func numDeriv(p func(float64) float64, y float64) float64 {
	h := 1e-6
	if ay := abs(y); ay > 1 {
		h = ay * 1e-6
	}
	return (p(y+h) - p(y-h)) / (2 * h)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x, matching github.com/cpmech/gosl/fun.Sign's
// convention (zero maps to +1) used throughout the teacher's 1D plasticity
// models for odd-symmetric update rules.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
