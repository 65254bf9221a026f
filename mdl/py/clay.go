package py

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// add models 1, 2, 4, 5, 14 to the registry; model 3 lives in clay_reese.go.
func init() {
	register("matlock-soft-clay", func() Model { return &MatlockSoftClay{} })
	register("api-soft-clay-userj", func() Model { return &MatlockSoftClay{userJ: true} })
	register("welch-reese-stiff-clay", func() Model { return &WelchReeseStiffClay{} })
	register("brown-modified-stiff-clay", func() Model { return &BrownModifiedStiffClay{} })
	register("piedmont-residual", func() Model { return &PiedmontResidual{} })
}

// eps50ConsistencyTable maps undrained strength (psf) to the Matlock
// strain-at-half-ultimate-stress default, hard clay (high cu) to soft clay
// (low cu), per spec §4.4 model 1.
var eps50ConsistencyTable = [][2]float64{
	{250, 0.02}, {500, 0.01}, {1000, 0.007}, {2000, 0.005}, {4000, 0.004},
}

func defaultEps50(cu float64) float64 {
	// table is descending in eps50 as cu increases; lerpTable expects an
	// ascending-x table, which this already is (cu ascending).
	return lerpTable(eps50ConsistencyTable, cu)
}

// MatlockSoftClay implements model 1 (Matlock Soft Clay) and, with a
// user-supplied J, model 2 (API Soft Clay with User J) of spec §4.4 — the
// two are the same formulation, differing only in where J comes from.
type MatlockSoftClay struct {
	J      float64
	Eps50  float64
	hasJ   bool
	hasE50 bool
	userJ  bool // true selects model 2's registry identity (cosmetic only)
}

func (o *MatlockSoftClay) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "j":
			o.J, o.hasJ = p.V, true
		case "eps50":
			o.Eps50, o.hasE50 = p.V, true
		default:
			return chk.Err("matlock-soft-clay: unknown parameter %q", p.N)
		}
	}
	if !o.hasJ {
		o.J = 0.5
	}
	if o.hasE50 && o.Eps50 <= 0 {
		return chk.Err("matlock-soft-clay: eps50 must be > 0, got %g", o.Eps50)
	}
	return nil
}

func (o *MatlockSoftClay) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "j", V: 0.5},
		&fun.Prm{N: "eps50", V: 0.01},
	}
}

func (o *MatlockSoftClay) eps50(cu float64) float64 {
	if o.hasE50 {
		return o.Eps50
	}
	return defaultEps50(cu)
}

func (o *MatlockSoftClay) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	b := in.B
	cu := in.Cu
	if cu < 1 {
		cu = 1
	}
	e50 := o.eps50(cu)
	ctx.Y50 = 2.5 * e50 * b
	term := (3 + in.GammaEff*ctx.ZIn/cu + o.J*ctx.ZIn/b) * cu * b
	ctx.PUlt = math.Min(term, 9*cu*b)
	if ctx.PUlt < 0 {
		ctx.PUlt = 0
	}
	denom := in.GammaEff*b/cu + o.J
	if denom > 1e-9 {
		ctx.Zr = 6 * b / denom
	} else {
		ctx.Zr = math.Inf(1)
	}
	return ctx
}

func (o *MatlockSoftClay) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return matlockShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

// matlockShape implements the static/cyclic Matlock shape rule shared by
// model 1/2 and the residual branch of model 10 (liquefied hybrid).
func matlockShape(ctx *Ctx, y float64) float64 {
	ya := abs(y)
	if ctx.Y50 <= 0 || ctx.PUlt <= 0 {
		return 0
	}
	if !ctx.Cyclic {
		if ya > 8*ctx.Y50 {
			return sign(y) * ctx.PUlt
		}
		return sign(y) * 0.5 * ctx.PUlt * math.Pow(ya/ctx.Y50, 1.0/3.0)
	}
	// cyclic
	var cap float64
	if ctx.ZIn < ctx.Zr {
		cap = 0.72 * ctx.PUlt * (ctx.ZIn / ctx.Zr)
	} else {
		cap = 0.72 * ctx.PUlt
	}
	if ya > 3*ctx.Y50 {
		return sign(y) * cap
	}
	v := 0.5 * ctx.PUlt * math.Pow(ya/ctx.Y50, 1.0/3.0)
	if v > cap {
		v = cap
	}
	return sign(y) * v
}

// WelchReeseStiffClay implements model 4 (Stiff Clay without Free Water).
type WelchReeseStiffClay struct {
	Eps50  float64
	hasE50 bool
}

func (o *WelchReeseStiffClay) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eps50":
			o.Eps50, o.hasE50 = p.V, true
		default:
			return chk.Err("welch-reese-stiff-clay: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *WelchReeseStiffClay) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "eps50", V: 0.005}}
}

func (o *WelchReeseStiffClay) eps50(cu float64) float64 {
	if o.hasE50 {
		return o.Eps50
	}
	return defaultEps50(cu)
}

// pUltMatlock is the shared Matlock-formulation ultimate resistance used by
// models 4, 5, and 14 (spec §4.4: "p_ult from Matlock formulation").
func pUltMatlock(in Inputs, zIn float64) float64 {
	cu := in.Cu
	if cu < 1 {
		cu = 1
	}
	term := (3 + in.GammaEff*zIn/cu + 0.5*zIn/in.B) * cu * in.B
	v := math.Min(term, 9*cu*in.B)
	if v < 0 {
		return 0
	}
	return v
}

func (o *WelchReeseStiffClay) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	cu := in.Cu
	if cu < 1 {
		cu = 1
	}
	ctx.PUlt = pUltMatlock(in, ctx.ZIn)
	ctx.Y50 = 2.5 * o.eps50(cu) * in.B
	return ctx
}

func (o *WelchReeseStiffClay) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return welchReeseShape(ctx, y, 1.0) }
	return pFunc(y), numDeriv(pFunc, y)
}

// welchReeseShape implements p = 0.5*p_ult*(y/y50)^0.25 capped at p_ult for
// |y|>16y50 (model 4), optionally scaled by mult (model 14's 0.85 factor).
func welchReeseShape(ctx *Ctx, y, mult float64) float64 {
	ya := abs(y)
	if ctx.Y50 <= 0 || ctx.PUlt <= 0 {
		return 0
	}
	pUlt := mult * ctx.PUlt
	if ya > 16*ctx.Y50 {
		return sign(y) * pUlt
	}
	return sign(y) * 0.5 * pUlt * math.Pow(ya/ctx.Y50, 0.25)
}

// BrownModifiedStiffClay implements model 5: a linear p=k*z*y segment up to
// its intersection with the model-4 0.25-power curve, then model 4.
type BrownModifiedStiffClay struct {
	K      float64 // initial modulus, lb/in^3
	hasK   bool
	Eps50  float64
	hasE50 bool
}

func (o *BrownModifiedStiffClay) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K, o.hasK = p.V, true
		case "eps50":
			o.Eps50, o.hasE50 = p.V, true
		default:
			return chk.Err("brown-modified-stiff-clay: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *BrownModifiedStiffClay) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "k", V: 500},
		&fun.Prm{N: "eps50", V: 0.005},
	}
}

func (o *BrownModifiedStiffClay) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	cu := in.Cu
	if cu < 1 {
		cu = 1
	}
	ctx.PUlt = pUltMatlock(in, ctx.ZIn)
	eps50 := o.Eps50
	if !o.hasE50 {
		eps50 = defaultEps50(cu)
	}
	ctx.Y50 = 2.5 * eps50 * in.B
	ctx.K = o.K
	if !o.hasK {
		ctx.K = 500 // representative stiff-clay subgrade modulus, lb/in^3
	}
	// find intersection y* of k*z*y and the 0.25-power curve by bisection.
	if ctx.K > 0 && ctx.Y50 > 0 && ctx.PUlt > 0 {
		ystar := intersectLinearPower(ctx.K*ctx.ZIn, ctx.PUlt, ctx.Y50, 0.25)
		ctx.ShA = ystar
	}
	return ctx
}

func (o *BrownModifiedStiffClay) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 {
		ya := abs(y)
		if ctx.ShA > 0 && ya <= ctx.ShA {
			return ctx.K * ctx.ZIn * y
		}
		return welchReeseShape(ctx, y, 1.0)
	}
	return pFunc(y), numDeriv(pFunc, y)
}

// intersectLinearPower finds y* > 0 solving kSlope*y = 0.5*pUlt*(y/y50)^exp
// by bisection, used to splice a linear initial segment onto a power-law
// curve (models 5 and 6).
func intersectLinearPower(kSlope, pUlt, y50, exp float64) float64 {
	if kSlope <= 0 || pUlt <= 0 || y50 <= 0 {
		return 0
	}
	f := func(y float64) float64 { return kSlope*y - 0.5*pUlt*math.Pow(y/y50, exp) }
	lo, hi := 1e-9, y50*1000
	if f(lo) <= 0 {
		return lo
	}
	for i := 0; i < 100 && f(hi) > 0; i++ {
		hi *= 2
	}
	for i := 0; i < 100; i++ {
		mid := 0.5 * (lo + hi)
		if f(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// PiedmontResidual implements model 14: model 4 with a 0.85 multiplier on
// p_ult and a default eps50 of 0.007.
type PiedmontResidual struct {
	Eps50  float64
	hasE50 bool
}

func (o *PiedmontResidual) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eps50":
			o.Eps50, o.hasE50 = p.V, true
		default:
			return chk.Err("piedmont-residual: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *PiedmontResidual) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "eps50", V: 0.007}}
}

func (o *PiedmontResidual) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	eps50 := o.Eps50
	if !o.hasE50 {
		eps50 = 0.007
	}
	ctx.PUlt = pUltMatlock(in, ctx.ZIn)
	ctx.Y50 = 2.5 * eps50 * in.B
	return ctx
}

func (o *PiedmontResidual) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return welchReeseShape(ctx, y, 0.85) }
	return pFunc(y), numDeriv(pFunc, y)
}
