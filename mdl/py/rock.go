package py

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func init() {
	register("weak-rock-reese", func() Model { return &WeakRockReese{} })
	register("strong-rock-vuggy", func() Model { return &StrongRockVuggy{} })
	register("massive-rock-hoek-brown", func() Model { return &MassiveRockHoekBrown{} })
}

// WeakRockReese implements model 11 (spec §4.4 item 11): Reese (1997) weak
// rock, a linear-to-power two-branch curve with RQD-reduced ultimate
// resistance and a depth-dependent initial-modulus factor k_ir.
type WeakRockReese struct {
	Qur   float64 // rock mass ultimate strength, psi
	RQD   float64 // percent, 0-100
	Eir   float64 // rock mass initial tangent modulus, psi
	EpsRm float64 // strain factor for y_rm, default 5e-4
	hasQur, hasRQD, hasEir, hasEpsRm bool
}

func (o *WeakRockReese) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qur":
			o.Qur, o.hasQur = p.V, true
		case "rqd":
			o.RQD, o.hasRQD = p.V, true
		case "eir":
			o.Eir, o.hasEir = p.V, true
		case "epsrm":
			o.EpsRm, o.hasEpsRm = p.V, true
		default:
			return chk.Err("weak-rock-reese: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *WeakRockReese) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "qur", V: 1000},
		&fun.Prm{N: "rqd", V: 50},
		&fun.Prm{N: "eir", V: 300000},
		&fun.Prm{N: "epsrm", V: 5e-4},
	}
}

func (o *WeakRockReese) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	qur := o.Qur
	if !o.hasQur {
		qur = 1000
	}
	rqd := o.RQD
	if !o.hasRQD {
		rqd = 50
	}
	eir := o.Eir
	if !o.hasEir {
		eir = 300 * qur // representative E_ir/q_ur ratio absent a measured modulus
	}
	epsRm := o.EpsRm
	if !o.hasEpsRm {
		epsRm = 5e-4
	}

	b := in.B
	x := ctx.ZIn
	alphaR := 1 - (2.0/3.0)*(rqd/100)

	var pur float64
	if x <= 3*b {
		pur = alphaR * qur * b * (1 + 1.4*x/b)
	} else {
		pur = 5.2 * alphaR * qur * b
	}
	if pur < 0 {
		pur = 0
	}

	kir := 100 + 400*x/(3*b)
	if kir > 500 {
		kir = 500
	}
	mIr := kir * eir
	yrm := epsRm * b

	var yA float64
	if pur > 0 && yrm > 0 && mIr > 0 {
		yA = math.Pow(pur/(2*math.Pow(yrm, 0.25)*mIr), 4.0/3.0)
	}

	ctx.PUlt = pur
	ctx.Y50 = yrm
	ctx.K = mIr
	ctx.ShA = yA
	return ctx
}

func (o *WeakRockReese) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return weakRockShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func weakRockShape(ctx *Ctx, y float64) float64 {
	if ctx.PUlt <= 0 {
		return 0
	}
	ya := abs(y)
	if ya <= ctx.ShA {
		return sign(y) * ctx.K * ya
	}
	if ctx.Y50 <= 0 {
		return sign(y) * ctx.PUlt
	}
	v := 0.5 * ctx.PUlt * math.Pow(ya/ctx.Y50, 0.25)
	if v > ctx.PUlt {
		v = ctx.PUlt
	}
	return sign(y) * v
}

// StrongRockVuggy implements model 12 (spec §4.4 item 12): a bilinear
// curve for massive/vuggy strong rock, capped at p_u = b*s_u.
type StrongRockVuggy struct {
	Qur    float64 // ultimate rock strength, psi
	hasQur bool
}

func (o *StrongRockVuggy) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qur":
			o.Qur, o.hasQur = p.V, true
		default:
			return chk.Err("strong-rock-vuggy: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *StrongRockVuggy) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "qur", V: 2000}}
}

func (o *StrongRockVuggy) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	qur := o.Qur
	if !o.hasQur {
		qur = 2000
	}
	su := qur / 2
	b := in.B
	ctx.PUlt = b * su
	ctx.Extra["su"] = su
	yBreak := 0.0004 * b
	ctx.ShA = yBreak
	ctx.ShB = 2000 * su * yBreak
	return ctx
}

func (o *StrongRockVuggy) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return strongRockShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func strongRockShape(ctx *Ctx, y float64) float64 {
	if ctx.PUlt <= 0 {
		return 0
	}
	ya := abs(y)
	su := ctx.Extra["su"]
	if ya <= ctx.ShA {
		return sign(y) * 2000 * su * ya
	}
	v := ctx.ShB + 100*su*(ya-ctx.ShA)
	if v > ctx.PUlt {
		v = ctx.PUlt
	}
	return sign(y) * v
}

// MassiveRockHoekBrown implements model 13 (spec §4.4 item 13): a
// hyperbolic p-y curve whose initial modulus and ultimate resistance are
// derived from a Hoek-Brown rock mass converted to an equivalent
// Mohr-Coulomb (c', phi') pair at the layer's in-situ confining stress,
// then carried through the same wedge/flow-around ultimate-resistance
// coefficients as Reese/API Sand (model 6/7) generalized to the
// equivalent friction angle.
type MassiveRockHoekBrown struct {
	SigmaCi float64 // intact rock UCS, psi
	Mi      float64 // Hoek-Brown intact rock constant
	GSI     float64 // geological strength index, 0-100
	Erock   float64 // rock mass deformation modulus, psi
	hasSigmaCi, hasMi, hasGSI, hasErock bool
}

func (o *MassiveRockHoekBrown) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "sigmaci":
			o.SigmaCi, o.hasSigmaCi = p.V, true
		case "mi":
			o.Mi, o.hasMi = p.V, true
		case "gsi":
			o.GSI, o.hasGSI = p.V, true
		case "erock":
			o.Erock, o.hasErock = p.V, true
		default:
			return chk.Err("massive-rock-hoek-brown: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *MassiveRockHoekBrown) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "sigmaci", V: 1500},
		&fun.Prm{N: "mi", V: 10},
		&fun.Prm{N: "gsi", V: 50},
		&fun.Prm{N: "erock", V: 450000},
	}
}

func (o *MassiveRockHoekBrown) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	sigmaCi := o.SigmaCi
	if !o.hasSigmaCi {
		sigmaCi = 1500
	}
	mi := o.Mi
	if !o.hasMi {
		mi = 10
	}
	gsi := o.GSI
	if !o.hasGSI {
		gsi = 50
	}
	erock := o.Erock
	if !o.hasErock {
		erock = 300 * sigmaCi
	}

	const a = 0.5 // valid for GSI > 25, the common case for massive rock foundations
	mb := mi * math.Exp((gsi-100)/28)
	s := math.Exp((gsi - 100) / 9)

	sigma3Psi := in.SigmaVEff / 144.0
	if sigma3Psi < 1e-6 {
		sigma3Psi = 1e-6
	}
	sigma3n := sigma3Psi / sigmaCi
	term := 6 * a * mb * math.Pow(s+mb*sigma3n, a-1)
	sinPhi := term / (2*(1+a)*(2+a) + term)
	if sinPhi > 0.999 {
		sinPhi = 0.999
	}
	if sinPhi < 0 {
		sinPhi = 0
	}
	phiRad := math.Asin(sinPhi)
	phiDeg := phiRad * 180 / math.Pi

	numC := sigmaCi * ((1+2*a)*s + (1-a)*mb*sigma3n) * math.Pow(s+mb*sigma3n, a-1)
	denC := (1 + a) * (2 + a) * math.Sqrt(1+term/((1+a)*(2+a)))
	var cPrime float64
	if denC > 0 {
		cPrime = numC / denC
	}

	b := in.B
	z := ctx.ZIn
	gamma := in.GammaEff
	c1, c2, c3 := apiC1C2C3(phiDeg)
	pA := (c1*z + c2*b) * gamma * z
	pB := c3 * b * gamma * z
	pUltFriction := math.Min(pA, pB)
	if pUltFriction < 0 {
		pUltFriction = 0
	}
	pUltCohesion := 9 * cPrime * b

	ctx.PUlt = pUltFriction + pUltCohesion

	kir := 100 + 400*z/(3*b)
	if kir > 500 {
		kir = 500
	}
	ctx.K = kir * erock
	ctx.Extra["cPrime"] = cPrime
	ctx.Extra["phiDeg"] = phiDeg
	return ctx
}

func (o *MassiveRockHoekBrown) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return massiveRockShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func massiveRockShape(ctx *Ctx, y float64) float64 {
	if ctx.PUlt <= 0 || ctx.K <= 0 {
		return 0
	}
	ya := abs(y)
	denom := 1/ctx.K + ya/ctx.PUlt
	if denom <= 0 {
		return sign(y) * ctx.PUlt
	}
	v := ya / denom
	if v > ctx.PUlt {
		v = ctx.PUlt
	}
	return sign(y) * v
}
