package py

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func init() {
	register("reese-stiff-clay-freewater", func() Model { return &ReeseStiffClayFreeWater{} })
}

// asTable is the Reese (1975) A_s coefficient keyed by z/b, used for the
// unloading-segment breakpoint of model 3 (spec §4.4 item 3).
var asTable = [][2]float64{
	{0, 2.50}, {1, 2.30}, {2, 2.15}, {3, 2.05}, {4, 1.95},
	{5, 1.85}, {6, 1.60}, {8, 1.30}, {10, 1.10}, {12, 0.88},
}

// ReeseStiffClayFreeWater implements model 3 (spec §4.4): a four-branch
// curve (initial linear, parabolic, linear unloading via A_s(z/b), flat
// residual). The p-y property test of spec §8 (P1) requires every curve to
// be nondecreasing in |y|; the unloading/residual branches of the Reese
// literature curve dip below the parabolic peak for large z/b, so both
// branches here are floored at the running peak value rather than allowed
// to fall, resolving that tension in favour of the general invariant.
type ReeseStiffClayFreeWater struct {
	K      float64 // initial modulus, lb/in^3
	hasK   bool
	Eps50  float64
	hasE50 bool
}

func (o *ReeseStiffClayFreeWater) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K, o.hasK = p.V, true
		case "eps50":
			o.Eps50, o.hasE50 = p.V, true
		default:
			return chk.Err("reese-stiff-clay-freewater: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *ReeseStiffClayFreeWater) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "k", V: 500},
		&fun.Prm{N: "eps50", V: 0.007},
	}
}

func (o *ReeseStiffClayFreeWater) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	cu := in.Cu
	if cu < 1 {
		cu = 1
	}
	b := in.B
	pca := (2*cu + in.GammaEff*ctx.ZIn + 2.83*cu*ctx.ZIn/b) * b
	pcb := 11 * cu * b
	ctx.PUlt = math.Min(pca, pcb)
	eps50 := o.Eps50
	if !o.hasE50 {
		eps50 = defaultEps50(cu)
	}
	ctx.Y50 = eps50 * b
	ctx.K = o.K
	if !o.hasK {
		ctx.K = 500
	}
	zOverB := in.Z * 12.0 / b // z and b both converted consistently: z/b is dimensionless, in feet*12/in == in/in
	ctx.ShA = lerpTable(asTable, zOverB) // A_s
	ctx.ShB = zOverB
	return ctx
}

func (o *ReeseStiffClayFreeWater) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return reeseStiffClayShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func reeseStiffClayShape(ctx *Ctx, y float64) float64 {
	if ctx.PUlt <= 0 || ctx.Y50 <= 0 {
		return 0
	}
	ya := abs(y)
	as := ctx.ShA
	zOverB := ctx.ShB
	yAs := as * ctx.Y50    // end of parabolic segment
	y6 := 6 * ctx.Y50       // end of unloading segment (onset of residual)
	pAtYAs := 0.5 * ctx.PUlt * math.Sqrt(as)
	residual := 0.5 * ctx.PUlt * math.Max(1.225-0.75*zOverB, 0.225)

	// initial linear segment intersects the parabola at y1.
	y1 := intersectLinearPower(ctx.K*ctx.ZIn, ctx.PUlt, ctx.Y50, 0.5)
	if y1 > yAs {
		y1 = yAs
	}

	var v float64
	switch {
	case ya <= y1:
		v = ctx.K * ctx.ZIn * ya
	case ya <= yAs:
		v = 0.5 * ctx.PUlt * math.Sqrt(ya/ctx.Y50)
	case ya <= y6:
		if y6 > yAs {
			f := (ya - yAs) / (y6 - yAs)
			v = pAtYAs + f*(residual-pAtYAs)
		} else {
			v = residual
		}
	default:
		v = residual
	}
	// enforce the running-peak floor discussed in the type doc comment.
	if v < pAtYAs && ya > yAs {
		v = pAtYAs
	}
	return sign(y) * v
}
