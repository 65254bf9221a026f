package py

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func init() {
	register("rollins-liquefied-sand", func() Model { return &RollinsLiquefiedSand{} })
	register("liquefied-hybrid", func() Model { return &LiquefiedHybrid{} })
}

const (
	ftToM    = 0.3048
	inToMm   = 25.4
	kNPerM_to_lbPerIn = 68.5218 / 12.0 // 1 kN/m -> lb/ft -> lb/in
	rollinsCapKNPerM  = 15.0           // cap per 0.3 m reference pile diameter
)

// RollinsLiquefiedSand implements model 9 (spec §4.4 item 9).
type RollinsLiquefiedSand struct{}

func (o *RollinsLiquefiedSand) Init(prms fun.Prms) error    { return nil }
func (o *RollinsLiquefiedSand) GetPrms(example bool) fun.Prms { return fun.Prms{} }

func (o *RollinsLiquefiedSand) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	zM := math.Max(in.Z*ftToM, 0.3)
	dM := in.B * 0.0254 // in -> m
	pd := math.Sqrt(dM / 0.3)
	ctx.ShA = 3.81*math.Log(zM) + 4.17
	ctx.ShB = 0.296*math.Log(zM) + 0.944
	ctx.ShC = 0.939*math.Log(zM) - 0.403
	ctx.Extra["pd"] = pd
	ctx.Extra["zm"] = zM
	ctx.PUlt = rollinsCapKNPerM * pd * kNPerM_to_lbPerIn
	return ctx
}

func (o *RollinsLiquefiedSand) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return rollinsShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func rollinsShape(ctx *Ctx, y float64) float64 {
	yMm := abs(y) * inToMm
	pd := ctx.Extra["pd"]
	a, b, c := ctx.ShA, ctx.ShB, ctx.ShC
	var kNPerM float64
	if b*yMm > 0 && c != 0 {
		kNPerM = pd * a * math.Pow(b*yMm, c)
	}
	if kNPerM > rollinsCapKNPerM*pd || math.IsNaN(kNPerM) {
		kNPerM = rollinsCapKNPerM * pd
	}
	if kNPerM < 0 {
		kNPerM = 0
	}
	return sign(y) * kNPerM * kNPerM_to_lbPerIn
}

// LiquefiedHybrid implements model 10 (spec §4.4 item 10). The Liquefied
// Sand Hybrid's "residual c_u" source is ambiguous per spec §9's open
// questions; it is treated as a user input defaulting to 100 psf, exactly
// as spec §9 directs, until a production caller supplies a measured value.
type LiquefiedHybrid struct {
	rollins   RollinsLiquefiedSand
	ResidualCu float64
	hasCu     bool
}

func (o *LiquefiedHybrid) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "residualcu":
			o.ResidualCu, o.hasCu = p.V, true
		default:
			return chk.Err("liquefied-hybrid: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *LiquefiedHybrid) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "residualcu", V: 100}}
}

func (o *LiquefiedHybrid) residualCu() float64 {
	if o.hasCu {
		return o.ResidualCu
	}
	return 100
}

func (o *LiquefiedHybrid) BuildContext(in Inputs) *Ctx {
	ctx := o.rollins.BuildContext(in)
	residualIn := in
	residualIn.Cu = o.residualCu()
	residualIn.Cyclic = true
	matlock := &MatlockSoftClay{Eps50: 0.02, hasE50: true, J: 0.5, hasJ: true}
	mctx := matlock.BuildContext(residualIn)
	ctx.Extra["matlockPUlt"] = mctx.PUlt
	ctx.Extra["matlockY50"] = mctx.Y50
	ctx.Extra["matlockZr"] = mctx.Zr
	return ctx
}

func (o *LiquefiedHybrid) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 {
		pRollins := rollinsShape(ctx, y)
		mctx := &Ctx{
			Inputs: ctx.Inputs,
			ZIn:    ctx.ZIn,
			PUlt:   ctx.Extra["matlockPUlt"],
			Y50:    ctx.Extra["matlockY50"],
			Zr:     ctx.Extra["matlockZr"],
		}
		pMatlock := matlockShape(mctx, y)
		if abs(pMatlock) < abs(pRollins) {
			return pMatlock
		}
		return pRollins
	}
	return pFunc(y), numDeriv(pFunc, y)
}
