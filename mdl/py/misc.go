package py

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func init() {
	register("loess", func() Model { return &Loess{} })
	register("cemented-cphi-silt", func() Model { return &CementedCPhiSilt{} })
	register("elastic-subgrade", func() Model { return &ElasticSubgrade{} })
	register("user-input", func() Model { return &UserDefined{} })
}

// Loess implements model 15 (spec §4.4 item 15): a CPT-correlated ultimate
// resistance with cyclic-count degradation, a hyperbolic secant-modulus
// shape, and a linear surface-reduction factor over the top 2b.
type Loess struct {
	NCPT  float64 // CPT bearing-capacity factor, dimensionless
	Qc    float64 // CPT cone tip resistance, psi
	NCyc  float64 // number of load cycles, >=1
	CN    float64 // cyclic degradation coefficient
	YRef  float64 // reference displacement for the secant law, in
	hasNCPT, hasQc, hasNCyc, hasCN, hasYRef bool
}

func (o *Loess) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ncpt":
			o.NCPT, o.hasNCPT = p.V, true
		case "qc":
			o.Qc, o.hasQc = p.V, true
		case "ncyc":
			o.NCyc, o.hasNCyc = p.V, true
		case "cn":
			o.CN, o.hasCN = p.V, true
		case "yref":
			o.YRef, o.hasYRef = p.V, true
		default:
			return chk.Err("loess: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *Loess) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "ncpt", V: 0.5},
		&fun.Prm{N: "qc", V: 200},
		&fun.Prm{N: "ncyc", V: 1},
		&fun.Prm{N: "cn", V: 0.2},
		&fun.Prm{N: "yref", V: 0},
	}
}

func (o *Loess) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	ncpt := o.NCPT
	if !o.hasNCPT {
		ncpt = 0.5
	}
	qc := o.Qc
	if !o.hasQc {
		qc = 200
	}
	ncyc := o.NCyc
	if !o.hasNCyc || ncyc < 1 {
		ncyc = 1
	}
	cn := o.CN
	if !o.hasCN {
		cn = 0.2
	}
	b := in.B
	yref := o.YRef
	if !o.hasYRef || yref <= 0 {
		yref = 0.02 * b
	}

	logNcyc := 0.0
	if ncyc > 1 {
		logNcyc = math.Log10(ncyc)
	}
	denom := 1 + cn*logNcyc
	pu := ncpt * qc * b
	if denom > 0 {
		pu /= denom
	}

	twoB := 2 * b
	surf := 1.0
	if twoB > 0 {
		z := ctx.ZIn
		if z < twoB {
			surf = 0.5 + 0.5*(z/twoB)
		}
	}
	ctx.PUlt = pu * surf
	ctx.Y50 = yref
	return ctx
}

func (o *Loess) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return loessShape(ctx, y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func loessShape(ctx *Ctx, y float64) float64 {
	if ctx.PUlt <= 0 || ctx.Y50 <= 0 {
		return 0
	}
	ya := abs(y)
	v := ctx.PUlt * ya / (ctx.Y50 + ya)
	return sign(y) * v
}

// CementedCPhiSilt implements model 16 (spec §4.4 item 16): a combined
// frictional (Reese Sand) plus cohesive (Matlock-shaped, J=0.5) response,
// with the initial modulus summing a cemented cohesive contribution k_c
// onto the frictional k_phi only when Cemented is set.
type CementedCPhiSilt struct {
	Cemented bool
	Kc       float64 // cohesive cementation initial modulus, lb/in^3
	hasKc    bool
}

func (o *CementedCPhiSilt) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cemented":
			o.Cemented = p.V != 0
		case "kc":
			o.Kc, o.hasKc = p.V, true
		default:
			return chk.Err("cemented-cphi-silt: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *CementedCPhiSilt) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "cemented", V: 1}, &fun.Prm{N: "kc", V: 500}}
}

func (o *CementedCPhiSilt) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)

	friction := &ReeseSand{}
	frictionCtx := friction.BuildContext(in)

	cohesiveIn := in
	cohesion := &MatlockSoftClay{J: 0.5, hasJ: true}
	cohesiveCtx := cohesion.BuildContext(cohesiveIn)

	ctx.PUlt = frictionCtx.PUlt + cohesiveCtx.PUlt

	kPhi := frictionCtx.K
	kc := o.Kc
	if !o.hasKc {
		kc = 500
	}
	kInit := kPhi
	if o.Cemented {
		kInit += kc
	}
	ctx.K = kInit
	ctx.Extra["frictionPUlt"] = frictionCtx.PUlt
	ctx.Extra["frictionK"] = frictionCtx.K
	ctx.Extra["frictionShA"] = frictionCtx.ShA
	ctx.Extra["frictionShB"] = frictionCtx.ShB
	ctx.Extra["frictionShC"] = frictionCtx.ShC
	ctx.Extra["cohesionPUlt"] = cohesiveCtx.PUlt
	ctx.Extra["cohesionY50"] = cohesiveCtx.Y50
	return ctx
}

func (o *CementedCPhiSilt) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	frictionCtx := &Ctx{
		Inputs: ctx.Inputs,
		ZIn:    ctx.ZIn,
		PUlt:   ctx.Extra["frictionPUlt"],
		K:      ctx.Extra["frictionK"],
		ShA:    ctx.Extra["frictionShA"],
		ShB:    ctx.Extra["frictionShB"],
		ShC:    ctx.Extra["frictionShC"],
	}
	cohesionCtx := &Ctx{
		Inputs: ctx.Inputs,
		ZIn:    ctx.ZIn,
		PUlt:   ctx.Extra["cohesionPUlt"],
		Y50:    ctx.Extra["cohesionY50"],
	}
	pFunc := func(y float64) float64 {
		v := reeseSandShape(frictionCtx, y) + matlockShape(cohesionCtx, y)
		if ctx.PUlt > 0 {
			if v > ctx.PUlt {
				v = ctx.PUlt
			}
			if v < -ctx.PUlt {
				v = -ctx.PUlt
			}
		}
		return v
	}
	return pFunc(y), numDeriv(pFunc, y)
}

// ElasticSubgrade implements model 17 (spec §4.4 item 17): an unbounded
// linear p = k*z*y response used for simple/legacy comparisons.
type ElasticSubgrade struct {
	K    float64 // subgrade modulus, lb/in^3
	hasK bool
}

func (o *ElasticSubgrade) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K, o.hasK = p.V, true
		default:
			return chk.Err("elastic-subgrade: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (o *ElasticSubgrade) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "k", V: 100}}
}

func (o *ElasticSubgrade) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	ctx.K = o.K
	if !o.hasK {
		ctx.K = 100
	}
	ctx.PUlt = math.Inf(1) // unbounded per spec §4.4 item 17
	return ctx
}

func (o *ElasticSubgrade) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	return ctx.K * ctx.ZIn * y, ctx.K * ctx.ZIn
}

// UserDefined implements model 18 (spec §4.4 item 18): piecewise-linear
// interpolation of a user-supplied (y,p) table, extrapolated flat beyond
// the last point. The table does not fit the scalar fun.Prms bundle other
// models use, so it is set directly via SetTable rather than through
// Init/GetPrms; Init accepts an empty bundle and leaves an already-set
// table untouched.
type UserDefined struct {
	table [][2]float64 // (y, p) pairs, sorted ascending by y; may span negative y
}

// SetTable installs the (y,p) pairs, sorting them by y and validating that
// the function is nondecreasing, per spec §8 P1.
func (o *UserDefined) SetTable(pairs [][2]float64) error {
	if len(pairs) < 2 {
		return chk.Err("user-input: table needs at least two (y,p) points, got %d", len(pairs))
	}
	t := make([][2]float64, len(pairs))
	copy(t, pairs)
	sort.Slice(t, func(i, j int) bool { return t[i][0] < t[j][0] })
	for i := 1; i < len(t); i++ {
		if t[i][1] < t[i-1][1] {
			return chk.Err("user-input: table is not nondecreasing at y=%g", t[i][0])
		}
	}
	o.table = t
	return nil
}

func (o *UserDefined) Init(prms fun.Prms) error { return nil }
func (o *UserDefined) GetPrms(example bool) fun.Prms { return fun.Prms{} }

func (o *UserDefined) BuildContext(in Inputs) *Ctx {
	ctx := newCtx(in)
	if len(o.table) > 0 {
		ctx.PUlt = o.table[len(o.table)-1][1]
	}
	return ctx
}

func (o *UserDefined) Eval(ctx *Ctx, y float64) (p, dpdy float64) {
	pFunc := func(y float64) float64 { return o.interp(y) }
	return pFunc(y), numDeriv(pFunc, y)
}

func (o *UserDefined) interp(y float64) float64 {
	if len(o.table) == 0 {
		return 0
	}
	if y <= o.table[0][0] {
		return o.table[0][1]
	}
	last := o.table[len(o.table)-1]
	if y >= last[0] {
		return last[1]
	}
	for i := 0; i+1 < len(o.table); i++ {
		a, b := o.table[i], o.table[i+1]
		if y >= a[0] && y <= b[0] {
			f := (y - a[0]) / (b[0] - a[0])
			return a[1] + f*(b[1]-a[1])
		}
	}
	return last[1]
}
