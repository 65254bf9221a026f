// Package lateral implements the lateral finite-difference solver of spec
// §4.6 (Component G): a fourth-order beam-on-nonlinear-Winkler-foundation
// discretisation with iterative secant updating, grounded on the
// teacher's la.MatAlloc/la.VecCopy dense-array idiom (mdl/solid/driver.go,
// out/plotting.go) generalized from an element stiffness assembly to a
// banded pentadiagonal beam assembly.
package lateral

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/mdl/py"
	"github.com/solarpile/pilefem/notes"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
	"github.com/solarpile/pilefem/units"
)

// HeadCondition selects the head boundary condition of spec §4.6.
type HeadCondition int

const (
	Free HeadCondition = iota
	Fixed
)

// Request bundles the inputs to Analyze, spec §6 entry point 2.
type Request struct {
	Profile       *soil.Profile
	Section       *section.Section
	EmbedmentFt   float64
	Axis          section.Axis
	HLb           float64 // applied lateral shear at ground surface, lb
	MGroundFtLb   float64 // applied moment at ground surface, ft-lb
	HeadCondition HeadCondition
	Cyclic        bool

	NSegments int     // discretisation count; 0 means 100 (spec §4.6: "N~=100")
	MaxIter   int     // 0 means 200
	Tolerance float64 // 0 means 1e-4

	// Cancel, if non-nil, is polled between iterations (spec §5); returning
	// true stops the solve and reports Cancelled via Converged=false.
	Cancel func() bool
}

// Result is the LateralResult of spec §3.
type Result struct {
	DepthFt      []float64
	YIn          []float64
	SlopeRad     []float64
	MomentLbIn   []float64
	ShearLb      []float64
	SoilReaction []float64 // lb/in

	YGround       float64
	MMax          float64
	DepthMMaxFt   float64
	DepthZeroDefl float64
	Iterations    int
	Converged     bool
	DCR           float64
	SampleCurves  map[string][][2]float64
	Notes         []string
}

// Analyze implements spec §6 entry point 2, lateral_analysis.
func Analyze(req Request) (*Result, error) {
	p := req.Profile
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if req.EmbedmentFt <= 0 {
		return nil, errs.New(errs.InvalidInput, "lateral: embedment must be > 0, got %g", req.EmbedmentFt)
	}
	if req.Section == nil {
		return nil, errs.New(errs.InvalidInput, "lateral: section is required")
	}
	n := req.NSegments
	if n <= 0 {
		n = 100
	}
	if n < 4 {
		return nil, errs.New(errs.DegenerateGeometry, "lateral: need at least 4 segments, got %d", n)
	}
	maxIter := req.MaxIter
	if maxIter <= 0 {
		maxIter = 200
	}
	tol := req.Tolerance
	if tol <= 0 {
		tol = 1e-4
	}

	lengthIn := req.EmbedmentFt * units.FtToIn
	h := lengthIn / float64(n)
	if h <= 0 {
		return nil, errs.New(errs.DegenerateGeometry, "lateral: zero-length element")
	}
	ei := req.Section.EI(req.Axis)
	if ei <= 0 {
		return nil, errs.New(errs.Singular, "lateral: section EI must be > 0")
	}
	b := req.Section.D

	nbuf := notes.NewBuffer()

	nodes := make([]*nodeModel, n+1)
	for i := 0; i <= n; i++ {
		zFt := float64(i) * h * units.InToFt
		layer := p.LayerAt(zFt)
		nodes[i] = buildNodeModel(p, layer, zFt, b, req.Cyclic, nbuf)
	}

	m0 := req.MGroundFtLb * units.FtToIn // ft-lb -> lb-in
	v0 := req.HLb

	y := make([]float64, n+1)
	yOld := make([]float64, n+1)
	ySecant := make([]float64, n+1)
	pAtNode := make([]float64, n+1)

	converged := false
	iter := 0
	prevResidual := math.Inf(1)
	cancelled := false

	for iter = 1; iter <= maxIter; iter++ {
		la.VecCopy(yOld, 1.0, y)

		for i := 0; i <= n; i++ {
			ySecant[i], pAtNode[i] = secantStiffness(nodes[i], y[i], nbuf)
		}
		band, rhs := assemble(n, h, ei, ySecant, req.HeadCondition, m0, v0)
		solved := solvePenta(n+1, band, rhs)

		delta := make([]float64, len(solved))
		for i := range solved {
			delta[i] = solved[i] - yOld[i]
		}
		maxAbs := maxAbsOf(solved)
		maxDelta := maxAbsOf(delta)
		yRef := 1e-3
		denom := math.Max(maxAbs, yRef)
		residual := maxDelta / denom

		omega := 1.0
		if residual > prevResidual {
			omega = 0.7
		}
		for i := range y {
			y[i] = yOld[i] + omega*(solved[i]-yOld[i])
		}
		prevResidual = residual

		if req.Cancel != nil && req.Cancel() {
			cancelled = true
			break
		}
		if residual < tol {
			converged = true
			break
		}
	}
	if iter > maxIter {
		iter = maxIter
	}

	for i := 0; i <= n; i++ {
		_, pAtNode[i] = secantStiffness(nodes[i], y[i], nbuf)
	}

	res := &Result{
		DepthFt:      make([]float64, n+1),
		YIn:          y,
		SlopeRad:     make([]float64, n+1),
		MomentLbIn:   make([]float64, n+1),
		ShearLb:      make([]float64, n+1),
		SoilReaction: pAtNode,
		Iterations:   iter,
		Converged:    converged && !cancelled,
	}
	for i := 0; i <= n; i++ {
		res.DepthFt[i] = float64(i) * h * units.InToFt
	}

	computeSlope(res.SlopeRad, y, h)
	computeMoment(res.MomentLbIn, y, h, ei, req.HeadCondition, m0)
	computeShear(res.ShearLb, res.MomentLbIn, h)

	res.YGround = y[0]
	res.MMax, res.DepthMMaxFt = maxAbsWithDepth(res.MomentLbIn, res.DepthFt)
	res.DepthZeroDefl = firstZeroCrossingDepth(y, res.DepthFt)
	my := req.Section.My(req.Axis)
	if my > 0 {
		res.DCR = math.Abs(res.MMax) / my
	}
	res.SampleCurves = sampleCurves(nodes)

	if cancelled {
		nbuf.Add("cancelled: solve stopped by caller after %d iterations", iter)
	} else if !converged {
		nbuf.Add("did not converge within %d iterations, reporting best iterate", maxIter)
	}
	res.Notes = nbuf.Lines()
	return res, nil
}

type nodeModel struct {
	model  py.Model
	ctx    *py.Ctx
	inputs py.Inputs
}

func buildNodeModel(p *soil.Profile, layer *soil.Layer, zFt, bIn float64, cyclic bool, nbuf *notes.Buffer) *nodeModel {
	key := layer.PYModel
	if key == "" {
		key = py.AutoKey(layer.Type.IsCohesive())
	}
	m, err := py.New(key)
	if err != nil {
		nbuf.AddOnce("py-fallback-"+key, "p-y model %q unavailable, falling back to AUTO", key)
		m, _ = py.New(py.AutoKey(layer.Type.IsCohesive()))
	}
	if ud, ok := m.(*py.UserDefined); ok {
		if len(layer.PYTable) > 0 {
			if err := ud.SetTable(layer.PYTable); err != nil {
				nbuf.AddOnce("py-table-"+key, "p-y model %q table rejected (%v), model stays empty", key, err)
			}
		}
	} else if err := m.Init(layer.PYParams); err != nil {
		nbuf.AddOnce("py-params-"+key, "p-y model %q parameter bundle rejected (%v), using defaults", key, err)
		_ = m.Init(fun.Prms{})
	}

	_, sigEff := p.StressAt(zFt)
	submerged := submergedAt(p, zFt)
	gammaEff := p.GammaOf(layer, submerged)
	if submerged {
		gammaEff -= units.GammaWater
	}
	in := py.Inputs{
		Z:         zFt,
		B:         bIn,
		GammaEff:  gammaEff,
		SigmaVEff: sigEff,
		Cu:        p.CuOf(layer),
		Phi:       p.PhiOf(layer),
		Cyclic:    cyclic,
	}
	ctx := m.BuildContext(in)
	return &nodeModel{model: m, ctx: ctx, inputs: in}
}

// submergedAt reports whether depth z sits below the profile's water
// table, applying the same above-surface clamp spec §8's boundary
// behaviour requires ("water table above surface is clamped to z=0").
func submergedAt(p *soil.Profile, zFt float64) bool {
	if p.WaterTable == nil {
		return false
	}
	wt := *p.WaterTable
	if wt < 0 {
		wt = 0
	}
	return zFt > wt
}

// secantStiffness returns the secant lateral stiffness (lb/in^2) and the
// evaluated soil reaction p (lb/in) at displacement y, flooring |y| at
// units.YFloor to avoid division by zero (spec §7).
func secantStiffness(nm *nodeModel, y float64, nbuf *notes.Buffer) (k, p float64) {
	yEval := y
	if math.Abs(yEval) < units.YFloor {
		if nbuf != nil {
			nbuf.AddOnce("y-floor", "floor applied: y=0 secant stiffness guarded at y=%.1e in", units.YFloor)
		}
		if yEval >= 0 {
			yEval = units.YFloor
		} else {
			yEval = -units.YFloor
		}
	}
	pFloor, _ := nm.model.Eval(nm.ctx, yEval)
	k = pFloor / yEval
	if k < 0 {
		k = 0
	}
	p, _ = nm.model.Eval(nm.ctx, y)
	return k, p
}

// assemble builds the pentadiagonal band (n+1 rows x 5 diagonals, offsets
// -2..+2, stored as a dense la.MatAlloc slab since the band is only 5
// columns wide) and RHS vector for the current secant stiffness array, per
// spec §4.6's "standard five-point central approximation for y''''" with
// fictitious-node elimination at each boundary: y_{-1}, y_{-2} are
// eliminated via the head conditions, and y_{N+1}, y_{N+2} via the toe's
// zero-M/zero-V conditions.
func assemble(n int, h, ei float64, k []float64, head HeadCondition, m0, v0 float64) ([][]float64, []float64) {
	rows := n + 1
	band := la.MatAlloc(rows, 5)
	rhs := make([]float64, rows)

	c := ei / (h * h * h * h)
	set := func(i, col int, val float64) {
		off := col - i + 2
		if off < 0 || off > 4 {
			return
		}
		band[i][off] += val
	}

	// interior rows: standard five-point stencil, EI*y'''' + k*y = 0.
	for i := 2; i <= n-2; i++ {
		set(i, i-2, c)
		set(i, i-1, -4*c)
		set(i, i, 6*c+k[i])
		set(i, i+1, -4*c)
		set(i, i+2, c)
		rhs[i] = 0
	}

	if head == Fixed {
		// y0 = 0 (Dirichlet); slope=0 substitutes y_{-1}=y1 into row 1's
		// raw stencil, with y0 folded to zero.
		set(0, 0, 1)
		rhs[0] = 0

		set(1, 1, 7*c+k[1])
		set(1, 2, -4*c)
		set(1, 3, c)
		rhs[1] = 0
	} else {
		// free head: M(0)=m0, V(0)=v0 eliminate y_{-1}=rhs1+2y0-y1 and
		// y_{-2}=2*y_{-1}-2y1+y2-rhs2, where rhs1=m0*h^2/EI, rhs2=2*v0*h^3/EI.
		rhs1 := m0 * h * h / ei
		rhs2 := 2 * v0 * h * h * h / ei

		set(0, 0, 2*c+k[0])
		set(0, 1, -4*c)
		set(0, 2, 2*c)
		rhs[0] = c * (2*rhs1 + rhs2)

		set(1, 0, -2*c)
		set(1, 1, 5*c+k[1])
		set(1, 2, -4*c)
		set(1, 3, c)
		rhs[1] = -c * rhs1
	}

	// toe: always free (zero shear, zero moment, no applied load).
	set(n, n-2, 2*c)
	set(n, n-1, -4*c)
	set(n, n, 2*c+k[n])
	rhs[n] = 0

	set(n-1, n-3, c)
	set(n-1, n-2, -4*c)
	set(n-1, n-1, 5*c+k[n-1])
	set(n-1, n, -2*c)
	rhs[n-1] = 0

	return band, rhs
}

// solvePenta performs banded Gaussian elimination without pivoting over a
// matrix stored as its five nonzero diagonals (offsets -2..+2 per row),
// exploiting the fact that fill-in from a pentadiagonal matrix never
// leaves the band. O(n) time and memory, matching spec §5's resource
// policy for the FDM solver.
func solvePenta(n int, band [][]float64, rhs []float64) []float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = append([]float64(nil), band[i]...)
	}
	r := append([]float64(nil), rhs...)

	idx := func(row, col int) int { return col - row + 2 }

	for k := 0; k < n; k++ {
		pivot := a[k][2]
		if math.Abs(pivot) < 1e-300 {
			pivot = 1e-300
		}
		for i := k + 1; i <= k+2 && i < n; i++ {
			ci := idx(i, k)
			if ci < 0 || ci > 4 {
				continue
			}
			factor := a[i][ci] / pivot
			if factor == 0 {
				continue
			}
			for j := k; j <= k+2 && j < n; j++ {
				cjk := idx(k, j)
				cji := idx(i, j)
				if cjk < 0 || cjk > 4 || cji < 0 || cji > 4 {
					continue
				}
				a[i][cji] -= factor * a[k][cjk]
			}
			r[i] -= factor * r[k]
		}
	}

	y := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := r[i]
		for j := i + 1; j <= i+2 && j < n; j++ {
			cj := idx(i, j)
			if cj < 0 || cj > 4 {
				continue
			}
			sum -= a[i][cj] * y[j]
		}
		diag := a[i][2]
		if math.Abs(diag) < 1e-300 {
			diag = 1e-300
		}
		y[i] = sum / diag
	}
	return y
}

func computeSlope(slope, y []float64, h float64) {
	n := len(y) - 1
	for i := range slope {
		switch {
		case i == 0:
			slope[i] = (y[1] - y[0]) / h
		case i == n:
			slope[i] = (y[n] - y[n-1]) / h
		default:
			slope[i] = (y[i+1] - y[i-1]) / (2 * h)
		}
	}
}

func computeMoment(m, y []float64, h, ei float64, head HeadCondition, m0 float64) {
	n := len(y) - 1
	for i := 1; i < n; i++ {
		m[i] = ei * (y[i-1] - 2*y[i] + y[i+1]) / (h * h)
	}
	m[n] = 0
	if head == Fixed {
		m[0] = ei * 2 * y[1] / (h * h)
	} else {
		m[0] = m0
	}
}

func computeShear(v, m []float64, h float64) {
	n := len(m) - 1
	for i := range v {
		switch {
		case i == 0:
			v[i] = (m[1] - m[0]) / h
		case i == n:
			v[i] = (m[n] - m[n-1]) / h
		default:
			v[i] = (m[i+1] - m[i-1]) / (2 * h)
		}
	}
}

// maxAbsOf returns the largest-magnitude entry of vals, via the teacher's
// utl.DblArgMinMax index-of-extremes idiom (ele/solid/beam.go) rather than a
// hand-rolled scan.
func maxAbsOf(vals []float64) float64 {
	imin, imax := utl.DblArgMinMax(vals)
	if math.Abs(vals[imin]) > math.Abs(vals[imax]) {
		return math.Abs(vals[imin])
	}
	return math.Abs(vals[imax])
}

// MaxAbsOf exposes maxAbsOf for bnwf's iteration-residual computation.
func MaxAbsOf(vals []float64) float64 { return maxAbsOf(vals) }

func maxAbsWithDepth(vals, depths []float64) (float64, float64) {
	imin, imax := utl.DblArgMinMax(vals)
	i := imax
	if math.Abs(vals[imin]) > math.Abs(vals[imax]) {
		i = imin
	}
	if vals[i] == 0 {
		return 0, 0
	}
	return vals[i], depths[i]
}

func firstZeroCrossingDepth(y, depths []float64) float64 {
	for i := 1; i < len(y); i++ {
		if y[i-1] == 0 {
			continue
		}
		if (y[i-1] > 0) != (y[i] > 0) {
			f := math.Abs(y[i-1]) / (math.Abs(y[i-1]) + math.Abs(y[i]))
			return depths[i-1] + f*(depths[i]-depths[i-1])
		}
	}
	return math.NaN()
}

func sampleCurves(nodes []*nodeModel) map[string][][2]float64 {
	out := make(map[string][][2]float64)
	if len(nodes) == 0 {
		return out
	}
	idxs := []int{0, len(nodes) / 4, len(nodes) / 2, 3 * len(nodes) / 4, len(nodes) - 1}
	seen := map[int]bool{}
	for _, i := range idxs {
		if i < 0 || i >= len(nodes) || seen[i] {
			continue
		}
		seen[i] = true
		nm := nodes[i]
		label := "node" + itoa(i)
		yRange := nm.ctx.Y50
		if yRange <= 0 || math.IsInf(yRange, 1) {
			yRange = 0.5
		}
		pts := make([][2]float64, 0, 11)
		for k := -5; k <= 5; k++ {
			y := float64(k) * yRange
			pv, _ := nm.model.Eval(nm.ctx, y)
			pts = append(pts, [2]float64{y, pv})
		}
		out[label] = pts
	}
	return out
}

// Exported wrappers below let package bnwf (Component H) reuse this file's
// FDM machinery — node-model construction, secant stiffness, banded
// assembly/solve, and post-processing — extended there with axial t-z/q-z
// springs and P-Delta geometric stiffness, rather than re-deriving the same
// beam-on-nonlinear-Winkler-foundation stencil a second time.

// NodeModel is the per-node p-y model/context pair built by BuildNodeModel.
type NodeModel = nodeModel

// BuildNodeModel constructs the p-y model and precomputed context for the
// layer at depth zFt, resolving AUTO per spec §4.4 and applying the
// submerged unit-weight reduction below the water table.
func BuildNodeModel(p *soil.Profile, layer *soil.Layer, zFt, bIn float64, cyclic bool, nbuf *notes.Buffer) *NodeModel {
	return buildNodeModel(p, layer, zFt, bIn, cyclic, nbuf)
}

// SecantStiffness returns the secant lateral stiffness and evaluated soil
// reaction at displacement y, flooring |y| per spec §7.
func SecantStiffness(nm *NodeModel, y float64, nbuf *notes.Buffer) (k, p float64) {
	return secantStiffness(nm, y, nbuf)
}

// SubmergedAt reports whether depth zFt lies below the profile's water
// table (clamped to z=0 when the table sits above the surface, spec §8).
func SubmergedAt(p *soil.Profile, zFt float64) bool { return submergedAt(p, zFt) }

// Assemble builds the banded pentadiagonal system for the current secant
// stiffness array, optionally adding P-Delta geometric stiffness from an
// axial force profile pAxial (lb, compression positive, one entry per
// node; pass nil to omit).
func Assemble(n int, h, ei float64, k []float64, head HeadCondition, m0, v0 float64, pAxial []float64) ([][]float64, []float64) {
	band, rhs := assemble(n, h, ei, k, head, m0, v0)
	if pAxial != nil {
		addGeometricStiffness(band, n, h, pAxial)
	}
	return band, rhs
}

// addGeometricStiffness adds the standard second-difference geometric
// stiffness term P*(y_{i-1}-2y_i+y_{i+1})/h^2 at each interior node, the
// discrete P-Delta contribution of spec §4.7; a compressive (positive) P
// lowers the lateral stiffness.
func addGeometricStiffness(band [][]float64, n int, h float64, p []float64) {
	for i := 1; i < n; i++ {
		coef := p[i] / (h * h)
		addBand(band, i, i-1, coef)
		addBand(band, i, i, -2*coef)
		addBand(band, i, i+1, coef)
	}
}

func addBand(band [][]float64, row, col int, val float64) {
	off := col - row + 2
	if off < 0 || off > 4 || row < 0 || row >= len(band) {
		return
	}
	band[row][off] += val
}

// SolvePenta exposes the banded pentadiagonal Gaussian elimination solve.
func SolvePenta(n int, band [][]float64, rhs []float64) []float64 {
	return solvePenta(n, band, rhs)
}

// ComputeSlope, ComputeMoment, ComputeShear recover derived quantities from
// a converged deflection array by central differences / the discrete
// EI*y'' relation, per spec §4.6.
func ComputeSlope(slope, y []float64, h float64) { computeSlope(slope, y, h) }
func ComputeMoment(m, y []float64, h, ei float64, head HeadCondition, m0 float64) {
	computeMoment(m, y, h, ei, head, m0)
}
func ComputeShear(v, m []float64, h float64) { computeShear(v, m, h) }

// MaxAbsWithDepth and SampleCurves expose the result post-processing
// helpers so bnwf's richer result can reuse the same reporting logic.
func MaxAbsWithDepth(vals, depths []float64) (float64, float64) { return maxAbsWithDepth(vals, depths) }
func SampleCurves(nodes []*NodeModel) map[string][][2]float64   { return sampleCurves(nodes) }
func FirstZeroCrossingDepth(y, depths []float64) float64        { return firstZeroCrossingDepth(y, depths) }

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
