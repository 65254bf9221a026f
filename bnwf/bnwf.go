// Package bnwf implements the coupled beam-on-nonlinear-Winkler-foundation
// FEM of spec §4.7 (Component H): axial displacement carried by t-z/q-z
// springs, lateral displacement carried by Component G's p-y FDM machinery,
// optionally coupled through P-Delta geometric stiffness. Grounded on the
// teacher's ele/solid/beam.go two-node rod/beam element (the EA/L truss
// stiffness pattern generalizes directly to the axial rod-with-springs
// assembly below) and on lateral's pentadiagonal beam solve, reused here
// rather than re-derived.
package bnwf

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/solarpile/pilefem/axial"
	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/lateral"
	"github.com/solarpile/pilefem/mdl/tz"
	"github.com/solarpile/pilefem/notes"
	"github.com/solarpile/pilefem/section"
	"github.com/solarpile/pilefem/soil"
	"github.com/solarpile/pilefem/units"
)

// Mode selects the analysis mode of spec §6 entry point 4.
type Mode int

const (
	Static Mode = iota
	PushoverLateral
	PushoverAxial
)

// Request bundles the inputs to Analyze.
type Request struct {
	Profile     *soil.Profile
	Section     *section.Section
	EmbedmentFt float64
	Axis        section.Axis
	PileType    axial.PileType
	Method      axial.Method

	VAxialLb      float64 // applied head axial load, lb, compression positive
	HLateralLb    float64
	MGroundFtLb   float64
	HeadCondition lateral.HeadCondition
	Cyclic        bool

	IncludePDelta bool
	Mode          Mode
	PushoverSteps int
	PushoverMaxMult float64

	IncludeEigen bool
	EigenCount   int

	NSegments int
	MaxIter   int
	Tolerance float64
	Cancel    func() bool
}

// Result is the BNWFResult of spec §3: all LateralResult fields plus axial
// displacement, axial force profile, the 3x3 pile-head stiffness matrix,
// and the optional pushover/eigen/P_critical outputs.
type Result struct {
	DepthFt      []float64
	YIn          []float64
	SlopeRad     []float64
	MomentLbIn   []float64
	ShearLb      []float64
	SoilReaction []float64

	YGround       float64
	MMax          float64
	DepthMMaxFt   float64
	DepthZeroDefl float64
	Iterations    int
	Converged     bool
	DCR           float64
	SampleCurves  map[string][][2]float64
	Notes         []string

	AxialDispIn  []float64
	AxialForceLb []float64
	KHead        [3][3]float64 // rows/cols ordered {axial, lateral, rotation}

	PushoverDisp []float64
	PushoverLoad []float64

	Eigenvalues  []float64
	PCritical    float64
	HasPCritical bool
}

type axialNode struct {
	shaft   *tz.TZCurve
	tip     *tz.QZCurve // non-nil only at the tip node
	tribIn  float64
}

// Analyze implements spec §6 entry point 4, bnwf_analysis.
func Analyze(req Request) (*Result, error) {
	p := req.Profile
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if req.EmbedmentFt <= 0 {
		return nil, errs.New(errs.InvalidInput, "bnwf: embedment must be > 0, got %g", req.EmbedmentFt)
	}
	if req.Section == nil {
		return nil, errs.New(errs.InvalidInput, "bnwf: section is required")
	}
	n := req.NSegments
	if n <= 0 {
		n = 100
	}
	if n < 4 {
		return nil, errs.New(errs.DegenerateGeometry, "bnwf: need at least 4 segments, got %d", n)
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
	ei := req.Section.EI(req.Axis)
	if ei <= 0 {
		return nil, errs.New(errs.Singular, "bnwf: section EI must be > 0")
	}
	ea := req.Section.Area * 29000000.0 // steel E=29,000 ksi -> psi
	b := req.Section.D

	nbuf := notes.NewBuffer()

	latNodes := make([]*lateral.NodeModel, n+1)
	axNodes := make([]*axialNode, n+1)
	for i := 0; i <= n; i++ {
		zFt := float64(i) * h * units.InToFt
		layer := p.LayerAt(zFt)
		latNodes[i] = lateral.BuildNodeModel(p, layer, zFt, b, req.Cyclic, nbuf)
		axNodes[i] = buildAxialNode(p, layer, req, zFt, h, i == n, nbuf)
	}

	switch req.Mode {
	case PushoverAxial:
		return pushoverAxial(req, axNodes, ea, h, n, maxIter, tol, nbuf)
	case PushoverLateral:
		return pushoverLateral(req, latNodes, axNodes, ei, ea, h, n, maxIter, tol, nbuf)
	default:
		return staticAnalyze(req, latNodes, axNodes, ei, ea, h, n, maxIter, tol, nbuf)
	}
}

func buildAxialNode(p *soil.Profile, layer *soil.Layer, req Request, zFt, h float64, isTip bool, nbuf *notes.Buffer) *axialNode {
	fs, _ := axial.UnitSkinFriction(p, layer, req.PileType, req.Method, zFt, nbuf)
	tMaxForcePerIn := fs * req.Section.Perimeter / 144.0
	an := &axialNode{shaft: tz.NewTZ(tMaxForcePerIn, req.Section.D)}
	if isTip {
		an.tribIn = h / 2
		qb := axial.UnitEndBearingPsf(p, axial.Request{Profile: p, Section: req.Section}, zFt, nbuf)
		qMax := qb * req.Section.TipArea / 144.0
		an.tip = tz.NewQZ(qMax, req.Section.D)
	} else if zFt == 0 {
		an.tribIn = h / 2
	} else {
		an.tribIn = h
	}
	return an
}

// axialNodalForce returns the total resisting force (lb) and its secant
// stiffness (lb/in) at displacement u for node i.
func axialNodalForce(an *axialNode, u float64) (force, k float64) {
	uEval := u
	if math.Abs(uEval) < units.YFloor {
		if uEval >= 0 {
			uEval = units.YFloor
		} else {
			uEval = -units.YFloor
		}
	}
	t, _ := an.shaft.Eval(uEval)
	force = t * an.tribIn
	if an.tip != nil {
		q, _ := an.tip.Eval(uEval)
		force += q
	}
	k = force / uEval
	if k < 0 {
		k = 0
	}
	t2, _ := an.shaft.Eval(u)
	force = t2 * an.tribIn
	if an.tip != nil {
		q2, _ := an.tip.Eval(u)
		force += q2
	}
	return force, k
}

// solveAxial runs the secant-Picard iteration for the axial rod-with-
// springs system (tridiagonal, truss-element EA/h stiffness plus lumped
// nodal spring stiffness), returning displacement and element-force
// profiles.
func solveAxial(axNodes []*axialNode, ea, h, v0 float64, n, maxIter int, tol float64) (u, force []float64, iters int, converged bool) {
	u = make([]float64, n+1)
	uOld := make([]float64, n+1)
	rodK := ea / h

	for iter := 1; iter <= maxIter; iter++ {
		la.VecCopy(uOld, 1.0, u)
		sub := make([]float64, n+1)
		diag := make([]float64, n+1)
		sup := make([]float64, n+1)
		rhs := make([]float64, n+1)
		for i := 0; i <= n; i++ {
			if i > 0 {
				sub[i] = -rodK
				diag[i] += rodK
			}
			if i < n {
				sup[i] = -rodK
				diag[i] += rodK
			}
			_, k := axialNodalForce(axNodes[i], u[i])
			diag[i] += k
		}
		rhs[0] = v0
		solved := thomasSolve(sub, diag, sup, rhs)

		delta := make([]float64, len(solved))
		for i := range solved {
			delta[i] = solved[i] - uOld[i]
		}
		maxAbs := lateral.MaxAbsOf(solved)
		maxDelta := lateral.MaxAbsOf(delta)
		residual := maxDelta / math.Max(maxAbs, 1e-3)
		copy(u, solved)
		iters = iter
		if residual < tol {
			converged = true
			break
		}
	}

	force = make([]float64, n+1)
	elemForce := make([]float64, n)
	for i := 0; i < n; i++ {
		elemForce[i] = rodK * (u[i] - u[i+1])
	}
	for i := 0; i <= n; i++ {
		switch {
		case i == 0:
			force[i] = elemForce[0]
		case i == n:
			force[i] = elemForce[n-1]
		default:
			force[i] = 0.5 * (elemForce[i-1] + elemForce[i])
		}
	}
	return u, force, iters, converged
}

func thomasSolve(sub, diag, sup, rhs []float64) []float64 {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = sup[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		m := diag[i] - sub[i]*cp[i-1]
		if math.Abs(m) < 1e-300 {
			m = 1e-300
		}
		if i < n-1 {
			cp[i] = sup[i] / m
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / m
	}
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

func staticAnalyze(req Request, latNodes []*lateral.NodeModel, axNodes []*axialNode, ei, ea, h float64, n, maxIter int, tol float64, nbuf *notes.Buffer) (*Result, error) {
	u, axForce, axIters, axConverged := solveAxial(axNodes, ea, h, req.VAxialLb, n, maxIter, tol)

	var pAxial []float64
	if req.IncludePDelta {
		pAxial = axForce
	}
	y, mom, slope, shear, pReact, latIters, latConverged, cancelled := solveLateral(req, latNodes, ei, h, n, maxIter, tol, pAxial)

	res := &Result{
		DepthFt:      make([]float64, n+1),
		YIn:          y,
		SlopeRad:     slope,
		MomentLbIn:   mom,
		ShearLb:      shear,
		SoilReaction: pReact,
		AxialDispIn:  u,
		AxialForceLb: axForce,
		Iterations:   latIters,
		Converged:    latConverged && axConverged && !cancelled,
	}
	for i := 0; i <= n; i++ {
		res.DepthFt[i] = float64(i) * h * units.InToFt
	}
	res.YGround = y[0]
	res.MMax, res.DepthMMaxFt = lateral.MaxAbsWithDepth(mom, res.DepthFt)
	res.DepthZeroDefl = lateral.FirstZeroCrossingDepth(y, res.DepthFt)
	my := req.Section.My(req.Axis)
	if my > 0 {
		res.DCR = math.Abs(res.MMax) / my
	}
	res.SampleCurves = lateral.SampleCurves(latNodes)

	res.KHead = headStiffness(req, latNodes, axNodes, ea, h, n, pAxial)

	if req.IncludePDelta {
		pc, has := criticalLoad(req, latNodes, ei, h, n)
		res.PCritical, res.HasPCritical = pc, has
	}
	if req.IncludeEigen {
		k := req.EigenCount
		if k <= 0 {
			k = 3
		}
		res.Eigenvalues = eigenvalues(req, latNodes, ei, h, n, k)
	}

	if !axConverged {
		nbuf.Add("axial sub-solve did not converge within %d iterations", axIters)
	}
	if !latConverged {
		nbuf.Add("lateral sub-solve did not converge within %d iterations", maxIter)
	}
	if cancelled {
		nbuf.Add("cancelled: solve stopped by caller")
	}
	res.Notes = nbuf.Lines()
	return res, nil
}

func solveLateral(req Request, nodes []*lateral.NodeModel, ei, h float64, n, maxIter int, tol float64, pAxial []float64) (y, mom, slope, shear, pReact []float64, iters int, converged, cancelled bool) {
	m0 := req.MGroundFtLb * units.FtToIn
	v0 := req.HLateralLb

	y = make([]float64, n+1)
	yOld := make([]float64, n+1)
	ySecant := make([]float64, n+1)
	pReact = make([]float64, n+1)
	prevResidual := math.Inf(1)

	for iter := 1; iter <= maxIter; iter++ {
		la.VecCopy(yOld, 1.0, y)
		for i := 0; i <= n; i++ {
			ySecant[i], pReact[i] = lateral.SecantStiffness(nodes[i], y[i], nil)
		}
		band, rhs := lateral.Assemble(n, h, ei, ySecant, req.HeadCondition, m0, v0, pAxial)
		solved := lateral.SolvePenta(n+1, band, rhs)

		delta := make([]float64, len(solved))
		for i := range solved {
			delta[i] = solved[i] - yOld[i]
		}
		maxAbs := lateral.MaxAbsOf(solved)
		maxDelta := lateral.MaxAbsOf(delta)
		residual := maxDelta / math.Max(maxAbs, 1e-3)
		omega := 1.0
		if residual > prevResidual {
			omega = 0.7
		}
		for i := range y {
			y[i] = yOld[i] + omega*(solved[i]-yOld[i])
		}
		prevResidual = residual
		iters = iter

		if req.Cancel != nil && req.Cancel() {
			cancelled = true
			break
		}
		if residual < tol {
			converged = true
			break
		}
	}
	for i := 0; i <= n; i++ {
		_, pReact[i] = lateral.SecantStiffness(nodes[i], y[i], nil)
	}
	slope = make([]float64, n+1)
	mom = make([]float64, n+1)
	shear = make([]float64, n+1)
	lateral.ComputeSlope(slope, y, h)
	lateral.ComputeMoment(mom, y, h, ei, req.HeadCondition, m0)
	lateral.ComputeShear(shear, mom, h)
	return y, mom, slope, shear, pReact, iters, converged, cancelled
}

// headStiffness recovers the 3x3 pile-head stiffness matrix of spec §4.7
// by applying unit perturbations in {axial, lateral, rotation at head} and
// reading back the reaction at the perturbed DOF. Axial and lateral
// behaviour are uncoupled in this model (independent springs, and the
// geometric-stiffness term depends on the internal axial force profile,
// not on head displacement), so K_head is block-diagonal: a 1x1 axial
// block and a 2x2 lateral block.
func headStiffness(req Request, nodes []*lateral.NodeModel, axNodes []*axialNode, ea, h float64, n int, pAxial []float64) [3][3]float64 {
	var kh [3][3]float64

	// axial block: unit head displacement, t-z/q-z springs at their tangent
	// at the origin.
	rodK := ea / h
	sub := make([]float64, n+1)
	diag := make([]float64, n+1)
	sup := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		if i > 0 {
			sub[i] = -rodK
			diag[i] += rodK
		}
		if i < n {
			sup[i] = -rodK
			diag[i] += rodK
		}
		_, k := axialNodalForce(axNodes[i], units.YFloor)
		diag[i] += k
	}
	k00 := diag[0]
	diag[0] += 1e12 // penalty: enforce u0=1 via large stiffness and matching load
	rhs := make([]float64, n+1)
	rhs[0] = 1e12
	uUnit := thomasSolve(sub, diag, sup, rhs)
	kh[0][0] = k00*uUnit[0] - rodK*uUnit[1]

	// lateral block: tangent stiffness at zero displacement (initial k).
	ySecant := make([]float64, n+1)
	ei := req.Section.EI(req.Axis)
	for i := 0; i <= n; i++ {
		ySecant[i], _ = lateral.SecantStiffness(nodes[i], units.YFloor, nil)
	}
	// unit moment, zero shear.
	bandM, rhsM := lateral.Assemble(n, h, ei, ySecant, req.HeadCondition, 1.0, 0.0, pAxial)
	solM := lateral.SolvePenta(n+1, bandM, rhsM)
	// unit shear, zero moment.
	bandV, rhsV := lateral.Assemble(n, h, ei, ySecant, req.HeadCondition, 0.0, 1.0, pAxial)
	solV := lateral.SolvePenta(n+1, bandV, rhsV)

	slopeM := make([]float64, n+1)
	slopeV := make([]float64, n+1)
	lateral.ComputeSlope(slopeM, solM, h)
	lateral.ComputeSlope(slopeV, solV, h)

	// K_lat * [y0;theta0] = [V;M] => invert the 2x2 compliance [y0,theta0]
	// produced by unit M and unit V loadings.
	c11, c12 := solV[0], solM[0]
	c21, c22 := slopeV[0], slopeM[0]
	det := c11*c22 - c12*c21
	if math.Abs(det) < 1e-300 {
		det = 1e-300
	}
	kh[1][1] = c22 / det
	kh[1][2] = -c12 / det
	kh[2][1] = -c21 / det
	kh[2][2] = c11 / det
	return kh
}

func pushoverLateral(req Request, latNodes []*lateral.NodeModel, axNodes []*axialNode, ei, ea, h float64, n, maxIter int, tol float64, nbuf *notes.Buffer) (*Result, error) {
	steps := req.PushoverSteps
	if steps <= 0 {
		steps = 20
	}
	maxMult := req.PushoverMaxMult
	if maxMult <= 0 {
		maxMult = 3.0
	}

	var pAxial []float64
	if req.IncludePDelta {
		u, axForce, _, _ := solveAxial(axNodes, ea, h, req.VAxialLb, n, maxIter, tol)
		_ = u
		pAxial = axForce
	}

	disp := make([]float64, steps)
	load := make([]float64, steps)
	var last *Result
	for s := 1; s <= steps; s++ {
		mult := maxMult * float64(s) / float64(steps)
		sub := req
		sub.HLateralLb = req.HLateralLb * mult
		sub.MGroundFtLb = req.MGroundFtLb * mult
		y, mom, slope, shear, pReact, iters, converged, cancelled := solveLateral(sub, latNodes, ei, h, n, maxIter, tol, pAxial)
		disp[s-1] = y[0]
		load[s-1] = sub.HLateralLb
		last = &Result{
			DepthFt:      depthGrid(h, n),
			YIn:          y,
			SlopeRad:     slope,
			MomentLbIn:   mom,
			ShearLb:      shear,
			SoilReaction: pReact,
			Iterations:   iters,
			Converged:    converged && !cancelled,
		}
	}
	last.PushoverDisp = disp
	last.PushoverLoad = load
	last.YGround = disp[len(disp)-1]
	last.MMax, last.DepthMMaxFt = lateral.MaxAbsWithDepth(last.MomentLbIn, last.DepthFt)
	last.DepthZeroDefl = lateral.FirstZeroCrossingDepth(last.YIn, last.DepthFt)
	my := req.Section.My(req.Axis)
	if my > 0 {
		last.DCR = math.Abs(last.MMax) / my
	}
	last.SampleCurves = lateral.SampleCurves(latNodes)
	last.Notes = nbuf.Lines()
	return last, nil
}

func pushoverAxial(req Request, axNodes []*axialNode, ea, h float64, n, maxIter int, tol float64, nbuf *notes.Buffer) (*Result, error) {
	steps := req.PushoverSteps
	if steps <= 0 {
		steps = 20
	}
	maxMult := req.PushoverMaxMult
	if maxMult <= 0 {
		maxMult = 3.0
	}

	disp := make([]float64, steps)
	load := make([]float64, steps)
	var u, force []float64
	var iters int
	var converged bool
	for s := 1; s <= steps; s++ {
		mult := maxMult * float64(s) / float64(steps)
		v := req.VAxialLb * mult
		u, force, iters, converged = solveAxial(axNodes, ea, h, v, n, maxIter, tol)
		disp[s-1] = u[0]
		load[s-1] = v
	}
	res := &Result{
		DepthFt:      depthGrid(h, n),
		AxialDispIn:  u,
		AxialForceLb: force,
		Iterations:   iters,
		Converged:    converged,
		PushoverDisp: disp,
		PushoverLoad: load,
	}
	if !converged {
		nbuf.Add("axial pushover did not converge at final step within %d iterations", maxIter)
	}
	res.Notes = nbuf.Lines()
	return res, nil
}

func depthGrid(h float64, n int) []float64 {
	d := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		d[i] = float64(i) * h * units.InToFt
	}
	return d
}

// criticalLoad bisects for the axial compressive load at which the
// lateral tangent stiffness (initial p-y k plus geometric stiffness from a
// uniform axial force profile of that magnitude) loses positive
// definiteness, tracked via the sign of pivots in the banded elimination —
// a standard Sturm-sequence-style count, reusing lateral's elimination
// structure rather than a dense eigensolve.
func criticalLoad(req Request, nodes []*lateral.NodeModel, ei, h float64, n int) (float64, bool) {
	ySecant := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		ySecant[i], _ = lateral.SecantStiffness(nodes[i], units.YFloor, nil)
	}
	isPositiveDefinite := func(p float64) bool {
		pAxial := make([]float64, n+1)
		for i := range pAxial {
			pAxial[i] = p
		}
		band, _ := lateral.Assemble(n, h, ei, ySecant, req.HeadCondition, 0, 0, pAxial)
		return countNegativePivots(band, n+1) == 0
	}

	if !isPositiveDefinite(0) {
		return 0, false
	}
	lo, hi := 0.0, 1000.0
	found := false
	for i := 0; i < 40; i++ {
		if !isPositiveDefinite(hi) {
			found = true
			break
		}
		hi *= 2
	}
	if !found {
		return 0, false
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		if isPositiveDefinite(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), true
}

func countNegativePivots(band [][]float64, n int) int {
	a := make([][]float64, n)
	for i := range a {
		a[i] = append([]float64(nil), band[i]...)
	}
	idx := func(row, col int) int { return col - row + 2 }
	neg := 0
	for k := 0; k < n; k++ {
		pivot := a[k][2]
		if pivot < 0 {
			neg++
		}
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
		}
	}
	return neg
}

// eigenvalues returns the first k lateral natural-mode eigenvalues (rad/s
// squared) of the linearised system using lumped mass (pile self-weight
// plus a tributary-soil contribution estimated from each node's initial
// p-y stiffness, per spec §4.7) via inverse iteration with
// Gram-Schmidt deflation, reusing the banded solve rather than a dense
// eigensolver.
func eigenvalues(req Request, nodes []*lateral.NodeModel, ei, h float64, n, k int) []float64 {
	ySecant := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		ySecant[i], _ = lateral.SecantStiffness(nodes[i], units.YFloor, nil)
	}
	band, _ := lateral.Assemble(n, h, ei, ySecant, req.HeadCondition, 0, 0, nil)

	const gIn = 386.4 // gravitational acceleration, in/s^2
	const soilMassFactor = 1e-4 // empirical tributary-soil added-mass factor
	mass := make([]float64, n+1)
	wPerIn := req.Section.WeightPlf / 12.0
	for i := 0; i <= n; i++ {
		trib := h
		if i == 0 || i == n {
			trib = h / 2
		}
		mass[i] = (wPerIn*trib)/gIn + soilMassFactor*ySecant[i]
		if mass[i] <= 0 {
			mass[i] = 1e-9
		}
	}

	found := make([]float64, 0, k)
	vecs := make([][]float64, 0, k)
	nn := n + 1
	for mode := 0; mode < k; mode++ {
		x := make([]float64, nn)
		for i := range x {
			x[i] = 1.0
		}
		for iter := 0; iter < 50; iter++ {
			rhs := make([]float64, nn)
			for i := range rhs {
				rhs[i] = mass[i] * x[i]
			}
			xNew := lateral.SolvePenta(nn, band, rhs)
			for _, prev := range vecs {
				dot, norm := 0.0, 0.0
				for i := range xNew {
					dot += xNew[i] * mass[i] * prev[i]
					norm += prev[i] * mass[i] * prev[i]
				}
				if norm > 0 {
					for i := range xNew {
						xNew[i] -= (dot / norm) * prev[i]
					}
				}
			}
			norm := 0.0
			for i := range xNew {
				norm += xNew[i] * mass[i] * xNew[i]
			}
			norm = math.Sqrt(math.Max(norm, 1e-300))
			for i := range xNew {
				xNew[i] /= norm
			}
			x = xNew
		}
		// Rayleigh quotient omega^2 = (x^T K x) / (x^T M x).
		kx := applyBanded(band, x, nn)
		num, den := 0.0, 0.0
		for i := 0; i < nn; i++ {
			num += x[i] * kx[i]
			den += x[i] * mass[i] * x[i]
		}
		omega2 := num / math.Max(den, 1e-300)
		found = append(found, omega2)
		vecs = append(vecs, x)
	}
	return found
}

func applyBanded(band [][]float64, x []float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for off := 0; off < 5; off++ {
			j := i + off - 2
			if j < 0 || j >= n {
				continue
			}
			sum += band[i][off] * x[j]
		}
		out[i] = sum
	}
	return out
}
