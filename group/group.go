// Package group implements the pile-group reducer of spec §4.8 (Component
// I): Converse-Labarre efficiency, row-wise p-multipliers, and cohesive
// block failure. Grounded on the teacher's table-interpolation idiom
// (`mdl/py`'s lerpTable helper, the C1/C2/C3-vs-phi and eps50-vs-
// consistency tables) but expressed here with gonum's PiecewiseLinear, the
// one pack repo (`_examples/alexiusacademia-gorcb`) that pulls in the gonum
// ecosystem for numerical civil-engineering work.
package group

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/solarpile/pilefem/errs"
	"github.com/solarpile/pilefem/soil"
	"github.com/solarpile/pilefem/units"
)

// Layout is the group geometry of spec §3's "Group layout".
type Layout struct {
	NRows   int
	NCols   int
	Spacing float64 // center-to-center spacing, in
	PileD   float64 // pile width/diameter, in
}

// Request bundles the inputs to Analyze, spec §6 entry point 3.
type Request struct {
	Profile             *soil.Profile
	EmbedmentFt         float64
	Layout              Layout
	QSingleCompression  float64 // single-pile Q_ult_compression, lb
}

// RowEfficiency records the p-multiplier assigned to one row position.
type RowEfficiency struct {
	Row       int // 0-indexed row position from the leading edge
	FM        float64
	PileCount int
}

// Result is the GroupResult of spec §6 entry point 3.
type Result struct {
	ConverseLabarre     float64
	Rows                []RowEfficiency
	AverageLateralEff   float64
	QBlock              float64
	BlockApplicable     bool
	QGroupGoverning     float64
	Notes               []string
}

var leadRowTable = mustFit([]float64{3, 5, 8}, []float64{0.80, 0.90, 1.00})
var secondRowTable = mustFit([]float64{3, 5, 8}, []float64{0.40, 0.60, 1.00})
var thirdPlusRowTable = mustFit([]float64{3, 5, 8}, []float64{0.30, 0.50, 1.00})

func mustFit(xs, ys []float64) *interp.PiecewiseLinear {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		panic(err)
	}
	return &pl
}

func rowFM(row int, sOverD float64) float64 {
	var table *interp.PiecewiseLinear
	switch row {
	case 0:
		table = leadRowTable
	case 1:
		table = secondRowTable
	default:
		table = thirdPlusRowTable
	}
	switch {
	case sOverD <= 3:
		return predictClamped(table, 3)
	case sOverD >= 8:
		return predictClamped(table, 8)
	default:
		return predictClamped(table, sOverD)
	}
}

func predictClamped(pl *interp.PiecewiseLinear, x float64) float64 {
	return pl.Predict(x)
}

// Analyze implements spec §6 entry point 3, group_analysis.
func Analyze(req Request) (*Result, error) {
	if req.Layout.NRows <= 0 || req.Layout.NCols <= 0 {
		return nil, errs.New(errs.InvalidInput, "group: n_rows and n_cols must both be >= 1")
	}
	if req.Layout.NRows*req.Layout.NCols < 1 {
		return nil, errs.New(errs.InvalidInput, "group: n_rows*n_cols must be >= 1")
	}
	if req.Layout.Spacing < units.MinGroupSpacing {
		return nil, errs.New(errs.InvalidInput, "group: spacing %g in is below the minimum %g in", req.Layout.Spacing, units.MinGroupSpacing)
	}
	if req.Layout.PileD <= 0 {
		return nil, errs.New(errs.InvalidInput, "group: pile width must be > 0")
	}
	if req.QSingleCompression <= 0 {
		return nil, errs.New(errs.InvalidInput, "group: Q_single_compression must be > 0")
	}

	n1, n2 := req.Layout.NRows, req.Layout.NCols
	d, s := req.Layout.PileD, req.Layout.Spacing
	dOverS := d / s

	arctanDeg := units.RadToDeg(math.Atan(dOverS))
	eta := 1 - arctanDeg*(float64(n1-1)*float64(n2)+float64(n2-1)*float64(n1))/(90*float64(n1)*float64(n2))
	if eta < 0 {
		eta = 0
	}

	sOverD := s / d
	rows := make([]RowEfficiency, n1)
	var sumFM float64
	totalPiles := n1 * n2
	for r := 0; r < n1; r++ {
		fm := rowFM(r, sOverD)
		rows[r] = RowEfficiency{Row: r, FM: fm, PileCount: n2}
		sumFM += fm * float64(n2)
	}
	avgEff := sumFM / float64(totalPiles)

	res := &Result{
		ConverseLabarre:   eta,
		Rows:              rows,
		AverageLateralEff: avgEff,
	}

	hasCohesive, cuAvg, cuBase := cohesiveProfile(req.Profile, req.EmbedmentFt)
	var qBlock float64
	if hasCohesive {
		bg := float64(n1-1)*s + d
		lg := float64(n2-1)*s + d
		depthIn := req.EmbedmentFt * units.FtToIn
		nc := math.Min(5*(1+0.2*bg/lg)*(1+0.2*depthIn/bg), 9)
		qBlock = (2*(bg+lg)*depthIn*cuAvg + bg*lg*nc*cuBase) / 144.0 // psf * in^2 -> lb
		res.QBlock = qBlock
		res.BlockApplicable = true
	}

	qRow := eta * float64(totalPiles) * req.QSingleCompression
	if res.BlockApplicable {
		res.QGroupGoverning = math.Min(qRow, qBlock)
	} else {
		res.QGroupGoverning = qRow
	}

	return res, nil
}

// cohesiveProfile reports whether at least one cohesive layer lies within
// the embedment, and the average / base-of-embedment undrained shear
// strength used by the block-failure formula of spec §4.8.
func cohesiveProfile(p *soil.Profile, embedmentFt float64) (hasCohesive bool, cuAvg, cuBase float64) {
	var sum, weight float64
	for i := range p.Layers {
		l := &p.Layers[i]
		top := l.ZTop
		bot := math.Min(l.ZBot(), embedmentFt)
		if top >= embedmentFt || bot <= top {
			continue
		}
		if !l.Type.IsCohesive() {
			continue
		}
		hasCohesive = true
		cu := p.CuOf(l)
		thickness := bot - top
		sum += cu * thickness
		weight += thickness
	}
	if !hasCohesive || weight <= 0 {
		return hasCohesive, 0, 0
	}
	cuAvg = sum / weight
	baseLayer := p.LayerAt(embedmentFt)
	cuBase = p.CuOf(baseLayer)
	return hasCohesive, cuAvg, cuBase
}
