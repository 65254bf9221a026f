package tz

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_tzCurve_reachesTMaxAtZC(t *testing.T) {
	chk.PrintTitle("tzCurve_reachesTMaxAtZC")
	c := NewTZ(1000, 24)
	val, _ := c.Eval(c.ZC)
	chk.Scalar(t, "t(z_c) == t_max", 1e-9, val, 1000)
	beyond, _ := c.Eval(c.ZC * 2)
	chk.Scalar(t, "t stays flat beyond z_c", 1e-9, beyond, 1000)
}

func Test_tzCurve_isOddAndMonotone(t *testing.T) {
	chk.PrintTitle("tzCurve_isOddAndMonotone")
	c := NewTZ(1000, 24)
	var prev float64
	for _, z := range []float64{0.001, 0.05, 0.1, 0.2, 0.3, 0.5, 1.0} {
		pos, _ := c.Eval(z)
		neg, _ := c.Eval(-z)
		if math.Abs(pos+neg) > 1e-9 {
			t.Fatalf("t(z) not odd at z=%v: t(z)=%v t(-z)=%v", z, pos, neg)
		}
		if pos < prev-1e-9 {
			t.Fatalf("t(z) decreased at z=%v: %v < previous %v", z, pos, prev)
		}
		prev = pos
	}
}

func Test_qzCurve_calibrationPoint(t *testing.T) {
	chk.PrintTitle("qzCurve_calibrationPoint")
	c := NewQZ(50000, 24)
	q, _ := c.Eval(0.1 * c.B)
	chk.Scalar(t, "q(0.1b) == 0.9*q_max", 1e-6, q, 0.9*50000)
}

func Test_qzCurve_neverExceedsQMax(t *testing.T) {
	chk.PrintTitle("qzCurve_neverExceedsQMax")
	c := NewQZ(50000, 24)
	var prev float64
	for _, w := range []float64{0.1, 1, 5, 10, 50, 200} {
		q, _ := c.Eval(w)
		if q > c.QMax+1e-6 {
			t.Fatalf("q(w)=%v exceeds q_max=%v at w=%v", q, c.QMax, w)
		}
		if q < prev-1e-9 {
			t.Fatalf("q(w) decreased at w=%v: %v < previous %v", w, q, prev)
		}
		prev = q
	}
}

func Test_qzCurve_zeroForNonPositiveSettlement(t *testing.T) {
	chk.PrintTitle("qzCurve_zeroForNonPositiveSettlement")
	c := NewQZ(50000, 24)
	q, _ := c.Eval(0)
	chk.Scalar(t, "q(0) == 0", 1e-9, q, 0)
	qNeg, _ := c.Eval(-1)
	chk.Scalar(t, "q(negative) == 0 (tip bearing resists compression only)", 1e-9, qNeg, 0)
}
