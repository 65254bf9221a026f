// Package units centralises the unit conventions, physical constants, and
// default factors shared by every other package in the core (spec §4.1,
// Component A). All internal computation uses US customary units: inches
// for lateral/axial quantities, feet for profile depth, pounds for force,
// psf/psi for stress, lb/in^3 for pressure gradient.
package units

import "math"

const (
	// FtToIn converts feet to inches.
	FtToIn = 12.0
	// InToFt converts inches to feet.
	InToFt = 1.0 / FtToIn

	// GammaWater is the unit weight of water, pcf.
	GammaWater = 62.4
	// Pa is atmospheric pressure, psf, used in SPT overburden correction.
	Pa = 2116.0

	// DefaultFy is the default yield stress of steel sections, ksi.
	DefaultFy = 50.0

	// DefaultFSCompression is the default factor of safety on axial
	// compression capacity under ASD.
	DefaultFSCompression = 2.5
	// DefaultFSTension is the default factor of safety on axial tension
	// capacity under ASD.
	DefaultFSTension = 3.0
	// DefaultFSBroms is the factor of safety applied to Broms ultimate
	// lateral capacity to obtain an allowable value.
	DefaultFSBroms = 2.5

	// YFloor is the smallest lateral displacement magnitude (inches) used
	// in place of y=0 when computing a secant p-y stiffness, guarding the
	// division by zero noted in spec §7.
	YFloor = 1e-6
	// SigmaVEffFloor is the smallest effective vertical stress (psf) used
	// in place of zero at the ground surface for the beta method and for
	// C_N computation, per spec §7.
	SigmaVEffFloor = 1.0
	// CuFloor is the smallest undrained shear strength (psf) used in place
	// of zero for the alpha method, per spec §7.
	CuFloor = 1.0

	// MinGroupSpacing is the minimum center-to-center pile spacing, inches,
	// below which a multi-pile group layout is invalid input (spec §3, §7).
	MinGroupSpacing = 6.0
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
