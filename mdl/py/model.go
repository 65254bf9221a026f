// Package py implements the p-y curve library of spec §4.4 (Component D):
// eighteen nonlinear lateral soil-response models mapping (depth, lateral
// displacement) to lateral resistance. The package is a tagged variant
// carrying model-specific parameter bundles, following the registry shape
// of the teacher's mdl/retention package (Model interface, allocators map,
// New lookup) generalized from liquid-retention curves to p-y curves.
package py

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model is the contract every p-y curve implements: initialise from a
// parameter bundle, report an example bundle back, build a per-layer
// evaluation Context from soil/geometry state, and evaluate p(y) and its
// slope at that context. Every model must produce p odd and nondecreasing
// in |y|, capped at p_ult(z) (spec §8, P1).
type Model interface {
	Init(prms fun.Prms) error
	GetPrms(example bool) fun.Prms
	BuildContext(in Inputs) *Ctx
	Eval(ctx *Ctx, y float64) (p, dpdy float64)
}

// Inputs bundles the soil/geometry state a Context is built from: the
// values every model needs regardless of which constants it precomputes.
type Inputs struct {
	Z         float64 // depth below ground surface, ft
	B         float64 // pile width/diameter, in
	GammaEff  float64 // effective unit weight at z, pcf
	SigmaVEff float64 // effective vertical stress at z, psf
	Cu        float64 // undrained shear strength at z, psf
	Phi       float64 // friction angle at z, deg
	Cyclic    bool
}

// New returns a new, uninitialised Model for key, or an error if key is not
// in the registry.
func New(key string) (Model, error) {
	allocator, ok := allocators[key]
	if !ok {
		return nil, chk.Err("py: model %q is not available", key)
	}
	return allocator(), nil
}

// Keys returns the registered model keys in registration order (the order
// in which this package's init functions run, file by file), for
// display/enumeration purposes.
func Keys() []string {
	out := make([]string, len(keyOrder))
	copy(out, keyOrder)
	return out
}

var allocators = map[string]func() Model{}
var keyOrder []string

func register(key string, alloc func() Model) {
	allocators[key] = alloc
	keyOrder = append(keyOrder, key)
}
