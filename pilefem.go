// Package pilefem is the orchestration boundary of spec §6 (Component L):
// the six pure entry points composing axial, lateral, bnwf, group, loads,
// and broms into the external interface. Grounded on the teacher's
// fem.Run()-style top-level dispatch in main.go, generalized from "run one
// simulation file" to "run one of six independent analyses against a
// caller-supplied request," since this core has no persisted state, no
// configuration file, and no wire protocol (spec §6).
package pilefem

import (
	"github.com/solarpile/pilefem/axial"
	"github.com/solarpile/pilefem/bnwf"
	"github.com/solarpile/pilefem/broms"
	"github.com/solarpile/pilefem/group"
	"github.com/solarpile/pilefem/lateral"
	"github.com/solarpile/pilefem/loads"
)

// AxialCapacity implements spec §6 entry point 1, axial_capacity.
func AxialCapacity(req axial.Request) (*axial.Result, error) {
	return axial.Capacity(req)
}

// LateralAnalysis implements spec §6 entry point 2, lateral_analysis.
func LateralAnalysis(req lateral.Request) (*lateral.Result, error) {
	return lateral.Analyze(req)
}

// GroupAnalysis implements spec §6 entry point 3, group_analysis.
func GroupAnalysis(req group.Request) (*group.Result, error) {
	return group.Analyze(req)
}

// BNWFAnalysis implements spec §6 entry point 4, bnwf_analysis.
func BNWFAnalysis(req bnwf.Request) (*bnwf.Result, error) {
	return bnwf.Analyze(req)
}

// LoadCombinations implements spec §6 entry point 5, load_combinations.
func LoadCombinations(in loads.Input, method loads.Method) loads.Result {
	return loads.Combinations(in, method)
}

// BromsLateral implements spec §6 entry point 6, broms_lateral.
func BromsLateral(req broms.Request) (*broms.Result, error) {
	return broms.Analyze(req)
}
