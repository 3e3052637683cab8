// Package criteria holds the pass/fail limits a hull is judged against.
//
// Different stages of the competition workflow use different limits, so
// each set is kept as a named preset rather than a single rule.
package criteria

import (
	"fmt"
	"sort"
)

// Limits applied by the complete analysis
const (
	OrchestratorMinFreeboardIn = 4.0
	OrchestratorMinGMIn        = 0.5
	OrchestratorMinSF          = 1.5
)

// Limits applied by final design verification
const (
	VerificationMinFreeboardIn = 6.0
	VerificationMinGMIn        = 6.0
	VerificationMinSF          = 2.0
)

// KG fractions of hull depth used where no CG is supplied
const (
	KGFractionSimple       = 0.40 // quick GM estimate
	KGFractionOrchestrator = 0.45 // complete analysis
	KGFractionHullShell    = 0.38 // U-shaped shell alone, weighted KG
)

// Thresholds are the minimums a hull must meet
type Thresholds struct {
	MinFreeboardIn  float64 `json:"min_freeboard_in" mapstructure:"minFreeboardIn"`
	MinGMIn         float64 `json:"min_gm_in" mapstructure:"minGmIn"`
	MinSafetyFactor float64 `json:"min_safety_factor" mapstructure:"minSafetyFactor"`
}

// Orchestrator returns the limits used by the complete analysis
func Orchestrator() Thresholds {
	return Thresholds{
		MinFreeboardIn:  OrchestratorMinFreeboardIn,
		MinGMIn:         OrchestratorMinGMIn,
		MinSafetyFactor: OrchestratorMinSF,
	}
}

// Verification returns the stricter limits used for final verification
func Verification() Thresholds {
	return Thresholds{
		MinFreeboardIn:  VerificationMinFreeboardIn,
		MinGMIn:         VerificationMinGMIn,
		MinSafetyFactor: VerificationMinSF,
	}
}

var presets = map[string]func() Thresholds{
	"orchestrator": Orchestrator,
	"verification": Verification,
}

// Preset looks up a named threshold set
func Preset(name string) (Thresholds, error) {
	fn, ok := presets[name]
	if !ok {
		return Thresholds{}, fmt.Errorf("unknown threshold preset %q (available: %v)", name, PresetNames())
	}
	return fn(), nil
}

// PresetNames lists the available presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
