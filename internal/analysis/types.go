package analysis

import (
	"errors"

	"github.com/alexiusacademia/canoecalc/internal/hydro"
	"github.com/alexiusacademia/canoecalc/internal/load"
	"github.com/alexiusacademia/canoecalc/internal/stability"
)

// CrewAccounting states whether the concrete weight passed in already
// includes the crew. It has no default: callers must choose.
type CrewAccounting int

const (
	crewUnset CrewAccounting = iota
	// CrewSeparate adds CrewWeightLbs to the concrete weight for flotation.
	CrewSeparate
	// CrewIncluded means ConcreteWeightLbs is already hull plus crew.
	CrewIncluded
)

func (c CrewAccounting) String() string {
	switch c {
	case CrewSeparate:
		return "separate"
	case CrewIncluded:
		return "included"
	default:
		return "unset"
	}
}

// ParseCrewAccounting maps "separate" or "included" to a CrewAccounting
func ParseCrewAccounting(s string) (CrewAccounting, error) {
	switch s {
	case "separate":
		return CrewSeparate, nil
	case "included":
		return CrewIncluded, nil
	}
	return crewUnset, ErrCrewAccountingUnset
}

// ErrCrewAccountingUnset is returned when Input.Crew was left at its zero value
var ErrCrewAccountingUnset = errors.New("crew accounting must be CrewSeparate or CrewIncluded")

// Input is one hull evaluation request. Zero values for the optional fields
// fall back to the analyzer's Config.
type Input struct {
	LengthIn    float64
	BeamIn      float64
	DepthIn     float64
	ThicknessIn float64

	ConcreteWeightLbs float64
	CrewWeightLbs     float64
	Crew              CrewAccounting

	FlexuralStrengthPSI  float64 // optional
	WaterplaneFormFactor float64 // optional
	ConcreteDensityPCF   float64 // optional
	COGHeightFt          float64 // optional, KG above the keel
}

// HullSummary echoes the evaluated hull
type HullSummary struct {
	LengthIn  float64 `json:"length_in"`
	BeamIn    float64 `json:"beam_in"`
	DepthIn   float64 `json:"depth_in"`
	WeightLbs float64 `json:"weight_lbs"`

	// EstimatedShellWeightLbs is the shell weight implied by geometry and
	// density, for comparison with the declared weight.
	EstimatedShellWeightLbs float64 `json:"-"`
}

// Report is the complete compliance result for one hull
type Report struct {
	Hull        HullSummary      `json:"hull"`
	Freeboard   hydro.Result     `json:"freeboard"`
	Stability   stability.Result `json:"stability"`
	Structural  load.Result      `json:"structural"`
	OverallPass bool             `json:"overall_pass"`
}
