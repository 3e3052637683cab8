package hull

import (
	"fmt"

	"github.com/alexiusacademia/canoecalc/internal/physics"
)

// Geometry holds the raw hull dimensions. All stored values are in inches;
// the Ft accessors derive feet on demand.
type Geometry struct {
	LengthIn    float64 `json:"length_in" yaml:"length_in"`
	BeamIn      float64 `json:"beam_in" yaml:"beam_in"`
	DepthIn     float64 `json:"depth_in" yaml:"depth_in"`
	ThicknessIn float64 `json:"thickness_in" yaml:"thickness_in"`
}

// NewGeometry creates a hull geometry from dimensions in inches
func NewGeometry(lengthIn, beamIn, depthIn, thicknessIn float64) Geometry {
	return Geometry{
		LengthIn:    lengthIn,
		BeamIn:      beamIn,
		DepthIn:     depthIn,
		ThicknessIn: thicknessIn,
	}
}

func (g Geometry) LengthFt() float64    { return g.LengthIn / physics.InchesPerFoot }
func (g Geometry) BeamFt() float64      { return g.BeamIn / physics.InchesPerFoot }
func (g Geometry) DepthFt() float64     { return g.DepthIn / physics.InchesPerFoot }
func (g Geometry) ThicknessFt() float64 { return g.ThicknessIn / physics.InchesPerFoot }

// Validate reports geometry that has no physical interior. The calculations
// themselves never call it; degenerate input degrades to zero results.
func (g Geometry) Validate() error {
	if g.LengthIn <= 0 || g.BeamIn <= 0 || g.DepthIn <= 0 || g.ThicknessIn <= 0 {
		return &ValidationError{msg: fmt.Sprintf(
			"hull dimensions must be positive: L=%.2f B=%.2f D=%.2f t=%.2f in",
			g.LengthIn, g.BeamIn, g.DepthIn, g.ThicknessIn)}
	}
	if g.ThicknessIn >= g.DepthIn {
		return &ValidationError{msg: fmt.Sprintf("wall thickness %.2f in must be less than depth %.2f in", g.ThicknessIn, g.DepthIn)}
	}
	if g.ThicknessIn >= g.BeamIn/2 {
		return &ValidationError{msg: fmt.Sprintf("wall thickness %.2f in must be less than half the beam (%.2f in)", g.ThicknessIn, g.BeamIn/2)}
	}
	return nil
}

// Materials holds the concrete mix properties for one analysis
type Materials struct {
	DensityPCF          float64 `json:"density_pcf" yaml:"density_pcf"`                     // lb/ft³
	FlexuralStrengthPSI float64 `json:"flexural_strength_psi" yaml:"flexural_strength_psi"` // modulus of rupture
}

// Default mix values used when a design omits them.
const (
	DefaultDensityPCF          = 60.0
	DefaultFlexuralStrengthPSI = 1500.0
)

// ValidationError represents a hull or design validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
