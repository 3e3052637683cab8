package analysis

import (
	"github.com/alexiusacademia/canoecalc/internal/criteria"
	"github.com/alexiusacademia/canoecalc/internal/hull"
	"github.com/alexiusacademia/canoecalc/internal/hydro"
	"github.com/alexiusacademia/canoecalc/internal/physics"
	"github.com/alexiusacademia/canoecalc/internal/section"
)

// Aggregation decides how the three checks combine into OverallPass
type Aggregation int

const (
	// AggregateAll requires freeboard, stability and structure to pass.
	AggregateAll Aggregation = iota
	// AggregateStructural takes the verdict from the structural check alone.
	AggregateStructural
)

func (a Aggregation) String() string {
	if a == AggregateStructural {
		return "structural"
	}
	return "all"
}

// KGMode selects how the center of gravity is estimated when the input
// does not supply one
type KGMode int

const (
	// KGFixedFraction uses Config.KGFraction × depth.
	KGFixedFraction KGMode = iota
	// KGWeighted averages the hull shell CG and the kneeling crew CG by weight.
	KGWeighted
)

func (m KGMode) String() string {
	if m == KGWeighted {
		return "weighted"
	}
	return "fixed"
}

// Config holds every constant and threshold the analysis uses
type Config struct {
	Constants  physics.Constants
	Thresholds criteria.Thresholds

	FormFactor   float64
	KGFraction   float64
	KGMode       KGMode
	SectionModel section.Model // only Rectangular uses the effective depth, depth − thickness
	Aggregation  Aggregation

	DensityPCF          float64
	FlexuralStrengthPSI float64
}

// DefaultConfig returns the settings of the complete analysis
func DefaultConfig() Config {
	return Config{
		Constants:           physics.FreshWater(),
		Thresholds:          criteria.Orchestrator(),
		FormFactor:          hydro.FormFactorConservative,
		KGFraction:          criteria.KGFractionOrchestrator,
		KGMode:              KGFixedFraction,
		SectionModel:        section.ThinShell,
		Aggregation:         AggregateAll,
		DensityPCF:          hull.DefaultDensityPCF,
		FlexuralStrengthPSI: hull.DefaultFlexuralStrengthPSI,
	}
}

// VerificationConfig returns the stricter final-verification settings:
// verification thresholds, a calibrated canoe waterplane coefficient and
// the weighted hull/crew KG.
func VerificationConfig() Config {
	cfg := DefaultConfig()
	cfg.Thresholds = criteria.Verification()
	cfg.FormFactor = hydro.FormFactorCanoe
	cfg.KGMode = KGWeighted
	return cfg
}
