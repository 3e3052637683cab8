// Package analysis runs the hydrostatic, stability and structural checks
// for one hull and aggregates them into a single verdict.
package analysis

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/alexiusacademia/canoecalc/internal/hull"
	"github.com/alexiusacademia/canoecalc/internal/hydro"
	"github.com/alexiusacademia/canoecalc/internal/load"
	"github.com/alexiusacademia/canoecalc/internal/section"
	"github.com/alexiusacademia/canoecalc/internal/stability"
)

// Analyzer evaluates hulls against a fixed Config. It holds no state
// between runs and is safe for concurrent use.
type Analyzer struct {
	cfg Config
	log zerolog.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used for per-stage debug events
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.log = logger
	}
}

// New creates an Analyzer for cfg
func New(cfg Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the analyzer's configuration
func (a *Analyzer) Config() Config {
	return a.cfg
}

// RunComplete evaluates in with DefaultConfig.
func RunComplete(in Input) (*Report, error) {
	return New(DefaultConfig()).Run(in)
}

// Run evaluates one hull. Physically degenerate input never errors; it
// produces zero or clamped values and failing checks. The only error is
// ErrCrewAccountingUnset.
func (a *Analyzer) Run(in Input) (*Report, error) {
	if in.Crew != CrewSeparate && in.Crew != CrewIncluded {
		return nil, ErrCrewAccountingUnset
	}

	cfg := a.cfg
	c := cfg.Constants
	g := hull.NewGeometry(in.LengthIn, in.BeamIn, in.DepthIn, in.ThicknessIn)

	formFactor := orDefault(in.WaterplaneFormFactor, cfg.FormFactor)
	strength := orDefault(in.FlexuralStrengthPSI, cfg.FlexuralStrengthPSI)
	density := orDefault(in.ConcreteDensityPCF, cfg.DensityPCF)

	crewW := math.Max(0, in.CrewWeightLbs)
	totalW := in.ConcreteWeightLbs
	hullW := in.ConcreteWeightLbs
	if in.Crew == CrewSeparate {
		totalW += crewW
	} else {
		hullW = math.Max(0, hullW-crewW)
	}

	lengthFt := c.InToFt(g.LengthIn)
	beamFt := c.InToFt(g.BeamIn)
	depthFt := c.InToFt(g.DepthIn)

	// Hydrostatics
	fb := hydro.Analyze(g, totalW, formFactor, cfg.Thresholds.MinFreeboardIn, c)
	a.log.Debug().
		Float64("displacement_ft3", fb.DisplacementFt3).
		Float64("waterplane_ft2", fb.WaterplaneFt2).
		Float64("draft_in", fb.DraftIn).
		Float64("freeboard_in", fb.FreeboardIn).
		Bool("pass", fb.Pass).
		Msg("hydrostatics")

	// Stability
	kg := in.COGHeightFt
	if kg <= 0 {
		kg = a.estimateKG(depthFt, hullW, crewW)
	}
	st := stability.Analyze(beamFt, fb.DraftFt, depthFt, kg, cfg.Thresholds.MinGMIn)
	a.log.Debug().
		Float64("kg_ft", kg).
		Float64("gm_in", st.GMIn).
		Bool("pass", st.Pass).
		Msg("stability")

	// Structure
	s := a.sectionModulus(g)
	moment := load.CombinedMoment(hullW, crewW, lengthFt)
	sr := load.Check(moment, s, strength, cfg.Thresholds.MinSafetyFactor)
	a.log.Debug().
		Str("section_model", cfg.SectionModel.String()).
		Float64("section_modulus_in3", sr.SectionModulusIn3).
		Float64("moment_lb_ft", sr.MaxBendingMomentLbFt).
		Float64("stress_psi", sr.BendingStressPSI).
		Float64("safety_factor", sr.SafetyFactor).
		Bool("pass", sr.Pass).
		Msg("structural")

	report := &Report{
		Hull: HullSummary{
			LengthIn:                g.LengthIn,
			BeamIn:                  g.BeamIn,
			DepthIn:                 g.DepthIn,
			WeightLbs:               in.ConcreteWeightLbs,
			EstimatedShellWeightLbs: hull.EstimateWeight(g, density, hull.DefaultShellAreaFactor),
		},
		Freeboard:  fb,
		Stability:  st,
		Structural: sr,
	}
	report.OverallPass = a.aggregate(report)

	a.log.Debug().
		Str("aggregation", cfg.Aggregation.String()).
		Bool("overall_pass", report.OverallPass).
		Msg("analysis complete")

	return report, nil
}

func (a *Analyzer) estimateKG(depthFt, hullW, crewW float64) float64 {
	if a.cfg.KGMode == KGWeighted {
		return stability.WeightedCOG(depthFt, hullW, crewW, stability.DefaultCOGOptions())
	}
	return depthFt * a.cfg.KGFraction
}

// sectionModulus uses the outer depth for the thin shell, whose components
// already account for the wall, and depth less one wall for the solid block.
func (a *Analyzer) sectionModulus(g hull.Geometry) float64 {
	if a.cfg.SectionModel == section.Rectangular {
		return section.RectangularModulus(g.BeamIn, g.DepthIn-g.ThicknessIn)
	}
	return section.ThinShellModulus(g.BeamIn, g.DepthIn, g.ThicknessIn)
}

func (a *Analyzer) aggregate(r *Report) bool {
	if a.cfg.Aggregation == AggregateStructural {
		return r.Structural.Pass
	}
	return r.Freeboard.Pass && r.Stability.Pass && r.Structural.Pass
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
