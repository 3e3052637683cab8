package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/canoecalc/internal/analysis"
	"github.com/alexiusacademia/canoecalc/internal/hull"
)

var (
	// Hull geometry (in)
	analyzeLength    float64
	analyzeBeam      float64
	analyzeDepth     float64
	analyzeThickness float64

	// Loading
	analyzeWeight   float64
	analyzeCrew     float64
	analyzeCrewMode string
	analyzeCOG      float64

	// Material and model overrides
	analyzeStrength   float64
	analyzeDensity    float64
	analyzeFormFactor float64

	analyzeFile   string
	analyzeVerify bool
	analyzeJSON   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the complete hull compliance analysis",
	Long: `Evaluate a concrete canoe hull for freeboard, stability and
structural adequacy and report an overall pass/fail verdict.

The crew accounting is required whenever crew weight is given:
  separate  - crew weight is added to --weight for flotation
  included  - --weight already includes the crew

Examples:
  # 16 ft hull, 276 lb of concrete, no crew
  canoecalc analyze --length 192 --beam 32 --depth 17 --thickness 0.5 --weight 276

  # Two 180 lb paddlers, checked against final verification limits
  canoecalc analyze -L 216 -b 30 -d 18 -t 0.5 -w 276 --crew 360 --crew-mode separate --verify

  # Load a design file
  canoecalc analyze --file canoe.yaml --json`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Geometry flags
	analyzeCmd.Flags().Float64VarP(&analyzeLength, "length", "L", 0, "Hull length (in)")
	analyzeCmd.Flags().Float64VarP(&analyzeBeam, "beam", "b", 0, "Hull beam (in)")
	analyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "d", 0, "Hull depth (in)")
	analyzeCmd.Flags().Float64VarP(&analyzeThickness, "thickness", "t", 0.5, "Wall thickness (in)")

	// Loading flags
	analyzeCmd.Flags().Float64VarP(&analyzeWeight, "weight", "w", 0, "Concrete weight (lbs)")
	analyzeCmd.Flags().Float64Var(&analyzeCrew, "crew", 0, "Total crew weight (lbs)")
	analyzeCmd.Flags().StringVar(&analyzeCrewMode, "crew-mode", "", "Crew accounting: separate or included [required with --crew]")
	analyzeCmd.Flags().Float64Var(&analyzeCOG, "cog", 0, "Center of gravity above keel (ft), estimated when 0")

	// Material flags
	analyzeCmd.Flags().Float64Var(&analyzeStrength, "strength", 0, "Flexural strength (psi), config default when 0")
	analyzeCmd.Flags().Float64Var(&analyzeDensity, "density", 0, "Concrete density (pcf), config default when 0")
	analyzeCmd.Flags().Float64Var(&analyzeFormFactor, "form-factor", 0, "Waterplane coefficient, config default when 0")

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Hull design file (YAML or JSON)")
	analyzeCmd.Flags().BoolVar(&analyzeVerify, "verify", false, "Use final verification limits and weighted KG")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	in, name, err := analyzeInput()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	g := hull.NewGeometry(in.LengthIn, in.BeamIn, in.DepthIn, in.ThicknessIn)
	if err := g.Validate(); err != nil {
		logger.Warn().Err(err).Msg("hull geometry is not physical; results will degrade to zero")
	}

	cfg := settings.Analysis
	if analyzeVerify {
		verify := analysis.VerificationConfig()
		verify.Constants = cfg.Constants
		verify.SectionModel = cfg.SectionModel
		verify.DensityPCF = cfg.DensityPCF
		verify.FlexuralStrengthPSI = cfg.FlexuralStrengthPSI
		cfg = verify
	}

	report, err := analysis.New(cfg, analysis.WithLogger(logger)).Run(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Printf("Error encoding report: %v\n", err)
		}
		return
	}

	printReport(name, in, cfg, report)
}

func analyzeInput() (analysis.Input, string, error) {
	if analyzeFile != "" {
		d, err := hull.LoadFromFile(analyzeFile)
		if err != nil {
			return analysis.Input{}, "", err
		}
		crew, err := crewAccounting(d.Crew.Accounting, d.Crew.TotalLbs())
		if err != nil {
			return analysis.Input{}, "", err
		}
		return analysis.Input{
			LengthIn:             d.Geometry.LengthIn,
			BeamIn:               d.Geometry.BeamIn,
			DepthIn:              d.Geometry.DepthIn,
			ThicknessIn:          d.Geometry.ThicknessIn,
			ConcreteWeightLbs:    d.ConcreteWeightLbs,
			CrewWeightLbs:        d.Crew.TotalLbs(),
			Crew:                 crew,
			FlexuralStrengthPSI:  d.Materials.FlexuralStrengthPSI,
			ConcreteDensityPCF:   d.Materials.DensityPCF,
			WaterplaneFormFactor: d.FormFactor,
		}, d.Name, nil
	}

	if analyzeLength <= 0 || analyzeBeam <= 0 || analyzeDepth <= 0 {
		return analysis.Input{}, "", fmt.Errorf("--length, --beam and --depth are required unless --file is given")
	}

	crew, err := crewAccounting(analyzeCrewMode, analyzeCrew)
	if err != nil {
		return analysis.Input{}, "", err
	}

	return analysis.Input{
		LengthIn:             analyzeLength,
		BeamIn:               analyzeBeam,
		DepthIn:              analyzeDepth,
		ThicknessIn:          analyzeThickness,
		ConcreteWeightLbs:    analyzeWeight,
		CrewWeightLbs:        analyzeCrew,
		Crew:                 crew,
		FlexuralStrengthPSI:  analyzeStrength,
		ConcreteDensityPCF:   analyzeDensity,
		WaterplaneFormFactor: analyzeFormFactor,
		COGHeightFt:          analyzeCOG,
	}, "", nil
}

// crewAccounting parses the crew accounting mode. It may only be omitted
// when there is no crew, where both modes give the same result.
func crewAccounting(mode string, crewLbs float64) (analysis.CrewAccounting, error) {
	if mode == "" && crewLbs <= 0 {
		return analysis.CrewSeparate, nil
	}
	crew, err := analysis.ParseCrewAccounting(mode)
	if err != nil {
		return crew, fmt.Errorf("crew accounting %q: %w", mode, err)
	}
	return crew, nil
}

func printReport(name string, in analysis.Input, cfg analysis.Config, r *analysis.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CONCRETE CANOE HULL COMPLIANCE ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if name != "" {
		fmt.Printf("  Design: %s\n", name)
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (L):\t%.1f in\n", r.Hull.LengthIn)
	fmt.Fprintf(w, "  Beam (B):\t%.1f in\n", r.Hull.BeamIn)
	fmt.Fprintf(w, "  Depth (D):\t%.1f in\n", r.Hull.DepthIn)
	fmt.Fprintf(w, "  Wall thickness (t):\t%.2f in\n", in.ThicknessIn)
	fmt.Fprintf(w, "  Concrete weight:\t%.1f lbs\n", r.Hull.WeightLbs)
	fmt.Fprintf(w, "  Estimated shell weight:\t%.1f lbs\n", r.Hull.EstimatedShellWeightLbs)
	if in.CrewWeightLbs > 0 {
		fmt.Fprintf(w, "  Crew weight:\t%.1f lbs (%s)\n", in.CrewWeightLbs, in.Crew)
	}
	fmt.Fprintf(w, "  Section model:\t%s\n", cfg.SectionModel)
	w.Flush()
	fmt.Println()

	fmt.Println("HYDROSTATICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Displacement:\t%.3f ft³\n", r.Freeboard.DisplacementFt3)
	fmt.Fprintf(w, "  Waterplane area:\t%.3f ft²\n", r.Freeboard.WaterplaneFt2)
	fmt.Fprintf(w, "  Draft:\t%.2f in\n", r.Freeboard.DraftIn)
	fmt.Fprintf(w, "  Freeboard:\t%.2f in (min %.1f)\t%s\n", r.Freeboard.FreeboardIn, r.Freeboard.MinRequiredIn, passMark(r.Freeboard.Pass))
	w.Flush()
	fmt.Println()

	fmt.Println("STABILITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  KG (%s):\t%.3f ft\n", cfg.KGMode, r.Stability.KGFt)
	fmt.Fprintf(w, "  GM:\t%.2f in (min %.1f)\t%s\n", r.Stability.GMIn, r.Stability.MinRequiredIn, passMark(r.Stability.Pass))
	w.Flush()
	if r.Stability.GMIn < 0 {
		fmt.Println("  ⚠ Negative GM: hull is unstable and would capsize")
	}
	fmt.Println()

	fmt.Println("STRUCTURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max bending moment:\t%.1f lb-ft\n", r.Structural.MaxBendingMomentLbFt)
	fmt.Fprintf(w, "  Section modulus (S):\t%.2f in³\n", r.Structural.SectionModulusIn3)
	fmt.Fprintf(w, "  Bending stress (σ):\t%.1f psi\n", r.Structural.BendingStressPSI)
	fmt.Fprintf(w, "  Flexural strength:\t%.0f psi\n", r.Structural.FlexuralStrengthPSI)
	fmt.Fprintf(w, "  Safety factor:\t%.2f (min %.1f)\t%s\n", r.Structural.SafetyFactor, r.Structural.MinSF, passMark(r.Structural.Pass))
	w.Flush()
	fmt.Println()

	verdict := "HULL PASSES ALL CHECKS"
	if !r.OverallPass {
		verdict = "HULL DOES NOT COMPLY"
	}
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %-47s║\n", verdict)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Printf("  Verdict rule: %s\n", cfg.Aggregation)
	fmt.Println()
}
