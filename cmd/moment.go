package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/canoecalc/internal/load"
	"github.com/alexiusacademia/canoecalc/internal/section"
)

var (
	momentLength     float64
	momentHullWeight float64
	momentCrewWeight float64
	momentCrewCount  int
	momentSpread     float64

	momentBeam      float64
	momentDepth     float64
	momentThickness float64
	momentStrength  float64

	showAll bool
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate the governing bending moment on the hull",
	Long: `Calculate midspan bending moments for a hull supported at bow
and stern, for each load case, and report the governing one.

Load sources:
  Self-weight   - hull weight spread uniformly (wL²/8)
  Crew point    - whole crew at midspan (PL/4)
  Crew spread   - crew spread over the paddling stations

When the section is given, the bending stress and safety factor for the
governing moment are also reported.

Examples:
  canoecalc moment --length 16 --hull-weight 276 --crew-weight 360
  canoecalc moment -l 18 --hull-weight 276 --crew-weight 360 --spread 9 --all
  canoecalc moment -l 16 --hull-weight 276 --beam 32 --depth 17 --thickness 0.5`,
	Run: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	momentCmd.Flags().Float64VarP(&momentLength, "length", "l", 0, "Hull length (ft) [required]")
	momentCmd.Flags().Float64Var(&momentHullWeight, "hull-weight", 0, "Hull self-weight (lbs)")
	momentCmd.Flags().Float64Var(&momentCrewWeight, "crew-weight", 0, "Total crew weight (lbs)")
	momentCmd.Flags().IntVar(&momentCrewCount, "crew-count", 0, "Number of paddlers, for station loads")
	momentCmd.Flags().Float64Var(&momentSpread, "spread", 0, "Length of hull the crew occupies (ft)")

	momentCmd.Flags().Float64VarP(&momentBeam, "beam", "b", 0, "Section outer width (in)")
	momentCmd.Flags().Float64VarP(&momentDepth, "depth", "d", 0, "Section outer depth (in)")
	momentCmd.Flags().Float64VarP(&momentThickness, "thickness", "t", 0.5, "Wall thickness (in)")
	momentCmd.Flags().Float64Var(&momentStrength, "strength", 1500, "Flexural strength (psi)")

	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load case results")

	momentCmd.MarkFlagRequired("length")
}

func runMoment(cmd *cobra.Command, args []string) {
	if momentHullWeight == 0 && momentCrewWeight == 0 {
		fmt.Println("Error: Please provide a hull weight, a crew weight, or both.")
		fmt.Println("Use 'canoecalc moment --help' for usage information.")
		return
	}

	moments := load.NewMoments(momentHullWeight, momentCrewWeight, momentLength, momentSpread)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          HULL BENDING MOMENT CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED MOMENTS (lb-ft):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Self-weight (wL²/8):\t%.2f\n", moments.SelfWeight)
	if momentCrewWeight != 0 {
		fmt.Fprintf(w, "  Crew at midspan (PL/4):\t%.2f\n", moments.CrewPoint)
		fmt.Fprintf(w, "  Crew spread over %.1f ft:\t%.2f\n", momentSpread, moments.CrewSpread)
	}
	if momentCrewCount > 0 {
		stations := load.CrewStations(momentCrewCount, momentCrewWeight/float64(momentCrewCount), momentLength, momentSpread)
		fmt.Fprintf(w, "  Crew at %d stations:\t%.2f\n", momentCrewCount, load.PointLoadsMoment(momentLength, stations))
	}
	w.Flush()
	fmt.Println()

	maxM, governing := load.Governing(moments, load.Combinations)

	if showAll {
		fmt.Println("LOAD CASES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCase\tM (lb-ft)\n")
		fmt.Fprintf(w, "  ─\t────\t─────────\n")
		for _, combo := range load.Combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Moment(moments), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Case: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  MAX MOMENT = %.2f lb-ft  \n", maxM)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()

	if momentBeam > 0 && momentDepth > 0 {
		s := section.ThinShellModulus(momentBeam, momentDepth, momentThickness)
		r := load.Check(maxM, s, momentStrength, settings.Analysis.Thresholds.MinSafetyFactor)

		fmt.Println("STRESS CHECK:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Section modulus (thin-shell):\t%.2f in³\n", r.SectionModulusIn3)
		fmt.Fprintf(w, "  Bending stress:\t%.1f psi\n", r.BendingStressPSI)
		fmt.Fprintf(w, "  Safety factor:\t%.2f (min %.1f)\t%s\n", r.SafetyFactor, r.MinSF, passMark(r.Pass))
		w.Flush()
		fmt.Println()
	}
}
