package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/canoecalc/internal/section"
)

var (
	sectionBeam      float64
	sectionDepth     float64
	sectionThickness float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Thin-shell section properties of the hull cross-section",
	Long: `Compute the composite properties of the hull cross-section,
modelled as a U of three rectangles (bottom plate and two side walls).

The neutral axis and moment of inertia follow the parallel-axis theorem.
The design section modulus applies the 0.75 thin-shell reduction. The
solid rectangle b·h²/6 is shown for comparison only.

Examples:
  canoecalc section --beam 32 --depth 17 --thickness 0.5`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().Float64VarP(&sectionBeam, "beam", "b", 0, "Outer width (in) [required]")
	sectionCmd.Flags().Float64VarP(&sectionDepth, "depth", "d", 0, "Outer depth (in) [required]")
	sectionCmd.Flags().Float64VarP(&sectionThickness, "thickness", "t", 0.5, "Wall thickness (in)")

	sectionCmd.MarkFlagRequired("beam")
	sectionCmd.MarkFlagRequired("depth")
}

func runSection(cmd *cobra.Command, args []string) {
	props := section.ThinShellProperties(sectionBeam, sectionDepth, sectionThickness)
	if props.Area == 0 {
		logger.Warn().
			Float64("beam_in", sectionBeam).
			Float64("depth_in", sectionDepth).
			Float64("thickness_in", sectionThickness).
			Msg("degenerate section, all properties are zero")
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          THIN-SHELL HULL SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("COMPONENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Part\tb (in)\th (in)\tA (in²)\ty (in)\tI₀ (in⁴)\n")
	fmt.Fprintf(w, "  ────\t──────\t──────\t───────\t──────\t────────\n")
	for _, r := range props.Components {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n", r.Name, r.Width, r.Height, r.Area(), r.Y, r.SelfInertia())
	}
	w.Flush()
	fmt.Println()

	fmt.Println("COMPOSITE SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.2f in²\n", props.Area)
	fmt.Fprintf(w, "  Neutral axis (from keel):\t%.3f in\n", props.NeutralAxis)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.2f in⁴\n", props.Inertia)
	fmt.Fprintf(w, "  c top / c bottom:\t%.3f / %.3f in\n", props.CTop, props.CBottom)
	fmt.Fprintf(w, "  Elastic modulus I/c:\t%.2f in³\n", props.SRaw)
	fmt.Fprintf(w, "  Thin-shell reduction:\t%.2f\n", section.ThinShellReduction)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN SECTION MODULUS S = %.2f in³            \n", props.S)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	solid := section.RectangularModulus(sectionBeam, sectionDepth)
	fmt.Println("COMPARISON:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Solid rectangle b·h²/6:\t%.2f in³\n", solid)
	if props.S > 0 {
		fmt.Fprintf(w, "  Overstatement:\t%.1f×\n", solid/props.S)
	}
	w.Flush()
	fmt.Println()
}
