package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/canoecalc/internal/stability"
)

var (
	stabBeam       float64
	stabDraft      float64
	stabDepth      float64
	stabCOG        float64
	stabHullWeight float64
	stabCrewWeight float64
	stabWeighted   bool
	stabMaxHeel    float64
	stabHeelStep   float64
)

var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Metacentric height and righting arm curve",
	Long: `Calculate the metacentric height GM = KB + BM − KG for a
wall-sided hull and tabulate the small-angle righting arm GM·sin(θ).

KG is taken from --cog when given. Otherwise --weighted averages the
hull shell CG (0.38 × depth) and a kneeling crew CG (10 in above the
keel) by weight; without it KG is 0.40 × depth.

Examples:
  canoecalc stability --beam 2.5 --draft 0.98 --depth 1.5
  canoecalc stability -b 2.5 --draft 0.98 -d 1.5 --weighted --hull-weight 276 --crew-weight 360`,
	Run: runStability,
}

func init() {
	rootCmd.AddCommand(stabilityCmd)

	stabilityCmd.Flags().Float64VarP(&stabBeam, "beam", "b", 0, "Beam (ft) [required]")
	stabilityCmd.Flags().Float64Var(&stabDraft, "draft", 0, "Draft (ft) [required]")
	stabilityCmd.Flags().Float64VarP(&stabDepth, "depth", "d", 0, "Hull depth (ft) [required]")
	stabilityCmd.Flags().Float64Var(&stabCOG, "cog", 0, "Center of gravity above keel (ft)")
	stabilityCmd.Flags().Float64Var(&stabHullWeight, "hull-weight", 0, "Hull weight (lbs), for --weighted")
	stabilityCmd.Flags().Float64Var(&stabCrewWeight, "crew-weight", 0, "Crew weight (lbs), for --weighted")
	stabilityCmd.Flags().BoolVar(&stabWeighted, "weighted", false, "Weight-average hull and crew CG")
	stabilityCmd.Flags().Float64Var(&stabMaxHeel, "max-heel", 30, "Largest heel angle to tabulate (deg)")
	stabilityCmd.Flags().Float64Var(&stabHeelStep, "heel-step", 5, "Heel angle step (deg)")

	stabilityCmd.MarkFlagRequired("beam")
	stabilityCmd.MarkFlagRequired("draft")
	stabilityCmd.MarkFlagRequired("depth")
}

func runStability(cmd *cobra.Command, args []string) {
	kg := stabCOG
	kgSource := "given"
	if kg <= 0 && stabWeighted {
		kg = stability.WeightedCOG(stabDepth, stabHullWeight, stabCrewWeight, stability.DefaultCOGOptions())
		kgSource = "weighted hull + crew"
	} else if kg <= 0 {
		kg = stabDepth * stability.DefaultKGFraction
		kgSource = fmt.Sprintf("%.2f × depth", stability.DefaultKGFraction)
	}

	r := stability.Analyze(stabBeam, stabDraft, stabDepth, kg, settings.Analysis.Thresholds.MinGMIn)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TRANSVERSE STABILITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  KB (T/2):\t%.3f ft\n", stabDraft/2)
	if stabDraft > 0 {
		fmt.Fprintf(w, "  BM (B²/12T):\t%.3f ft\n", stabBeam*stabBeam/(12*stabDraft))
	}
	fmt.Fprintf(w, "  KG (%s):\t%.3f ft\n", kgSource, kg)
	fmt.Fprintf(w, "  GM:\t%.2f in (min %.1f)\t%s\n", r.GMIn, r.MinRequiredIn, passMark(r.Pass))
	w.Flush()
	fmt.Println()

	if r.GMIn < 0 {
		fmt.Println("  ⚠ Negative GM: hull is unstable and would capsize")
		fmt.Println()
		return
	}

	fmt.Println("RIGHTING ARM (GZ = GM·sin θ):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Heel (deg)\tGZ (in)\n")
	fmt.Fprintf(w, "  ──────────\t───────\n")
	for _, p := range stability.GZCurve(r.GMIn, stability.HeelAngles(stabMaxHeel, stabHeelStep)) {
		fmt.Fprintf(w, "  %.0f\t%.3f\n", p.HeelDeg, p.GZIn)
	}
	w.Flush()
	fmt.Println()
}
