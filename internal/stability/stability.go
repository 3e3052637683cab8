// Package stability computes initial transverse stability (metacentric
// height) for a wall-sided hull.
package stability

import (
	"encoding/json"
	"math"

	"github.com/alexiusacademia/canoecalc/internal/physics"
)

// KG estimates as fractions of hull depth, and the crew center of gravity
// for paddlers kneeling on the bottom.
const (
	DefaultKGFraction = 0.40 // quick estimate when no CG is supplied
	HullKGFraction    = 0.38 // U-shaped concrete shell alone
	CrewCOGHeightIn   = 10.0 // kneeling paddler, above the keel
)

// MetacentricHeight returns GM (ft) = KB + BM − KG.
//
// KB is half the draft and BM = B²/(12T). When cogHeightFt is not positive
// KG falls back to DefaultKGFraction × depth. Draft ≤ 0 returns 0. A negative
// GM is a valid result and means the hull would capsize.
func MetacentricHeight(beamFt, draftFt, depthFt, cogHeightFt float64) float64 {
	return metacentricHeight(beamFt, draftFt, depthFt, cogHeightFt, DefaultKGFraction)
}

// MetacentricHeightWithFallback is MetacentricHeight with a caller-chosen
// KG fraction for the no-CG case.
func MetacentricHeightWithFallback(beamFt, draftFt, depthFt, cogHeightFt, kgFraction float64) float64 {
	return metacentricHeight(beamFt, draftFt, depthFt, cogHeightFt, kgFraction)
}

func metacentricHeight(beamFt, draftFt, depthFt, cogHeightFt, kgFraction float64) float64 {
	if draftFt <= 0 {
		return 0
	}

	kb := draftFt / 2
	bm := beamFt * beamFt / (12 * draftFt)

	return kb + bm - effectiveKG(depthFt, cogHeightFt, kgFraction)
}

func effectiveKG(depthFt, cogHeightFt, kgFraction float64) float64 {
	if cogHeightFt > 0 {
		return cogHeightFt
	}
	return depthFt * kgFraction
}

// COGOptions controls the weighted center of gravity estimate
type COGOptions struct {
	HullKGFraction  float64 // hull CG as a fraction of depth
	CrewCOGHeightFt float64 // crew CG above the keel
}

// DefaultCOGOptions returns the shell and kneeling-crew estimates
func DefaultCOGOptions() COGOptions {
	return COGOptions{
		HullKGFraction:  HullKGFraction,
		CrewCOGHeightFt: CrewCOGHeightIn / physics.InchesPerFoot,
	}
}

// WeightedCOG returns the combined hull and crew KG (ft) as a
// weight-weighted average. With no weight at all it returns the hull KG.
func WeightedCOG(depthFt, hullWeightLbs, crewWeightLbs float64, opts COGOptions) float64 {
	hullKG := depthFt * opts.HullKGFraction

	hullW := math.Max(0, hullWeightLbs)
	crewW := math.Max(0, crewWeightLbs)
	total := hullW + crewW
	if total <= 0 {
		return hullKG
	}

	return (hullW*hullKG + crewW*opts.CrewCOGHeightFt) / total
}

// MetacentricHeightWeighted returns GM (ft) with KG taken from WeightedCOG.
func MetacentricHeightWeighted(beamFt, draftFt, depthFt, hullWeightLbs, crewWeightLbs float64, opts COGOptions) float64 {
	kg := WeightedCOG(depthFt, hullWeightLbs, crewWeightLbs, opts)
	return metacentricHeight(beamFt, draftFt, depthFt, kg, DefaultKGFraction)
}

// Result holds the stability check
type Result struct {
	GMIn          float64 `json:"gm_in"`
	KGFt          float64 `json:"-"`
	Pass          bool    `json:"pass"`
	MinRequiredIn float64 `json:"min_required_in"`
}

// GM_in returns GMIn. Kept for consumers that read the upper-case key.
func (r Result) GM_in() float64 {
	return r.GMIn
}

// Analyze computes GM in inches for the given KG and checks it against
// minGMIn. KGFt reports the KG actually used, including the fallback.
func Analyze(beamFt, draftFt, depthFt, cogHeightFt, minGMIn float64) Result {
	gmIn := MetacentricHeight(beamFt, draftFt, depthFt, cogHeightFt) * physics.InchesPerFoot
	return Result{
		GMIn:          gmIn,
		KGFt:          effectiveKG(depthFt, cogHeightFt, DefaultKGFraction),
		Pass:          gmIn >= minGMIn,
		MinRequiredIn: minGMIn,
	}
}

// MarshalJSON writes the result with the GM_in alias key alongside gm_in.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		GMInAlias float64 `json:"GM_in"`
	}{plain(r), r.GMIn})
}
