// Package hydro computes displacement, draft and freeboard for a hull
// floating in still water.
//
// All functions degrade to zero for degenerate geometry instead of
// returning errors: an infeasible hull shows up as a failed check, not
// as a Go error.
package hydro

import (
	"math"

	"github.com/alexiusacademia/canoecalc/internal/hull"
	"github.com/alexiusacademia/canoecalc/internal/physics"
)

// Waterplane coefficients (Cwp). The factor is the fraction of the
// length × beam rectangle covered by the waterline outline of a tapered hull.
const (
	FormFactorConservative = 0.10 // early-stage estimate
	FormFactorCanoeLow     = 0.65
	FormFactorCanoe        = 0.70
	FormFactorCanoeHigh    = 0.75
)

// WaterplaneArea approximates the waterplane area (ft²) as L × B × Cwp.
func WaterplaneArea(lengthFt, beamFt, formFactor float64) float64 {
	return lengthFt * beamFt * formFactor
}

// DisplacementVolume returns the volume of water (ft³) displaced by the
// given weight (Archimedes).
func DisplacementVolume(weightLbs float64, c physics.Constants) float64 {
	if weightLbs <= 0 {
		return 0
	}
	return weightLbs / c.WaterDensity()
}

// DraftFromDisplacement returns draft (ft) for a prismatic waterplane.
func DraftFromDisplacement(displacementFt3, waterplaneFt2 float64) float64 {
	if waterplaneFt2 <= 0 {
		return 0
	}
	return displacementFt3 / waterplaneFt2
}

// Freeboard returns depth minus draft (ft), clamped at zero for a hull
// that would sit fully submerged.
func Freeboard(depthFt, draftFt float64) float64 {
	return math.Max(0, depthFt-draftFt)
}

// Result holds the hydrostatic check for one loading condition
type Result struct {
	FreeboardIn     float64 `json:"freeboard_in"`
	DraftIn         float64 `json:"draft_in"`
	DraftFt         float64 `json:"-"`
	DisplacementFt3 float64 `json:"displacement_ft3"`
	WaterplaneFt2   float64 `json:"-"`
	Pass            bool    `json:"pass"`
	MinRequiredIn   float64 `json:"min_required_in"`
}

// Analyze floats the hull at the given total weight and checks freeboard
// against minFreeboardIn.
func Analyze(g hull.Geometry, totalWeightLbs, formFactor, minFreeboardIn float64, c physics.Constants) Result {
	disp := DisplacementVolume(totalWeightLbs, c)
	wp := WaterplaneArea(c.InToFt(g.LengthIn), c.InToFt(g.BeamIn), formFactor)
	draftFt := DraftFromDisplacement(disp, wp)
	fbFt := Freeboard(c.InToFt(g.DepthIn), draftFt)

	fbIn := c.FtToIn(fbFt)
	return Result{
		FreeboardIn:     fbIn,
		DraftIn:         c.FtToIn(draftFt),
		DraftFt:         draftFt,
		DisplacementFt3: disp,
		WaterplaneFt2:   wp,
		Pass:            fbIn >= minFreeboardIn,
		MinRequiredIn:   minFreeboardIn,
	}
}
