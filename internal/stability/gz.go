package stability

import "math"

// GZPoint is one point of a righting-arm curve
type GZPoint struct {
	HeelDeg float64 `json:"heel_deg"`
	GZIn    float64 `json:"gz_in"`
}

// GZCurve returns the small-angle righting arm GM·sin(θ) at each heel angle
// (degrees). It is only meaningful for moderate heel before the gunwale
// immerses.
func GZCurve(gmIn float64, heelDeg []float64) []GZPoint {
	points := make([]GZPoint, 0, len(heelDeg))
	for _, deg := range heelDeg {
		points = append(points, GZPoint{
			HeelDeg: deg,
			GZIn:    gmIn * math.Sin(deg*math.Pi/180),
		})
	}
	return points
}

// HeelAngles returns angles from 0 to maxDeg inclusive in stepDeg steps.
func HeelAngles(maxDeg, stepDeg float64) []float64 {
	if stepDeg <= 0 || maxDeg < 0 {
		return []float64{0}
	}
	var angles []float64
	for a := 0.0; a <= maxDeg+1e-9; a += stepDeg {
		angles = append(angles, a)
	}
	return angles
}
