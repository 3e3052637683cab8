// Package load computes bending moments on a canoe hull treated as a
// simply supported beam between bow and stern, and the resulting bending
// stress and safety factor.
package load

import (
	"math"
	"sort"
)

// UniformMoment returns wL²/8 (lb·ft) for a uniform load w (lb/ft) over the
// full span.
func UniformMoment(wLbPerFt, lengthFt float64) float64 {
	return wLbPerFt * lengthFt * lengthFt / 8
}

// PointMoment returns PL/4 (lb·ft) for a single load P at midspan.
func PointMoment(pLbs, lengthFt float64) float64 {
	return pLbs * lengthFt / 4
}

// SelfWeightMoment spreads the hull weight evenly along its length.
func SelfWeightMoment(hullWeightLbs, lengthFt float64) float64 {
	if lengthFt <= 0 {
		return 0
	}
	return UniformMoment(hullWeightLbs/lengthFt, lengthFt)
}

// CombinedMoment is the self-weight moment plus the whole crew as a point
// load at midspan.
func CombinedMoment(hullWeightLbs, crewWeightLbs, lengthFt float64) float64 {
	return SelfWeightMoment(hullWeightLbs, lengthFt) + PointMoment(crewWeightLbs, lengthFt)
}

// CrewDistributedMoment returns the midspan moment for the crew weight
// spread uniformly over a central length spreadFt: PL/4 − P·a/8. The spread
// is clamped to [0, L]; zero spread is the point-load case.
func CrewDistributedMoment(crewWeightLbs, lengthFt, spreadFt float64) float64 {
	if lengthFt <= 0 {
		return 0
	}
	a := math.Min(math.Max(spreadFt, 0), lengthFt)
	return crewWeightLbs*lengthFt/4 - crewWeightLbs*a/8
}

// PointLoad is a concentrated load at a station measured from the bow
type PointLoad struct {
	PositionFt float64
	WeightLbs  float64
}

// PointLoadsMoment returns the largest sagging moment (lb·ft) produced by a
// set of point loads on a simply supported span. For point loads the
// maximum always occurs under one of the loads. Loads off the span are
// ignored.
func PointLoadsMoment(lengthFt float64, loads []PointLoad) float64 {
	if lengthFt <= 0 {
		return 0
	}

	var onSpan []PointLoad
	for _, p := range loads {
		if p.PositionFt >= 0 && p.PositionFt <= lengthFt {
			onSpan = append(onSpan, p)
		}
	}
	if len(onSpan) == 0 {
		return 0
	}
	sort.Slice(onSpan, func(i, j int) bool { return onSpan[i].PositionFt < onSpan[j].PositionFt })

	// Left reaction from moments about the stern support
	var rLeft float64
	for _, p := range onSpan {
		rLeft += p.WeightLbs * (lengthFt - p.PositionFt) / lengthFt
	}

	var maxM float64
	for _, at := range onSpan {
		m := rLeft * at.PositionFt
		for _, p := range onSpan {
			if p.PositionFt < at.PositionFt {
				m -= p.WeightLbs * (at.PositionFt - p.PositionFt)
			}
		}
		maxM = math.Max(maxM, m)
	}
	return maxM
}

// CrewStations places count paddlers evenly along the central spreadFt of
// the hull.
func CrewStations(count int, weightEachLbs, lengthFt, spreadFt float64) []PointLoad {
	if count <= 0 {
		return nil
	}
	mid := lengthFt / 2
	if count == 1 || spreadFt <= 0 {
		stations := make([]PointLoad, count)
		for i := range stations {
			stations[i] = PointLoad{PositionFt: mid, WeightLbs: weightEachLbs}
		}
		return stations
	}

	spacing := spreadFt / float64(count-1)
	start := mid - spreadFt/2
	stations := make([]PointLoad, count)
	for i := range stations {
		stations[i] = PointLoad{PositionFt: start + float64(i)*spacing, WeightLbs: weightEachLbs}
	}
	return stations
}
