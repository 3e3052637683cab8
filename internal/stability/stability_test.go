package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetacentricHeight(t *testing.T) {
	// KB = 0.5, BM = 2.5²/12 = 0.5208, KG = 0.6
	gm := MetacentricHeight(2.5, 1.0, 1.5, 0.6)
	assert.InDelta(t, 0.5+6.25/12-0.6, gm, 1e-12)
}

func TestMetacentricHeight_FallbackKG(t *testing.T) {
	withFallback := MetacentricHeight(2.5, 1.0, 1.5, 0)
	explicit := MetacentricHeight(2.5, 1.0, 1.5, 1.5*DefaultKGFraction)
	assert.InDelta(t, explicit, withFallback, 1e-12)

	custom := MetacentricHeightWithFallback(2.5, 1.0, 1.5, -1, 0.45)
	assert.InDelta(t, 0.5+6.25/12-0.675, custom, 1e-12)
}

func TestMetacentricHeight_ZeroDraft(t *testing.T) {
	assert.Zero(t, MetacentricHeight(2.5, 0, 1.5, 0.6))
	assert.Zero(t, MetacentricHeight(2.5, -0.2, 1.5, 0.6))
}

func TestMetacentricHeight_NegativeIsValid(t *testing.T) {
	// Narrow, deep-floating hull with a high CG
	gm := MetacentricHeight(0.5, 1.0, 2.0, 1.5)
	assert.Less(t, gm, 0.0)
}

func TestMetacentricHeight_IncreasesWithBeam(t *testing.T) {
	prev := MetacentricHeight(1.0, 0.5, 1.5, 0.6)
	for beam := 1.25; beam <= 4.0; beam += 0.25 {
		gm := MetacentricHeight(beam, 0.5, 1.5, 0.6)
		assert.Greater(t, gm, prev, "beam %v", beam)
		prev = gm
	}
}

func TestWeightedCOG(t *testing.T) {
	opts := DefaultCOGOptions()
	depth := 1.5
	hullKG := depth * HullKGFraction
	crewKG := 10.0 / 12

	assert.InDelta(t, hullKG, WeightedCOG(depth, 300, 0, opts), 1e-12)
	assert.InDelta(t, crewKG, WeightedCOG(depth, 0, 400, opts), 1e-12)
	assert.InDelta(t, hullKG, WeightedCOG(depth, 0, 0, opts), 1e-12)

	kg := WeightedCOG(depth, 300, 700, opts)
	assert.InDelta(t, (300*hullKG+700*crewKG)/1000, kg, 1e-12)
	assert.Greater(t, kg, hullKG)
	assert.Less(t, kg, crewKG)
}

func TestMetacentricHeightWeighted(t *testing.T) {
	opts := DefaultCOGOptions()
	kg := WeightedCOG(1.5, 276, 360, opts)
	assert.InDelta(t,
		MetacentricHeight(2.5, 0.8, 1.5, kg),
		MetacentricHeightWeighted(2.5, 0.8, 1.5, 276, 360, opts), 1e-12)
}

func TestAnalyze(t *testing.T) {
	draft := (276 / 62.4) / 4.5
	r := Analyze(2.5, draft, 1.5, 1.5*0.45, 0.5)

	assert.InDelta(t, 4.156, r.GMIn, 1e-3)
	assert.Equal(t, r.GMIn, r.GM_in())
	assert.True(t, r.Pass)
	assert.Equal(t, 0.5, r.MinRequiredIn)

	assert.False(t, Analyze(2.5, draft, 1.5, 1.5*0.45, 6.0).Pass)
}

func TestAnalyze_ReportsFallbackKG(t *testing.T) {
	draft := (276 / 62.4) / 4.5
	r := Analyze(2.5, draft, 1.5, 0, 0.5)

	assert.InDelta(t, 1.5*DefaultKGFraction, r.KGFt, 1e-12)
	assert.InDelta(t, MetacentricHeight(2.5, draft, 1.5, r.KGFt)*12, r.GMIn, 1e-9)
}

func TestGZCurve(t *testing.T) {
	points := GZCurve(4.0, HeelAngles(90, 30))

	assert.Len(t, points, 4)
	assert.Zero(t, points[0].GZIn)
	assert.InDelta(t, 2.0, points[1].GZIn, 1e-12)
	assert.InDelta(t, 4.0*math.Sqrt(3)/2, points[2].GZIn, 1e-12)
	assert.InDelta(t, 4.0, points[3].GZIn, 1e-12)
}

func TestHeelAngles(t *testing.T) {
	assert.Equal(t, []float64{0, 15, 30, 45}, HeelAngles(45, 15))
	assert.Equal(t, []float64{0}, HeelAngles(45, 0))
}
