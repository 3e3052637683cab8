package hydro

import (
	"testing"

	"github.com/alexiusacademia/canoecalc/internal/hull"
	"github.com/alexiusacademia/canoecalc/internal/physics"
	"github.com/stretchr/testify/assert"
)

func TestWaterplaneArea(t *testing.T) {
	assert.InDelta(t, 4.5, WaterplaneArea(18, 2.5, FormFactorConservative), 1e-12)
	assert.InDelta(t, 31.5, WaterplaneArea(18, 2.5, FormFactorCanoe), 1e-12)
	assert.Zero(t, WaterplaneArea(0, 2.5, FormFactorCanoe))
}

func TestDisplacementVolume(t *testing.T) {
	c := physics.FreshWater()
	for _, w := range []float64{1, 62.4, 276, 636, 1234.5} {
		assert.Equal(t, w/62.4, DisplacementVolume(w, c), "weight %v", w)
	}
	assert.Zero(t, DisplacementVolume(0, c))
	assert.Zero(t, DisplacementVolume(-10, c))

	salt := physics.SaltWater()
	assert.Equal(t, 640.0/64.0, DisplacementVolume(640, salt))
}

func TestDraftFromDisplacement(t *testing.T) {
	assert.Equal(t, 2.0, DraftFromDisplacement(9, 4.5))
	for _, wp := range []float64{0, -1, -100} {
		for _, x := range []float64{0, 1, 1e6, -3} {
			assert.Zero(t, DraftFromDisplacement(x, wp))
		}
	}
}

func TestFreeboard(t *testing.T) {
	assert.InDelta(t, 0.5, Freeboard(1.5, 1.0), 1e-12)
	assert.Zero(t, Freeboard(1.5, 1.5))
	for _, draft := range []float64{1.51, 2, 10} {
		assert.Zero(t, Freeboard(1.5, draft), "draft %v deeper than hull", draft)
	}
}

func TestAnalyze(t *testing.T) {
	g := hull.NewGeometry(216, 30, 18, 0.5)
	r := Analyze(g, 276, FormFactorConservative, 4.0, physics.FreshWater())

	// disp = 276/62.4, waterplane = 18 × 2.5 × 0.10 = 4.5 ft²
	assert.InDelta(t, 4.4231, r.DisplacementFt3, 1e-4)
	assert.InDelta(t, 4.5, r.WaterplaneFt2, 1e-12)
	assert.InDelta(t, 11.795, r.DraftIn, 1e-3)
	assert.InDelta(t, 6.205, r.FreeboardIn, 1e-3)
	assert.True(t, r.Pass)
	assert.Equal(t, 4.0, r.MinRequiredIn)

	strict := Analyze(g, 276, FormFactorConservative, 6.5, physics.FreshWater())
	assert.False(t, strict.Pass)
}

func TestAnalyze_FreeboardDecreasesWithWeight(t *testing.T) {
	g := hull.NewGeometry(192, 32, 17, 0.5)
	c := physics.FreshWater()

	prev := Analyze(g, 50, FormFactorCanoe, 4, c).FreeboardIn
	for w := 100.0; w <= 900; w += 50 {
		fb := Analyze(g, w, FormFactorCanoe, 4, c).FreeboardIn
		assert.Less(t, fb, prev, "weight %v", w)
		prev = fb
	}
}

func TestAnalyze_DegenerateGeometry(t *testing.T) {
	r := Analyze(hull.NewGeometry(0, 0, 18, 0.5), 276, FormFactorCanoe, 4, physics.FreshWater())
	assert.Zero(t, r.DraftIn)
	assert.InDelta(t, 18.0, r.FreeboardIn, 1e-12)

	sunk := Analyze(hull.NewGeometry(216, 30, 18, 0.5), 50000, FormFactorConservative, 4, physics.FreshWater())
	assert.Zero(t, sunk.FreeboardIn)
	assert.False(t, sunk.Pass)
}
