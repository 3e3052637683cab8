package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangularModulus(t *testing.T) {
	assert.InDelta(t, 32*16.5*16.5/6, RectangularModulus(32, 16.5), 1e-9)
	assert.Zero(t, RectangularModulus(0, 10))
	assert.Zero(t, RectangularModulus(10, -1))
}

func TestThinShellProperties(t *testing.T) {
	props := ThinShellProperties(32, 17, 0.5)
	require.Len(t, props.Components, 3)

	assert.InDelta(t, 32.5, props.Area, 1e-9)
	assert.InDelta(t, 4.5654, props.NeutralAxis, 1e-4)
	assert.InDelta(t, 961.569, props.Inertia, 1e-3)
	assert.InDelta(t, 12.4346, props.CTop, 1e-4)
	assert.Equal(t, props.NeutralAxis, props.CBottom)
	assert.Equal(t, props.CTop, props.CMax)
	assert.InDelta(t, 77.330, props.SRaw, 1e-3)
	assert.InDelta(t, 57.998, props.S, 1e-3)
	assert.Equal(t, props.S, ThinShellModulus(32, 17, 0.5))
}

func TestThinShellReductionApplied(t *testing.T) {
	props := ThinShellProperties(30, 18, 0.5)
	assert.InDelta(t, props.SRaw*ThinShellReduction, props.S, 1e-12)
}

func TestThinShellComponents(t *testing.T) {
	comps := ThinShellComponents(30, 18, 0.5)

	assert.Equal(t, Rect{Name: "bottom", Width: 30, Height: 0.5, Y: 0.25}, comps[0])
	for _, wall := range comps[1:] {
		assert.Equal(t, 0.5, wall.Width)
		assert.Equal(t, 17.5, wall.Height)
		assert.Equal(t, 9.25, wall.Y)
	}
}

func TestThinShellWeakerThanSolid(t *testing.T) {
	cases := []struct{ b, h float64 }{
		{32, 17}, {30, 18}, {10, 10}, {36, 14}, {24, 20},
	}
	for _, c := range cases {
		solid := RectangularModulus(c.b, c.h)
		for _, frac := range []float64{0.01, 0.05, 0.1, 0.25, 0.49} {
			tw := c.h * frac
			if tw >= c.b/2 {
				continue
			}
			assert.Greater(t, solid, ThinShellModulus(c.b, c.h, tw),
				"b=%v h=%v t=%v", c.b, c.h, tw)
		}
	}
}

func TestThinShellOrderOfMagnitude(t *testing.T) {
	// the solid formula overstates the hull by roughly 10×
	ratio := RectangularModulus(32, 17) / ThinShellModulus(32, 17, 0.5)
	assert.Greater(t, ratio, 20.0)
}

func TestThinShellDegenerate(t *testing.T) {
	for _, dims := range [][3]float64{
		{0, 17, 0.5}, {32, 0, 0.5}, {32, 17, 0}, {32, 17, 17}, {32, 17, 20}, {-32, 17, 0.5},
	} {
		assert.Zero(t, ThinShellModulus(dims[0], dims[1], dims[2]), "%v", dims)
	}
}

func TestCompositeProperties_SingleRect(t *testing.T) {
	// one solid rectangle reproduces b·h²/6
	props := CompositeProperties([]Rect{{Width: 12, Height: 6, Y: 3}}, 6)
	assert.InDelta(t, 3.0, props.NeutralAxis, 1e-12)
	assert.InDelta(t, RectangularModulus(12, 6), props.SRaw, 1e-9)
	assert.Equal(t, props.SRaw, props.S)

	empty := CompositeProperties(nil, 6)
	assert.Zero(t, empty.S)
}

func TestModel(t *testing.T) {
	assert.Equal(t, ThinShell, Model(0))
	assert.Equal(t, ThinShellModulus(32, 16.5, 0.5), ThinShell.Modulus(32, 16.5, 0.5))
	assert.Equal(t, RectangularModulus(32, 16.5), Rectangular.Modulus(32, 16.5, 0.5))
	assert.Equal(t, "thin-shell", ThinShell.String())
	assert.Equal(t, "rectangular", Rectangular.String())

	m, ok := ParseModel("rectangular")
	assert.True(t, ok)
	assert.Equal(t, Rectangular, m)

	_, ok = ParseModel("i-beam")
	assert.False(t, ok)
}
