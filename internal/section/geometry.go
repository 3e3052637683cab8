package section

import "math"

// ThinShellReduction is the design reduction applied to the elastic section
// modulus of a thin concrete shell for cracking and local buckling.
const ThinShellReduction = 0.75

// RectangularModulus returns the solid rectangle section modulus b·h²/6 (in³).
// It overstates the strength of a hollow hull by roughly an order of
// magnitude and is kept only for comparisons.
func RectangularModulus(b, h float64) float64 {
	if b <= 0 || h <= 0 {
		return 0
	}
	return b * h * h / 6
}

// ThinShellModulus returns the design section modulus (in³) of a U-shaped
// shell of outer width b, outer depth h and wall thickness t.
func ThinShellModulus(b, h, t float64) float64 {
	return ThinShellProperties(b, h, t).S
}

// ThinShellComponents splits the U section into a bottom plate spanning the
// full width and two side walls standing on it.
func ThinShellComponents(b, h, t float64) []Rect {
	wallHeight := h - t
	return []Rect{
		{Name: "bottom", Width: b, Height: t, Y: t / 2},
		{Name: "left wall", Width: t, Height: wallHeight, Y: t + wallHeight/2},
		{Name: "right wall", Width: t, Height: wallHeight, Y: t + wallHeight/2},
	}
}

// ThinShellProperties computes the composite properties of the U-shaped
// shell. Degenerate input (non-positive dimensions, walls thicker than the
// section) yields zero properties.
func ThinShellProperties(b, h, t float64) *Properties {
	if b <= 0 || h <= 0 || t <= 0 || t >= h {
		return &Properties{}
	}

	props := CompositeProperties(ThinShellComponents(b, h, t), h)
	props.S = props.SRaw * ThinShellReduction
	return props
}

// CompositeProperties locates the neutral axis of a set of rectangles and
// sums their inertia with the parallel-axis theorem. height is the overall
// section depth used for the top fiber distance.
func CompositeProperties(components []Rect, height float64) *Properties {
	props := &Properties{Components: components}

	var sumAY float64
	for _, r := range components {
		props.Area += r.Area()
		sumAY += r.Area() * r.Y
	}
	if props.Area <= 0 {
		return props
	}

	props.NeutralAxis = sumAY / props.Area

	for _, r := range components {
		d := props.NeutralAxis - r.Y
		props.Inertia += r.SelfInertia() + r.Area()*d*d
	}

	props.CTop = height - props.NeutralAxis
	props.CBottom = props.NeutralAxis
	props.CMax = math.Max(props.CTop, props.CBottom)

	if props.CMax > 0 {
		props.SRaw = props.Inertia / props.CMax
	}
	props.S = props.SRaw

	return props
}
