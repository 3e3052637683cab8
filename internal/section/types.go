package section

// Rect is one rectangular component of a composite section. Y is the
// distance from the keel (section bottom) to the component centroid.
type Rect struct {
	Name   string
	Width  float64 // in
	Height float64 // in
	Y      float64 // in
}

// Area returns the component area (in²)
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// SelfInertia returns the moment of inertia about the component's own
// centroidal axis, b·h³/12 (in⁴).
func (r Rect) SelfInertia() float64 {
	return r.Width * r.Height * r.Height * r.Height / 12
}

// Properties holds calculated properties of a composite section
type Properties struct {
	Components []Rect

	Area        float64 // in²
	NeutralAxis float64 // in, from the keel
	Inertia     float64 // in⁴, about the neutral axis

	// Extreme fiber distances (in)
	CTop    float64
	CBottom float64
	CMax    float64

	SRaw float64 // elastic section modulus I/c (in³)
	S    float64 // design section modulus after the thin-shell reduction (in³)
}

// Model selects which section modulus formula a caller uses
type Model int

const (
	// ThinShell is the U-shaped hull shell. It is the zero value so new
	// configurations get it unless they opt out.
	ThinShell Model = iota
	// Rectangular is the solid b·h²/6 block, retained only to compare
	// against older results.
	Rectangular
)

func (m Model) String() string {
	switch m {
	case ThinShell:
		return "thin-shell"
	case Rectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}

// ParseModel maps a model name to a Model
func ParseModel(name string) (Model, bool) {
	switch name {
	case "thin-shell", "thinshell", "thin_shell", "":
		return ThinShell, true
	case "rectangular", "rect", "solid":
		return Rectangular, true
	}
	return ThinShell, false
}

// Modulus returns the section modulus (in³) for the model. t is ignored by
// the rectangular model.
func (m Model) Modulus(b, h, t float64) float64 {
	if m == Rectangular {
		return RectangularModulus(b, h)
	}
	return ThinShellModulus(b, h, t)
}
