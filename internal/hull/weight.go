package hull

// DefaultShellAreaFactor is the fraction of the developed L×(B+2D) envelope
// actually covered by a tapered hull shell.
const DefaultShellAreaFactor = 0.75

// ShellAreaFt2 approximates the concrete shell surface area (ft²).
func ShellAreaFt2(g Geometry, shellAreaFactor float64) float64 {
	if shellAreaFactor <= 0 {
		return 0
	}
	area := g.LengthFt() * (g.BeamFt() + 2*g.DepthFt()) * shellAreaFactor
	if area <= 0 {
		return 0
	}
	return area
}

// EstimateWeight estimates the hull self-weight (lbs) as shell area times
// wall thickness times concrete density.
func EstimateWeight(g Geometry, densityPCF, shellAreaFactor float64) float64 {
	if densityPCF <= 0 || g.ThicknessIn <= 0 {
		return 0
	}
	return ShellAreaFt2(g, shellAreaFactor) * g.ThicknessFt() * densityPCF
}
