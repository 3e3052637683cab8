package physics

// Physical constants used by the hydrostatic and structural calculations.
const (
	FreshWaterDensityPCF = 62.4   // lb/ft³
	SaltWaterDensityPCF  = 64.0   // lb/ft³
	GravityFtS2          = 32.174 // ft/s²
	InchesPerFoot        = 12.0
)

// Constants carries the physical constants for one analysis so that callers
// can swap water density (salt water, test fixtures) without package state.
type Constants struct {
	WaterDensityPCF float64 `json:"water_density_pcf" mapstructure:"waterDensityPcf"`
	GravityFtS2     float64 `json:"gravity_ft_s2" mapstructure:"gravityFtS2"`
	InchesPerFoot   float64 `json:"inches_per_foot" mapstructure:"inchesPerFoot"`
}

// FreshWater returns the constants for fresh water at standard conditions.
func FreshWater() Constants {
	return Constants{
		WaterDensityPCF: FreshWaterDensityPCF,
		GravityFtS2:     GravityFtS2,
		InchesPerFoot:   InchesPerFoot,
	}
}

// SaltWater returns FreshWater with sea water density.
func SaltWater() Constants {
	c := FreshWater()
	c.WaterDensityPCF = SaltWaterDensityPCF
	return c
}

func (c Constants) inchesPerFoot() float64 {
	if c.InchesPerFoot <= 0 {
		return InchesPerFoot
	}
	return c.InchesPerFoot
}

// InToFt converts inches to feet.
func (c Constants) InToFt(in float64) float64 {
	return in / c.inchesPerFoot()
}

// FtToIn converts feet to inches.
func (c Constants) FtToIn(ft float64) float64 {
	return ft * c.inchesPerFoot()
}

// WaterDensity returns the configured water density, falling back to fresh
// water when unset.
func (c Constants) WaterDensity() float64 {
	if c.WaterDensityPCF <= 0 {
		return FreshWaterDensityPCF
	}
	return c.WaterDensityPCF
}
