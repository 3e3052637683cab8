package hull

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Design is a hull submission as stored on disk: geometry, mix and the
// load the canoe is evaluated under.
type Design struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Geometry    Geometry  `yaml:"geometry"`
	Materials   Materials `yaml:"materials"`

	// ConcreteWeightLbs is the hull weight. When zero it is estimated from
	// geometry and density.
	ConcreteWeightLbs float64 `yaml:"concrete_weight_lbs"`

	Crew Crew `yaml:"crew"`

	// FormFactor overrides the configured waterplane coefficient when > 0.
	FormFactor float64 `yaml:"form_factor,omitempty"`
}

// Crew describes the paddlers carried during evaluation
type Crew struct {
	Count         int     `yaml:"count"`
	WeightEachLbs float64 `yaml:"weight_each_lbs"`

	// Accounting is "separate" (add the crew for flotation) or "included"
	// (concrete_weight_lbs already counts the crew). Required with a crew.
	Accounting string `yaml:"accounting,omitempty"`
}

// TotalLbs returns the combined crew weight
func (c Crew) TotalLbs() float64 {
	if c.Count <= 0 || c.WeightEachLbs <= 0 {
		return 0
	}
	return float64(c.Count) * c.WeightEachLbs
}

// LoadFromFile loads a hull design from a YAML (or JSON) file
func LoadFromFile(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading design file: %w", err)
	}

	var d Design
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing design YAML: %w", err)
	}

	d.applyDefaults()
	return &d, nil
}

func (d *Design) applyDefaults() {
	if d.Materials.DensityPCF == 0 {
		d.Materials.DensityPCF = DefaultDensityPCF
	}
	if d.Materials.FlexuralStrengthPSI == 0 {
		d.Materials.FlexuralStrengthPSI = DefaultFlexuralStrengthPSI
	}
	if d.ConcreteWeightLbs == 0 {
		d.ConcreteWeightLbs = EstimateWeight(d.Geometry, d.Materials.DensityPCF, DefaultShellAreaFactor)
	}
}
