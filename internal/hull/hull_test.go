package hull

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryFeet(t *testing.T) {
	g := NewGeometry(192, 32, 17, 0.5)

	assert.Equal(t, 16.0, g.LengthFt())
	assert.InDelta(t, 32.0/12, g.BeamFt(), 1e-12)
	assert.InDelta(t, 17.0/12, g.DepthFt(), 1e-12)
	assert.InDelta(t, 0.5/12, g.ThicknessFt(), 1e-12)
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Geometry
		wantErr bool
	}{
		{"typical hull", NewGeometry(216, 30, 18, 0.5), false},
		{"zero length", NewGeometry(0, 30, 18, 0.5), true},
		{"negative thickness", NewGeometry(216, 30, 18, -0.5), true},
		{"thickness equals depth", NewGeometry(216, 30, 18, 18), true},
		{"thickness over half beam", NewGeometry(216, 30, 40, 15), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.wantErr {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEstimateWeight(t *testing.T) {
	g := NewGeometry(192, 32, 17, 0.5)

	// 16 ft × (2.667 + 2×1.417) ft × 0.75 = 66 ft², × 0.5/12 ft × 60 pcf
	assert.InDelta(t, 66.0, ShellAreaFt2(g, DefaultShellAreaFactor), 1e-9)
	assert.InDelta(t, 165.0, EstimateWeight(g, 60, DefaultShellAreaFactor), 1e-9)

	assert.Zero(t, EstimateWeight(g, 0, DefaultShellAreaFactor))
	assert.Zero(t, EstimateWeight(g, 60, 0))
	assert.Zero(t, EstimateWeight(NewGeometry(-192, 32, 17, 0.5), 60, DefaultShellAreaFactor))
}

func TestCrewTotal(t *testing.T) {
	assert.Equal(t, 700.0, Crew{Count: 4, WeightEachLbs: 175}.TotalLbs())
	assert.Zero(t, Crew{Count: 0, WeightEachLbs: 175}.TotalLbs())
	assert.Zero(t, Crew{Count: 2, WeightEachLbs: -1}.TotalLbs())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canoe.yaml")
	doc := `
name: Canoe 1
geometry:
  length_in: 216
  beam_in: 30
  depth_in: 18
  thickness_in: 0.5
materials:
  flexural_strength_psi: 1800
concrete_weight_lbs: 276
crew:
  count: 2
  weight_each_lbs: 180
  accounting: separate
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	d, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Canoe 1", d.Name)
	assert.Equal(t, NewGeometry(216, 30, 18, 0.5), d.Geometry)
	assert.Equal(t, 1800.0, d.Materials.FlexuralStrengthPSI)
	assert.Equal(t, DefaultDensityPCF, d.Materials.DensityPCF)
	assert.Equal(t, 276.0, d.ConcreteWeightLbs)
	assert.Equal(t, 360.0, d.Crew.TotalLbs())
	assert.Equal(t, "separate", d.Crew.Accounting)
}

func TestLoadFromFile_EstimatesMissingWeight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canoe.yaml")
	doc := `{"name": "est", "geometry": {"length_in": 192, "beam_in": 32, "depth_in": 17, "thickness_in": 0.5}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	d, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 165.0, d.ConcreteWeightLbs, 1e-9)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading design file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geometry: [1, 2"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "parsing design YAML")
}
