package load

import (
	"encoding/json"

	"github.com/alexiusacademia/canoecalc/internal/physics"
)

// BendingStress returns σ = M/S (psi). The moment is given in lb·ft and
// converted to lb·in. A non-positive modulus returns 0.
func BendingStress(momentLbFt, sectionModulusIn3 float64) float64 {
	if sectionModulusIn3 <= 0 {
		return 0
	}
	return momentLbFt * physics.InchesPerFoot / sectionModulusIn3
}

// SafetyFactor returns strength over stress. Zero or negative stress
// returns 0, meaning no meaningful stress rather than infinite safety.
func SafetyFactor(strengthPSI, stressPSI float64) float64 {
	if stressPSI <= 0 {
		return 0
	}
	return strengthPSI / stressPSI
}

// Result holds the structural check
type Result struct {
	MaxBendingMomentLbFt float64 `json:"max_bending_moment_lb_ft"`
	BendingStressPSI     float64 `json:"bending_stress_psi"`
	SectionModulusIn3    float64 `json:"section_modulus_in3"`
	SafetyFactor         float64 `json:"safety_factor"`
	FlexuralStrengthPSI  float64 `json:"flexural_strength_psi"`
	Pass                 bool    `json:"pass"`
	MinSF                float64 `json:"min_sf"`
}

// IsAdequate returns Pass. Kept for consumers that read is_adequate.
func (r Result) IsAdequate() bool {
	return r.Pass
}

// Check computes stress and safety factor for a moment on a section and
// compares the safety factor with minSF.
func Check(momentLbFt, sectionModulusIn3, strengthPSI, minSF float64) Result {
	sigma := BendingStress(momentLbFt, sectionModulusIn3)
	sf := SafetyFactor(strengthPSI, sigma)
	return Result{
		MaxBendingMomentLbFt: momentLbFt,
		BendingStressPSI:     sigma,
		SectionModulusIn3:    sectionModulusIn3,
		SafetyFactor:         sf,
		FlexuralStrengthPSI:  strengthPSI,
		Pass:                 sf >= minSF,
		MinSF:                minSF,
	}
}

// MarshalJSON writes the result with the is_adequate alias key alongside pass.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		IsAdequate bool `json:"is_adequate"`
	}{plain(r), r.Pass})
}
