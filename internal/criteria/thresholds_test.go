package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, Thresholds{MinFreeboardIn: 4.0, MinGMIn: 0.5, MinSafetyFactor: 1.5}, Orchestrator())
	assert.Equal(t, Thresholds{MinFreeboardIn: 6.0, MinGMIn: 6.0, MinSafetyFactor: 2.0}, Verification())
}

func TestPreset(t *testing.T) {
	th, err := Preset("verification")
	require.NoError(t, err)
	assert.Equal(t, Verification(), th)

	_, err = Preset("lenient")
	assert.ErrorContains(t, err, `unknown threshold preset "lenient"`)

	assert.Equal(t, []string{"orchestrator", "verification"}, PresetNames())
}
