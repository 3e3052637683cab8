package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/canoecalc/internal/analysis"
)

func TestCrewAccounting(t *testing.T) {
	crew, err := crewAccounting("", 0)
	require.NoError(t, err)
	assert.Equal(t, analysis.CrewSeparate, crew, "no crew, either mode is equivalent")

	_, err = crewAccounting("", 360)
	assert.ErrorIs(t, err, analysis.ErrCrewAccountingUnset)

	crew, err = crewAccounting("included", 360)
	require.NoError(t, err)
	assert.Equal(t, analysis.CrewIncluded, crew)
}
