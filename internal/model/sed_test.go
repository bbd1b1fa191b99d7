package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazarlab/sscsed/internal/constants"
)

func TestAssembleSEDSums(t *testing.T) {
	grid := NewLogGrid(1e-12, 1e-3, 20, Observer)
	syn := make([]float64, 20)
	ic := make([]float64, 20)
	for i := range syn {
		syn[i] = float64(i)
		ic[i] = 2 * float64(i)
	}
	sed := AssembleSED(grid, grid, syn, grid, ic)
	for i := range sed.Total {
		require.Equal(t, 3*float64(i), sed.Total[i])
	}
}

func TestAssembleSEDRejectsMismatch(t *testing.T) {
	grid := NewLogGrid(1e-12, 1e-3, 20, Observer)
	other := NewLogGrid(1e-11, 1e-3, 20, Observer)
	comoving := NewLogGrid(1e-12, 1e-3, 20, Comoving)
	values := make([]float64, 20)

	assert.Panics(t, func() { AssembleSED(grid, other, values, grid, values) })
	assert.Panics(t, func() { AssembleSED(grid, grid, values, other, values) })
	assert.Panics(t, func() { AssembleSED(grid, grid, values[:10], grid, values) })
	assert.Panics(t, func() { AssembleSED(comoving, comoving, values, comoving, values) })
}

func TestSEDPeak(t *testing.T) {
	grid := NewLogGrid(1e-12, 1e-3, 5, Observer)
	syn := []float64{1, 5, 2, 0, 0}
	ic := []float64{0, 0, 0, 3, 1}
	sed := AssembleSED(grid, grid, syn, grid, ic)
	e, f := sed.Peak()
	require.Equal(t, 5., f)
	require.Equal(t, grid.Energies[1], e)
}

func TestFrequencyConversion(t *testing.T) {
	// E[eV] = 4.1357e-15 * nu[Hz]
	grid := EnergyGrid{Frame: Observer, Energies: []float64{constants.ElectronVolt}}
	sed := SED{Grid: grid, Total: []float64{1}}
	nu := sed.FrequencyHz()
	require.InEpsilon(t, 1/4.135667696e-15, nu[0], 1e-9)
}

func TestIntegratedFluxOfFlatSED(t *testing.T) {
	// nuFnu constant over n decades integrates to nuFnu * n * ln(10)
	grid := NewLogGrid(1, 1e4, 500, Observer)
	flat := make([]float64, 500)
	for i := range flat {
		flat[i] = 2.5
	}
	sed := SED{Grid: grid, Total: flat}
	require.InEpsilon(t, 2.5*4*2.302585092994046, sed.IntegratedFlux(), 1e-9)
}
