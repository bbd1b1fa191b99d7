package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoostScaling(t *testing.T) {
	grid := EnergyGrid{Frame: Comoving, Energies: []float64{2e-9}}
	obsGrid, obs := BoostToObserver(grid, []float64{3e-11}, 10)
	require.Equal(t, Observer, obsGrid.Frame)
	require.InEpsilon(t, 2e-8, obsGrid.Energies[0], 1e-12)
	require.InEpsilon(t, 3e-11*1e4, obs[0], 1e-12)
}

func TestBoostRoundTrip(t *testing.T) {
	grid := NewLogGrid(1e-15, 1e-3, 200, Comoving)
	spectrum := make([]float64, len(grid.Energies))
	for i, e := range grid.Energies {
		spectrum[i] = 1e-11 * e / (e + 1e-9) // arbitrary smooth shape
	}

	for _, delta := range []float64{1.5, 25, 100} {
		obsGrid, obs := BoostToObserver(grid, spectrum, delta)
		backGrid, back := DeboostToComoving(obsGrid, obs, delta)
		require.Equal(t, Comoving, backGrid.Frame)
		for i := range spectrum {
			require.InEpsilon(t, grid.Energies[i], backGrid.Energies[i], 1e-12)
			require.InEpsilon(t, spectrum[i], back[i], 1e-12)
		}
	}
}

func TestBoostFrameGuards(t *testing.T) {
	obs := NewLogGrid(1e-15, 1e-3, 10, Observer)
	com := NewLogGrid(1e-15, 1e-3, 10, Comoving)
	values := make([]float64, 10)

	assert.Panics(t, func() { BoostToObserver(obs, values, 25) })
	assert.Panics(t, func() { DeboostToComoving(com, values, 25) })
	assert.Panics(t, func() { BoostToObserver(com, values[:5], 25) })
}
