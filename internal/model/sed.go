package model

import (
	"math"

	"github.com/blazarlab/sscsed/internal/constants"
	"github.com/blazarlab/sscsed/internal/utils"
	"gonum.org/v1/gonum/integrate"
)

// SED is the assembled observer-frame spectral energy distribution:
// nuFnu per emission process plus their sum, on a shared grid.
// [erg cm^-2 s^-1]
type SED struct {
	Grid        EnergyGrid
	Synchrotron []float64
	Compton     []float64
	Total       []float64
}

// AssembleSED sums the synchrotron and inverse-Compton observer-frame
// spectra elementwise. Both must be evaluated on grids identical to grid;
// anything else is a programming error and panics.
func AssembleSED(grid EnergyGrid, synGrid EnergyGrid, syn []float64, icGrid EnergyGrid, ic []float64) SED {
	if grid.Frame != Observer {
		panic("SED assembled in the " + grid.Frame.String() + " frame")
	}
	if !grid.SameAs(synGrid) || !grid.SameAs(icGrid) {
		panic("component spectra evaluated on different grids")
	}
	grid.mustMatch(syn)
	grid.mustMatch(ic)
	total := make([]float64, len(syn))
	for i := range total {
		total[i] = syn[i] + ic[i]
	}
	return SED{Grid: grid, Synchrotron: syn, Compton: ic, Total: total}
}

// Peak returns the photon energy [erg] and nuFnu value of the SED maximum.
func (s SED) Peak() (energy, flux float64) {
	i := utils.Argmax(s.Total)
	return s.Grid.Energies[i], s.Total[i]
}

// IntegratedFlux is the trapezoid-integrated bolometric energy flux,
// integral of nuFnu dlnE. [erg cm^-2 s^-1]
func (s SED) IntegratedFlux() float64 {
	lnE := make([]float64, len(s.Grid.Energies))
	for i, e := range s.Grid.Energies {
		lnE[i] = math.Log(e)
	}
	return integrate.Trapezoidal(lnE, s.Total)
}

// FrequencyHz returns the grid mapped to frequency, nu = E / h.
func (s SED) FrequencyHz() []float64 {
	nu := make([]float64, len(s.Grid.Energies))
	for i, e := range s.Grid.Energies {
		nu[i] = e / constants.ElectronVolt / constants.PlanckEV
	}
	return nu
}
