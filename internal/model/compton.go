package model

import (
	"math"

	"github.com/blazarlab/sscsed/internal/constants"
)

// SeedPhotonField is a target photon bath for inverse-Compton scattering.
// Density holds the spectral photon energy density E^2 n(E) on Grid.
// [erg cm^-3]
type SeedPhotonField struct {
	Name    string
	Grid    EnergyGrid
	Density []float64
}

// NewSynchrotronSeed converts a comoving synchrotron photon luminosity
// spectrum into the photon bath filling a uniform sphere of the given
// radius:
//
//	phn(E) = 2.24 * E^2 * Lsy(E) / (4 pi R^2 c)
//
// The 2.24 factor is the fixed geometric dilution of a uniform
// isotropically radiating sphere and is preserved exactly.
func NewSynchrotronSeed(name string, grid EnergyGrid, lsy []float64, radius float64) SeedPhotonField {
	grid.mustMatch(lsy)
	density := make([]float64, len(lsy))
	geom := 4 * math.Pi * radius * radius * constants.LightSpeed
	for i, e := range grid.Energies {
		density[i] = constants.SphereDilution * e * e * lsy[i] / geom
	}
	return SeedPhotonField{Name: name, Grid: grid, Density: density}
}

// InverseCompton is the default inverse-Compton kernel: a per-seed-bin
// monochromatic Thomson kernel, eps_out = (4/3) gamma^2 eps_s, with the
// single-electron power (4/3) c sigma_T u_s gamma^2 suppressed by the
// Klein-Nishina factor 1/(1 + 4 gamma eps_s / m_e c^2).
type InverseCompton struct {
	Electrons BrokenPowerLaw
	Seeds     []SeedPhotonField
}

func NewInverseCompton(electrons BrokenPowerLaw, seeds []SeedPhotonField) *InverseCompton {
	return &InverseCompton{Electrons: electrons, Seeds: seeds}
}

func (c *InverseCompton) Luminosity(grid EnergyGrid) []float64 {
	l := make([]float64, len(grid.Energies))
	pCoeff := 4. / 3. * constants.LightSpeed * constants.ThomsonCrossSection
	for _, seed := range c.Seeds {
		for j, epsSeed := range seed.Grid.Energies {
			if seed.Density[j] == 0 {
				continue
			}
			// photon energy density of the bin: u = E^2 n(E) dE / E
			uBin := seed.Density[j] * binWidth(seed.Grid.Energies, j) / epsSeed
			epsChar := 4. / 3. * epsSeed
			for i, epsOut := range grid.Energies {
				gamma := math.Sqrt(epsOut / epsChar)
				n := c.Electrons.Density(gamma)
				if n == 0 {
					continue
				}
				kn := 1. / (1. + 4.*gamma*epsSeed/constants.ElectronRestEnergy)
				power := pCoeff * uBin * gamma * gamma * kn
				dGammadEps := 1. / (2. * math.Sqrt(epsOut*epsChar))
				l[i] += n * power * dGammadEps / epsOut
			}
		}
	}
	return l
}

func (c *InverseCompton) Flux(grid EnergyGrid, distance float64) []float64 {
	f := c.Luminosity(grid)
	geom := 4 * math.Pi * distance * distance
	for i := range f {
		f[i] /= geom
	}
	return f
}

// binWidth is the local grid spacing around point j, from midpoints of the
// neighbouring intervals.
func binWidth(energies []float64, j int) float64 {
	switch {
	case len(energies) < 2:
		return 0
	case j == 0:
		return energies[1] - energies[0]
	case j == len(energies)-1:
		return energies[j] - energies[j-1]
	default:
		return (energies[j+1] - energies[j-1]) / 2
	}
}
