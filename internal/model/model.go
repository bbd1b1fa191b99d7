package model

import (
	"fmt"
	"math"

	"github.com/blazarlab/sscsed/internal/config"
	"github.com/blazarlab/sscsed/internal/constants"
)

// Model drives one source through the pipeline: population construction
// and normalization, synchrotron evaluation, seed field derivation,
// inverse-Compton evaluation, Doppler boost of both components and the
// final sum. Stages run strictly in that order; each consumes the full
// output of its predecessor.
type Model struct {
	Parameters config.ModelParameters
	Electrons  BrokenPowerLaw

	ObserverGrid EnergyGrid
	ComovingGrid EnergyGrid

	// Kernels are injectable: tests substitute stubs for the default
	// monochromatic-approximation models.
	Syn            EmissivityModel
	ComptonFactory func(BrokenPowerLaw, []SeedPhotonField) EmissivityModel

	Seed   SeedPhotonField
	Result SED

	distance float64 // [cm]
	volume   float64 // [cm^3]
}

func NewModel(parameters config.ModelParameters) (*Model, error) {
	if err := parameters.Validate(); err != nil {
		return nil, err
	}
	electrons, err := NewBrokenPowerLaw(
		parameters.GammaMin, parameters.GammaBreak, parameters.GammaMax,
		parameters.Alpha1, parameters.Alpha2)
	if err != nil {
		return nil, err
	}

	m := Model{
		Parameters: parameters,
		Electrons:  electrons,
		distance:   parameters.LuminosityDistance,
		volume:     4. / 3. * math.Pi * math.Pow(parameters.BlobRadius, 3),
	}
	m.Electrons.NormalizeToEnergy(parameters.ElectronEnergyDensity * m.volume)

	m.ObserverGrid = NewLogGrid(parameters.GridMinEnergy, parameters.GridMaxEnergy, parameters.GridPoints, Observer)
	m.ComovingGrid = m.ObserverGrid.ToComoving(parameters.DopplerFactor)

	m.Syn = NewSynchrotron(m.Electrons, parameters.MagneticField)
	m.ComptonFactory = func(electrons BrokenPowerLaw, seeds []SeedPhotonField) EmissivityModel {
		return NewInverseCompton(electrons, seeds)
	}

	if parameters.Verbose() {
		fmt.Printf("Electron count: %.4g, total energy: %.4g erg\n", m.Electrons.TotalNumber(), m.Electrons.TotalEnergy())
	}
	return &m, nil
}

func (m *Model) Run() {
	delta := m.Parameters.DopplerFactor

	synLum := m.Syn.Luminosity(m.ComovingGrid)
	m.Seed = NewSynchrotronSeed("synchrotron", m.ComovingGrid, synLum, m.Parameters.BlobRadius)

	ic := m.ComptonFactory(m.Electrons, []SeedPhotonField{m.Seed})

	synFlux := m.Syn.Flux(m.ComovingGrid, m.distance)
	icFlux := ic.Flux(m.ComovingGrid, m.distance)

	synSED := nuFnu(m.ComovingGrid, synFlux)
	icSED := nuFnu(m.ComovingGrid, icFlux)

	synGrid, synObs := BoostToObserver(m.ComovingGrid, synSED, delta)
	icGrid, icObs := BoostToObserver(m.ComovingGrid, icSED, delta)

	m.Result = AssembleSED(synGrid, synGrid, synObs, icGrid, icObs)

	if m.Parameters.Verbose() {
		peakE, peakF := m.Result.Peak()
		fmt.Printf("SED peak: %.4g eV, %.4g erg cm^-2 s^-1; integrated flux: %.4g erg cm^-2 s^-1\n",
			peakE/constants.ElectronVolt, peakF, m.Result.IntegratedFlux())
	}
}

// nuFnu converts a differential photon flux [photons s^-1 erg^-1 cm^-2]
// to the SED form E^2 F(E). [erg cm^-2 s^-1]
func nuFnu(grid EnergyGrid, flux []float64) []float64 {
	grid.mustMatch(flux)
	sed := make([]float64, len(flux))
	for i, e := range grid.Energies {
		sed[i] = e * e * flux[i]
	}
	return sed
}
