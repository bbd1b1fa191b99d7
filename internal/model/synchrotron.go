package model

import (
	"math"

	"github.com/blazarlab/sscsed/internal/constants"
)

// EmissivityModel is the contract between the pipeline and an emission
// kernel. Both methods evaluate the comoving-frame differential photon
// spectrum on the given grid; Luminosity returns [photons s^-1 erg^-1],
// Flux divides by 4 pi d^2 for a source at distance d [cm]. The two are
// separate named modes: no zero-distance sentinel exists.
type EmissivityModel interface {
	Luminosity(grid EnergyGrid) []float64
	Flux(grid EnergyGrid, distance float64) []float64
}

// Synchrotron is the default synchrotron kernel: the monochromatic
// approximation, where an electron of Lorentz factor gamma radiates all
// its synchrotron power (4/3) c sigma_T U_B gamma^2 at the single energy
// eps(gamma) = gamma^2 (B/B_cr) m_e c^2.
type Synchrotron struct {
	Electrons BrokenPowerLaw
	B         float64 // [G]

	epsB   float64 // [erg] characteristic energy at gamma = 1
	uB     float64 // [erg cm^-3] magnetic energy density
	pCoeff float64 // [erg s^-1] single-electron power at gamma = 1
}

func NewSynchrotron(electrons BrokenPowerLaw, b float64) *Synchrotron {
	uB := b * b / (8 * math.Pi)
	return &Synchrotron{
		Electrons: electrons,
		B:         b,
		epsB:      b / constants.CriticalField * constants.ElectronRestEnergy,
		uB:        uB,
		pCoeff:    4. / 3. * constants.LightSpeed * constants.ThomsonCrossSection * uB,
	}
}

// Luminosity evaluates the comoving differential photon luminosity.
// L(eps) = N(gamma) P(gamma) (dgamma/deps) / eps with gamma = sqrt(eps/epsB).
func (s *Synchrotron) Luminosity(grid EnergyGrid) []float64 {
	l := make([]float64, len(grid.Energies))
	for i, eps := range grid.Energies {
		gamma := math.Sqrt(eps / s.epsB)
		n := s.Electrons.Density(gamma)
		if n == 0 {
			continue
		}
		power := s.pCoeff * gamma * gamma
		dGammadEps := 1. / (2. * math.Sqrt(eps*s.epsB))
		l[i] = n * power * dGammadEps / eps
	}
	return l
}

func (s *Synchrotron) Flux(grid EnergyGrid, distance float64) []float64 {
	f := s.Luminosity(grid)
	geom := 4 * math.Pi * distance * distance
	for i := range f {
		f[i] /= geom
	}
	return f
}
