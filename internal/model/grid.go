package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Frame tags the reference frame a photon energy grid lives in.
type Frame int

const (
	Observer Frame = iota
	Comoving
)

func (f Frame) String() string {
	if f == Comoving {
		return "comoving"
	}
	return "observer"
}

// EnergyGrid is a logarithmically spaced, monotonically increasing set of
// photon energies. [erg]
type EnergyGrid struct {
	Frame    Frame
	Energies []float64
}

// NewLogGrid builds an n-point log-spaced grid over [minEnergy, maxEnergy].
func NewLogGrid(minEnergy, maxEnergy float64, n int, frame Frame) EnergyGrid {
	return EnergyGrid{
		Frame:    frame,
		Energies: floats.LogSpan(make([]float64, n), minEnergy, maxEnergy),
	}
}

// ToComoving derives the comoving grid tied to an observer grid,
// E_comoving = E_observer / delta.
func (g EnergyGrid) ToComoving(delta float64) EnergyGrid {
	if g.Frame != Observer {
		panic("ToComoving called on a " + g.Frame.String() + " grid")
	}
	energies := make([]float64, len(g.Energies))
	for i, e := range g.Energies {
		energies[i] = e / delta
	}
	return EnergyGrid{Frame: Comoving, Energies: energies}
}

// SameAs reports whether two grids are interchangeable for elementwise
// arithmetic: same frame, same points.
func (g EnergyGrid) SameAs(other EnergyGrid) bool {
	if g.Frame != other.Frame || len(g.Energies) != len(other.Energies) {
		return false
	}
	for i := range g.Energies {
		if g.Energies[i] != other.Energies[i] {
			return false
		}
	}
	return true
}

// mustMatch guards elementwise operations over spectra.
func (g EnergyGrid) mustMatch(values []float64) {
	if len(values) != len(g.Energies) {
		panic(fmt.Sprintf("spectrum evaluated on a different grid: %d values for %d grid points", len(values), len(g.Energies)))
	}
}
