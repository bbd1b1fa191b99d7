package model

import (
	"fmt"
	"math"

	"github.com/blazarlab/sscsed/internal/constants"
)

// GammaToEnergy converts an electron Lorentz factor to its rest energy
// equivalent. [erg]
func GammaToEnergy(gamma float64) float64 {
	return gamma * constants.ElectronRestEnergy
}

// EnergyToGamma is the inverse of GammaToEnergy.
func EnergyToGamma(energy float64) float64 {
	return energy / constants.ElectronRestEnergy
}

// BrokenPowerLaw is the electron count spectrum N(gamma) of the blob:
// Norm * gamma^-Alpha1 on [GammaMin, GammaBreak], continuous at the break,
// Norm * GammaBreak^(Alpha2-Alpha1) * gamma^-Alpha2 on (GammaBreak, GammaMax],
// zero outside. Norm is the total count per unit gamma at gamma = 1.
type BrokenPowerLaw struct {
	GammaMin   float64
	GammaBreak float64
	GammaMax   float64
	Alpha1     float64
	Alpha2     float64
	Norm       float64
}

func NewBrokenPowerLaw(gammaMin, gammaBreak, gammaMax, alpha1, alpha2 float64) (BrokenPowerLaw, error) {
	if gammaMin <= 0 {
		return BrokenPowerLaw{}, fmt.Errorf("GammaMin must be strictly positive, got %v", gammaMin)
	}
	if gammaMin >= gammaBreak {
		return BrokenPowerLaw{}, fmt.Errorf("GammaMin (%v) must be below GammaBreak (%v)", gammaMin, gammaBreak)
	}
	if gammaBreak >= gammaMax {
		return BrokenPowerLaw{}, fmt.Errorf("GammaBreak (%v) must be below GammaMax (%v)", gammaBreak, gammaMax)
	}
	return BrokenPowerLaw{
		GammaMin:   gammaMin,
		GammaBreak: gammaBreak,
		GammaMax:   gammaMax,
		Alpha1:     alpha1,
		Alpha2:     alpha2,
		Norm:       1,
	}, nil
}

// Density returns N(gamma), the electron count per unit Lorentz factor.
func (d BrokenPowerLaw) Density(gamma float64) float64 {
	if gamma < d.GammaMin || gamma > d.GammaMax {
		return 0
	}
	if gamma <= d.GammaBreak {
		return d.Norm * math.Pow(gamma, -d.Alpha1)
	}
	return d.Norm * math.Pow(d.GammaBreak, d.Alpha2-d.Alpha1) * math.Pow(gamma, -d.Alpha2)
}

// powerLawIntegral is the closed form of the definite integral of x^index
// over [a, b], with the logarithmic index = -1 case handled.
func powerLawIntegral(a, b, index float64) float64 {
	if index == -1 {
		return math.Log(b / a)
	}
	p := index + 1
	return (math.Pow(b, p) - math.Pow(a, p)) / p
}

// TotalEnergy returns the integrated electron energy content
// of the population, sum over gamma of gamma*m_e*c^2*N(gamma). [erg]
func (d BrokenPowerLaw) TotalEnergy() float64 {
	low := powerLawIntegral(d.GammaMin, d.GammaBreak, 1-d.Alpha1)
	high := math.Pow(d.GammaBreak, d.Alpha2-d.Alpha1) * powerLawIntegral(d.GammaBreak, d.GammaMax, 1-d.Alpha2)
	return d.Norm * constants.ElectronRestEnergy * (low + high)
}

// TotalNumber returns the integrated electron count.
func (d BrokenPowerLaw) TotalNumber() float64 {
	low := powerLawIntegral(d.GammaMin, d.GammaBreak, -d.Alpha1)
	high := math.Pow(d.GammaBreak, d.Alpha2-d.Alpha1) * powerLawIntegral(d.GammaBreak, d.GammaMax, -d.Alpha2)
	return d.Norm * (low + high)
}

// NormalizeToEnergy rescales Norm so that TotalEnergy equals target. [erg]
// Only the overall scale changes; slopes, break and bounds are untouched.
func (d *BrokenPowerLaw) NormalizeToEnergy(target float64) {
	d.Norm *= target / d.TotalEnergy()
}
