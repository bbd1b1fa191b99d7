package constants

const LightSpeed float64 = 2.99792458e10              // [cm s^-1]
const ElectronMass float64 = 9.1093837015e-28         // [g]
const ElectronRestEnergy float64 = 8.18710565e-7      // [erg] = m_e c^2
const ElectronVolt float64 = 1.602176634e-12          // [erg]
const PlanckEV float64 = 4.135667696e-15              // [eV s]
const ThomsonCrossSection float64 = 6.6524587321e-25  // [cm^2]
const CriticalField float64 = 4.41400521e13           // [G] = m_e^2 c^3 / (e hbar)
const Megaparsec float64 = 3.0856775814913673e24      // [cm]

// SphereDilution corrects the photon density of a uniform isotropically
// radiating sphere for chords shorter than the diameter. Fixed published
// value, not re-derived here.
const SphereDilution = 2.24
