package config

import "github.com/blazarlab/sscsed/internal/utils"

var unitToCGS = map[string]float64{
	"cm":  1,          // [cm]
	"m":   1e2,        // [cm]
	"km":  1e5,        // [cm]
	"pc":  3.0856775814913673e18, // [cm]
	"kpc": 3.0856775814913673e21, // [cm]
	"Mpc": 3.0856775814913673e24, // [cm]
	"G":   1,          // [G]
	"mG":  1e-3,       // [G]
	"uG":  1e-6,       // [G]
	"T":   1e4,        // [G]
	"erg": 1,          // [erg]
	"eV":  1.602176634e-12, // [erg]
	"keV": 1.602176634e-9,  // [erg]
	"MeV": 1.602176634e-6,  // [erg]
	"GeV": 1.602176634e-3,  // [erg]
	"TeV": 1.602176634,     // [erg]
}

type UnitClass int

const (
	Length UnitClass = iota
	Distance
	MagneticField
	Energy
)

var unitsInClass = map[UnitClass][]string{
	Length:        {"cm", "m", "km"},
	Distance:      {"pc", "kpc", "Mpc"},
	MagneticField: {"uG", "mG", "G", "T"},
	Energy:        {"eV", "keV", "MeV", "GeV", "TeV", "erg"},
}

var classesOfUnits = map[string]UnitClass{
	"cm":  Length,
	"m":   Length,
	"km":  Length,
	"pc":  Distance,
	"kpc": Distance,
	"Mpc": Distance,
	"G":   MagneticField,
	"mG":  MagneticField,
	"uG":  MagneticField,
	"T":   MagneticField,
	"erg": Energy,
	"eV":  Energy,
	"keV": Energy,
	"MeV": Energy,
	"GeV": Energy,
	"TeV": Energy,
}

type UnitElement = struct {
	Class UnitClass
	Power int
}

func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		if _, some := classes[classesOfUnits[unit]]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[classesOfUnits[unit]] = struct{}{}
		}
	}
	extended = units
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// CGS converts v between the listed units and the internal CGS system.
// direct: units -> CGS; otherwise CGS -> units.
func CGS(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		if unit == nil {
			continue
		}
		absPower := utils.IntAbs(uc.Power)
		if direct == (uc.Power > 0) {
			for i := 0; i < absPower; i++ {
				v *= unitToCGS[*unit]
			}
		} else {
			for i := 0; i < absPower; i++ {
				v /= unitToCGS[*unit]
			}
		}
	}
	return v
}
