package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazarlab/sscsed/internal/config"
	"github.com/blazarlab/sscsed/internal/constants"
	"github.com/blazarlab/sscsed/internal/utils"
)

// Mrk-421-like parameters, in CGS.
func mrk421Parameters() config.ModelParameters {
	return config.ModelParameters{
		LuminosityDistance:    136 * constants.Megaparsec,
		DopplerFactor:         25,
		MagneticField:         6.1e-2,
		BlobRadius:            1e16,
		GammaMin:              1e3,
		GammaBreak:            2.1e5,
		GammaMax:              1.5e6,
		Alpha1:                2.2,
		Alpha2:                3.8,
		ElectronEnergyDensity: 1.1e-2,
		GridMinEnergy:         1e-10 * constants.ElectronVolt,
		GridMaxEnergy:         1e20 * constants.ElectronVolt,
		GridPoints:            500,
	}
}

func nearestIndex(grid EnergyGrid, energyEV float64) int {
	target := energyEV * constants.ElectronVolt
	best, bestDist := 0, math.Inf(1)
	for i, e := range grid.Energies {
		d := math.Abs(math.Log(e / target))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func TestModelRejectsInvalidConfiguration(t *testing.T) {
	p := mrk421Parameters()
	p.GammaBreak = 5e2 // below GammaMin
	_, err := NewModel(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GammaMin")

	p = mrk421Parameters()
	p.BlobRadius = -1e16
	_, err = NewModel(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BlobRadius")
}

func TestModelNormalizesToEnergyDensity(t *testing.T) {
	p := mrk421Parameters()
	m, err := NewModel(p)
	require.NoError(t, err)

	volume := 4. / 3. * math.Pi * math.Pow(p.BlobRadius, 3)
	require.InEpsilon(t, p.ElectronEnergyDensity*volume, m.Electrons.TotalEnergy(), 1e-9)
}

func TestEndToEndTwoBumpSED(t *testing.T) {
	m, err := NewModel(mrk421Parameters())
	require.NoError(t, err)
	m.Run()

	sed := m.Result
	require.Equal(t, Observer, sed.Grid.Frame)
	require.Len(t, sed.Total, 500)
	for _, v := range sed.Total {
		require.False(t, math.IsNaN(v))
	}

	// peak within the displayed flux range
	_, peak := sed.Peak()
	assert.Greater(t, peak, 8e-15)
	assert.Less(t, peak, 8e-10)

	// synchrotron dominates the low-energy bump
	optical := nearestIndex(sed.Grid, 1)
	assert.Greater(t, sed.Synchrotron[optical], sed.Compton[optical])
	assert.Positive(t, sed.Synchrotron[optical])

	// inverse Compton dominates the high-energy bump
	vhe := nearestIndex(sed.Grid, 1e11)
	assert.Greater(t, sed.Compton[vhe], sed.Synchrotron[vhe])
	assert.Positive(t, sed.Compton[vhe])

	// the two component peaks are well separated in energy
	synPeakE := sed.Grid.Energies[utils.Argmax(sed.Synchrotron)]
	icPeakE := sed.Grid.Energies[utils.Argmax(sed.Compton)]
	assert.Greater(t, icPeakE, 1e3*synPeakE)

	// flux vanishes at the non-physical grid extremes
	assert.Zero(t, sed.Total[0])
	assert.Zero(t, sed.Total[len(sed.Total)-1])
}

type stubEmissivity struct {
	level float64
}

func (s stubEmissivity) Luminosity(grid EnergyGrid) []float64 {
	l := make([]float64, len(grid.Energies))
	for i := range l {
		l[i] = s.level
	}
	return l
}

func (s stubEmissivity) Flux(grid EnergyGrid, distance float64) []float64 {
	f := s.Luminosity(grid)
	geom := 4 * math.Pi * distance * distance
	for i := range f {
		f[i] /= geom
	}
	return f
}

// The kernels are injectable so the pipeline can be exercised without the
// default physics.
func TestKernelInjection(t *testing.T) {
	p := mrk421Parameters()
	m, err := NewModel(p)
	require.NoError(t, err)

	m.Syn = stubEmissivity{level: 1e40}
	m.ComptonFactory = func(_ BrokenPowerLaw, seeds []SeedPhotonField) EmissivityModel {
		require.Len(t, seeds, 1)
		require.Equal(t, "synchrotron", seeds[0].Name)
		return stubEmissivity{}
	}
	m.Run()

	geom := 4 * math.Pi * p.LuminosityDistance * p.LuminosityDistance
	d4 := math.Pow(p.DopplerFactor, 4)
	for i, eObs := range m.Result.Grid.Energies {
		eCom := eObs / p.DopplerFactor
		expected := d4 * eCom * eCom * 1e40 / geom
		require.InEpsilon(t, expected, m.Result.Synchrotron[i], 1e-9)
		require.Zero(t, m.Result.Compton[i])
		require.InEpsilon(t, expected, m.Result.Total[i], 1e-9)
	}

	// the seed field fed to the Compton factory came from the stub
	require.InEpsilon(t,
		constants.SphereDilution*m.ComovingGrid.Energies[0]*m.ComovingGrid.Energies[0]*1e40/
			(4*math.Pi*p.BlobRadius*p.BlobRadius*constants.LightSpeed),
		m.Seed.Density[0], 1e-9)
}
