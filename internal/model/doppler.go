package model

// BoostToObserver maps a comoving-frame nuFnu spectrum to the observer
// frame: E_obs = delta * E', nuFnu_obs(E_obs) = delta^4 * nuFnu'(E').
// No other relativistic transformation is modelled.
func BoostToObserver(grid EnergyGrid, nuFnu []float64, delta float64) (EnergyGrid, []float64) {
	if grid.Frame != Comoving {
		panic("BoostToObserver called on a " + grid.Frame.String() + " spectrum")
	}
	grid.mustMatch(nuFnu)
	d4 := delta * delta * delta * delta
	energies := make([]float64, len(grid.Energies))
	boosted := make([]float64, len(nuFnu))
	for i := range nuFnu {
		energies[i] = grid.Energies[i] * delta
		boosted[i] = nuFnu[i] * d4
	}
	return EnergyGrid{Frame: Observer, Energies: energies}, boosted
}

// DeboostToComoving is the exact inverse of BoostToObserver.
func DeboostToComoving(grid EnergyGrid, nuFnu []float64, delta float64) (EnergyGrid, []float64) {
	if grid.Frame != Observer {
		panic("DeboostToComoving called on a " + grid.Frame.String() + " spectrum")
	}
	grid.mustMatch(nuFnu)
	d4 := delta * delta * delta * delta
	energies := make([]float64, len(grid.Energies))
	deboosted := make([]float64, len(nuFnu))
	for i := range nuFnu {
		energies[i] = grid.Energies[i] / delta
		deboosted[i] = nuFnu[i] / d4
	}
	return EnergyGrid{Frame: Comoving, Energies: energies}, deboosted
}
