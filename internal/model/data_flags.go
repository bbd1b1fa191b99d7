package model

import (
	"flag"

	"github.com/blazarlab/sscsed/internal/config"
	"gonum.org/v1/gonum/floats"
)

type DataItem struct {
	saveFlag   *bool
	fileSuffix string
}

type SequentialDataItem struct {
	DataItem
	columnNames []string
	values      func(*DataExtractor) (args []float64, values [][]float64)
	xUnit       []config.UnitElement
	yUnit       []config.UnitElement
}

type DataFlags struct {
	all         *bool
	sequentials map[string]SequentialDataItem
	outputPath  string
}

func NewDataFlags() DataFlags {
	return DataFlags{
		all: flag.Bool("all", false, "save every available data product"),
		sequentials: map[string]SequentialDataItem{
			"SED": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("sed", true, "save the observer-frame SED over frequency"),
					fileSuffix: "sed",
				},
				columnNames: []string{"nu (Hz)", "total nuFnu (erg cm^-2 s^-1)", "synchrotron", "inverse Compton"},
				values: func(de *DataExtractor) (args []float64, values [][]float64) {
					args = de.model.Result.FrequencyHz()
					for i := range args {
						values = append(values, []float64{
							de.model.Result.Total[i],
							de.model.Result.Synchrotron[i],
							de.model.Result.Compton[i],
						})
					}
					return args, values
				},
				xUnit: []config.UnitElement{},
				yUnit: []config.UnitElement{},
			},
			"SED by photon energy": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("sede", false, "save the observer-frame SED over photon energy"),
					fileSuffix: "sed_energy",
				},
				columnNames: []string{"E", "total nuFnu (erg cm^-2 s^-1)"},
				values: func(de *DataExtractor) (args []float64, values [][]float64) {
					args = append(args, de.model.Result.Grid.Energies...)
					for i := range args {
						values = append(values, []float64{de.model.Result.Total[i]})
					}
					return args, values
				},
				xUnit: []config.UnitElement{{Class: config.Energy, Power: 1}},
				yUnit: []config.UnitElement{},
			},
			"Electron spectrum": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("ne", false, "save the electron spectrum N(gamma)"),
					fileSuffix: "ne",
				},
				columnNames: []string{"gamma", "N (gamma^-1)"},
				values: func(de *DataExtractor) (args []float64, values [][]float64) {
					args = logRange(de.model.Electrons.GammaMin, de.model.Electrons.GammaMax, 200)
					for _, gamma := range args {
						values = append(values, []float64{de.model.Electrons.Density(gamma)})
					}
					return args, values
				},
				xUnit: []config.UnitElement{},
				yUnit: []config.UnitElement{},
			},
			"Seed photon density": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("seed", false, "save the comoving seed photon density"),
					fileSuffix: "seed",
				},
				columnNames: []string{"E", "E^2 n (erg cm^-3)"},
				values: func(de *DataExtractor) (args []float64, values [][]float64) {
					args = append(args, de.model.Seed.Grid.Energies...)
					for i := range args {
						values = append(values, []float64{de.model.Seed.Density[i]})
					}
					return args, values
				},
				xUnit: []config.UnitElement{{Class: config.Energy, Power: 1}},
				yUnit: []config.UnitElement{},
			},
			"Comoving luminosity": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("lum", false, "save the comoving synchrotron photon luminosity"),
					fileSuffix: "lsy",
				},
				columnNames: []string{"E", "L (photons s^-1 erg^-1)"},
				values: func(de *DataExtractor) (args []float64, values [][]float64) {
					lum := de.model.Syn.Luminosity(de.model.ComovingGrid)
					args = append(args, de.model.ComovingGrid.Energies...)
					for i := range args {
						values = append(values, []float64{lum[i]})
					}
					return args, values
				},
				xUnit: []config.UnitElement{{Class: config.Energy, Power: 1}},
				yUnit: []config.UnitElement{},
			},
		},
	}
}

func (df *DataFlags) SetOutputPath(path string) {
	if path != "" && path[len(path)-1] != '/' {
		df.outputPath = path + "/"
	} else {
		df.outputPath = path
	}
}

func (df *DataFlags) GetOutputPath() string {
	return df.outputPath
}

func logRange(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}
