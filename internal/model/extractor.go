package model

import (
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"github.com/blazarlab/sscsed/internal/config"
	"github.com/blazarlab/sscsed/internal/constants"
	"github.com/blazarlab/sscsed/internal/utils"
)

// DataExtractor turns a finished Model run into the flag-selected CSV
// data products.
type DataExtractor struct {
	model *Model
}

func NewDataExtractor(model *Model) *DataExtractor {
	de := DataExtractor{model: model}
	if model.Parameters.Verbose() {
		peakE, peakF := model.Result.Peak()
		fmt.Printf("Observer-frame peak at %g eV: %g erg cm^-2 s^-1\n",
			peakE/constants.ElectronVolt, peakF)
	}
	return &de
}

func (de *DataExtractor) Save(modelName string, df DataFlags) {
	for name, output := range df.sequentials {
		if *output.saveFlag || *df.all {
			file, err := utils.OpenFile(de.model.Parameters.MakeDir, df.outputPath, output.fileSuffix, modelName)
			if err != nil {
				println("unable to save "+name+": ", err.Error())
				continue
			}
			rows := [][]string{output.columnNames}
			xColumnValues, yColumnValues := output.values(de)
			for x := range xColumnValues {
				row := []string{strconv.FormatFloat(config.CGS(xColumnValues[x], output.xUnit, de.model.Parameters.OutputUnits(), false), 'e', -1, 64)}
				for i := range yColumnValues[x] {
					row = append(row, strconv.FormatFloat(config.CGS(yColumnValues[x][i], output.yUnit, de.model.Parameters.OutputUnits(), false), 'e', -1, 64))
				}
				rows = append(rows, row)
			}
			w := csv.NewWriter(file)
			w.WriteAll(rows)
			if de.model.Parameters.Verbose() {
				println(name + " saved")
			}
			if err := w.Error(); err != nil {
				log.Fatalln("error writing csv:", err)
			}
			file.Close()
		}
	}
}
