package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/facette/natsort"

	"github.com/blazarlab/sscsed/internal/config"
	"github.com/blazarlab/sscsed/internal/constants"
	"github.com/blazarlab/sscsed/internal/model"
	"github.com/blazarlab/sscsed/internal/output"
	"github.com/blazarlab/sscsed/internal/utils"
)

func main() {
	dataFlags := model.NewDataFlags()
	configFileNamePointer := flag.String("input", "mrk421", "model configuration in toml format")
	plotFlag := flag.Bool("plot", false, "render the SED figure")
	summaryFlag := flag.Bool("summary", false, "save per-model peak and integrated flux summary")
	verbose := flag.Bool("verbose", false, "print pipeline diagnostics")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")

	cfg, meta, err := config.LoadConfig(configFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath += cfg.OutputDir + "/"
	}
	dataFlags.SetOutputPath(outputPath)

	modelNames := make([]string, 0, len(cfg.Models))
	for modelName := range cfg.Models {
		modelNames = append(modelNames, modelName)
	}
	natsort.Sort(modelNames)

	var summary utils.CSV
	for _, modelName := range modelNames {
		fmt.Println("\n" + modelName)
		parameters := cfg.Models[modelName]
		parameters.SetVerbosity(*verbose)
		if err := parameters.CheckAndUnify(modelName, &cfg, &meta); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		m, err := model.NewModel(parameters)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		m.Run()

		extractor := model.NewDataExtractor(m)
		extractor.Save(modelName, dataFlags)

		if *plotFlag {
			var overlay [][]float64
			if parameters.DataPoints != "" {
				overlay, err = utils.ReadFloatPairs(parameters.DataPoints)
				if err != nil {
					fmt.Fprintf(os.Stderr, "data points for %s: %v\n", modelName, err)
				}
			}
			if err := output.RenderSED(m.Result, overlay, modelName, outputPath+modelName+"_sed.png"); err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Println("figure saved")
			}
		}

		if *summaryFlag {
			peakE, peakF := m.Result.Peak()
			summary = append(summary, []string{
				modelName,
				strconv.FormatFloat(peakE/constants.ElectronVolt, 'e', 6, 64),
				strconv.FormatFloat(peakF, 'e', 6, 64),
				strconv.FormatFloat(m.Result.IntegratedFlux(), 'e', 6, 64),
			})
		}
	}

	if *summaryFlag && len(summary) > 0 {
		columns := []string{"model", "peak E (eV)", "peak nuFnu (erg cm^-2 s^-1)", "integrated flux (erg cm^-2 s^-1)"}
		if err := utils.WriteAsCSV(summary, false, outputPath, "summary", utils.GetFilename(configFileName), columns); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}
