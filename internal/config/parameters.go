package config

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/BurntSushi/toml"
)

type Config struct {
	OutputDir string
	Models    map[string]ModelParameters
	ModelParameters

	InputUnits  []string
	OutputUnits []string
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return config, meta, fmt.Errorf("unable to read config: %w", err)
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("input unit conflict: %v", unitsConflict)
	}
	if len(config.OutputUnits) == 0 {
		config.OutputUnits = config.InputUnits
	}
	config.OutputUnits, unitsConflict = checkUnits(config.OutputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("output unit conflict: %v", unitsConflict)
	}

	if len(config.Models) == 0 {
		return config, meta, fmt.Errorf("no models provided")
	}
	return config, meta, nil
}

type ModelParameters struct {
	LuminosityDistance    float64 // [Mpc]
	DopplerFactor         float64
	MagneticField         float64 // [G]
	BlobRadius            float64 // [cm]
	GammaMin              float64
	GammaBreak            float64
	GammaMax              float64
	Alpha1                float64
	Alpha2                float64
	ElectronEnergyDensity float64 // [erg cm^-3]

	GridMinEnergy float64 // [eV], observer frame
	GridMaxEnergy float64 // [eV], observer frame
	GridPoints    int

	DataPoints string // optional (nu [Hz], nuFnu) pairs to overlay on the plot
	MakeDir    bool

	_outputUnits []string
	_verbose     bool
}

func (p *ModelParameters) OutputUnits() []string {
	return p._outputUnits
}

func (p *ModelParameters) SetOutputUnits(u []string) {
	p._outputUnits = u
}

func (p *ModelParameters) Verbose() bool {
	return p._verbose
}

func (p *ModelParameters) SetVerbosity(verbose bool) {
	p._verbose = verbose
}

var defaultValues = map[string]any{ // in CGS
	"GridMinEnergy": 1.602176634e-22, // [erg] = 1e-10 eV
	"GridMaxEnergy": 1.602176634e8,   // [erg] = 1e20 eV
	"GridPoints":    500,
	"MakeDir":       true,
}

var defaultUnits = []string{"cm", "Mpc", "G", "eV"}

var requiredFields = []string{
	"LuminosityDistance",
	"DopplerFactor",
	"MagneticField",
	"BlobRadius",
	"GammaMin",
	"GammaBreak",
	"GammaMax",
	"Alpha1",
	"Alpha2",
	"ElectronEnergyDensity",
}

var valueUnits = map[string][]UnitElement{
	"LuminosityDistance": {
		{Class: Distance, Power: 1},
	},
	"BlobRadius": {
		{Class: Length, Power: 1},
	},
	"MagneticField": {
		{Class: MagneticField, Power: 1},
	},
	"GridMinEnergy": {
		{Class: Energy, Power: 1},
	},
	"GridMaxEnergy": {
		{Class: Energy, Power: 1},
	},
}

func (modelConfig *ModelParameters) toCGS(parameterNames, units []string) {
	modelConfigReflect := reflect.ValueOf(modelConfig).Elem()
	for name := range parameterNames {
		if modelConfigReflect.FieldByName(parameterNames[name]).CanFloat() {
			value := modelConfigReflect.FieldByName(parameterNames[name]).Float()
			value = CGS(value, valueUnits[parameterNames[name]], units, true)
			modelConfigReflect.FieldByName(parameterNames[name]).SetFloat(value)
		}
	}
}

/*
field value priority:
1. model section
2. global section
3. default
Values are converted to CGS right after loading; defaults are stored in CGS.
*/

func (modelConfig *ModelParameters) CheckAndUnify(modelName string, config *Config, meta *toml.MetaData) error {
	var discoveredParameters []string

	modelConfigReflect := reflect.ValueOf(modelConfig).Elem()
	modelConfigType := modelConfigReflect.Type()
	globalConfigReflect := reflect.ValueOf(&config.ModelParameters).Elem()
	for i := 0; i < modelConfigReflect.NumField(); i++ {
		fieldName := modelConfigType.Field(i).Name
		if meta.IsDefined("Models", modelName, fieldName) {
			discoveredParameters = append(discoveredParameters, fieldName)
		} else if meta.IsDefined(fieldName) {
			modelConfigReflect.Field(i).Set(globalConfigReflect.Field(i))
			discoveredParameters = append(discoveredParameters, fieldName)
		}
	}

	var missing []string
	for _, fieldName := range requiredFields {
		if !slices.Contains(discoveredParameters, fieldName) {
			missing = append(missing, fieldName)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("model %s lacks required parameters: %v", modelName, missing)
	}

	modelConfig.toCGS(discoveredParameters, config.InputUnits)

	for fieldName := range defaultValues {
		if !slices.Contains(discoveredParameters, fieldName) {
			modelConfigReflect.FieldByName(fieldName).Set(reflect.ValueOf(defaultValues[fieldName]))
		}
	}

	modelConfig._outputUnits = config.OutputUnits
	return modelConfig.Validate()
}

// Validate fails fast on invalid physical configuration, before any flux
// evaluation. The returned error names the violated constraint.
func (p *ModelParameters) Validate() error {
	positives := map[string]float64{
		"LuminosityDistance":    p.LuminosityDistance,
		"DopplerFactor":         p.DopplerFactor,
		"MagneticField":         p.MagneticField,
		"BlobRadius":            p.BlobRadius,
		"ElectronEnergyDensity": p.ElectronEnergyDensity,
		"GammaMin":              p.GammaMin,
	}
	for name, v := range positives {
		if v <= 0 {
			return fmt.Errorf("%s must be strictly positive, got %v", name, v)
		}
	}
	if p.GammaMin >= p.GammaBreak {
		return fmt.Errorf("GammaMin (%v) must be below GammaBreak (%v)", p.GammaMin, p.GammaBreak)
	}
	if p.GammaBreak >= p.GammaMax {
		return fmt.Errorf("GammaBreak (%v) must be below GammaMax (%v)", p.GammaBreak, p.GammaMax)
	}
	if p.GridPoints < 2 {
		return fmt.Errorf("GridPoints must be at least 2, got %d", p.GridPoints)
	}
	if p.GridMinEnergy <= 0 || p.GridMinEnergy >= p.GridMaxEnergy {
		return fmt.Errorf("grid energy bounds must satisfy 0 < GridMinEnergy < GridMaxEnergy, got [%v, %v]", p.GridMinEnergy, p.GridMaxEnergy)
	}
	return nil
}
