package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/traworker/internal/domain"
)

// Convert turns a scenario file into a domain scenario. All validation
// errors are joined into the returned error.
func Convert(sf *ScenarioFile) (domain.Scenario, error) {
	s, errs := parseScenario(sf)
	if len(errs) > 0 {
		return domain.Scenario{}, fmt.Errorf("invalid scenario %q: %w", sf.SubstanceName, errors.Join(errs...))
	}
	return s, nil
}

// LoadScenario reads, validates and converts one scenario file.
func LoadScenario(path string) (domain.Scenario, error) {
	sf, err := LoadScenarioFile(path)
	if err != nil {
		return domain.Scenario{}, err
	}
	s, err := Convert(sf)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ExampleScenario is a worked example: ethanol handled as an industrial
// spraying task with no controls.
func ExampleScenario() *ScenarioFile {
	f := func(v float64) *float64 { return &v }
	return &ScenarioFile{
		SubstanceName:  "ethanol",
		CASNumber:      "64-17-5",
		MolWeight:      f(46.069),
		VapourPressure: f(7832.4225),
		Limits: LimitsImport{
			LongTermInhalation:  f(10),
			LongTermDermal:      f(10),
			ShortTermInhalation: f(10),
			LocalDermal:         f(10),
		},
		Proc:          "PROC7",
		Population:    "ind",
		PhysicalState: "liquid",
		Fugacity:      "very low",
		Ventilation:   "indoors - no or basic ventilation",
		Duration:      ">4hr",
		Concentration: ">25%",
		LEVInhalation: "no",
		RPE:           "no RPE",
		PPE:           "no PPE",
		LEVDermal:     "no",
	}
}
