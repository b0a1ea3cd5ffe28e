package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/traworker/internal/domain"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is the on-disk shape of one scenario. Categorical fields are
// kept as written so validation can report every problem at once.
type ScenarioFile struct {
	SubstanceName  string       `json:"substance_name" yaml:"substance_name" toml:"substance_name"`
	CASNumber      string       `json:"cas_number,omitempty" yaml:"cas_number,omitempty" toml:"cas_number,omitempty"`
	MolWeight      *float64     `json:"mol_weight,omitempty" yaml:"mol_weight,omitempty" toml:"mol_weight,omitempty"`
	VapourPressure *float64     `json:"vapour_pressure,omitempty" yaml:"vapour_pressure,omitempty" toml:"vapour_pressure,omitempty"`
	Limits         LimitsImport `json:"limits" yaml:"limits" toml:"limits"`

	Proc          string `json:"proc" yaml:"proc" toml:"proc"`
	Population    string `json:"population" yaml:"population" toml:"population"`
	PhysicalState string `json:"physical_state" yaml:"physical_state" toml:"physical_state"`
	Fugacity      string `json:"fugacity,omitempty" yaml:"fugacity,omitempty" toml:"fugacity,omitempty"`
	Ventilation   string `json:"ventilation" yaml:"ventilation" toml:"ventilation"`
	Duration      string `json:"duration" yaml:"duration" toml:"duration"`
	Concentration string `json:"concentration" yaml:"concentration" toml:"concentration"`
	LEVInhalation Switch `json:"lev_inhalation,omitempty" yaml:"lev_inhalation,omitempty" toml:"lev_inhalation,omitempty"`
	RPE           string `json:"rpe,omitempty" yaml:"rpe,omitempty" toml:"rpe,omitempty"`
	PPE           string `json:"ppe,omitempty" yaml:"ppe,omitempty" toml:"ppe,omitempty"`
	LEVDermal     Switch `json:"lev_dermal,omitempty" yaml:"lev_dermal,omitempty" toml:"lev_dermal,omitempty"`
}

// LimitsImport holds the DNEL/OEL values. An omitted limit means none was
// derived for that route.
type LimitsImport struct {
	LongTermInhalation  *float64 `json:"long_term_inhalation,omitempty" yaml:"long_term_inhalation,omitempty" toml:"long_term_inhalation,omitempty"`
	LongTermDermal      *float64 `json:"long_term_dermal,omitempty" yaml:"long_term_dermal,omitempty" toml:"long_term_dermal,omitempty"`
	ShortTermInhalation *float64 `json:"short_term_inhalation,omitempty" yaml:"short_term_inhalation,omitempty" toml:"short_term_inhalation,omitempty"`
	LocalDermal         *float64 `json:"local_dermal,omitempty" yaml:"local_dermal,omitempty" toml:"local_dermal,omitempty"`
}

// Switch is a yes/no field that also accepts booleans.
type Switch string

func (s *Switch) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = Switch(domain.YesNo(b))
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("expected yes/no or a boolean, got %s", data)
	}
	*s = Switch(str)
	return nil
}

func (s *Switch) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected yes/no or a boolean", n.Line)
	}
	if n.ShortTag() == "!!bool" {
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		*s = Switch(domain.YesNo(b))
		return nil
	}
	*s = Switch(n.Value)
	return nil
}

func (s *Switch) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case bool:
		*s = Switch(domain.YesNo(t))
	case string:
		*s = Switch(t)
	default:
		return fmt.Errorf("expected yes/no or a boolean, got %v", v)
	}
	return nil
}

// LoadScenarioFile reads a scenario in the format named by the file
// extension.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sf, err := DecodeScenario(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	return sf, nil
}

// FromScenario converts a domain scenario back to its file form.
func FromScenario(s domain.Scenario) *ScenarioFile {
	sf := &ScenarioFile{
		SubstanceName:  s.SubstanceName,
		CASNumber:      s.CASNumber,
		VapourPressure: s.VapourPressure,
		Limits: LimitsImport{
			LongTermInhalation:  limitPtr(s.Limits.LongTermInhalation),
			LongTermDermal:      limitPtr(s.Limits.LongTermDermal),
			ShortTermInhalation: limitPtr(s.Limits.ShortTermInhalation),
			LocalDermal:         limitPtr(s.Limits.LocalDermal),
		},
		Proc:          string(s.Process),
		Population:    string(s.Population),
		PhysicalState: string(s.PhysicalState),
		Fugacity:      string(s.Fugacity),
		Ventilation:   string(s.Ventilation),
		Duration:      string(s.Duration),
		Concentration: string(s.Concentration),
		LEVInhalation: Switch(domain.YesNo(s.InhalationLEV)),
		RPE:           string(s.RPE),
		PPE:           string(s.PPE),
		LEVDermal:     Switch(domain.YesNo(s.DermalLEV)),
	}
	if s.MolWeight > 0 {
		mw := s.MolWeight
		sf.MolWeight = &mw
	}
	return sf
}

func limitPtr(l domain.Limit) *float64 {
	if !l.IsSet() {
		return nil
	}
	v := l.Value()
	return &v
}
