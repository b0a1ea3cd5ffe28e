package domain

import (
	"encoding/json"
	"strconv"
)

// Limit is a DNEL/OEL exposure threshold. An unset limit means no limit was
// derived for that route.
type Limit struct {
	value float64
	set   bool
}

func LimitOf(v float64) Limit { return Limit{value: v, set: true} }

func NoLimit() Limit { return Limit{} }

// Divisor returns the limit when it can divide an exposure: set and non-zero.
func (l Limit) Divisor() (float64, bool) {
	if !l.set || l.value == 0 {
		return 0, false
	}
	return l.value, true
}

func (l Limit) IsSet() bool { return l.set }

func (l Limit) Value() float64 { return l.value }

func (l Limit) String() string {
	if !l.set {
		return "none"
	}
	return strconv.FormatFloat(l.value, 'f', -1, 64)
}

func (l Limit) MarshalJSON() ([]byte, error) {
	if !l.set {
		return []byte("null"), nil
	}
	return json.Marshal(l.value)
}

// Limits holds the four route-specific thresholds.
type Limits struct {
	LongTermInhalation  Limit `json:"long_term_inhalation"`  // mg/m3
	LongTermDermal      Limit `json:"long_term_dermal"`      // mg/kg/day
	ShortTermInhalation Limit `json:"short_term_inhalation"` // mg/m3
	LocalDermal         Limit `json:"local_dermal"`          // ug/cm2
}

// Scenario is one substance used in one process under one set of controls.
// It is built once per evaluation and never mutated.
type Scenario struct {
	SubstanceName  string   `json:"substance_name"`
	CASNumber      string   `json:"cas_number"`
	MolWeight      float64  `json:"mol_weight"`
	Limits         Limits   `json:"limits"`
	VapourPressure *float64 `json:"vapour_pressure,omitempty"`

	Process       ProcessCategory `json:"proc"`
	Population    Population      `json:"population"`
	PhysicalState PhysicalState   `json:"physical_state"`
	Fugacity      Fugacity        `json:"fugacity"`
	Ventilation   Ventilation     `json:"ventilation"`
	Duration      Duration        `json:"duration"`
	Concentration Concentration   `json:"concentration"`
	InhalationLEV bool            `json:"lev_inhalation"`
	RPE           RPE             `json:"rpe"`
	PPE           PPE             `json:"ppe"`
	DermalLEV     bool            `json:"lev_dermal"`
}

// Validate reports the first categorical field outside its domain.
func (s Scenario) Validate() error {
	checks := []struct {
		field string
		value string
		valid bool
	}{
		{"process", string(s.Process), s.Process.Valid()},
		{"population", string(s.Population), s.Population.Valid()},
		{"physical_state", string(s.PhysicalState), s.PhysicalState.Valid()},
		{"fugacity", string(s.Fugacity), s.Fugacity.Valid()},
		{"ventilation", string(s.Ventilation), s.Ventilation.Valid()},
		{"duration", string(s.Duration), s.Duration.Valid()},
		{"concentration", string(s.Concentration), s.Concentration.Valid()},
		{"rpe", string(s.RPE), s.RPE.Valid()},
		{"ppe", string(s.PPE), s.PPE.Valid()},
	}
	for _, c := range checks {
		if err := CheckCategory(c.field, c.value, c.valid); err != nil {
			return err
		}
	}
	return nil
}
