package exposure

import (
	"fmt"

	"github.com/alexanderramin/traworker/internal/domain"
)

// DefaultPrecision is the number of decimal places kept on every estimate
// and ratio.
const DefaultPrecision = 2

// MaxPrecision bounds the configurable precision.
const MaxPrecision = 6

type options struct {
	precision int
}

// Option configures an evaluation.
type Option func(*options)

// WithPrecision sets the decimal places used for rounding. Values outside
// 0..MaxPrecision are clamped.
func WithPrecision(places int) Option {
	return func(o *options) {
		o.precision = min(max(places, 0), MaxPrecision)
	}
}

// Result is the full record of one evaluation: the scenario and every
// intermediate and final quantity.
type Result struct {
	Scenario  domain.Scenario `json:"scenario"`
	Factors   Factors         `json:"factors"`
	Key       string          `json:"concat_lookup_descriptor"`
	RowFound  bool            `json:"reference_row_found"`
	Baselines Baselines       `json:"baselines"`
	Exposures Exposures       `json:"exposures"`
	RCRs      RCRs            `json:"rcrs"`
}

// Evaluate runs the full pipeline for one scenario against a reference
// table. It fails only when a categorical input is outside its domain;
// missing reference data and inapplicable combinations surface as sentinel
// values in the result.
func Evaluate(s domain.Scenario, table Table, opts ...Option) (*Result, error) {
	o := options{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", describe(s), err)
	}

	factors, err := DeriveFactors(s)
	if err != nil {
		return nil, fmt.Errorf("deriving factors: %w", err)
	}
	key := LookupKey(s)

	lr := findRow(s, key, table)
	baselines := resolveBaselines(s, lr)
	exposures := Combine(s, factors, baselines, lr.row, lr.found, o.precision)
	rcrs := ComputeRCRs(exposures, s.Limits, o.precision)

	return &Result{
		Scenario:  s,
		Factors:   factors,
		Key:       key,
		RowFound:  lr.found,
		Baselines: baselines,
		Exposures: exposures,
		RCRs:      rcrs,
	}, nil
}

func describe(s domain.Scenario) string {
	if s.SubstanceName == "" {
		return "scenario"
	}
	return fmt.Sprintf("%q", s.SubstanceName)
}
