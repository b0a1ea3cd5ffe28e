package testutil

import (
	"time"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/reftable"
	"github.com/google/uuid"
)

// Scenario options
type ScenarioOption func(*domain.Scenario)

func WithProcess(p domain.ProcessCategory) ScenarioOption {
	return func(s *domain.Scenario) { s.Process = p }
}

func WithPopulation(p domain.Population) ScenarioOption {
	return func(s *domain.Scenario) { s.Population = p }
}

func WithState(state domain.PhysicalState, f domain.Fugacity) ScenarioOption {
	return func(s *domain.Scenario) {
		s.PhysicalState = state
		s.Fugacity = f
	}
}

func WithVentilation(v domain.Ventilation) ScenarioOption {
	return func(s *domain.Scenario) { s.Ventilation = v }
}

func WithLEV(inhalation, dermal bool) ScenarioOption {
	return func(s *domain.Scenario) {
		s.InhalationLEV = inhalation
		s.DermalLEV = dermal
	}
}

func WithLimits(l domain.Limits) ScenarioOption {
	return func(s *domain.Scenario) { s.Limits = l }
}

// NewTestScenario returns the ethanol spraying example: every reduction
// factor is 1.
func NewTestScenario(opts ...ScenarioOption) domain.Scenario {
	s := domain.Scenario{
		SubstanceName: "ethanol",
		CASNumber:     "64-17-5",
		MolWeight:     46.069,
		Limits: domain.Limits{
			LongTermInhalation:  domain.LimitOf(10),
			LongTermDermal:      domain.LimitOf(10),
			ShortTermInhalation: domain.LimitOf(10),
			LocalDermal:         domain.LimitOf(10),
		},
		Process:       "PROC7",
		Population:    domain.PopulationIndustrial,
		PhysicalState: domain.StateLiquid,
		Fugacity:      domain.FugacityVeryLow,
		Ventilation:   domain.VentilationBasic,
		Duration:      domain.DurationOver4Hr,
		Concentration: domain.ConcentrationOver25Pct,
		RPE:           domain.RPENone,
		PPE:           domain.PPENone,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Reference row options
type RowOption func(*domain.ReferenceRow)

func WithInhalation(v domain.Value) RowOption {
	return func(r *domain.ReferenceRow) { r.Inhalation = v }
}

func WithDermal(v domain.Value) RowOption {
	return func(r *domain.ReferenceRow) { r.Dermal = v }
}

func WithLocalDermal(v domain.Value) RowOption {
	return func(r *domain.ReferenceRow) { r.LocalDermal = v }
}

func WithLEVFactors(inhalation, dermal domain.Value) RowOption {
	return func(r *domain.ReferenceRow) {
		r.LEVInhalation = inhalation
		r.LEVDermal = dermal
	}
}

// NewTestRow returns the reference row for the example scenario's key
// values unless overridden.
func NewTestRow(key string, opts ...RowOption) domain.ReferenceRow {
	r := domain.ReferenceRow{
		Key:           key,
		Inhalation:    domain.Number(2.5),
		Dermal:        domain.Number(1.37),
		LocalDermal:   domain.Number(1000),
		LEVInhalation: domain.Number(1),
		LEVDermal:     domain.NotApplicable(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// ExampleKey is the lookup descriptor of NewTestScenario().
const ExampleKey = "PROC7liquidnovery lowind"

// NewTestTable indexes rows in memory. With no rows it holds the example row.
func NewTestTable(rows ...domain.ReferenceRow) *reftable.Table {
	if len(rows) == 0 {
		rows = []domain.ReferenceRow{NewTestRow(ExampleKey)}
	}
	return reftable.FromRows("test", rows)
}

// NewTestImport returns an import record for rows.
func NewTestImport(rows int) *domain.TableImport {
	return &domain.TableImport{
		ID:         uuid.New().String(),
		Source:     "lookup.csv",
		RowCount:   rows,
		ImportedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// LookupCSV is a minimal reference table in the lookup sheet's CSV layout.
const LookupCSV = "descriptor/look-up term inhalation,init exp inhalation,init exp dermal,init exp local dermal,reduction factor lev inhal,reduction factor LEV dermal\n" +
	"PROC7liquidnovery lowind,2.5,1.37,1000,1,n/a\n" +
	"PROC7liquidyesvery lowind,2.5,1.37,1000,0.1,0.1\n" +
	"PROC1liquidnolowind,1,0.34,68,1,\n"
