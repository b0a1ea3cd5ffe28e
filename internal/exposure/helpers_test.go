package exposure

import (
	"github.com/alexanderramin/traworker/internal/domain"
)

// mapTable is an in-memory Table that counts lookups.
type mapTable struct {
	rows    map[string]domain.ReferenceRow
	lookups int
}

func newMapTable(rows ...domain.ReferenceRow) *mapTable {
	t := &mapTable{rows: make(map[string]domain.ReferenceRow, len(rows))}
	for _, r := range rows {
		t.rows[domain.NormalizeKey(r.Key)] = r
	}
	return t
}

func (t *mapTable) Lookup(key string) (domain.ReferenceRow, bool) {
	t.lookups++
	r, ok := t.rows[domain.NormalizeKey(key)]
	return r, ok
}

// exampleScenario is the ethanol scenario shipped with the ECETOC TRA
// calculation script.
func exampleScenario() domain.Scenario {
	vp := 7832.4225
	return domain.Scenario{
		SubstanceName: "ethanol",
		CASNumber:     "64-17-5",
		MolWeight:     46.069,
		Limits: domain.Limits{
			LongTermInhalation:  domain.LimitOf(10),
			LongTermDermal:      domain.LimitOf(10),
			ShortTermInhalation: domain.LimitOf(10),
			LocalDermal:         domain.LimitOf(10),
		},
		VapourPressure: &vp,
		Process:        "PROC7",
		Population:     domain.PopulationIndustrial,
		PhysicalState:  domain.StateLiquid,
		Fugacity:       domain.FugacityVeryLow,
		Ventilation:    domain.VentilationBasic,
		Duration:       domain.DurationOver4Hr,
		Concentration:  domain.ConcentrationOver25Pct,
		RPE:            domain.RPENone,
		PPE:            domain.PPENone,
	}
}

func exampleRow() domain.ReferenceRow {
	return domain.ReferenceRow{
		Key:           "PROC7liquidnovery lowind",
		Inhalation:    domain.Number(2.5),
		Dermal:        domain.Number(1.37),
		LocalDermal:   domain.Number(1000),
		LEVInhalation: domain.Number(1),
		LEVDermal:     domain.NotApplicable(),
	}
}

func withScenario(s domain.Scenario, mutate func(*domain.Scenario)) domain.Scenario {
	mutate(&s)
	return s
}
