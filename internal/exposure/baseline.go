package exposure

import (
	"github.com/alexanderramin/traworker/internal/domain"
)

// molarVolumeHours converts the table's molar inhalation rate using the
// source tool's constant of 24.
const molarVolumeHours = 24.0

// Baselines are the initial estimates read from the reference table.
type Baselines struct {
	Inhalation  domain.Value `json:"initial_estimate_inhalation"`
	Dermal      domain.Value `json:"initial_estimate_dermal"`
	LocalDermal domain.Value `json:"initial_estimate_dermal_local"`
}

// lookupRow is the table row for a key, if any. Solid substances of very low
// dustiness never consult the table.
type lookupRow struct {
	row   domain.ReferenceRow
	found bool
}

func findRow(s domain.Scenario, key string, table Table) lookupRow {
	if isInertSolid(s) || table == nil {
		return lookupRow{}
	}
	row, ok := table.Lookup(key)
	return lookupRow{row: row, found: ok}
}

func isInertSolid(s domain.Scenario) bool {
	return s.PhysicalState == domain.StateSolid && s.Fugacity == domain.FugacityVeryLow
}

// ResolveBaselines looks up the three initial estimates for a scenario.
func ResolveBaselines(s domain.Scenario, key string, table Table) Baselines {
	return resolveBaselines(s, findRow(s, key, table))
}

func resolveBaselines(s domain.Scenario, lr lookupRow) Baselines {
	if isInertSolid(s) || !lr.found {
		return Baselines{
			Inhalation:  domain.NotApplicable(),
			Dermal:      domain.NotApplicable(),
			LocalDermal: domain.NotApplicable(),
		}
	}
	return Baselines{
		Inhalation:  inhalationBaseline(s, lr.row.Inhalation),
		Dermal:      lr.row.Dermal,
		LocalDermal: lr.row.LocalDermal,
	}
}

// inhalationBaseline scales solid-state rates from the table's molar basis;
// liquid-state rates are used as stored.
func inhalationBaseline(s domain.Scenario, rate domain.Value) domain.Value {
	switch s.PhysicalState {
	case domain.StateSolid:
		return rate.Map(func(r float64) float64 { return r * s.MolWeight / molarVolumeHours })
	case domain.StateLiquid:
		return rate
	default:
		return domain.NotApplicable()
	}
}
