package exposure

import (
	"github.com/alexanderramin/traworker/internal/domain"
)

// Exposures are the predicted exposure estimates.
type Exposures struct {
	Inhalation8hr domain.Value `json:"predicted_8hr_inhalatory_exposure"`
	Dermal8hr     domain.Value `json:"predicted_8hr_dermal_exposure"`
	ShortTerm     domain.Value `json:"predicted_short_term_inhalatory_exposure"`
	LocalDermal   domain.Value `json:"predicted_local_dermal_exposure"`
}

// Combine applies the derived factors to the baselines. row is the
// reference row used for the LEV reduction factors; found reports whether
// the table had one.
func Combine(s domain.Scenario, f Factors, b Baselines, row domain.ReferenceRow, found bool, precision int) Exposures {
	lr := lookupRow{row: row, found: found}
	inh := inhalation8hr(s, f, b, lr).Round(precision)
	return Exposures{
		Inhalation8hr: inh,
		Dermal8hr:     dermal(s, f, b.Dermal, inh, lr).Round(precision),
		ShortTerm:     shortTerm(f, inh).Round(precision),
		LocalDermal:   dermal(s, f, b.LocalDermal, inh, lr).Round(precision),
	}
}

// levOutsideMethod reports LEV combinations the ECETOC method does not cover.
func levOutsideMethod(s domain.Scenario) bool {
	if !s.InhalationLEV {
		return false
	}
	if s.Ventilation == domain.VentilationOutdoors {
		return true
	}
	return s.Population == domain.PopulationProfessional && s.Ventilation == domain.VentilationEnhanced
}

func inhalation8hr(s domain.Scenario, f Factors, b Baselines, lr lookupRow) domain.Value {
	// Non-dusty solids are not an inhalation hazard: nothing to estimate
	// rather than an input to reconsider.
	if isInertSolid(s) {
		return domain.NotApplicable()
	}
	base, ok := b.Inhalation.Float()
	if !ok {
		return domain.InvalidInput()
	}
	if levOutsideMethod(s) {
		return domain.InvalidInput()
	}
	if !lr.found {
		return domain.InvalidInput()
	}
	lev, ok := lr.row.LEVInhalation.Float()
	if !ok {
		return domain.InvalidInput()
	}
	return domain.Number(base * f.Ventilation * f.DurationInhalation * f.Concentration * f.RPE * lev)
}

// dermal covers both the 8-hour and the local dermal estimate; they differ
// only in the baseline.
func dermal(s domain.Scenario, f Factors, baseline domain.Value, inh domain.Value, lr lookupRow) domain.Value {
	base, ok := baseline.Float()
	if !ok || inh.IsInvalidInput() {
		return domain.NotApplicable()
	}
	est := base * f.DurationDermal * f.Concentration * f.PPE
	if !s.DermalLEV {
		return domain.Number(est)
	}
	if !lr.found {
		return domain.NotApplicable()
	}
	lev, ok := lr.row.LEVDermal.Float()
	if !ok {
		return domain.NotApplicable()
	}
	return domain.Number(est * lev)
}

// shortTerm scales the rounded 8-hour inhalation estimate back to a
// task-duration peak.
func shortTerm(f Factors, inh domain.Value) domain.Value {
	v, ok := inh.Float()
	if !ok {
		return domain.NotApplicable()
	}
	return domain.Number(v * f.ShortTermMultiplier / f.DurationInhalation)
}
