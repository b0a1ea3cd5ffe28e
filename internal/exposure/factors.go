package exposure

import (
	"github.com/alexanderramin/traworker/internal/domain"
)

// Factors are the multipliers derived from the categorical inputs.
type Factors struct {
	Ventilation         float64 `json:"ventilation_reduction_factor"`
	DurationInhalation  float64 `json:"duration_reduction_factor_inhalation"`
	DurationDermal      float64 `json:"duration_reduction_factor_dermal"`
	Concentration       float64 `json:"concentration_reduction_factor"`
	RPE                 float64 `json:"rpe_reduction_factor"`
	PPE                 float64 `json:"ppe_reduction_factor"`
	ShortTermMultiplier float64 `json:"multiplier_short_term"`
}

// shortTermExempt lists processes that keep the default short-term
// multiplier for very low fugacity liquids regardless of LEV.
var shortTermExempt = map[domain.ProcessCategory]bool{
	"PROC7": true, "PROC11": true, "PROC17": true, "PROC18": true,
}

// shortTermExemptWithoutLEV lists processes exempt only when no inhalation
// LEV is fitted.
var shortTermExemptWithoutLEV = map[domain.ProcessCategory]bool{
	"PROC10": true, "PROC19": true,
}

// DeriveFactors runs every factor mapping. It fails on the first categorical
// input outside its domain.
func DeriveFactors(s domain.Scenario) (Factors, error) {
	var f Factors
	var err error

	if f.Ventilation, err = VentilationFactor(s.Ventilation); err != nil {
		return Factors{}, err
	}
	if f.DurationInhalation, err = DurationFactorInhalation(s.Duration); err != nil {
		return Factors{}, err
	}
	if f.DurationDermal, err = DurationFactorDermal(s.PhysicalState, s.Fugacity, f.Ventilation); err != nil {
		return Factors{}, err
	}
	if f.Concentration, err = ConcentrationFactor(s.Concentration); err != nil {
		return Factors{}, err
	}
	if f.RPE, err = RPEFactor(s.RPE); err != nil {
		return Factors{}, err
	}
	if f.PPE, err = PPEFactor(s.PPE, s.Population); err != nil {
		return Factors{}, err
	}
	if f.ShortTermMultiplier, err = ShortTermMultiplier(s.PhysicalState, s.Fugacity, s.Process, s.InhalationLEV); err != nil {
		return Factors{}, err
	}
	return f, nil
}

func VentilationFactor(v domain.Ventilation) (float64, error) {
	switch v {
	case domain.VentilationOutdoors, domain.VentilationGood:
		return 0.7, nil
	case domain.VentilationEnhanced:
		return 0.3, nil
	case domain.VentilationBasic:
		return 1.0, nil
	}
	return 0, domain.CheckCategory("ventilation", string(v), false)
}

func DurationFactorInhalation(d domain.Duration) (float64, error) {
	switch d {
	case domain.DurationUnder15Min:
		return 0.1, nil
	case domain.Duration15MinTo1Hr:
		return 0.2, nil
	case domain.Duration1To4Hr:
		return 0.6, nil
	case domain.DurationOver4Hr:
		return 1.0, nil
	}
	return 0, domain.CheckCategory("duration", string(d), false)
}

// DurationFactorDermal is 1.0 for dusty solids and for liquids of low
// volatility; every other combination reuses the ventilation factor.
func DurationFactorDermal(state domain.PhysicalState, fug domain.Fugacity, ventilationFactor float64) (float64, error) {
	if err := domain.CheckCategory("physical_state", string(state), state.Valid()); err != nil {
		return 0, err
	}
	if err := domain.CheckCategory("fugacity", string(fug), fug.Valid()); err != nil {
		return 0, err
	}

	switch {
	case state == domain.StateSolid && (fug == domain.FugacityMedium || fug == domain.FugacityHigh):
		return 1.0, nil
	case state == domain.StateLiquid && (fug == domain.FugacityVeryLow || fug == domain.FugacityLow):
		return 1.0, nil
	default:
		return ventilationFactor, nil
	}
}

func ConcentrationFactor(c domain.Concentration) (float64, error) {
	switch c {
	case domain.ConcentrationUnder1Pct:
		return 0.1, nil
	case domain.Concentration1To5Pct:
		return 0.2, nil
	case domain.Concentration5To25Pct:
		return 0.6, nil
	case domain.ConcentrationOver25Pct:
		return 1.0, nil
	}
	return 0, domain.CheckCategory("concentration", string(c), false)
}

func RPEFactor(r domain.RPE) (float64, error) {
	switch r {
	case domain.RPE90:
		return 0.1, nil
	case domain.RPE95:
		return 0.05, nil
	case domain.RPENone:
		return 1.0, nil
	}
	return 0, domain.CheckCategory("rpe", string(r), false)
}

// PPEFactor caps PPE95 at 90% efficiency for professional users.
func PPEFactor(p domain.PPE, pop domain.Population) (float64, error) {
	if err := domain.CheckCategory("population", string(pop), pop.Valid()); err != nil {
		return 0, err
	}
	switch p {
	case domain.PPE80:
		return 0.2, nil
	case domain.PPE90:
		return 0.1, nil
	case domain.PPE95:
		if pop == domain.PopulationProfessional {
			return 0.1, nil
		}
		return 0.05, nil
	case domain.PPENone:
		return 1.0, nil
	}
	return 0, domain.CheckCategory("ppe", string(p), false)
}

// ShortTermMultiplier is 1 for very low fugacity liquids outside the exempt
// processes, and 4 otherwise.
func ShortTermMultiplier(state domain.PhysicalState, fug domain.Fugacity, proc domain.ProcessCategory, inhalationLEV bool) (float64, error) {
	if err := domain.CheckCategory("physical_state", string(state), state.Valid()); err != nil {
		return 0, err
	}
	if err := domain.CheckCategory("fugacity", string(fug), fug.Valid()); err != nil {
		return 0, err
	}
	if err := domain.CheckCategory("process", string(proc), proc.Valid()); err != nil {
		return 0, err
	}

	exempt := shortTermExempt[proc] || (shortTermExemptWithoutLEV[proc] && !inhalationLEV)
	if state == domain.StateLiquid && fug == domain.FugacityVeryLow && !exempt {
		return 1.0, nil
	}
	return 4.0, nil
}
