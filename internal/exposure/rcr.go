package exposure

import (
	"github.com/alexanderramin/traworker/internal/domain"
)

// RCRs are the risk characterisation ratios. A ratio above 1 means the
// predicted exposure exceeds its limit.
type RCRs struct {
	LongTermInhalation  domain.Value `json:"predicted_rcr_long_term_inhalation"`
	LongTermDermal      domain.Value `json:"predicted_rcr_long_term_dermal"`
	ShortTermInhalation domain.Value `json:"predicted_rcr_short_term_inhalation"`
	LocalDermal         domain.Value `json:"predicted_rcr_local_dermal"`
}

// ComputeRCRs divides each exposure by its limit.
func ComputeRCRs(e Exposures, limits domain.Limits, precision int) RCRs {
	return RCRs{
		LongTermInhalation:  ratio(e.Inhalation8hr, limits.LongTermInhalation).Round(precision),
		LongTermDermal:      ratio(e.Dermal8hr, limits.LongTermDermal).Round(precision),
		ShortTermInhalation: ratio(e.ShortTerm, limits.ShortTermInhalation).Round(precision),
		LocalDermal:         ratio(e.LocalDermal, limits.LocalDermal).Round(precision),
	}
}

func ratio(exposure domain.Value, limit domain.Limit) domain.Value {
	num, ok := exposure.Float()
	if !ok {
		return domain.NotApplicable()
	}
	div, ok := limit.Divisor()
	if !ok {
		return domain.NotApplicable()
	}
	return domain.Number(num / div)
}

// Exceeds reports whether a ratio is a number above 1.
func Exceeds(rcr domain.Value) bool {
	v, ok := rcr.Float()
	return ok && v > 1
}

// Acceptable reports whether every numeric ratio is at most 1. Sentinel
// ratios are not counted against the scenario.
func (r RCRs) Acceptable() bool {
	for _, v := range []domain.Value{r.LongTermInhalation, r.LongTermDermal, r.ShortTermInhalation, r.LocalDermal} {
		if Exceeds(v) {
			return false
		}
	}
	return true
}
