package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/exposure"
)

// ValidationError lists every problem found in a scenario file.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

func formatValidationErrors(errs []error) error {
	return &ValidationError{Errs: errs}
}

// countSentinels counts the non-numeric estimates and ratios of a result.
func countSentinels(r *exposure.Result) (notApplicable, invalid int) {
	values := []domain.Value{
		r.Exposures.Inhalation8hr, r.Exposures.Dermal8hr, r.Exposures.ShortTerm, r.Exposures.LocalDermal,
		r.RCRs.LongTermInhalation, r.RCRs.LongTermDermal, r.RCRs.ShortTermInhalation, r.RCRs.LocalDermal,
	}
	for _, v := range values {
		switch {
		case v.IsNotApplicable():
			notApplicable++
		case v.IsInvalidInput():
			invalid++
		}
	}
	return notApplicable, invalid
}
