package importer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/traworker/internal/domain"
)

// ValidateScenario checks a scenario file before conversion and returns
// every problem found.
func ValidateScenario(sf *ScenarioFile) []error {
	_, errs := parseScenario(sf)
	return errs
}

// parseScenario is shared by validation and conversion. The scenario is only
// meaningful when errs is empty.
func parseScenario(sf *ScenarioFile) (domain.Scenario, []error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	s := domain.Scenario{
		SubstanceName:  strings.TrimSpace(sf.SubstanceName),
		CASNumber:      strings.TrimSpace(sf.CASNumber),
		VapourPressure: sf.VapourPressure,
	}
	if s.SubstanceName == "" {
		collect(errors.New("substance_name is required"))
	}

	var err error
	s.Process, err = domain.ParseProcessCategory(sf.Proc)
	collect(err)
	s.Population, err = domain.ParsePopulation(sf.Population)
	collect(err)
	s.PhysicalState, err = domain.ParsePhysicalState(sf.PhysicalState)
	collect(err)
	s.Ventilation, err = domain.ParseVentilation(sf.Ventilation)
	collect(err)
	s.Duration, err = domain.ParseDuration(sf.Duration)
	collect(err)
	s.Concentration, err = domain.ParseConcentration(sf.Concentration)
	collect(err)
	s.RPE, err = domain.ParseRPE(domain.CoalesceStr(sf.RPE, string(domain.RPENone)))
	collect(err)
	s.PPE, err = domain.ParsePPE(domain.CoalesceStr(sf.PPE, string(domain.PPENone)))
	collect(err)
	s.InhalationLEV, err = domain.ParseYesNo("lev_inhalation", domain.CoalesceStr(string(sf.LEVInhalation), "no"))
	collect(err)
	s.DermalLEV, err = domain.ParseYesNo("lev_dermal", domain.CoalesceStr(string(sf.LEVDermal), "no"))
	collect(err)

	if sf.VapourPressure != nil {
		collect(checkNumber("vapour_pressure", *sf.VapourPressure, false))
	}
	s.Fugacity, err = resolveFugacity(sf, s.PhysicalState)
	collect(err)

	if sf.MolWeight != nil {
		collect(checkNumber("mol_weight", *sf.MolWeight, true))
		s.MolWeight = *sf.MolWeight
	} else if s.PhysicalState == domain.StateSolid {
		collect(errors.New("mol_weight is required for solids"))
	}

	limits := []struct {
		name string
		in   *float64
		dst  *domain.Limit
	}{
		{"long_term_inhalation", sf.Limits.LongTermInhalation, &s.Limits.LongTermInhalation},
		{"long_term_dermal", sf.Limits.LongTermDermal, &s.Limits.LongTermDermal},
		{"short_term_inhalation", sf.Limits.ShortTermInhalation, &s.Limits.ShortTermInhalation},
		{"local_dermal", sf.Limits.LocalDermal, &s.Limits.LocalDermal},
	}
	for _, l := range limits {
		if l.in == nil {
			*l.dst = domain.NoLimit()
			continue
		}
		collect(checkNumber("limits."+l.name, *l.in, false))
		*l.dst = domain.LimitOf(*l.in)
	}

	return s, errs
}

// resolveFugacity uses the explicit band when present. A liquid without one
// takes its band from the vapour pressure; a solid's dustiness must be given.
func resolveFugacity(sf *ScenarioFile, state domain.PhysicalState) (domain.Fugacity, error) {
	if strings.TrimSpace(sf.Fugacity) != "" {
		return domain.ParseFugacity(sf.Fugacity)
	}
	if state == domain.StateLiquid && sf.VapourPressure != nil && checkNumber("", *sf.VapourPressure, false) == nil {
		return domain.FugacityFromVapourPressure(*sf.VapourPressure), nil
	}
	if state == domain.StateSolid {
		return "", errors.New("fugacity is required for solids (dustiness band)")
	}
	return "", errors.New("fugacity is required unless vapour_pressure is given for a liquid")
}

// checkNumber rejects NaN, infinities and values below the allowed range.
func checkNumber(field string, v float64, positive bool) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%s: must be a finite number, got %g", field, v)
	case positive && v <= 0:
		return fmt.Errorf("%s: must be positive, got %g", field, v)
	case v < 0:
		return fmt.Errorf("%s: must not be negative, got %g", field, v)
	}
	return nil
}
