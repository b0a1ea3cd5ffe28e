package domain

import (
	"fmt"
	"strings"
)

type ProcessCategory string

// ValidProcessCategories is the canonical set of accepted process codes.
var ValidProcessCategories = func() map[ProcessCategory]bool {
	m := make(map[ProcessCategory]bool, 25)
	for i := 1; i <= 25; i++ {
		m[ProcessCategory(fmt.Sprintf("PROC%d", i))] = true
	}
	return m
}()

func (p ProcessCategory) Valid() bool { return ValidProcessCategories[p] }

// ParseProcessCategory accepts PROC codes in any case, e.g. "proc7" or " PROC7 ".
func ParseProcessCategory(s string) (ProcessCategory, error) {
	p := ProcessCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", invalidCategory("process", s)
	}
	return p, nil
}

type Population string

const (
	PopulationIndustrial   Population = "industrial"
	PopulationProfessional Population = "professional"
)

func (p Population) Valid() bool {
	return p == PopulationIndustrial || p == PopulationProfessional
}

// KeyToken is the population as written in the reference table descriptor.
func (p Population) KeyToken() string {
	if p == PopulationProfessional {
		return "prof"
	}
	return "ind"
}

func ParsePopulation(s string) (Population, error) {
	switch normalize(s) {
	case "industrial", "ind":
		return PopulationIndustrial, nil
	case "professional", "prof":
		return PopulationProfessional, nil
	}
	return "", invalidCategory("population", s)
}

type PhysicalState string

const (
	StateSolid  PhysicalState = "solid"
	StateLiquid PhysicalState = "liquid"
)

func (p PhysicalState) Valid() bool { return p == StateSolid || p == StateLiquid }

func ParsePhysicalState(s string) (PhysicalState, error) {
	switch normalize(s) {
	case "solid":
		return StateSolid, nil
	case "liquid":
		return StateLiquid, nil
	}
	return "", invalidCategory("physical_state", s)
}

// Fugacity is the volatility band for liquids or the dustiness band for solids.
type Fugacity string

const (
	FugacityVeryLow Fugacity = "very_low"
	FugacityLow     Fugacity = "low"
	FugacityMedium  Fugacity = "medium"
	FugacityHigh    Fugacity = "high"
)

func (f Fugacity) Valid() bool {
	switch f {
	case FugacityVeryLow, FugacityLow, FugacityMedium, FugacityHigh:
		return true
	}
	return false
}

// KeyToken is the band as written in the reference table descriptor.
func (f Fugacity) KeyToken() string {
	if f == FugacityVeryLow {
		return "very low"
	}
	return string(f)
}

func ParseFugacity(s string) (Fugacity, error) {
	switch normalize(s) {
	case "very_low", "very low", "verylow":
		return FugacityVeryLow, nil
	case "low":
		return FugacityLow, nil
	case "medium":
		return FugacityMedium, nil
	case "high":
		return FugacityHigh, nil
	}
	return "", invalidCategory("fugacity", s)
}

type Ventilation string

const (
	VentilationOutdoors Ventilation = "outdoors"
	VentilationBasic    Ventilation = "basic_ventilation"
	VentilationGood     Ventilation = "good_ventilation"
	VentilationEnhanced Ventilation = "enhanced_ventilation"
)

func (v Ventilation) Valid() bool {
	switch v {
	case VentilationOutdoors, VentilationBasic, VentilationGood, VentilationEnhanced:
		return true
	}
	return false
}

// Label is the wording used by the ECETOC TRA worker tool.
func (v Ventilation) Label() string {
	switch v {
	case VentilationOutdoors:
		return "outdoors"
	case VentilationBasic:
		return "indoors - no or basic ventilation"
	case VentilationGood:
		return "indoors - good ventilation"
	case VentilationEnhanced:
		return "indoors - enhanced ventilation"
	}
	return string(v)
}

func ParseVentilation(s string) (Ventilation, error) {
	switch normalize(s) {
	case "outdoors":
		return VentilationOutdoors, nil
	case "basic_ventilation", "basic", "no_ventilation", "indoors - no or basic ventilation":
		return VentilationBasic, nil
	case "good_ventilation", "good", "indoors - good ventilation":
		return VentilationGood, nil
	case "enhanced_ventilation", "enhanced", "indoors - enhanced ventilation":
		return VentilationEnhanced, nil
	}
	return "", invalidCategory("ventilation", s)
}

type Duration string

const (
	DurationUnder15Min Duration = "<15min"
	Duration15MinTo1Hr Duration = "15min-1hr"
	Duration1To4Hr     Duration = "1-4hr"
	DurationOver4Hr    Duration = ">4hr"
)

func (d Duration) Valid() bool {
	switch d {
	case DurationUnder15Min, Duration15MinTo1Hr, Duration1To4Hr, DurationOver4Hr:
		return true
	}
	return false
}

func ParseDuration(s string) (Duration, error) {
	d := Duration(strings.ReplaceAll(normalize(s), " ", ""))
	if !d.Valid() {
		return "", invalidCategory("duration", s)
	}
	return d, nil
}

type Concentration string

const (
	ConcentrationUnder1Pct Concentration = "<1%"
	Concentration1To5Pct   Concentration = "1-5%"
	Concentration5To25Pct  Concentration = "5-25%"
	ConcentrationOver25Pct Concentration = ">25%"
)

func (c Concentration) Valid() bool {
	switch c {
	case ConcentrationUnder1Pct, Concentration1To5Pct, Concentration5To25Pct, ConcentrationOver25Pct:
		return true
	}
	return false
}

func ParseConcentration(s string) (Concentration, error) {
	c := Concentration(strings.ReplaceAll(normalize(s), " ", ""))
	if !c.Valid() {
		return "", invalidCategory("concentration", s)
	}
	return c, nil
}

// RPE is the respiratory protective equipment class.
type RPE string

const (
	RPENone RPE = "none"
	RPE90   RPE = "RPE90"
	RPE95   RPE = "RPE95"
)

func (r RPE) Valid() bool { return r == RPENone || r == RPE90 || r == RPE95 }

func ParseRPE(s string) (RPE, error) {
	switch strings.TrimSuffix(normalize(s), "%") {
	case "none", "no rpe", "no_rpe":
		return RPENone, nil
	case "rpe90":
		return RPE90, nil
	case "rpe95":
		return RPE95, nil
	}
	return "", invalidCategory("rpe", s)
}

// PPE is the dermal protection (gloves) class.
type PPE string

const (
	PPENone PPE = "none"
	PPE80   PPE = "PPE80"
	PPE90   PPE = "PPE90"
	PPE95   PPE = "PPE95"
)

func (p PPE) Valid() bool {
	switch p {
	case PPENone, PPE80, PPE90, PPE95:
		return true
	}
	return false
}

func ParsePPE(s string) (PPE, error) {
	switch strings.TrimSuffix(normalize(s), "%") {
	case "none", "no ppe", "no_ppe":
		return PPENone, nil
	case "ppe80":
		return PPE80, nil
	case "ppe90":
		return PPE90, nil
	case "ppe95":
		return PPE95, nil
	}
	return "", invalidCategory("ppe", s)
}

// ParseYesNo parses the yes/no switches used for local exhaust ventilation.
func ParseYesNo(field, s string) (bool, error) {
	switch normalize(s) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	}
	return false, invalidCategory(field, s)
}

// YesNo renders a switch the way the reference table descriptor spells it.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
