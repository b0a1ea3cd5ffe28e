package importer

import (
	"errors"
	"math"
	"testing"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func validSolidScenario() *ScenarioFile {
	return &ScenarioFile{
		SubstanceName: "zinc oxide",
		MolWeight:     ptrFloat(81.38),
		Limits:        LimitsImport{LongTermInhalation: ptrFloat(5)},
		Proc:          " proc8 ",
		Population:    "professional",
		PhysicalState: "solid",
		Fugacity:      "medium",
		Ventilation:   "good",
		Duration:      "1 - 4hr",
		Concentration: "5-25%",
	}
}

func TestValidateScenario_Example(t *testing.T) {
	assert.Empty(t, ValidateScenario(ExampleScenario()))
}

func TestValidateScenario_DefaultsForOptionalControls(t *testing.T) {
	sf := ExampleScenario()
	sf.RPE, sf.PPE, sf.LEVInhalation, sf.LEVDermal = "", "", "", ""

	s, err := Convert(sf)
	require.NoError(t, err)
	assert.Equal(t, domain.RPENone, s.RPE)
	assert.Equal(t, domain.PPENone, s.PPE)
	assert.False(t, s.InhalationLEV)
	assert.False(t, s.DermalLEV)
}

func TestValidateScenario_CollectsEveryCategoryError(t *testing.T) {
	sf := ExampleScenario()
	sf.Proc = "PROC26"
	sf.Ventilation = "windy"
	sf.RPE = "mask"
	sf.LEVDermal = "maybe"

	errs := ValidateScenario(sf)
	require.Len(t, errs, 4)

	var fields []string
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
		var ce *domain.CategoryError
		require.True(t, errors.As(err, &ce))
		fields = append(fields, ce.Field)
	}
	assert.Equal(t, []string{"process", "ventilation", "rpe", "lev_dermal"}, fields)
}

func TestValidateScenario_RequiredFields(t *testing.T) {
	errs := ValidateScenario(&ScenarioFile{})
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	assert.Contains(t, msgs, "substance_name is required")
	assert.Contains(t, msgs, "fugacity is required unless vapour_pressure is given for a liquid")
}

func TestValidateScenario_NegativeNumbers(t *testing.T) {
	sf := ExampleScenario()
	sf.Limits.LocalDermal = ptrFloat(-1)
	sf.MolWeight = ptrFloat(0)

	errs := ValidateScenario(sf)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "mol_weight: must be positive, got 0")
	assert.EqualError(t, errs[1], "limits.local_dermal: must not be negative, got -1")
}

func TestValidateScenario_NonFiniteNumbers(t *testing.T) {
	sf := ExampleScenario()
	sf.MolWeight = ptrFloat(math.NaN())
	sf.VapourPressure = ptrFloat(math.Inf(1))
	sf.Limits.LongTermInhalation = ptrFloat(math.NaN())
	sf.Limits.ShortTermInhalation = ptrFloat(math.Inf(1))

	errs := ValidateScenario(sf)
	require.Len(t, errs, 4)
	assert.EqualError(t, errs[0], "vapour_pressure: must be a finite number, got +Inf")
	assert.EqualError(t, errs[1], "mol_weight: must be a finite number, got NaN")
	assert.EqualError(t, errs[2], "limits.long_term_inhalation: must be a finite number, got NaN")
	assert.EqualError(t, errs[3], "limits.short_term_inhalation: must be a finite number, got +Inf")
}

func TestConvert_NaNFromYAML(t *testing.T) {
	sf, err := DecodeScenario([]byte(`substance_name: x
proc: PROC7
population: industrial
physical_state: liquid
fugacity: low
ventilation: basic
duration: ">4hr"
concentration: ">25%"
mol_weight: .nan
limits:
  long_term_inhalation: .nan
`), FormatYAML)
	require.NoError(t, err)

	_, err = Convert(sf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mol_weight: must be a finite number")
	assert.Contains(t, err.Error(), "limits.long_term_inhalation: must be a finite number")
}

func TestValidateScenario_SolidNeedsMolWeightAndDustiness(t *testing.T) {
	sf := validSolidScenario()
	assert.Empty(t, ValidateScenario(sf))

	sf.MolWeight = nil
	sf.Fugacity = ""
	sf.VapourPressure = ptrFloat(0.001)
	errs := ValidateScenario(sf)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "fugacity is required for solids (dustiness band)")
	assert.EqualError(t, errs[1], "mol_weight is required for solids")
}

func TestConvert_FugacityFromVapourPressure(t *testing.T) {
	sf := ExampleScenario()
	sf.Fugacity = ""

	s, err := Convert(sf)
	require.NoError(t, err)
	// 7832 Pa sits in the medium band.
	assert.Equal(t, domain.FugacityMedium, s.Fugacity)

	sf.VapourPressure = ptrFloat(-3)
	_, err = Convert(sf)
	assert.ErrorContains(t, err, "vapour_pressure: must not be negative")
}

func TestConvert_ExplicitFugacityWins(t *testing.T) {
	s, err := Convert(ExampleScenario())
	require.NoError(t, err)
	assert.Equal(t, domain.FugacityVeryLow, s.Fugacity)
}

func TestConvert_Example(t *testing.T) {
	s, err := Convert(ExampleScenario())
	require.NoError(t, err)

	assert.Equal(t, "ethanol", s.SubstanceName)
	assert.Equal(t, "64-17-5", s.CASNumber)
	assert.Equal(t, 46.069, s.MolWeight)
	assert.Equal(t, domain.LimitOf(10), s.Limits.LongTermInhalation)
	assert.Equal(t, domain.LimitOf(10), s.Limits.LocalDermal)
	assert.Equal(t, domain.ProcessCategory("PROC7"), s.Process)
	assert.Equal(t, domain.PopulationIndustrial, s.Population)
	assert.Equal(t, domain.StateLiquid, s.PhysicalState)
	assert.Equal(t, domain.VentilationBasic, s.Ventilation)
	assert.Equal(t, domain.DurationOver4Hr, s.Duration)
	assert.Equal(t, domain.ConcentrationOver25Pct, s.Concentration)
	assert.Equal(t, domain.RPENone, s.RPE)
	assert.Equal(t, domain.PPENone, s.PPE)
	require.NoError(t, s.Validate())
}

func TestConvert_MissingLimitIsNoLimit(t *testing.T) {
	s, err := Convert(validSolidScenario())
	require.NoError(t, err)
	assert.Equal(t, domain.ProcessCategory("PROC8"), s.Process)
	assert.True(t, s.Limits.LongTermInhalation.IsSet())
	assert.False(t, s.Limits.LongTermDermal.IsSet())
}

func TestConvert_JoinsErrors(t *testing.T) {
	sf := ExampleScenario()
	sf.Duration = "all day"
	sf.Concentration = "pure"

	_, err := Convert(sf)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Contains(t, err.Error(), `invalid scenario "ethanol"`)
	assert.Contains(t, err.Error(), "duration")
	assert.Contains(t, err.Error(), "concentration")
}
