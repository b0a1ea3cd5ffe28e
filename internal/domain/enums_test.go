package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcessCategory(t *testing.T) {
	p, err := ParseProcessCategory(" proc7 ")
	require.NoError(t, err)
	assert.Equal(t, ProcessCategory("PROC7"), p)

	p, err = ParseProcessCategory("PROC25")
	require.NoError(t, err)
	assert.Equal(t, ProcessCategory("PROC25"), p)

	for _, bad := range []string{"PROC0", "PROC26", "PROC8a", "", "7"} {
		_, err := ParseProcessCategory(bad)
		assert.ErrorIs(t, err, ErrInvalidCategory, bad)
	}
}

func TestParseCategories_AcceptsToolWording(t *testing.T) {
	pop, err := ParsePopulation("prof")
	require.NoError(t, err)
	assert.Equal(t, PopulationProfessional, pop)

	fug, err := ParseFugacity("very low")
	require.NoError(t, err)
	assert.Equal(t, FugacityVeryLow, fug)

	vent, err := ParseVentilation("indoors - no or basic ventilation")
	require.NoError(t, err)
	assert.Equal(t, VentilationBasic, vent)

	vent, err = ParseVentilation("Indoors -  Enhanced Ventilation")
	require.NoError(t, err)
	assert.Equal(t, VentilationEnhanced, vent)

	dur, err := ParseDuration("15min - 1hr")
	require.NoError(t, err)
	assert.Equal(t, Duration15MinTo1Hr, dur)

	conc, err := ParseConcentration(">25%")
	require.NoError(t, err)
	assert.Equal(t, ConcentrationOver25Pct, conc)

	rpe, err := ParseRPE("RPE95%")
	require.NoError(t, err)
	assert.Equal(t, RPE95, rpe)

	rpe, err = ParseRPE("no RPE")
	require.NoError(t, err)
	assert.Equal(t, RPENone, rpe)

	ppe, err := ParsePPE("PPE80%")
	require.NoError(t, err)
	assert.Equal(t, PPE80, ppe)

	lev, err := ParseYesNo("lev", "Yes")
	require.NoError(t, err)
	assert.True(t, lev)
}

func TestParseCategories_RejectsUnknown(t *testing.T) {
	tests := []struct {
		name  string
		parse func() error
		field string
	}{
		{"population", func() error { _, err := ParsePopulation("consumer"); return err }, "population"},
		{"physical state", func() error { _, err := ParsePhysicalState("gas"); return err }, "physical_state"},
		{"fugacity", func() error { _, err := ParseFugacity("extreme"); return err }, "fugacity"},
		{"ventilation", func() error { _, err := ParseVentilation("indoors"); return err }, "ventilation"},
		{"duration", func() error { _, err := ParseDuration("8hr"); return err }, "duration"},
		{"concentration", func() error { _, err := ParseConcentration("50%"); return err }, "concentration"},
		{"rpe", func() error { _, err := ParseRPE("RPE99"); return err }, "rpe"},
		{"ppe", func() error { _, err := ParsePPE("PPE70"); return err }, "ppe"},
		{"lev", func() error { _, err := ParseYesNo("lev_dermal", "maybe"); return err }, "lev_dermal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCategory)
			var catErr *CategoryError
			require.True(t, errors.As(err, &catErr))
			assert.Equal(t, tt.field, catErr.Field)
		})
	}
}

func TestKeyTokens(t *testing.T) {
	assert.Equal(t, "very low", FugacityVeryLow.KeyToken())
	assert.Equal(t, "medium", FugacityMedium.KeyToken())
	assert.Equal(t, "ind", PopulationIndustrial.KeyToken())
	assert.Equal(t, "prof", PopulationProfessional.KeyToken())
	assert.Equal(t, "yes", YesNo(true))
	assert.Equal(t, "no", YesNo(false))
}

func TestScenarioValidate(t *testing.T) {
	s := Scenario{
		Process:       "PROC7",
		Population:    PopulationIndustrial,
		PhysicalState: StateLiquid,
		Fugacity:      FugacityLow,
		Ventilation:   VentilationGood,
		Duration:      DurationOver4Hr,
		Concentration: ConcentrationOver25Pct,
		RPE:           RPENone,
		PPE:           PPENone,
	}
	assert.NoError(t, s.Validate())

	s.Ventilation = "indoors - good ventilation"
	err := s.Validate()
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Contains(t, err.Error(), "ventilation")
}

func TestFugacityFromVapourPressure(t *testing.T) {
	tests := []struct {
		pa   float64
		want Fugacity
	}{
		{0, FugacityVeryLow},
		{0.009, FugacityVeryLow},
		{0.01, FugacityLow},
		{499.9, FugacityLow},
		{500, FugacityMedium},
		{7832.4225, FugacityMedium},
		{10000, FugacityMedium},
		{10001, FugacityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FugacityFromVapourPressure(tt.pa), "pa=%v", tt.pa)
	}
}
