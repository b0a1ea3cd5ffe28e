package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleJSON = `{
  "substance_name": "ethanol",
  "cas_number": "64-17-5",
  "mol_weight": 46.069,
  "vapour_pressure": 7832.4225,
  "limits": {"long_term_inhalation": 10, "long_term_dermal": 10, "short_term_inhalation": 10, "local_dermal": 10},
  "proc": "PROC7",
  "population": "ind",
  "physical_state": "liquid",
  "fugacity": "very low",
  "ventilation": "indoors - no or basic ventilation",
  "duration": ">4hr",
  "concentration": ">25%",
  "lev_inhalation": false,
  "rpe": "no RPE",
  "ppe": "no PPE",
  "lev_dermal": "no"
}`

const exampleYAML = `substance_name: ethanol
cas_number: 64-17-5
mol_weight: 46.069
vapour_pressure: 7832.4225
limits:
  long_term_inhalation: 10
  long_term_dermal: 10
  short_term_inhalation: 10
  local_dermal: 10
proc: PROC7
population: ind
physical_state: liquid
fugacity: very low
ventilation: indoors - no or basic ventilation
duration: ">4hr"
concentration: ">25%"
lev_inhalation: false
rpe: no RPE
ppe: no PPE
lev_dermal: "no"
`

const exampleTOML = `substance_name = "ethanol"
cas_number = "64-17-5"
mol_weight = 46.069
vapour_pressure = 7832.4225
proc = "PROC7"
population = "ind"
physical_state = "liquid"
fugacity = "very low"
ventilation = "indoors - no or basic ventilation"
duration = ">4hr"
concentration = ">25%"
lev_inhalation = false
rpe = "no RPE"
ppe = "no PPE"
lev_dermal = "no"

[limits]
long_term_inhalation = 10.0
long_term_dermal = 10.0
short_term_inhalation = 10.0
local_dermal = 10.0
`

func TestDecodeScenario_AllFormatsAgree(t *testing.T) {
	inputs := map[Format]string{
		FormatJSON: exampleJSON,
		FormatYAML: exampleYAML,
		FormatTOML: exampleTOML,
	}
	want, err := Convert(ExampleScenario())
	require.NoError(t, err)

	for format, data := range inputs {
		t.Run(string(format), func(t *testing.T) {
			sf, err := DecodeScenario([]byte(data), format)
			require.NoError(t, err)
			assert.Equal(t, Switch("no"), sf.LEVInhalation)

			got, err := Convert(sf)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeScenario_UnknownKeys(t *testing.T) {
	_, err := DecodeScenario([]byte(`{"substance_name": "x", "vapor_pressure": 1}`), FormatJSON)
	assert.ErrorContains(t, err, "vapor_pressure")

	_, err = DecodeScenario([]byte("substance_name: x\nprocess: PROC1\n"), FormatYAML)
	assert.ErrorContains(t, err, "process")

	_, err = DecodeScenario([]byte("substance_name = \"x\"\nlev = \"yes\"\n"), FormatTOML)
	assert.EqualError(t, err, "unknown keys: lev")
}

func TestSwitch_Booleans(t *testing.T) {
	sf, err := DecodeScenario([]byte(`{"lev_inhalation": true, "lev_dermal": "yes"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, Switch("yes"), sf.LEVInhalation)
	assert.Equal(t, Switch("yes"), sf.LEVDermal)

	sf, err = DecodeScenario([]byte("lev_inhalation = true\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Switch("yes"), sf.LEVInhalation)

	_, err = DecodeScenario([]byte(`{"lev_inhalation": 3}`), FormatJSON)
	assert.Error(t, err)
}

func TestEncodeScenario_RoundTrip(t *testing.T) {
	want, err := Convert(ExampleScenario())
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeScenario(FromScenario(want), format)
			require.NoError(t, err)

			sf, err := DecodeScenario(data, format)
			require.NoError(t, err)
			got, err := Convert(sf)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFromScenario_OmitsUnsetLimits(t *testing.T) {
	s := domain.Scenario{Limits: domain.Limits{LocalDermal: domain.LimitOf(0)}}
	sf := FromScenario(s)
	assert.Nil(t, sf.Limits.LongTermInhalation)
	require.NotNil(t, sf.Limits.LocalDermal)
	assert.Equal(t, 0.0, *sf.Limits.LocalDermal)
	assert.Nil(t, sf.MolWeight)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	f, err = FormatFromPath("/tmp/scenario.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ethanol.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleYAML), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "ethanol", s.SubstanceName)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"substance_name": "x", "proc": "PROC99"}`), 0o644))
	_, err = LoadScenario(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Contains(t, err.Error(), "bad.json")

	_, err = LoadScenario(filepath.Join(dir, "scenario.txt"))
	assert.ErrorContains(t, err, "unsupported scenario format")

	_, err = LoadScenario(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
