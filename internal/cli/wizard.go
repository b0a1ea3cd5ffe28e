package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/traworker/internal/cli/formatter"
	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// traHuhTheme returns a custom huh theme using the Gruvbox palette.
func traHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers holds the form fields. Numbers stay text until the form is
// submitted; blank limits mean no limit.
type wizardAnswers struct {
	Substance      string
	CAS            string
	MolWeight      string
	VapourPressure string

	Proc          string
	Population    string
	State         string
	Fugacity      string
	Ventilation   string
	Duration      string
	Concentration string

	LEVInhalation bool
	RPE           string
	PPE           string
	LEVDermal     bool

	LongTermInhalation  string
	LongTermDermal      string
	ShortTermInhalation string
	LocalDermal         string
}

// answersFromScenario pre-fills the form with a scenario.
func answersFromScenario(s domain.Scenario) *wizardAnswers {
	a := &wizardAnswers{
		Substance:           s.SubstanceName,
		CAS:                 s.CASNumber,
		MolWeight:           formatOptionalFloat(s.MolWeight, s.MolWeight > 0),
		Proc:                string(s.Process),
		Population:          string(s.Population),
		State:               string(s.PhysicalState),
		Fugacity:            string(s.Fugacity),
		Ventilation:         string(s.Ventilation),
		Duration:            string(s.Duration),
		Concentration:       string(s.Concentration),
		LEVInhalation:       s.InhalationLEV,
		RPE:                 string(s.RPE),
		PPE:                 string(s.PPE),
		LEVDermal:           s.DermalLEV,
		LongTermInhalation:  formatOptionalFloat(s.Limits.LongTermInhalation.Value(), s.Limits.LongTermInhalation.IsSet()),
		LongTermDermal:      formatOptionalFloat(s.Limits.LongTermDermal.Value(), s.Limits.LongTermDermal.IsSet()),
		ShortTermInhalation: formatOptionalFloat(s.Limits.ShortTermInhalation.Value(), s.Limits.ShortTermInhalation.IsSet()),
		LocalDermal:         formatOptionalFloat(s.Limits.LocalDermal.Value(), s.Limits.LocalDermal.IsSet()),
	}
	if s.VapourPressure != nil {
		a.VapourPressure = formatOptionalFloat(*s.VapourPressure, true)
	}
	return a
}

// scenarioFile turns the answers into a scenario file for validation and
// saving.
func (a *wizardAnswers) scenarioFile() (*importer.ScenarioFile, error) {
	var errs []error
	number := func(field, s string) *float64 {
		v, err := parseOptionalFloat(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return v
	}

	sf := &importer.ScenarioFile{
		SubstanceName:  strings.TrimSpace(a.Substance),
		CASNumber:      strings.TrimSpace(a.CAS),
		MolWeight:      number("mol_weight", a.MolWeight),
		VapourPressure: number("vapour_pressure", a.VapourPressure),
		Limits: importer.LimitsImport{
			LongTermInhalation:  number("limits.long_term_inhalation", a.LongTermInhalation),
			LongTermDermal:      number("limits.long_term_dermal", a.LongTermDermal),
			ShortTermInhalation: number("limits.short_term_inhalation", a.ShortTermInhalation),
			LocalDermal:         number("limits.local_dermal", a.LocalDermal),
		},
		Proc:          a.Proc,
		Population:    a.Population,
		PhysicalState: a.State,
		Fugacity:      a.Fugacity,
		Ventilation:   a.Ventilation,
		Duration:      a.Duration,
		Concentration: a.Concentration,
		LEVInhalation: importer.Switch(domain.YesNo(a.LEVInhalation)),
		RPE:           a.RPE,
		PPE:           a.PPE,
		LEVDermal:     importer.Switch(domain.YesNo(a.LEVDermal)),
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return sf, nil
}

func formatOptionalFloat(f float64, set bool) string {
	if !set {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &v, nil
}

// validateOptionalNumber accepts empty or a non-negative number.
func validateOptionalNumber(s string) error {
	v, err := parseOptionalFloat(s)
	if err != nil {
		return errors.New("enter a number")
	}
	if v != nil && *v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func processOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.ValidProcessCategories))
	for i := 1; i <= len(domain.ValidProcessCategories); i++ {
		code := fmt.Sprintf("PROC%d", i)
		opts = append(opts, huh.NewOption(code, code))
	}
	return opts
}

// newScenarioForm builds the four-page scenario form bound to a.
func newScenarioForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Substance name").Value(&a.Substance).Validate(validateRequired),
			huh.NewInput().Title("CAS number").Placeholder("optional").Value(&a.CAS),
			huh.NewInput().Title("Molecular weight (g/mol)").Description("Required for solids").
				Value(&a.MolWeight).Validate(validateOptionalNumber),
			huh.NewInput().Title("Vapour pressure (Pa)").Description("Sets the fugacity band of a liquid when left on derive").
				Value(&a.VapourPressure).Validate(validateOptionalNumber),
		).Title("Substance"),

		huh.NewGroup(
			huh.NewSelect[string]().Title("Process category").Options(processOptions()...).Value(&a.Proc),
			huh.NewSelect[string]().Title("Population").Options(
				huh.NewOption("Industrial", string(domain.PopulationIndustrial)),
				huh.NewOption("Professional", string(domain.PopulationProfessional)),
			).Value(&a.Population),
			huh.NewSelect[string]().Title("Physical state").Options(
				huh.NewOption("Liquid", string(domain.StateLiquid)),
				huh.NewOption("Solid", string(domain.StateSolid)),
			).Value(&a.State),
			huh.NewSelect[string]().Title("Fugacity").Description("Volatility for liquids, dustiness for solids").Options(
				huh.NewOption("Derive from vapour pressure", ""),
				huh.NewOption("Very low", string(domain.FugacityVeryLow)),
				huh.NewOption("Low", string(domain.FugacityLow)),
				huh.NewOption("Medium", string(domain.FugacityMedium)),
				huh.NewOption("High", string(domain.FugacityHigh)),
			).Value(&a.Fugacity),
			huh.NewSelect[string]().Title("Ventilation").Options(
				huh.NewOption(domain.VentilationOutdoors.Label(), string(domain.VentilationOutdoors)),
				huh.NewOption(domain.VentilationBasic.Label(), string(domain.VentilationBasic)),
				huh.NewOption(domain.VentilationGood.Label(), string(domain.VentilationGood)),
				huh.NewOption(domain.VentilationEnhanced.Label(), string(domain.VentilationEnhanced)),
			).Value(&a.Ventilation),
			huh.NewSelect[string]().Title("Duration per shift").Options(huh.NewOptions(
				string(domain.DurationUnder15Min),
				string(domain.Duration15MinTo1Hr),
				string(domain.Duration1To4Hr),
				string(domain.DurationOver4Hr),
			)...).Value(&a.Duration),
			huh.NewSelect[string]().Title("Concentration in mixture").Options(huh.NewOptions(
				string(domain.ConcentrationUnder1Pct),
				string(domain.Concentration1To5Pct),
				string(domain.Concentration5To25Pct),
				string(domain.ConcentrationOver25Pct),
			)...).Value(&a.Concentration),
		).Title("Task"),

		huh.NewGroup(
			huh.NewConfirm().Title("Local exhaust ventilation (inhalation)?").Affirmative("Yes").Negative("No").Value(&a.LEVInhalation),
			huh.NewSelect[string]().Title("Respiratory protection").Options(
				huh.NewOption("No RPE", string(domain.RPENone)),
				huh.NewOption("RPE 90%", string(domain.RPE90)),
				huh.NewOption("RPE 95%", string(domain.RPE95)),
			).Value(&a.RPE),
			huh.NewSelect[string]().Title("Gloves").Options(
				huh.NewOption("No PPE", string(domain.PPENone)),
				huh.NewOption("PPE 80%", string(domain.PPE80)),
				huh.NewOption("PPE 90%", string(domain.PPE90)),
				huh.NewOption("PPE 95%", string(domain.PPE95)),
			).Value(&a.PPE),
			huh.NewConfirm().Title("Apply LEV to dermal exposure?").Affirmative("Yes").Negative("No").Value(&a.LEVDermal),
		).Title("Controls"),

		huh.NewGroup(
			huh.NewInput().Title("Long-term inhalation limit (mg/m3)").Placeholder("none").
				Value(&a.LongTermInhalation).Validate(validateOptionalNumber),
			huh.NewInput().Title("Long-term dermal limit (mg/kg/day)").Placeholder("none").
				Value(&a.LongTermDermal).Validate(validateOptionalNumber),
			huh.NewInput().Title("Short-term inhalation limit (mg/m3)").Placeholder("none").
				Value(&a.ShortTermInhalation).Validate(validateOptionalNumber),
			huh.NewInput().Title("Local dermal limit (ug/cm2)").Placeholder("none").
				Value(&a.LocalDermal).Validate(validateOptionalNumber),
		).Title("Limits"),
	).WithTheme(traHuhTheme()).WithShowHelp(false)
}
