package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/exposure"
)

// route is one exposure route as shown in the report.
type route struct {
	name     string
	unit     string
	baseline domain.Value
	estimate domain.Value
	limit    domain.Limit
	rcr      domain.Value
}

func routes(r *exposure.Result) []route {
	return []route{
		{"Inhalation, long term", "mg/m3", r.Baselines.Inhalation, r.Exposures.Inhalation8hr, r.Scenario.Limits.LongTermInhalation, r.RCRs.LongTermInhalation},
		{"Dermal, long term", "mg/kg/day", r.Baselines.Dermal, r.Exposures.Dermal8hr, r.Scenario.Limits.LongTermDermal, r.RCRs.LongTermDermal},
		{"Inhalation, short term", "mg/m3", domain.NotApplicable(), r.Exposures.ShortTerm, r.Scenario.Limits.ShortTermInhalation, r.RCRs.ShortTermInhalation},
		{"Dermal, local", "ug/cm2", r.Baselines.LocalDermal, r.Exposures.LocalDermal, r.Scenario.Limits.LocalDermal, r.RCRs.LocalDermal},
	}
}

// FormatValue renders a tagged value; sentinels keep their tool wording.
func FormatValue(v domain.Value) string {
	return v.String()
}

// FormatRCR renders a ratio colored by its verdict.
func FormatRCR(v domain.Value) string {
	return RCRColor(v).Render(v.String())
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatResult renders the full report of one evaluation.
func FormatResult(r *exposure.Result) string {
	s := r.Scenario
	var b strings.Builder

	title := s.SubstanceName
	if s.CASNumber != "" {
		title = fmt.Sprintf("%s (%s)", s.SubstanceName, s.CASNumber)
	}

	fmt.Fprintf(&b, "%s  %s\n\n", Bold(title), VerdictIndicator(r.RCRs))
	fmt.Fprintf(&b, "  Process:        %s, %s\n", s.Process, s.Population)
	fmt.Fprintf(&b, "  State:          %s, fugacity %s\n", s.PhysicalState, s.Fugacity.KeyToken())
	fmt.Fprintf(&b, "  Ventilation:    %s\n", s.Ventilation.Label())
	fmt.Fprintf(&b, "  Duration:       %s at %s\n", s.Duration, s.Concentration)
	fmt.Fprintf(&b, "  Controls:       LEV inhalation %s, LEV dermal %s, RPE %s, PPE %s\n",
		domain.YesNo(s.InhalationLEV), domain.YesNo(s.DermalLEV), s.RPE, s.PPE)

	key := r.Key
	if !r.RowFound {
		key += " " + StyleYellow.Render("(not in table)")
	}
	fmt.Fprintf(&b, "  Lookup key:     %s\n", key)

	b.WriteString("\n")
	b.WriteString(Header("Factors"))
	b.WriteString("\n")
	f := r.Factors
	b.WriteString(RenderTable(
		[]string{"Ventilation", "Duration inh.", "Duration derm.", "Concentration", "RPE", "PPE", "Short term"},
		[][]string{{
			formatFactor(f.Ventilation),
			formatFactor(f.DurationInhalation),
			formatFactor(f.DurationDermal),
			formatFactor(f.Concentration),
			formatFactor(f.RPE),
			formatFactor(f.PPE),
			formatFactor(f.ShortTermMultiplier),
		}},
	))

	b.WriteString("\n")
	b.WriteString(Header("Exposure"))
	b.WriteString("\n")
	rows := make([][]string, 0, 4)
	for _, rt := range routes(r) {
		rows = append(rows, []string{
			rt.name,
			FormatValue(rt.baseline),
			FormatValue(rt.estimate),
			rt.limit.String(),
			FormatRCR(rt.rcr),
			Dim(rt.unit),
		})
	}
	b.WriteString(RenderTable([]string{"Route", "Initial", "Predicted", "Limit", "RCR", "Unit"}, rows))

	return RenderBox("Worker exposure", strings.TrimRight(b.String(), "\n"))
}

// FormatResultSummary renders one line per evaluation.
func FormatResultSummary(results []*exposure.Result) string {
	headers := []string{"Substance", "Process", "Key", "RCR inh.", "RCR derm.", "RCR short", "RCR local", "Verdict"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Scenario.SubstanceName,
			string(r.Scenario.Process),
			r.Key,
			FormatRCR(r.RCRs.LongTermInhalation),
			FormatRCR(r.RCRs.LongTermDermal),
			FormatRCR(r.RCRs.ShortTermInhalation),
			FormatRCR(r.RCRs.LocalDermal),
			VerdictIndicator(r.RCRs),
		})
	}
	return RenderTable(headers, rows)
}
