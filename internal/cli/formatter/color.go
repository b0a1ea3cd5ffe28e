package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/exposure"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// rcrWarnAbove is the ratio from which an acceptable RCR is shown in yellow.
const rcrWarnAbove = 0.8

// RCRColor returns the style for a risk characterisation ratio: red above
// 1, yellow close to 1, green otherwise. Sentinels are dimmed, except
// invalid input which is purple so it stands out from n/a.
func RCRColor(rcr domain.Value) lipgloss.Style {
	switch {
	case rcr.IsInvalidInput():
		return StylePurple
	case rcr.IsNotApplicable():
		return StyleDim
	case exposure.Exceeds(rcr):
		return StyleRed
	}
	if v, _ := rcr.Float(); v > rcrWarnAbove {
		return StyleYellow
	}
	return StyleGreen
}

// VerdictIndicator returns a colored verdict such as "● ACCEPTABLE".
func VerdictIndicator(rcrs exposure.RCRs) string {
	if rcrs.Acceptable() {
		return StyleGreen.Render("● ACCEPTABLE")
	}
	return StyleRed.Render("● LIMIT EXCEEDED")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
