package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/traworker/internal/domain"
)

// FormatImport summarises a finished table import.
func FormatImport(imp *domain.TableImport, duplicates []string) string {
	var b strings.Builder
	source := imp.Source
	if imp.Sheet != "" {
		source += " [" + imp.Sheet + "]"
	}
	fmt.Fprintf(&b, "%s %d reference rows from %s\n", StyleGreen.Render("Imported"), imp.RowCount, Bold(source))
	fmt.Fprintf(&b, "  Import ID: %s\n", Dim(imp.ID))
	if len(duplicates) > 0 {
		fmt.Fprintf(&b, "  %s %d duplicate keys skipped (first row kept):\n", StyleYellow.Render("!"), len(duplicates))
		for _, d := range duplicates {
			fmt.Fprintf(&b, "    - %s\n", d)
		}
	}
	return b.String()
}

// FormatTableInfo describes the stored table and its import history.
func FormatTableInfo(latest *domain.TableImport, imports []*domain.TableImport, rows int) string {
	if latest == nil {
		return Dim("No reference table imported. Run 'traworker table import FILE'.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Reference table"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Source:   %s\n", Bold(latest.Source))
	if latest.Sheet != "" {
		fmt.Fprintf(&b, "  Sheet:    %s\n", latest.Sheet)
	}
	fmt.Fprintf(&b, "  Rows:     %d\n", rows)
	fmt.Fprintf(&b, "  Imported: %s\n", latest.ImportedAt)
	b.WriteString("\n")

	b.WriteString(Header("Imports"))
	b.WriteString("\n")
	tableRows := make([][]string, 0, len(imports))
	for _, imp := range imports {
		tableRows = append(tableRows, []string{
			imp.ImportedAt,
			imp.Source,
			fmt.Sprintf("%d", imp.RowCount),
			fmt.Sprintf("%d", imp.Duplicates),
			Dim(imp.ID),
		})
	}
	b.WriteString(RenderTable([]string{"Imported", "Source", "Rows", "Duplicates", "ID"}, tableRows))
	return b.String()
}

// FormatReferenceRow shows the values stored for one lookup key.
func FormatReferenceRow(row *domain.ReferenceRow) string {
	return RenderTable(
		[]string{"Key", "Inhalation", "Dermal", "Local dermal", "LEV inh.", "LEV derm."},
		[][]string{{
			row.Key,
			FormatValue(row.Inhalation),
			FormatValue(row.Dermal),
			FormatValue(row.LocalDermal),
			FormatValue(row.LEVInhalation),
			FormatValue(row.LEVDermal),
		}},
	)
}
