package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/traworker/internal/cli/formatter"
	"github.com/alexanderramin/traworker/internal/exposure"
	"github.com/spf13/pflag"
)

// outputFormat is the --format flag value.
type outputFormat string

const (
	outputAuto  outputFormat = "auto"
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(strings.TrimSpace(s))); v {
	case outputAuto, outputTable, outputJSON, outputYAML:
		*f = v
		return nil
	}
	return fmt.Errorf("must be one of auto, table, json, yaml")
}

func (f *outputFormat) Type() string { return "format" }

// addFormatFlag registers --format with the configured default.
func addFormatFlag(fs *pflag.FlagSet, f *outputFormat, def string) {
	*f = outputFormat(def)
	if *f == "" {
		*f = outputAuto
	}
	fs.VarP(f, "format", "o", "output format: auto, table, json or yaml")
}

// resolve turns auto into table on a terminal and json otherwise.
func (f outputFormat) resolve(app *App) outputFormat {
	if f != outputAuto {
		return f
	}
	if app.interactive() {
		return outputTable
	}
	return outputJSON
}

// writeResults prints results in the chosen format. summary replaces the
// per-result reports with one table.
func writeResults(w io.Writer, app *App, f outputFormat, results []*exposure.Result, summary bool) error {
	resolved := f.resolve(app)
	switch resolved {
	case outputJSON, outputYAML:
		data, err := formatter.EncodeResults(results, string(resolved))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if summary {
		_, err := fmt.Fprint(w, formatter.FormatResultSummary(results))
		return err
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintln(w, formatter.FormatResult(r)); err != nil {
			return err
		}
	}
	return nil
}
