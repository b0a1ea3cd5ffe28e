package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/traworker/internal/exposure"
	"github.com/alexanderramin/traworker/internal/reftable"
	"github.com/alexanderramin/traworker/internal/service"
	"github.com/spf13/cobra"
)

// tableFlags selects the reference table for a command.
type tableFlags struct {
	path  string
	sheet string
}

func (f *tableFlags) register(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVar(&f.path, "table", "", "reference table file (.csv or .xlsx), overrides the stored table")
	cmd.Flags().StringVar(&f.sheet, "sheet", app.Config.TableSheet, "workbook sheet holding the lookup table")
}

func (f *tableFlags) resolve(ctx context.Context, app *App) (*reftable.Table, error) {
	return app.Tables.Resolve(ctx, service.ResolveRequest{
		Path:       f.path,
		Sheet:      f.sheet,
		ConfigPath: app.Config.TablePath,
	})
}

func newEvaluateCmd(app *App) *cobra.Command {
	var (
		table   tableFlags
		format  outputFormat
		summary bool
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate FILE...",
		Short: "Estimate worker exposure and RCRs for scenario files",
		Long: `Evaluate one or more scenario files (JSON, YAML or TOML) against the
reference table. The table is taken from --table, then the imported table,
then table_path in the config file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ref, err := table.resolve(ctx, app)
			if err != nil {
				return err
			}

			results, err := app.Evaluations.EvaluatePaths(ctx, args, ref)
			if err != nil {
				return err
			}

			if err := writeResults(cmd.OutOrStdout(), app, format, results, summary); err != nil {
				return err
			}

			if strict {
				return checkAcceptable(results)
			}
			return nil
		},
	}

	table.register(cmd, app)
	addFormatFlag(cmd.Flags(), &format, app.Config.Format)
	cmd.Flags().BoolVar(&summary, "summary", false, "print one table row per scenario instead of full reports")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any RCR exceeds 1")

	return cmd
}

// checkAcceptable fails when any scenario has an RCR above 1.
func checkAcceptable(results []*exposure.Result) error {
	var exceeded int
	for _, r := range results {
		if !r.RCRs.Acceptable() {
			exceeded++
		}
	}
	if exceeded > 0 {
		return fmt.Errorf("%d of %d scenarios exceed an exposure limit", exceeded, len(results))
	}
	return nil
}
