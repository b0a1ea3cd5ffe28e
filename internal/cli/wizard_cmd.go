package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/traworker/internal/cli/formatter"
	"github.com/alexanderramin/traworker/internal/exposure"
	"github.com/alexanderramin/traworker/internal/importer"
	"github.com/spf13/cobra"
)

func newWizardCmd(app *App) *cobra.Command {
	var (
		table  tableFlags
		format outputFormat
		save   string
	)

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Enter a scenario interactively and evaluate it",
		Long: `Walk through the scenario inputs in a form pre-filled with the ethanol
example, then print the evaluation. --save writes the scenario to a JSON,
YAML or TOML file for later use with 'traworker evaluate'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunForm == nil && !app.interactive() {
				return errors.New("the wizard needs an interactive terminal; use 'traworker evaluate FILE' instead")
			}

			var saveFormat importer.Format
			if save != "" {
				f, err := importer.FormatFromPath(save)
				if err != nil {
					return err
				}
				saveFormat = f
			}

			ctx := cmd.Context()
			ref, err := table.resolve(ctx, app)
			if err != nil {
				return err
			}

			example, err := importer.Convert(importer.ExampleScenario())
			if err != nil {
				return err
			}
			m := newWizardModel(answersFromScenario(example))

			run := app.RunForm
			if run == nil {
				run = func(m *wizardModel) error {
					return runWizardProgram(m, cmd.InOrStdin(), cmd.OutOrStdout())
				}
			}
			if err := run(m); err != nil {
				return fmt.Errorf("running wizard: %w", err)
			}
			if !m.submitted() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}

			sf, err := m.answers.scenarioFile()
			if err != nil {
				return err
			}
			result, err := app.Evaluations.EvaluateFile(ctx, sf, ref)
			if err != nil {
				return err
			}

			if save != "" {
				data, err := importer.EncodeScenario(sf, saveFormat)
				if err != nil {
					return err
				}
				if err := os.WriteFile(save, data, 0o644); err != nil {
					return fmt.Errorf("saving scenario: %w", err)
				}
			}

			if err := writeResults(cmd.OutOrStdout(), app, format, []*exposure.Result{result}, false); err != nil {
				return err
			}
			if save != "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Saved scenario to "+save))
			}
			return nil
		},
	}

	table.register(cmd, app)
	addFormatFlag(cmd.Flags(), &format, app.Config.Format)
	cmd.Flags().StringVar(&save, "save", "", "write the entered scenario to FILE (.json, .yaml or .toml)")

	return cmd
}
