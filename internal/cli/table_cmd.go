package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/traworker/internal/cli/formatter"
	"github.com/alexanderramin/traworker/internal/repository"
	"github.com/spf13/cobra"
)

func newTableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Manage the stored reference table",
	}

	cmd.AddCommand(
		newTableImportCmd(app),
		newTableInfoCmd(app),
		newTableLookupCmd(app),
	)

	return cmd
}

func newTableImportCmd(app *App) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import the lookup table from a CSV export or an ECETOC TRA workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Tables.Import(cmd.Context(), args[0], sheet)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImport(result.Import, result.Duplicates))
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", app.Config.TableSheet, "workbook sheet holding the lookup table")
	return cmd
}

func newTableInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the stored table and its import history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := app.Tables.Info(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTableInfo(info.Latest, info.Imports, info.Rows))
			return nil
		},
	}
}

func newTableLookupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KEY",
		Short: "Show the stored row for a lookup descriptor",
		Long: `Show the stored row for a lookup descriptor such as
"PROC7liquidnovery lowind". Case and spacing are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := app.Tables.Lookup(cmd.Context(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no reference row for %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReferenceRow(row))
			return nil
		},
	}
}
