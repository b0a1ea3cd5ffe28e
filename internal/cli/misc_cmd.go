package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/importer"
	"github.com/spf13/cobra"
)

func newFugacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fugacity PASCAL",
		Short: "Show the volatility band of a liquid for its vapour pressure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pa, err := strconv.ParseFloat(args[0], 64)
			if err != nil || pa < 0 {
				return fmt.Errorf("vapour pressure must be a non-negative number of pascal, got %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.FugacityFromVapourPressure(pa).KeyToken())
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := importer.EncodeScenario(importer.ExampleScenario(), f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "yaml", "scenario format: json, yaml or toml")
	return cmd
}
