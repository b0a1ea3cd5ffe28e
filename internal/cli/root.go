package cli

import (
	"github.com/alexanderramin/traworker/internal/config"
	"github.com/alexanderramin/traworker/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Evaluations service.EvaluationService
	Tables      service.TableService
	Config      config.Config

	// IsInteractive reports whether stdin and stdout are a terminal. It picks
	// the table output in auto mode and gates the wizard.
	IsInteractive func() bool

	// RunForm runs the scenario wizard. Nil runs it as a bubbletea program
	// on the command's input and output.
	RunForm func(m *wizardModel) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "traworker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "traworker",
		Short:         "ECETOC TRA worker exposure and risk characterisation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEvaluateCmd(app),
		newWizardCmd(app),
		newTableCmd(app),
		newFugacityCmd(),
		newExampleCmd(),
	)

	return root
}
