package cli

import (
	"io"

	"github.com/alexanderramin/traworker/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type wizardKeyMap struct {
	Next   key.Binding
	Back   key.Binding
	Cancel key.Binding
}

func newWizardKeyMap() wizardKeyMap {
	return wizardKeyMap{
		Next:   key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "next")),
		Back:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k wizardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Cancel}
}

func (k wizardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// wizardModel wraps the scenario form with a title and key help. It quits
// the program once the form is submitted or cancelled.
type wizardModel struct {
	form      *huh.Form
	answers   *wizardAnswers
	keys      wizardKeyMap
	help      help.Model
	cancelled bool
}

func newWizardModel(answers *wizardAnswers) *wizardModel {
	return &wizardModel{
		form:    newScenarioForm(answers),
		answers: answers,
		keys:    newWizardKeyMap(),
		help:    help.New(),
	}
}

func (m *wizardModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.cancelled = true
		return m, tea.Quit
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = size.Width
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, tea.Quit
	case huh.StateAborted:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *wizardModel) View() string {
	if m.done() {
		return ""
	}
	return formatter.Header("New exposure scenario") + "\n\n" + m.form.View() + "\n" + m.help.View(m.keys) + "\n"
}

// done reports whether the form was submitted or cancelled.
func (m *wizardModel) done() bool {
	return m.cancelled || m.form.State == huh.StateCompleted
}

// submitted reports whether the form was filled in completely.
func (m *wizardModel) submitted() bool {
	return !m.cancelled && m.form.State == huh.StateCompleted
}

// runWizardProgram runs the model as a bubbletea program.
func runWizardProgram(m *wizardModel, in io.Reader, out io.Writer) error {
	_, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	return err
}
