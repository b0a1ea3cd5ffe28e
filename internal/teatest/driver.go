// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are drained in place, so form
// flows can be asserted without a terminal or a tea.Program goroutine.
// Cmds that block (cursor blink timers) are skipped after a short timeout.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds command draining so a self-scheduling Cmd cannot loop
// forever.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from timer
// Cmds such as cursor blinks.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been drained. Later input is ignored,
	// as it would be by a real program.
	Quitting bool
}

// New creates a Driver for the given model and applies options. Call
// DrainInit before sending input.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit runs the model's Init command and everything it produces.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// PressKey sends a character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ClearInput deletes n characters before the cursor.
func (d *Driver) ClearInput(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

// EnterUntilQuit presses Enter until the model quits, at most max times.
// It returns the number of presses.
func (d *Driver) EnterUntilQuit(max int) int {
	d.T.Helper()
	n := 0
	for ; n < max && !d.Quitting; n++ {
		d.PressEnter()
	}
	return n
}

// View returns the rendered model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if cmds, ok := cmdList(msg); ok {
		for _, sub := range cmds {
			if sub != nil {
				d.drainCmd(sub, depth+1)
			}
		}
		return
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// cmdList unpacks tea.BatchMsg and the unexported sequence message, both
// slices of Cmds. Sequences are run in order, which is all a synchronous
// driver can offer.
func cmdList(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i] = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// execCmdWithTimeout runs cmd and returns its message, or nil when it does
// not return within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects the unexported blink messages of bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
