package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/vlsm-ctl/internal/render"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// formField identifies the focused widget.
type formField int

const (
	fieldNetwork formField = iota
	fieldHosts
	fieldGenerate
	fieldCount
)

// AllocateFunc runs an allocation from the raw form inputs.
type AllocateFunc func(network, hosts string) (*vlsm.Result, error)

// formModel holds the two inputs, the button and the last outcome.
type formModel struct {
	focus formField

	networkInput textinput.Model
	hostsArea    textarea.Model

	allocate AllocateFunc
	result   *vlsm.Result
	err      error

	width  int
	height int
}

// form styles
var (
	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	formLabelStyle = lipgloss.NewStyle().
			Bold(true)

	formDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))

	activeButtonStyle = buttonStyle.
				Bold(true).
				Foreground(lipgloss.Color("39")).
				BorderForeground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func newFormModel(network, hosts string, allocate AllocateFunc) formModel {
	ni := textinput.New()
	ni.Placeholder = "192.168.1.0/24"
	ni.CharLimit = 32
	ni.Width = 32
	ni.SetValue(network)
	ni.Focus()

	ha := textarea.New()
	ha.Placeholder = "One host count per line"
	ha.ShowLineNumbers = false
	ha.SetWidth(32)
	ha.SetHeight(8)
	ha.SetValue(hosts)
	ha.Blur()

	if allocate == nil {
		allocate = vlsm.Allocate
	}

	return formModel{
		focus:        fieldNetwork,
		networkInput: ni,
		hostsArea:    ha,
		allocate:     allocate,
	}
}

func (f *formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, cmd). done is true once
// the user quits the form.
func (f *formModel) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		return false, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return true, nil
		case tea.KeyCtrlS:
			f.submit()
			return false, nil
		case tea.KeyTab:
			return false, f.setFocus((f.focus + 1) % fieldCount)
		case tea.KeyShiftTab:
			return false, f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
		case tea.KeyEnter:
			switch f.focus {
			case fieldNetwork:
				return false, f.setFocus(fieldHosts)
			case fieldGenerate:
				f.submit()
				return false, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldNetwork:
		f.networkInput, cmd = f.networkInput.Update(msg)
	case fieldHosts:
		f.hostsArea, cmd = f.hostsArea.Update(msg)
	}
	return false, cmd
}

func (f *formModel) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.networkInput.Blur()
	f.hostsArea.Blur()

	switch field {
	case fieldNetwork:
		return f.networkInput.Focus()
	case fieldHosts:
		return f.hostsArea.Focus()
	}
	return nil
}

// submit runs the allocation. A failure clears the previous table.
func (f *formModel) submit() {
	res, err := f.allocate(f.networkInput.Value(), f.hostsArea.Value())
	if err != nil {
		f.result = nil
		f.err = err
		return
	}
	f.result = res
	f.err = nil
}

func (f *formModel) View() string {
	var b strings.Builder

	b.WriteString(formTitleStyle.Render("VLSM Subnet Calculator"))
	b.WriteString("\n")

	b.WriteString(formLabelStyle.Render("Network (IP/prefix):"))
	b.WriteString("\n")
	b.WriteString(f.networkInput.View())
	b.WriteString("\n\n")

	b.WriteString(formLabelStyle.Render("Hosts per subnet:"))
	b.WriteString("\n")
	b.WriteString(f.hostsArea.View())
	b.WriteString("\n")

	if f.focus == fieldGenerate {
		b.WriteString(activeButtonStyle.Render("Generate"))
	} else {
		b.WriteString(buttonStyle.Render("Generate"))
	}
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("Tab to move, Enter on Generate or Ctrl+S to calculate, Esc to quit."))
	b.WriteString("\n\n")

	switch {
	case f.err != nil:
		b.WriteString(errorStyle.Render(errorText(f.err)))
		b.WriteString("\n")
	case f.result != nil:
		b.WriteString(render.Table(f.result))
		b.WriteString("\n")
	}

	return b.String()
}

// errorText prefixes the message with its class and kind.
func errorText(err error) string {
	switch kind := vlsm.KindOf(err); {
	case kind == 0:
		return fmt.Sprintf("Error: %v", err)
	case kind.IsInputError():
		return fmt.Sprintf("Input error (%s): %s", kind, messageOf(err))
	default:
		return fmt.Sprintf("Calculation error (%s): %s", kind, messageOf(err))
	}
}

func messageOf(err error) string {
	var vErr *vlsm.Error
	if errors.As(err, &vErr) {
		return vErr.Message()
	}
	return err.Error()
}

// FormOptions configures RunForm.
type FormOptions struct {
	Network  string
	Hosts    string
	Allocate AllocateFunc
}

// FormModel is the bubbletea model for the allocation form.
type FormModel struct {
	form     formModel
	quitting bool
}

// NewForm creates a form prefilled from opts.
func NewForm(opts FormOptions) FormModel {
	return FormModel{form: newFormModel(opts.Network, opts.Hosts, opts.Allocate)}
}

func (m FormModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := m.form.Update(msg)
	if done {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m FormModel) View() string {
	if m.quitting {
		return ""
	}
	return m.form.View()
}

// Result returns the last successful allocation, if any.
func (m FormModel) Result() *vlsm.Result {
	return m.form.result
}

// RunForm runs the interactive form until the user quits and returns the
// last successful allocation.
func RunForm(opts FormOptions) (*vlsm.Result, error) {
	p := tea.NewProgram(NewForm(opts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(FormModel).Result(), nil
}
