package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
)

// planItem implements list.Item for plan display
type planItem struct {
	plan *config.Plan
}

func (i planItem) Title() string {
	return i.plan.Name
}

func (i planItem) Description() string {
	desc := fmt.Sprintf("%s | %s", i.plan.Network, i.plan.HostsText())
	if i.plan.Description != "" {
		desc = truncate(i.plan.Description, 40) + " | " + desc
	}
	return desc
}

func (i planItem) FilterValue() string {
	return i.plan.Name
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// PickerModel is the bubbletea model for choosing a saved plan.
type PickerModel struct {
	list     list.Model
	selected *config.Plan
	quitting bool
}

// NewPicker creates a picker over plans.
func NewPicker(plans []*config.Plan) PickerModel {
	items := make([]list.Item, len(plans))
	for i, p := range plans {
		items[i] = planItem{plan: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "vlsm-ctl - Select Plan"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return PickerModel{list: l}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(planItem); ok {
				m.selected = item.plan
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Open  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Selected returns the chosen plan, or nil if the picker was cancelled.
func (m PickerModel) Selected() *config.Plan {
	return m.selected
}

// RunPicker lets the user choose one of plans. It returns nil when there
// are no plans or the user quits.
func RunPicker(plans []*config.Plan) (*config.Plan, error) {
	if len(plans) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(NewPicker(plans), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(PickerModel).Selected(), nil
}
