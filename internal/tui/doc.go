// Package tui provides terminal user interface components for vlsm-ctl.
//
// This package uses the Bubble Tea framework for the interactive
// allocation form and the saved-plan picker.
//
// # Allocation Form
//
// The form has a network field, a host list (one count per line) and a
// Generate button:
//
//	res, err := tui.RunForm(tui.FormOptions{
//	    Network: cfg.DefaultNetwork,
//	    Hosts:   cfg.DefaultHostsText(),
//	})
//
// Keys: Tab/Shift+Tab move focus, Enter on Generate or Ctrl+S calculates,
// Esc or Ctrl+C quits. The result table, or the error, is shown below the
// button. RunForm returns the last successful result.
//
// # Plan Picker
//
// RunPicker lists saved plans with filtering and returns the chosen one,
// or nil if the user quits.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
