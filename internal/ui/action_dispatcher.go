package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ActionDispatcher maps key definitions to UI messages.
type ActionDispatcher struct {
	selectedURL string
}

// NewActionDispatcher creates a new action dispatcher.
// selectedURL is empty when no row is selected.
func NewActionDispatcher(selectedURL string) *ActionDispatcher {
	return &ActionDispatcher{selectedURL: selectedURL}
}

// Dispatch returns the tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if selMsg, ok := def.Msg.(SelectionAwareMsg); ok {
		if d.selectedURL == "" {
			return nil
		}
		return selMsg.WithSelection(d.selectedURL)
	}

	return def.Msg
}
