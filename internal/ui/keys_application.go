package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"prlinks/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	EditQuery key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
	Refresh   key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		EditQuery: buildBinding("edit_query", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Refresh:   buildBinding("refresh", defaults, customKeys),
	}
}
