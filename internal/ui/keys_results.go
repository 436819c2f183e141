package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"prlinks/internal/config"
)

// ResultKeys defines key bindings for the results tabs
type ResultKeys struct {
	CopyLinks  key.Binding
	Down       key.Binding
	Filter     key.Binding
	OpenPR     key.Binding
	ToggleView key.Binding
	Up         key.Binding
}

func newResultKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ResultKeys {
	return ResultKeys{
		CopyLinks:  buildBinding("copy_links", defaults, customKeys),
		Down:       buildBinding("down", defaults, customKeys),
		Filter:     buildBinding("filter", defaults, customKeys),
		OpenPR:     buildBinding("open_pr", defaults, customKeys),
		ToggleView: buildBinding("toggle_view", defaults, customKeys),
		Up:         buildBinding("up", defaults, customKeys),
	}
}
