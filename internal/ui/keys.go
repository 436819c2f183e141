package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"prlinks/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Results     ResultKeys

	byName map[string]key.Binding
}

// NewKeyMap creates a KeyMap. Pass nil customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	byName := make(map[string]key.Binding, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		byName[def.Name] = buildBinding(def.Name, defaults, customKeys)
	}
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Results:     newResultKeys(defaults, customKeys),
		byName:      byName,
	}
}

// ShortHelp implements help.KeyMap for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Results.ToggleView,
		k.Results.OpenPR,
		k.Results.CopyLinks,
		k.Application.Refresh,
		k.Application.EditQuery,
		k.Results.Filter,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Results.Up, k.Results.Down, k.Results.Filter},
		{k.Results.ToggleView, k.Results.OpenPR, k.Results.CopyLinks},
		{k.Application.Refresh, k.Application.EditQuery, k.Application.Help, k.Application.Quit},
	}
}

// Definition returns the definition of the first binding matching msg.
// Navigation bindings are not reported; the list handles them.
func (k KeyMap) Definition(msg tea.KeyMsg) *KeyDefinition {
	for _, def := range AllKeyDefinitions {
		if def.Msg == nil {
			continue
		}
		if key.Matches(msg, k.byName[def.Name]) {
			d := def
			return &d
		}
	}
	return nil
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
