package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prlinks/internal/config"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGetValidKeyNames_SortedAndComplete(t *testing.T) {
	names := GetValidKeyNames()

	assert.Len(t, names, len(AllKeyDefinitions))
	assert.IsIncreasing(t, names)
	for _, name := range []string{"copy_links", "open_pr", "toggle_view", "refresh", "edit_query", "help", "quit"} {
		assert.True(t, IsValidKeyName(name), name)
	}
	assert.False(t, IsValidKeyName("archive"))
}

func TestKeyMap_Definition(t *testing.T) {
	keys := NewKeyMap(nil)

	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"c", CopyLinksMsg{}},
		{"enter", OpenPRMsg{}},
		{"tab", ToggleViewMsg{}},
		{"r", RefreshMsg{}},
		{"e", EditQueryMsg{}},
		{"?", ShowHelpMsg{}},
		{"q", QuitMsg{}},
		{"ctrl+c", QuitMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			def := keys.Definition(keyPress(tt.key))
			require.NotNil(t, def)
			assert.Equal(t, tt.want, def.Msg)
		})
	}

	assert.Nil(t, keys.Definition(keyPress("j")), "navigation is left to the list")
	assert.Nil(t, keys.Definition(keyPress("z")))
}

func TestKeyMap_CustomBindings(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"copy_links": {"y"}})

	def := keys.Definition(keyPress("y"))
	require.NotNil(t, def)
	assert.Equal(t, "copy_links", def.Name)
	assert.Nil(t, keys.Definition(keyPress("c")))
	assert.Equal(t, "y", keys.Results.CopyLinks.Help().Key)
}

func TestActionDispatcher_Dispatch(t *testing.T) {
	openDef := *GetKeyDefinition("open_pr")
	copyDef := *GetKeyDefinition("copy_links")

	assert.Equal(t, OpenPRMsg{URL: "https://x/1"}, NewActionDispatcher("https://x/1").Dispatch(openDef))
	assert.Nil(t, NewActionDispatcher("").Dispatch(openDef))
	assert.Equal(t, CopyLinksMsg{}, NewActionDispatcher("").Dispatch(copyDef))
	assert.Nil(t, NewActionDispatcher("").Dispatch(*GetKeyDefinition("up")))
}
