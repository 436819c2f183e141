package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SelectionAwareMsg is implemented by messages that act on the selected row.
type SelectionAwareMsg interface {
	WithSelection(url string) tea.Msg
}

// CopyLinksMsg requests copying every result link to the clipboard
type CopyLinksMsg struct{}

// EditQueryMsg requests reopening the query form
type EditQueryMsg struct{}

// OpenPRMsg requests opening a pull request in the browser
type OpenPRMsg struct {
	URL string
}

func (m OpenPRMsg) WithSelection(url string) tea.Msg {
	return OpenPRMsg{URL: url}
}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// RefreshMsg requests re-running the current query
type RefreshMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ToggleViewMsg requests switching between the list and links tabs
type ToggleViewMsg struct{}
