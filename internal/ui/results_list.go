package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prlinks/internal/domain"
	"prlinks/internal/theme"
)

// PRItem is one row of the list tab
type PRItem struct {
	domain.ListItem
}

// FilterValue implements list.Item
func (i PRItem) FilterValue() string {
	return i.Label + " " + i.Chip
}

// LinkItem is one row of the links tab
type LinkItem struct {
	URL string
}

// FilterValue implements list.Item
func (i LinkItem) FilterValue() string {
	return i.URL
}

// prDelegate renders list rows: title, author chip and number button
type prDelegate struct{}

// Height implements list.ItemDelegate
func (d prDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d prDelegate) Spacing() int {
	return 1
}

// Update implements list.ItemDelegate
func (d prDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d prDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(PRItem)
	if !ok {
		return
	}

	width := m.Width() - 4
	title := item.Label
	if width > 0 && lipgloss.Width(title) > width {
		title = truncate(title, width)
	}

	line1 := theme.NormalStyle.Render(title)
	line2 := theme.ChipStyle.Render("@"+item.Chip) + " " + theme.ButtonStyle.Render("#"+item.Button)

	style := theme.RowStyle
	if index == m.Index() {
		style = theme.SelectedRowStyle
	}
	fmt.Fprint(w, style.Render(line1+"\n"+line2))
}

// linkDelegate renders one URL per row
type linkDelegate struct{}

// Height implements list.ItemDelegate
func (d linkDelegate) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d linkDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d linkDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d linkDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(LinkItem)
	if !ok {
		return
	}

	style := theme.RowStyle
	if index == m.Index() {
		style = theme.SelectedRowStyle
	}
	fmt.Fprint(w, style.Render(theme.LinkStyle.Render(item.URL)))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return strings.TrimSpace(string(runes[:width-1])) + "…"
}

// ResultsList renders a view model through a bubbles list, which only
// draws the rows of the visible page
type ResultsList struct {
	keys *KeyMap
	list list.Model
	mode domain.ViewMode
}

// NewResultsList creates an empty results list
func NewResultsList(keys *KeyMap) *ResultsList {
	l := list.New(nil, prDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp = keys.Results.Up
	l.KeyMap.CursorDown = keys.Results.Down
	l.KeyMap.Filter = keys.Results.Filter

	return &ResultsList{
		keys: keys,
		list: l,
		mode: domain.ViewModeList,
	}
}

// SetViewModel replaces the rows with vm, switching delegate on mode change
func (r *ResultsList) SetViewModel(vm domain.ViewModel) tea.Cmd {
	if vm.Mode != r.mode {
		r.list.ResetFilter()
		r.mode = vm.Mode
	}

	var items []list.Item
	if vm.Mode == domain.ViewModeLinks {
		r.list.SetDelegate(linkDelegate{})
		items = make([]list.Item, len(vm.Links))
		for i, link := range vm.Links {
			items[i] = LinkItem{URL: link}
		}
	} else {
		r.list.SetDelegate(prDelegate{})
		items = make([]list.Item, len(vm.Items))
		for i, item := range vm.Items {
			items[i] = PRItem{ListItem: item}
		}
	}

	return r.list.SetItems(items)
}

// SelectedURL returns the URL of the selected row
func (r *ResultsList) SelectedURL() string {
	switch item := r.list.SelectedItem().(type) {
	case PRItem:
		return item.URL
	case LinkItem:
		return item.URL
	}
	return ""
}

// IsFiltering reports whether the filter input has focus
func (r *ResultsList) IsFiltering() bool {
	return r.list.FilterState() == list.Filtering
}

// Len returns the number of rows
func (r *ResultsList) Len() int {
	return len(r.list.Items())
}

// SetSize sets the list dimensions
func (r *ResultsList) SetSize(width, height int) {
	r.list.SetSize(width, height)
}

// Update forwards navigation and filter input to the list
func (r *ResultsList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.list, cmd = r.list.Update(msg)
	return cmd
}

// View renders the visible page
func (r *ResultsList) View() string {
	return r.list.View()
}
