package domain

import (
	"strconv"
	"strings"
)

// ViewMode selects how a result set is rendered
type ViewMode string

const (
	ViewModeLinks ViewMode = "links"
	ViewModeList  ViewMode = "list"
)

// ParseViewMode parses a view mode name
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(s)) {
	case ViewModeList:
		return ViewModeList, nil
	case ViewModeLinks:
		return ViewModeLinks, nil
	}
	return "", NewValidationError("view", "unknown view "+strconv.Quote(s)+" (want list or links)")
}

// Toggle returns the other view mode
func (m ViewMode) Toggle() ViewMode {
	if m == ViewModeLinks {
		return ViewModeList
	}
	return ViewModeLinks
}

// ListItem is one row of the list view
type ListItem struct {
	Button string `json:"button"` // PR number, opens URL when activated
	Chip   string `json:"chip"`   // Author login
	Label  string `json:"label"`  // PR title
	Number int    `json:"number"`
	URL    string `json:"url"`
}

// ViewModel is what a renderer needs for one view mode
type ViewModel struct {
	Clipboard string     `json:"clipboard,omitempty"`
	Items     []ListItem `json:"items,omitempty"`
	Links     []string   `json:"links,omitempty"`
	Mode      ViewMode   `json:"mode"`
}

// Len returns the number of rows in the view model
func (v ViewModel) Len() int {
	if v.Mode == ViewModeLinks {
		return len(v.Links)
	}
	return len(v.Items)
}

// Present maps a result set to the view model of the given mode.
// It has no state: equal inputs give equal outputs.
func Present(results ResultSet, mode ViewMode) ViewModel {
	if mode == ViewModeLinks {
		links := make([]string, len(results))
		for i, pr := range results {
			links[i] = pr.URL
		}
		return ViewModel{
			Clipboard: strings.Join(links, "\n"),
			Links:     links,
			Mode:      ViewModeLinks,
		}
	}

	items := make([]ListItem, len(results))
	for i, pr := range results {
		items[i] = ListItem{
			Button: strconv.Itoa(pr.Number),
			Chip:   pr.AuthorLogin,
			Label:  pr.Title,
			Number: pr.Number,
			URL:    pr.URL,
		}
	}
	return ViewModel{
		Items: items,
		Mode:  ViewModeList,
	}
}
