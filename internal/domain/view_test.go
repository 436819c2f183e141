package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() ResultSet {
	return ResultSet{
		{AuthorLogin: "a", Number: 12, Title: "Fix bug", URL: "https://x/12"},
		{AuthorLogin: "b", Number: 7, Title: "Add docs", URL: "https://x/7"},
		{AuthorLogin: "a", Number: 30, Title: "Bump deps", URL: "https://x/30"},
	}
}

func TestPresent_ListSingleRecord(t *testing.T) {
	results := ResultSet{{AuthorLogin: "a", Number: 12, Title: "Fix bug", URL: "https://x/12"}}

	vm := Present(results, ViewModeList)

	require.Len(t, vm.Items, 1)
	assert.Equal(t, ViewModeList, vm.Mode)
	assert.Equal(t, "Fix bug", vm.Items[0].Label)
	assert.Equal(t, "a", vm.Items[0].Chip)
	assert.Equal(t, "12", vm.Items[0].Button)
	assert.Equal(t, "https://x/12", vm.Items[0].URL)
	assert.Empty(t, vm.Links)
}

func TestPresent_LinksKeepOrder(t *testing.T) {
	results := sampleResults()

	vm := Present(results, ViewModeLinks)

	require.Len(t, vm.Links, results.Len())
	for i, pr := range results {
		assert.Equal(t, pr.URL, vm.Links[i])
	}
	assert.Equal(t, "https://x/12\nhttps://x/7\nhttps://x/30", vm.Clipboard)
	assert.Empty(t, vm.Items)
}

func TestPresent_Idempotent(t *testing.T) {
	results := sampleResults()

	for _, mode := range []ViewMode{ViewModeList, ViewModeLinks} {
		t.Run(string(mode), func(t *testing.T) {
			assert.Equal(t, Present(results, mode), Present(results, mode))
		})
	}
}

func TestPresent_Empty(t *testing.T) {
	assert.Equal(t, 0, Present(nil, ViewModeList).Len())

	links := Present(ResultSet{}, ViewModeLinks)
	assert.Equal(t, 0, links.Len())
	assert.Equal(t, "", links.Clipboard)
}

func TestParseViewMode(t *testing.T) {
	mode, err := ParseViewMode("LINKS")
	require.NoError(t, err)
	assert.Equal(t, ViewModeLinks, mode)

	_, err = ParseViewMode("grid")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, ViewModeLinks, ViewModeList.Toggle())
	assert.Equal(t, ViewModeList, ViewModeLinks.Toggle())
}
