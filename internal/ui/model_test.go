package ui

import (
	"errors"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prlinks/internal/adapters/browser"
	"prlinks/internal/domain"
	portsmocks "prlinks/internal/ports/mocks"
	"prlinks/internal/services"
)

type testDeps struct {
	clipboard *portsmocks.MockClipboardWriter
	fetcher   *portsmocks.MockPullRequestFetcher
	opener    *portsmocks.MockURLOpener
}

func newTestModel(t *testing.T, params domain.QueryParameters) (*Model, testDeps) {
	t.Helper()

	deps := testDeps{
		clipboard: portsmocks.NewMockClipboardWriter(t),
		fetcher:   portsmocks.NewMockPullRequestFetcher(t),
		opener:    portsmocks.NewMockURLOpener(t),
	}

	m := NewModel(ModelConfig{
		Clipboard:       deps.clipboard,
		ErrorClearDelay: time.Millisecond,
		InitialMode:     domain.ViewModeList,
		InitialParams:   params,
		Opener:          deps.opener,
		Service:         services.NewPullRequestService(deps.fetcher, time.Second),
	})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return m, deps
}

// collectMsgs runs cmd and every command batched inside it
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// settle feeds fetch results produced by cmd back into the model
func settle(m *Model, cmd tea.Cmd) {
	for _, msg := range collectMsgs(cmd) {
		switch msg.(type) {
		case PullRequestsReadyMsg, PullRequestsErrorMsg:
			m.Update(msg)
		}
	}
}

func twoRecords() domain.ResultSet {
	return domain.ResultSet{
		{AuthorLogin: "a", Number: 12, Title: "Fix bug", URL: "https://github.com/o/r/pull/12"},
		{AuthorLogin: "b", Number: 13, Title: "Add docs", URL: "https://github.com/o/r/pull/13"},
	}
}

func TestModel_RapidRefreshFetchesOnce(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())

	deps.fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.MatchedBy(func(req domain.RequestDescriptor) bool {
			return req.Path == "/repos/lalitmee/dotfiles/pulls"
		})).
		Return(twoRecords(), nil).
		Once()

	_, first := m.Update(keyPress("r"))
	require.NotNil(t, first)
	assert.True(t, m.ViewState().Snapshot().Loading)

	_, second := m.Update(keyPress("r"))
	assert.Nil(t, second)

	settle(m, first)

	snap := m.ViewState().Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, services.PhaseWithData, snap.Phase)
	assert.Len(t, snap.Results, 2)
	assert.Equal(t, 2, m.results.Len())
	assert.Contains(t, m.View(), "2 results")
}

func TestModel_NotFoundShowsErrorAndEmptyResults(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())

	deps.fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.Anything).
		Return(nil, domain.NewFetchError(domain.FetchErrorStatus, http.StatusNotFound, errors.New("Not Found"))).
		Once()

	_, cmd := m.Update(RefreshMsg{})
	settle(m, cmd)

	snap := m.ViewState().Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, services.PhaseWithError, snap.Phase)
	assert.Empty(t, snap.Results)
	assert.Equal(t, http.StatusNotFound, domain.StatusCode(snap.Err))
	assert.True(t, m.errorManager.HasError())
	assert.Contains(t, m.View(), "repository not found")
}

func TestModel_ErrorClearsAfterDelay(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())

	deps.fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.Anything).
		Return(nil, domain.NewFetchError(domain.FetchErrorTransport, 0, errors.New("dial tcp: refused"))).
		Once()

	_, cmd := m.Update(RefreshMsg{})
	var clearCmd tea.Cmd
	for _, msg := range collectMsgs(cmd) {
		if errMsg, ok := msg.(PullRequestsErrorMsg); ok {
			_, clearCmd = m.Update(errMsg)
		}
	}
	require.True(t, m.errorManager.HasError())

	for _, msg := range collectMsgs(clearCmd) {
		m.Update(msg)
	}
	assert.False(t, m.errorManager.HasError())
	assert.Nil(t, m.ViewState().Snapshot().Err)
}

func TestModel_InvalidParamsNeverFetch(t *testing.T) {
	m, _ := newTestModel(t, domain.QueryParameters{Owner: "   ", Repository: "dotfiles"})

	m.Update(keyPress("r"))

	snap := m.ViewState().Snapshot()
	assert.False(t, snap.Loading)
	assert.True(t, domain.IsValidation(snap.Err))
	assert.True(t, m.errorManager.HasError())
}

func TestModel_ToggleView(t *testing.T) {
	m, _ := newTestModel(t, domain.DefaultQueryParameters())

	m.Update(keyPress("tab"))
	assert.Equal(t, domain.ViewModeLinks, m.ViewState().Snapshot().Mode)

	m.Update(keyPress("tab"))
	assert.Equal(t, domain.ViewModeList, m.ViewState().Snapshot().Mode)
}

func TestModel_ToggleKeepsResults(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())
	deps.fetcher.EXPECT().FetchPullRequests(mock.Anything, mock.Anything).Return(twoRecords(), nil).Once()

	_, cmd := m.Update(RefreshMsg{})
	settle(m, cmd)
	m.Update(keyPress("tab"))

	assert.Equal(t, 2, m.results.Len())
	assert.Equal(t, "https://github.com/o/r/pull/12", m.results.SelectedURL())
	assert.Contains(t, m.View(), "https://github.com/o/r/pull/13")
}

func TestModel_CopyLinks(t *testing.T) {
	t.Run("copies newline joined links", func(t *testing.T) {
		m, deps := newTestModel(t, domain.DefaultQueryParameters())
		deps.fetcher.EXPECT().FetchPullRequests(mock.Anything, mock.Anything).Return(twoRecords(), nil).Once()
		deps.clipboard.EXPECT().
			Copy("https://github.com/o/r/pull/12\nhttps://github.com/o/r/pull/13").
			Return(nil).
			Once()

		_, cmd := m.Update(RefreshMsg{})
		settle(m, cmd)
		m.Update(keyPress("c"))

		assert.Contains(t, m.View(), "Copied 2 links")
	})

	t.Run("nothing to copy", func(t *testing.T) {
		m, _ := newTestModel(t, domain.DefaultQueryParameters())

		m.Update(keyPress("c"))

		assert.Contains(t, m.View(), "Nothing to copy")
	})

	t.Run("clipboard failure is shown", func(t *testing.T) {
		m, deps := newTestModel(t, domain.DefaultQueryParameters())
		deps.fetcher.EXPECT().FetchPullRequests(mock.Anything, mock.Anything).Return(twoRecords(), nil).Once()
		deps.clipboard.EXPECT().Copy(mock.Anything).Return(errors.New("no clipboard")).Once()

		_, cmd := m.Update(RefreshMsg{})
		settle(m, cmd)
		m.Update(keyPress("c"))

		require.True(t, m.errorManager.HasError())
		assert.Contains(t, m.errorManager.GetError().Error(), "no clipboard")
	})
}

func TestModel_OpenSelectedPullRequest(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())
	deps.fetcher.EXPECT().FetchPullRequests(mock.Anything, mock.Anything).Return(twoRecords(), nil).Once()
	deps.opener.EXPECT().Open("https://github.com/o/r/pull/13").Return(nil).Once()

	_, cmd := m.Update(RefreshMsg{})
	settle(m, cmd)
	m.Update(keyPress("j"))
	m.Update(keyPress("enter"))

	assert.Contains(t, m.View(), "Opened https://github.com/o/r/pull/13")
}

func TestModel_OpenWithCopyOpenerReportsCopy(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())
	m.opener = browser.NewCopyOpener(deps.clipboard)
	deps.fetcher.EXPECT().FetchPullRequests(mock.Anything, mock.Anything).Return(twoRecords(), nil).Once()
	deps.clipboard.EXPECT().Copy("https://github.com/o/r/pull/12").Return(nil).Once()

	_, cmd := m.Update(RefreshMsg{})
	settle(m, cmd)
	m.Update(keyPress("enter"))

	view := m.View()
	assert.Contains(t, view, "Copied https://github.com/o/r/pull/12")
	assert.NotContains(t, view, "Opened")
}

func TestModel_OpenWithoutSelectionIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, domain.DefaultQueryParameters())

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
}

func TestModel_DebouncedDraftUpdatesParams(t *testing.T) {
	m, _ := newTestModel(t, domain.DefaultQueryParameters())

	stale := domain.QueryParameters{Owner: "stale", Repository: "repo"}.WithDefaults()
	latest := domain.QueryParameters{Owner: "golang", Repository: "go", BaseBranch: "master"}.WithDefaults()

	staleMsg := m.debouncer.Push(stale)()
	latestMsg := m.debouncer.Push(latest)()

	m.Update(staleMsg)
	assert.Equal(t, domain.DefaultOwner, m.ViewState().Snapshot().Params.Owner)

	m.Update(latestMsg)
	assert.Equal(t, latest, m.ViewState().Snapshot().Params)
	assert.Contains(t, m.renderPreview(), "GET /repos/golang/go/pulls?base=master")
}

func TestModel_DebounceDoesNotCancelFetch(t *testing.T) {
	m, deps := newTestModel(t, domain.DefaultQueryParameters())
	deps.fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.MatchedBy(func(req domain.RequestDescriptor) bool {
			return req.Path == "/repos/lalitmee/dotfiles/pulls"
		})).
		Return(twoRecords(), nil).
		Once()

	_, cmd := m.Update(RefreshMsg{})
	m.Update(m.debouncer.Push(domain.QueryParameters{Owner: "other", Repository: "repo"})())
	settle(m, cmd)

	snap := m.ViewState().Snapshot()
	assert.Equal(t, services.PhaseWithData, snap.Phase)
	assert.Equal(t, "other", snap.Params.Owner)
	assert.Equal(t, "/repos/lalitmee/dotfiles/pulls", snap.LastRequest.Path)
}

func TestModel_QueryFormCancel(t *testing.T) {
	t.Run("returns to results", func(t *testing.T) {
		m, _ := newTestModel(t, domain.DefaultQueryParameters())

		m.Update(EditQueryMsg{})
		require.Equal(t, stateForm, m.state)

		_, cmd := m.Update(keyPress("esc"))

		assert.Equal(t, stateResults, m.state)
		assert.Nil(t, cmd)
		assert.False(t, m.ViewState().Snapshot().Loading)
	})

	t.Run("discards edits and pending drafts", func(t *testing.T) {
		m, _ := newTestModel(t, domain.DefaultQueryParameters())

		m.Update(EditQueryMsg{})
		require.Equal(t, stateForm, m.state)

		for _, r := range []string{"x", "y", "z"} {
			m.Update(keyPress(r))
		}
		require.Greater(t, m.debouncer.tag, 0)

		// A settled draft is applied while the form is open
		m.Update(debounceMsg{tag: m.debouncer.tag})
		require.NotEqual(t, domain.DefaultOwner, m.ViewState().Snapshot().Params.Owner)

		m.Update(keyPress("w"))
		pending := debounceMsg{tag: m.debouncer.tag}

		m.Update(keyPress("esc"))
		require.Equal(t, stateResults, m.state)

		m.Update(pending)

		params := m.ViewState().Snapshot().Params
		assert.Equal(t, domain.DefaultOwner, params.Owner)
		assert.Equal(t, domain.DefaultQueryParameters().WithDefaults(), params)
		assert.Contains(t, m.renderPreview(), "/repos/lalitmee/dotfiles/pulls")
	})
}

func TestModel_HelpScreen(t *testing.T) {
	m, _ := newTestModel(t, domain.DefaultQueryParameters())

	m.Update(keyPress("?"))
	require.Equal(t, stateHelp, m.state)

	m.Update(keyPress("esc"))
	assert.Equal(t, stateResults, m.state)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, domain.DefaultQueryParameters())

	_, cmd := m.Update(keyPress("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
