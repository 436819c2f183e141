package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prlinks/internal/config"
	"prlinks/internal/domain"
	"prlinks/internal/logging"
	"prlinks/internal/ports"
	"prlinks/internal/services"
	"prlinks/internal/theme"
)

type uiState int

const (
	stateResults uiState = iota
	stateForm
	stateHelp
)

// Lines taken by everything except the results list
const chromeHeight = 12

// ModelConfig holds the configuration for creating a Model
type ModelConfig struct {
	Clipboard       ports.ClipboardWriter
	DebounceDelay   time.Duration
	DevMode         bool
	ErrorClearDelay time.Duration
	InitialMode     domain.ViewMode
	InitialParams   domain.QueryParameters
	KeysConfig      config.KeyBindingsConfig
	Opener          ports.URLOpener
	Service         *services.PullRequestService
	SkipForm        bool // Fetch on start instead of opening the query form
}

type Model struct {
	clipboard    ports.ClipboardWriter
	debouncer    *debouncer
	devMode      bool
	dirty        bool                  // A snapshot arrived that the list has not rendered yet
	draft        domain.QueryParameters // Last draft pushed to the debouncer
	errorManager *ErrorManager
	formOrigin   domain.QueryParameters // Params the query form opened with
	height       int
	help         help.Model
	helpScreen   *Dialog
	keys         KeyMap
	notice       string
	opener       ports.URLOpener
	queryForm    *Dialog
	results      *ResultsList
	service      *services.PullRequestService
	skipForm     bool
	snapshot     services.Snapshot
	spinner      spinner.Model
	state        uiState
	unsubscribe  func()
	viewState    *services.ViewState
	width        int
}

// NewModel creates the application model with its own view state
func NewModel(cfg ModelConfig) *Model {
	keys := NewKeyMap(cfg.KeysConfig)

	params := cfg.InitialParams
	if params.Owner == "" && params.Repository == "" {
		params = domain.DefaultQueryParameters()
	}
	params = params.WithDefaults()

	m := &Model{
		clipboard:    cfg.Clipboard,
		debouncer:    newDebouncer(cfg.DebounceDelay),
		devMode:      cfg.DevMode,
		draft:        params,
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		help:         help.New(),
		keys:         keys,
		opener:       cfg.Opener,
		service:      cfg.Service,
		skipForm:     cfg.SkipForm,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.SpinnerStyle),
		),
		state:     stateResults,
		viewState: services.NewViewState(params, cfg.InitialMode),
	}
	m.results = NewResultsList(&m.keys)
	m.snapshot = m.viewState.Snapshot()
	m.unsubscribe = m.viewState.Subscribe(func(snap services.Snapshot) {
		m.snapshot = snap
		m.dirty = true
	})

	return m
}

// ViewState returns the controller backing this model
func (m *Model) ViewState() *services.ViewState {
	return m.viewState
}

// Close drops the view state subscription
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	if m.skipForm {
		return m.triggerFetch()
	}
	return m.openQueryForm()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)

	if m.dirty {
		m.dirty = false
		cmd = tea.Batch(cmd, m.results.SetViewModel(m.snapshot.View()))
	}

	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages that apply regardless of the screen
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.recalculateListHeight()
	case PullRequestsReadyMsg:
		m.viewState.CompleteFetch(msg.Results)
		return m, nil
	case PullRequestsErrorMsg:
		if m.viewState.FailFetch(msg.Err) {
			return m, m.showError(msg.Err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case debounceMsg:
		if draft, ok := m.debouncer.Settle(msg); ok {
			m.viewState.SetParams(draft)
		}
		return m, nil
	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		if !m.errorManager.HasError() {
			m.viewState.ClearError()
		}
		return m, nil
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m.updateResults(msg)
}

func (m *Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.notice = ""

		if m.results.IsFiltering() && !key.Matches(msg, m.keys.Application.ForceQuit) {
			return m, m.results.Update(msg)
		}

		if def := m.keys.Definition(msg); def != nil {
			dispatched := NewActionDispatcher(m.results.SelectedURL()).Dispatch(*def)
			if dispatched == nil {
				return m, nil
			}
			return m.handleAction(dispatched)
		}

	case QuitMsg, RefreshMsg, EditQueryMsg, ShowHelpMsg, ToggleViewMsg, CopyLinksMsg, OpenPRMsg:
		return m.handleAction(msg)
	}

	return m, m.results.Update(msg)
}

func (m *Model) handleAction(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit
	case RefreshMsg:
		return m, m.triggerFetch()
	case EditQueryMsg:
		return m, m.openQueryForm()
	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)
	case ToggleViewMsg:
		mode := m.viewState.ToggleViewMode()
		logging.Logger.Debug("View mode toggled", "mode", mode)
		return m, nil
	case CopyLinksMsg:
		return m, m.copyLinks()
	case OpenPRMsg:
		if err := m.opener.Open(msg.URL); err != nil {
			return m, m.showError(fmt.Errorf("failed to open pull request: %w", err))
		}
		m.notice = openNotice(m.opener, msg.URL)
		return m, nil
	}
	return m, nil
}

// openVerber is implemented by openers that do something other than
// launching a browser, such as copying the URL in a remote session
type openVerber interface {
	OpenVerb() string
}

func openNotice(opener ports.URLOpener, url string) string {
	verb := "Opened"
	if v, ok := opener.(openVerber); ok {
		verb = v.OpenVerb()
	}
	return verb + " " + url
}

// triggerFetch moves the controller to Loading and starts the fetch.
// Returns nil while a fetch is already in flight.
func (m *Model) triggerFetch() tea.Cmd {
	req, ok, err := m.viewState.BeginFetch()
	if err != nil {
		return m.showError(err)
	}
	if !ok {
		return nil
	}

	logging.Logger.Info("Fetching pull requests", "request", req.String())
	return tea.Batch(m.spinner.Tick, StartPullRequestFetch(m.service, req))
}

func (m *Model) copyLinks() tea.Cmd {
	vm := domain.Present(m.snapshot.Results, domain.ViewModeLinks)
	if len(vm.Links) == 0 {
		m.notice = "Nothing to copy"
		return nil
	}

	if err := m.clipboard.Copy(vm.Clipboard); err != nil {
		return m.showError(fmt.Errorf("failed to copy links: %w", err))
	}

	logging.Logger.Debug("Copied links", "count", len(vm.Links))
	if len(vm.Links) == 1 {
		m.notice = "Copied 1 link"
	} else {
		m.notice = fmt.Sprintf("Copied %d links", len(vm.Links))
	}
	return nil
}

func (m *Model) showError(err error) tea.Cmd {
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) openQueryForm() tea.Cmd {
	m.draft = m.snapshot.Params
	m.formOrigin = m.snapshot.Params
	contentForm := NewQueryForm(m.snapshot.Params)
	m.queryForm = NewDialog("Pull Request Query", contentForm, m.devMode)
	m.state = stateForm

	initCmd := m.queryForm.Init()
	if m.width == 0 {
		return initCmd
	}
	updatedDialog, sizeCmd := m.queryForm.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.queryForm = updatedDialog.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Delegate to dialog (it handles cancel internally)
	updated, cmd := m.queryForm.Update(msg)
	m.queryForm = updated.(*Dialog)

	content, ok := m.queryForm.Content().(*QueryForm)
	if !ok {
		return m, cmd
	}

	if content.Completed {
		result := content.Result()
		m.state = stateResults
		m.queryForm = nil

		// Pending ticks belong to the closed form
		m.debouncer.Cancel()

		if result.Cancelled {
			m.draft = m.formOrigin
			m.viewState.SetParams(m.formOrigin)
			logging.Logger.Debug("Query form cancelled, params restored", "owner", m.formOrigin.Owner)
			return m, nil
		}

		// Submitting skips the debounce window
		m.draft = result.Params
		m.viewState.SetParams(result.Params)
		return m, m.triggerFetch()
	}

	if draft := content.Draft(); draft != m.draft {
		m.draft = draft
		cmd = tea.Batch(cmd, m.debouncer.Push(draft))
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Delegate to dialog (it handles cancel internally)
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	// Check if dialog completed
	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateResults
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) recalculateListHeight() {
	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}
	m.results.SetSize(m.width, height)
}

func (m *Model) View() string {
	switch m.state {
	case stateForm:
		if m.queryForm != nil {
			return m.queryForm.View() + "\n" + m.renderPreview()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return m.viewResults()
}

func (m *Model) viewResults() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, "PRs for "+m.snapshot.Params.Owner+"/"+m.snapshot.Params.Repository))
	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.snapshot.Loading:
		b.WriteString(m.spinner.View() + " Fetching pull requests...")
	case m.snapshot.Phase == services.PhaseWithData && m.snapshot.Results.IsEmpty():
		b.WriteString(theme.MutedStyle.Render("No pull requests match this query."))
	case m.snapshot.Results.IsEmpty():
		b.WriteString(theme.MutedStyle.Render("Press r to fetch or e to edit the query."))
	default:
		b.WriteString(m.results.View())
	}

	// Bottom section - fixed 2 lines (error or notice or empty)
	b.WriteString("\n\n")
	switch {
	case m.errorManager.HasError():
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)))
	case m.notice != "":
		b.WriteString(theme.SuccessStyle.Render(m.notice) + "\n ")
	default:
		b.WriteString(" \n ")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// renderPreview shows the request the debounced draft would send
func (m *Model) renderPreview() string {
	req, err := domain.BuildRequest(m.snapshot.Params)
	if err != nil {
		return theme.RequestPreviewStyle.Render(theme.MutedStyle.Render(err.Error()))
	}
	return theme.RequestPreviewStyle.Render(req.String())
}

func (m *Model) renderTabs() string {
	listTab := theme.InactiveTabStyle.Render("PRs List")
	linksTab := theme.InactiveTabStyle.Render("PRs Links")
	if m.snapshot.Mode == domain.ViewModeLinks {
		linksTab = theme.ActiveTabStyle.Render("PRs Links")
	} else {
		listTab = theme.ActiveTabStyle.Render("PRs List")
	}

	count := ""
	if m.snapshot.Phase == services.PhaseWithData {
		count = theme.MutedStyle.Render(fmt.Sprintf("  %d results", m.snapshot.Results.Len()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, listTab, " ", linksTab, count)
}
