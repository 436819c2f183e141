package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
)

// QueryFormResult contains the result of the query form
type QueryFormResult struct {
	Cancelled bool
	Params    domain.QueryParameters
}

// QueryForm is a Bubble Tea component collecting query parameters
type QueryForm struct {
	Completed  bool // Exported so Model can check completion
	baseBranch string
	form       *huh.Form
	owner      string
	repoType   domain.RepoType
	repository string
	result     QueryFormResult
	state      domain.PRState
}

// NewQueryForm creates a query form seeded with params
func NewQueryForm(params domain.QueryParameters) *QueryForm {
	params = params.WithDefaults()
	qf := &QueryForm{
		baseBranch: params.BaseBranch,
		owner:      params.Owner,
		repoType:   params.RepoType,
		repository: params.Repository,
		state:      params.State,
	}

	logging.Logger.Debug("Creating query form",
		"owner", params.Owner,
		"repository", params.Repository,
		"state", params.State)

	qf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Owner").
				Placeholder(domain.DefaultOwner).
				Value(&qf.owner).
				Validate(requiredField("owner")),
			huh.NewInput().
				Title("Repository").
				Placeholder(domain.DefaultRepository).
				Value(&qf.repository).
				Validate(requiredField("repository")),
			huh.NewInput().
				Title("Base Branch").
				Description("Optional. Only pull requests targeting this branch.").
				Value(&qf.baseBranch),
			huh.NewSelect[domain.RepoType]().
				Title("Repo Type").
				Options(
					huh.NewOption("Public", domain.RepoTypePublic),
					huh.NewOption("Private", domain.RepoTypePrivate),
				).
				Value(&qf.repoType),
			huh.NewSelect[domain.PRState]().
				Title("Status").
				Options(
					huh.NewOption("Open", domain.PRStateOpen),
					huh.NewOption("Closed", domain.PRStateClosed),
					huh.NewOption("All", domain.PRStateAll),
				).
				Value(&qf.state),
		),
	).WithShowHelp(true)

	return qf
}

// requiredField validates a non-blank text field the same way the request
// builder does
func requiredField(field string) func(string) error {
	return func(s string) error {
		params := domain.QueryParameters{Owner: "x", Repository: "x"}
		switch field {
		case "owner":
			params.Owner = s
		case "repository":
			params.Repository = s
		}
		return params.WithDefaults().Validate()
	}
}

func (qf *QueryForm) Init() tea.Cmd {
	return qf.form.Init()
}

func (qf *QueryForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			qf.Completed = true
			qf.result.Cancelled = true
			return qf, nil
		}
	}

	form, cmd := qf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		qf.form = f
	}

	if qf.form.State == huh.StateCompleted && !qf.Completed {
		qf.Completed = true
		qf.result.Params = qf.Draft()
		logging.Logger.Info("Query submitted",
			"owner", qf.result.Params.Owner,
			"repository", qf.result.Params.Repository)
	}

	return qf, cmd
}

func (qf *QueryForm) View() string {
	if qf.form != nil {
		return qf.form.View()
	}
	return ""
}

// Draft returns the parameters as currently typed
func (qf *QueryForm) Draft() domain.QueryParameters {
	return domain.QueryParameters{
		BaseBranch: qf.baseBranch,
		Owner:      qf.owner,
		RepoType:   qf.repoType,
		Repository: qf.repository,
		State:      qf.state,
	}
}

// Result returns the form result
func (qf *QueryForm) Result() QueryFormResult {
	return qf.result
}
