package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
	"prlinks/internal/services"
)

// PullRequestsReadyMsg is sent when a fetch settles with data
type PullRequestsReadyMsg struct {
	Request domain.RequestDescriptor
	Results domain.ResultSet
}

// PullRequestsErrorMsg is sent when a fetch fails
type PullRequestsErrorMsg struct {
	Err     error
	Request domain.RequestDescriptor
}

// StartPullRequestFetch runs one fetch off the event loop.
// Returns a tea.Cmd that will send PullRequestsReadyMsg or PullRequestsErrorMsg.
// The service applies its own timeout.
func StartPullRequestFetch(svc *services.PullRequestService, req domain.RequestDescriptor) tea.Cmd {
	return func() tea.Msg {
		results, err := svc.Fetch(context.Background(), req)
		if err != nil {
			logging.Logger.Warn("Failed to fetch pull requests",
				"request", req.String(),
				"error", err)
			return PullRequestsErrorMsg{
				Err:     err,
				Request: req,
			}
		}

		logging.Logger.Debug("Fetched pull requests",
			"request", req.String(),
			"count", results.Len())

		return PullRequestsReadyMsg{
			Request: req,
			Results: results,
		}
	}
}
