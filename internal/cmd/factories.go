package cmd

import (
	"context"
	"fmt"
	"time"

	adaptergithub "prlinks/internal/adapters/github"
	"prlinks/internal/logging"
	"prlinks/internal/ports"
	"prlinks/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Fetcher            ports.PullRequestFetcher
	PullRequestService *services.PullRequestService
}

// NewContainer creates a new Container with all dependencies wired.
// The credential is read here once and never changes afterwards.
func NewContainer(ctx context.Context, apiURL, token string, timeout time.Duration) (*Container, error) {
	fetcher, err := adaptergithub.NewClient(ctx, apiURL, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	logging.Logger.Debug("Container created",
		"api_url", apiURL,
		"authenticated", token != "",
		"timeout", timeout.String())

	return &Container{
		Fetcher:            fetcher,
		PullRequestService: services.NewPullRequestService(fetcher, timeout),
	}, nil
}
