package ports

import (
	"context"

	"prlinks/internal/domain"
)

// PullRequestFetcher executes one listing request against the hosting platform
type PullRequestFetcher interface {
	// FetchPullRequests performs exactly one call and never retries.
	// Errors are *domain.FetchError.
	FetchPullRequests(ctx context.Context, req domain.RequestDescriptor) (domain.ResultSet, error)
}
