package services

import (
	"context"
	"errors"
	"time"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
	"prlinks/internal/ports"
)

// DefaultFetchTimeout bounds a single listing call
const DefaultFetchTimeout = 15 * time.Second

// PullRequestService builds listing requests and runs them through a fetcher
type PullRequestService struct {
	fetcher ports.PullRequestFetcher
	timeout time.Duration
}

// NewPullRequestService creates a new PullRequestService.
// A non-positive timeout leaves fetches bounded only by the caller's context.
func NewPullRequestService(fetcher ports.PullRequestFetcher, timeout time.Duration) *PullRequestService {
	return &PullRequestService{
		fetcher: fetcher,
		timeout: timeout,
	}
}

// Fetch runs one listing request. Errors are *domain.FetchError.
func (s *PullRequestService) Fetch(ctx context.Context, req domain.RequestDescriptor) (domain.ResultSet, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	logging.Logger.Debug("Starting fetch", "request", req.String())

	results, err := s.fetcher.FetchPullRequests(ctx, req)
	if err != nil {
		if !domain.IsFetch(err) {
			err = domain.NewFetchError(domain.FetchErrorTransport, 0, err)
		}
		logging.Logger.Error("Fetch failed",
			"request", req.String(),
			"duration", time.Since(start),
			"error", err)
		return domain.ResultSet{}, err
	}

	logging.Logger.Info("Fetch completed",
		"request", req.String(),
		"duration", time.Since(start),
		"count", results.Len())
	return results.Clone(), nil
}

// Query validates params, then fetches. A ValidationError means the
// fetcher was never called.
func (s *PullRequestService) Query(ctx context.Context, params domain.QueryParameters) (domain.ResultSet, error) {
	req, err := domain.BuildRequest(params)
	if err != nil {
		logging.Logger.Debug("Query rejected", "error", err)
		return domain.ResultSet{}, err
	}
	return s.Fetch(ctx, req)
}

// Present fetches and maps the result to a view model of the given mode
func (s *PullRequestService) Present(
	ctx context.Context,
	params domain.QueryParameters,
	mode domain.ViewMode,
) (domain.ViewModel, error) {
	results, err := s.Query(ctx, params)
	if err != nil {
		return domain.Present(domain.ResultSet{}, mode), err
	}
	return domain.Present(results, mode), nil
}

// IsTimeout reports whether err came from the per-fetch deadline
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
