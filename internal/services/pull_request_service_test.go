package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prlinks/internal/domain"
	portsmocks "prlinks/internal/ports/mocks"
)

func TestPullRequestService_Query(t *testing.T) {
	fetcher := portsmocks.NewMockPullRequestFetcher(t)
	records := domain.ResultSet{{AuthorLogin: "a", Number: 12, Title: "Fix bug", URL: "https://x/12"}}

	fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.MatchedBy(func(req domain.RequestDescriptor) bool {
			return req.Path == "/repos/lalitmee/dotfiles/pulls" && req.Query.PerPage == domain.PerPage
		})).
		Return(records, nil).
		Once()

	svc := NewPullRequestService(fetcher, time.Second)
	results, err := svc.Query(context.Background(), domain.DefaultQueryParameters())

	require.NoError(t, err)
	assert.Equal(t, records, results)
}

func TestPullRequestService_ValidationNeverFetches(t *testing.T) {
	tests := []struct {
		name   string
		params domain.QueryParameters
		field  string
	}{
		{name: "empty owner", params: domain.QueryParameters{Repository: "r"}, field: "owner"},
		{name: "blank repository", params: domain.QueryParameters{Owner: "o", Repository: "   "}, field: "repository"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The mock fails the test on any unexpected call
			fetcher := portsmocks.NewMockPullRequestFetcher(t)
			svc := NewPullRequestService(fetcher, time.Second)

			results, err := svc.Query(context.Background(), tt.params)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Empty(t, results)
		})
	}
}

func TestPullRequestService_FetchErrorYieldsEmptySet(t *testing.T) {
	fetcher := portsmocks.NewMockPullRequestFetcher(t)
	fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.Anything).
		Return(nil, domain.NewFetchError(domain.FetchErrorStatus, http.StatusNotFound, errors.New("Not Found")))

	svc := NewPullRequestService(fetcher, time.Second)
	results, err := svc.Query(context.Background(), domain.DefaultQueryParameters())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, domain.StatusCode(err))
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestPullRequestService_WrapsForeignErrors(t *testing.T) {
	fetcher := portsmocks.NewMockPullRequestFetcher(t)
	fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: refused"))

	svc := NewPullRequestService(fetcher, 0)
	_, err := svc.Query(context.Background(), domain.DefaultQueryParameters())

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchErrorTransport, fetchErr.Kind)
}

func TestPullRequestService_Timeout(t *testing.T) {
	fetcher := portsmocks.NewMockPullRequestFetcher(t)
	fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.RequestDescriptor) (domain.ResultSet, error) {
			<-ctx.Done()
			return nil, domain.NewFetchError(domain.FetchErrorTransport, 0, ctx.Err())
		})

	svc := NewPullRequestService(fetcher, 10*time.Millisecond)
	_, err := svc.Query(context.Background(), domain.DefaultQueryParameters())

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestPullRequestService_Present(t *testing.T) {
	fetcher := portsmocks.NewMockPullRequestFetcher(t)
	fetcher.EXPECT().
		FetchPullRequests(mock.Anything, mock.Anything).
		Return(domain.ResultSet{
			{Number: 1, URL: "https://x/1"},
			{Number: 2, URL: "https://x/2"},
		}, nil)

	svc := NewPullRequestService(fetcher, time.Second)
	vm, err := svc.Present(context.Background(), domain.DefaultQueryParameters(), domain.ViewModeLinks)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x/1", "https://x/2"}, vm.Links)
	assert.Equal(t, "https://x/1\nhttps://x/2", vm.Clipboard)
}
