package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prlinks/internal/domain"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), server.URL, token)
	require.NoError(t, err)
	return client
}

func mustBuild(t *testing.T, params domain.QueryParameters) domain.RequestDescriptor {
	t.Helper()
	req, err := domain.BuildRequest(params)
	require.NoError(t, err)
	return req
}

func TestFetchPullRequests_Success(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAuth string

	client := newTestClient(t, "secret-token", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"number": 7, "title": "Fix", "html_url": "https://x/7", "user": {"login": "ann"}},
			{"number": 3, "title": "Add", "html_url": "https://x/3", "user": {"login": "bob"}}
		]`))
	})

	req := mustBuild(t, domain.QueryParameters{
		BaseBranch: "main",
		Owner:      "acme",
		RepoType:   domain.RepoTypePublic,
		Repository: "widgets",
		State:      domain.PRStateOpen,
	})

	results, err := client.FetchPullRequests(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "/repos/acme/widgets/pulls", gotPath)
	assert.Equal(t, []string{"main"}, gotQuery["base"])
	assert.Equal(t, []string{"open"}, gotQuery["state"])
	assert.Equal(t, []string{"public"}, gotQuery["type"])
	assert.Equal(t, []string{"100"}, gotQuery["per_page"])
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, domain.ResultSet{
		{AuthorLogin: "ann", Number: 7, Title: "Fix", URL: "https://x/7"},
		{AuthorLogin: "bob", Number: 3, Title: "Add", URL: "https://x/3"},
	}, results)
}

func TestFetchPullRequests_NoToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	results, err := client.FetchPullRequests(context.Background(), mustBuild(t, domain.DefaultQueryParameters()))

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.NotNil(t, results)
	assert.True(t, results.IsEmpty())
}

func TestFetchPullRequests_OmitsEmptyBase(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.FetchPullRequests(context.Background(), mustBuild(t, domain.DefaultQueryParameters()))

	require.NoError(t, err)
	assert.NotContains(t, rawQuery, "base=")
}

func TestFetchPullRequests_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   domain.FetchErrorKind
		wantStatus int
	}{
		{
			name:       "not found",
			status:     http.StatusNotFound,
			body:       `{"message": "Not Found"}`,
			wantKind:   domain.FetchErrorStatus,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `oops`,
			wantKind:   domain.FetchErrorStatus,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:     "object body",
			status:   http.StatusOK,
			body:     `{"message": "not a list"}`,
			wantKind: domain.FetchErrorMalformed,
		},
		{
			name:     "null body",
			status:   http.StatusOK,
			body:     `null`,
			wantKind: domain.FetchErrorMalformed,
		},
		{
			name:     "invalid json",
			status:   http.StatusOK,
			body:     `[{"number": `,
			wantKind: domain.FetchErrorMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			results, err := client.FetchPullRequests(context.Background(), mustBuild(t, domain.DefaultQueryParameters()))

			require.Error(t, err)
			assert.Nil(t, results)
			assert.True(t, domain.IsFetch(err))

			var fetchErr *domain.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantKind, fetchErr.Kind)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
		})
	}
}

func TestFetchPullRequests_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient(context.Background(), baseURL, "")
	require.NoError(t, err)

	_, err = client.FetchPullRequests(context.Background(), mustBuild(t, domain.DefaultQueryParameters()))

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchErrorTransport, fetchErr.Kind)
	assert.Zero(t, fetchErr.StatusCode)
}

func TestFetchPullRequests_SingleCall(t *testing.T) {
	calls := 0
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchPullRequests(context.Background(), mustBuild(t, domain.DefaultQueryParameters()))

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "://bad", "")
	assert.Error(t, err)
}
