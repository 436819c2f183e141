package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
)

// DefaultBaseURL is the public GitHub REST API root
const DefaultBaseURL = "https://api.github.com/"

// Client implements ports.PullRequestFetcher on top of go-github
type Client struct {
	client *gh.Client
}

// NewClient creates a client for the given API root.
// An empty token gives an unauthenticated client; otherwise the token is
// sent as a bearer credential on every request.
func NewClient(ctx context.Context, baseURL, token string) (*Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	client := gh.NewClient(httpClient)

	if baseURL != "" && baseURL != DefaultBaseURL {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

// FetchPullRequests performs one GET for the descriptor. It never retries.
func (c *Client) FetchPullRequests(ctx context.Context, req domain.RequestDescriptor) (domain.ResultSet, error) {
	u, err := req.URL()
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrorTransport, 0, err)
	}

	httpReq, err := c.client.NewRequest(http.MethodGet, strings.TrimPrefix(u, "/"), nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrorTransport, 0, err)
	}

	logging.Logger.Debug("Fetching pull requests", "url", httpReq.URL.String())

	var prs []*gh.PullRequest
	resp, err := c.client.Do(ctx, httpReq, &prs)
	if err != nil {
		fetchErr := classifyError(resp, err)
		logging.Logger.Warn("Pull request fetch failed",
			"kind", fetchErr.Kind, "status", fetchErr.StatusCode, "error", err)
		return nil, fetchErr
	}

	// A "null" body decodes without error but is not a list
	if prs == nil {
		logging.Logger.Warn("Pull request fetch returned a non-list body")
		return nil, domain.NewFetchError(domain.FetchErrorMalformed, 0, errors.New("response body is not a list"))
	}

	results := make(domain.ResultSet, 0, len(prs))
	for _, pr := range prs {
		if pr == nil {
			return nil, domain.NewFetchError(domain.FetchErrorMalformed, 0, errors.New("response contains a null record"))
		}
		results = append(results, toRecord(pr))
	}

	logging.Logger.Info("Fetched pull requests",
		"owner", req.Owner, "repository", req.Repository, "count", len(results))

	return results, nil
}

func toRecord(pr *gh.PullRequest) domain.PullRequestRecord {
	return domain.PullRequestRecord{
		AuthorLogin: pr.GetUser().GetLogin(),
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		URL:         pr.GetHTMLURL(),
	}
}

func classifyError(resp *gh.Response, err error) *domain.FetchError {
	var (
		errResp     *gh.ErrorResponse
		rateErr     *gh.RateLimitError
		abuseErr    *gh.AbuseRateLimitError
		syntaxErr   *json.SyntaxError
		unmarshlErr *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &errResp):
		return domain.NewFetchError(domain.FetchErrorStatus, statusOf(errResp.Response), err)
	case errors.As(err, &rateErr):
		return domain.NewFetchError(domain.FetchErrorStatus, statusOf(rateErr.Response), err)
	case errors.As(err, &abuseErr):
		return domain.NewFetchError(domain.FetchErrorStatus, statusOf(abuseErr.Response), err)
	case errors.As(err, &syntaxErr), errors.As(err, &unmarshlErr):
		return domain.NewFetchError(domain.FetchErrorMalformed, 0, err)
	}

	if resp != nil && resp.Response != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return domain.NewFetchError(domain.FetchErrorStatus, resp.StatusCode, err)
		}
		// Decode failures other than syntax errors (truncated bodies)
		return domain.NewFetchError(domain.FetchErrorMalformed, 0, err)
	}

	return domain.NewFetchError(domain.FetchErrorTransport, 0, err)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
