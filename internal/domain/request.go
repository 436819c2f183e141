package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// PerPage is the page size of every listing request. Only the first page is
// ever fetched, so a query returns at most PerPage records.
const PerPage = 100

// PullsQuery is the query string of the listing endpoint
type PullsQuery struct {
	Base    string `url:"base,omitempty"`
	PerPage int    `url:"per_page"`
	State   string `url:"state"`
	Type    string `url:"type"`
}

// RequestDescriptor describes one listing request
type RequestDescriptor struct {
	Owner      string
	Path       string
	Query      PullsQuery
	Repository string
}

// BuildRequest turns query parameters into a request descriptor.
// It fails with a ValidationError before any network call can happen.
func BuildRequest(params QueryParameters) (RequestDescriptor, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return RequestDescriptor{}, err
	}

	owner := strings.TrimSpace(params.Owner)
	repo := strings.TrimSpace(params.Repository)
	repoType, _ := ParseRepoType(string(params.RepoType))
	state, _ := ParsePRState(string(params.State))

	return RequestDescriptor{
		Owner:      owner,
		Path:       fmt.Sprintf("/repos/%s/%s/pulls", url.PathEscape(owner), url.PathEscape(repo)),
		Repository: repo,
		Query: PullsQuery{
			Base:    strings.TrimSpace(params.BaseBranch),
			PerPage: PerPage,
			State:   string(state),
			Type:    string(repoType),
		},
	}, nil
}

// Values encodes the query parameters
func (d RequestDescriptor) Values() (url.Values, error) {
	v, err := query.Values(d.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	return v, nil
}

// URL returns the path with its encoded query, relative to the API root
func (d RequestDescriptor) URL() (string, error) {
	v, err := d.Values()
	if err != nil {
		return "", err
	}
	return d.Path + "?" + v.Encode(), nil
}

// String renders the request line, used for previews and logs
func (d RequestDescriptor) String() string {
	u, err := d.URL()
	if err != nil {
		return "GET " + d.Path
	}
	return "GET " + u
}
