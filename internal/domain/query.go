package domain

import (
	"fmt"
	"strings"
)

// RepoType is the repository visibility used as a query filter
type RepoType string

const (
	RepoTypePrivate RepoType = "private"
	RepoTypePublic  RepoType = "public"
)

// PRState filters pull requests by state
type PRState string

const (
	PRStateAll    PRState = "all"
	PRStateClosed PRState = "closed"
	PRStateOpen   PRState = "open"
)

// Defaults used when a field is left unset
const (
	DefaultOwner      = "lalitmee"
	DefaultRepository = "dotfiles"
	DefaultRepoType   = RepoTypePublic
	DefaultState      = PRStateOpen
)

// RepoTypes lists the accepted repo types in display order
var RepoTypes = []RepoType{RepoTypePublic, RepoTypePrivate}

// PRStates lists the accepted pull request states in display order
var PRStates = []PRState{PRStateOpen, PRStateClosed, PRStateAll}

// QueryParameters holds the form fields of a pull request query
type QueryParameters struct {
	BaseBranch string
	Owner      string
	RepoType   RepoType
	Repository string
	State      PRState
}

// DefaultQueryParameters returns the parameters the form starts with
func DefaultQueryParameters() QueryParameters {
	return QueryParameters{
		Owner:      DefaultOwner,
		RepoType:   DefaultRepoType,
		Repository: DefaultRepository,
		State:      DefaultState,
	}
}

// WithDefaults fills empty enum fields with their defaults.
// Owner and Repository are never defaulted here.
func (p QueryParameters) WithDefaults() QueryParameters {
	if p.RepoType == "" {
		p.RepoType = DefaultRepoType
	}
	if p.State == "" {
		p.State = DefaultState
	}
	return p
}

// Validate reports the first invalid field as a ValidationError
func (p QueryParameters) Validate() error {
	if strings.TrimSpace(p.Owner) == "" {
		return NewValidationError("owner", "owner is required")
	}
	if strings.TrimSpace(p.Repository) == "" {
		return NewValidationError("repository", "repository is required")
	}
	if _, err := ParseRepoType(string(p.RepoType)); err != nil {
		return err
	}
	if _, err := ParsePRState(string(p.State)); err != nil {
		return err
	}
	return nil
}

// ParseRepoType parses a repo type, accepting any letter case
func ParseRepoType(s string) (RepoType, error) {
	for _, t := range RepoTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", NewValidationError("type", fmt.Sprintf("unknown repo type %q (want public or private)", s))
}

// ParsePRState parses a pull request state, accepting any letter case
func ParsePRState(s string) (PRState, error) {
	for _, st := range PRStates {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", NewValidationError("state", fmt.Sprintf("unknown state %q (want open, closed or all)", s))
}
