package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prlinks/internal/domain"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil", err: nil, width: 80, expected: ""},
		{name: "short", err: errors.New("boom"), width: 80, expected: "Error: boom"},
		{
			name:     "wraps to two lines",
			err:      errors.New("aaaa bbbb cccc dddd"),
			width:    17,
			expected: "Error: aaaa bbbb\ncccc dddd",
		},
		{
			name:  "truncates",
			err:   errors.New(strings.Repeat("word ", 40)),
			width: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.err, tt.width)
			if tt.name == "truncates" {
				lines := strings.Split(got, "\n")
				assert.Len(t, lines, maxErrorLines)
				assert.True(t, strings.HasSuffix(got, truncationMark))
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "not found",
			err:      domain.NewFetchError(domain.FetchErrorStatus, http.StatusNotFound, errors.New("Not Found")),
			contains: "not found",
		},
		{
			name:     "forbidden",
			err:      domain.NewFetchError(domain.FetchErrorStatus, http.StatusForbidden, errors.New("nope")),
			contains: "GITHUB_TOKEN",
		},
		{
			name:     "server error",
			err:      domain.NewFetchError(domain.FetchErrorStatus, http.StatusBadGateway, errors.New("bad")),
			contains: "status 502",
		},
		{
			name:     "malformed",
			err:      domain.NewFetchError(domain.FetchErrorMalformed, 0, errors.New("response body is not a list")),
			contains: "not a list",
		},
		{
			name:     "timeout",
			err:      domain.NewFetchError(domain.FetchErrorTransport, 0, fmt.Errorf("get: %w", context.DeadlineExceeded)),
			contains: "timed out",
		},
		{
			name:     "validation",
			err:      domain.NewValidationError("owner", "owner is required"),
			contains: "owner is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, describeError(tt.err), tt.contains)
		})
	}
}
