package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"prlinks/internal/domain"
	"prlinks/internal/services"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay formats an error message for TUI display.
// It limits the error to maxErrorLines and wraps text based on terminal width,
// accounting for the "Error: " prefix on the first line. Longer messages are
// truncated with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := describeError(err)
	if message == "" {
		return errorPrefix + "unknown error"
	}

	firstLineWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10 // Minimum width to prevent edge cases
	}

	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxErrorLines {
				truncated = true
				break
			}

			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	// Add the last line if there's content and we haven't exceeded max lines
	if currentLine.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		lastLine := lines[maxErrorLines-1]
		truncLen := utf8.RuneCountInString(truncationMark)

		if utf8.RuneCountInString(lastLine)+truncLen > otherLineWidth {
			maxRunes := otherLineWidth - truncLen
			if maxRunes > 0 {
				runes := []rune(lastLine)
				if len(runes) > maxRunes {
					lastLine = string(runes[:maxRunes])
				}
			}
		}

		lines[maxErrorLines-1] = lastLine + truncationMark
	}

	if len(lines) == 0 {
		return errorPrefix
	}

	result := errorPrefix + lines[0]
	if len(lines) > 1 {
		result += "\n" + strings.Join(lines[1:], "\n")
	}

	return result
}

// describeError turns pipeline errors into a message for the status area
func describeError(err error) string {
	if services.IsTimeout(err) {
		return "request timed out, press r to retry"
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case domain.FetchErrorStatus:
			switch fetchErr.StatusCode {
			case http.StatusNotFound:
				return "repository not found or not visible (404)"
			case http.StatusUnauthorized, http.StatusForbidden:
				return fmt.Sprintf("access denied (%d), check GITHUB_TOKEN", fetchErr.StatusCode)
			}
			return fmt.Sprintf("request failed with status %d", fetchErr.StatusCode)
		case domain.FetchErrorMalformed:
			return "unexpected response: " + fetchErr.Err.Error()
		}
	}

	return err.Error()
}
