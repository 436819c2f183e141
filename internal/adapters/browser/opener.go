package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"

	"prlinks/internal/logging"
	"prlinks/internal/ports"
)

// Opener implements ports.URLOpener
type Opener struct {
	browser string
	start   func(name string, args ...string) error
}

// NewOpener creates a browser opener.
// Priority: cliBrowser → $PRLINKS_BROWSER → $BROWSER → platform default
func NewOpener(cliBrowser string) *Opener {
	return &Opener{
		browser: cliBrowser,
		start:   startDetached,
	}
}

// Open opens rawURL in a new browser context
func (o *Opener) Open(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("no URL provided")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web URL %q", rawURL)
	}

	name, args := findBrowser(rawURL, o.browser)
	logging.Logger.Info("Opening browser", "browser", name, "url", rawURL)

	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

func findBrowser(rawURL string, cliBrowser string) (string, []string) {
	if cliBrowser != "" {
		return cliBrowser, []string{rawURL}
	}

	if browser := os.Getenv("PRLINKS_BROWSER"); browser != "" {
		return browser, []string{rawURL}
	}

	if browser := os.Getenv("BROWSER"); browser != "" {
		return browser, []string{rawURL}
	}

	return platformOpenCommand(rawURL)
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", name)
		}
	}()

	return nil
}

// CopyOpener implements ports.URLOpener for remote sessions, where a browser
// on this host is not the user's. It hands the URL to the clipboard instead.
type CopyOpener struct {
	clipboard ports.ClipboardWriter
}

// NewCopyOpener creates an opener that copies URLs to clipboard
func NewCopyOpener(clipboard ports.ClipboardWriter) *CopyOpener {
	return &CopyOpener{clipboard: clipboard}
}

// OpenVerb reports that Open copies rather than launches
func (o *CopyOpener) OpenVerb() string {
	return "Copied"
}

// Open copies rawURL to the clipboard
func (o *CopyOpener) Open(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("no URL provided")
	}
	if err := o.clipboard.Copy(rawURL); err != nil {
		return fmt.Errorf("failed to copy URL: %w", err)
	}
	logging.Logger.Info("Copied URL for remote session", "url", rawURL)
	return nil
}
