package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"prlinks/internal/adapters/browser"
	"prlinks/internal/adapters/clipboard"
	adaptergithub "prlinks/internal/adapters/github"
	"prlinks/internal/config"
	"prlinks/internal/domain"
	"prlinks/internal/logging"
	"prlinks/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `help:"GitHub API base URL (for GitHub Enterprise)" name:"api-url" env:"PRLINKS_API_URL" default:"https://api.github.com/"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"PRLINKS_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"PRLINKS_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" env:"PRLINKS_MAX_LOG_FILES" default:"100"`
	Timeout     int              `help:"Seconds before a fetch is abandoned" default:"15"`
	Token       string           `help:"GitHub token sent as a bearer credential" env:"GITHUB_TOKEN"`

	Run      RunCmd      `cmd:"" help:"Start the prlinks TUI (default)" default:"1"`
	Fetch    FetchCmd    `cmd:"fetch" help:"Fetch pull requests once and print them"`
	API      APICmd      `cmd:"api" help:"Serve pull request listings over HTTP"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Inspect and edit settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.APIURL == adaptergithub.DefaultBaseURL && c.settings.APIURL != "" {
			if _, hasEnv := os.LookupEnv("PRLINKS_API_URL"); !hasEnv {
				c.APIURL = c.settings.APIURL
			}
		}

		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PRLINKS_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PRLINKS_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Timeout == config.DefaultTimeoutSeconds && c.settings.TimeoutSeconds != nil {
			c.Timeout = *c.settings.TimeoutSeconds
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container AFTER logging is initialized
	container, err := NewContainer(context.Background(), c.APIURL, c.Token, c.timeout())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) timeout() time.Duration {
	if c.Timeout <= 0 {
		return time.Duration(config.DefaultTimeoutSeconds) * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// QueryFlags are the query fields shared by the commands that fetch
type QueryFlags struct {
	Base  string `help:"Only pull requests targeting this base branch"`
	State string `help:"Pull request state (open, closed, all)"`
	Type  string `help:"Repository visibility (public, private)"`
}

// apply overlays the flags onto params; empty flags keep params
func (q QueryFlags) apply(params domain.QueryParameters) (domain.QueryParameters, error) {
	if q.Base != "" {
		params.BaseBranch = q.Base
	}
	if q.State != "" {
		state, err := domain.ParsePRState(q.State)
		if err != nil {
			return params, err
		}
		params.State = state
	}
	if q.Type != "" {
		repoType, err := domain.ParseRepoType(q.Type)
		if err != nil {
			return params, err
		}
		params.RepoType = repoType
	}
	return params, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	QueryFlags `embed:""`

	Browser         string `help:"Browser used to open pull requests (overrides $PRLINKS_BROWSER, $BROWSER)"`
	Debounce        int    `help:"Milliseconds of quiet before form edits apply" default:"300"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Now             bool   `help:"Fetch immediately instead of opening the query form"`
	Owner           string `help:"Repository owner"`
	Repo            string `help:"Repository name"`
	View            string `help:"Initial tab (list, links)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	params := cli.settings.QueryDefaults()
	if r.Owner != "" {
		params.Owner = r.Owner
	}
	if r.Repo != "" {
		params.Repository = r.Repo
	}
	params, err := r.QueryFlags.apply(params)
	if err != nil {
		return err
	}

	mode := cli.settings.ViewDefault()
	if r.View != "" {
		if mode, err = domain.ParseViewMode(r.View); err != nil {
			return err
		}
	}

	debounce := time.Duration(r.Debounce) * time.Millisecond
	errorClearDelay := r.ErrorClearDelay
	browserName := r.Browser
	if cli.settings != nil {
		if r.Debounce == config.DefaultDebounceMs {
			debounce = cli.settings.Debounce()
		}
		if r.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings.ErrorClearDelay != nil {
			errorClearDelay = *cli.settings.ErrorClearDelay
		}
		if browserName == "" {
			browserName = cli.settings.Browser
		}
	}

	// Validate key bindings if configured
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	logging.Logger.Info("Starting prlinks TUI",
		"owner", params.Owner,
		"repository", params.Repository,
		"view", mode,
		"debounce", debounce.String())

	model := ui.NewModel(ui.ModelConfig{
		Clipboard:       clipboard.NewFallbackWriter(os.Stdout),
		DebounceDelay:   debounce,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		InitialMode:     mode,
		InitialParams:   params,
		KeysConfig:      keysConfig,
		Opener:          browser.NewOpener(browserName),
		Service:         cli.Container.PullRequestService,
		SkipForm:        r.Now,
	})
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
