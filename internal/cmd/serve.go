package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"prlinks/internal/api"
	"prlinks/internal/config"
	"prlinks/internal/logging"
	"prlinks/internal/server"
	"prlinks/internal/ui"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	APIAddr        string `help:"Also serve the HTTP API on this address" name:"api-addr"`
	AuthorizedKeys string `help:"authorized_keys file used for public key auth" type:"path"`
	Host           string `help:"Host to bind to" default:"localhost"`
	HostKey        string `help:"SSH host key path (created if missing)" type:"path"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = config.GetAuthorizedKeysPath()
	}
	hostKey := s.HostKey
	if hostKey == "" {
		hostKey = config.GetHostKeyPath()
	}

	modelCfg, err := sessionModelConfig(cli)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: authorizedKeys,
		HostKeyPath:        hostKey,
		Host:               s.Host,
		Model:              modelCfg,
		Port:               s.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	fmt.Printf("SSH server listening on %s\n", srv.Address())

	if s.APIAddr != "" {
		apiServer := api.NewServer(s.APIAddr, cli.Container.PullRequestService)
		g.Go(func() error {
			return apiServer.Run(ctx)
		})
		fmt.Printf("HTTP API listening on %s\n", s.APIAddr)
	}

	logging.Logger.Info("Serving",
		"ssh", srv.Address(),
		"api", s.APIAddr,
		"authorized_keys", authorizedKeys)

	return g.Wait()
}

// sessionModelConfig builds the per-session TUI template from settings
func sessionModelConfig(cli *CLI) (ui.ModelConfig, error) {
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.ModelConfig{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
	}

	errorClearDelay := config.DefaultErrorClearDelay
	if cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		errorClearDelay = *cli.settings.ErrorClearDelay
	}

	return ui.ModelConfig{
		DebounceDelay:   cli.settings.Debounce(),
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		InitialMode:     cli.settings.ViewDefault(),
		InitialParams:   cli.settings.QueryDefaults(),
		KeysConfig:      keysConfig,
		Service:         cli.Container.PullRequestService,
	}, nil
}
