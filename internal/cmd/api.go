package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"prlinks/internal/api"
)

// APICmd serves pull request listings over HTTP
type APICmd struct {
	Addr string `help:"Address to listen on" default:"localhost:8080"`
}

// Run executes the api command
func (a *APICmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("HTTP API listening on %s\n", a.Addr)
	return api.NewServer(a.Addr, cli.Container.PullRequestService).Run(ctx)
}
