package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
)

// FetchCmd fetches pull requests once and prints the view
type FetchCmd struct {
	Owner string `arg:"" help:"Repository owner"`
	Repo  string `arg:"" help:"Repository name"`

	QueryFlags `embed:""`

	Output string `help:"Output format" enum:"text,json" default:"text"`
	View   string `help:"View to print" enum:"list,links" default:"list"`
}

// Run executes the fetch command
func (f *FetchCmd) Run(cli *CLI) error {
	params := cli.settings.QueryDefaults()
	params.Owner = f.Owner
	params.Repository = f.Repo
	params, err := f.QueryFlags.apply(params)
	if err != nil {
		return err
	}

	mode, err := domain.ParseViewMode(f.View)
	if err != nil {
		return err
	}

	logging.Logger.Info("Fetching pull requests",
		"owner", params.Owner,
		"repository", params.Repository,
		"view", mode)

	vm, err := cli.Container.PullRequestService.Present(context.Background(), params, mode)
	if err != nil {
		return err
	}

	return renderViewModel(os.Stdout, vm, f.Output)
}

// renderViewModel prints vm as text or JSON
func renderViewModel(w io.Writer, vm domain.ViewModel, output string) error {
	if output == "json" {
		data, err := json.MarshalIndent(vm, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if vm.Mode == domain.ViewModeLinks {
		for _, link := range vm.Links {
			if _, err := fmt.Fprintln(w, link); err != nil {
				return err
			}
		}
		return nil
	}

	if len(vm.Items) == 0 {
		_, err := fmt.Fprintln(w, "No pull requests match this query.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range vm.Items {
		fmt.Fprintf(tw, "#%s\t@%s\t%s\n", item.Button, item.Chip, item.Label)
	}
	return tw.Flush()
}
