package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"prlinks/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show    SettingsShowCmd    `cmd:"show" help:"Show the current settings file contents" default:"1"`
	Example SettingsExampleCmd `cmd:"example" help:"Show every available setting with an example value"`
	Path    SettingsPathCmd    `cmd:"path" help:"Print the settings file location"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"Manage keyboard shortcuts"`
}

// SettingsShowCmd prints the loaded settings
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// SettingsExampleCmd displays every settings key with an example value
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	return writeSettingsExample(os.Stdout, s.Format)
}

func writeSettingsExample(w io.Writer, format string) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(w, "Example settings.json:")
	fmt.Fprintln(w)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(tw, "%s\t%s\n", key, valueStr)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create or edit this file to configure prlinks.")
	fmt.Fprintln(w, "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsPathCmd prints the settings file location
type SettingsPathCmd struct{}

// Run executes the path command
func (s *SettingsPathCmd) Run(cli *CLI) error {
	fmt.Println(config.GetSettingsPath())
	return nil
}
