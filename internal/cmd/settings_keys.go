package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"prlinks/internal/config"
	"prlinks/internal/logging"
	"prlinks/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., copy_links, open_pr, refresh)"`
	Value string `arg:"" help:"Key binding (e.g., y, ctrl+r, or comma-separated for several: up,k)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}
	return writeKeyBindings(os.Stdout, s.Format, customKeys)
}

// keyBindingEntry is one row of the key bindings listing
type keyBindingEntry struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
}

func writeKeyBindings(w io.Writer, format string, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	entries := make(map[string]keyBindingEntry, len(names))
	for _, name := range names {
		entry := keyBindingEntry{Default: defaults[name]}
		if def := ui.GetKeyDefinition(name); def != nil {
			entry.Help = def.Help
		}
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry.Custom = custom
		}
		entries[name] = entry
	}

	if format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(tw, "────\t───────\t──────\t──────")
	for _, name := range names {
		entry := entries[name]
		customStr := "-"
		if len(entry.Custom) > 0 {
			customStr = strings.Join(entry.Custom, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, strings.Join(entry.Default, ", "), customStr, entry.Help)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use 'prlinks settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	settings, err := setKeyBinding(s.Key, s.Value)
	if err != nil {
		return err
	}
	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(settings.Keys[s.Key], ", "))
	return nil
}

// setKeyBinding validates and persists one binding, returning the saved settings
func setKeyBinding(name, value string) (*config.Settings, error) {
	if !ui.IsValidKeyName(name) {
		return nil, fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(value)
	if len(values) == 0 {
		return nil, fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", name, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[name] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
