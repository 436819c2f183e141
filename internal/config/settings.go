package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"prlinks/internal/domain"
)

// Defaults shared by the CLI and the TUI
const (
	DefaultDebounceMs      = 300
	DefaultErrorClearDelay = 10
	DefaultTimeoutSeconds  = 15
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "copy", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $PRLINKS_HOME/settings.json
type Settings struct {
	APIURL          string            `json:"api_url,omitempty"`
	BaseBranch      string            `json:"base_branch,omitempty"`
	Browser         string            `json:"browser,omitempty"`
	DebounceMs      *int              `json:"debounce_ms,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	Owner           string            `json:"owner,omitempty"`
	RepoType        string            `json:"repo_type,omitempty"`
	Repository      string            `json:"repository,omitempty"`
	State           string            `json:"state,omitempty"`
	TimeoutSeconds  *int              `json:"timeout_seconds,omitempty"`
	View            string            `json:"view,omitempty"`
}

// Validate checks enum-valued settings
func (s *Settings) Validate() error {
	if s.RepoType != "" {
		if _, err := domain.ParseRepoType(s.RepoType); err != nil {
			return fmt.Errorf("repo_type: %w", err)
		}
	}
	if s.State != "" {
		if _, err := domain.ParsePRState(s.State); err != nil {
			return fmt.Errorf("state: %w", err)
		}
	}
	if s.View != "" {
		if _, err := domain.ParseViewMode(s.View); err != nil {
			return fmt.Errorf("view: %w", err)
		}
	}
	if s.DebounceMs != nil && *s.DebounceMs < 0 {
		return fmt.Errorf("debounce_ms must not be negative")
	}
	if s.TimeoutSeconds != nil && *s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	return nil
}

// QueryDefaults returns the initial query parameters: built-in defaults
// overridden by any query fields set in the settings file
func (s *Settings) QueryDefaults() domain.QueryParameters {
	params := domain.DefaultQueryParameters()
	if s == nil {
		return params
	}
	if s.Owner != "" {
		params.Owner = s.Owner
	}
	if s.Repository != "" {
		params.Repository = s.Repository
	}
	if s.BaseBranch != "" {
		params.BaseBranch = s.BaseBranch
	}
	if rt, err := domain.ParseRepoType(s.RepoType); err == nil && s.RepoType != "" {
		params.RepoType = rt
	}
	if st, err := domain.ParsePRState(s.State); err == nil && s.State != "" {
		params.State = st
	}
	return params
}

// ViewDefault returns the configured initial view mode, list by default
func (s *Settings) ViewDefault() domain.ViewMode {
	if s != nil && s.View != "" {
		if mode, err := domain.ParseViewMode(s.View); err == nil {
			return mode
		}
	}
	return domain.ViewModeList
}

// Debounce returns the configured quiescence window
func (s *Settings) Debounce() time.Duration {
	if s != nil && s.DebounceMs != nil {
		return time.Duration(*s.DebounceMs) * time.Millisecond
	}
	return DefaultDebounceMs * time.Millisecond
}

// LoadSettings loads settings from $PRLINKS_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PRLINKS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
