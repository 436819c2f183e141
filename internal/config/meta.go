package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"copy": "y",
			"help": []string{"H", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "debounce_ms":
				return DefaultDebounceMs
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 100
			case "timeout_seconds":
				return DefaultTimeoutSeconds
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "api_url":
			return "https://api.github.com/"
		case "base_branch":
			return "main"
		case "browser":
			return "firefox"
		case "owner":
			return "lalitmee"
		case "repo_type":
			return "public"
		case "repository":
			return "dotfiles"
		case "state":
			return "open"
		case "view":
			return "list"
		default:
			return "example"
		}
	}

	return nil
}
