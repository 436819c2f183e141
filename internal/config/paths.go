package config

import (
	"os"
	"path/filepath"
)

// GetHome returns PRLINKS_HOME or the ~/.prlinks default
func GetHome() string {
	home := os.Getenv("PRLINKS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".prlinks"
		}
		return filepath.Join(homeDir, ".prlinks")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $PRLINKS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetAuthorizedKeysPath returns ~/.ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return ExpandPath("~/.ssh/authorized_keys")
}

// GetHostKeyPath returns $PRLINKS_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
