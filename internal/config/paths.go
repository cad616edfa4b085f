package config

import (
	"os"
	"path/filepath"
)

// GetHome returns GITSYNC_HOME or ~/.gitsync default
func GetHome() string {
	home := os.Getenv("GITSYNC_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gitsync"
		}
		return filepath.Join(homeDir, ".gitsync")
	}
	return ExpandPath(home)
}

// GetDBPath returns $GITSYNC_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $GITSYNC_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
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
