package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wolverin0/crystal-fork-sub001/internal/config"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	LogLevel    string           `help:"Minimum log level (debug, info, warn, error)" default:""`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Projects ProjectsCmd `cmd:"projects" help:"Manage projects (list, add, del)"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage sessions (list, add, archive, del, import, state)"`
	Status   StatusCmd   `cmd:"status" help:"Refresh and show git status of sessions"`
	Watch    WatchCmd    `cmd:"watch" help:"Watch worktrees and print status changes until interrupted"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`
	Info     VersionCmd  `cmd:"version" name:"version" help:"Show version banner"`

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
	// A setting only applies while the flag still holds its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GITSYNC_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GITSYNC_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.LogLevel == "" {
			if _, hasEnv := os.LookupEnv("GITSYNC_LOG_LEVEL"); !hasEnv {
				c.LogLevel = c.settings.LogLevel
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles, c.LogLevel)
	if err != nil {
		return err
	}

	// Exported after initialization so git subprocesses and tests spawned
	// from here append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("GITSYNC_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("GITSYNC_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("GITSYNC_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}
	if c.LogLevel != "" {
		os.Setenv("GITSYNC_LOG_LEVEL", c.LogLevel)
	}

	// The container is created after logging so the GORM logger never
	// writes through the discard logger
	container, err := NewContainer(c.settings.SyncConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
