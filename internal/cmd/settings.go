package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/wolverin0/crystal-fork-sub001/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and effective engine configuration" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type settingEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	entries := effectiveSettings(cli.settings.SyncConfig())

	if s.Format == "json" {
		return printJSON(map[string]any{
			"database":      config.GetDBPath(),
			"effective":     entries,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n", settingsFile)
	fmt.Printf("Database:      %s\n\n", config.GetDBPath())
	fmt.Println("Effective configuration:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Value)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit the settings file to configure gitsync.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

func effectiveSettings(cfg config.SyncConfig) []settingEntry {
	ms := func(d interface{ Milliseconds() int64 }) string {
		return fmt.Sprintf("%d", d.Milliseconds())
	}
	return []settingEntry{
		{Key: "batch_interval_ms", Value: ms(cfg.BatchInterval)},
		{Key: "cache_ttl_ms", Value: ms(cfg.CacheTTL)},
		{Key: "cold_start_stagger_ms", Value: ms(cfg.ColdStartStagger)},
		{Key: "debounce_ms", Value: ms(cfg.Debounce)},
		{Key: "inspector_timeout_ms", Value: ms(cfg.InspectorTimeout)},
		{Key: "max_concurrent_operations", Value: fmt.Sprintf("%d", cfg.MaxConcurrentOperations)},
		{Key: "watch_debounce_ms", Value: ms(cfg.WatchDebounce)},
		{Key: "watch_ignore", Value: strings.Join(cfg.WatchIgnore, ",")},
	}
}
