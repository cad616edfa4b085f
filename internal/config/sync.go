package config

import "time"

// Engine defaults
const (
	DefaultBatchInterval           = 200 * time.Millisecond
	DefaultCacheTTL                = 10 * time.Second
	DefaultColdStartStagger        = 200 * time.Millisecond
	DefaultDebounce                = 5000 * time.Millisecond
	DefaultInspectorTimeout        = 30 * time.Second
	DefaultMaxConcurrentOperations = 2
	DefaultWatchDebounce           = 250 * time.Millisecond
)

// DefaultWatchIgnore lists directory names the filesystem watcher skips
var DefaultWatchIgnore = []string{".git", "node_modules"}

// SyncConfig is the resolved engine configuration
type SyncConfig struct {
	BatchInterval           time.Duration
	CacheTTL                time.Duration
	ColdStartStagger        time.Duration
	Debounce                time.Duration
	InspectorTimeout        time.Duration
	MaxConcurrentOperations int
	WatchDebounce           time.Duration
	WatchIgnore             []string
}

// DefaultSyncConfig returns the engine defaults
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		BatchInterval:           DefaultBatchInterval,
		CacheTTL:                DefaultCacheTTL,
		ColdStartStagger:        DefaultColdStartStagger,
		Debounce:                DefaultDebounce,
		InspectorTimeout:        DefaultInspectorTimeout,
		MaxConcurrentOperations: DefaultMaxConcurrentOperations,
		WatchDebounce:           DefaultWatchDebounce,
		WatchIgnore:             DefaultWatchIgnore,
	}
}

// SyncConfig resolves the engine configuration, applying set fields
// over the defaults. Non-positive values are ignored.
func (s *Settings) SyncConfig() SyncConfig {
	cfg := DefaultSyncConfig()
	if s == nil {
		return cfg
	}

	applyMs(&cfg.BatchInterval, s.BatchIntervalMs)
	applyMs(&cfg.CacheTTL, s.CacheTTLMs)
	applyMs(&cfg.ColdStartStagger, s.ColdStartStaggerMs)
	applyMs(&cfg.Debounce, s.DebounceMs)
	applyMs(&cfg.InspectorTimeout, s.InspectorTimeoutMs)
	applyMs(&cfg.WatchDebounce, s.WatchDebounceMs)

	if s.MaxConcurrentOperations != nil && *s.MaxConcurrentOperations > 0 {
		cfg.MaxConcurrentOperations = *s.MaxConcurrentOperations
	}
	if len(s.WatchIgnore) > 0 {
		cfg.WatchIgnore = s.WatchIgnore
	}

	return cfg
}

func applyMs(dst *time.Duration, ms *int) {
	if ms != nil && *ms > 0 {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}
