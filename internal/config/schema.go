package config

import "time"

// Config holds answers configuration.
// Stored at: {home}/config.yaml
type Config struct {
	TOCPath      string   `mapstructure:"toc_path" yaml:"toc_path"`           // JSON table of contents
	CatalogPath  string   `mapstructure:"catalog_path" yaml:"catalog_path"`   // .xml or .yaml solution catalog
	ProblemsPath string   `mapstructure:"problems_path" yaml:"problems_path"` // Saved problem input
	LogLevel     string   `mapstructure:"log_level" yaml:"log_level"`         // debug, info, warn, error
	Probe        ProbeCfg `mapstructure:"probe" yaml:"probe"`
	Watch        WatchCfg `mapstructure:"watch" yaml:"watch"`
}

// ProbeCfg configures solution image checks.
type ProbeCfg struct {
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`   // Per-request timeout
	Attempts uint          `mapstructure:"attempts" yaml:"attempts"` // Attempts for transient failures
	Delay    time.Duration `mapstructure:"delay" yaml:"delay"`       // Delay between attempts
}

// WatchCfg configures the problems file watcher.
type WatchCfg struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}
