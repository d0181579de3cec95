package config

import (
	"fmt"
	"time"
)

// Default file names, relative to the answers home directory.
const (
	DefaultTOCFile      = "data/table_of_contents.json"
	DefaultCatalogFile  = "data/catalog.xml"
	DefaultProblemsFile = "problems.txt"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		TOCPath:      DefaultTOCFile,
		CatalogPath:  DefaultCatalogFile,
		ProblemsPath: DefaultProblemsFile,
		LogLevel:     "info",
		Probe: ProbeCfg{
			Timeout:  10 * time.Second,
			Attempts: 3,
			Delay:    500 * time.Millisecond,
		},
		Watch: WatchCfg{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// Entry describes a single configuration key.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// Entries lists every key of cfg with its current value.
func (c *Config) Entries() []Entry {
	return []Entry{
		{Key: "toc_path", Value: c.TOCPath, Description: "JSON table of contents (relative paths are under the home directory)"},
		{Key: "catalog_path", Value: c.CatalogPath, Description: "Solution catalog, .xml or .yaml"},
		{Key: "problems_path", Value: c.ProblemsPath, Description: "Saved problem input read by resolve and watch"},
		{Key: "log_level", Value: c.LogLevel, Description: "Log level: debug, info, warn or error"},
		{Key: "probe.timeout", Value: c.Probe.Timeout.String(), Description: "HTTP timeout for solution image checks"},
		{Key: "probe.attempts", Value: c.Probe.Attempts, Description: "Attempts for transient check failures"},
		{Key: "probe.delay", Value: c.Probe.Delay.String(), Description: "Delay between check attempts"},
		{Key: "watch.debounce", Value: c.Watch.Debounce.String(), Description: "Quiet period before re-reading the problems file"},
	}
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if c.TOCPath == "" {
		return fmt.Errorf("toc_path is required")
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path is required")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
