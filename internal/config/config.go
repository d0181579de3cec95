package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. ANSWERS_TOC_PATH.
const EnvPrefix = "ANSWERS"

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	v         *viper.Viper
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
// searchDirs are used when cfgFile is empty.
func NewManager(cfgFile string, searchDirs ...string) (*Manager, error) {
	cm := &Manager{
		v:         viper.New(),
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile, searchDirs); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string, searchDirs []string) error {
	defaults := DefaultConfig()
	cm.v.SetDefault("toc_path", defaults.TOCPath)
	cm.v.SetDefault("catalog_path", defaults.CatalogPath)
	cm.v.SetDefault("problems_path", defaults.ProblemsPath)
	cm.v.SetDefault("log_level", defaults.LogLevel)
	cm.v.SetDefault("probe.timeout", defaults.Probe.Timeout)
	cm.v.SetDefault("probe.attempts", defaults.Probe.Attempts)
	cm.v.SetDefault("probe.delay", defaults.Probe.Delay)
	cm.v.SetDefault("watch.debounce", defaults.Watch.Debounce)

	// Environment variables with ANSWERS_ prefix
	cm.v.SetEnvPrefix(EnvPrefix)
	cm.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cm.v.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		cm.v.SetConfigFile(cfgFile)
	} else {
		cm.v.SetConfigName("config")
		cm.v.SetConfigType("yaml")
		cm.v.AddConfigPath(".")
		for _, dir := range searchDirs {
			cm.v.AddConfigPath(dir)
		}
	}

	// Try to read config file (not required)
	if err := cm.v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.TOCPath = ResolveEnvVars(cfg.TOCPath)
	cfg.CatalogPath = ResolveEnvVars(cfg.CatalogPath)
	cfg.ProblemsPath = ResolveEnvVars(cfg.ProblemsPath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// ConfigFile returns the config file in use, or "" when running on defaults.
func (cm *Manager) ConfigFile() string {
	return cm.v.ConfigFileUsed()
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
// Invalid edits are logged and the previous configuration is kept.
func (cm *Manager) WatchConfig(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			logger.Warn("ignoring invalid config change", "file", e.Name, "error", err)
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		logger.Info("config reloaded", "file", e.Name)
		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	cm.v.WatchConfig()
}

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// document renders cfg as an ordered YAML mapping with durations in their
// string form.
func document(cfg *Config) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "toc_path", Value: cfg.TOCPath},
		{Key: "catalog_path", Value: cfg.CatalogPath},
		{Key: "problems_path", Value: cfg.ProblemsPath},
		{Key: "log_level", Value: cfg.LogLevel},
		{Key: "probe", Value: yaml.MapSlice{
			{Key: "timeout", Value: cfg.Probe.Timeout.String()},
			{Key: "attempts", Value: cfg.Probe.Attempts},
			{Key: "delay", Value: cfg.Probe.Delay.String()},
		}},
		{Key: "watch", Value: yaml.MapSlice{
			{Key: "debounce", Value: cfg.Watch.Debounce.String()},
		}},
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(document(DefaultConfig()))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# answers configuration
# Relative paths are resolved against the answers home directory.
# Paths may use ${ENV_VAR} syntax to reference environment variables.

`)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, append(header, data...), 0o644)
}
