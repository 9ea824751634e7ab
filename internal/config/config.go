// Package config loads skillsync's optional TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/skillstack/skillsync/internal/errors"
	"github.com/skillstack/skillsync/internal/target"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// SyncConfig holds sync-related settings.
type SyncConfig struct {
	// SourceRoot overrides the source skills directory. Empty means
	// derive it from the binary's install location.
	SourceRoot string `toml:"source_root"`

	// Exclude lists additional source directory names skipped by
	// `install --all`, on top of the built-in manager directories.
	Exclude []string `toml:"exclude"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
}

// TargetConfig describes a config-file-defined target profile.
type TargetConfig struct {
	Name             string `toml:"name"`
	GlobalPath       string `toml:"global_path"`
	WorkspaceMarker  string `toml:"workspace_marker"`
	WorkspaceSubpath string `toml:"workspace_subpath"`
}

// Config is the main configuration struct for skillsync.
type Config struct {
	Sync    SyncConfig              `toml:"sync"`
	Logging LoggingConfig           `toml:"logging"`
	Targets map[string]TargetConfig `toml:"targets"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
	}
}

// DefaultPath returns the default config file location for a home
// directory (~/.config/skillsync/config.toml).
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "skillsync", "config.toml")
}

// Load reads a config file, applying defaults for unset fields.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.ConfigParseError(path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigParseError(path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return errors.Newf(errors.CodeConfigInvalidValue, "invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", LogFormatJSON, LogFormatText:
	default:
		return errors.Newf(errors.CodeConfigInvalidValue, "invalid logging format %q", c.Logging.Format)
	}
	for name, t := range c.Targets {
		if t.GlobalPath == "" {
			return errors.Newf(errors.CodeConfigInvalidValue, "target %q missing global_path", name)
		}
	}
	return nil
}

// RegisterTargets merges config-file-defined targets into the known
// target set. Config entries override built-ins of the same name.
func (c *Config) RegisterTargets() {
	for name, t := range c.Targets {
		displayName := t.Name
		if displayName == "" {
			displayName = name
		}
		subpath := t.WorkspaceSubpath
		if t.WorkspaceMarker != "" && subpath == "" {
			subpath = "skills"
		}
		target.Register(name, target.Config{
			Name:             displayName,
			GlobalPath:       t.GlobalPath,
			WorkspaceMarker:  t.WorkspaceMarker,
			WorkspaceSubpath: subpath,
		})
	}
}
