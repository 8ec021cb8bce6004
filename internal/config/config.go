// Package config provides reading and writing of pathfs configuration.
// Supports both global (~/.pathfs/config.yaml) and local (.pathfs/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.pathfs/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .pathfs/config.yaml
	ScopeLocal
)

// Author represents the author metadata recorded in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Output holds display configuration options.
type Output struct {
	Colour *bool `yaml:"colour,omitempty"`
}

// Modes holds the permission bits applied to created entries, as octal
// strings ("0755"). Pointers distinguish "not set" from an explicit value.
type Modes struct {
	Dir  *string `yaml:"dir,omitempty"`
	File *string `yaml:"file,omitempty"`
}

// Default modes applied when not configured.
const (
	DefaultDirMode  = fs.FileMode(0755)
	DefaultFileMode = fs.FileMode(0644)
)

// Config contains configuration for pathfs.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Output Output `yaml:"output,omitempty"`
	Modes  Modes  `yaml:"modes,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	for key, v := range map[string]*string{"modes.dir": c.Modes.Dir, "modes.file": c.Modes.File} {
		if v == nil {
			continue
		}
		if _, err := parseMode(*v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
		}
	}
	return nil
}

// Colour returns whether coloured output is enabled (defaults to true).
func (c *Config) Colour() bool {
	if c.Output.Colour == nil {
		return true
	}
	return *c.Output.Colour
}

// DirMode returns the permission bits for created directories.
func (c *Config) DirMode() fs.FileMode {
	if c.Modes.Dir == nil {
		return DefaultDirMode
	}
	m, err := parseMode(*c.Modes.Dir)
	if err != nil {
		return DefaultDirMode
	}
	return m
}

// FileMode returns the permission bits for created files.
func (c *Config) FileMode() fs.FileMode {
	if c.Modes.File == nil {
		return DefaultFileMode
	}
	m, err := parseMode(*c.Modes.File)
	if err != nil {
		return DefaultFileMode
	}
	return m
}

// parseMode parses an octal permission string like "0755" or "755".
func parseMode(s string) (fs.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("must be an octal mode like 0755")
	}
	if n > 0777 {
		return 0, fmt.Errorf("must be at most 0777")
	}
	return fs.FileMode(n), nil
}

// LocalPath returns the path to the local (per-directory) config file.
func LocalPath() string {
	return filepath.Join(".pathfs", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.pathfs/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathfs", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
