package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/boltwire/exemplars/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyOutputRoot = "output_root"
	KeyLogLevel   = "log_level"
)

// DefaultOutputRoot is the documentation root, relative to the working directory.
var DefaultOutputRoot = filepath.Join("docs", "exemplars")

// Config is a layered view over defaults, the config file, env and flags.
type Config struct {
	v *viper.Viper
}

// Dir returns the config directory. EXEMPLARS_HOME overrides ~/.exemplars/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load reads the config file (if any) and environment.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyOutputRoot, DefaultOutputRoot)
	v.SetDefault(KeyLogLevel, "info")

	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return &Config{v: v}, nil
}

// BindFlags lets flags override file and env values. A flag named
// "output-root" binds to the output_root key.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{KeyOutputRoot, KeyLogLevel} {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// OutputRoot returns the configured documentation root as given, or
// DefaultOutputRoot when it is empty.
func (c *Config) OutputRoot() string {
	if root := c.v.GetString(KeyOutputRoot); root != "" {
		return root
	}
	return DefaultOutputRoot
}

// ResolveOutputRoot returns the documentation root as an absolute path,
// joining relative values onto cwd.
func (c *Config) ResolveOutputRoot(cwd string) string {
	root := c.OutputRoot()
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(cwd, root)
}

// LogLevel parses log_level; unknown values fall back to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.v.GetString(KeyLogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Set writes a key-value pair to the config file. Only values already in
// the file and the new key are persisted.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	fv := viper.New()
	fv.SetConfigFile(configFile)
	fv.SetConfigType(fileType)
	if err := fv.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	fv.Set(key, value)
	if err := fv.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
