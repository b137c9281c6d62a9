// Package config handles the configuration directory, backend selection and settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the YAML configuration filename.
	ConfigFile = "config.yaml"

	// EnvFile is an optional dotenv file loaded before the environment is read.
	EnvFile = ".env"

	// DataDirName is the default directory for the file backend, relative to Dir.
	DataDirName = "data"

	// SQLiteFile is the default database filename for the sqlite backends.
	SQLiteFile = "todo.db"

	// EnvPrefix prefixes environment overrides (TODO_BACKEND, TODO_DSN, TODO_DATA_DIR).
	EnvPrefix = "TODO"

	// DefaultBackend is the storage backend used when none is configured.
	DefaultBackend = "file"
)

// Version is the application version. Set at build time with
// -ldflags "-X todo/internal/config.Version=...".
var Version = "0.1.0"

// Settings are the user preferences shown on the settings screen.
type Settings struct {
	Notifications bool `mapstructure:"notifications" yaml:"notifications"`
	DarkMode      bool `mapstructure:"dark_mode" yaml:"dark_mode"`
	SoundEffects  bool `mapstructure:"sound_effects" yaml:"sound_effects"`
}

// DefaultSettings returns the settings used when config.yaml has none.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		DarkMode:      false,
		SoundEffects:  true,
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Backend names the storage backend (file, memory, sqlite, sqlite3, mysql).
	Backend string

	// DSN is the data source for SQL backends. Empty means the default sqlite file.
	DSN string

	// DataDir overrides the file backend directory.
	DataDir string

	// SeedExamples stores a few example tasks when no task list exists yet.
	SeedExamples bool

	// Settings are the user preferences.
	Settings Settings
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	Backend      string   `mapstructure:"backend"`
	DSN          string   `mapstructure:"dsn"`
	DataDir      string   `mapstructure:"data_dir"`
	SeedExamples bool     `mapstructure:"seed_examples"`
	Settings     Settings `mapstructure:"settings"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Backend and settings start at their defaults; call Load to read the files.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		Backend:  DefaultBackend,
		Settings: DefaultSettings(),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load merges, in increasing precedence, defaults, config.yaml and the
// environment (after loading .env from the config directory).
// Missing files are not an error.
func (c *Config) Load() error {
	if err := godotenv.Load(c.EnvPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("invalid %s: %w", EnvFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"backend", "dsn", "data_dir"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	defaults := DefaultSettings()
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("settings.notifications", defaults.Notifications)
	v.SetDefault("settings.dark_mode", defaults.DarkMode)
	v.SetDefault("settings.sound_effects", defaults.SoundEffects)

	if c.HasConfigFile() {
		v.SetConfigFile(c.ConfigPath())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	c.Backend = fc.Backend
	c.DSN = fc.DSN
	c.DataDir = fc.DataDir
	c.SeedExamples = fc.SeedExamples
	c.Settings = fc.Settings
	return nil
}

// SaveSettings writes Settings to config.yaml. Everything else in the file,
// including unknown keys and comments, is left as it was.
func (c *Config) SaveSettings() error {
	var doc yaml.Node
	data, err := os.ReadFile(c.ConfigPath())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
	}
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("invalid %s: top level is not a mapping", ConfigFile)
	}

	var settings yaml.Node
	if err := settings.Encode(c.Settings); err != nil {
		return err
	}
	setKey(root, "settings", &settings)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	if err := c.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), out, 0600)
}

// setKey replaces the value of key in mapping m, appending the pair if missing.
func setKey(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnvPath returns the path to the optional .env file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// DataPath returns the directory used by the file backend.
func (c *Config) DataPath() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(c.Dir, DataDirName)
}

// SQLitePath returns the sqlite data source: the DSN if set, else a file in Dir.
func (c *Config) SQLitePath() string {
	if c.DSN != "" {
		return c.DSN
	}
	return filepath.Join(c.Dir, SQLiteFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasConfigFile checks if config.yaml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}
