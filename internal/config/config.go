package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at startup. They take precedence over the
// config file.
const (
	EnvPath       = "TODO_PATH"
	EnvBackupDir  = "TODO_BAK_DIR"
	EnvNoBackup   = "TODO_NOBACKUP"
	EnvDebug      = "TODO_DEBUG"
	EnvConfigFile = "TODO_CONFIG"
)

const (
	fileName       = "config.yaml"
	legacyTodoFile = "TODO"
	todoFile       = ".todo"
	backupFile     = "todo.bak"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Path       string `yaml:"path,omitempty"`
	BackupPath string `yaml:"backup_path,omitempty"`
	NoBackup   bool   `yaml:"no_backup,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FilePath returns the config file location: $TODO_CONFIG, or config.yaml
// under the user config directory.
func FilePath(lookup LookupFunc) string {
	if p, ok := lookup(EnvConfigFile); ok && p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".config", "todo", fileName)
	}
	return filepath.Join(dir, "todo", fileName)
}

// Load reads the config file at path. A missing file is not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Keys lists the settings a config file may hold, in display order.
var Keys = []string{"path", "backup_path", "no_backup", "debug"}

// Set assigns value to the setting named key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "path":
		c.Path = value
	case "backup_path":
		c.BackupPath = value
	case "no_backup", "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, not %q", key, value)
		}
		if key == "no_backup" {
			c.NoBackup = b
		} else {
			c.Debug = b
		}
	default:
		return fmt.Errorf("unknown setting %q (want one of %v)", key, Keys)
	}
	return nil
}

// Resolve merges file settings with the environment and fills in defaults.
// The store path defaults to <home>/TODO when that legacy file exists, and to
// <home>/.todo otherwise.
func Resolve(file *Config, lookup LookupFunc, home string) Config {
	var cfg Config
	if file != nil {
		cfg = *file
	}

	if p, ok := lookup(EnvPath); ok && p != "" {
		cfg.Path = p
	}
	if cfg.Path == "" {
		legacy := filepath.Join(home, legacyTodoFile)
		if _, err := os.Stat(legacy); err == nil {
			cfg.Path = legacy
		} else {
			cfg.Path = filepath.Join(home, todoFile)
		}
	}

	if p, ok := lookup(EnvBackupDir); ok && p != "" {
		cfg.BackupPath = p
	}
	if cfg.BackupPath == "" {
		cfg.BackupPath = filepath.Join(os.TempDir(), backupFile)
	}

	if _, ok := lookup(EnvNoBackup); ok {
		cfg.NoBackup = true
	}
	if _, ok := lookup(EnvDebug); ok {
		cfg.Debug = true
	}
	return cfg
}

// FromEnvironment loads the config file and resolves it against the process
// environment.
func FromEnvironment() (Config, error) {
	file, err := Load(FilePath(os.LookupEnv))
	if err != nil {
		return Config{}, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Resolve(file, os.LookupEnv, home), nil
}
