package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "tada"
	DefaultConfigFileName = "config.toml"
	DefaultCharLimit      = 256
	DefaultLogLevel       = "info"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Edit    string `toml:"edit"`
	Confirm string `toml:"confirm"`
	Save    string `toml:"save"`
	Cancel  string `toml:"cancel"`
	Focus   string `toml:"focus"`
}

type Config struct {
	CharLimit int    `toml:"char_limit"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	Keys      Keymap `toml:"keys"`
}

// ResolveConfigPath returns the per-user config location, falling back to
// the working directory when no user config dir is available.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders cfg the way it is written to disk.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

func write(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		CharLimit: DefaultCharLimit,
		LogLevel:  DefaultLogLevel,
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Edit:    "e",
			Confirm: "enter",
			Save:    "ctrl+s",
			Cancel:  "esc",
			Focus:   "tab",
		},
	}
}

// fillDefaults restores bindings a user blanked out in the file.
func (c *Config) fillDefaults() {
	def := Default()
	if c.CharLimit <= 0 {
		c.CharLimit = def.CharLimit
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	k, d := &c.Keys, def.Keys
	orDefault(&k.Quit, d.Quit)
	orDefault(&k.Add, d.Add)
	orDefault(&k.Up, d.Up)
	orDefault(&k.Down, d.Down)
	orDefault(&k.Toggle, d.Toggle)
	orDefault(&k.Delete, d.Delete)
	orDefault(&k.Edit, d.Edit)
	orDefault(&k.Confirm, d.Confirm)
	orDefault(&k.Save, d.Save)
	orDefault(&k.Cancel, d.Cancel)
	orDefault(&k.Focus, d.Focus)
}

func orDefault(v *string, d string) {
	if *v == "" {
		*v = d
	}
}

// Validate rejects bindings that would make the editor keys ambiguous.
// List-mode keys may reuse editor keys since the two never share focus.
func (c Config) Validate() error {
	editor := []struct {
		name, key string
	}{
		{"confirm", c.Keys.Confirm},
		{"save", c.Keys.Save},
		{"cancel", c.Keys.Cancel},
		{"focus", c.Keys.Focus},
	}
	seen := map[string]string{}
	for _, b := range editor {
		if other, ok := seen[b.key]; ok {
			return fmt.Errorf("keys.%s and keys.%s are both bound to %q", other, b.name, b.key)
		}
		seen[b.key] = b.name
	}
	return nil
}
