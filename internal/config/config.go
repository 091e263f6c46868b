// Package config handles application configuration.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/go-errors/errors"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	// DataDir is the directory holding config.yaml
	DataDir string `yaml:"-"`

	// Path is the file the config was loaded from, if any
	Path string `yaml:"-"`

	// Shell is the program started in the pane
	Shell string `yaml:"shell"`

	// ShellArgs are passed to Shell
	ShellArgs []string `yaml:"shell_args"`

	// Rows and Cols fix the shell size. Zero fits the terminal.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Term and Lang are exported to the shell as TERM and LANG
	Term string `yaml:"term"`
	Lang string `yaml:"lang"`

	// Env holds extra environment variables for the shell
	Env map[string]string `yaml:"env"`

	// ReadBufferSize is the size of each read from the pty
	ReadBufferSize int `yaml:"read_buffer_size"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// Keys contains keybinding configuration
	Keys KeyBindings `yaml:"keys"`

	// Theme contains theme/appearance configuration
	Theme Theme `yaml:"theme"`
}

// KeyBindings holds all configurable keybindings.
type KeyBindings struct {
	// Escape leaves terminal mode
	Escape string `yaml:"escape"`
	// Quit exits from command mode
	Quit string `yaml:"quit"`
	// Resume returns to terminal mode
	Resume string `yaml:"resume"`
}

// Theme holds theme configuration.
type Theme struct {
	// Palette maps a terminal color name to the color it is displayed as
	Palette       map[string]string `yaml:"palette"`
	FrameTerminal string            `yaml:"frame_terminal"`
	FrameCommand  string            `yaml:"frame_command"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		DataDir:        defaultDataDir(),
		Shell:          getDefaultShell(),
		ShellArgs:      []string{"-i"},
		Term:           "linux",
		Lang:           "en_US.UTF-8",
		Env:            map[string]string{},
		ReadBufferSize: 4096,
		LogLevel:       "info",
		Keys:           DefaultKeyBindings(),
		Theme:          DefaultTheme(),
	}
}

// DefaultKeyBindings returns the default keybindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Escape: "ctrl+q",
		Quit:   "q",
		Resume: "i",
	}
}

// DefaultTheme returns the default theme configuration.
func DefaultTheme() Theme {
	return Theme{
		Palette:       map[string]string{},
		FrameTerminal: "green",
		FrameCommand:  "blue",
	}
}

// Load loads configuration from the config file, falling back to defaults.
func Load() (*Config, error) {
	return LoadFile(Default().ConfigFile())
}

// LoadFile loads configuration from path over the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = filepath.Dir(path)
	cfg.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file doesn't exist, use defaults
			return cfg, nil
		}
		return nil, errors.WrapPrefix(err, "read config", 0)
	}

	// Parse YAML into a temporary struct to merge with defaults
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, errors.WrapPrefix(err, "parse "+path, 0)
	}

	// Merge file config with defaults (file values override defaults)
	mergeConfig(cfg, &fileCfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks keybindings and theme colors.
func (c *Config) Validate() error {
	if err := ValidateKeys(&c.Keys); err != nil {
		return err
	}
	return ValidateTheme(&c.Theme)
}

// mergeConfig merges file configuration into the default configuration.
// Only non-zero values from file are applied.
func mergeConfig(dst, src *Config) {
	if src.Shell != "" {
		dst.Shell = src.Shell
	}
	if src.ShellArgs != nil {
		dst.ShellArgs = slices.Clone(src.ShellArgs)
	}
	if src.Rows != 0 {
		dst.Rows = src.Rows
	}
	if src.Cols != 0 {
		dst.Cols = src.Cols
	}
	if src.Term != "" {
		dst.Term = src.Term
	}
	if src.Lang != "" {
		dst.Lang = src.Lang
	}
	for name, value := range src.Env {
		dst.Env[name] = value
	}
	if src.ReadBufferSize != 0 {
		dst.ReadBufferSize = src.ReadBufferSize
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}

	mergeKeyBindings(&dst.Keys, &src.Keys)
	mergeTheme(&dst.Theme, &src.Theme)
}

// mergeKeyBindings merges keybindings from src into dst.
func mergeKeyBindings(dst, src *KeyBindings) {
	if src.Escape != "" {
		dst.Escape = src.Escape
	}
	if src.Quit != "" {
		dst.Quit = src.Quit
	}
	if src.Resume != "" {
		dst.Resume = src.Resume
	}
}

// mergeTheme merges theme configuration from src into dst.
func mergeTheme(dst, src *Theme) {
	for from, to := range src.Palette {
		dst.Palette[from] = to
	}
	if src.FrameTerminal != "" {
		dst.FrameTerminal = src.FrameTerminal
	}
	if src.FrameCommand != "" {
		dst.FrameCommand = src.FrameCommand
	}
}

// Environment returns the variables exported to the shell: TERM and LANG
// followed by Env, which wins on conflict.
func (c *Config) Environment() map[string]string {
	env := make(map[string]string, len(c.Env)+2)
	if c.Term != "" {
		env["TERM"] = c.Term
	}
	if c.Lang != "" {
		env["LANG"] = c.Lang
	}
	for name, value := range c.Env {
		env[name] = value
	}
	return env
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "shellpane")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shellpane"
	}
	return filepath.Join(home, ".config", "shellpane")
}

// getDefaultShell returns the user's default shell.
func getDefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}

// ConfigFile returns the path to the config file: the file it was loaded
// from, or config.yaml in DataDir.
func (c *Config) ConfigFile() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Join(c.DataDir, "config.yaml")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}
