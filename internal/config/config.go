// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/transform/markup"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`
	Editor    EditorConfig    `toml:"editor"`
	Transform TransformConfig `toml:"transform"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
	LineNumbers     bool   `toml:"line_numbers"`
	Theme           string `toml:"theme"`
	ThemesDir       string `toml:"themes_dir"` // empty means <config dir>/themes
}

// TransformConfig selects the transformers chained behind every edit.
type TransformConfig struct {
	Markup bool `toml:"markup"`
	Tokens bool `toml:"tokens"`
	Syntax bool `toml:"syntax"`

	// TokenFile replaces the built-in token table. The sentinel is read
	// from the file itself.
	TokenFile string `toml:"token_file"`

	// Language forces the syntax language instead of detecting it from
	// the file extension.
	Language string `toml:"language"`

	// CheckContracts wraps the chain with postcondition checks.
	CheckContracts bool `toml:"check_contracts"`

	// MarkupRules replace the built-in delimiters when non-empty.
	MarkupRules []markup.Rule `toml:"markup_rule"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Transform: TransformConfig{
			Markup:         true,
			Tokens:         true,
			Syntax:         true,
			CheckContracts: true,
		},
	}
}

// DefaultDir returns the per-user configuration directory, or "" when the
// platform has none.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// loadFromFile decodes filePath over cfg, so keys missing from the file keep
// their current values. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	logger.Debugf("Loaded configuration from: %s", filePath)
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// ThemesDir resolves the directory scanned for theme files.
func (c *Config) ThemesDir() string {
	if c.Editor.ThemesDir != "" {
		return c.Editor.ThemesDir
	}
	if dir := DefaultDir(); dir != "" {
		return filepath.Join(dir, ThemesDirName)
	}
	return ""
}

// Load builds a configuration from defaults, the file at configFilePath (or
// the default location when empty) and the flags that were set. The
// returned config is usable even when err is non-nil.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		if dir := DefaultDir(); dir != "" {
			path = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	var err error
	if path != "" {
		if err = loadFromFile(path, cfg); err != nil {
			// Fall back to pure defaults rather than a half-decoded file.
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the process configuration once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
