package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"picren/internal/errors"

	"gopkg.in/yaml.v3"
)

// Collation names accepted by sort.collation.
const (
	CollationName    = "name"
	CollationNatural = "natural"
)

// DefaultImagePatterns match the image formats the viewers can decode.
var DefaultImagePatterns = []string{"*.{jpg,jpeg,png,gif,bmp,tiff,tif,webp}"}

// Config represents the application configuration structure.
type Config struct {
	Directories struct {
		Default string `yaml:"default"` // Directory opened when none is given
	} `yaml:"directories"`
	Images struct {
		Patterns      []string `yaml:"patterns"`       // Glob patterns selecting images, case-insensitive
		DetectContent bool     `yaml:"detect_content"` // Also include files whose content sniffs as image/*
		ShowHidden    bool     `yaml:"show_hidden"`    // Include dot files
	} `yaml:"images"`
	Sort struct {
		Collation string `yaml:"collation"` // name or natural
	} `yaml:"sort"`
	Rename struct {
		Accelerator    string `yaml:"accelerator"`     // Key bound to the rename action
		ForbiddenChars string `yaml:"forbidden_chars"` // Characters rejected while typing a name
	} `yaml:"rename"`
	Watch struct {
		Enabled bool `yaml:"enabled"` // Refresh the image list on directory changes
	} `yaml:"watch"`
	Theme struct {
		Name     string `yaml:"name"`
		Primary  string `yaml:"primary"`
		Success  string `yaml:"success"`
		Warning  string `yaml:"warning"`
		Error    string `yaml:"error"`
		Info     string `yaml:"info"`
		Emphasis string `yaml:"emphasis"`
		Border   string `yaml:"border"`
	} `yaml:"theme"`
	Debug bool `yaml:"debug"`
}

// DefaultPath returns ~/.config/picren/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "picren", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	// Booleans defaulting to true need a pointer to tell "unset" from false.
	var toggles struct {
		Watch struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"watch"`
	}
	if err := yaml.Unmarshal(data, &toggles); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}
	if len(tempCfg.Images.Patterns) > 0 {
		cfg.Images.Patterns = tempCfg.Images.Patterns
	}
	cfg.Images.DetectContent = tempCfg.Images.DetectContent
	cfg.Images.ShowHidden = tempCfg.Images.ShowHidden

	if tempCfg.Sort.Collation != "" {
		cfg.Sort.Collation = tempCfg.Sort.Collation
	}
	if tempCfg.Rename.Accelerator != "" {
		cfg.Rename.Accelerator = strings.ToLower(tempCfg.Rename.Accelerator)
	}
	if tempCfg.Rename.ForbiddenChars != "" {
		cfg.Rename.ForbiddenChars = tempCfg.Rename.ForbiddenChars
	}
	if toggles.Watch.Enabled != nil {
		cfg.Watch.Enabled = *toggles.Watch.Enabled
	}
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	// Single colors override the named theme.
	overrideColor(&cfg.Theme.Primary, tempCfg.Theme.Primary)
	overrideColor(&cfg.Theme.Success, tempCfg.Theme.Success)
	overrideColor(&cfg.Theme.Warning, tempCfg.Theme.Warning)
	overrideColor(&cfg.Theme.Error, tempCfg.Theme.Error)
	overrideColor(&cfg.Theme.Info, tempCfg.Theme.Info)
	overrideColor(&cfg.Theme.Emphasis, tempCfg.Theme.Emphasis)
	overrideColor(&cfg.Theme.Border, tempCfg.Theme.Border)
	cfg.Debug = tempCfg.Debug

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func overrideColor(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Directories.Default = "."
	cfg.Images.Patterns = append([]string(nil), DefaultImagePatterns...)
	cfg.Sort.Collation = CollationName
	cfg.Rename.Accelerator = "f2"
	cfg.Rename.ForbiddenChars = "/"
	cfg.Watch.Enabled = true
	cfg.ApplyTheme("default")
	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	switch c.Sort.Collation {
	case CollationName, CollationNatural:
	default:
		return errors.NewConfigError("unknown collation", c.Sort.Collation, errors.InvalidConfig, nil)
	}

	if len(c.Images.Patterns) == 0 {
		return errors.NewConfigError("at least one image pattern is required", "images.patterns", errors.InvalidConfig, nil)
	}
	for i, p := range c.Images.Patterns {
		if strings.TrimSpace(p) == "" {
			return errors.NewConfigError(fmt.Sprintf("pattern %d is empty", i), "images.patterns", errors.InvalidConfig, nil)
		}
	}

	if c.Rename.Accelerator == "" {
		return errors.NewConfigError("accelerator is required", "rename.accelerator", errors.InvalidConfig, nil)
	}
	// The path separator can never be part of a file name.
	if !strings.ContainsRune(c.Rename.ForbiddenChars, '/') {
		return errors.NewConfigError("forbidden characters must include '/'", "rename.forbidden_chars", errors.InvalidConfig, nil)
	}

	if !slices.Contains(ListThemes(), c.Theme.Name) {
		return errors.NewConfigError("unknown theme", c.Theme.Name, errors.InvalidConfig, nil)
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105",
			"success":  "78",
			"warning":  "214",
			"error":    "160",
			"info":     "33",
			"emphasis": "147",
			"border":   "105",
		},
		"light": {
			"primary":  "135",
			"success":  "150",
			"warning":  "222",
			"error":    "210",
			"info":     "117",
			"emphasis": "219",
			"border":   "135",
		},
		"monochrome": {
			"primary":  "245",
			"success":  "252",
			"warning":  "241",
			"error":    "232",
			"info":     "248",
			"emphasis": "255",
			"border":   "245",
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme colors from the named theme.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ThemeColors returns the theme in use as a color table keyed like GetTheme.
func (c *Config) ThemeColors() map[string]string {
	return map[string]string{
		"primary":  c.Theme.Primary,
		"success":  c.Theme.Success,
		"warning":  c.Theme.Warning,
		"error":    c.Theme.Error,
		"info":     c.Theme.Info,
		"emphasis": c.Theme.Emphasis,
		"border":   c.Theme.Border,
	}
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
