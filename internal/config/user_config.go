package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"calcit.dev/calcit/internal/errors"
)

// Configuration keys accepted by Get and Set
const (
	KeyAccent    = "accent"
	KeyAltScreen = "alt-screen"
)

// Keys lists every configuration key
var Keys = []string{KeyAccent, KeyAltScreen}

const (
	defaultAccent    = "205"
	defaultAltScreen = true
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// UserConfig represents the user preferences file
type UserConfig struct {
	Accent    *string `json:"accent,omitempty"`
	AltScreen *bool   `json:"altScreen,omitempty"`

	path string
}

// LoadUserConfig reads the user preferences at path.
// A missing file yields the defaults.
func LoadUserConfig(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &UserConfig{path: path}, nil
		}
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	cfg := &UserConfig{path: path}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}
	return cfg, nil
}

// Path returns the file the config is saved to
func (c *UserConfig) Path() string {
	return c.path
}

// Save writes the config to its file, creating the directory if needed
func (c *UserConfig) Save() error {
	if c.path == "" {
		return fmt.Errorf("user config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(c.path, configJSON, 0600)
}

// AccentColor returns the keypad accent colour, or the default pink
func (c *UserConfig) AccentColor() string {
	if c.Accent != nil && *c.Accent != "" {
		return *c.Accent
	}
	return defaultAccent
}

// SetAccent updates the accent colour.
// The value must be an ANSI 256 colour index or a #rrggbb hex colour.
func (c *UserConfig) SetAccent(color string) error {
	if err := ValidateAccent(color); err != nil {
		return err
	}
	c.Accent = &color
	return nil
}

// ValidateAccent checks an accent colour value
func ValidateAccent(color string) error {
	if hexColorPattern.MatchString(color) {
		return nil
	}
	if n, err := strconv.Atoi(color); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return errors.NewConfigValueError(KeyAccent, color, "must be a colour index 0-255 or #rrggbb")
}

// UseAltScreen returns whether the keypad takes over the full terminal, true by default
func (c *UserConfig) UseAltScreen() bool {
	if c.AltScreen != nil {
		return *c.AltScreen
	}
	return defaultAltScreen
}

// SetAltScreen updates the alternate screen preference
func (c *UserConfig) SetAltScreen(enabled bool) {
	c.AltScreen = &enabled
}

// Get returns the effective value of key as text
func (c *UserConfig) Get(key string) (string, error) {
	switch key {
	case KeyAccent:
		return c.AccentColor(), nil
	case KeyAltScreen:
		return strconv.FormatBool(c.UseAltScreen()), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set parses and stores value under key without saving
func (c *UserConfig) Set(key, value string) error {
	switch key {
	case KeyAccent:
		return c.SetAccent(value)
	case KeyAltScreen:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return errors.NewConfigValueError(KeyAltScreen, value, "must be 'true' or 'false'")
		}
		c.SetAltScreen(enabled)
		return nil
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
}
