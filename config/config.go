// ABOUTME: Configuration management for gesture, animation, and storage settings
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable mentordeck settings
type Config struct {
	// Gesture handling
	SwipeThreshold int `toml:"swipe_threshold"` // minimum drag distance in cells before a swipe registers

	// Transition animation
	TransitionMs int  `toml:"transition_ms"` // duration of one face or deck transition
	Animate      bool `toml:"animate"`       // false applies transitions instantly

	// Storage
	DatabasePath string `toml:"database_path"` // empty means the default under the user data dir

	// Profile face
	RecentMatches int `toml:"recent_matches"` // how many matches the profile face lists
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/mentordeck/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./mentordeck.toml"); err == nil {
		return "./mentordeck.toml"
	}

	// Then try ~/.config/mentordeck/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./mentordeck.toml"
	}

	return filepath.Join(home, ".config", "mentordeck", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config.sanitized(), nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default mentordeck configuration
func DefaultConfig() Config {
	return Config{
		SwipeThreshold: 3,
		TransitionMs:   240,
		Animate:        true,
		DatabasePath:   "",
		RecentMatches:  5,
	}
}

// sanitized clamps nonsense values back to usable ones so a hand-edited
// config can't freeze gestures or the animation
func (c Config) sanitized() Config {
	if c.SwipeThreshold < 1 {
		c.SwipeThreshold = 1
	}
	if c.TransitionMs < 0 {
		c.TransitionMs = 0
	}
	if c.RecentMatches < 0 {
		c.RecentMatches = 0
	}
	return c
}
