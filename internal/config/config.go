package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck   string  `toml:"default_deck"`
	Style         string  `toml:"style"`
	DragThreshold float64 `toml:"drag_threshold"`
	LogLevel      string  `toml:"log_level"`
	Window        Window  `toml:"window"`
}

// Window is the initial canvas size in pixels.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		DefaultDeck:   "rider-waite-smith",
		Style:         "plain",
		DragThreshold: 6,
		LogLevel:      "info",
		Window:        Window{Width: 960, Height: 640},
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tarot", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtable", "config.toml")
}

// GetCacheDir returns the cardtable cache directory
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardtable")
}

// LoadEnv reads a .env file from the working directory when one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// LoadConfig loads the config file, creating it with defaults on first
// use, then applies CARDTABLE_* environment overrides.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config = Default()
		if err := Save(&config); err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, &config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := applyEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("CARDTABLE_DECK"); v != "" {
		c.DefaultDeck = v
	}
	if v := os.Getenv("CARDTABLE_STYLE"); v != "" {
		c.Style = v
	}
	if v := os.Getenv("CARDTABLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CARDTABLE_DRAG_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid CARDTABLE_DRAG_THRESHOLD %q", v)
		}
		c.DragThreshold = f
	}
	return nil
}

// Save writes the config file, creating its directory.
func Save(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultDeck = deckName
	return Save(config)
}
