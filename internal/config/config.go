package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// DefaultAPIURL is the draw service used when nothing else is configured.
// Override at build time with:
//
//	-ldflags "-X github.com/arcanaland/shuffledraw/internal/config.DefaultAPIURL=https://..."
var DefaultAPIURL = "http://localhost:3000"

// APIURLEnv names the environment variable holding the draw service URL
const APIURLEnv = "SHUFFLEDRAW_API_URL"

// Config represents the application configuration
type Config struct {
	APIURL         string `toml:"api_url"`
	DeckSize       string `toml:"deck_size"`
	DeckReverse    string `toml:"deck_reverse"`
	NumCards       int    `toml:"num_cards"`
	RequestTimeout string `toml:"request_timeout"`
}

// Keys lists the settings accepted by Set
var Keys = []string{"api_url", "deck_size", "deck_reverse", "num_cards", "request_timeout"}

// Default returns the configuration written by a fresh init
func Default() *Config {
	req := draw.DefaultRequest()
	return &Config{
		DeckSize:    string(req.DeckSize),
		DeckReverse: string(req.DeckReverse),
		NumCards:    req.NumCards,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or default path
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the directory for rendered card art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "shuffledraw")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "shuffledraw", "config.toml")
}

// GetLogFilePath returns where the TUI writes its log
func GetLogFilePath() string {
	return filepath.Join(GetXDGStateHome(), "shuffledraw", "shuffledraw.log")
}

// LoadConfig reads the config file. A missing file yields the defaults
// without touching the disk.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	config := Default()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// Init writes the default config file unless one already exists
func Init() (*Config, error) {
	if _, err := os.Stat(GetConfigFilePath()); err == nil {
		return LoadConfig()
	}
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config file, creating its directory if needed
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

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Set validates and stores a single setting
func Set(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "api_url":
		config.APIURL = value
	case "deck_size":
		size, err := draw.ParseDeckSize(value)
		if err != nil {
			return err
		}
		config.DeckSize = string(size)
	case "deck_reverse":
		reverse, err := draw.ParseDeckReverse(value)
		if err != nil {
			return err
		}
		config.DeckReverse = string(reverse)
	case "num_cards":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("num_cards must be a positive integer, got %q", value)
		}
		config.NumCards = n
	case "request_timeout":
		if value != "" {
			if _, err := time.ParseDuration(value); err != nil {
				return fmt.Errorf("request_timeout must be a duration such as 30s: %w", err)
			}
		}
		config.RequestTimeout = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return Save(config)
}

// ResolveAPIURL picks the draw service URL: flag, then environment, then
// config file, then the build-time default
func (c *Config) ResolveAPIURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(APIURLEnv); env != "" {
		return env
	}
	if c != nil && c.APIURL != "" {
		return c.APIURL
	}
	return DefaultAPIURL
}

// Timeout parses request_timeout; empty means no client-side timeout
func (c *Config) Timeout() (time.Duration, error) {
	if c == nil || c.RequestTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid request_timeout %q: %w", c.RequestTimeout, err)
	}
	return d, nil
}

// DefaultRequest returns the form defaults, falling back to the built-in
// ones for anything missing or unrecognised
func (c *Config) DefaultRequest() draw.Request {
	req := draw.DefaultRequest()
	if c == nil {
		return req
	}
	if size, err := draw.ParseDeckSize(c.DeckSize); err == nil {
		req.DeckSize = size
	}
	if reverse, err := draw.ParseDeckReverse(c.DeckReverse); err == nil {
		req.DeckReverse = reverse
	}
	if c.NumCards >= 1 {
		req.NumCards = c.NumCards
	}
	return req
}
