package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
	"github.com/pelletier/go-toml/v2"

	"coursecat/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	API     APISettings    `toml:"api"`
	Search  SearchSettings `toml:"search"`
	Site    SiteSettings   `toml:"site"`
	UI      UISettings     `toml:"ui"`
	Log     LogSettings    `toml:"log"`
}

// APISettings points the client at the remote catalog
type APISettings struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// SearchSettings tunes the search input
type SearchSettings struct {
	Debounce  Duration `toml:"debounce"`
	Immediate bool     `toml:"immediate"` // also query on every keystroke, ahead of the debounce window
}

// SiteSettings feeds the presentation defaults (titles, meta tags)
type SiteSettings struct {
	Name        string `toml:"name"`
	URL         string `toml:"url"`
	Description string `toml:"description"`
	Image       string `toml:"image"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Locale string `toml:"locale"`
}

// LogSettings controls where and how much the client logs
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Duration is a time.Duration stored as a Go duration string ("300ms", "10s")
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.Publisher
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "coursecat", "config.toml")
}

// NewConfigService creates a config service bound to path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that announces loads and saves
func NewConfigServiceWithBus(path string, bus eventbus.Publisher) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the bound file, falling back to defaults when it does not exist.
// Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	ApplyEnv(cfg)

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save writes the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path; missing keys keep their defaults
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path, replacing the file atomically
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: "http://localhost:8080/api",
			Timeout: Duration(10 * time.Second),
		},
		Search: SearchSettings{
			Debounce:  Duration(300 * time.Millisecond),
			Immediate: true,
		},
		Site: SiteSettings{
			Name:        "TechNova Academy",
			URL:         "https://technova-academy.com",
			Description: "Learn technology with the best online courses. Development, programming, design and more.",
			Image:       "/assets/logo-technova.svg",
		},
		UI: UISettings{
			Locale: "en",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "json",
			File:   "coursecat.log",
		},
	}
}

// ApplyEnv loads .env when present and applies COURSECAT_* overrides
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load() // .env is optional

	cfg.API.BaseURL = getEnv("COURSECAT_API_URL", cfg.API.BaseURL)
	cfg.API.Timeout = getEnvDuration("COURSECAT_API_TIMEOUT", cfg.API.Timeout)
	cfg.Search.Debounce = getEnvDuration("COURSECAT_SEARCH_DEBOUNCE", cfg.Search.Debounce)
	cfg.Search.Immediate = getEnvBool("COURSECAT_SEARCH_IMMEDIATE", cfg.Search.Immediate)
	cfg.UI.Locale = getEnv("COURSECAT_LOCALE", cfg.UI.Locale)
	cfg.Log.Level = getEnv("COURSECAT_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("COURSECAT_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = getEnv("COURSECAT_LOG_FILE", cfg.Log.File)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback Duration) Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return Duration(d)
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
