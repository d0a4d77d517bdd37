package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App   AppConfig
	Store StoreConfig
	Log   LogConfig
	UX    UXConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// StoreConfig holds the remote commerce API settings
type StoreConfig struct {
	// BaseURL is the API base URL, up to and including the version segment
	BaseURL string
	// Path is the store's path segment under the base URL
	Path string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// UXConfig holds user-experience smoothing settings
type UXConfig struct {
	// CatalogSpinnerHold is the minimum page-busy display duration after a
	// successful catalog load
	CatalogSpinnerHold time.Duration
	// CartSpinnerHold is the minimum page-busy display duration after a
	// successful whole-cart action
	CartSpinnerHold time.Duration
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with STOREFRONT_ prefix (e.g. STOREFRONT_STORE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.storefront")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Store: StoreConfig{
			BaseURL:        v.GetString("store.base_url"),
			Path:           v.GetString("store.path"),
			TimeoutSeconds: v.GetInt("store.timeout_seconds"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		UX: UXConfig{
			CatalogSpinnerHold: v.GetDuration("ux.catalog_spinner_hold"),
			CartSpinnerHold:    v.GetDuration("ux.cart_spinner_hold"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Store.BaseURL == "" {
		cfg.Store.BaseURL = "https://vue3-course-api.hexschool.io/v2/api"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "jimmycai"
	}
	if cfg.Store.TimeoutSeconds == 0 {
		cfg.Store.TimeoutSeconds = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.UX.CatalogSpinnerHold == 0 {
		cfg.UX.CatalogSpinnerHold = 500 * time.Millisecond
	}
	if cfg.UX.CartSpinnerHold == 0 {
		cfg.UX.CartSpinnerHold = 300 * time.Millisecond
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	u, err := url.Parse(c.Store.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("store.base_url must be an absolute URL, got %q", c.Store.BaseURL)
	}
	if strings.ContainsAny(c.Store.Path, "/?#") {
		return fmt.Errorf("store.path must be a single path segment, got %q", c.Store.Path)
	}
	if c.Store.TimeoutSeconds < 0 {
		return fmt.Errorf("store.timeout_seconds cannot be negative")
	}
	if c.UX.CatalogSpinnerHold < 0 || c.UX.CartSpinnerHold < 0 {
		return fmt.Errorf("ux spinner holds cannot be negative")
	}
	return nil
}
