package commerce

import "errors"

// Config holds configuration for the remote commerce API.
type Config struct {
	// BaseURL is the API base URL, up to and including the version segment
	BaseURL string
	// StorePath is the store's path segment under the base URL
	StorePath string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// ProductionAPIURL is the fixed production API endpoint.
const ProductionAPIURL = "https://vue3-course-api.hexschool.io/v2/api"

// Errors for commerce configuration
var (
	ErrConfigMissingStorePath = errors.New("commerce: store path is required")
)

// NewConfig creates a new commerce configuration with defaults.
func NewConfig(storePath string) *Config {
	return &Config{
		BaseURL:        ProductionAPIURL,
		StorePath:      storePath,
		TimeoutSeconds: 30,
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return ErrConfigMissingStorePath
	}
	if c.BaseURL == "" {
		c.BaseURL = ProductionAPIURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
