package woocommerce

import (
	"errors"
	"strings"
)

// Config holds configuration for the WooCommerce REST API connection
type Config struct {
	// BaseURL is the WordPress site root, without the API prefix
	BaseURL string
	// ConsumerKey is the REST API consumer key
	ConsumerKey string
	// ConsumerSecret is the REST API consumer secret
	ConsumerSecret string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// PageSize is the number of items requested per page
	PageSize int
	// RateLimitRPS caps outgoing requests per second
	RateLimitRPS float64
	// RateLimitBurst is the rate limiter burst size
	RateLimitBurst int
}

// apiPrefix is the WooCommerce REST API v3 mount point
const apiPrefix = "/wp-json/wc/v3/"

// Errors for WooCommerce configuration
var (
	ErrConfigMissingBaseURL        = errors.New("woocommerce: base url is required")
	ErrConfigMissingConsumerKey    = errors.New("woocommerce: consumer key is required")
	ErrConfigMissingConsumerSecret = errors.New("woocommerce: consumer secret is required")
	ErrConfigInvalidPageSize       = errors.New("woocommerce: page size must be between 1 and 100")
)

// NewConfig creates a new configuration with defaults
func NewConfig(baseURL, consumerKey, consumerSecret string) *Config {
	return &Config{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		TimeoutSeconds: 30,
		PageSize:       50,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
	}
}

// Validate checks that all required fields are set
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrConfigMissingBaseURL
	}
	if strings.TrimSpace(c.ConsumerKey) == "" {
		return ErrConfigMissingConsumerKey
	}
	if strings.TrimSpace(c.ConsumerSecret) == "" {
		return ErrConfigMissingConsumerSecret
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return ErrConfigInvalidPageSize
	}
	return nil
}
