package client

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/mapstructure"
)

// Config contains connection and authentication settings for an Overseer
// instance.
//
// Example configuration (YAML):
//
//	url: https://overseer.example.com
//	username: apiuser
//	password: ${OVERSEER_PASSWORD}
//	timeout: 30s
//	tls_verify: true
type Config struct {
	// URL is the base URL of the Overseer instance, without the /rest suffix.
	// Example: "https://overseer.example.com"
	URL string `yaml:"url" mapstructure:"url"`

	// Username is the API account name.
	Username string `yaml:"username" mapstructure:"username"`

	// Password is the API account password. Kept out of any serialized form.
	Password string `yaml:"password" mapstructure:"password"`

	// TLSVerify controls TLS certificate verification. Disable only for
	// development against self-signed certificates.
	TLSVerify *bool `yaml:"tls_verify,omitempty" mapstructure:"tls_verify"`

	// Timeout for each API request. Default: 30 seconds.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`

	// MaxRetries for requests that fail with a retryable status. Default: 3.
	MaxRetries int `yaml:"max_retries,omitempty" mapstructure:"max_retries"`

	// RetryDelay is the initial backoff interval between retries.
	// Default: 1 second.
	RetryDelay time.Duration `yaml:"retry_delay,omitempty" mapstructure:"retry_delay"`

	// Logger receives structured request/response logs. Defaults to a null
	// logger.
	Logger hclog.Logger `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.URL, validation.Required),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	); err != nil {
		return err
	}

	parsed, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url must use http or https scheme, got: %s", parsed.Scheme)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay)
	}

	return nil
}

// FromMap overlays settings from a generic map, as produced by config files
// or flag parsing. Input is weakly typed so string forms of durations,
// booleans, and numbers are accepted.
func (c *Config) FromMap(settings map[string]interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(settings)
}

// NewHTTPClient creates the HTTP client used for all requests.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
