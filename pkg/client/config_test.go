package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing url", mutate: func(c *Config) { c.URL = "" }, wantErr: true},
		{name: "missing username", mutate: func(c *Config) { c.Username = "" }, wantErr: true},
		{name: "missing password", mutate: func(c *Config) { c.Password = "" }, wantErr: true},
		{name: "bad scheme", mutate: func(c *Config) { c.URL = "ftp://example.com" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "negative retries", mutate: func(c *Config) { c.MaxRetries = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("https://overseer.example.com")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_FromMap(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.FromMap(map[string]interface{}{
		"url":         "https://overseer.example.com",
		"username":    "apiuser",
		"password":    "secret",
		"timeout":     "45s",
		"max_retries": "5",
		"tls_verify":  "false",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://overseer.example.com", cfg.URL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.MaxRetries)
	require.NotNil(t, cfg.TLSVerify)
	assert.False(t, *cfg.TLSVerify)
}

func TestNew_AppliesDefaults(t *testing.T) {
	c, err := New(&Config{
		URL:      "https://overseer.example.com",
		Username: "apiuser",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, c.cfg.Timeout)
	assert.Equal(t, 3, c.cfg.MaxRetries)
	require.NotNil(t, c.cfg.TLSVerify)
	assert.True(t, *c.cfg.TLSVerify)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(&Config{URL: "https://overseer.example.com"})
	assert.Error(t, err)

	_, err = New(nil)
	assert.Error(t, err)
}
