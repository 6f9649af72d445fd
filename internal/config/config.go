// Package config loads process configuration for the simulator and
// inspector binaries from the environment, following the
// envconfig.Process + validate() pattern used throughout the retrieval
// pack's services.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything cmd/pdcp-sim and cmd/pdcp-inspector need to
// start: where to listen, where Valkey and the remote crypto backend
// live, and the default bearer parameters used when the simulator brings
// up a bearer with no explicit configuration.
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`

	ValkeyHost string `envconfig:"VALKEY_HOST" default:"localhost"`
	ValkeyPort string `envconfig:"VALKEY_PORT" default:"6379"`
	ValkeyPass string `envconfig:"VALKEY_PASS"`

	CryptoBackendURL string `envconfig:"CRYPTO_BACKEND_URL"`
	UseRemoteCrypto  bool   `envconfig:"USE_REMOTE_CRYPTO" default:"false"`

	DefaultSNLen       int           `envconfig:"DEFAULT_SN_LEN" default:"12"`
	DefaultDiscardTime time.Duration `envconfig:"DEFAULT_DISCARD_TIMER" default:"10s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads Config from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyAddr returns the Valkey connection address in "host:port" form.
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	switch c.DefaultSNLen {
	case 5, 7, 12, 18:
	default:
		return fmt.Errorf("DEFAULT_SN_LEN must be one of 5, 7, 12, 18, got %d", c.DefaultSNLen)
	}
	if c.UseRemoteCrypto && strings.TrimSpace(c.CryptoBackendURL) == "" {
		return fmt.Errorf("CRYPTO_BACKEND_URL must be set when USE_REMOTE_CRYPTO is true")
	}
	if c.UseRemoteCrypto && !strings.HasPrefix(c.CryptoBackendURL, "http://") && !strings.HasPrefix(c.CryptoBackendURL, "https://") {
		return fmt.Errorf("CRYPTO_BACKEND_URL must start with http:// or https://")
	}
	return nil
}
