package config

import "time"

// ClientConfig holds the configuration of the ECW API probe client.
type ClientConfig struct {
	// Adapter holds the connection settings for the API.
	Adapter ClientAdapter `envPrefix:"ECW_API_"`
}

// ClientAdapter holds HTTP client settings.
type ClientAdapter struct {
	// BaseURL is the root URL of a running ECW API.
	// Env: ECW_API_URL
	BaseURL string `env:"URL" envDefault:"http://localhost:8000"`

	// RequestTimeout bounds every request made by the client.
	// Env: ECW_API_TIMEOUT
	RequestTimeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

var clientTypedKeys = []string{"ECW_API_TIMEOUT"}

// GetClientConfig loads and validates the client configuration from the
// process environment and the dotenv file, in that priority order.
func GetClientConfig() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	if err := newConfigBuilder().
		withEnv().
		withDotEnv().
		withoutEmpty(clientTypedKeys...).
		build(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
