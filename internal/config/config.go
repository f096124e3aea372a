package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	ESPN     ESPNConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		ESPN:     loadESPN(),
		Metrics:  loadMetrics(),
	}
}
