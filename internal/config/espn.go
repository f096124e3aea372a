package config

import "time"

// ESPNConfig controls how we talk to the ESPN scoreboard API.
type ESPNConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL:   envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		UserAgent: envOrDefault(envESPNUserAgent, defaultESPNUserAgent),
		Timeout:   durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
	}
}
