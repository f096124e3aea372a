package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envESPNBaseURL   = "ESPN_BASE_URL"
	envESPNUserAgent = "ESPN_USER_AGENT"
	envESPNTimeout   = "ESPN_TIMEOUT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "espn"
	// The upstream is a public endpoint; empty means the client's built-in URL.
	defaultESPNBaseURL   = ""
	defaultESPNUserAgent = ""
	defaultESPNTimeout   = 30 * Duration(time.Second)
	defaultMetricsPort   = "9090"
)
