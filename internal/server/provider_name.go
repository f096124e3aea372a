package server

import (
	"fmt"
	"strings"

	"espn-scores-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used across server wiring to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.Provider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
