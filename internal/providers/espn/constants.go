package espn

import "time"

const (
	providerName = "espn"

	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultUserAgent   = "espn-scores-service"
	defaultHTTPTimeout = 30 * time.Second

	// defaultDisplayClock mirrors what the upstream shows before the clock starts.
	defaultDisplayClock = "0:00"
)
