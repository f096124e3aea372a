package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout must outlast the upstream fetch deadline (30s by
	// default), or slow scoreboard fetches get their responses cut off.
	writeTimeout = 45 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
