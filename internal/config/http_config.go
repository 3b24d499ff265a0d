package config

import (
	"strconv"
	"time"
)

type HTTP struct{}

var _ HTTPConfig = HTTP{}

// GetHTTPTimeout returns the per-request timeout applied by the HTTP client.
// Overridable via HTTP_TIMEOUT_SECONDS.
func (HTTP) GetHTTPTimeout() time.Duration {
	raw := GetEnv("HTTP_TIMEOUT_SECONDS", "15")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}
