package config

import (
	"time"
)

// RateLimit describes one fixed-window limit: at most Max requests per
// client IP within Window.
type RateLimit struct {
	Max    int
	Window time.Duration
	Prefix string // key namespace, e.g. "rl:resa"
}

// RateLimits groups the per-endpoint limits.  The defaults mirror how the
// site has always throttled its forms: reservations are the most abused
// endpoint and get the tightest window.
type RateLimits struct {
	Enabled     bool
	API         RateLimit // general read endpoints
	Reservation RateLimit // POST /v1/reservations
	Contact     RateLimit // POST /v1/contact and /v1/newsletter
}

// LoadRateLimits builds the rate-limit configuration.  RATE_LIMIT_ENABLED
// turns the middleware off entirely; individual windows are fixed.
func LoadRateLimits() RateLimits {
	return RateLimits{
		Enabled:     envBool("RATE_LIMIT_ENABLED", true),
		API:         RateLimit{Max: envInt("RATE_LIMIT_API_MAX", 10), Window: time.Minute, Prefix: "rl:api"},
		Reservation: RateLimit{Max: envInt("RATE_LIMIT_RESA_MAX", 3), Window: 10 * time.Minute, Prefix: "rl:resa"},
		Contact:     RateLimit{Max: envInt("RATE_LIMIT_CONTACT_MAX", 2), Window: 5 * time.Minute, Prefix: "rl:contact"},
	}
}
