package config

import "time"

// Config holds runtime settings for the GameStack SDK and CLI.
//
// Fields:
//   - AuthAPIURL: base URL of the identity service.
//   - LeaderboardAPIURL: base URL of the leaderboard service.
//   - ApplicationID: application the player logs into.
//   - RequestTimeout: per-request HTTP timeout.
//   - RefreshTimeout: upper bound for one background token refresh.
//   - TokenSecret: optional HMAC secret; when set, access tokens are verified.
//   - ValidateTokenTimes: also check exp/nbf when verifying.
//   - LogLevel, LogPretty: logger settings.
//   - MetricsAddr: listen address for /metrics; empty disables it.
type Config struct {
	AuthAPIURL         string
	LeaderboardAPIURL  string
	ApplicationID      string
	RequestTimeout     time.Duration
	RefreshTimeout     time.Duration
	TokenSecret        string
	ValidateTokenTimes bool
	LogLevel           string
	LogPretty          bool
	MetricsAddr        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthAPIURL = "http://localhost:8070"
	c.LeaderboardAPIURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.RefreshTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
