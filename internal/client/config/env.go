package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvFile               = "GAMESTACK_ENV_FILE"
	EnvAuthAPIURL         = "GAMESTACK_AUTH_URL"
	EnvLeaderboardAPIURL  = "GAMESTACK_LEADERBOARD_URL"
	EnvApplicationID      = "GAMESTACK_APP_ID"
	EnvRequestTimeout     = "GAMESTACK_REQUEST_TIMEOUT"
	EnvRefreshTimeout     = "GAMESTACK_REFRESH_TIMEOUT"
	EnvTokenSecret        = "GAMESTACK_TOKEN_SECRET"
	EnvValidateTokenTimes = "GAMESTACK_VALIDATE_TOKEN_TIMES"
	EnvLogLevel           = "GAMESTACK_LOG_LEVEL"
	EnvLogPretty          = "GAMESTACK_LOG_PRETTY"
	EnvMetricsAddr        = "GAMESTACK_METRICS_ADDR"
)

// parseEnv overlays Config with GAMESTACK_* environment variables.
//
// A dotenv file is loaded first: the path in GAMESTACK_ENV_FILE, or ./.env.
// Variables already present in the environment win over the file. A missing
// file is ignored; malformed durations or booleans panic.
func parseEnv(cfg *Config) {
	envFile := os.Getenv(EnvFile)
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	setString(&cfg.AuthAPIURL, EnvAuthAPIURL)
	setString(&cfg.LeaderboardAPIURL, EnvLeaderboardAPIURL)
	setString(&cfg.ApplicationID, EnvApplicationID)
	setString(&cfg.TokenSecret, EnvTokenSecret)
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.MetricsAddr, EnvMetricsAddr)
	setDuration(&cfg.RequestTimeout, EnvRequestTimeout)
	setDuration(&cfg.RefreshTimeout, EnvRefreshTimeout)
	setBool(&cfg.ValidateTokenTimes, EnvValidateTokenTimes)
	setBool(&cfg.LogPretty, EnvLogPretty)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func setBool(dst *bool, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(err)
	}
	*dst = b
}
