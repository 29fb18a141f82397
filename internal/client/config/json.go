package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gamestack/internal/flagx"
	"github.com/dmitrijs2005/gamestack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "3s" or as integer nanoseconds. Pointers distinguish
// "absent" from "false" for the boolean switches.
type JsonConfig struct {
	AuthAPIURL         string         `json:"auth_api_url"`
	LeaderboardAPIURL  string         `json:"leaderboard_api_url"`
	ApplicationID      string         `json:"application_id"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	RefreshTimeout     timex.Duration `json:"refresh_timeout"`
	TokenSecret        string         `json:"token_secret"`
	ValidateTokenTimes *bool          `json:"validate_token_times"`
	LogLevel           string         `json:"log_level"`
	LogPretty          *bool          `json:"log_pretty"`
	MetricsAddr        string         `json:"metrics_addr"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag (flagx.JsonConfigFlags).
// If neither is given, no JSON is loaded. Only keys present in the file
// replace current values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.AuthAPIURL, jc.AuthAPIURL)
	overlay(&cfg.LeaderboardAPIURL, jc.LeaderboardAPIURL)
	overlay(&cfg.ApplicationID, jc.ApplicationID)
	overlay(&cfg.TokenSecret, jc.TokenSecret)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshTimeout.Duration != 0 {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.ValidateTokenTimes != nil {
		cfg.ValidateTokenTimes = *jc.ValidateTokenTimes
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
