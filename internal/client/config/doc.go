// Package config loads runtime configuration for the GameStack SDK and CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment (see parseEnv): GAMESTACK_* variables, optionally seeded
//     from a dotenv file (GAMESTACK_ENV_FILE or ./.env).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   identity service base URL
//	-l string   leaderboard service base URL
//	-app string application ID
//	-t int      request timeout (seconds)
//	-v string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "auth_api_url": "http://localhost:8070",
//	  "leaderboard_api_url": "http://localhost:8080",
//	  "application_id": "my-game",
//	  "request_timeout": "10s",
//	  "refresh_timeout": "10s",
//	  "token_secret": "",
//	  "validate_token_times": false,
//	  "log_level": "info",
//	  "log_pretty": false,
//	  "metrics_addr": ":9102"
//	}
package config
