package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   identity service base URL
//	-l string   leaderboard service base URL
//	-app string application ID
//	-t int      request timeout (in seconds)
//	-v string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-app", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthAPIURL, "a", cfg.AuthAPIURL, "identity service base URL")
	fs.StringVar(&cfg.LeaderboardAPIURL, "l", cfg.LeaderboardAPIURL, "leaderboard service base URL")
	fs.StringVar(&cfg.ApplicationID, "app", cfg.ApplicationID, "application ID")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
