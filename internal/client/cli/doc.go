// Package cli provides the interactive GameStack command-line client.
//
// It wires configuration, logging, metrics and the SDK services into a REPL
// for trying the identity and leaderboard APIs by hand. Typical flow: log in
// (optionally creating the application user), post or query leaderboard
// statistics, log out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
