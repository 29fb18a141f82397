package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context, autoCreate bool) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Stats(ctx context.Context, leaderboardID string) error
	PostStats(ctx context.Context, leaderboardID string) error
}

// runREPL reads commands from scanner and dispatches them to a.
//
//	Not logged in:
//	  - help                 show available commands
//	  - signup               create a GameStack account
//	  - login [-create]      authenticate; -create provisions the application user
//	  - exit | quit          leave the program
//
//	Logged in:
//	  - whoami               show GameStack and application aliases
//	  - stats <lb>           query leaderboard statistics
//	  - poststats <lb>       submit dimensions for the player
//	  - logout               end the session
//
// Handler errors are printed and the loop continues. The loop exits on
// EOF, on exit/quit, or once ctx is cancelled. reader is shared with the
// interactive prompts.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("gs %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, stats <lb>, poststats <lb>, logout, exit")
			} else {
				printlnFn("Available commands: signup, login [-create], exit")
			}

		case "signup":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx, len(args) > 0 && args[0] == "-create")

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "stats", "poststats":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <leaderboard-id>", cmd))
				continue
			}
			if cmd == "stats" {
				err = a.Stats(ctx, args[0])
			} else {
				err = a.PostStats(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
