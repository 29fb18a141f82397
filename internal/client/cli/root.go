package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(guest)"
	}
	s := a.config.ApplicationID
	if alias := a.authService.ApplicationAlias(); alias != "" {
		s = alias + "@" + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root prints the banner and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	a.log.Info(ctx, "GameStack CLI started",
		"auth_url", a.config.AuthAPIURL, "leaderboard_url", a.config.LeaderboardAPIURL, "app_id", a.config.ApplicationID)
	printlnFn("Welcome to GameStack CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
