package client

import (
	"context"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
)

// Client is the set of GameStack endpoints the SDK consumes. Methods taking
// accessToken send it as a bearer credential.
type Client interface {
	Signup(ctx context.Context, in models.SignupInput) (string, error)
	Login(ctx context.Context, in models.LoginInput) (models.LoginOutput, error)
	Logout(ctx context.Context, in models.LogoutInput) error
	Refresh(ctx context.Context, in models.RefreshInput) (models.RefreshOutput, error)

	GetApplicationUser(ctx context.Context, accessToken, appID string) (models.User, error)
	CreateApplicationUser(ctx context.Context, accessToken, appID string, in models.CreateApplicationUserInput) (models.CreateApplicationUserOutput, error)

	GetLeaderboardStats(ctx context.Context, accessToken, appID, leaderboardID string, in models.GetLeaderboardStatsInput) (models.GetLeaderboardStatsOutput, error)
	PutLeaderboardStats(ctx context.Context, accessToken, appID, leaderboardID string, in models.PutLeaderboardStatsInput) error
}
