package services

import (
	"context"

	"github.com/dmitrijs2005/gamestack/internal/client/client"
	"github.com/dmitrijs2005/gamestack/internal/client/models"
)

// LeaderboardService reads and writes leaderboard statistics for the
// logged-in player.
type LeaderboardService interface {
	GetStats(ctx context.Context, appID, leaderboardID string, in models.GetLeaderboardStatsInput) (models.GetLeaderboardStatsOutput, error)
	PutStats(ctx context.Context, appID, leaderboardID string, in models.PutLeaderboardStatsInput) error
}

type leaderboardService struct {
	client client.Client
	tokens TokenSource
}

func NewLeaderboardService(c client.Client, tokens TokenSource) LeaderboardService {
	return &leaderboardService{client: c, tokens: tokens}
}

func (l *leaderboardService) GetStats(ctx context.Context, appID, leaderboardID string, in models.GetLeaderboardStatsInput) (models.GetLeaderboardStatsOutput, error) {
	tok, err := l.tokens.ValidToken(ctx)
	if err != nil {
		return models.GetLeaderboardStatsOutput{}, toAPIError(err)
	}
	return l.client.GetLeaderboardStats(ctx, tok.AccessToken, appID, leaderboardID, in)
}

func (l *leaderboardService) PutStats(ctx context.Context, appID, leaderboardID string, in models.PutLeaderboardStatsInput) error {
	tok, err := l.tokens.ValidToken(ctx)
	if err != nil {
		return toAPIError(err)
	}
	return l.client.PutLeaderboardStats(ctx, tok.AccessToken, appID, leaderboardID, in)
}
