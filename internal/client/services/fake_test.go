package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/client/claims"
	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/timex"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.Client for unit tests of the services.
type fakeClient struct {
	mu sync.Mutex

	SignupRet string
	SignupErr error

	LoginRet models.LoginOutput
	LoginErr error

	LogoutErr error

	RefreshRet models.RefreshOutput
	RefreshErr error

	GetUserRet models.User
	GetUserErr error

	CreateUserRet models.CreateApplicationUserOutput
	CreateUserErr error

	GetStatsRet models.GetLeaderboardStatsOutput
	GetStatsErr error
	PutStatsErr error

	LastSignupIn     models.SignupInput
	LastLoginIn      models.LoginInput
	LastLogoutIn     models.LogoutInput
	LastRefreshIn    models.RefreshInput
	LastAccessToken  string
	LastAppID        string
	LastLeaderboard  string
	LastCreateUserIn models.CreateApplicationUserInput
	LastGetStatsIn   models.GetLeaderboardStatsInput
	LastPutStatsIn   models.PutLeaderboardStatsInput

	LogoutCalls     int
	RefreshCalls    int
	GetUserCalls    int
	CreateUserCalls int
}

func (f *fakeClient) Signup(_ context.Context, in models.SignupInput) (string, error) {
	f.LastSignupIn = in
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Login(_ context.Context, in models.LoginInput) (models.LoginOutput, error) {
	f.LastLoginIn = in
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(_ context.Context, in models.LogoutInput) error {
	f.LogoutCalls++
	f.LastLogoutIn = in
	return f.LogoutErr
}

func (f *fakeClient) Refresh(_ context.Context, in models.RefreshInput) (models.RefreshOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RefreshCalls++
	f.LastRefreshIn = in
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeClient) GetApplicationUser(_ context.Context, accessToken, appID string) (models.User, error) {
	f.GetUserCalls++
	f.LastAccessToken, f.LastAppID = accessToken, appID
	return f.GetUserRet, f.GetUserErr
}

func (f *fakeClient) CreateApplicationUser(_ context.Context, accessToken, appID string, in models.CreateApplicationUserInput) (models.CreateApplicationUserOutput, error) {
	f.CreateUserCalls++
	f.LastAccessToken, f.LastAppID, f.LastCreateUserIn = accessToken, appID, in
	return f.CreateUserRet, f.CreateUserErr
}

func (f *fakeClient) GetLeaderboardStats(_ context.Context, accessToken, appID, leaderboardID string, in models.GetLeaderboardStatsInput) (models.GetLeaderboardStatsOutput, error) {
	f.LastAccessToken, f.LastAppID, f.LastLeaderboard, f.LastGetStatsIn = accessToken, appID, leaderboardID, in
	return f.GetStatsRet, f.GetStatsErr
}

func (f *fakeClient) PutLeaderboardStats(_ context.Context, accessToken, appID, leaderboardID string, in models.PutLeaderboardStatsInput) error {
	f.LastAccessToken, f.LastAppID, f.LastLeaderboard, f.LastPutStatsIn = accessToken, appID, leaderboardID, in
	return f.PutStatsErr
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// signedToken returns an HS512 access token whose identity claim is identity.
func signedToken(t *testing.T, identity string) string {
	t.Helper()
	mc := jwt.MapClaims{"aud": "app", "sub": "player-1"}
	if identity != "" {
		mc[claims.Namespace] = map[string]any{"identity": identity}
	}
	tok, err := claims.NewHMACSigner("secret").Sign(mc)
	require.NoError(t, err)
	return tok
}

func loginOutput(t *testing.T, now time.Time, identity string) models.LoginOutput {
	t.Helper()
	return models.LoginOutput{
		Session: models.Session{Name: "sid", Value: "v", ExpiresAt: timex.Time{Time: now.Add(time.Hour)}},
		Token:   models.Token{AccessToken: signedToken(t, identity), TokenType: "Bearer", ExpiresIn: 300, RefreshToken: "ref"},
	}
}
