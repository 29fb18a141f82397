package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gamestack/internal/client/config"
	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/logging"
)

type fakeAuth struct {
	loggedIn bool
	identity string
	alias    string

	signupMsg string
	signupErr error
	loginErr  error
	logoutErr error
	aliasErr  error

	LastSignup models.SignupInput
	LastLogin  models.LoginProps
	logouts    int
}

func (f *fakeAuth) Signup(_ context.Context, in models.SignupInput) (string, error) {
	f.LastSignup = in
	return f.signupMsg, f.signupErr
}

func (f *fakeAuth) Login(_ context.Context, p models.LoginProps) (models.LoginOutput, error) {
	f.LastLogin = p
	if f.loginErr != nil {
		return models.LoginOutput{}, f.loginErr
	}
	f.loggedIn = true
	return models.LoginOutput{}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedIn = false
	return nil
}

func (f *fakeAuth) IsLoggedIn() bool        { return f.loggedIn }
func (f *fakeAuth) ApplicationAlias() string { return f.alias }

func (f *fakeAuth) GameStackAlias() (string, error) {
	return f.identity, f.aliasErr
}

func (f *fakeAuth) GetApplicationUser(context.Context, string) (models.User, error) {
	return models.User{Alias: f.alias}, nil
}

func (f *fakeAuth) CreateApplicationUser(context.Context, string, string) (models.CreateApplicationUserOutput, error) {
	return models.CreateApplicationUserOutput{}, nil
}

type fakeLeaderboard struct {
	out    models.GetLeaderboardStatsOutput
	getErr error
	putErr error

	LastApp   string
	LastBoard string
	LastGet   models.GetLeaderboardStatsInput
	LastPut   models.PutLeaderboardStatsInput
}

func (f *fakeLeaderboard) GetStats(_ context.Context, appID, lb string, in models.GetLeaderboardStatsInput) (models.GetLeaderboardStatsOutput, error) {
	f.LastApp, f.LastBoard, f.LastGet = appID, lb, in
	return f.out, f.getErr
}

func (f *fakeLeaderboard) PutStats(_ context.Context, appID, lb string, in models.PutLeaderboardStatsInput) error {
	f.LastApp, f.LastBoard, f.LastPut = appID, lb, in
	return f.putErr
}

func newTestApp(auth *fakeAuth, lb *fakeLeaderboard) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config:             &config.Config{ApplicationID: "app-1"},
		log:                logging.NewNop(),
		authService:        auth,
		leaderboardService: lb,
		reader:             bufio.NewReader(strings.NewReader("")),
		out:                out,
	}, out
}

// stubInputs replaces the interactive prompts with answers served in order.
func stubInputs(t *testing.T, answers []string, password string) func() {
	t.Helper()
	oldText, oldPass := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt #%d", i+1)
		}
		s := answers[i]
		i++
		return s, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	return func() { getSimpleText, getPassword = oldText, oldPass }
}

func stubLines(t *testing.T, lines ...string) func() {
	t.Helper()
	old := getLines
	getLines = func(_ *bufio.Reader, _ string, _ io.Writer) ([]string, error) { return lines, nil }
	return func() { getLines = old }
}
