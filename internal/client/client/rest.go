package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/common"
	"github.com/dmitrijs2005/gamestack/internal/transport"
)

const (
	pathSignup  = "players/signup"
	pathLogin   = "players/login"
	pathLogout  = "logout"
	pathRefresh = "players/refresh"
)

// RESTClient implements Client against the identity service (authURL) and
// the leaderboard service (leaderboardURL).
type RESTClient struct {
	exec           transport.Executor
	authURL        string
	leaderboardURL string
}

func NewRESTClient(exec transport.Executor, authURL, leaderboardURL string) *RESTClient {
	return &RESTClient{
		exec:           exec,
		authURL:        strings.TrimRight(authURL, "/"),
		leaderboardURL: strings.TrimRight(leaderboardURL, "/"),
	}
}

func (c *RESTClient) Signup(ctx context.Context, in models.SignupInput) (string, error) {
	resp, err := c.do(ctx, transport.VerbPost, "", c.authURL+"/"+pathSignup, in)
	if err != nil {
		return "", err
	}
	return resp.Body, nil
}

func (c *RESTClient) Login(ctx context.Context, in models.LoginInput) (models.LoginOutput, error) {
	var out models.LoginOutput
	resp, err := c.do(ctx, transport.VerbPost, "", c.authURL+"/"+pathLogin, in)
	if err != nil {
		return out, err
	}
	return out, decode(resp, &out)
}

// Logout identifies the session by the tokens in the body.
func (c *RESTClient) Logout(ctx context.Context, in models.LogoutInput) error {
	_, err := c.do(ctx, transport.VerbDelete, "", c.authURL+"/"+pathLogout, in)
	return err
}

func (c *RESTClient) Refresh(ctx context.Context, in models.RefreshInput) (models.RefreshOutput, error) {
	var out models.RefreshOutput
	resp, err := c.do(ctx, transport.VerbPost, "", c.authURL+"/"+pathRefresh, in)
	if err != nil {
		return out, err
	}
	return out, decode(resp, &out)
}

func (c *RESTClient) GetApplicationUser(ctx context.Context, accessToken, appID string) (models.User, error) {
	var out models.GetUserForApplicationOutput
	resp, err := c.do(ctx, transport.VerbGet, accessToken, c.userURL(appID), nil)
	if err != nil {
		return models.User{}, err
	}
	if err := decode(resp, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// CreateApplicationUser maps a 409 answer to a Conflict error.
func (c *RESTClient) CreateApplicationUser(ctx context.Context, accessToken, appID string, in models.CreateApplicationUserInput) (models.CreateApplicationUserOutput, error) {
	var out models.CreateApplicationUserOutput
	resp, err := c.do(ctx, transport.VerbPut, accessToken, c.userURL(appID), in)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Code == ConflictCode {
			return out, NewConflictError(apiErr.Message)
		}
		return out, err
	}
	if resp.Body == "" {
		return out, nil
	}
	return out, decode(resp, &out)
}

func (c *RESTClient) GetLeaderboardStats(ctx context.Context, accessToken, appID, leaderboardID string, in models.GetLeaderboardStatsInput) (models.GetLeaderboardStatsOutput, error) {
	var out models.GetLeaderboardStatsOutput
	resp, err := c.do(ctx, transport.VerbPost, accessToken, c.statsURL(appID, leaderboardID), in)
	if err != nil {
		return out, err
	}
	return out, decode(resp, &out)
}

func (c *RESTClient) PutLeaderboardStats(ctx context.Context, accessToken, appID, leaderboardID string, in models.PutLeaderboardStatsInput) error {
	_, err := c.do(ctx, transport.VerbPut, accessToken, c.statsURL(appID, leaderboardID), in)
	return err
}

func (c *RESTClient) userURL(appID string) string {
	return fmt.Sprintf("%s/app/%s/user", c.leaderboardURL, url.PathEscape(appID))
}

func (c *RESTClient) statsURL(appID, leaderboardID string) string {
	return fmt.Sprintf("%s/app/%s/leaderboard/%s/stats", c.leaderboardURL, url.PathEscape(appID), url.PathEscape(leaderboardID))
}

// do encodes body, executes the request and turns transport failures and
// non-2xx statuses into *Error.
func (c *RESTClient) do(ctx context.Context, verb, accessToken, target string, body any) (transport.Response, error) {
	var payload string
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return transport.Response{}, fmt.Errorf("encode request: %w", err)
		}
		payload = string(b)
	}

	headers := map[string]string{common.ContentTypeHeader: common.ContentTypeJSON}
	if accessToken != "" {
		headers[common.AuthorizationHeader] = common.BearerValue(accessToken)
	}

	resp, err := c.exec.Execute(ctx, verb, headers, target, payload)
	if err != nil {
		return resp, mapError(err)
	}
	if !resp.OK() {
		return resp, NewError(int64(resp.StatusCode), resp.Body)
	}
	return resp, nil
}

func mapError(err error) error {
	if errors.Is(err, transport.ErrUnknownVerb) {
		return err
	}
	var terr *transport.Error
	if errors.As(err, &terr) {
		if terr.Timeout {
			return NewError(http.StatusRequestTimeout, terr.Error())
		}
		return &Error{Message: terr.Error(), kind: ErrTransport}
	}
	return &Error{Message: err.Error(), kind: ErrTransport}
}

func decode(resp transport.Response, v any) error {
	if err := json.Unmarshal([]byte(resp.Body), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
