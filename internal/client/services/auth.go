// Package services contains the public operations of the GameStack SDK:
// signup, the login orchestration, logout, alias lookups and leaderboard
// calls. Failed API calls, missing logins and unusable access tokens leave
// this package as a *client.Error or wrap one. An unreadable response body
// is returned as a "decode response" error from package client.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gamestack/internal/client/client"
	"github.com/dmitrijs2005/gamestack/internal/client/credentials"
	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/logging"
)

var ErrNoIdentityClaim = errors.New("access token has no identity claim")

// TokenSource hands out bearer tokens; see credentials.Controller.
type TokenSource interface {
	ValidToken(ctx context.Context) (models.Token, error)
}

// ClaimDecoder turns an access token into its payload. claims.Decode and
// (*claims.Verifier).Verify both satisfy it.
type ClaimDecoder func(token string) (*models.ClaimsPayload, error)

// AuthService defines the player-facing authentication operations.
//
// Contract:
//   - Signup: create a GameStack account.
//   - Login: authenticate, then resolve (and optionally create) the
//     application user.
//   - Logout: end the session and clear every cached credential.
//   - IsLoggedIn: report whether both session and token are still valid.
//   - GameStackAlias / ApplicationAlias: read cached identities.
type AuthService interface {
	Signup(ctx context.Context, in models.SignupInput) (string, error)
	Login(ctx context.Context, props models.LoginProps) (models.LoginOutput, error)
	Logout(ctx context.Context) error
	IsLoggedIn() bool
	GameStackAlias() (string, error)
	ApplicationAlias() string
	GetApplicationUser(ctx context.Context, appID string) (models.User, error)
	CreateApplicationUser(ctx context.Context, appID, alias string) (models.CreateApplicationUserOutput, error)
}

type authService struct {
	client client.Client
	store  *credentials.Store
	tokens TokenSource
	users  *credentials.AppUserCache
	decode ClaimDecoder
	log    logging.Logger
}

func NewAuthService(c client.Client, store *credentials.Store, tokens TokenSource, users *credentials.AppUserCache, decode ClaimDecoder, log logging.Logger) AuthService {
	return &authService{client: c, store: store, tokens: tokens, users: users, decode: decode, log: log}
}

func (a *authService) Signup(ctx context.Context, in models.SignupInput) (string, error) {
	out, err := a.client.Signup(ctx, in)
	if err != nil {
		return "", fmt.Errorf("signup error: %w", err)
	}
	return out, nil
}

// Login authenticates the player and resolves their application user.
//
// When the application user does not exist, Login fails with a NotFound
// error unless props.AutoCreateApplicationUser is set, in which case the
// user is created with the alias from the token's identity claim. On success
// the original login output is returned.
func (a *authService) Login(ctx context.Context, props models.LoginProps) (models.LoginOutput, error) {
	log := a.log.With("app_id", props.ApplicationID)

	out, err := a.client.Login(ctx, models.LoginInput{Username: props.Username, Password: props.Password})
	if err != nil {
		return models.LoginOutput{}, fmt.Errorf("login error: %w", err)
	}
	a.store.Write(&out.Session, out.Token)

	_, err = a.GetApplicationUser(ctx, props.ApplicationID)
	if err == nil {
		log.Info(ctx, "login complete")
		return out, nil
	}
	if !isUserNotFound(err) {
		return models.LoginOutput{}, err
	}

	var apiErr *client.Error
	errors.As(err, &apiErr)
	if !props.AutoCreateApplicationUser {
		return models.LoginOutput{}, client.NewNotFoundError(apiErr.Message)
	}

	alias, err := a.GameStackAlias()
	if err != nil {
		return models.LoginOutput{}, err
	}
	if alias == "" {
		return models.LoginOutput{}, client.WrapError(http.StatusUnauthorized, ErrNoIdentityClaim)
	}

	log.Info(ctx, "creating application user", "alias", alias)
	if _, err := a.CreateApplicationUser(ctx, props.ApplicationID, alias); err != nil {
		return models.LoginOutput{}, err
	}
	a.users.Set(models.User{Alias: alias})
	return out, nil
}

// Logout ends the session on the identity service. Local credentials are
// cleared only when the call succeeds.
func (a *authService) Logout(ctx context.Context) error {
	snap := a.store.Read()
	if snap.Token == nil {
		return client.NewUnauthorizedError(credentials.ErrRequiresAuthentication.Error())
	}
	err := a.client.Logout(ctx, models.LogoutInput{
		AccessToken:  snap.Token.AccessToken,
		RefreshToken: snap.Token.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	a.store.Clear()
	a.users.Clear()
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) IsLoggedIn() bool {
	return a.store.Read().LoggedIn(a.store.Now())
}

// GameStackAlias returns the identity claim of the cached access token, or ""
// when no token is cached. An undecodable token is a 401.
func (a *authService) GameStackAlias() (string, error) {
	snap := a.store.Read()
	if snap.Token == nil {
		return "", nil
	}
	payload, err := a.decode(snap.Token.AccessToken)
	if err != nil {
		return "", client.WrapError(http.StatusUnauthorized, fmt.Errorf("decode access token: %w", err))
	}
	return payload.Identity(), nil
}

func (a *authService) ApplicationAlias() string {
	return a.users.Alias()
}

// GetApplicationUser fetches the player's user for appID and caches it.
func (a *authService) GetApplicationUser(ctx context.Context, appID string) (models.User, error) {
	tok, err := a.tokens.ValidToken(ctx)
	if err != nil {
		return models.User{}, toAPIError(err)
	}
	u, err := a.client.GetApplicationUser(ctx, tok.AccessToken, appID)
	if err != nil {
		return models.User{}, err
	}
	a.users.Set(u)
	return u, nil
}

func (a *authService) CreateApplicationUser(ctx context.Context, appID, alias string) (models.CreateApplicationUserOutput, error) {
	tok, err := a.tokens.ValidToken(ctx)
	if err != nil {
		return models.CreateApplicationUserOutput{}, toAPIError(err)
	}
	return a.client.CreateApplicationUser(ctx, tok.AccessToken, appID, models.CreateApplicationUserInput{Alias: alias})
}

// isUserNotFound reports the leaderboard service's "no such application user"
// answers. It sends 403; 404 is accepted too.
func isUserNotFound(err error) bool {
	code, ok := client.StatusCode(err)
	return ok && (code == http.StatusForbidden || code == http.StatusNotFound)
}

// toAPIError converts a missing or expired login into a 401 client.Error.
func toAPIError(err error) error {
	if errors.Is(err, credentials.ErrRequiresAuthentication) {
		return client.NewUnauthorizedError(err.Error())
	}
	return err
}
