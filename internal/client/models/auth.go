package models

import (
	"time"

	"github.com/dmitrijs2005/gamestack/internal/timex"
)

// Session describes the validity window of one login.
type Session struct {
	Name      string     `json:"session_name"`
	Value     string     `json:"session_value"`
	Path      string     `json:"session_path"`
	ExpiresAt timex.Time `json:"session_expires_in"`
	MaxAge    int64      `json:"session_max_age"`
}

// Expired reports whether the session is no longer valid at now.
// A session without an expiry timestamp never expires.
func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt.Time)
}

// Token is a bearer credential. ExpiresIn is relative, in seconds.
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token"`
}

// Lifetime returns ExpiresIn as a duration.
func (t Token) Lifetime() time.Duration {
	return time.Duration(t.ExpiresIn) * time.Second
}

type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Session Session `json:"session"`
	Token   Token   `json:"token"`
}

type LogoutInput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshInput struct {
	RefreshToken string  `json:"refresh_token"`
	Session      Session `json:"session"`
}

// RefreshOutput carries the new token. Session is set only when the
// identity service rotates it.
type RefreshOutput struct {
	Token   Token    `json:"token"`
	Session *Session `json:"session,omitempty"`
}

// LoginProps are the caller-facing options for one login run.
type LoginProps struct {
	Username                  string
	Password                  string
	ApplicationID             string
	AutoCreateApplicationUser bool
}
