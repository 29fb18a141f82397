package claims

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Namespace is the payload key holding the GameStack custom claims.
const Namespace = "https://gamestack.io/jwt/claims"

var ErrMalformedToken = errors.New("malformed token")

// Decode parses the payload of token without verifying it. An empty token
// yields a nil payload and no error.
func Decode(token string) (*models.ClaimsPayload, error) {
	if token == "" {
		return nil, nil
	}
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return payloadFromClaims(mc)
}

func payloadFromClaims(mc jwt.MapClaims) (*models.ClaimsPayload, error) {
	aud, err := mc.GetAudience()
	if err != nil {
		return nil, fmt.Errorf("%w: aud: %v", ErrMalformedToken, err)
	}
	exp, err := mc.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: exp: %v", ErrMalformedToken, err)
	}
	sub, err := mc.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: sub: %v", ErrMalformedToken, err)
	}

	p := &models.ClaimsPayload{Subject: sub, Custom: map[string]any{}}
	if len(aud) > 0 {
		p.Audience = aud[0]
	}
	if exp != nil {
		p.Expiry = exp.Unix()
	}

	if raw, ok := mc[Namespace]; ok && raw != nil {
		custom, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not an object", ErrMalformedToken, Namespace)
		}
		p.Custom = custom
	}
	return p, nil
}
