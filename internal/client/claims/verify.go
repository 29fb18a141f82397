package claims

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type VerifierOption func(*Verifier)

// WithTimeValidation enables exp and nbf checks with the given leeway.
func WithTimeValidation(leeway time.Duration) VerifierOption {
	return func(v *Verifier) {
		v.validateTimes = true
		v.leeway = leeway
	}
}

// WithNowFunc overrides the clock used by time validation.
func WithNowFunc(now func() time.Time) VerifierOption {
	return func(v *Verifier) { v.now = now }
}

// Verifier checks token signatures. Time claims are ignored unless
// WithTimeValidation is given.
type Verifier struct {
	signer        Signer
	validateTimes bool
	leeway        time.Duration
	now           func() time.Time
}

func NewVerifier(s Signer, opts ...VerifierOption) *Verifier {
	v := &Verifier{signer: s, now: time.Now}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Verify checks token and returns its payload. An empty token yields a nil
// payload and no error, like Decode.
func (v *Verifier) Verify(token string) (*models.ClaimsPayload, error) {
	if token == "" {
		return nil, nil
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.signer.SigningMethod().Alg()}),
	}
	if v.validateTimes {
		opts = append(opts, jwt.WithLeeway(v.leeway), jwt.WithTimeFunc(v.now))
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	mc := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, mc, v.signer.VerificationKey, opts...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return payloadFromClaims(mc)
}
