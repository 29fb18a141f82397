package claims

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is the sign/verify capability for GameStack tokens.
type Signer interface {
	// Sign creates a signed token from claims.
	Sign(claims jwt.MapClaims) (string, error)

	// VerificationKey returns the key used to check token's signature.
	VerificationKey(token *jwt.Token) (any, error)

	// SigningMethod returns the JWT signing method used.
	SigningMethod() jwt.SigningMethod
}

// HMACSigner implements Signer with a shared secret.
type HMACSigner struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

// NewHMACSigner returns an HS512 signer, the algorithm the identity service
// issues tokens with.
func NewHMACSigner(secret string) *HMACSigner {
	return NewHMACSignerWithMethod(secret, jwt.SigningMethodHS512)
}

func NewHMACSignerWithMethod(secret string, method *jwt.SigningMethodHMAC) *HMACSigner {
	return &HMACSigner{secret: []byte(secret), method: method}
}

func (h *HMACSigner) Sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(h.method, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("sign token with HMAC: %w", err)
	}
	return signed, nil
}

func (h *HMACSigner) VerificationKey(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return h.secret, nil
}

func (h *HMACSigner) SigningMethod() jwt.SigningMethod {
	return h.method
}
