package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

// ErrInvalidToken is returned by TokenValidator implementations when the
// presented token does not match.
var ErrInvalidToken = errors.New("invalid or missing token")

// staticPrincipal is the sole principal produced by StaticTokenValidator:
// the token itself is the only credential, there are no claims or subject.
type staticPrincipal struct{}

func (staticPrincipal) GetClaims() interface{} { return nil }
func (staticPrincipal) GetSubject() string     { return "" }

// StaticTokenValidator authenticates against a single configured token
// with a constant-time byte comparison (§4.5 "byte-equal to the server's
// configured token").
type StaticTokenValidator struct {
	token string
}

// NewStaticTokenValidator builds a validator that accepts exactly token.
func NewStaticTokenValidator(token string) *StaticTokenValidator {
	return &StaticTokenValidator{token: token}
}

func (v *StaticTokenValidator) ValidateToken(ctx context.Context, tokenString string) (Principal, error) {
	if subtle.ConstantTimeCompare([]byte(tokenString), []byte(v.token)) != 1 {
		return nil, ErrInvalidToken
	}
	return staticPrincipal{}, nil
}

var _ TokenValidator = (*StaticTokenValidator)(nil)
