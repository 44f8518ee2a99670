// Package auth handles bearer-token authentication for the bridge's HTTP
// endpoints: a static shared-secret token by default, or JWT-over-JWKS
// when the host configures an identity provider.
package auth

import "context"

// Principal represents the authenticated caller after successful token
// validation.
type Principal interface {
	// GetClaims returns whatever claims came with the token (a
	// jwt.MapClaims for JWKS validation, nil for the static validator).
	GetClaims() interface{}
	// GetSubject returns a unique identifier for the principal, or "" if
	// the validator does not distinguish subjects.
	GetSubject() string
}

// TokenValidator authenticates a bearer token string. A non-nil error
// means authentication failed; callers surface that as HTTP 401, never as
// a JSON-RPC protocol error (§7 — authentication is a transport concern).
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (Principal, error)
}

type principalKeyType struct{}

var principalKey = principalKeyType{}

// ContextWithPrincipal returns a copy of ctx carrying principal.
func ContextWithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext retrieves the Principal embedded by
// ContextWithPrincipal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey).(Principal)
	return principal, ok
}
