package ports

import "time"

// TokenClaims is the validated claim set carried by an access token. Roles
// are in claim form, already carrying the ROLE_ prefix.
type TokenClaims struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed access tokens.
type TokenService interface {
	// Issue signs a token asserting subject and the raw role names.
	Issue(subject string, roles []string) (string, error)
	// Validate verifies the signature before trusting any claim, including
	// expiration, and returns the claim set on success.
	Validate(token string) (*TokenClaims, error)
	// IsExpired compares the embedded expiration against the wall clock
	// without re-verifying the signature. Security-sensitive callers must
	// run Validate first.
	IsExpired(token string) bool
}
