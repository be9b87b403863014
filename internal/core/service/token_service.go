package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/coreledger/banking-api/internal/core/domain"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// TokenTTL is the fixed lifetime of every issued token. Expiration is the
// only invalidation mechanism; there is no revocation or refresh.
const TokenTTL = 10 * time.Hour

// TokenService signs and verifies access tokens with a single HS256 key
// shared for the lifetime of the process.
type TokenService struct {
	key []byte
}

func NewTokenService(key []byte) *TokenService {
	return &TokenService{key: key}
}

type accessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for subject carrying the raw role names.
func (s *TokenService) Issue(subject string, roles []string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Validate verifies the signature and standard claims, then returns the
// claim set with roles converted to claim form. The signature check runs
// before the expiry check so a forged-but-unexpired token can never pass.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}

	// Single point where the ROLE_ prefix is applied.
	prefixed := make([]string, len(claims.Roles))
	for i, r := range claims.Roles {
		prefixed[i] = domain.RolePrefix + r
	}

	out := &ports.TokenClaims{
		Subject: claims.Subject,
		Roles:   prefixed,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// IsExpired reports whether the embedded expiration has passed. The token is
// parsed without signature verification, so the answer must never be trusted
// on a path that has not gone through Validate.
func (s *TokenService) IsExpired(token string) bool {
	var claims accessClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !time.Now().Before(claims.ExpiresAt.Time)
}
