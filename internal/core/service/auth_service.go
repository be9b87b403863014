package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coreledger/banking-api/internal/core/domain"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// AuthService authenticates stored credentials and issues access tokens.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login resolves the email, compares the bcrypt hash, and issues a token
// asserting the user's role. The stored role must belong to the closed role
// set; an unknown value is rejected here, at the issuance boundary, rather
// than propagated into a claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		s.log.Warn().Str("email", email).Msg("login rejected: bad password")
		return "", nil, domain.ErrInvalidCredentials
	}

	if !domain.KnownRole(user.Role) {
		s.log.Error().Str("email", email).Str("role", user.Role).Msg("login rejected: stored role outside known set")
		return "", nil, domain.ErrInvalidRole
	}

	token, err := s.tokens.Issue(user.Email, []string{user.Role})
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", email).Msg("token issued")
	return token, user, nil
}
