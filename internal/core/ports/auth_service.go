package ports

import (
	"context"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// AuthService authenticates credentials and hands out access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
