package ports

import (
	"context"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// CreateUserInput carries the public registration payload.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UpdateUserInput carries a user update. The service applies merge-non-empty
// semantics: FirstName and LastName always overwrite, Email, Password and
// Role only when non-empty, and AccountIDs replaces the association in full.
type UpdateUserInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Role       string
	AccountIDs []int64
}

// UserService defines use-case operations for user records.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) error
	Delete(ctx context.Context, id int64) error
}
