package ports

import (
	"context"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	FindAll(ctx context.Context) ([]*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	// FindByUserID returns the accounts owned by a user. An unknown user is
	// indistinguishable from a user without accounts: both yield an empty
	// slice, never a NotFound error.
	FindByUserID(ctx context.Context, userID int64) ([]*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int64) error
}
