package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// CreateAccountInput carries an account creation payload. Balance is taken
// as supplied, not derived from postings.
type CreateAccountInput struct {
	AccountNumber string
	Balance       decimal.Decimal
	UserID        int64
}

// UpdateAccountInput carries an account update. All fields overwrite,
// including the owning user and the full transaction set reference.
type UpdateAccountInput struct {
	AccountNumber  string
	Balance        decimal.Decimal
	UserID         int64
	TransactionIDs []int64
}

// AccountService defines use-case operations for account records.
type AccountService interface {
	List(ctx context.Context) ([]*domain.Account, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Update(ctx context.Context, id int64, input UpdateAccountInput) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Account, error)
}
