package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// TransactionInput carries a transaction create or update payload. AccountID
// is a pointer so an absent reference can be told apart from account id 0;
// a nil AccountID fails validation before any repository lookup.
type TransactionInput struct {
	Amount          decimal.Decimal
	TransactionType string
	AccountID       *int64
}

// TransactionService defines use-case operations for transaction records.
// Creating or updating a posting never adjusts the referenced account's
// balance.
type TransactionService interface {
	List(ctx context.Context) ([]*domain.Transaction, error)
	Get(ctx context.Context, id int64) (*domain.Transaction, error)
	Create(ctx context.Context, input TransactionInput) (*domain.Transaction, error)
	Update(ctx context.Context, id int64, input TransactionInput) error
	Delete(ctx context.Context, id int64) error
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
}
